package gps_get

import (
	"encoding/json"
	"net/http"

	"console/internal/handlers/rest/dto"
	"console/internal/pkg/geolocation"
)

type Handler struct {
	reporter Reporter
}

func New(reporter Reporter) *Handler {
	return &Handler{
		reporter: reporter,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var last *geolocation.Position
	if pos, ok := h.reporter.LastPosition(); ok {
		last = &pos
	}

	response := dto.NewGPSStatus(h.reporter.Active(), h.reporter.DeliveryID(), h.reporter.Fields(), last)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}
