package gps_fill_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"console/internal/handlers/rest/dto"
	"console/internal/handlers/rest/httperr"
	"console/internal/service/reporter"
)

// Handler reads the device position once for the manual location form.
type Handler struct {
	reporter Reporter
}

func New(reporter Reporter) *Handler {
	return &Handler{
		reporter: reporter,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields, err := h.reporter.FillFromDevice(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, reporter.ErrGeolocationUnavailable):
			httperr.Write(w, http.StatusServiceUnavailable, err, "Geolocalización no disponible")
		default:
			httperr.Write(w, http.StatusBadGateway, err, "No se pudo obtener la ubicación")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(dto.GPSFieldsOf(fields))
}
