package gps_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"console/internal/handlers/rest/dto"
	"console/internal/handlers/rest/httperr"
	"console/internal/service/reporter"
)

type Handler struct {
	reporter Reporter
}

func New(reporter Reporter) *Handler {
	return &Handler{
		reporter: reporter,
	}
}

// ServeHTTP starts streaming device positions for a delivery. Any watch
// already running is replaced.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var gpsDTO dto.GPSRequest
	err := json.NewDecoder(r.Body).Decode(&gpsDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, err, httperr.MsgInvalidRequest)
		return
	}

	err = h.reporter.Start(r.Context(), gpsDTO.DeliveryID)
	if err != nil {
		switch {
		case errors.Is(err, reporter.ErrMissingDeliveryID):
			httperr.Write(w, http.StatusBadRequest, err, "Ingresa el ID de la entrega")
		case errors.Is(err, reporter.ErrGeolocationUnavailable):
			httperr.Write(w, http.StatusServiceUnavailable, err, "Geolocalización no disponible")
		default:
			httperr.Write(w, http.StatusInternalServerError, err, "No se pudo iniciar el GPS")
		}
		return
	}

	response := dto.NewGPSStatus(true, gpsDTO.DeliveryID, h.reporter.Fields(), nil)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(response)
}
