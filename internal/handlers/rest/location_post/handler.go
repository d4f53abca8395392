package location_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"console/internal/handlers/rest/dto"
	"console/internal/handlers/rest/httperr"
	"console/internal/service/delivery"
)

// Handler pushes a manually entered courier position to the backend.
type Handler struct {
	service Service
}

func New(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var locationDTO dto.LocationRequest
	err := json.NewDecoder(r.Body).Decode(&locationDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, err, httperr.MsgInvalidRequest)
		return
	}

	err = h.service.SendLocation(r.Context(), delivery.LocationForm{
		DeliveryID: locationDTO.DeliveryID,
		Lat:        locationDTO.Lat.String(),
		Lng:        locationDTO.Lng.String(),
	})
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrInvalidCoordinate):
			httperr.Write(w, http.StatusBadRequest, err, "Ingresa una entrega y coordenadas válidas")
		case errors.Is(err, delivery.ErrActionInProgress):
			httperr.Write(w, http.StatusConflict, err, httperr.MsgInProgress)
		default:
			httperr.WriteBackend(w, err, "Error al enviar la ubicación")
		}
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
