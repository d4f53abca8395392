package rider_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"console/internal/entities"
	"console/internal/handlers/rest/dto"
	"console/internal/handlers/rest/httperr"
	"console/internal/service/delivery"

	"github.com/gorilla/mux"
)

type Handler struct {
	service Service
}

func New(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var statusDTO dto.StatusRequest
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, err, httperr.MsgInvalidRequest)
		return
	}

	riderID := mux.Vars(r)["id"]
	err = h.service.SetRiderStatus(r.Context(), riderID, entities.RiderStatusType(statusDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidRiderID),
			errors.Is(err, delivery.ErrInvalidStatus):
			httperr.Write(w, http.StatusBadRequest, err, "Estado de repartidor inválido")
		case errors.Is(err, delivery.ErrActionInProgress):
			httperr.Write(w, http.StatusConflict, err, httperr.MsgInProgress)
		default:
			httperr.WriteBackend(w, err, "Error al cambiar el estado del repartidor")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
