package delivery_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"console/internal/handlers/rest/dto"
	"console/internal/handlers/rest/httperr"
	"console/internal/service/delivery"
	"console/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	deliveryEntity, err := h.service.QueryDelivery(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID):
			httperr.Write(w, http.StatusBadRequest, err, "ID de entrega inválido")
		default:
			httperr.WriteBackend(w, err, "Error al cargar la entrega")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.DeliveryFromEntity(deliveryEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
