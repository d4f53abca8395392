package delivery_delivered_post

import (
	"errors"
	"net/http"

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
	return &Handler{
		log:     log.With(),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	deliveryID := mux.Vars(r)["id"]

	err := h.service.MarkDelivered(r.Context(), deliveryID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			httperr.Write(w, http.StatusNotFound, err, "Entrega no encontrada")
		case errors.Is(err, delivery.ErrInvalidOrderID):
			httperr.Write(w, http.StatusUnprocessableEntity, err, "La entrega no tiene pedido asociado")
		case errors.Is(err, delivery.ErrNotInTransit):
			httperr.Write(w, http.StatusConflict, err, "La entrega no está en camino")
		case errors.Is(err, delivery.ErrActionInProgress):
			httperr.Write(w, http.StatusConflict, err, httperr.MsgInProgress)
		default:
			// the first failing step is in err; earlier steps are not rolled back
			h.log.With(
				logger.NewField("delivery_id", deliveryID),
				logger.NewField("error", err),
			).Warn("mark delivered")
			httperr.WriteBackend(w, err, "Error al marcar como entregado")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
