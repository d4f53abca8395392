package delivery_handoff_post

import (
	"errors"
	"net/http"

	"console/internal/handlers/rest/httperr"
	"console/internal/service/delivery"

	"github.com/gorilla/mux"
)

// Handler hands an order over from the kitchen to its rider.
type Handler struct {
	service Service
}

func New(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h.service.Handoff(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidOrderID):
			httperr.Write(w, http.StatusBadRequest, err, "ID de pedido inválido")
		case errors.Is(err, delivery.ErrActionInProgress):
			httperr.Write(w, http.StatusConflict, err, httperr.MsgInProgress)
		default:
			httperr.WriteBackend(w, err, "Error al entregar el pedido al repartidor")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
