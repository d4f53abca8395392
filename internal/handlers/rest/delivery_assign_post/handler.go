package delivery_assign_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"console/internal/entities"
	"console/internal/handlers/rest/dto"
	"console/internal/handlers/rest/httperr"
	"console/internal/service/delivery"
	"console/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP assigns a rider. id_delivery assigns from a delivery card,
// otherwise id_order/id_staff form the assignment; fields left out are taken
// from the current selection.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var deliveryAssignDTO dto.AssignRequest
	err := json.NewDecoder(r.Body).Decode(&deliveryAssignDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		httperr.Write(w, http.StatusBadRequest, err, httperr.MsgInvalidRequest)
		return
	}

	var result entities.AssignmentResult
	if deliveryID := strings.TrimSpace(deliveryAssignDTO.DeliveryID); deliveryID != "" {
		result, err = h.service.AssignFromCard(r.Context(), deliveryID, deliveryAssignDTO.RiderID)
	} else {
		form := h.service.Form()
		if deliveryAssignDTO.OrderID != "" {
			form.OrderID = deliveryAssignDTO.OrderID
		}
		if deliveryAssignDTO.RiderID != "" {
			form.RiderID = deliveryAssignDTO.RiderID
		}
		result, err = h.service.Assign(r.Context(), form)
	}
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidOrderID),
			errors.Is(err, delivery.ErrInvalidRiderID),
			errors.Is(err, delivery.ErrInvalidDeliveryID):
			httperr.Write(w, http.StatusBadRequest, err, "Selecciona un pedido y un repartidor")
		case errors.Is(err, delivery.ErrActionInProgress):
			httperr.Write(w, http.StatusConflict, err, httperr.MsgInProgress)
		default:
			httperr.WriteBackend(w, err, "Error al asignar la entrega")
		}
		return
	}

	response := dto.AssignResponse{
		DeliveryID: result.DeliveryID,
		OrderID:    result.OrderID,
		RiderID:    result.RiderID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
