package selection_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"console/internal/handlers/rest/dto"
	"console/internal/handlers/rest/httperr"
	"console/internal/service/delivery"
	"console/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	tracker Tracker
}

func New(log handlerLogger, service Service, tracker Tracker) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		tracker: tracker,
	}
}

// ServeHTTP updates the operator's selection. A delivery that is not ready to
// assign becomes the tracked one; its track starts refreshing right away.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var selectionDTO dto.SelectionRequest
	err := json.NewDecoder(r.Body).Decode(&selectionDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, err, httperr.MsgInvalidRequest)
		return
	}

	deliveryID := strings.TrimSpace(selectionDTO.DeliveryID)
	riderID := strings.TrimSpace(selectionDTO.RiderID)
	if deliveryID == "" && riderID == "" {
		httperr.Write(w, http.StatusBadRequest, nil, "Selecciona una entrega o un repartidor")
		return
	}

	var selection delivery.Selection
	if deliveryID != "" {
		selection, err = h.service.SelectDelivery(deliveryID)
		if err != nil {
			writeError(w, err)
			return
		}

		if selection.TrackingID != "" && selection.TrackingID != h.tracker.ID() {
			// a failed first fetch is retried by the refresh loop
			if _, err := h.tracker.Track(r.Context(), selection.TrackingID); err != nil {
				h.log.With(
					logger.NewField("delivery_id", selection.TrackingID),
					logger.NewField("error", err),
				).Warn("start tracking")
			}
		}
	}

	if riderID != "" {
		selection, err = h.service.SelectRider(riderID)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.SelectionFromService(selection))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, delivery.ErrDeliveryNotFound):
		httperr.Write(w, http.StatusNotFound, err, "Entrega no encontrada")
	case errors.Is(err, delivery.ErrRiderNotFound):
		httperr.Write(w, http.StatusNotFound, err, "Repartidor no encontrado")
	case errors.Is(err, delivery.ErrRiderUnavailable):
		httperr.Write(w, http.StatusConflict, err, "El repartidor tiene una entrega activa")
	default:
		httperr.Write(w, http.StatusInternalServerError, err, httperr.MsgFailed)
	}
}
