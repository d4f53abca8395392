package tracking_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"console/internal/handlers/rest/dto"
	"console/internal/handlers/rest/httperr"
	"console/internal/service/tracking"
	"console/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	tracker Tracker
}

func New(log handlerLogger, tracker Tracker) *Handler {
	return &Handler{
		log:     log.With(),
		tracker: tracker,
	}
}

// ServeHTTP starts tracking a delivery by id and returns its first track.
// When that first fetch fails tracking stays on and the error is reported.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	deliveryID := mux.Vars(r)["id"]

	track, err := h.tracker.Track(r.Context(), deliveryID)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrNotTracking):
			httperr.Write(w, http.StatusBadRequest, err, "Ingresa el ID de la entrega")
		default:
			h.log.With(
				logger.NewField("delivery_id", deliveryID),
				logger.NewField("error", err),
			).Warn("first track fetch")
			httperr.WriteBackend(w, err, "Error al cargar el recorrido")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.TrackFromEntity(track))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
