package riders_get

import (
	"encoding/json"
	"net/http"

	"console/internal/handlers/rest/dto"
	"console/pkg/logger"
)

type Handler struct {
	log  handlerLogger
	live LiveData
}

func New(log handlerLogger, live LiveData) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:  handlerLog,
		live: live,
	}
}

// ServeHTTP lists riders with their availability. ?q= filters by id or name.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	riders := h.live.RiderViews(r.URL.Query().Get("q"))
	snapshot := h.live.Snapshot()

	response := dto.RidersResponse{
		Riders:    dto.RidersFromEntities(riders),
		Loading:   snapshot.RidersLoading || snapshot.LoadingAll,
		UpdatedAt: dto.TimePtr(snapshot.RidersAt),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
