package deliveries_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"console/internal/entities"
	"console/internal/handlers/rest/dto"
	"console/internal/handlers/rest/httperr"
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

// ServeHTTP lists the active deliveries, or only those ready to assign with ?ready=true.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ready := false
	if raw := r.URL.Query().Get("ready"); raw != "" {
		var err error
		ready, err = strconv.ParseBool(raw)
		if err != nil {
			httperr.Write(w, http.StatusBadRequest, err, httperr.MsgInvalidRequest)
			return
		}
	}

	var deliveries []entities.Delivery
	if ready {
		deliveries = h.live.ReadyToAssign()
	} else {
		deliveries = h.live.Actives()
	}
	snapshot := h.live.Snapshot()

	response := dto.DeliveriesResponse{
		Deliveries: dto.DeliveriesFromEntities(deliveries),
		Loading:    snapshot.ActivesLoading || snapshot.LoadingAll,
		UpdatedAt:  dto.TimePtr(snapshot.ActivesAt),
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
