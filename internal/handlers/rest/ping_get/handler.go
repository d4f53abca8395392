package ping_get

import (
	"encoding/json"
	"net/http"

	"console/internal/handlers/rest/dto"
	"console/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	checker HealthChecker
}

func New(log handlerLogger, checker HealthChecker) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		checker: checker,
	}
}

// ServeHTTP answers pong together with the backend health. A failing backend
// does not fail the ping.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status, err := h.checker.Health(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("backend health")
	}

	message := "pong"
	res := dto.PingResponse{
		Message: &message,
		Backend: status,
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
