package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"console/pkg/logger"
)

const checkTimeout = time.Second

// Check is a dependency the console cannot serve without, e.g. the journal database.
type Check struct {
	Name   string
	Pinger Pinger
}

type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	checks         []Check
}

func New(log handlerLogger, isShuttingDown *atomic.Bool, checks ...Check) *Handler {
	return &Handler{
		log:            log,
		isShuttingDown: isShuttingDown,
		checks:         checks,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		err := check.Pinger.Ping(ctx)
		cancel()
		if err != nil {
			h.log.Warn("healthcheck failed",
				logger.NewField("check", check.Name),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
