package notifications_get

import (
	"encoding/json"
	"net/http"

	"console/internal/pkg/notify"
)

type Handler struct {
	notifier Notifier
}

func New(notifier Notifier) *Handler {
	return &Handler{
		notifier: notifier,
	}
}

// ServeHTTP returns the recent notifications, oldest first.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	recent := h.notifier.Recent()
	if recent == nil {
		recent = []notify.Notification{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(recent)
}
