package tracking_delete

import "net/http"

type Handler struct {
	tracker Tracker
}

func New(tracker Tracker) *Handler {
	return &Handler{
		tracker: tracker,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.tracker.Clear()
	w.WriteHeader(http.StatusNoContent)
}
