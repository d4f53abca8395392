package selection_delete

import "net/http"

// Handler drops the selection and stops tracking the selected delivery.
type Handler struct {
	service Service
	tracker Tracker
}

func New(service Service, tracker Tracker) *Handler {
	return &Handler{
		service: service,
		tracker: tracker,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.tracker.Clear()
	h.service.ClearSelection()

	w.WriteHeader(http.StatusNoContent)
}
