package logout_post

import "net/http"

// Handler ends the staff session. Activities that act on the operator's
// behalf (GPS forwarding) stop with it.
type Handler struct {
	service Service
	stop    []Stopper
}

func New(service Service, stop ...Stopper) *Handler {
	return &Handler{
		service: service,
		stop:    stop,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for _, s := range h.stop {
		s.Stop()
	}
	h.service.Logout()

	w.WriteHeader(http.StatusNoContent)
}
