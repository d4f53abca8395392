package gps_delete

import "net/http"

type Handler struct {
	reporter Reporter
}

func New(reporter Reporter) *Handler {
	return &Handler{
		reporter: reporter,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.reporter.Stop()
	w.WriteHeader(http.StatusNoContent)
}
