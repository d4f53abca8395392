package map_get

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	state MapState
}

func New(state MapState) *Handler {
	return &Handler{
		state: state,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(h.state.Build())
}
