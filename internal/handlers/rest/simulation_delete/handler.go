package simulation_delete

import (
	"net/http"
	"strconv"

	"console/internal/handlers/rest/httperr"
)

// Handler stops the simulation. ?clear=true also removes its layers from the map.
type Handler struct {
	simulator Simulator
}

func New(simulator Simulator) *Handler {
	return &Handler{
		simulator: simulator,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clear := false
	if raw := r.URL.Query().Get("clear"); raw != "" {
		var err error
		clear, err = strconv.ParseBool(raw)
		if err != nil {
			httperr.Write(w, http.StatusBadRequest, err, httperr.MsgInvalidRequest)
			return
		}
	}

	if clear {
		h.simulator.Clear(r.Context())
	} else {
		h.simulator.Stop(r.Context())
	}

	w.WriteHeader(http.StatusNoContent)
}
