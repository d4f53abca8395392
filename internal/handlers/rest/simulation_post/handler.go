package simulation_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"console/internal/entities"
	"console/internal/handlers/rest/dto"
	"console/internal/handlers/rest/httperr"
	"console/internal/service/simulator"
)

type Handler struct {
	simulator Simulator
	selection Selection
	mapState  MapState
	live      LiveData
}

func New(simulator Simulator, selection Selection, mapState MapState, live LiveData) *Handler {
	return &Handler{
		simulator: simulator,
		selection: selection,
		mapState:  mapState,
		live:      live,
	}
}

// ServeHTTP simulates the courier riding from the tenant's local to the
// destination of the selected delivery, or of delivery_id when given.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var simulationDTO dto.SimulationRequest
	err := json.NewDecoder(r.Body).Decode(&simulationDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		httperr.Write(w, http.StatusBadRequest, err, httperr.MsgInvalidRequest)
		return
	}

	selection := h.selection.Selection()
	deliveryID := strings.TrimSpace(simulationDTO.DeliveryID)

	var dest *entities.Coordinate
	switch {
	case deliveryID == "" || deliveryID == selection.DeliveryID:
		deliveryID = selection.DeliveryID
		dest = selection.Destination
	default:
		if d, ok := h.live.Delivery(deliveryID); ok {
			dest = d.Destination
		}
	}

	err = h.simulator.Start(r.Context(), deliveryID, h.mapState.Snapshot().Origin, dest)
	if err != nil {
		switch {
		case errors.Is(err, simulator.ErrMissingEndpoints):
			httperr.Write(w, http.StatusBadRequest, err, "La entrega no tiene origen o destino válido")
		default:
			httperr.Write(w, http.StatusInternalServerError, err, "No se pudo iniciar la simulación")
		}
		return
	}

	response := dto.SimulationStatus{
		Simulating: h.simulator.Simulating(),
		Progress:   h.simulator.Progress(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(response)
}
