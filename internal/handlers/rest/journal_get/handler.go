package journal_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"console/internal/handlers/rest/dto"
	"console/internal/handlers/rest/httperr"
	"console/internal/service/journal"
	"console/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(),
		service: service,
	}
}

// ServeHTTP returns the recorded positions and simulation runs of a delivery,
// newest first. ?limit= bounds each list.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	deliveryID := mux.Vars(r)["id"]

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.Write(w, http.StatusBadRequest, err, httperr.MsgInvalidRequest)
			return
		}
	}

	locations, err := h.service.Locations(r.Context(), deliveryID, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	simulations, err := h.service.Simulations(r.Context(), deliveryID, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response := dto.JournalResponse{
		DeliveryID:  deliveryID,
		Locations:   dto.JournalLocationsFromEntities(locations),
		Simulations: dto.JournalSimulationsFromEntities(simulations),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, journal.ErrInvalidDeliveryID) {
		httperr.Write(w, http.StatusBadRequest, err, "ID de entrega inválido")
		return
	}

	h.log.With(
		logger.NewField("error", err),
	).Error("read journal")
	httperr.Write(w, http.StatusInternalServerError, err, "Error al leer el historial")
}
