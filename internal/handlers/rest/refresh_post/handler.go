package refresh_post

import (
	"net/http"

	"console/internal/handlers/rest/httperr"
	"console/pkg/logger"
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

// ServeHTTP reloads riders and actives together. Either list failing is
// reported; the poller already emptied that list.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h.service.ReloadAll(r.Context())
	if err != nil {
		h.log.With(logger.NewField("error", err)).Warn("manual refresh")
		httperr.WriteBackend(w, err, "Error al actualizar los datos")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
