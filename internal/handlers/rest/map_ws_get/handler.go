package map_ws_get

import (
	"net/http"
	"slices"

	"console/internal/pkg/hub"
	"console/pkg/logger"

	"github.com/gorilla/websocket"
)

const EventMap = "map"

// Handler upgrades to a websocket that first receives the current map and
// then every map and notification event broadcast by the hub.
type Handler struct {
	log      handlerLogger
	hub      Hub
	state    MapState
	upgrader websocket.Upgrader
}

// New accepts any origin when allowedOrigins is empty.
func New(log handlerLogger, h Hub, state MapState, allowedOrigins []string) *Handler {
	return &Handler{
		log:   log.With(),
		hub:   h,
		state: state,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
					return true
				}
				return slices.Contains(allowedOrigins, r.Header.Get("Origin"))
			},
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the request.
		h.log.With(
			logger.NewField("error", err),
		).Warn("websocket upgrade")
		return
	}

	initial := &hub.Event{Type: EventMap, Data: h.state.Build()}
	if err := h.hub.Attach(r.Context(), conn, initial); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("attach websocket client")
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		_ = conn.Close()
	}
}
