package hub

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"console/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

var ErrClosed = errors.New("hub closed")

// Event is what browsers receive: {"type": "...", "data": ...}.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub fans events out to every connected websocket client.
type Hub struct {
	log handlerLogger

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}

	mu      sync.RWMutex
	clients map[string]*Client
}

func New(log handlerLogger) *Hub {
	return &Hub{
		log:        log.With(logger.NewField("component", "hub")),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		clients:    make(map[string]*Client),
	}
}

// Run serves register/unregister/broadcast until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for id, client := range h.clients {
				close(client.send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			count := len(h.clients)
			h.mu.Unlock()
			h.log.Info("websocket client connected",
				logger.NewField("client", client.ID),
				logger.NewField("clients", count),
			)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			h.log.Info("websocket client disconnected",
				logger.NewField("client", client.ID),
				logger.NewField("clients", count),
			)

		case message := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.send <- message:
				default:
					// slow reader, drop it rather than stall everyone
					close(client.send)
					delete(h.clients, id)
					h.log.Warn("websocket client buffer full, disconnecting",
						logger.NewField("client", id),
					)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues an event for every client. It never blocks: when the
// queue is full the event is dropped, the next one supersedes it.
func (h *Hub) Broadcast(eventType string, data any) {
	payload, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		h.log.Error("marshal websocket event",
			logger.NewField("type", eventType),
			logger.NewField("error", err),
		)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.log.Warn("websocket broadcast queue full, dropping event",
			logger.NewField("type", eventType),
		)
	}
}

// Attach registers a connection and starts its pumps. initial, when not nil,
// is sent before any broadcast.
func (h *Hub) Attach(ctx context.Context, conn *websocket.Conn, initial *Event) error {
	client := &Client{
		ID:   uuid.NewString(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	if initial != nil {
		payload, err := json.Marshal(initial)
		if err != nil {
			return err
		}
		client.send <- payload
	}

	select {
	case h.register <- client:
	case <-h.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	go client.writePump()
	go client.readPump()
	return nil
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
