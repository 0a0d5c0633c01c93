// Package websocket fans entity-change events out to connected clients.
// The hub is broadcast-only: clients subscribe by connecting and receive
// every committed create/update/delete as a JSON frame.
package websocket

import (
	"context"
	"encoding/json"

	"catalog-service/internal/events"

	"go.uber.org/zap"
)

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan events.ChangeEvent
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan events.ChangeEvent, 256),
		logger:     logger,
	}
}

// Publish implements events.Publisher. Events are dropped when the
// broadcast buffer is full so mutations never block on slow consumers.
func (h *Hub) Publish(ev events.ChangeEvent) {
	select {
	case h.broadcast <- ev:
	default:
		h.logger.Warn("change event dropped, broadcast buffer full")
	}
}

// Run owns the client set. All register/unregister/broadcast traffic goes
// through this single goroutine.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				client.close()
				delete(h.clients, client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			h.logger.Info("ws client connected", zap.Int("clients", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				client.close()
				delete(h.clients, client)
				h.logger.Info("ws client disconnected", zap.Int("clients", len(h.clients)))
			}

		case ev := <-h.broadcast:
			payload, err := json.Marshal(ev)
			if err != nil {
				h.logger.Error("failed to marshal change event", zap.Error(err))
				continue
			}
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					client.close()
					delete(h.clients, client)
				}
			}
		}
	}
}
