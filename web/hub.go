/* hub.go
 * Contains the websocket hub. It tracks the connected pages and fans controller events out to them
 */

package web

import (
	"context"
	"sync"

	"sumo-data/app"

	"github.com/sirupsen/logrus"
)

const broadcastBufferSize = 64

// Hub maintains the set of active clients and broadcasts events to them
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	// Inbound events from the controller
	broadcast chan app.Event

	register   chan *Client
	unregister chan *Client
	// Closed when Run returns
	done chan struct{}

	logger *logrus.Logger
}

// NewHub creates a new Hub instance. A nil logger uses the logrus standard logger
func NewHub(logger *logrus.Logger) *Hub {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan app.Event, broadcastBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run starts the hub's main loop and returns when ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	h.logger.Debug("websocket hub started")
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case c := <-h.register:
			h.registerClient(c)

		case c := <-h.unregister:
			h.unregisterClient(c)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Register adds a client to the hub. It returns false once the hub has stopped
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Notify implements app.Notifier. Events are dropped when the broadcast buffer is full
func (h *Hub) Notify(event app.Event) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.WithField("type", event.Type).Warn("broadcast buffer full, dropping event")
	}
}

// ClientCount returns the number of active clients
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	h.clients[c] = true
	h.logger.WithFields(logrus.Fields{"client": c.ID, "total": len(h.clients)}).Info("websocket client connected")
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
		h.logger.WithFields(logrus.Fields{"client": c.ID, "total": len(h.clients)}).Info("websocket client disconnected")
	}
}

func (h *Hub) broadcastEvent(event app.Event) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	for _, c := range clients {
		if !c.TrySend(event) {
			// Too slow to keep up
			h.logger.WithField("client", c.ID).Warn("client buffer full, disconnecting")
			go h.Unregister(c)
		}
	}
}

// shutdown closes all client connections
func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	close(h.done)
	h.logger.WithField("clients", len(h.clients)).Info("shutting down websocket hub")
	for c := range h.clients {
		close(c.Send)
		delete(h.clients, c)
	}
}
