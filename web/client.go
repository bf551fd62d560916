/* client.go
 * Contains a single websocket connection and its read and write pumps
 */

package web

import (
	"context"
	"time"

	"sumo-data/app"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Pages never send anything larger than a close frame
	maxMessageSize = 512

	sendBufferSize = 16
)

// Client represents a connected page
type Client struct {
	ID     string
	conn   *websocket.Conn
	Send   chan app.Event
	hub    *Hub
	logger *logrus.Logger
}

// NewClient creates a new client instance
func NewClient(id string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		ID:     id,
		conn:   conn,
		Send:   make(chan app.Event, sendBufferSize),
		hub:    hub,
		logger: hub.logger,
	}
}

// ReadPump discards incoming messages and unregisters the client when the connection closes
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if ctx.Err() != nil {
			return
		}
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.WithField("client", c.ID).WithError(err).Warn("unexpected websocket close")
			}
			return
		}
	}
}

// WritePump writes hub events to the connection and keeps it alive with pings
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case event, ok := <-c.Send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				c.logger.WithField("client", c.ID).WithError(err).Debug("websocket write failed")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// TrySend queues an event without blocking. Returns false if the buffer is full
func (c *Client) TrySend(event app.Event) bool {
	select {
	case c.Send <- event:
		return true
	default:
		return false
	}
}
