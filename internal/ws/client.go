package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = 45 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 4096

	// Outbound queue depth per connection.
	sendBuffer = 64
)

// Envelope is the inbound wire format: an event name and its JSON payload
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// outbound is a queued event not yet serialized
type outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Client is one player's connection. Its id doubles as the player id for
// the lifetime of the connection.
type Client struct {
	ID   string
	hub  *Hub
	conn *websocket.Conn

	send chan outbound
	done chan struct{} // closed on unregister, never the send channel

	// Caps inbound message rate per connection so one client cannot
	// monopolize a room's lock.
	limiter *rate.Limiter
}

func newClient(id string, hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		ID:      id,
		hub:     hub,
		conn:    conn,
		send:    make(chan outbound, sendBuffer),
		done:    make(chan struct{}),
		limiter: rate.NewLimiter(20, 40),
	}
}

// trySend queues an event for delivery, dropping it when the client's
// queue is full or the client is gone. Never blocks.
func (c *Client) trySend(event string, payload any) {
	select {
	case <-c.done:
	case c.send <- outbound{Event: event, Data: payload}:
	default:
		c.hub.logger.Warn("dropping event for slow client", "client", c.ID, "event", event)
	}
}

// readPump reads inbound envelopes until the connection dies, then tears
// the client down. Runs on the connection's request goroutine.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var env Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Warn("websocket read failed", "client", c.ID, "error", err)
			}
			return
		}
		if !c.limiter.Allow() {
			c.hub.sendError(c, "too many requests, slow down")
			continue
		}
		c.hub.dispatch(c, env.Event, env.Data)
	}
}

// writePump serializes the outbound queue onto the connection and keeps
// the connection alive with pings. One per client, started by the hub.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
