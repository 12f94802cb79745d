package ws

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"stopgame/internal/events"
	"stopgame/internal/session"
	"stopgame/internal/store"
)

// Hub owns every live connection and routes events between them and the
// game coordinator. It implements session.Broadcaster.
type Hub struct {
	coordinator *session.Coordinator
	store       *store.RoomStore
	logger      *slog.Logger
	upgrader    websocket.Upgrader

	clients map[string]*Client // playerID -> connection
	mu      sync.RWMutex
}

// NewHub creates a hub with no coordinator attached yet; the coordinator
// needs the hub as its broadcaster, so it is wired in afterwards with
// SetCoordinator.
func NewHub(s *store.RoomStore, logger *slog.Logger) *Hub {
	return &Hub{
		store:  s,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Game clients are served from arbitrary origins.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[string]*Client),
	}
}

// SetCoordinator completes the hub/coordinator pair
func (h *Hub) SetCoordinator(c *session.Coordinator) {
	h.coordinator = c
}

// ServeWS upgrades the request and runs the connection until it closes
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := newClient(uuid.NewString(), h, conn)

	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()
	h.logger.Info("client connected", "client", client.ID)

	go client.writePump()

	client.trySend(events.ChatMessage, events.ChatPayload{
		Message:    "Conectado ao servidor do STOP! 🎮",
		PlayerID:   "server",
		PlayerName: "Sistema",
	})

	client.readPump()
}

// unregister drops the connection and tells the coordinator the player is
// gone. Safe to call more than once per client.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	registered := h.clients[c.ID] == c
	if registered {
		delete(h.clients, c.ID)
		close(c.done)
	}
	h.mu.Unlock()

	if registered {
		h.logger.Info("client disconnected", "client", c.ID)
		h.coordinator.Disconnect(c.ID)
	}
}

// ToRoom sends an event to every connected member of a room
func (h *Hub) ToRoom(code, event string, payload any) {
	room, err := h.store.Get(code)
	if err != nil {
		return
	}
	room.RLock()
	ids := room.PlayerIDs()
	room.RUnlock()

	h.mu.RLock()
	targets := make([]*Client, 0, len(ids))
	for _, id := range ids {
		if client, ok := h.clients[id]; ok {
			targets = append(targets, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range targets {
		client.trySend(event, payload)
	}
}

// ToPlayer sends an event to one player's connection, if it is still up
func (h *Hub) ToPlayer(playerID, event string, payload any) {
	h.mu.RLock()
	client, ok := h.clients[playerID]
	h.mu.RUnlock()
	if ok {
		client.trySend(event, payload)
	}
}

func (h *Hub) sendError(c *Client, message string) {
	c.trySend(events.Error, events.ErrorPayload{Message: message})
}
