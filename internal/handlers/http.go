package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"stopgame/internal/game"
	"stopgame/internal/store"
	"stopgame/internal/ws"
)

// Handler wires the HTTP surface: the websocket endpoint plus a couple of
// read-only inspection routes.
type Handler struct {
	Store  *store.RoomStore
	Hub    *ws.Hub
	Logger *slog.Logger
}

// Routes builds the router
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.AllowAll().Handler)

	r.Get("/ws", h.Hub.ServeWS)
	r.Get("/healthz", h.health)
	r.Get("/rooms", h.listRooms)

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type roomInfo struct {
	RoomID string         `json:"roomId"`
	State  string         `json:"gameState"`
	Round  int            `json:"currentRound"`
	Stats  game.RoomStats `json:"stats"`
}

type roomListing struct {
	store.RegistryStats
	Rooms []roomInfo `json:"rooms"`
}

func (h *Handler) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms := h.Store.Rooms()
	listing := roomListing{
		RegistryStats: h.Store.Stats(),
		Rooms:         make([]roomInfo, 0, len(rooms)),
	}
	for _, room := range rooms {
		room.RLock()
		listing.Rooms = append(listing.Rooms, roomInfo{
			RoomID: room.Code,
			State:  string(room.State),
			Round:  room.Round,
			Stats:  game.Stats(room.Players),
		})
		room.RUnlock()
	}
	h.writeJSON(w, http.StatusOK, listing)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("writing response", "error", err)
	}
}
