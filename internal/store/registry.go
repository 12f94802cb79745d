package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"stopgame/internal/game"
	"stopgame/internal/models"
)

// RoomStore manages every active room, keyed by room code, plus a
// player→room index so a disconnect can find its room without scanning.
// Creation and destruction of a room are atomic with respect to
// concurrent join/leave on the same code.
type RoomStore struct {
	rooms       map[string]*models.Room
	playerRooms map[string]string // playerID -> room code
	mu          sync.RWMutex
}

// RegistryStats is the cross-room summary for the room listing
type RegistryStats struct {
	TotalRooms   int `json:"totalRooms"`
	TotalPlayers int `json:"totalPlayers"`
}

// NewRoomStore creates an empty registry
func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms:       make(map[string]*models.Room),
		playerRooms: make(map[string]string),
	}
}

// Create initializes a room in the waiting state with the default
// categories and no host. An empty code generates a fresh unique one.
// Creating a code that already exists returns the existing room, so two
// racing joins to the same new code end up in one room.
func (s *RoomStore) Create(code string) *models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	if code == "" {
		code = s.uniqueCodeLocked()
	} else if room, exists := s.rooms[code]; exists {
		return room
	}

	room := &models.Room{
		Code:       code,
		State:      models.StateWaiting,
		Round:      1,
		TimeLeft:   game.RoundTime,
		Players:    make([]*models.Player, 0, game.MaxPlayers),
		Categories: models.DefaultCategories(),
	}
	s.rooms[code] = room
	return room
}

// uniqueCodeLocked draws 6-char codes from a UUID until one is free
func (s *RoomStore) uniqueCodeLocked() string {
	for {
		code := strings.ToUpper(uuid.NewString()[:game.RoomCodeLength])
		if _, exists := s.rooms[code]; !exists {
			return code
		}
	}
}

// Join adds a player to a room. The first player in becomes host.
func (s *RoomStore) Join(code string, player *models.Player) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, exists := s.rooms[code]
	if !exists {
		return nil, game.ErrRoomNotFound
	}

	room.Lock()
	defer room.Unlock()

	if len(room.Players) >= game.MaxPlayers {
		return nil, game.ErrRoomFull
	}
	for _, p := range room.Players {
		if p.Name == player.Name {
			return nil, game.ErrDuplicateName
		}
	}
	if len(room.Players) == 0 {
		room.HostID = player.ID
	}
	room.Players = append(room.Players, player)
	s.playerRooms[player.ID] = code
	return room, nil
}

// Get retrieves a room by code
func (s *RoomStore) Get(code string) (*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, exists := s.rooms[code]
	if !exists {
		return nil, game.ErrRoomNotFound
	}
	return room, nil
}

// RoomFor returns the room a player currently occupies
func (s *RoomStore) RoomFor(playerID string) (*models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	code, ok := s.playerRooms[playerID]
	if !ok {
		return nil, false
	}
	room, exists := s.rooms[code]
	return room, exists
}

// RemovePlayer takes a player out of whatever room they occupy. The last
// player out gets the room's timer cancelled and the room destroyed, in
// the same critical section. Returns the surviving room (nil when the
// room was destroyed), the removed player, and whether a removal happened.
func (s *RoomStore) RemovePlayer(playerID string) (*models.Room, *models.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, ok := s.playerRooms[playerID]
	if !ok {
		return nil, nil, false
	}
	delete(s.playerRooms, playerID)

	room := s.rooms[code]
	room.Lock()
	var removed *models.Player
	for i, p := range room.Players {
		if p.ID == playerID {
			removed = p
			room.Players = append(room.Players[:i], room.Players[i+1:]...)
			break
		}
	}
	if removed == nil {
		room.Unlock()
		return nil, nil, false
	}

	if len(room.Players) == 0 {
		room.CancelTimer()
		room.Unlock()
		delete(s.rooms, code)
		return nil, removed, true
	}
	room.Unlock()
	return room, removed, true
}

// Rooms returns every active room
func (s *RoomStore) Rooms() []*models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := make([]*models.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	return rooms
}

// Stats counts active rooms and seated players
func (s *RoomStore) Stats() RegistryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := RegistryStats{TotalRooms: len(s.rooms)}
	stats.TotalPlayers = len(s.playerRooms)
	return stats
}
