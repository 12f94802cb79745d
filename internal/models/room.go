package models

import "sync"

// Room represents one isolated game session
type Room struct {
	Code       string
	HostID     string
	Players    []*Player // join order, never reordered by score changes
	State      RoomState
	Round      int
	Letter     string
	TimeLeft   int
	Categories []Category
	Voting     Ledger // nil until a round has ended

	mu    sync.RWMutex
	timer *RoundTimer
}

// Lock acquires the room's write lock
func (r *Room) Lock() {
	r.mu.Lock()
}

// Unlock releases the room's write lock
func (r *Room) Unlock() {
	r.mu.Unlock()
}

// RLock acquires the room's read lock
func (r *Room) RLock() {
	r.mu.RLock()
}

// RUnlock releases the room's read lock
func (r *Room) RUnlock() {
	r.mu.RUnlock()
}

// FindPlayer returns the member with the given id, or nil (must be called with lock held)
func (r *Room) FindPlayer(playerID string) *Player {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// PlayerIDs returns member ids in join order (must be called with lock held)
func (r *Room) PlayerIDs() []string {
	ids := make([]string, 0, len(r.Players))
	for _, p := range r.Players {
		ids = append(ids, p.ID)
	}
	return ids
}

// Timer returns the live countdown handle, if any (must be called with lock held)
func (r *Room) Timer() *RoundTimer {
	return r.timer
}

// SetTimer installs a new countdown handle (must be called with lock held)
func (r *Room) SetTimer(t *RoundTimer) {
	r.timer = t
}

// CancelTimer cancels and clears any live timer (must be called with lock held)
func (r *Room) CancelTimer() {
	if r.timer != nil {
		r.timer.Cancel()
		r.timer = nil
	}
}
