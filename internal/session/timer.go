package session

import (
	"time"

	"stopgame/internal/events"
	"stopgame/internal/models"
)

// countdown drives one round's clock. It stops on its own at zero, or as
// soon as its handle is cancelled. A tick that races the cancellation sees
// a different timer installed on the room and does nothing.
func (c *Coordinator) countdown(room *models.Room, timer *models.RoundTimer) {
	ticker := time.NewTicker(c.tickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-timer.Done():
			return
		case <-ticker.C:
			if c.tick(room, timer) {
				return
			}
		}
	}
}

// tick burns one time unit and reports whether the countdown is over
func (c *Coordinator) tick(room *models.Room, timer *models.RoundTimer) bool {
	room.Lock()
	if room.Timer() != timer {
		// Cancelled while this tick was in flight.
		room.Unlock()
		return true
	}

	room.TimeLeft--
	if room.TimeLeft <= 0 {
		ended, scored := c.endRoundLocked(room)
		room.Unlock()
		c.logger.Info("round timed out", "room", room.Code)
		c.emitRoundEnd(room.Code, ended, scored)
		return true
	}

	remaining := room.TimeLeft
	room.Unlock()
	c.bus.ToRoom(room.Code, events.TimeUpdate, remaining)
	return false
}
