package models

import "sync"

// RoundTimer is a cancellable handle for one room's running countdown.
// Cancel is idempotent and safe from any goroutine.
type RoundTimer struct {
	done chan struct{}
	once sync.Once
}

// NewRoundTimer creates a live, not-yet-cancelled timer handle
func NewRoundTimer() *RoundTimer {
	return &RoundTimer{done: make(chan struct{})}
}

// Cancel stops the countdown this handle drives
func (t *RoundTimer) Cancel() {
	t.once.Do(func() { close(t.done) })
}

// Done is closed once the timer has been cancelled
func (t *RoundTimer) Done() <-chan struct{} {
	return t.done
}
