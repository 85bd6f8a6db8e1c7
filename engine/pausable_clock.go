package engine

import (
	"sync"
	"time"
)

// PausableClock reports game time: real time minus every paused interval
type PausableClock struct {
	mu sync.RWMutex

	source    TimeProvider
	origin    time.Time // real time at creation, also the game time epoch
	paused    bool
	pausedAt  time.Time     // real time the current pause began
	pausedSum time.Duration // completed pauses
}

// NewPausableClock creates a running clock over source
func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{
		source: source,
		origin: source.Now(),
	}
}

// Now returns game time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	real := pc.source.Now()
	if pc.paused {
		real = pc.pausedAt
	}
	return pc.origin.Add(real.Sub(pc.origin) - pc.pausedSum)
}

// Pause freezes game time; no-op if already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.source.Now()
}

// Resume continues game time from where it froze; no-op if running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.pausedSum += pc.source.Now().Sub(pc.pausedAt)
	pc.paused = false
	pc.pausedAt = time.Time{}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused reports whether game time is frozen
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPaused returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.pausedSum
	if pc.paused {
		total += pc.source.Now().Sub(pc.pausedAt)
	}
	return total
}
