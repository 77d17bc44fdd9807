package engine

import (
	"sync"
	"time"
)

// PausableClock is a Clock that stands still while paused
// Canvases driven by it see zero deltas, so the animation clock freezes while pointer input still lands
type PausableClock struct {
	mu   sync.RWMutex
	base Clock

	paused     bool
	pauseStart time.Time     // base time when the current pause began
	totalPause time.Duration // completed pauses
}

// NewPausableClock wraps base; nil uses the system clock
func NewPausableClock(base Clock) *PausableClock {
	if base == nil {
		base = NewTimeProvider()
	}
	return &PausableClock{base: base}
}

// Now returns base time minus every pause, frozen at the pause point while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseStart.Add(-pc.totalPause)
	}
	return pc.base.Now().Add(-pc.totalPause)
}

// Pause stops time advancement; repeated calls are no-ops
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		pc.paused = true
		pc.pauseStart = pc.base.Now()
	}
}

// Resume continues from where Pause froze
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		pc.totalPause += pc.base.Now().Sub(pc.pauseStart)
		pc.paused = false
	}
}

// Toggle flips the pause state and reports the new one
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// PausedFor returns cumulative pause time including a pause in progress
func (pc *PausableClock) PausedFor() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPause
	if pc.paused {
		total += pc.base.Now().Sub(pc.pauseStart)
	}
	return total
}
