package engine

import (
	"time"
)

// PausableClock turns wall clock readings into simulation steps
// Paused time never reaches the simulation, long stalls are capped at maxDelta
// Owned by the frame loop goroutine
type PausableClock struct {
	provider TimeProvider
	maxDelta time.Duration

	last time.Time

	// Pause state
	paused          bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a running clock reading from provider
// maxDelta <= 0 disables the cap
func NewPausableClock(provider TimeProvider, maxDelta time.Duration) *PausableClock {
	return &PausableClock{
		provider: provider,
		maxDelta: maxDelta,
		last:     provider.Now(),
	}
}

// Tick returns the step since the previous Tick, zero while paused
func (pc *PausableClock) Tick() time.Duration {
	if pc.paused {
		return 0
	}

	now := pc.provider.Now()
	dt := now.Sub(pc.last)
	pc.last = now

	if dt < 0 {
		return 0
	}
	if pc.maxDelta > 0 && dt > pc.maxDelta {
		dt = pc.maxDelta
	}
	return dt
}

// Pause stops simulation time advancement
func (pc *PausableClock) Pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues simulation time, the paused span is skipped
func (pc *PausableClock) Resume() {
	if !pc.paused {
		return
	}
	now := pc.provider.Now()
	pc.paused = false
	pc.totalPausedTime += now.Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.last = now
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.paused {
		pc.Resume()
	} else {
		pc.Pause()
	}
	return pc.paused
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// GetTotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
