// pkg/clock/pausable_clock.go
package clock

import "time"

// PausableClock provides game time that freezes while paused. Everything
// scheduled against game time (spawn cadence, stability timers, cooldowns)
// survives a pause without special casing: deadlines simply stop drawing
// nearer until Resume.
//
// The simulation runs a single-threaded cooperative model; the clock is not
// safe for concurrent use.
type PausableClock struct {
	provider TimeProvider

	realStart       time.Time
	gameStart       time.Time
	paused          bool
	pauseStart      time.Time
	totalPausedTime time.Duration
}

func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewSystemTimeProvider()
	}
	now := provider.Now()
	return &PausableClock{
		provider:  provider,
		realStart: now,
		gameStart: now,
	}
}

// Now returns current game time.
func (pc *PausableClock) Now() time.Time {
	if pc.paused {
		// Frozen at the pause point.
		return pc.gameStart.Add(pc.pauseStart.Sub(pc.realStart) - pc.totalPausedTime)
	}
	realElapsed := pc.provider.Now().Sub(pc.realStart)
	return pc.gameStart.Add(realElapsed - pc.totalPausedTime)
}

// Pause stops game time advancement. Pausing an already paused clock is a
// no-op.
func (pc *PausableClock) Pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.provider.Now()
}

// Resume continues game time advancement.
func (pc *PausableClock) Resume() {
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStart)
	pc.pauseStart = time.Time{}
	pc.paused = false
}

func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// TotalPauseDuration returns cumulative paused time, including the current
// pause if one is in progress.
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStart)
	}
	return total
}
