package clock

import (
	"testing"
	"time"
)

func TestPausableClockAdvances(t *testing.T) {
	tp := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(tp)

	start := pc.Now()
	tp.Advance(5 * time.Second)
	if got := pc.Now().Sub(start); got != 5*time.Second {
		t.Errorf("elapsed = %v, want 5s", got)
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	tp := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(tp)

	tp.Advance(2 * time.Second)
	frozen := pc.Now()
	pc.Pause()
	tp.Advance(10 * time.Second)

	if got := pc.Now(); !got.Equal(frozen) {
		t.Errorf("paused Now() = %v, want frozen %v", got, frozen)
	}
	if !pc.IsPaused() {
		t.Error("IsPaused() = false while paused")
	}

	pc.Resume()
	tp.Advance(3 * time.Second)
	if got := pc.Now().Sub(frozen); got != 3*time.Second {
		t.Errorf("elapsed after resume = %v, want 3s", got)
	}
	if got := pc.TotalPauseDuration(); got != 10*time.Second {
		t.Errorf("TotalPauseDuration() = %v, want 10s", got)
	}
}

func TestPausableClockDoubleCallsAreNoops(t *testing.T) {
	tp := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(tp)

	pc.Resume() // not paused, should do nothing
	pc.Pause()
	tp.Advance(time.Second)
	pc.Pause() // already paused, pause point must not move
	tp.Advance(time.Second)
	pc.Resume()

	if got := pc.TotalPauseDuration(); got != 2*time.Second {
		t.Errorf("TotalPauseDuration() = %v, want 2s", got)
	}
}
