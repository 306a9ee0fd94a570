package clock

import (
	"testing"
	"time"
)

func newTestScheduler() (*MockTimeProvider, *Scheduler) {
	tp := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return tp, NewScheduler(tp)
}

func TestSchedulerAfterFiresOnce(t *testing.T) {
	tp, s := newTestScheduler()

	fired := 0
	s.After(time.Second, func() { fired++ })

	s.Update()
	if fired != 0 {
		t.Fatal("fired before deadline")
	}
	tp.Advance(time.Second)
	s.Update()
	s.Update()
	tp.Advance(time.Hour)
	s.Update()
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestSchedulerEveryCadence(t *testing.T) {
	tp, s := newTestScheduler()

	fired := 0
	s.Every(time.Second, func() { fired++ })

	// First fire only after one full interval.
	tp.Advance(999 * time.Millisecond)
	s.Update()
	if fired != 0 {
		t.Fatal("repeating task fired early")
	}
	for i := 0; i < 5; i++ {
		tp.Advance(time.Second)
		s.Update()
	}
	if fired != 5 {
		t.Errorf("fired = %d, want 5", fired)
	}
}

func TestSchedulerStopPreventsFire(t *testing.T) {
	tp, s := newTestScheduler()

	fired := false
	task := s.After(time.Second, func() { fired = true })
	task.Stop()

	tp.Advance(2 * time.Second)
	s.Update()
	if fired {
		t.Error("stopped task fired")
	}
}

// A task cancelled by an earlier callback in the same Update pass must not
// fire, even though its deadline has already passed.
func TestSchedulerCancellationRace(t *testing.T) {
	tp, s := newTestScheduler()

	var victim *Task
	victimFired := false
	s.After(time.Second, func() { victim.Stop() })
	victim = s.After(time.Second, func() { victimFired = true })

	tp.Advance(2 * time.Second)
	s.Update()
	if victimFired {
		t.Error("task fired after being stopped within the same update")
	}
}

func TestSchedulerRepeatingDoesNotBurstAfterStall(t *testing.T) {
	tp, s := newTestScheduler()

	fired := 0
	s.Every(time.Second, func() { fired++ })

	// Ten intervals pass without an Update; only one fire is due, and the
	// cadence re-anchors instead of replaying the backlog.
	tp.Advance(10 * time.Second)
	s.Update()
	if fired != 1 {
		t.Errorf("fired = %d after stall, want 1", fired)
	}
	tp.Advance(time.Second)
	s.Update()
	if fired != 2 {
		t.Errorf("fired = %d after re-anchor, want 2", fired)
	}
}

func TestSchedulerWithPausableClock(t *testing.T) {
	tp := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(tp)
	s := NewScheduler(pc)

	fired := 0
	s.Every(time.Second, func() { fired++ })

	tp.Advance(500 * time.Millisecond)
	s.Update()
	pc.Pause()
	tp.Advance(time.Hour) // real time passes, game time frozen
	s.Update()
	if fired != 0 {
		t.Fatal("task fired while clock paused")
	}
	pc.Resume()
	tp.Advance(500 * time.Millisecond)
	s.Update()
	if fired != 1 {
		t.Errorf("fired = %d, want 1: interval must resume where it left off", fired)
	}
}

func TestSchedulerCallbackMaySchedule(t *testing.T) {
	tp, s := newTestScheduler()

	secondFired := false
	s.After(time.Second, func() {
		s.After(time.Second, func() { secondFired = true })
	})

	tp.Advance(time.Second)
	s.Update()
	if secondFired {
		t.Fatal("chained task fired in the same update it was scheduled")
	}
	tp.Advance(time.Second)
	s.Update()
	if !secondFired {
		t.Error("chained task never fired")
	}
}
