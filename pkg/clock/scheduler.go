// pkg/clock/scheduler.go
package clock

import "time"

// Task is a handle on one scheduled callback. Stop cancels it; a stopped
// task never fires again, even if its deadline has already passed when the
// next Update runs. Callbacks that must also survive handle reuse guard
// themselves with their own liveness check.
type Task struct {
	deadline time.Time
	interval time.Duration
	repeat   bool
	fn       func()
	stopped  bool
}

// Stop cancels the task. Safe to call more than once, and safe to call from
// inside any task callback.
func (t *Task) Stop() {
	t.stopped = true
}

// Stopped reports whether the task has been cancelled or has completed.
func (t *Task) Stopped() bool {
	return t.stopped
}

// Scheduler fires callbacks at deadlines measured against a Clock. It is
// cooperative: nothing fires until Update is called, and callbacks run to
// completion before the next one is dispatched, so there is no shared-memory
// race risk. Driving it from a PausableClock freezes all deadlines across a
// pause.
type Scheduler struct {
	clock Clock
	tasks []*Task
}

func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	t := &Task{deadline: s.clock.Now().Add(d), fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Every schedules fn to run repeatedly at interval d, first firing one full
// interval from now.
func (s *Scheduler) Every(d time.Duration, fn func()) *Task {
	t := &Task{deadline: s.clock.Now().Add(d), interval: d, repeat: true, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Update fires every due task. A repeating task fires at most once per
// Update; if it has fallen more than one interval behind, its deadline is
// re-anchored to now instead of burst-firing the backlog.
func (s *Scheduler) Update() {
	now := s.clock.Now()
	// Callbacks may schedule new tasks; the index loop picks them up only
	// on a later Update because their deadlines are in the future.
	for i := 0; i < len(s.tasks); i++ {
		t := s.tasks[i]
		if t.stopped || now.Before(t.deadline) {
			continue
		}
		if t.repeat {
			t.deadline = t.deadline.Add(t.interval)
			if now.Sub(t.deadline) > t.interval {
				t.deadline = now.Add(t.interval)
			}
		} else {
			t.stopped = true
		}
		t.fn()
	}
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.tasks = live
}

// Pending returns the number of live tasks.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}
