package system

import (
	"testing"
	"time"

	"ar-tower-defense/internal/component"
	"ar-tower-defense/internal/event"
	"ar-tower-defense/internal/tracking"
	"ar-tower-defense/pkg/clock"
)

type towerHarness struct {
	base   *tracking.SimAnchor
	anchor *tracking.SimAnchor
	mock   *clock.MockTimeProvider
	rec    *eventRecorder
	sys    *TowerSystem
	tower  *component.Tower
}

func newTowerHarness() *towerHarness {
	h := &towerHarness{
		base:   tracking.NewSimAnchor("base", 0, 0),
		anchor: tracking.NewSimAnchor("tower-1", 0.3, 0),
		mock:   clock.NewMockTimeProvider(time.Unix(0, 0)),
		rec:    &eventRecorder{},
	}
	h.base.SetVisible(true)
	dispatcher := event.NewDispatcher()
	dispatcher.Subscribe(event.TowerActivated, h.rec)
	dispatcher.Subscribe(event.TowerMoving, h.rec)
	h.sys = NewTowerSystem(h.base, dispatcher, h.mock, nil)
	h.sys.Reinit([]AnchorRef{{ID: "tower-1", Anchor: h.anchor}})
	h.tower = h.sys.Instances()[0]
	return h
}

// stabilize makes the tower visible and holds it still long enough to
// activate.
func (h *towerHarness) stabilize(t *testing.T) {
	t.Helper()
	h.anchor.SetVisible(true)
	h.sys.Update()
	h.mock.Advance(h.sys.stability)
	h.sys.Update()
	if h.tower.State != component.TowerActive {
		t.Fatalf("state after stabilization = %v, want Active", h.tower.State)
	}
}

func TestTowerFoundEntersBuilding(t *testing.T) {
	h := newTowerHarness()
	if h.tower.State != component.TowerUntracked {
		t.Fatalf("initial state = %v, want Untracked", h.tower.State)
	}

	h.anchor.SetVisible(true)
	if h.tower.State != component.TowerBuilding {
		t.Errorf("state after found = %v, want Building", h.tower.State)
	}
	if h.tower.Home != nil {
		t.Error("Home set while still building")
	}
}

func TestTowerActivatesAfterHoldingStill(t *testing.T) {
	h := newTowerHarness()
	h.anchor.SetVisible(true)
	h.sys.Update() // first sample starts the stability countdown

	h.mock.Advance(h.sys.stability - 10*time.Millisecond)
	h.sys.Update()
	if h.tower.State != component.TowerBuilding {
		t.Fatalf("state just before the stability window = %v, want Building", h.tower.State)
	}

	h.mock.Advance(10 * time.Millisecond)
	h.sys.Update()
	if h.tower.State != component.TowerActive {
		t.Fatalf("state at the stability window = %v, want Active", h.tower.State)
	}
	if h.tower.Home == nil {
		t.Fatal("Home not adopted on activation")
	}
	if h.rec.count(event.TowerActivated) != 1 {
		t.Errorf("TowerActivated dispatched %d times, want 1", h.rec.count(event.TowerActivated))
	}
}

func TestDisplacementAboveJitterResetsCountdown(t *testing.T) {
	h := newTowerHarness()
	h.anchor.SetVisible(true)
	h.sys.Update()

	h.mock.Advance(2 * time.Second)
	h.anchor.Nudge(0.02, 0) // well above jitter tolerance
	h.sys.Update()

	h.mock.Advance(2 * time.Second)
	h.sys.Update()
	if h.tower.State != component.TowerBuilding {
		t.Fatalf("state 2 s after reset = %v, want Building", h.tower.State)
	}

	h.mock.Advance(time.Second)
	h.sys.Update()
	if h.tower.State != component.TowerActive {
		t.Errorf("state after a fresh full window = %v, want Active", h.tower.State)
	}
}

func TestJitterWithinToleranceStillActivates(t *testing.T) {
	h := newTowerHarness()
	h.anchor.SetJitter(0.002)
	h.anchor.SetVisible(true)

	// Sample every 100 ms with sub-tolerance noise; the countdown must
	// never reset.
	for i := 0; i < 31; i++ {
		h.sys.Update()
		h.mock.Advance(100 * time.Millisecond)
	}
	h.sys.Update()
	if h.tower.State != component.TowerActive {
		t.Errorf("state = %v with sub-tolerance jitter, want Active", h.tower.State)
	}
}

func TestMoveFromHomeReentersBuilding(t *testing.T) {
	h := newTowerHarness()
	h.stabilize(t)

	h.anchor.Nudge(0.06, 0) // beyond the move threshold
	h.sys.Update()
	if h.tower.State != component.TowerBuilding {
		t.Fatalf("state after move = %v, want Building", h.tower.State)
	}
	if h.tower.Home != nil {
		t.Error("Home retained after move")
	}
	if h.rec.count(event.TowerMoving) != 1 {
		t.Errorf("TowerMoving dispatched %d times, want 1", h.rec.count(event.TowerMoving))
	}

	// Re-stabilization adopts the new position as home.
	h.mock.Advance(h.sys.stability)
	h.sys.Update()
	if h.tower.State != component.TowerActive {
		t.Fatalf("state after re-stabilization = %v, want Active", h.tower.State)
	}
	if h.tower.Home.X != 0.36 {
		t.Errorf("new Home.X = %v, want 0.36", h.tower.Home.X)
	}
}

func TestSmallDriftStaysActive(t *testing.T) {
	h := newTowerHarness()
	h.stabilize(t)

	h.anchor.Nudge(0.03, 0) // below the move threshold
	h.sys.Update()
	if h.tower.State != component.TowerActive {
		t.Errorf("state after small drift = %v, want Active", h.tower.State)
	}
}

func TestLostClearsStateAndGraceBlocksAttacks(t *testing.T) {
	h := newTowerHarness()
	h.sys.SetStability(100 * time.Millisecond)
	h.stabilize(t)
	if !h.sys.AttackReady(h.tower) {
		t.Fatal("AttackReady = false for a stable active tower")
	}

	h.anchor.SetVisible(false)
	if h.tower.State != component.TowerUntracked {
		t.Fatalf("state after lost = %v, want Untracked", h.tower.State)
	}
	if h.tower.Home != nil || h.tower.Last != nil {
		t.Error("positions retained after lost")
	}
	if h.sys.AttackReady(h.tower) {
		t.Error("AttackReady = true while untracked")
	}

	// Re-acquire and stabilize quickly. Readiness is still gated by the
	// post-loss grace window.
	h.mock.Advance(50 * time.Millisecond)
	h.anchor.SetVisible(true)
	h.sys.Update()
	h.mock.Advance(100 * time.Millisecond)
	h.sys.Update()
	if h.tower.State != component.TowerActive {
		t.Fatalf("state after re-stabilization = %v, want Active", h.tower.State)
	}
	if h.sys.AttackReady(h.tower) {
		t.Error("AttackReady = true inside the grace window")
	}

	h.mock.Advance(h.sys.grace)
	if !h.sys.AttackReady(h.tower) {
		t.Error("AttackReady = false after the grace window")
	}
}

func TestBuildProgressMonotonic(t *testing.T) {
	h := newTowerHarness()
	h.anchor.SetVisible(true)
	h.sys.Update()

	prev := -1
	for i := 0; i < 12; i++ {
		got := h.sys.BuildProgress(h.tower)
		if got < prev {
			t.Fatalf("progress went backwards: %d after %d", got, prev)
		}
		prev = got
		h.mock.Advance(300 * time.Millisecond)
		h.sys.Update()
	}
	if h.tower.State != component.TowerActive {
		t.Fatal("tower never activated")
	}
	if got := h.sys.BuildProgress(h.tower); got != 100 {
		t.Errorf("active progress = %d, want 100", got)
	}
}

func TestBuildProgressRoundsUp(t *testing.T) {
	h := newTowerHarness()
	h.anchor.SetVisible(true)
	h.sys.Update()

	h.mock.Advance(10 * time.Millisecond)
	if got := h.sys.BuildProgress(h.tower); got != 1 {
		t.Errorf("progress at 10 ms = %d, want 1", got)
	}
	if got := h.sys.BuildProgress(&component.Tower{State: component.TowerUntracked}); got != 0 {
		t.Errorf("untracked progress = %d, want 0", got)
	}
}

func TestReinitReusesInstancesAndListeners(t *testing.T) {
	h := newTowerHarness()
	h.stabilize(t)

	refs := []AnchorRef{{ID: "tower-1", Anchor: h.anchor}}
	h.sys.Reinit(refs)
	h.sys.Reinit(refs)

	if got := h.anchor.FoundCallbackCount(); got != 1 {
		t.Errorf("found listeners = %d after repeated Reinit, want 1", got)
	}
	if got := h.anchor.LostCallbackCount(); got != 1 {
		t.Errorf("lost listeners = %d after repeated Reinit, want 1", got)
	}
	if h.sys.Instances()[0] != h.tower {
		t.Error("Reinit replaced the live instance")
	}
	if h.tower.State != component.TowerActive {
		t.Errorf("state lost across Reinit: %v, want Active", h.tower.State)
	}
}

func TestReinitUnlocksSecondAnchor(t *testing.T) {
	h := newTowerHarness()
	second := tracking.NewSimAnchor("tower-2", -0.3, 0)
	h.stabilize(t)

	h.sys.Reinit([]AnchorRef{
		{ID: "tower-1", Anchor: h.anchor},
		{ID: "tower-2", Anchor: second},
	})
	if len(h.sys.Instances()) != 2 {
		t.Fatalf("instances = %d, want 2", len(h.sys.Instances()))
	}
	if h.sys.Instances()[0].State != component.TowerActive {
		t.Error("existing instance lost its state when a second was unlocked")
	}
	if h.sys.Instances()[1].State != component.TowerUntracked {
		t.Error("new instance not Untracked")
	}
}

func TestApplyStatsPropagates(t *testing.T) {
	h := newTowerHarness()
	h.sys.ApplyStats(0.9, 600*time.Millisecond)

	if h.tower.Range != 0.9 {
		t.Errorf("Range = %v, want 0.9", h.tower.Range)
	}
	if h.tower.FireRate != 600*time.Millisecond {
		t.Errorf("FireRate = %v, want 600ms", h.tower.FireRate)
	}
}

func TestHiddenTowerIsNotSampled(t *testing.T) {
	h := newTowerHarness()
	h.sys.Update()
	h.mock.Advance(time.Minute)
	h.sys.Update()
	if h.tower.State != component.TowerUntracked {
		t.Errorf("state = %v for a never-seen anchor, want Untracked", h.tower.State)
	}
}
