// internal/system/tower.go
package system

import (
	"fmt"
	"math"
	"time"

	"ar-tower-defense/internal/component"
	"ar-tower-defense/internal/config"
	"ar-tower-defense/internal/event"
	"ar-tower-defense/internal/interfaces"
	"ar-tower-defense/pkg/clock"
)

// AnchorRef pairs a tower anchor with its stable id. The order of refs
// passed to Reinit defines which anchors are unlocked first.
type AnchorRef struct {
	ID     string
	Anchor interfaces.Anchor
}

// TowerSystem owns the per-tower build/stabilization state machine, driven
// by tracking events and noisy per-frame position samples.
//
// Policy on re-acquisition: a freshly found tower is always forced into
// Building, even if it was Active before the loss, because the physical
// marker cannot be assumed to still be where it was.
type TowerSystem struct {
	base       interfaces.Anchor
	dispatcher *event.Dispatcher
	clk        clock.Clock
	scene      interfaces.VisualNode // nullable; visuals skipped when absent

	towers   []*component.Tower                     // unlocked instances, stable order
	byAnchor map[interfaces.Anchor]*component.Tower // every instance ever registered

	stability time.Duration
	grace     time.Duration
	rangeVal  float64
	fireRate  time.Duration
}

func NewTowerSystem(base interfaces.Anchor, dispatcher *event.Dispatcher, clk clock.Clock, scene interfaces.VisualNode) *TowerSystem {
	return &TowerSystem{
		base:       base,
		dispatcher: dispatcher,
		clk:        clk,
		scene:      scene,
		byAnchor:   make(map[interfaces.Anchor]*component.Tower),
		stability:  config.StabilityDuration,
		grace:      config.LostGracePeriod,
		rangeVal:   config.BaseTowerRange,
	}
}

func (s *TowerSystem) Base() interfaces.Anchor {
	return s.base
}

// Instances returns the currently unlocked tower instances in anchor order.
func (s *TowerSystem) Instances() []*component.Tower {
	return s.towers
}

// SetStability sets the duration a tower must hold still before activating.
func (s *TowerSystem) SetStability(d time.Duration) {
	s.stability = d
}

// Register returns the instance for a, creating it and binding tracking
// listeners exactly once. Anchors are reused across a run, so calling
// Register again with the same anchor returns the cached instance with its
// accumulated state intact.
func (s *TowerSystem) Register(id string, a interfaces.Anchor) *component.Tower {
	if t, ok := s.byAnchor[a]; ok {
		return t
	}
	t := &component.Tower{
		ID:       id,
		Anchor:   a,
		State:    component.TowerUntracked,
		Range:    s.rangeVal,
		FireRate: s.fireRate,
	}
	a.OnFound(func() { s.handleFound(t) })
	a.OnLost(func() { s.handleLost(t) })
	t.Bound = true
	s.byAnchor[a] = t
	if a.IsVisible() {
		s.handleFound(t)
	}
	return t
}

// Reinit rebuilds the unlocked instance list from refs. Existing instances
// are reused in place; calling Reinit twice with the same refs yields an
// identical set and registers no additional listeners.
func (s *TowerSystem) Reinit(refs []AnchorRef) {
	s.towers = s.towers[:0]
	for _, ref := range refs {
		s.towers = append(s.towers, s.Register(ref.ID, ref.Anchor))
	}
	s.propagateStats()
}

// ApplyStats copies upgrade-derived range and fire rate into every unlocked
// instance. Instances cache these values, so this must be re-run after
// every purchase or run restart.
func (s *TowerSystem) ApplyStats(rangeVal float64, fireRate time.Duration) {
	s.rangeVal = rangeVal
	s.fireRate = fireRate
	s.propagateStats()
}

func (s *TowerSystem) propagateStats() {
	for _, t := range s.towers {
		t.Range = s.rangeVal
		t.FireRate = s.fireRate
	}
}

func (s *TowerSystem) handleFound(t *component.Tower) {
	// Re-acquisition cannot assume the marker stayed put: start over.
	t.State = component.TowerBuilding
	t.Home = nil
	t.Last = nil
	t.StableSince = time.Time{}
	t.InvalidateVisuals()
}

func (s *TowerSystem) handleLost(t *component.Tower) {
	t.State = component.TowerUntracked
	t.Home = nil
	t.Last = nil
	t.StableSince = time.Time{}
	t.LostAt = s.clk.Now()
	// The display subtree may be destroyed along with tracking; handles are
	// re-resolved on the next found.
	t.InvalidateVisuals()
}

// Update samples every visible tower's position in the base's local frame
// and advances its state machine.
func (s *TowerSystem) Update() {
	now := s.clk.Now()
	for _, t := range s.towers {
		if !t.Anchor.IsVisible() {
			continue
		}
		pos, ok := t.Anchor.LocalPosition(s.base)
		if !ok {
			continue
		}

		switch t.State {
		case component.TowerBuilding:
			if t.Last == nil {
				// First sample after (re)acquisition: start the stability
				// clock here.
				t.StableSince = now
			} else if pos.Dist(*t.Last) > config.JitterTolerance {
				// Any displacement above jitter tolerance resets the
				// countdown to zero.
				t.StableSince = now
			}
			last := pos
			t.Last = &last
			if !t.StableSince.IsZero() && now.Sub(t.StableSince) >= s.stability {
				t.State = component.TowerActive
				home := pos
				t.Home = &home
				s.dispatcher.Dispatch(event.Event{Type: event.TowerActivated, Data: t.ID})
			}

		case component.TowerActive:
			last := pos
			t.Last = &last
			if pos.Dist(*t.Home) > config.MoveThreshold {
				t.State = component.TowerBuilding
				t.Home = nil
				t.StableSince = now
				s.dispatcher.Dispatch(event.Event{Type: event.TowerMoving, Data: t.ID})
			}

		case component.TowerUntracked:
			// Visible without a found event yet; the listener will move it
			// to Building.
		}

		s.updateVisuals(t, now)
	}
}

// AttackReady reports whether t may fire: tracked, not rebuilding, home
// established, and past the post-loss grace window that debounces tracking
// flicker.
func (s *TowerSystem) AttackReady(t *component.Tower) bool {
	if t.State != component.TowerActive || t.Home == nil {
		return false
	}
	if !t.Anchor.IsVisible() {
		return false
	}
	if !t.LostAt.IsZero() && s.clk.Now().Sub(t.LostAt) < s.grace {
		return false
	}
	return true
}

// BuildProgress returns the stabilization completion percentage for UI.
func (s *TowerSystem) BuildProgress(t *component.Tower) int {
	switch t.State {
	case component.TowerActive:
		return 100
	case component.TowerUntracked:
		return 0
	}
	if t.StableSince.IsZero() {
		return 0
	}
	elapsed := s.clk.Now().Sub(t.StableSince)
	pct := int(math.Ceil(100 * float64(elapsed) / float64(s.stability)))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

// updateVisuals lazily re-resolves the tower's display handles and pushes
// current state onto them. The subtree may not exist yet after a loss; that
// is the normal "not ready" case.
func (s *TowerSystem) updateVisuals(t *component.Tower, now time.Time) {
	if s.scene == nil {
		return
	}
	if t.Root == nil {
		t.Root = s.scene.QueryChild(t.ID)
		if t.Root == nil {
			return
		}
	}
	if t.Body == nil {
		if t.Body = t.Root.QueryChild("body"); t.Body == nil {
			t.Body = t.Root.CreateChild("body")
		}
	}
	if t.RangeRing == nil {
		if t.RangeRing = t.Root.QueryChild("range-ring"); t.RangeRing == nil {
			t.RangeRing = t.Root.CreateChild("range-ring")
		}
	}
	if t.Progress == nil {
		if t.Progress = t.Root.QueryChild("progress"); t.Progress == nil {
			t.Progress = t.Root.CreateChild("progress")
		}
	}

	t.Body.SetAttribute("state", t.State.String())
	if t.FireRate > 0 {
		frac := float64(now.Sub(t.LastShot)) / float64(t.FireRate)
		if frac > 1 {
			frac = 1
		}
		t.Body.SetAttribute("cooldown", frac)
	}
	t.RangeRing.SetAttribute("radius", t.Range)
	t.RangeRing.SetAttribute("visible", t.State == component.TowerActive)
	t.Progress.SetAttribute("visible", t.State == component.TowerBuilding)
	if t.State == component.TowerBuilding {
		t.Progress.SetAttribute("text", fmt.Sprintf("%d%%", s.BuildProgress(t)))
	}
}
