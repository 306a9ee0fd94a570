// internal/component/tower.go
package component

import (
	"time"

	"ar-tower-defense/internal/interfaces"
	"ar-tower-defense/internal/types"
)

// TowerState is the per-tower lifecycle. The moving/home coupling is encoded
// here rather than in independent booleans: Home is non-nil if and only if
// the state is TowerActive.
type TowerState int

const (
	TowerUntracked TowerState = iota
	TowerBuilding
	TowerActive
)

func (s TowerState) String() string {
	switch s {
	case TowerUntracked:
		return "Untracked"
	case TowerBuilding:
		return "Building"
	case TowerActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// Tower is one tracked tower anchor's run-time instance. Identity is the
// anchor itself; anchor objects are reused across a run, so an instance is
// reset in place rather than recreated when the unlocked set changes.
type Tower struct {
	ID     string
	Anchor interfaces.Anchor
	State  TowerState

	// Home is the last stabilized local position, nil until established.
	// Last is the previous frame's sample, for jitter detection.
	Home *types.Vec2
	Last *types.Vec2

	StableSince time.Time // start of the current uninterrupted stable span
	LostAt      time.Time // last tracking loss, drives the readiness grace window
	LastShot    time.Time

	// Effective combat stats, copied from upgrade-derived globals on every
	// apply; not read live from the ledger.
	Range    float64
	FireRate time.Duration

	// Cached visual handles. All nullable: the display subtree may be torn
	// down by the tracking layer, so these are cleared on loss and lazily
	// re-resolved from the scene on next use.
	Root      interfaces.VisualNode
	Body      interfaces.VisualNode
	RangeRing interfaces.VisualNode
	Progress  interfaces.VisualNode

	// Bound guards listener registration; anchors are reused, so OnFound and
	// OnLost must be registered exactly once per anchor.
	Bound bool
}

// IsMoving reports whether the tower has no established home position.
func (t *Tower) IsMoving() bool {
	return t.Home == nil
}

// InvalidateVisuals drops all cached display handles.
func (t *Tower) InvalidateVisuals() {
	t.Root = nil
	t.Body = nil
	t.RangeRing = nil
	t.Progress = nil
}
