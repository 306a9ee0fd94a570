// internal/tracking/anchor.go
package tracking

import (
	"math/rand"

	"ar-tower-defense/internal/interfaces"
	"ar-tower-defense/internal/types"
)

// SimAnchor simulates one tracked image marker: visibility toggles fire
// found/lost callbacks, and pose queries add configurable positional jitter,
// the way a real camera's tracking does. It backs the demo driver and the
// simulation tests.
type SimAnchor struct {
	id      string
	visible bool
	pos     types.Vec2
	jitter  float64
	rng     *rand.Rand

	found []func()
	lost  []func()
}

var _ interfaces.Anchor = (*SimAnchor)(nil)

// NewSimAnchor creates a marker at world position (x, y), initially not
// tracked.
func NewSimAnchor(id string, x, y float64) *SimAnchor {
	return &SimAnchor{
		id:  id,
		pos: types.Vec2{X: x, Y: y},
		rng: rand.New(rand.NewSource(int64(len(id)) + 1)),
	}
}

func (a *SimAnchor) ID() string { return a.id }

func (a *SimAnchor) OnFound(fn func()) {
	a.found = append(a.found, fn)
}

func (a *SimAnchor) OnLost(fn func()) {
	a.lost = append(a.lost, fn)
}

func (a *SimAnchor) IsVisible() bool {
	return a.visible
}

// LocalPosition returns this marker's position in relativeTo's frame, with
// jitter applied. The pose is unavailable while either marker is untracked.
func (a *SimAnchor) LocalPosition(relativeTo interfaces.Anchor) (types.Vec2, bool) {
	if !a.visible {
		return types.Vec2{}, false
	}
	origin := types.Vec2{}
	if relativeTo != nil {
		rel, ok := relativeTo.(*SimAnchor)
		if !ok || !rel.visible {
			return types.Vec2{}, false
		}
		origin = rel.pos
	}
	p := a.pos.Sub(origin)
	if a.jitter > 0 {
		p.X += (a.rng.Float64()*2 - 1) * a.jitter
		p.Y += (a.rng.Float64()*2 - 1) * a.jitter
	}
	return p, true
}

// SetVisible toggles tracking, firing the found or lost callbacks on a
// transition.
func (a *SimAnchor) SetVisible(visible bool) {
	if a.visible == visible {
		return
	}
	a.visible = visible
	if visible {
		for _, fn := range a.found {
			fn()
		}
	} else {
		for _, fn := range a.lost {
			fn()
		}
	}
}

// MoveTo teleports the marker in world space.
func (a *SimAnchor) MoveTo(x, y float64) {
	a.pos = types.Vec2{X: x, Y: y}
}

// Nudge shifts the marker by (dx, dy).
func (a *SimAnchor) Nudge(dx, dy float64) {
	a.pos.X += dx
	a.pos.Y += dy
}

// SetJitter sets the amplitude of per-query positional noise, meters.
func (a *SimAnchor) SetJitter(amp float64) {
	a.jitter = amp
}

// Pos returns the marker's true world position, jitter-free.
func (a *SimAnchor) Pos() types.Vec2 {
	return a.pos
}

// FoundCallbackCount reports how many found listeners are registered.
// Used to verify that re-initialization never double-registers against a
// reused anchor.
func (a *SimAnchor) FoundCallbackCount() int {
	return len(a.found)
}

// LostCallbackCount reports how many lost listeners are registered.
func (a *SimAnchor) LostCallbackCount() int {
	return len(a.lost)
}
