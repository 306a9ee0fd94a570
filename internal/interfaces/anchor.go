// internal/interfaces/anchor.go
package interfaces

import "ar-tower-defense/internal/types"

// Anchor is the capability surface the simulation needs from one tracked
// image marker. The tracking layer behind it is a black box: markers appear
// and disappear as the physical camera gains and loses them, and callbacks
// fire on those transitions.
//
// Anchor objects are reused for the lifetime of a run, never recreated, so
// callback registration against the same anchor must not be repeated.
type Anchor interface {
	// OnFound registers fn to run every time tracking is acquired.
	OnFound(fn func())
	// OnLost registers fn to run every time tracking is lost.
	OnLost(fn func())
	// LocalPosition returns this anchor's position in relativeTo's local
	// coordinate frame. ok is false whenever a pose is unavailable, which
	// is a normal transient state, not an error.
	LocalPosition(relativeTo Anchor) (pos types.Vec2, ok bool)
	// IsVisible reports whether the marker is currently tracked.
	IsVisible() bool
}
