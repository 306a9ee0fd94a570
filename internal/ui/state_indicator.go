// internal/ui/state_indicator.go
package ui

import (
	"ar-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator is the small run-state lamp in the screen corner: red when
// the run is paused by tracking loss, blue while running.
type StateIndicator struct {
	X, Y, Radius float64
}

func NewStateIndicator(x, y, radius float64) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

func (i *StateIndicator) Draw(screen *ebiten.Image, paused bool) {
	clr := config.RunningColor
	if paused {
		clr = config.PausedColor
	}
	vector.DrawFilledCircle(screen, float32(i.X), float32(i.Y), float32(i.Radius), clr, true)
}
