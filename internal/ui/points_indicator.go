// internal/ui/points_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"ar-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// PointsIndicator shows the persistent point balance with a coin glyph.
type PointsIndicator struct {
	X, Y float64
}

func NewPointsIndicator(x, y float64) *PointsIndicator {
	return &PointsIndicator{X: x, Y: y}
}

func (i *PointsIndicator) Draw(screen *ebiten.Image, balance int) {
	coin := color.RGBA{230, 190, 60, 255}
	vector.DrawFilledCircle(screen, float32(i.X), float32(i.Y), 8, coin, true)
	vector.StrokeCircle(screen, float32(i.X), float32(i.Y), 8, 1, config.TextLightColor, true)
	text.Draw(screen, strconv.Itoa(balance), basicfont.Face7x13, int(i.X)+14, int(i.Y)+5, config.TextLightColor)
}
