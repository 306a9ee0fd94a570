// internal/ui/button.go
package ui

import (
	"image/color"

	"ar-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Button is a clickable rectangle with a centered label.
type Button struct {
	X, Y, W, H float64
	Label      string
	Disabled   bool

	BgColor    color.RGBA
	HoverColor color.RGBA
	TextColor  color.RGBA
	face       font.Face
}

func NewButton(x, y, w, h float64, label string) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Label:      label,
		BgColor:    color.RGBA{50, 50, 70, 255},
		HoverColor: color.RGBA{80, 80, 110, 255},
		TextColor:  config.TextLightColor,
		face:       basicfont.Face7x13,
	}
}

func (b *Button) Contains(mx, my int) bool {
	fx, fy := float64(mx), float64(my)
	return fx >= b.X && fx < b.X+b.W && fy >= b.Y && fy < b.Y+b.H
}

// Clicked reports a left click on the button this frame.
func (b *Button) Clicked() bool {
	if b.Disabled || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return b.Contains(ebiten.CursorPosition())
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.Contains(ebiten.CursorPosition()) && !b.Disabled {
		bg = b.HoverColor
	}
	if b.Disabled {
		bg = color.RGBA{40, 40, 45, 255}
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, color.RGBA{120, 120, 140, 255}, false)

	bounds := text.BoundString(b.face, b.Label)
	tw := bounds.Max.X - bounds.Min.X
	tx := int(b.X) + (int(b.W)-tw)/2
	ty := int(b.Y+b.H/2) + 4
	clr := b.TextColor
	if b.Disabled {
		clr = color.RGBA{130, 130, 130, 255}
	}
	text.Draw(screen, b.Label, b.face, tx, ty, clr)
}
