// internal/ui/health_indicator.go
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

const (
	healthCols          = 5
	healthCircleRadius  = 8.0
	healthCircleSpacing = 4.0
	healthUnit          = 10 // hit points per circle
)

// HealthIndicator draws base health as a grid of circles, one per ten hit
// points, with the numeric value above.
type HealthIndicator struct {
	X, Y float64
}

func NewHealthIndicator(x, y float64) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y}
}

func (i *HealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	units := (maxHealth + healthUnit - 1) / healthUnit
	filled := (health + healthUnit - 1) / healthUnit

	for j := 0; j < units; j++ {
		row := j / healthCols
		col := j % healthCols
		cx := float32(i.X + float64(col)*(healthCircleRadius*2+healthCircleSpacing) + healthCircleRadius)
		cy := float32(i.Y + float64(row)*(healthCircleRadius*2+healthCircleSpacing) + healthCircleRadius)

		clr := color.RGBA{35, 35, 40, 255}
		if j < filled {
			clr = config.EnemyColor
			if health > maxHealth/2 {
				clr = config.BaseColor
			}
		}
		vector.DrawFilledCircle(screen, cx, cy, healthCircleRadius, clr, true)
		vector.StrokeCircle(screen, cx, cy, healthCircleRadius, 1, config.TextLightColor, true)
	}

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	text.Draw(screen, label, basicfont.Face7x13, int(i.X), int(i.Y)-8, config.TextLightColor)
}
