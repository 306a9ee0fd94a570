// internal/ui/wave_indicator.go
package ui

import (
	"strings"

	"ar-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// WaveIndicator shows the current wave number as a roman numeral, centered
// at its position.
type WaveIndicator struct {
	X, Y float64
}

func NewWaveIndicator(x, y float64) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y}
}

// toRoman converts a positive integer to a roman numeral.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	label := toRoman(waveNumber)
	clr := config.TextLightColor
	if waveNumber%10 == 0 {
		clr = config.EnemyColor // milestone waves stand out
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	w := bounds.Max.X - bounds.Min.X
	text.Draw(screen, label, face, int(i.X)-w/2, int(i.Y), clr)
}
