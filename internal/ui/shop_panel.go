// internal/ui/shop_panel.go
package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"ar-tower-defense/internal/config"
	"ar-tower-defense/internal/defs"
	"ar-tower-defense/internal/upgrade"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	shopRowHeight = 44
	shopPadding   = 16
	buyButtonW    = 110
	buyButtonH    = 28
)

type shopRow struct {
	trackID string
	name    string
	buy     *Button
}

// ShopPanel lists every upgrade track with its reached level and the cost of
// the next one. Buy buttons are disabled while unaffordable or maxed; the
// panel itself never mutates anything, it only reports clicks.
type ShopPanel struct {
	X, Y, W float64
	rows    []shopRow
}

func NewShopPanel(x, y, w float64, catalog []defs.UpgradeTrack) *ShopPanel {
	p := &ShopPanel{X: x, Y: y, W: w}
	for i, tr := range catalog {
		name := tr.Name
		if name == "" {
			name = tr.ID
		}
		rowY := y + shopPadding + float64(i)*shopRowHeight
		p.rows = append(p.rows, shopRow{
			trackID: tr.ID,
			name:    name,
			buy:     NewButton(x+w-buyButtonW-shopPadding, rowY, buyButtonW, buyButtonH, "BUY"),
		})
	}
	return p
}

func (p *ShopPanel) Height() float64 {
	return float64(len(p.rows))*shopRowHeight + 2*shopPadding
}

// ClickedTrack returns the track whose buy button was clicked this frame.
func (p *ShopPanel) ClickedTrack() (string, bool) {
	for _, row := range p.rows {
		if row.buy.Clicked() {
			return row.trackID, true
		}
	}
	return "", false
}

func (p *ShopPanel) Draw(screen *ebiten.Image, ledger *upgrade.Ledger, balance int) {
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.Height()), color.RGBA{25, 25, 35, 240}, false)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.Height()), 1, color.RGBA{120, 120, 140, 255}, false)

	face := basicfont.Face7x13
	for i := range p.rows {
		row := &p.rows[i]
		tr, ok := ledger.Track(row.trackID)
		if !ok {
			continue
		}
		rowY := int(p.Y) + shopPadding + i*shopRowHeight

		level := ledger.Level(row.trackID)
		label := fmt.Sprintf("%s  %d/%d", row.name, level+1, len(tr.Levels))
		text.Draw(screen, label, face, int(p.X)+shopPadding, rowY+18, config.TextLightColor)

		cost, hasNext := ledger.NextCost(row.trackID)
		switch {
		case !hasNext:
			row.buy.Label = "MAX"
			row.buy.Disabled = true
		default:
			row.buy.Label = "BUY " + strconv.Itoa(cost)
			row.buy.Disabled = cost > balance
		}
		row.buy.Draw(screen)
	}
}
