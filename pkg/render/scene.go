// pkg/render/scene.go
package render

import (
	"image/color"

	"ar-tower-defense/internal/config"
	"ar-tower-defense/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// World-space draw sizes, meters.
const (
	baseRadius  = 0.08
	enemyRadius = 0.035
	towerRadius = 0.06
	beamWidth   = 3.0 // pixels
)

// Scene is the display sink the simulation writes into. The simulation only
// sees the root VisualNode; Draw walks the retained tree each frame and
// renders the node kinds it knows onto the screen.
type Scene struct {
	root *Node
	face font.Face
}

func NewScene() *Scene {
	return &Scene{
		root: newNode("root"),
		face: basicfont.Face7x13,
	}
}

// Root returns the tree handle handed to the simulation.
func (s *Scene) Root() interfaces.VisualNode {
	return s.root
}

// worldToScreen maps base-local meters to screen pixels, base at center.
func worldToScreen(x, y float64) (float32, float32) {
	sx := float32(config.ScreenWidth)/2 + float32(x*config.WorldScale)
	sy := float32(config.ScreenHeight)/2 + float32(y*config.WorldScale)
	return sx, sy
}

// Draw prunes removed subtrees and renders the tree.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.root.prune()
	for _, n := range s.root.children {
		switch n.kind {
		case "base":
			s.drawBase(screen, n)
		case "enemy":
			s.drawEnemy(screen, n)
		case "tower":
			s.drawTower(screen, n)
		case "beam":
			s.drawBeam(screen, n)
		}
	}
}

func (s *Scene) drawBase(screen *ebiten.Image, n *Node) {
	if !n.boolAttr("visible", true) {
		return
	}
	cx, cy := worldToScreen(0, 0)
	vector.DrawFilledCircle(screen, cx, cy, float32(baseRadius*config.WorldScale), config.BaseColor, true)
	vector.StrokeCircle(screen, cx, cy, float32(baseRadius*config.WorldScale), 2, config.TextLightColor, true)
}

func (s *Scene) drawEnemy(screen *ebiten.Image, n *Node) {
	cx, cy := worldToScreen(n.floatAttr("x", 0), n.floatAttr("y", 0))
	vector.DrawFilledCircle(screen, cx, cy, float32(enemyRadius*config.WorldScale), config.EnemyColor, true)
}

func (s *Scene) drawBeam(screen *ebiten.Image, n *Node) {
	x1, y1 := worldToScreen(n.floatAttr("x1", 0), n.floatAttr("y1", 0))
	x2, y2 := worldToScreen(n.floatAttr("x2", 0), n.floatAttr("y2", 0))
	vector.StrokeLine(screen, x1, y1, x2, y2, beamWidth, config.BeamColor, true)
}

// drawTower renders a tower subtree: the body colored by build state, the
// range ring while active, and the stabilization percentage while building.
// Hidden or locked anchors draw nothing.
func (s *Scene) drawTower(screen *ebiten.Image, n *Node) {
	if !n.boolAttr("unlocked", true) || !n.boolAttr("visible", true) {
		return
	}
	cx, cy := worldToScreen(n.floatAttr("x", 0), n.floatAttr("y", 0))

	bodyColor := config.UntrackedColor
	var ringVisible bool
	var ringRadius float64
	var progressText string

	for _, c := range n.children {
		if c.removed {
			continue
		}
		switch c.kind {
		case "body":
			switch c.stringAttr("state", "Untracked") {
			case "Active":
				bodyColor = config.TowerColor
			case "Building":
				bodyColor = config.BuildingColor
			}
		case "range-ring":
			ringVisible = c.boolAttr("visible", false)
			ringRadius = c.floatAttr("radius", 0)
		case "progress":
			if c.boolAttr("visible", false) {
				progressText = c.stringAttr("text", "")
			}
		}
	}

	if ringVisible && ringRadius > 0 {
		vector.StrokeCircle(screen, cx, cy, float32(ringRadius*config.WorldScale), 1, config.RangeRingColor, true)
	}
	vector.DrawFilledCircle(screen, cx, cy, float32(towerRadius*config.WorldScale), bodyColor, true)
	if progressText != "" {
		s.drawCenteredText(screen, progressText, cx, cy-float32(towerRadius*config.WorldScale)-10, config.TextLightColor)
	}
}

func (s *Scene) drawCenteredText(screen *ebiten.Image, label string, x, y float32, clr color.Color) {
	bounds := text.BoundString(s.face, label)
	w := bounds.Max.X - bounds.Min.X
	text.Draw(screen, label, s.face, int(x)-w/2, int(y), clr)
}
