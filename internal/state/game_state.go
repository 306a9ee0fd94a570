// internal/state/game_state.go
package state

import (
	"fmt"
	"log"

	"ar-tower-defense/internal/app"
	"ar-tower-defense/internal/config"
	"ar-tower-defense/internal/interfaces"
	"ar-tower-defense/internal/storage"
	"ar-tower-defense/internal/system"
	"ar-tower-defense/internal/tracking"
	"ar-tower-defense/internal/ui"
	"ar-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	saveFile      = "ar-td-save.json"
	dragPickupPx  = 40.0  // cursor distance within which a marker is grabbed
	anchorJitter  = 0.003 // simulated tracking noise, meters
	simWorldLimit = 1.6   // markers are kept within this radius of the base
)

// GameState runs the simulation against simulated markers: keyboard toggles
// stand in for tracking acquisition and loss, mouse dragging stands in for
// physically moving a marker.
type GameState struct {
	sm    *StateMachine
	game  *app.Game
	scene *render.Scene

	base       *tracking.SimAnchor
	anchors    []*tracking.SimAnchor
	baseNode   interfaces.VisualNode
	towerNodes []interfaces.VisualNode
	dragging   *tracking.SimAnchor

	healthInd *ui.HealthIndicator
	waveInd   *ui.WaveIndicator
	pointsInd *ui.PointsIndicator
	stateInd  *ui.StateIndicator
}

func NewGameState(sm *StateMachine) *GameState {
	gs := &GameState{
		sm:        sm,
		scene:     render.NewScene(),
		base:      tracking.NewSimAnchor("base", 0, 0),
		healthInd: ui.NewHealthIndicator(20, 40),
		waveInd:   ui.NewWaveIndicator(config.ScreenWidth/2, 30),
		pointsInd: ui.NewPointsIndicator(30, 130),
		stateInd:  ui.NewStateIndicator(config.ScreenWidth-30, 30, 10),
	}
	gs.base.SetVisible(true)

	root := gs.scene.Root()
	gs.baseNode = root.CreateChild("base")
	gs.baseNode.SetAttribute("id", "base")

	positions := [][2]float64{{0.45, 0}, {-0.45, 0}, {0, 0.45}, {0, -0.45}}
	refs := make([]system.AnchorRef, 0, len(positions))
	for i, p := range positions {
		id := fmt.Sprintf("tower-%d", i+1)
		a := tracking.NewSimAnchor(id, p[0], p[1])
		a.SetJitter(anchorJitter)
		gs.anchors = append(gs.anchors, a)
		refs = append(refs, system.AnchorRef{ID: id, Anchor: a})

		node := root.CreateChild("tower")
		node.SetAttribute("id", id)
		node.SetAttribute("x", p[0])
		node.SetAttribute("y", p[1])
		gs.towerNodes = append(gs.towerNodes, node)
	}

	game, err := app.New(app.Config{
		Base:         gs.base,
		TowerAnchors: refs,
		Scene:        root,
		Store:        storage.NewFileStore(saveFile),
	})
	if err != nil {
		log.Fatalf("game setup: %v", err)
	}
	gs.game = game
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sm.SetState(NewShopState(g.sm, g))
		return
	}

	g.handleTrackingKeys()
	g.handleDrag()

	run := g.game.Run()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !run.Active {
		if err := g.game.StartRun(); err != nil {
			log.Printf("start run: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.RestartRun()
	}

	g.syncSceneNodes()
	g.game.Update()
}

// handleTrackingKeys simulates tracking acquisition and loss: B toggles the
// base marker, 1-4 toggle the tower markers.
func (g *GameState) handleTrackingKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.base.SetVisible(!g.base.IsVisible())
	}
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}
	for i, key := range keys {
		if i < len(g.anchors) && inpututil.IsKeyJustPressed(key) {
			g.anchors[i].SetVisible(!g.anchors[i].IsVisible())
		}
	}
}

// handleDrag moves a visible tower marker with the mouse, standing in for
// physically relocating it.
func (g *GameState) handleDrag() {
	mx, my := ebiten.CursorPosition()
	wx, wy := screenToWorld(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for _, a := range g.anchors {
			if !a.IsVisible() {
				continue
			}
			sx, sy := worldToScreen(a.Pos().X, a.Pos().Y)
			dx, dy := float64(mx)-sx, float64(my)-sy
			if dx*dx+dy*dy <= dragPickupPx*dragPickupPx {
				g.dragging = a
				break
			}
		}
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragging = nil
	}
	if g.dragging != nil {
		if wx*wx+wy*wy <= simWorldLimit*simWorldLimit {
			g.dragging.MoveTo(wx, wy)
		}
	}
}

// syncSceneNodes mirrors marker poses into the display tree every frame, the
// way a tracking layer keeps its scene graph glued to the camera feed.
func (g *GameState) syncSceneNodes() {
	g.baseNode.SetAttribute("visible", g.base.IsVisible())
	for i, a := range g.anchors {
		node := g.towerNodes[i]
		node.SetAttribute("visible", a.IsVisible())
		node.SetAttribute("x", a.Pos().X)
		node.SetAttribute("y", a.Pos().Y)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.scene.Draw(screen)

	run := g.game.Run()
	g.healthInd.Draw(screen, run.Health, run.MaxHealth)
	g.waveInd.Draw(screen, run.Wave)
	g.pointsInd.Draw(screen, g.game.CurrentPoints())
	g.stateInd.Draw(screen, run.Paused)

	switch {
	case run.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R to try again, S for the shop", config.ScreenWidth/2-160, config.ScreenHeight/2)
	case run.Won:
		ebitenutil.DebugPrintAt(screen, "ALL WAVES CLEARED - press R for another run, S for the shop", config.ScreenWidth/2-190, config.ScreenHeight/2)
	case !run.Active:
		ebitenutil.DebugPrintAt(screen, "SPACE start run | B base | 1-4 towers | drag to move | S shop | F9 pause", 20, config.ScreenHeight-30)
	case run.Paused:
		ebitenutil.DebugPrintAt(screen, "BASE TRACKING LOST - press B to re-acquire", config.ScreenWidth/2-140, config.ScreenHeight/2)
	}
}

func (g *GameState) Exit() {}

func screenToWorld(mx, my int) (float64, float64) {
	wx := (float64(mx) - config.ScreenWidth/2) / config.WorldScale
	wy := (float64(my) - config.ScreenHeight/2) / config.WorldScale
	return wx, wy
}

func worldToScreen(x, y float64) (float64, float64) {
	sx := config.ScreenWidth/2 + x*config.WorldScale
	sy := config.ScreenHeight/2 + y*config.WorldScale
	return sx, sy
}
