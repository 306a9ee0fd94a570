// internal/state/menu_state.go
package state

import (
	"ar-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState is the start screen.
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrintAt(screen, "AR TOWER DEFENSE", config.ScreenWidth/2-64, config.ScreenHeight/2-20)
	ebitenutil.DebugPrintAt(screen, "press SPACE to start", config.ScreenWidth/2-76, config.ScreenHeight/2+4)
}

func (m *MenuState) Exit() {}
