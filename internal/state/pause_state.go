// internal/state/pause_state.go
package state

import (
	"ar-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PauseState freezes the game clock on top of a running GameState.
type PauseState struct {
	sm   *StateMachine
	prev *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{sm: sm, prev: prev}
}

func (p *PauseState) Enter() {
	p.prev.game.Clock.Pause()
}

func (p *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.sm.SetState(p.prev)
	}
}

func (p *PauseState) Draw(screen *ebiten.Image) {
	p.prev.Draw(screen)
	ebitenutil.DebugPrintAt(screen, "PAUSED - F9 to resume", config.ScreenWidth/2-80, config.ScreenHeight/2-60)
}

func (p *PauseState) Exit() {
	p.prev.game.Clock.Resume()
}
