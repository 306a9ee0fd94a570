// internal/state/shop_state.go
package state

import (
	"log"

	"ar-tower-defense/internal/config"
	"ar-tower-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ShopState overlays the upgrade shop on a GameState. The game clock is
// frozen while shopping; purchases apply immediately and persist.
type ShopState struct {
	sm    *StateMachine
	prev  *GameState
	panel *ui.ShopPanel
}

func NewShopState(sm *StateMachine, prev *GameState) *ShopState {
	const panelW = 420
	panel := ui.NewShopPanel(
		(config.ScreenWidth-panelW)/2,
		160,
		panelW,
		prev.game.Ledger.Catalog(),
	)
	return &ShopState{sm: sm, prev: prev, panel: panel}
}

func (s *ShopState) Enter() {
	s.prev.game.RecordShopVisit()
	s.prev.game.Clock.Pause()
}

func (s *ShopState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(s.prev)
		return
	}
	if trackID, ok := s.panel.ClickedTrack(); ok {
		if err := s.prev.game.ApplyUpgrade(trackID); err != nil {
			log.Printf("purchase %s: %v", trackID, err)
		}
	}
}

func (s *ShopState) Draw(screen *ebiten.Image) {
	s.prev.Draw(screen)
	s.panel.Draw(screen, s.prev.game.Ledger, s.prev.game.CurrentPoints())
	ebitenutil.DebugPrintAt(screen, "UPGRADE SHOP - S or ESC to close", config.ScreenWidth/2-110, 130)
}

func (s *ShopState) Exit() {
	s.prev.game.Clock.Resume()
}
