// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"ar-tower-defense/internal/config"
	"ar-tower-defense/internal/defs"
	"ar-tower-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = true // false starts at the menu

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	wavesPath := flag.String("waves", "", "YAML wave table overriding the built-in one")
	upgradesPath := flag.String("upgrades", "", "YAML upgrade catalog overriding the built-in one")
	flag.Parse()
	if *wavesPath != "" {
		if err := defs.LoadWaveTable(*wavesPath); err != nil {
			log.Fatal(err)
		}
	}
	if *upgradesPath != "" {
		if err := defs.LoadUpgradeCatalog(*upgradesPath); err != nil {
			log.Fatal(err)
		}
	}

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm))
	} else {
		sm.SetState(state.NewMenuState(sm))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("AR Tower Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
