// internal/app/game.go
package app

import (
	"errors"
	"strconv"

	"ar-tower-defense/internal/config"
	"ar-tower-defense/internal/defs"
	"ar-tower-defense/internal/economy"
	"ar-tower-defense/internal/entity"
	"ar-tower-defense/internal/event"
	"ar-tower-defense/internal/interfaces"
	"ar-tower-defense/internal/storage"
	"ar-tower-defense/internal/system"
	"ar-tower-defense/internal/upgrade"
	"ar-tower-defense/internal/utils"
	"ar-tower-defense/pkg/clock"
)

var (
	ErrNoBaseAnchor       = errors.New("base anchor is required")
	ErrNoTowerAnchors     = errors.New("at least one tower anchor is required")
	ErrRunActive          = errors.New("a run is already active")
	ErrInsufficientPoints = errors.New("not enough points")
)

// RunState is the state of the current run, owned exclusively by Game and
// mutated only through its transitions. Health is clamped to [0, MaxHealth]
// in exactly one place.
type RunState struct {
	Wave          int // 1-based display number, 0 before the first wave
	SpawnedInWave int
	Active        bool
	Paused        bool
	Health        int
	MaxHealth     int
	GameOver      bool
	Won           bool
}

// Config wires a Game to its external collaborators.
type Config struct {
	Base         interfaces.Anchor
	TowerAnchors []system.AnchorRef
	Scene        interfaces.VisualNode // nullable: headless simulation
	Store        interfaces.Store     // nil defaults to an in-memory store
	TimeProvider clock.TimeProvider   // nil defaults to the system clock
	Seed         int64
	Waves        []defs.WaveDefinition // nil defaults to defs.WaveTable
	Catalog      []defs.UpgradeTrack   // nil defaults to defs.UpgradeCatalog
}

// Game wires the wave scheduler, tower state machine, combat and enemy
// simulation together and owns run-level state: health, game-over/win,
// restart transitions, and the upgrade purchase pipeline.
type Game struct {
	ECS        *entity.ECS
	Dispatcher *event.Dispatcher
	Clock      *clock.PausableClock
	Sched      *clock.Scheduler
	Towers     *system.TowerSystem
	Waves      *system.WaveScheduler
	Combat     *system.CombatSystem
	Movement   *system.MovementSystem
	Economy    *economy.Economy
	Ledger     *upgrade.Ledger

	base      interfaces.Anchor
	anchors   []system.AnchorRef
	scene     interfaces.VisualNode
	store     interfaces.Store
	rng       *utils.PRNGService
	effects   upgrade.Effects
	run       RunState
	wavesDone bool
}

// New validates the required anchors and wires all subsystems. A missing
// base or empty tower-anchor set is fatal to initialization: the run can
// never start, and the caller reports it without crashing the host.
func New(cfg Config) (*Game, error) {
	if cfg.Base == nil {
		return nil, ErrNoBaseAnchor
	}
	if len(cfg.TowerAnchors) == 0 {
		return nil, ErrNoTowerAnchors
	}
	if cfg.Store == nil {
		cfg.Store = storage.NewMemStore()
	}
	if cfg.Waves == nil {
		cfg.Waves = defs.WaveTable
	}
	if cfg.Catalog == nil {
		cfg.Catalog = defs.UpgradeCatalog
	}

	pc := clock.NewPausableClock(cfg.TimeProvider)
	sched := clock.NewScheduler(pc)
	dispatcher := event.NewDispatcher()
	ecs := entity.NewECS()
	rng := utils.NewPRNGService(cfg.Seed)

	g := &Game{
		ECS:        ecs,
		Dispatcher: dispatcher,
		Clock:      pc,
		Sched:      sched,
		base:       cfg.Base,
		anchors:    cfg.TowerAnchors,
		scene:      cfg.Scene,
		store:      cfg.Store,
		rng:        rng,
	}
	g.Towers = system.NewTowerSystem(cfg.Base, dispatcher, pc, cfg.Scene)
	g.Waves = system.NewWaveScheduler(ecs, dispatcher, sched, rng, g, cfg.Scene, cfg.Waves)
	g.Combat = system.NewCombatSystem(ecs, g.Towers, dispatcher, pc, sched, cfg.Scene)
	g.Movement = system.NewMovementSystem(ecs, dispatcher)
	g.Economy = economy.New(cfg.Store)
	g.Ledger = upgrade.NewLedger(cfg.Catalog, cfg.Store)

	cfg.Base.OnFound(g.onBaseFound)
	cfg.Base.OnLost(g.onBaseLost)

	listener := &gameEventListener{game: g}
	dispatcher.Subscribe(event.EnemyReachedBase, listener)
	dispatcher.Subscribe(event.EnemyDestroyed, listener)
	dispatcher.Subscribe(event.EnemySpawned, listener)
	dispatcher.Subscribe(event.WaveStarted, listener)
	dispatcher.Subscribe(event.AllWavesCompleted, listener)

	g.applyUpgradeEffects()
	g.run.MaxHealth = g.effects.MaxHealth
	g.run.Health = g.effects.MaxHealth
	return g, nil
}

// Update advances one frame. Tower movement/attack evaluation runs strictly
// before enemy movement, so a kill and an arrival can never both claim the
// same enemy within a frame.
func (g *Game) Update() {
	g.Sched.Update()
	g.Towers.Update()
	if g.run.Active && !g.run.Paused && !g.run.GameOver && !g.run.Won {
		g.Combat.Update()
		g.Movement.Update()
		g.checkWin()
	}
}

// StartRun begins a fresh run from the upgrade-derived starting wave.
func (g *Game) StartRun() error {
	if g.run.Active {
		return ErrRunActive
	}
	g.startRun()
	return nil
}

// RestartRun aborts any current run and starts over. Points and upgrade
// levels persist; health and wave progress reset.
func (g *Game) RestartRun() {
	g.Waves.Stop()
	g.clearEnemies()
	g.startRun()
}

func (g *Game) startRun() {
	if g.Clock.IsPaused() {
		g.Clock.Resume()
	}
	// Upgrades may have been purchased since the last run; cached per-tower
	// stats and the starting wave must be re-derived.
	g.applyUpgradeEffects()
	g.run = RunState{
		Health:    g.effects.MaxHealth,
		MaxHealth: g.effects.MaxHealth,
		Active:    true,
	}
	g.wavesDone = false
	g.Waves.StartWave(g.effects.StartWave)
}

// ApplyUpgrade purchases the next level of a track. On any rejection —
// unknown track, already at max, insufficient points — nothing is mutated.
func (g *Game) ApplyUpgrade(trackID string) error {
	if _, ok := g.Ledger.Track(trackID); !ok {
		return upgrade.ErrUnknownTrack
	}
	cost, ok := g.Ledger.NextCost(trackID)
	if !ok {
		return upgrade.ErrMaxLevel
	}
	if !g.Economy.Spend(cost) {
		return ErrInsufficientPoints
	}
	if err := g.Ledger.Advance(trackID); err != nil {
		return err
	}
	g.applyUpgradeEffects()
	if g.run.Active {
		g.run.MaxHealth = g.effects.MaxHealth
		if g.run.Health > g.run.MaxHealth {
			g.run.Health = g.run.MaxHealth
		}
	}
	g.Dispatcher.Dispatch(event.Event{Type: event.UpgradePurchased, Data: trackID})
	return nil
}

// applyUpgradeEffects re-derives global parameters from the ledger and
// propagates them: stability into the tower system, range and fire rate
// into every live instance, and the unlocked anchor set by stable order.
// Running it twice with no intervening purchase yields an identical
// instance set.
func (g *Game) applyUpgradeEffects() {
	g.effects = upgrade.Derive(g.Ledger)

	n := g.effects.TowerCount
	if n > len(g.anchors) {
		n = len(g.anchors)
	}
	g.Towers.SetStability(g.effects.StabilityDuration)
	g.Towers.Reinit(g.anchors[:n])
	g.Towers.ApplyStats(g.effects.TowerRange, g.effects.FireRate)

	if g.scene != nil {
		for i, ref := range g.anchors {
			if node := g.scene.QueryChild(ref.ID); node != nil {
				node.SetAttribute("unlocked", i < n)
			}
		}
	}
}

// Effects returns the current upgrade-derived global parameters.
func (g *Game) Effects() upgrade.Effects {
	return g.effects
}

// Run returns a copy of the current run state.
func (g *Game) Run() RunState {
	return g.run
}

func (g *Game) CurrentHealth() int { return g.run.Health }
func (g *Game) CurrentPoints() int { return g.Economy.Balance() }
func (g *Game) CurrentWave() int   { return g.run.Wave }

// RecordShopVisit bumps the persisted shop-visit counter and returns the
// new count. Unparsable stored values restart the count.
func (g *Game) RecordShopVisit() int {
	visits := 0
	if raw, ok := g.store.Get(config.StorageKeyShopVisits); ok {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			visits = v
		}
	}
	visits++
	g.store.Set(config.StorageKeyShopVisits, strconv.Itoa(visits))
	return visits
}

// BaseVisible implements system.WaveContext.
func (g *Game) BaseVisible() bool {
	return g.base.IsVisible()
}

// RunOver implements system.WaveContext.
func (g *Game) RunOver() bool {
	return g.run.GameOver || g.run.Won
}

func (g *Game) onBaseLost() {
	if g.run.Active && !g.RunOver() && !g.run.Paused {
		g.run.Paused = true
		g.Waves.Pause()
		g.Clock.Pause()
	}
}

func (g *Game) onBaseFound() {
	if g.run.Paused {
		g.run.Paused = false
		g.Waves.Resume()
		g.Clock.Resume()
	}
}

func (g *Game) applyBaseDamage(damage int) {
	if g.run.GameOver || !g.run.Active {
		return
	}
	g.run.Health -= damage
	if g.run.Health <= 0 {
		g.run.Health = 0
		g.run.GameOver = true
		g.run.Active = false
		g.Waves.Stop()
		g.Dispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

func (g *Game) checkWin() {
	if g.wavesDone && !g.run.GameOver && !g.run.Won && g.ECS.EnemyCount() == 0 {
		g.run.Won = true
		g.run.Active = false
		g.Dispatcher.Dispatch(event.Event{Type: event.GameWon})
	}
}

func (g *Game) clearEnemies() {
	for id := range g.ECS.Enemies {
		g.ECS.DestroyEntity(id)
	}
}

type gameEventListener struct {
	game *Game
}

func (l *gameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.EnemyReachedBase:
		if damage, ok := e.Data.(int); ok {
			g.applyBaseDamage(damage)
		}
	case event.EnemyDestroyed:
		if points, ok := e.Data.(int); ok {
			g.Economy.Award(points)
		}
	case event.EnemySpawned:
		g.run.SpawnedInWave++
	case event.WaveStarted:
		if idx, ok := e.Data.(int); ok {
			g.run.Wave = idx + 1
			g.run.SpawnedInWave = 0
		}
	case event.AllWavesCompleted:
		g.wavesDone = true
	}
}
