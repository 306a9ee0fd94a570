package system

import (
	"math"
	"testing"
	"time"

	"ar-tower-defense/internal/config"
	"ar-tower-defense/internal/defs"
	"ar-tower-defense/internal/entity"
	"ar-tower-defense/internal/event"
	"ar-tower-defense/internal/utils"
	"ar-tower-defense/pkg/clock"
)

// stubRunContext is a WaveContext with directly settable flags.
type stubRunContext struct {
	baseVisible bool
	runOver     bool
}

func (c *stubRunContext) BaseVisible() bool { return c.baseVisible }
func (c *stubRunContext) RunOver() bool     { return c.runOver }

// eventRecorder captures dispatched events for assertions.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *eventRecorder) last(t event.EventType) (event.Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == t {
			return r.events[i], true
		}
	}
	return event.Event{}, false
}

type waveHarness struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	mock       *clock.MockTimeProvider
	game       *clock.PausableClock
	sched      *clock.Scheduler
	ctx        *stubRunContext
	rec        *eventRecorder
	waves      *WaveScheduler
}

func newWaveHarness(defsList []defs.WaveDefinition) *waveHarness {
	h := &waveHarness{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		mock:       clock.NewMockTimeProvider(time.Unix(0, 0)),
		ctx:        &stubRunContext{baseVisible: true},
		rec:        &eventRecorder{},
	}
	h.game = clock.NewPausableClock(h.mock)
	h.sched = clock.NewScheduler(h.game)
	h.dispatcher.Subscribe(event.WaveStarted, h.rec)
	h.dispatcher.Subscribe(event.WaveEnded, h.rec)
	h.dispatcher.Subscribe(event.EnemySpawned, h.rec)
	h.dispatcher.Subscribe(event.AllWavesCompleted, h.rec)
	h.waves = NewWaveScheduler(h.ecs, h.dispatcher, h.sched, utils.NewPRNGService(1), h.ctx, nil, defsList)
	return h
}

// step advances mocked time by d in small increments, running the scheduler
// after each, the way the frame loop does.
func (h *waveHarness) step(d, increment time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += increment {
		h.mock.Advance(increment)
		h.sched.Update()
	}
}

func fiveOverFiveSeconds() []defs.WaveDefinition {
	return []defs.WaveDefinition{
		{Count: 5, Speed: 0.1, SpreadDeg: 360, DurationMs: 5000, Health: 1, Damage: 10},
	}
}

func TestWaveSpawnCadence(t *testing.T) {
	h := newWaveHarness(fiveOverFiveSeconds())
	h.waves.StartWave(0)

	// 5 enemies over 5000 ms: one spawn at each full second, none before.
	h.step(999*time.Millisecond, 111*time.Millisecond)
	if got := h.waves.SpawnedInWave(); got != 0 {
		t.Fatalf("spawned before first interval = %d, want 0", got)
	}
	for want := 1; want <= 5; want++ {
		h.step(time.Second, 100*time.Millisecond)
		if got := h.waves.SpawnedInWave(); got != want {
			t.Fatalf("spawned after %d s = %d, want %d", want, got, want)
		}
	}
	if h.rec.count(event.WaveEnded) != 1 {
		t.Errorf("WaveEnded dispatched %d times, want 1", h.rec.count(event.WaveEnded))
	}
}

func TestWaveSpawnCountNeverExceedsDefinition(t *testing.T) {
	h := newWaveHarness(fiveOverFiveSeconds())
	h.waves.StartWave(0)

	h.step(60*time.Second, 250*time.Millisecond)
	if got := h.waves.SpawnedInWave(); got != 5 {
		t.Errorf("spawned = %d after long idle, want exactly 5", got)
	}
	if got := h.rec.count(event.EnemySpawned); got != 5 {
		t.Errorf("EnemySpawned dispatched %d times, want 5", got)
	}
}

func TestPauseResumePreservesSpawnProgress(t *testing.T) {
	h := newWaveHarness(fiveOverFiveSeconds())
	h.waves.StartWave(0)

	h.step(2100*time.Millisecond, 100*time.Millisecond)
	if got := h.waves.SpawnedInWave(); got != 2 {
		t.Fatalf("spawned before pause = %d, want 2", got)
	}

	h.waves.Pause()
	h.game.Pause()
	h.step(10*time.Second, 250*time.Millisecond)
	if got := h.waves.SpawnedInWave(); got != 2 {
		t.Fatalf("spawned while paused = %d, want 2", got)
	}

	h.waves.Resume()
	h.game.Resume()
	h.step(3*time.Second, 100*time.Millisecond)
	if got := h.waves.SpawnedInWave(); got != 5 {
		t.Errorf("spawned after resume = %d, want 5", got)
	}
}

func TestHiddenBaseSkipsTickWithoutConsumingSlot(t *testing.T) {
	h := newWaveHarness(fiveOverFiveSeconds())
	h.waves.StartWave(0)

	h.step(1100*time.Millisecond, 100*time.Millisecond)
	if got := h.waves.SpawnedInWave(); got != 1 {
		t.Fatalf("spawned = %d, want 1", got)
	}

	// Base hidden but the run continues: ticks fire and are skipped. No
	// slot is consumed, so the wave still reaches its full count later.
	h.ctx.baseVisible = false
	h.step(3*time.Second, 100*time.Millisecond)
	if got := h.waves.SpawnedInWave(); got != 1 {
		t.Fatalf("spawned with base hidden = %d, want 1", got)
	}

	h.ctx.baseVisible = true
	h.step(5*time.Second, 100*time.Millisecond)
	if got := h.waves.SpawnedInWave(); got != 5 {
		t.Errorf("spawned after base returns = %d, want 5", got)
	}
}

func TestInterWaveBreakAdvancesToNextWave(t *testing.T) {
	h := newWaveHarness([]defs.WaveDefinition{
		{Count: 1, Speed: 0.1, SpreadDeg: 360, DurationMs: 500, Health: 1, Damage: 10},
		{Count: 2, Speed: 0.1, SpreadDeg: 360, DurationMs: 1000, Health: 1, Damage: 10},
	})
	h.waves.StartWave(0)

	h.step(600*time.Millisecond, 100*time.Millisecond)
	if h.rec.count(event.WaveEnded) != 1 {
		t.Fatal("wave 1 did not finish spawning")
	}
	if h.waves.WaveNumber() != 1 {
		t.Fatalf("WaveNumber during break = %d, want 1", h.waves.WaveNumber())
	}

	h.step(config.InterWaveBreak+100*time.Millisecond, 100*time.Millisecond)
	started, ok := h.rec.last(event.WaveStarted)
	if !ok || started.Data != 1 {
		t.Fatalf("WaveStarted after break = %v, want index 1", started.Data)
	}
	if h.waves.WaveNumber() != 2 {
		t.Errorf("WaveNumber = %d, want 2", h.waves.WaveNumber())
	}
}

func TestStopCancelsPendingWork(t *testing.T) {
	h := newWaveHarness(fiveOverFiveSeconds())
	h.waves.StartWave(0)

	h.step(900*time.Millisecond, 100*time.Millisecond)
	h.waves.Stop()
	h.step(10*time.Second, 250*time.Millisecond)

	if got := h.rec.count(event.EnemySpawned); got != 0 {
		t.Errorf("EnemySpawned after Stop = %d, want 0", got)
	}
	if h.ecs.EnemyCount() != 0 {
		t.Errorf("enemies alive after Stop = %d, want 0", h.ecs.EnemyCount())
	}
}

func TestStopDuringBreakCancelsNextWave(t *testing.T) {
	h := newWaveHarness([]defs.WaveDefinition{
		{Count: 1, Speed: 0.1, SpreadDeg: 360, DurationMs: 500, Health: 1, Damage: 10},
		{Count: 1, Speed: 0.1, SpreadDeg: 360, DurationMs: 500, Health: 1, Damage: 10},
	})
	h.waves.StartWave(0)

	h.step(time.Second, 100*time.Millisecond)
	if h.rec.count(event.WaveEnded) != 1 {
		t.Fatal("wave 1 did not finish")
	}
	h.waves.Stop()
	h.step(config.InterWaveBreak*2, 250*time.Millisecond)

	if got := h.rec.count(event.WaveStarted); got != 1 {
		t.Errorf("WaveStarted dispatched %d times, want only the first", got)
	}
}

func TestAllWavesCompleted(t *testing.T) {
	h := newWaveHarness(fiveOverFiveSeconds())
	h.waves.StartWave(1)

	if !h.waves.Done() {
		t.Error("Done() = false past the last wave")
	}
	if h.rec.count(event.AllWavesCompleted) != 1 {
		t.Errorf("AllWavesCompleted dispatched %d times, want 1", h.rec.count(event.AllWavesCompleted))
	}
}

func TestSpawnPositionsOnSpawnCircle(t *testing.T) {
	h := newWaveHarness(fiveOverFiveSeconds())
	h.waves.StartWave(0)
	h.step(6*time.Second, 100*time.Millisecond)

	if h.ecs.EnemyCount() != 5 {
		t.Fatalf("enemies = %d, want 5", h.ecs.EnemyCount())
	}
	for id := range h.ecs.Enemies {
		pos := h.ecs.Positions[id]
		if d := pos.Len(); math.Abs(d-config.SpawnDistance) > 1e-9 {
			t.Errorf("spawn distance = %v, want %v", d, config.SpawnDistance)
		}
	}
}

func TestConeSamplingStaysWithinSpread(t *testing.T) {
	h := newWaveHarness([]defs.WaveDefinition{
		{Count: 10, Speed: 0.1, SpreadDeg: 90, DurationMs: 5000, Health: 1, Damage: 10},
	})
	h.waves.StartWave(0)

	center := h.waves.wave.ConeCenter
	half := h.waves.wave.Def.SpreadRad() / 2
	for i := 0; i < 500; i++ {
		angle := h.waves.sampleSpawnAngle()
		if angle < center-half-1e-9 || angle > center+half+1e-9 {
			t.Fatalf("angle %v outside cone [%v, %v]", angle, center-half, center+half)
		}
	}
}

func TestFullCircleSamplingCoversAllQuadrants(t *testing.T) {
	h := newWaveHarness(fiveOverFiveSeconds())
	h.waves.StartWave(0)

	var quadrants [4]int
	for i := 0; i < 400; i++ {
		angle := h.waves.sampleSpawnAngle()
		if angle < 0 || angle >= 2*math.Pi {
			t.Fatalf("angle %v outside [0, 2π)", angle)
		}
		quadrants[int(angle/(math.Pi/2))]++
	}
	for q, n := range quadrants {
		if n == 0 {
			t.Errorf("quadrant %d never sampled over 400 draws", q)
		}
	}
}
