// internal/system/wave.go
package system

import (
	"math"

	"ar-tower-defense/internal/component"
	"ar-tower-defense/internal/config"
	"ar-tower-defense/internal/defs"
	"ar-tower-defense/internal/entity"
	"ar-tower-defense/internal/event"
	"ar-tower-defense/internal/interfaces"
	"ar-tower-defense/internal/types"
	"ar-tower-defense/internal/utils"
	"ar-tower-defense/pkg/clock"
)

// WaveContext is what the scheduler needs to know about the enclosing run.
type WaveContext interface {
	// BaseVisible reports whether the base marker is currently tracked.
	// Spawning silently no-ops while it is not.
	BaseVisible() bool
	// RunOver reports whether the run has ended (lost or won).
	RunOver() bool
}

// WaveScheduler drives timed enemy spawn cadence per wave, inter-wave
// breaks, and pause/resume tied to base-marker visibility. Exactly one
// spawn task is live per wave segment; every timer callback re-checks
// liveness through a generation counter so a stale timer can never spawn
// into a reset or inactive run.
type WaveScheduler struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	sched      *clock.Scheduler
	rng        *utils.PRNGService
	ctx        WaveContext
	scene      interfaces.VisualNode // enemy visuals parent, nullable
	waves      []defs.WaveDefinition

	wave      *component.Wave
	spawnTask *clock.Task
	breakTask *clock.Task
	gen       int
	paused    bool
	done      bool
}

func NewWaveScheduler(ecs *entity.ECS, dispatcher *event.Dispatcher, sched *clock.Scheduler, rng *utils.PRNGService, ctx WaveContext, scene interfaces.VisualNode, waves []defs.WaveDefinition) *WaveScheduler {
	return &WaveScheduler{
		ecs:        ecs,
		dispatcher: dispatcher,
		sched:      sched,
		rng:        rng,
		ctx:        ctx,
		scene:      scene,
		waves:      waves,
	}
}

// StartWave begins emitting enemies for wave n at the wave's derived
// interval. A new spawn-cone center angle is rolled for the wave.
func (s *WaveScheduler) StartWave(n int) {
	s.cancelTasks()
	if n >= len(s.waves) {
		s.wave = nil
		s.done = true
		s.dispatcher.Dispatch(event.Event{Type: event.AllWavesCompleted})
		return
	}
	s.wave = &component.Wave{
		Index:      n,
		Def:        s.waves[n],
		ConeCenter: s.rng.Angle(),
	}
	s.done = false
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: n})

	gen := s.gen
	s.spawnTask = s.sched.Every(s.wave.Def.SpawnInterval(), func() {
		s.spawnTick(gen)
	})
}

// Stop cancels all scheduled work and forgets the current wave.
func (s *WaveScheduler) Stop() {
	s.cancelTasks()
	s.wave = nil
	s.paused = false
}

// Pause suspends spawning on base-tracking loss. Spawn progress is
// preserved exactly; the caller is expected to also pause the game clock so
// the in-flight interval freezes rather than elapses.
func (s *WaveScheduler) Pause() {
	s.paused = true
}

// Resume continues spawning after re-acquisition, respecting the wave's
// original interval.
func (s *WaveScheduler) Resume() {
	s.paused = false
}

// WaveNumber returns the 1-based number of the current or last started
// wave, 0 before any wave has started.
func (s *WaveScheduler) WaveNumber() int {
	if s.wave == nil {
		return 0
	}
	return s.wave.Index + 1
}

// SpawnedInWave returns how many enemies the current wave has emitted.
func (s *WaveScheduler) SpawnedInWave() int {
	if s.wave == nil {
		return 0
	}
	return s.wave.Spawned
}

// Done reports whether every wave has finished spawning.
func (s *WaveScheduler) Done() bool {
	return s.done
}

func (s *WaveScheduler) cancelTasks() {
	s.gen++
	if s.spawnTask != nil {
		s.spawnTask.Stop()
		s.spawnTask = nil
	}
	if s.breakTask != nil {
		s.breakTask.Stop()
		s.breakTask = nil
	}
}

// spawnTick runs once per spawn interval. The timer keeps ticking through
// tracking outages and completed runs; ticks that cannot spawn are skipped
// without consuming a spawn slot, so a long outage stalls the wave but
// never corrupts the spawned-count invariant.
func (s *WaveScheduler) spawnTick(gen int) {
	if gen != s.gen || s.wave == nil || s.paused {
		return
	}
	if s.ctx.RunOver() || !s.ctx.BaseVisible() {
		return
	}
	if s.wave.Spawned >= s.wave.Def.Count {
		return
	}

	id := s.spawnEnemy()
	s.wave.Spawned++
	s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})

	if s.wave.Spawned >= s.wave.Def.Count {
		if s.spawnTask != nil {
			s.spawnTask.Stop()
			s.spawnTask = nil
		}
		idx := s.wave.Index
		s.dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: idx})
		breakGen := s.gen
		s.breakTask = s.sched.After(config.InterWaveBreak, func() {
			if breakGen != s.gen {
				return
			}
			s.StartWave(idx + 1)
		})
	}
}

func (s *WaveScheduler) spawnEnemy() types.EntityID {
	def := s.wave.Def
	angle := s.sampleSpawnAngle()
	id := s.ecs.NewEntity()
	pos := types.Vec2{
		X: math.Cos(angle) * config.SpawnDistance,
		Y: math.Sin(angle) * config.SpawnDistance,
	}
	s.ecs.Positions[id] = &pos
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Healths[id] = &component.Health{Value: def.Health}
	s.ecs.Enemies[id] = &component.Enemy{Damage: def.Damage}
	if s.scene != nil {
		node := s.scene.CreateChild("enemy")
		node.SetAttribute("x", pos.X)
		node.SetAttribute("y", pos.Y)
		s.ecs.Visuals[id] = node
	}
	return id
}

// sampleSpawnAngle draws this spawn's direction. A spread covering the full
// circle samples uniformly over [0, 2π); anything narrower samples
// uniformly within the wave's cone.
func (s *WaveScheduler) sampleSpawnAngle() float64 {
	spread := s.wave.Def.SpreadRad()
	if spread >= 2*math.Pi-config.FullCircleEpsilon {
		return s.rng.Angle()
	}
	return s.rng.InRange(s.wave.ConeCenter-spread/2, s.wave.ConeCenter+spread/2)
}
