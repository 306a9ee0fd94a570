// internal/system/combat.go
package system

import (
	"math"

	"ar-tower-defense/internal/config"
	"ar-tower-defense/internal/entity"
	"ar-tower-defense/internal/event"
	"ar-tower-defense/internal/interfaces"
	"ar-tower-defense/internal/types"
	"ar-tower-defense/pkg/clock"
)

// CombatSystem resolves tower attacks: per tower per frame, pick the
// nearest live enemy within range, kill it, score it. At most one kill per
// tower per cooldown window; no splash, no multi-target.
type CombatSystem struct {
	ecs        *entity.ECS
	towers     *TowerSystem
	dispatcher *event.Dispatcher
	clk        clock.Clock
	sched      *clock.Scheduler
	scene      interfaces.VisualNode // attack-line parent, nullable

	pointsPerKill   int
	pointMultiplier int
}

func NewCombatSystem(ecs *entity.ECS, towers *TowerSystem, dispatcher *event.Dispatcher, clk clock.Clock, sched *clock.Scheduler, scene interfaces.VisualNode) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		towers:          towers,
		dispatcher:      dispatcher,
		clk:             clk,
		sched:           sched,
		scene:           scene,
		pointsPerKill:   config.PointsPerKill,
		pointMultiplier: config.PointMultiplier,
	}
}

// Update runs one attack pass. It must run before enemy movement within the
// frame so a killed enemy is out of the live collection before the movement
// pass can act on it.
func (s *CombatSystem) Update() {
	now := s.clk.Now()
	for _, t := range s.towers.Instances() {
		if !s.towers.AttackReady(t) {
			continue
		}
		if now.Sub(t.LastShot) < t.FireRate {
			continue
		}
		towerPos, ok := t.Anchor.LocalPosition(s.towers.Base())
		if !ok {
			continue
		}
		targetID, targetPos, found := s.findNearestEnemyInRange(towerPos, t.Range)
		if !found {
			continue
		}

		s.flashAttackLine(towerPos, targetPos)
		points := s.pointsPerKill * s.pointMultiplier
		s.ecs.DestroyEntity(targetID)
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: points})
		t.LastShot = now
	}
}

// findNearestEnemyInRange scans all live enemies and returns the one with
// minimum straight-line distance in the base's local plane, subject to
// distance <= rangeRadius. The first enemy encountered at the minimum
// distance wins ties.
func (s *CombatSystem) findNearestEnemyInRange(from types.Vec2, rangeRadius float64) (types.EntityID, types.Vec2, bool) {
	var nearest types.EntityID
	var nearestPos types.Vec2
	minDistance := math.MaxFloat64
	found := false
	for id := range s.ecs.Enemies {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		distance := from.Dist(*pos)
		if distance <= rangeRadius && distance < minDistance {
			minDistance = distance
			nearest = id
			nearestPos = *pos
			found = true
		}
	}
	return nearest, nearestPos, found
}

// flashAttackLine shows a transient beam from tower to target, removed by a
// timer. Node removal is idempotent, so a beam outliving a scene teardown
// is harmless.
func (s *CombatSystem) flashAttackLine(from, to types.Vec2) {
	if s.scene == nil {
		return
	}
	node := s.scene.CreateChild("beam")
	node.SetAttribute("x1", from.X)
	node.SetAttribute("y1", from.Y)
	node.SetAttribute("x2", to.X)
	node.SetAttribute("y2", to.Y)
	s.sched.After(config.AttackFlashDuration, node.Remove)
}
