// internal/system/movement.go
package system

import (
	"ar-tower-defense/internal/config"
	"ar-tower-defense/internal/entity"
	"ar-tower-defense/internal/event"
)

// MovementSystem advances every live enemy straight toward the base origin
// by a fixed 1/60 s step per frame, and resolves arrivals: damage the base,
// destroy the enemy.
type MovementSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *MovementSystem) Update() {
	for id, enemy := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		dist := pos.Len() // target is the base origin
		step := vel.Speed * config.FixedStep
		if step < dist {
			pos.X -= pos.X / dist * step
			pos.Y -= pos.Y / dist * step
			dist -= step
		} else {
			pos.X, pos.Y = 0, 0
			dist = 0
		}

		if dist <= config.ArrivalThreshold {
			damage := enemy.Damage
			s.ecs.DestroyEntity(id)
			s.dispatcher.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: damage})
			continue
		}

		if node, ok := s.ecs.Visuals[id]; ok && node != nil {
			node.SetAttribute("x", pos.X)
			node.SetAttribute("y", pos.Y)
		}
	}
}
