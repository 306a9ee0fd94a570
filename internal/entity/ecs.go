// internal/entity/ecs.go
package entity

import (
	"ar-tower-defense/internal/component"
	"ar-tower-defense/internal/interfaces"
	"ar-tower-defense/internal/types"
)

// ECS is the simulation world. The entity set is small and fixed in kind, so
// plain component maps are enough.
type ECS struct {
	NextID     types.EntityID
	Positions  map[types.EntityID]*types.Vec2
	Velocities map[types.EntityID]*component.Velocity
	Healths    map[types.EntityID]*component.Health
	Enemies    map[types.EntityID]*component.Enemy
	Visuals    map[types.EntityID]interfaces.VisualNode
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Positions:  make(map[types.EntityID]*types.Vec2),
		Velocities: make(map[types.EntityID]*component.Velocity),
		Healths:    make(map[types.EntityID]*component.Health),
		Enemies:    make(map[types.EntityID]*component.Enemy),
		Visuals:    make(map[types.EntityID]interfaces.VisualNode),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// DestroyEntity removes every component of id and detaches its visual. An
// enemy never survives a destroy call; it is gone from the live collection
// before any later pass in the same frame can act on it.
func (ecs *ECS) DestroyEntity(id types.EntityID) {
	if node, ok := ecs.Visuals[id]; ok && node != nil {
		node.Remove()
	}
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.Visuals, id)
}

// EnemyCount returns the number of live enemies.
func (ecs *ECS) EnemyCount() int {
	return len(ecs.Enemies)
}
