// internal/entity/ecs.go
package entity

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/types"
)

type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Beams       map[types.EntityID]*component.BeamState
	Projectiles map[types.EntityID]*component.Projectile

	Sprints   map[types.EntityID]*component.SprintState
	Devours   map[types.EntityID]*component.DevourState
	Heals     map[types.EntityID]*component.HealPulse
	Symbiotes map[types.EntityID]*component.SymbioteState
	Bosses    map[types.EntityID]*component.BossState

	Wave      *component.Wave
	GameState *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Beams:       make(map[types.EntityID]*component.BeamState),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Sprints:     make(map[types.EntityID]*component.SprintState),
		Devours:     make(map[types.EntityID]*component.DevourState),
		Heals:       make(map[types.EntityID]*component.HealPulse),
		Symbiotes:   make(map[types.EntityID]*component.SymbioteState),
		Bosses:      make(map[types.EntityID]*component.BossState),
		Wave:        nil,
		GameState:   &component.GameState{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEnemy удаляет все компоненты вражеской сущности.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.Sprints, id)
	delete(ecs.Devours, id)
	delete(ecs.Heals, id)
	delete(ecs.Symbiotes, id)
	delete(ecs.Bosses, id)
}

// RemoveTower удаляет все компоненты башни.
func (ecs *ECS) RemoveTower(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Beams, id)
}

// RemoveProjectile удаляет все компоненты снаряда.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Projectiles, id)
}
