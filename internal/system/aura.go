// internal/system/aura.go
package system

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/utils"
)

// AuraSystem пересчитывает эффект джаммеров на башни. Джаммеры двигаются,
// поэтому пересчёт идёт каждый тик, а не по событию постройки.
type AuraSystem struct {
	ecs *entity.ECS
}

func NewAuraSystem(ecs *entity.ECS) *AuraSystem {
	return &AuraSystem{ecs: ecs}
}

func (s *AuraSystem) Update(deltaTime float64) {
	// Шаг 1: сбросить множители.
	for _, combat := range s.ecs.Combats {
		combat.JamFactor = 1.0
	}

	// Шаг 2: применить ауру каждого живого джаммера к башням в радиусе.
	// Стак мультипликативный, но общий множитель зажат, иначе несколько
	// джаммеров глушили бы башню навсегда. На других врагов аура не действует.
	for id, enemy := range s.ecs.Enemies {
		if enemy.Variant != defs.VariantJammer || enemy.Arrived {
			continue
		}
		def, ok := defs.EnemyLibrary[enemy.DefID]
		if !ok || def.Behavior == nil || def.Behavior.Jam == nil {
			continue
		}
		jam := def.Behavior.Jam
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		for towerID, combat := range s.ecs.Combats {
			tower, hasTower := s.ecs.Towers[towerID]
			if !hasTower {
				continue
			}
			tx, ty := utils.TileToScreen(tower.Tile)
			if utils.TileDistance(pos.X, pos.Y, tx, ty) > jam.Radius {
				continue
			}
			combat.JamFactor *= jam.Multiplier
			if combat.JamFactor > config.JammerStackCap {
				combat.JamFactor = config.JammerStackCap
			}
		}
	}
}
