// internal/system/combat.go
package system

import (
	"log"
	"math"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
)

// CombatSystem управляет циклом атаки башен: выбор цели по стратегии,
// выстрел снарядом или непрерывный луч.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for id, combat := range s.ecs.Combats {
		tower, hasTower := s.ecs.Towers[id]
		if !hasTower || tower.Disabled {
			continue
		}
		towerDef, ok := defs.TowerLibrary[tower.DefID]
		if !ok {
			log.Printf("CombatSystem: could not find tower definition for ID %s", tower.DefID)
			continue
		}

		if towerDef.Beam != nil {
			s.updateBeam(id, tower, &towerDef, deltaTime)
			continue
		}

		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime
			continue
		}

		targetID := s.selectTarget(tower, &towerDef)
		if targetID == 0 {
			continue
		}

		damage := towerDef.Damage
		// Палач: множитель урона по целям ниже порога здоровья.
		// Оценивается в момент выстрела, по прицельному снимку цели.
		if towerDef.Execute != nil {
			if health, okH := s.ecs.Healths[targetID]; okH && health.Max > 0 &&
				health.Value/health.Max < towerDef.Execute.Threshold {
				damage = int(float64(damage) * towerDef.Execute.Multiplier)
			}
		}

		s.createProjectile(id, targetID, &towerDef, damage)

		// Аура джаммеров растягивает эффективный интервал атаки.
		combat.FireCooldown = towerDef.AttackInterval * combat.JamFactor
	}
}

// selectTarget собирает живых врагов в кольце [MinRange, Range] и выбирает
// по стратегии: FIRST — ближайший, STRONGEST — максимум HP, LOWEST —
// минимальная доля HP.
func (s *CombatSystem) selectTarget(tower *component.Tower, def *defs.TowerDefinition) types.EntityID {
	tx, ty := utils.TileToScreen(tower.Tile)

	var best types.EntityID
	var bestScore float64
	for enemyID, enemy := range s.ecs.Enemies {
		if enemy.Arrived {
			continue
		}
		health, okH := s.ecs.Healths[enemyID]
		pos, okP := s.ecs.Positions[enemyID]
		if !okH || !okP || health.Value <= 0 {
			continue
		}
		dist := utils.TileDistance(tx, ty, pos.X, pos.Y)
		if dist > def.Range || dist < def.MinRange {
			continue
		}

		var score float64
		switch def.Strategy {
		case defs.TargetStrongest:
			score = -health.Value // больше HP — лучше
		case defs.TargetLowest:
			score = health.Value / health.Max // меньше доля — лучше
		default: // TargetFirst
			score = dist
		}
		if best == 0 || score < bestScore {
			best = enemyID
			bestScore = score
		}
	}
	return best
}

// updateBeam: луч перепроверяет цель каждый тик и наносит процентный урон
// напрямую, без снаряда.
func (s *CombatSystem) updateBeam(id types.EntityID, tower *component.Tower, def *defs.TowerDefinition, deltaTime float64) {
	beam, ok := s.ecs.Beams[id]
	if !ok {
		beam = &component.BeamState{}
		s.ecs.Beams[id] = beam
	}

	if !s.beamTargetValid(tower, def, beam.TargetID) {
		beam.TargetID = s.selectTarget(tower, def)
	}
	if beam.TargetID == 0 {
		return
	}

	health := s.ecs.Healths[beam.TargetID]
	rate := health.Value * def.Beam.PercentRate
	if rate < def.Beam.MinDamage {
		rate = def.Beam.MinDamage
	}
	health.Value -= rate * deltaTime
}

func (s *CombatSystem) beamTargetValid(tower *component.Tower, def *defs.TowerDefinition, targetID types.EntityID) bool {
	if targetID == 0 {
		return false
	}
	enemy, okE := s.ecs.Enemies[targetID]
	health, okH := s.ecs.Healths[targetID]
	pos, okP := s.ecs.Positions[targetID]
	if !okE || !okH || !okP || enemy.Arrived || health.Value <= 0 {
		return false
	}
	tx, ty := utils.TileToScreen(tower.Tile)
	dist := utils.TileDistance(tx, ty, pos.X, pos.Y)
	return dist <= def.Range && dist >= def.MinRange
}

func (s *CombatSystem) createProjectile(towerID, enemyID types.EntityID, def *defs.TowerDefinition, damage int) {
	projID := s.ecs.NewEntity()
	tx, ty := utils.TileToScreen(s.ecs.Towers[towerID].Tile)
	enemyPos := s.ecs.Positions[enemyID]

	proj := &component.Projectile{
		TargetID: enemyID,
		TargetX:  enemyPos.X,
		TargetY:  enemyPos.Y,
		Speed:    config.ProjectileSpeed,
		Damage:   damage,
	}
	if def.Splash != nil {
		proj.SplashRadius = def.Splash.Radius * config.TileSize
	}

	s.ecs.Positions[projID] = &component.Position{X: tx, Y: ty}
	s.ecs.Projectiles[projID] = proj
}

// ApplyDamage наносит "сырой" урон врагу с учётом брони и щитов.
// Формула: max(1, floor(raw × (1 − armor))) — любой удар снимает хотя бы
// единицу. Заряд симбиота поглощает удар целиком, щит курьера — поштучно.
func ApplyDamage(ecs *entity.ECS, id types.EntityID, rawDamage int) {
	enemy, okE := ecs.Enemies[id]
	health, okH := ecs.Healths[id]
	if !okE || !okH || health.Value <= 0 {
		return
	}

	if sym, ok := ecs.Symbiotes[id]; ok && sym.Charges > 0 {
		sym.Charges--
		return
	}

	damage := int(math.Floor(float64(rawDamage) * (1 - enemy.Armor)))
	if damage < 1 {
		damage = 1
	}

	if enemy.Shield > 0 {
		if enemy.Shield >= damage {
			enemy.Shield -= damage
			return
		}
		damage -= enemy.Shield
		enemy.Shield = 0
	}

	health.Value -= float64(damage)
}
