// internal/system/projectile.go
package system

import (
	"math"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
)

// ProjectileSystem ведёт снаряды и наносит урон при попадании.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveProjectile(id)
			continue
		}

		// Самонаводящийся снаряд следует за живой целью; если цель пропала,
		// одиночный снаряд гаснет, а осколочный долетает до последней точки
		// и взрывается по площади.
		if proj.TargetID != 0 {
			if targetPos, alive := s.ecs.Positions[proj.TargetID]; alive && s.targetLive(proj.TargetID) {
				proj.TargetX = targetPos.X
				proj.TargetY = targetPos.Y
			} else if proj.SplashRadius <= 0 {
				s.ecs.RemoveProjectile(id)
				continue
			} else {
				proj.TargetID = 0
			}
		}

		dx := proj.TargetX - pos.X
		dy := proj.TargetY - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)

		step := proj.Speed * deltaTime
		if dist <= step {
			pos.X = proj.TargetX
			pos.Y = proj.TargetY
			s.hit(id, proj)
			continue
		}
		pos.X += (dx / dist) * step
		pos.Y += (dy / dist) * step
	}
}

func (s *ProjectileSystem) targetLive(id types.EntityID) bool {
	enemy, okE := s.ecs.Enemies[id]
	health, okH := s.ecs.Healths[id]
	return okE && okH && !enemy.Arrived && health.Value > 0
}

func (s *ProjectileSystem) hit(id types.EntityID, proj *component.Projectile) {
	if proj.SplashRadius > 0 {
		// Осколочный: урон всем живым врагам в радиусе от точки попадания.
		for enemyID := range s.ecs.Enemies {
			if !s.targetLive(enemyID) {
				continue
			}
			enemyPos := s.ecs.Positions[enemyID]
			if enemyPos == nil {
				continue
			}
			dx := enemyPos.X - proj.TargetX
			dy := enemyPos.Y - proj.TargetY
			if math.Sqrt(dx*dx+dy*dy) <= proj.SplashRadius {
				ApplyDamage(s.ecs, enemyID, proj.Damage)
			}
		}
	} else if proj.TargetID != 0 && s.targetLive(proj.TargetID) {
		// Одиночный: бьёт только отслеживаемую цель.
		ApplyDamage(s.ecs, proj.TargetID, proj.Damage)
	}
	s.ecs.RemoveProjectile(id)
}
