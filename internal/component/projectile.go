// internal/component/projectile.go
package component

import "go-grid-defense/internal/types"

// Projectile представляет летящий снаряд.
type Projectile struct {
	TargetID     types.EntityID // 0 — летит в точку, не в цель
	TargetX      float64
	TargetY      float64
	Speed        float64
	Damage       int     // итоговый "сырой" урон, посчитанный при выстреле
	SplashRadius float64 // >0 — бьёт по площади вокруг точки попадания, в пикселях
}
