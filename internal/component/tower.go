// internal/component/tower.go
package component

import (
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

// Tower представляет башню, привязанную к одному тайлу.
type Tower struct {
	DefID    string
	Tile     grid.Tile
	Disabled bool // отключена скриптовым событием, цикл атаки пропускается
}

// Combat — боевое состояние башни.
type Combat struct {
	FireCooldown float64
	// Множитель интервала атаки от аур джаммеров, пересчитывается каждый
	// тик системой аур. 1.0 — без помех.
	JamFactor float64
}

// BeamState — текущая цель лучевой башни. Проверяется заново каждый тик.
type BeamState struct {
	TargetID types.EntityID
}
