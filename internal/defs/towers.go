// internal/defs/towers.go
package defs

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Cost           float64        `json:"cost"`
	Damage         int            `json:"damage"`
	AttackInterval float64        `json:"attack_interval"` // сек между выстрелами
	Range          float64        `json:"range"`           // в тайлах
	MinRange       float64        `json:"min_range"`       // ближе этой дистанции не стреляет
	Strategy       TargetStrategy `json:"strategy"`
	Splash         *SplashParams  `json:"splash,omitempty"`
	Execute        *ExecuteParams `json:"execute,omitempty"`
	Beam           *BeamParams    `json:"beam,omitempty"`
}

// SplashParams — снаряд бьёт по площади вокруг точки попадания.
type SplashParams struct {
	Radius float64 `json:"radius"` // в тайлах
}

// ExecuteParams — множитель урона по целям ниже порога здоровья.
type ExecuteParams struct {
	Threshold  float64 `json:"threshold"`  // доля HP, ниже которой срабатывает
	Multiplier float64 `json:"multiplier"` // множитель урона
}

// BeamParams — непрерывный луч: процентный урон без снаряда.
type BeamParams struct {
	PercentRate float64 `json:"percent_rate"` // доля текущего HP цели в секунду
	MinDamage   float64 `json:"min_damage"`   // нижняя граница урона в секунду
}

// TowerLibrary is the library of all tower definitions, mapped by their ID.
var TowerLibrary map[string]TowerDefinition
