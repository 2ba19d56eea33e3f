// internal/defs/enemies.go
package defs

// BehaviorParams holds the per-variant tuning knobs. Pointers keep the JSON
// compact: an enemy only carries the block its variant actually reads.
type BehaviorParams struct {
	Sprint   *SprintParams   `json:"sprint,omitempty"`
	Devour   *DevourParams   `json:"devour,omitempty"`
	Heal     *HealParams     `json:"heal,omitempty"`
	Jam      *JamParams      `json:"jam,omitempty"`
	Courier  *CourierParams  `json:"courier,omitempty"`
	Symbiote *SymbioteParams `json:"symbiote,omitempty"`
	Risk     *RiskParams     `json:"risk,omitempty"`
	Boss     *BossParams     `json:"boss,omitempty"`
}

// SprintParams — чередование "отдых → рывок".
type SprintParams struct {
	Multiplier float64 `json:"multiplier"`
	Duration   float64 `json:"duration"`
	Cooldown   float64 `json:"cooldown"`
}

// DevourParams — пожирание останков недавно погибших врагов.
type DevourParams struct {
	Radius     float64 `json:"radius"`      // в тайлах
	TimeWindow float64 `json:"time_window"` // сек после смерти
	Heal       int     `json:"heal"`
	SlowFactor float64 `json:"slow_factor"` // множитель скорости за каждое пожирание
	GrowFactor float64 `json:"grow_factor"` // множитель размера за каждое пожирание
	MaxCount   int     `json:"max_count"`
}

// HealParams — периодическое лечение союзников в радиусе.
type HealParams struct {
	Radius   float64 `json:"radius"`
	Interval float64 `json:"interval"`
	Amount   int     `json:"amount"`
}

// JamParams — пассивная аура, растягивающая интервал атаки башен.
type JamParams struct {
	Radius     float64 `json:"radius"`
	Multiplier float64 `json:"multiplier"` // >1, на башню за каждый джаммер рядом
}

// CourierParams — курьер дарит следующей волне щит вместо урона базе.
type CourierParams struct {
	ShieldGrant int `json:"shield_grant"`
	ShieldCap   int `json:"shield_cap"`
}

// SymbioteParams — спутники-щиты, восстанавливаются со временем.
type SymbioteParams struct {
	MaxCharges     int     `json:"max_charges"`
	RechargePeriod float64 `json:"recharge_period"`
}

// RiskParams — вес штрафа за плотность башен при поиске пути (smart).
type RiskParams struct {
	Weight      float64 `json:"weight"`
	SenseRadius int     `json:"sense_radius"`
}

// BossParams — два независимых таймера навыков босса.
type BossParams struct {
	SummonCount     int     `json:"summon_count"`
	SummonInterval  float64 `json:"summon_interval"`
	SummonEnemyID   string  `json:"summon_enemy_id"`
	SummonRadius    int     `json:"summon_radius"`
	DestroyInterval float64 `json:"destroy_interval"`
	DestroyRange    float64 `json:"destroy_range"`
	DestroyCount    int     `json:"destroy_count"`
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Variant      Variant         `json:"variant"`
	Health       int             `json:"health"`
	Speed        float64         `json:"speed"` // pixels per second
	Armor        float64         `json:"armor"` // [0,1), доля поглощаемого урона
	DamageToBase int             `json:"damage_to_base"`
	RewardEnergy int             `json:"reward_energy"`
	Behavior     *BehaviorParams `json:"behavior,omitempty"`
}

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
var EnemyLibrary map[string]EnemyDefinition
