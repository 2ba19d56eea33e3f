// internal/defs/levels.go
package defs

// TileRef — адрес тайла в файле уровня.
type TileRef struct {
	Row int `yaml:"row" json:"row"`
	Col int `yaml:"col" json:"col"`
}

// RectRef — прямоугольник препятствия в файле уровня.
type RectRef struct {
	Row    int `yaml:"row" json:"row"`
	Col    int `yaml:"col" json:"col"`
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// RandomObstacleParams управляет процедурной расстановкой камней.
type RandomObstacleParams struct {
	Count       int `yaml:"count" json:"count"`
	AvoidRadius int `yaml:"avoid_radius" json:"avoid_radius"` // вокруг базы и спавнов
	MinSpacing  int `yaml:"min_spacing" json:"min_spacing"`   // между камнями
}

// EnemyGroup — одна группа врагов внутри волны.
type EnemyGroup struct {
	EnemyID         string  `yaml:"enemy" json:"enemy"`
	Count           int     `yaml:"count" json:"count"`
	Interval        float64 `yaml:"interval" json:"interval"` // сек между спавнами
	HPMultiplier    float64 `yaml:"hp_multiplier" json:"hp_multiplier"`
	SpeedMultiplier float64 `yaml:"speed_multiplier" json:"speed_multiplier"`
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Groups     []EnemyGroup `yaml:"groups" json:"groups"`
	ClearDelay float64      `yaml:"clear_delay" json:"clear_delay"` // пауза после зачистки
}

// LevelDefinition — статичное содержимое уровня. Движок трактует его как
// непрозрачную конфигурацию: поведение определяется только системами.
type LevelDefinition struct {
	Name            string                `yaml:"name" json:"name"`
	Width           int                   `yaml:"width" json:"width"`
	Height          int                   `yaml:"height" json:"height"`
	Spawns          []TileRef             `yaml:"spawns" json:"spawns"`
	Base            TileRef               `yaml:"base" json:"base"`
	Obstacles       []RectRef             `yaml:"obstacles" json:"obstacles"`
	RandomObstacles *RandomObstacleParams `yaml:"random_obstacles" json:"random_obstacles"`
	Waves           []WaveDefinition      `yaml:"waves" json:"waves"`
	StartEnergy     float64               `yaml:"start_energy" json:"start_energy"`
	BaseHealth      int                   `yaml:"base_health" json:"base_health"`
}
