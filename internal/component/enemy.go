// internal/component/enemy.go
package component

import (
	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/grid"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID        string // ID из enemies.json
	Variant      defs.Variant
	Armor        float64 // [0,1), доля поглощаемого урона
	DamageToBase int
	RewardEnergy int
	Shield       int     // поглощает урон до HP; выдаётся курьером и симбиотом
	SizeFactor   float64 // растёт у пожирателя, чисто визуальный для хоста
	Arrived      bool    // дошёл до базы, подлежит удалению
	GatherBound  bool    // участвует в волне сбора
	GatherHeld   bool    // стоит в точке сбора и ждёт общего рывка
}

// Health — текущее и максимальное здоровье. Float, чтобы лучевые башни
// могли наносить дробный урон за тик без потери на округлении.
type Health struct {
	Value float64
	Max   float64
}

// SprintState — состояние рывка (sprinter).
type SprintState struct {
	Active bool
	Timer  float64 // до конца текущей фазы
}

// DevourState — сколько останков уже съедено (devourer).
type DevourState struct {
	Count int
}

// HealPulse — таймер до следующего лечения (healer).
type HealPulse struct {
	Timer float64
}

// SymbioteState — заряды спутников-щитов.
type SymbioteState struct {
	Charges int
	Timer   float64
}

// Telegraph — башня, помеченная боссом на разрушение.
type Telegraph struct {
	TowerTile grid.Tile
	Timer     float64
}

// BossState — два независимых таймера навыков босса. При неудаче навык
// повторяется через короткую задержку, а не через полный кулдаун.
type BossState struct {
	SummonTimer  float64
	DestroyTimer float64
	Telegraphs   []Telegraph
}
