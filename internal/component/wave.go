// internal/component/wave.go
package component

import (
	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/grid"
)

// WavePhase — фаза конечного автомата волны.
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveSpawning
	WaveSpawnDone  // все заспавнены, ждём зачистки
	WaveClearDelay // зачищено, пауза перед следующей волной
)

// GatherState — редкое событие "собраться в точке и идти вместе".
// Враги идут к точке сбора и стоят, пока счётчики не сойдутся.
type GatherState struct {
	Point    grid.Tile
	Arrived  int
	Expected int
	Released bool
}

// Wave — состояние текущей волны.
type Wave struct {
	Index      int
	Phase      WavePhase
	Groups     []defs.EnemyGroup
	GroupIndex int
	Emitted    int // заспавнено из текущей группы
	SpawnTimer float64
	ClearTimer float64
	ClearDelay float64

	// ShieldBonus — щит, подаренный курьером предыдущей волны; применяется
	// ко всем врагам этой волны при спавне.
	ShieldBonus int

	Gather *GatherState // nil для обычных волн
}

// TotalCount возвращает суммарное число врагов во всех группах волны.
func (w *Wave) TotalCount() int {
	total := 0
	for _, g := range w.Groups {
		total += g.Count
	}
	return total
}
