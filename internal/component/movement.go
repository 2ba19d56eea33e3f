// internal/component/movement.go
package component

import "go-grid-defense/pkg/grid"

// Position — компонент позиции (в пикселях)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	Speed float64 // базовая, pixels per second
}

// Path — компонент пути
type Path struct {
	Tiles        []grid.Tile
	CurrentIndex int
	NeedsRepath  bool // выставляется при инвалидации (успешное размещение)
	NeverHad     bool // пути не существовало ни разу — включается резервный шаг
}

// Exhausted сообщает, пройден ли путь до конца (или path пуст).
func (p *Path) Exhausted() bool {
	return p.CurrentIndex >= len(p.Tiles)
}
