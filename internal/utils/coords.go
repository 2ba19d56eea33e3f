// internal/utils/coords.go
package utils

import (
	"math"

	"go-grid-defense/internal/config"
	"go-grid-defense/pkg/grid"
)

// TileToScreen возвращает пиксельный центр тайла.
func TileToScreen(t grid.Tile) (float64, float64) {
	x := (float64(t.Col) + 0.5) * config.TileSize
	y := (float64(t.Row) + 0.5) * config.TileSize
	return x, y
}

// ScreenToTile возвращает тайл, содержащий пиксельную точку.
func ScreenToTile(x, y float64) grid.Tile {
	return grid.Tile{
		Row: int(math.Floor(y / config.TileSize)),
		Col: int(math.Floor(x / config.TileSize)),
	}
}

// TileDistance — евклидово расстояние между пиксельными точками в тайлах.
func TileDistance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx+dy*dy) / config.TileSize
}
