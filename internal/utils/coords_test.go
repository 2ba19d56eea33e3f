package utils

import (
	"math"
	"testing"

	"go-grid-defense/internal/config"
	"go-grid-defense/pkg/grid"
)

func TestTileScreenRoundTrip(t *testing.T) {
	tiles := []grid.Tile{{Row: 0, Col: 0}, {Row: 3, Col: 7}, {Row: 14, Col: 19}}
	for _, tile := range tiles {
		x, y := TileToScreen(tile)
		if got := ScreenToTile(x, y); got != tile {
			t.Errorf("round trip %v -> (%v,%v) -> %v", tile, x, y, got)
		}
	}
}

func TestTileToScreenCenters(t *testing.T) {
	x, y := TileToScreen(grid.Tile{Row: 2, Col: 5})
	if x != 5.5*config.TileSize || y != 2.5*config.TileSize {
		t.Errorf("center = (%v,%v)", x, y)
	}
}

func TestScreenToTileEdges(t *testing.T) {
	// Точка на границе тайлов принадлежит следующему тайлу.
	if got := ScreenToTile(config.TileSize, 0); got != (grid.Tile{Row: 0, Col: 1}) {
		t.Errorf("edge point -> %v", got)
	}
	if got := ScreenToTile(config.TileSize-0.001, 0); got != (grid.Tile{Row: 0, Col: 0}) {
		t.Errorf("just-inside point -> %v", got)
	}
}

func TestTileDistanceInTiles(t *testing.T) {
	x1, y1 := TileToScreen(grid.Tile{Row: 0, Col: 0})
	x2, y2 := TileToScreen(grid.Tile{Row: 3, Col: 4})
	if got := TileDistance(x1, y1, x2, y2); math.Abs(got-5) > 1e-9 {
		t.Errorf("distance = %v, want 5 (3-4-5 triangle)", got)
	}
}

func TestPRNGDeterministicWithSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestPRNGChanceBounds(t *testing.T) {
	rng := NewPRNGService(7)
	for i := 0; i < 100; i++ {
		if rng.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
	}
	for i := 0; i < 100; i++ {
		if !rng.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}
