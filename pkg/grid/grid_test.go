package grid

import "testing"

func TestTileDistance(t *testing.T) {
	a := Tile{Row: 2, Col: 3}
	b := Tile{Row: 5, Col: 1}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance = %d, want 5", got)
	}
	if got := a.Distance(a); got != 0 {
		t.Errorf("Distance to self = %d, want 0", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Row: 2, Col: 3, Width: 2, Height: 3}
	inside := []Tile{{2, 3}, {2, 4}, {4, 3}, {4, 4}}
	for _, tile := range inside {
		if !r.Contains(tile) {
			t.Errorf("Contains(%v) = false, want true", tile)
		}
	}
	outside := []Tile{{1, 3}, {5, 3}, {2, 2}, {2, 5}}
	for _, tile := range outside {
		if r.Contains(tile) {
			t.Errorf("Contains(%v) = true, want false", tile)
		}
	}
}

func TestRectTiles(t *testing.T) {
	r := Rect{Row: 1, Col: 1, Width: 3, Height: 2}
	tiles := r.Tiles()
	if len(tiles) != 6 {
		t.Fatalf("Tiles() returned %d tiles, want 6", len(tiles))
	}
	for _, tile := range tiles {
		if !r.Contains(tile) {
			t.Errorf("Tiles() produced %v outside the rect", tile)
		}
	}
}

func TestGridBlockUnblock(t *testing.T) {
	g := NewGrid(10, 8, []Tile{{0, 0}}, Tile{7, 9})
	tile := Tile{Row: 3, Col: 4}

	if !g.IsWalkable(tile) {
		t.Fatal("fresh grid tile should be walkable")
	}
	g.SetBlocked(tile, true)
	if g.IsWalkable(tile) {
		t.Error("blocked tile reported walkable")
	}
	if !g.IsBlocked(tile) {
		t.Error("IsBlocked = false for blocked tile")
	}
	g.SetBlocked(tile, false)
	if !g.IsWalkable(tile) {
		t.Error("unblocked tile reported unwalkable")
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(5, 5, nil, Tile{})
	for _, tile := range []Tile{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		if g.IsWalkable(tile) {
			t.Errorf("out-of-bounds tile %v reported walkable", tile)
		}
		if g.InBounds(tile) {
			t.Errorf("InBounds(%v) = true", tile)
		}
	}
}

func TestInBoundsRect(t *testing.T) {
	g := NewGrid(10, 10, nil, Tile{})
	if !g.InBoundsRect(Rect{Row: 8, Col: 8, Width: 2, Height: 2}) {
		t.Error("rect touching the far edge should be in bounds")
	}
	if g.InBoundsRect(Rect{Row: 9, Col: 9, Width: 2, Height: 2}) {
		t.Error("rect crossing the far edge should be out of bounds")
	}
	if g.InBoundsRect(Rect{Row: 0, Col: 0, Width: 0, Height: 1}) {
		t.Error("degenerate rect should be out of bounds")
	}
}

func TestCommitAndOverlaps(t *testing.T) {
	g := NewGrid(10, 10, nil, Tile{})
	rect := Rect{Row: 2, Col: 2, Width: 2, Height: 2}
	g.Commit(Obstacle{Rect: rect, Source: SourcePreset})

	if len(g.Obstacles) != 1 {
		t.Fatalf("Obstacles count = %d, want 1", len(g.Obstacles))
	}
	if !g.OverlapsObstacle(Rect{Row: 3, Col: 3, Width: 2, Height: 2}) {
		t.Error("overlapping rect not detected")
	}
	if g.OverlapsObstacle(Rect{Row: 5, Col: 5, Width: 1, Height: 1}) {
		t.Error("disjoint rect reported overlapping")
	}
}

func TestRemoveExpired(t *testing.T) {
	g := NewGrid(10, 10, nil, Tile{})
	temp := Rect{Row: 1, Col: 1, Width: 1, Height: 1}
	perm := Rect{Row: 5, Col: 5, Width: 1, Height: 1}
	g.Commit(Obstacle{Rect: temp, Source: SourceTemporary, ExpiresAt: 10})
	g.Commit(Obstacle{Rect: perm, Source: SourcePreset})

	if g.RemoveExpired(5) {
		t.Error("nothing should expire at t=5")
	}
	if !g.RemoveExpired(10) {
		t.Error("temporary obstacle should expire at t=10")
	}
	if g.IsBlocked(Tile{Row: 1, Col: 1}) {
		t.Error("expired obstacle tile still blocked")
	}
	if !g.IsBlocked(Tile{Row: 5, Col: 5}) {
		t.Error("permanent obstacle must survive expiry pass")
	}
	if len(g.Obstacles) != 1 {
		t.Errorf("Obstacles count = %d, want 1", len(g.Obstacles))
	}
}

func TestCloneIsolation(t *testing.T) {
	g := NewGrid(6, 6, []Tile{{0, 0}}, Tile{5, 5})
	clone := g.Clone()
	clone.BlockRect(Rect{Row: 2, Col: 2, Width: 2, Height: 2})

	if g.IsBlocked(Tile{Row: 2, Col: 2}) {
		t.Error("mutating the clone leaked into the original grid")
	}
	if !clone.IsBlocked(Tile{Row: 2, Col: 2}) {
		t.Error("clone did not record the block")
	}
}
