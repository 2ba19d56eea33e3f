package grid

import "testing"

// bfsLength — эталонная длина кратчайшего пути в шагах, -1 если пути нет.
func bfsLength(g *Grid, start, goal Tile) int {
	if !g.IsWalkable(start) || !g.IsWalkable(goal) {
		return -1
	}
	dist := map[Tile]int{start: 0}
	queue := []Tile{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, d := range Directions {
			next := cur.Add(d)
			if !g.IsWalkable(next) {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return -1
}

func TestAStarOpenField(t *testing.T) {
	g := NewGrid(10, 10, nil, Tile{})
	path := AStar(Tile{0, 0}, Tile{9, 9}, g.IsWalkable, nil)
	if path == nil {
		t.Fatal("no path found on an open field")
	}
	// 18 шагов + стартовый тайл
	if len(path) != 19 {
		t.Errorf("path length = %d tiles, want 19", len(path))
	}
	if path[0] != (Tile{0, 0}) || path[len(path)-1] != (Tile{9, 9}) {
		t.Errorf("path endpoints wrong: %v .. %v", path[0], path[len(path)-1])
	}
}

func TestAStarPathIsContiguousAndWalkable(t *testing.T) {
	g := NewGrid(12, 12, nil, Tile{})
	// Стена с одним проходом.
	for row := 0; row < 11; row++ {
		g.SetBlocked(Tile{Row: row, Col: 6}, true)
	}
	path := AStar(Tile{0, 0}, Tile{0, 11}, g.IsWalkable, nil)
	if path == nil {
		t.Fatal("no path found around the wall")
	}
	for i, tile := range path {
		if !g.IsWalkable(tile) {
			t.Errorf("path[%d] = %v is not walkable", i, tile)
		}
		if i > 0 && path[i-1].Distance(tile) != 1 {
			t.Errorf("path not contiguous at %d: %v -> %v", i, path[i-1], tile)
		}
	}
}

func TestAStarOptimalAgainstBFS(t *testing.T) {
	g := NewGrid(15, 15, nil, Tile{})
	blocks := []Tile{
		{2, 2}, {2, 3}, {2, 4}, {3, 4}, {4, 4},
		{7, 0}, {7, 1}, {7, 2}, {7, 3},
		{10, 10}, {11, 10}, {12, 10}, {10, 11},
	}
	for _, b := range blocks {
		g.SetBlocked(b, true)
	}

	cases := []struct{ start, goal Tile }{
		{Tile{0, 0}, Tile{14, 14}},
		{Tile{0, 14}, Tile{14, 0}},
		{Tile{5, 5}, Tile{12, 12}},
		{Tile{8, 0}, Tile{6, 0}},
	}
	for _, tc := range cases {
		want := bfsLength(g, tc.start, tc.goal)
		path := AStar(tc.start, tc.goal, g.IsWalkable, nil)
		if want == -1 {
			if path != nil {
				t.Errorf("%v->%v: AStar found a path, BFS says none", tc.start, tc.goal)
			}
			continue
		}
		if path == nil {
			t.Errorf("%v->%v: AStar found no path, BFS length %d", tc.start, tc.goal, want)
			continue
		}
		if len(path)-1 != want {
			t.Errorf("%v->%v: AStar length %d steps, BFS %d", tc.start, tc.goal, len(path)-1, want)
		}
	}
}

func TestAStarNoPath(t *testing.T) {
	g := NewGrid(8, 8, nil, Tile{})
	// Полная стена.
	for row := 0; row < 8; row++ {
		g.SetBlocked(Tile{Row: row, Col: 4}, true)
	}
	if path := AStar(Tile{0, 0}, Tile{0, 7}, g.IsWalkable, nil); path != nil {
		t.Errorf("expected nil path through a solid wall, got %d tiles", len(path))
	}
}

func TestAStarBlockedEndpoints(t *testing.T) {
	g := NewGrid(5, 5, nil, Tile{})
	g.SetBlocked(Tile{2, 2}, true)
	if AStar(Tile{2, 2}, Tile{0, 0}, g.IsWalkable, nil) != nil {
		t.Error("path from a blocked start must be nil")
	}
	if AStar(Tile{0, 0}, Tile{2, 2}, g.IsWalkable, nil) != nil {
		t.Error("path to a blocked goal must be nil")
	}
}

func TestAStarStartEqualsGoal(t *testing.T) {
	g := NewGrid(5, 5, nil, Tile{})
	path := AStar(Tile{1, 1}, Tile{1, 1}, g.IsWalkable, nil)
	if len(path) != 1 || path[0] != (Tile{1, 1}) {
		t.Errorf("path start==goal = %v, want single tile", path)
	}
}

func TestAStarExtraCostBiasesRoute(t *testing.T) {
	g := NewGrid(7, 3, nil, Tile{})
	// Две равные по длине дороги: через row 0 и row 2. Штрафуем row 0.
	g.SetBlocked(Tile{Row: 1, Col: 1}, true)
	g.SetBlocked(Tile{Row: 1, Col: 3}, true)
	g.SetBlocked(Tile{Row: 1, Col: 5}, true)

	penalty := func(tile Tile) float64 {
		if tile.Row == 0 {
			return 10
		}
		return 0
	}
	path := AStar(Tile{1, 0}, Tile{1, 6}, g.IsWalkable, penalty)
	if path == nil {
		t.Fatal("no path found")
	}
	for _, tile := range path {
		if tile.Row == 0 {
			t.Fatalf("path went through penalized row: %v", path)
		}
	}
}
