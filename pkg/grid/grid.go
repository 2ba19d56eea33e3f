// pkg/grid/grid.go
package grid

// Tile — одна клетка сетки, адресуется (Row, Col).
type Tile struct {
	Row, Col int
}

// Add возвращает тайл, смещённый на d.
func (t Tile) Add(d Tile) Tile {
	return Tile{Row: t.Row + d.Row, Col: t.Col + d.Col}
}

// Distance возвращает манхэттенское расстояние до other.
func (t Tile) Distance(other Tile) int {
	return abs(t.Row-other.Row) + abs(t.Col-other.Col)
}

// Directions — четыре соседних направления. Диагонали движком не используются.
var Directions = [4]Tile{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// ObstacleSource указывает происхождение препятствия.
type ObstacleSource string

const (
	SourcePreset    ObstacleSource = "PRESET"
	SourceRandom    ObstacleSource = "RANDOM"
	SourcePlayer    ObstacleSource = "PLAYER"
	SourceTemporary ObstacleSource = "TEMPORARY"
)

// Rect — прямоугольник тайлов, выровненный по осям.
type Rect struct {
	Row, Col      int
	Width, Height int
}

// Contains сообщает, попадает ли тайл внутрь прямоугольника.
func (r Rect) Contains(t Tile) bool {
	return t.Row >= r.Row && t.Row < r.Row+r.Height &&
		t.Col >= r.Col && t.Col < r.Col+r.Width
}

// Tiles перечисляет все тайлы прямоугольника.
func (r Rect) Tiles() []Tile {
	tiles := make([]Tile, 0, r.Width*r.Height)
	for row := r.Row; row < r.Row+r.Height; row++ {
		for col := r.Col; col < r.Col+r.Width; col++ {
			tiles = append(tiles, Tile{Row: row, Col: col})
		}
	}
	return tiles
}

// Obstacle — зафиксированное на карте препятствие.
// ExpiresAt — логическое время (в секундах), после которого временное
// препятствие снимается; 0 означает постоянное.
type Obstacle struct {
	Rect      Rect
	Source    ObstacleSource
	ExpiresAt float64
}

// Grid владеет проходимостью карты: размер фиксирован при создании,
// мутации идут только через Block/Unblock. Инвариант: тайлы базы и спавнов
// никогда не находятся в заблокированном множестве во время игры.
type Grid struct {
	Width, Height int
	Spawns        []Tile
	Base          Tile
	Obstacles     []Obstacle

	blocked []bool
}

// NewGrid создаёт полностью проходимую сетку заданного размера.
func NewGrid(width, height int, spawns []Tile, base Tile) *Grid {
	return &Grid{
		Width:   width,
		Height:  height,
		Spawns:  append([]Tile(nil), spawns...),
		Base:    base,
		blocked: make([]bool, width*height),
	}
}

// InBounds сообщает, лежит ли тайл внутри сетки.
func (g *Grid) InBounds(t Tile) bool {
	return t.Row >= 0 && t.Row < g.Height && t.Col >= 0 && t.Col < g.Width
}

// InBoundsRect сообщает, лежит ли прямоугольник целиком внутри сетки.
func (g *Grid) InBoundsRect(r Rect) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	return g.InBounds(Tile{Row: r.Row, Col: r.Col}) &&
		g.InBounds(Tile{Row: r.Row + r.Height - 1, Col: r.Col + r.Width - 1})
}

// IsWalkable сообщает, может ли враг стоять на тайле.
// Тайлы за пределами карты непроходимы.
func (g *Grid) IsWalkable(t Tile) bool {
	if !g.InBounds(t) {
		return false
	}
	return !g.blocked[t.Row*g.Width+t.Col]
}

// IsBlocked — обратное к IsWalkable для тайлов внутри карты.
func (g *Grid) IsBlocked(t Tile) bool {
	return g.InBounds(t) && g.blocked[t.Row*g.Width+t.Col]
}

// SetBlocked помечает один тайл.
func (g *Grid) SetBlocked(t Tile, blocked bool) {
	if g.InBounds(t) {
		g.blocked[t.Row*g.Width+t.Col] = blocked
	}
}

// BlockRect блокирует все тайлы прямоугольника.
func (g *Grid) BlockRect(r Rect) {
	for _, t := range r.Tiles() {
		g.SetBlocked(t, true)
	}
}

// UnblockRect освобождает все тайлы прямоугольника.
func (g *Grid) UnblockRect(r Rect) {
	for _, t := range r.Tiles() {
		g.SetBlocked(t, false)
	}
}

// Commit фиксирует препятствие: блокирует тайлы и записывает его в список.
// Валидация кандидата — обязанность вызывающего (см. app.PlacementValidator).
func (g *Grid) Commit(o Obstacle) {
	g.BlockRect(o.Rect)
	g.Obstacles = append(g.Obstacles, o)
}

// RemoveExpired снимает временные препятствия, чей срок истёк к моменту now.
// Возвращает true, если карта изменилась.
func (g *Grid) RemoveExpired(now float64) bool {
	changed := false
	kept := g.Obstacles[:0]
	for _, o := range g.Obstacles {
		if o.Source == SourceTemporary && o.ExpiresAt > 0 && now >= o.ExpiresAt {
			g.UnblockRect(o.Rect)
			changed = true
			continue
		}
		kept = append(kept, o)
	}
	g.Obstacles = kept
	return changed
}

// OverlapsObstacle сообщает, пересекает ли прямоугольник существующее препятствие.
func (g *Grid) OverlapsObstacle(r Rect) bool {
	for _, t := range r.Tiles() {
		if g.IsBlocked(t) {
			return true
		}
	}
	return false
}

// IsSpawn сообщает, является ли тайл точкой входа врагов.
func (g *Grid) IsSpawn(t Tile) bool {
	for _, s := range g.Spawns {
		if s == t {
			return true
		}
	}
	return false
}

// Clone возвращает глубокую копию для теневой проверки размещения.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		Width:     g.Width,
		Height:    g.Height,
		Spawns:    append([]Tile(nil), g.Spawns...),
		Base:      g.Base,
		Obstacles: append([]Obstacle(nil), g.Obstacles...),
		blocked:   append([]bool(nil), g.blocked...),
	}
	return clone
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
