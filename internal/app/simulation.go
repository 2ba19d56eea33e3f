// internal/app/simulation.go
package app

import (
	"log"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/system"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// Simulation владеет всем изменяемым состоянием уровня: сеткой, сущностями,
// волной, часами. Никаких глобалов — можно держать несколько симуляций
// параллельно (например, в тестах). Рендер и ввод живут снаружи и общаются
// с симуляцией через события и снапшоты.
type Simulation struct {
	Grid       *grid.Grid
	ECS        *entity.ECS
	Level      defs.LevelDefinition
	Clock      *Clock
	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService
	Validator  *PlacementValidator
	Scores     *ScoreStore // может быть nil: прогресс просто не сохраняется

	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	BehaviorSystem   *system.BehaviorSystem
	BossSystem       *system.BossSystem
	AuraSystem       *system.AuraSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
}

// NewSimulation собирает симуляцию уровня. seed=0 — случайный.
func NewSimulation(level defs.LevelDefinition, seed int64) *Simulation {
	for _, d := range defs.SanitizeLevel(&level) {
		log.Printf("Simulation: level diagnostic: %s", d)
	}

	spawns := make([]grid.Tile, len(level.Spawns))
	for i, s := range level.Spawns {
		spawns[i] = grid.Tile{Row: s.Row, Col: s.Col}
	}
	base := grid.Tile{Row: level.Base.Row, Col: level.Base.Col}

	ecs := entity.NewECS()
	ecs.GameState = &component.GameState{
		BaseHealth: level.BaseHealth,
		Energy:     level.StartEnergy,
	}

	sim := &Simulation{
		Grid:       grid.NewGrid(level.Width, level.Height, spawns, base),
		ECS:        ecs,
		Level:      level,
		Clock:      NewClock(),
		Dispatcher: event.NewDispatcher(),
		Rng:        utils.NewPRNGService(seed),
	}
	sim.Validator = NewPlacementValidator(sim.Grid)

	sim.WaveSystem = system.NewWaveSystem(ecs, sim.Grid, &sim.Level, sim.Dispatcher, sim.Rng)
	sim.MovementSystem = system.NewMovementSystem(ecs, sim.Grid, sim.Dispatcher)
	sim.BehaviorSystem = system.NewBehaviorSystem(ecs, sim.Dispatcher)
	sim.AuraSystem = system.NewAuraSystem(ecs)
	sim.CombatSystem = system.NewCombatSystem(ecs)
	sim.ProjectileSystem = system.NewProjectileSystem(ecs)
	sim.BossSystem = system.NewBossSystem(ecs, sim.Grid,
		func(defID string, tile grid.Tile) types.EntityID {
			return sim.WaveSystem.SpawnEnemy(defID, tile, 1, 1, 0)
		},
		sim.destroyTowerAt,
	)

	sim.placePresetObstacles()
	sim.placeRandomObstacles()
	return sim
}

// StartWaves запускает первую волну. До вызова симуляция — фаза постройки.
func (sim *Simulation) StartWaves() {
	if sim.ECS.Wave == nil && !sim.WaveSystem.Completed() {
		sim.ECS.Wave = sim.WaveSystem.StartWave(1)
	}
}

// Update прогоняет один тик. Порядок фиксирован: часы → волна → поведение →
// босс → ауры → движение → бой → снаряды → уборка → исход. Всё синхронно,
// никакой внутренней конкуренции.
func (sim *Simulation) Update(wallDelta float64) {
	if sim.ECS.GameState.Outcome != component.OutcomeNone {
		return
	}
	dt := sim.Clock.Tick(wallDelta)
	if dt == 0 {
		return
	}
	sim.ECS.GameTime = sim.Clock.LogicTime

	// Истёкшие временные препятствия освобождают тайлы; пути пересчитываем —
	// мог открыться более короткий маршрут.
	if sim.Grid.RemoveExpired(sim.Clock.LogicTime) {
		sim.MovementSystem.InvalidateAllPaths()
	}

	sim.WaveSystem.Update(dt, sim.ECS.Wave)
	sim.BehaviorSystem.Update(dt)
	sim.BossSystem.Update(dt)
	sim.AuraSystem.Update(dt)
	sim.MovementSystem.Update(dt)
	sim.CombatSystem.Update(dt)
	sim.ProjectileSystem.Update(dt)
	sim.cleanupDestroyedEntities()
	sim.checkOutcome()
}

func (sim *Simulation) cleanupDestroyedEntities() {
	var dead, arrived []types.EntityID
	for id, enemy := range sim.ECS.Enemies {
		if health, ok := sim.ECS.Healths[id]; ok && health.Value <= 0 {
			dead = append(dead, id)
		} else if enemy.Arrived {
			arrived = append(arrived, id)
		}
	}

	for _, id := range dead {
		enemy := sim.ECS.Enemies[id]
		pos := sim.ECS.Positions[id]
		death := event.EnemyDeath{
			ID:     id,
			Time:   sim.Clock.LogicTime,
			Reward: enemy.RewardEnergy,
		}
		if pos != nil {
			death.X, death.Y = pos.X, pos.Y
			death.Tile = utils.ScreenToTile(pos.X, pos.Y)
		}
		sim.ECS.GameState.Energy += float64(enemy.RewardEnergy)
		// Слушатели читают компоненты погибшего, поэтому событие уходит
		// до удаления сущности.
		sim.Dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: death})
		sim.ECS.RemoveEnemy(id)
		sim.Dispatcher.Dispatch(event.Event{Type: event.EnemyRemoved, Data: id})
	}
	for _, id := range arrived {
		sim.ECS.RemoveEnemy(id)
		sim.Dispatcher.Dispatch(event.Event{Type: event.EnemyRemoved, Data: id})
	}
}

func (sim *Simulation) checkOutcome() {
	state := sim.ECS.GameState
	if state.BaseHealth <= 0 {
		state.Outcome = component.OutcomeDefeat
		sim.Dispatcher.Dispatch(event.Event{Type: event.LevelLost, Data: state.ReachedWave})
		sim.recordResult(false)
		return
	}
	if sim.WaveSystem.Completed() && len(sim.ECS.Enemies) == 0 {
		state.Outcome = component.OutcomeVictory
		sim.Dispatcher.Dispatch(event.Event{Type: event.LevelWon, Data: state.ReachedWave})
		sim.recordResult(true)
	}
}

func (sim *Simulation) recordResult(won bool) {
	if sim.Scores == nil {
		return
	}
	if err := sim.Scores.RecordResult(sim.ECS.GameState.ReachedWave, won); err != nil {
		log.Printf("Simulation: failed to persist progress: %v", err)
	}
}

// --- Размещение ---

// PlaceObstacle проверяет и коммитит препятствие. При успехе все живые враги
// атомарно (в этом же вызове) помечаются на перепрокладку пути; при отказе
// состояние не меняется, причина уходит событием и возвращается ошибкой.
func (sim *Simulation) PlaceObstacle(rect grid.Rect, source grid.ObstacleSource, expiresAt float64) error {
	if perr := sim.Validator.Validate(rect); perr != nil {
		sim.Dispatcher.Dispatch(event.Event{Type: event.PlacementRejected, Data: string(perr.Reason)})
		return perr
	}
	sim.Grid.Commit(grid.Obstacle{Rect: rect, Source: source, ExpiresAt: expiresAt})
	sim.MovementSystem.InvalidateAllPaths()
	return nil
}

// PlaceTower строит башню на тайле: списывает энергию, блокирует тайл,
// создаёт сущность. Отказы — те же типизированные причины, что у препятствий.
func (sim *Simulation) PlaceTower(tile grid.Tile, defID string) (types.EntityID, error) {
	def, ok := defs.TowerLibrary[defID]
	if !ok {
		log.Printf("Simulation: unknown tower definition %q", defID)
		perr := &PlacementError{Reason: ReasonOverlapsExisting, Rect: grid.Rect{Row: tile.Row, Col: tile.Col, Width: 1, Height: 1}}
		return 0, perr
	}
	rect := grid.Rect{Row: tile.Row, Col: tile.Col, Width: 1, Height: 1}

	if sim.ECS.GameState.Energy < def.Cost {
		perr := &PlacementError{Reason: ReasonInsufficientEnergy, Rect: rect}
		sim.Dispatcher.Dispatch(event.Event{Type: event.PlacementRejected, Data: string(perr.Reason)})
		return 0, perr
	}
	if perr := sim.Validator.Validate(rect); perr != nil {
		sim.Dispatcher.Dispatch(event.Event{Type: event.PlacementRejected, Data: string(perr.Reason)})
		return 0, perr
	}

	sim.ECS.GameState.Energy -= def.Cost
	sim.Grid.Commit(grid.Obstacle{Rect: rect, Source: grid.SourcePlayer})

	id := sim.ECS.NewEntity()
	x, y := utils.TileToScreen(tile)
	sim.ECS.Positions[id] = &component.Position{X: x, Y: y}
	sim.ECS.Towers[id] = &component.Tower{DefID: defID, Tile: tile}
	sim.ECS.Combats[id] = &component.Combat{JamFactor: 1.0}

	sim.MovementSystem.InvalidateAllPaths()
	sim.Dispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return id, nil
}

// RemoveTower сносит башню игрока с частичным возвратом энергии.
func (sim *Simulation) RemoveTower(tile grid.Tile) bool {
	id, tower := sim.towerAt(tile)
	if id == 0 {
		return false
	}
	if def, ok := defs.TowerLibrary[tower.DefID]; ok {
		sim.ECS.GameState.Energy += def.Cost * config.TowerRefundFactor
	}
	sim.removeTowerEntity(id, tile)
	sim.Dispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: tile})
	return true
}

// destroyTowerAt — снос навыком босса, без возврата энергии.
func (sim *Simulation) destroyTowerAt(tile grid.Tile) bool {
	id, _ := sim.towerAt(tile)
	if id == 0 {
		return false
	}
	sim.removeTowerEntity(id, tile)
	sim.Dispatcher.Dispatch(event.Event{Type: event.TowerDestroyed, Data: tile})
	return true
}

func (sim *Simulation) towerAt(tile grid.Tile) (types.EntityID, *component.Tower) {
	for id, tower := range sim.ECS.Towers {
		if tower.Tile == tile {
			return id, tower
		}
	}
	return 0, nil
}

func (sim *Simulation) removeTowerEntity(id types.EntityID, tile grid.Tile) {
	sim.ECS.RemoveTower(id)
	sim.Grid.UnblockRect(grid.Rect{Row: tile.Row, Col: tile.Col, Width: 1, Height: 1})
	kept := sim.Grid.Obstacles[:0]
	for _, o := range sim.Grid.Obstacles {
		if o.Source == grid.SourcePlayer && o.Rect.Width == 1 && o.Rect.Height == 1 &&
			o.Rect.Row == tile.Row && o.Rect.Col == tile.Col {
			continue
		}
		kept = append(kept, o)
	}
	sim.Grid.Obstacles = kept
}

// --- Генерация препятствий уровня ---

func (sim *Simulation) placePresetObstacles() {
	for _, o := range sim.Level.Obstacles {
		rect := grid.Rect{Row: o.Row, Col: o.Col, Width: o.Width, Height: o.Height}
		if perr := sim.Validator.Validate(rect); perr != nil {
			log.Printf("Simulation: preset obstacle skipped: %v", perr)
			continue
		}
		sim.Grid.Commit(grid.Obstacle{Rect: rect, Source: grid.SourcePreset})
	}
}

// placeRandomObstacles расставляет камни с зонами избегания вокруг базы и
// спавнов и минимальным зазором между собой. Каждый кандидат проходит полную
// проверку связности — карта остаётся решаемой.
func (sim *Simulation) placeRandomObstacles() {
	params := sim.Level.RandomObstacles
	if params == nil || params.Count <= 0 {
		return
	}
	var placed []grid.Tile
	attempts := params.Count * 20
	for count := 0; count < params.Count && attempts > 0; attempts-- {
		t := grid.Tile{
			Row: sim.Rng.Intn(sim.Grid.Height),
			Col: sim.Rng.Intn(sim.Grid.Width),
		}
		if sim.tooCloseToAnchors(t, params.AvoidRadius) || tooClose(placed, t, params.MinSpacing) {
			continue
		}
		rect := grid.Rect{Row: t.Row, Col: t.Col, Width: 1, Height: 1}
		if sim.Validator.Validate(rect) != nil {
			continue
		}
		sim.Grid.Commit(grid.Obstacle{Rect: rect, Source: grid.SourceRandom})
		placed = append(placed, t)
		count++
	}
}

func (sim *Simulation) tooCloseToAnchors(t grid.Tile, radius int) bool {
	if t.Distance(sim.Grid.Base) < radius {
		return true
	}
	for _, s := range sim.Grid.Spawns {
		if t.Distance(s) < radius {
			return true
		}
	}
	return false
}

func tooClose(tiles []grid.Tile, t grid.Tile, spacing int) bool {
	for _, other := range tiles {
		if other.Distance(t) < spacing {
			return true
		}
	}
	return false
}
