// internal/system/movement.go
package system

import (
	"log"
	"math"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// MovementSystem ведёт врагов по путям и владеет политикой перепрокладки:
// враг ищет путь только когда путь пуст, исчерпан или явно инвалидирован.
// Если перепрокладка не удалась, враг продолжает идти по устаревшему пути;
// резервный пошаговый ход к базе включается только если пути не было никогда.
type MovementSystem struct {
	ecs             *entity.ECS
	gridModel       *grid.Grid
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, g *grid.Grid, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, gridModel: g, eventDispatcher: dispatcher}
}

// InvalidateAllPaths помечает пути всех живых врагов для перепрокладки.
// Вызывается после успешного коммита препятствия — атомарно с ним.
func (s *MovementSystem) InvalidateAllPaths() {
	for id := range s.ecs.Enemies {
		if path, ok := s.ecs.Paths[id]; ok {
			path.NeedsRepath = true
		}
	}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, enemy := range s.ecs.Enemies {
		if enemy.Arrived {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasPos || !hasVel || !hasPath {
			continue
		}

		currentTile := utils.ScreenToTile(pos.X, pos.Y)

		// Инвариант: живой враг не может стоять на заблокированном тайле.
		// Нарушение — дефект, а не игровая ситуация: логируем и заставляем
		// искать путь заново, чтобы не расползалось дальше.
		if s.gridModel.IsBlocked(currentTile) {
			log.Printf("MovementSystem: enemy %d on blocked tile (%d,%d), forcing repath", id, currentTile.Row, currentTile.Col)
			path.NeedsRepath = true
		}

		goal := s.goalFor(enemy)

		if path.NeedsRepath || path.Exhausted() {
			s.repath(id, enemy, currentTile, goal, path)
		}

		if enemy.GatherHeld {
			continue // стоим в точке сбора до общего рывка
		}
		if path.Exhausted() {
			continue
		}

		targetTile := path.Tiles[path.CurrentIndex]
		tx, ty := utils.TileToScreen(targetTile)

		dx := tx - pos.X
		dy := ty - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)

		moveDistance := s.currentSpeed(id, enemy, vel) * deltaTime

		if dist <= moveDistance {
			pos.X = tx
			pos.Y = ty
			path.CurrentIndex++
			s.onTileReached(id, enemy, targetTile)
		} else {
			pos.X += (dx / dist) * moveDistance
			pos.Y += (dy / dist) * moveDistance
		}
	}
}

// goalFor возвращает цель врага: точку сбора, пока волна не отпущена, иначе базу.
func (s *MovementSystem) goalFor(enemy *component.Enemy) grid.Tile {
	wave := s.ecs.Wave
	if enemy.GatherBound && wave != nil && wave.Gather != nil && !wave.Gather.Released {
		return wave.Gather.Point
	}
	return s.gridModel.Base
}

func (s *MovementSystem) repath(id types.EntityID, enemy *component.Enemy, from, goal grid.Tile, path *component.Path) {
	path.NeedsRepath = false

	var extra grid.CostFunc
	if enemy.Variant == defs.VariantSmart {
		extra = s.towerDensityCost(enemy)
	}

	newPath := grid.AStar(from, goal, s.gridModel.IsWalkable, extra)
	if newPath != nil {
		path.Tiles = newPath
		path.CurrentIndex = 0
		path.NeverHad = false
		return
	}

	// Путь не нашёлся. Старый путь, если он ещё не пройден, остаётся в силе.
	if len(path.Tiles) > 0 && !path.Exhausted() {
		return
	}
	if !path.NeverHad {
		log.Printf("MovementSystem: enemy %d has no path to (%d,%d), falling back to greedy steps", id, goal.Row, goal.Col)
	}
	path.NeverHad = true
	s.fallbackStep(from, goal, path)
}

// fallbackStep — резервный ход: один шаг по оси с наибольшей дельтой к цели,
// с проверкой проходимости тайла. Никогда не заводит врага в стену; если оба
// осевых шага закрыты, враг стоит на месте до следующей попытки.
func (s *MovementSystem) fallbackStep(from, goal grid.Tile, path *component.Path) {
	dRow := goal.Row - from.Row
	dCol := goal.Col - from.Col

	var first, second grid.Tile
	if abs(dRow) >= abs(dCol) {
		first = grid.Tile{Row: from.Row + sign(dRow), Col: from.Col}
		second = grid.Tile{Row: from.Row, Col: from.Col + sign(dCol)}
	} else {
		first = grid.Tile{Row: from.Row, Col: from.Col + sign(dCol)}
		second = grid.Tile{Row: from.Row + sign(dRow), Col: from.Col}
	}

	for _, step := range []grid.Tile{first, second} {
		if step != from && s.gridModel.IsWalkable(step) {
			path.Tiles = []grid.Tile{step}
			path.CurrentIndex = 0
			return
		}
	}
	path.Tiles = nil
	path.CurrentIndex = 0
}

// towerDensityCost строит функцию штрафа для "умных" врагов:
// чем больше башен рядом с тайлом, тем дороже через него идти.
func (s *MovementSystem) towerDensityCost(enemy *component.Enemy) grid.CostFunc {
	def, ok := defs.EnemyLibrary[enemy.DefID]
	if !ok || def.Behavior == nil || def.Behavior.Risk == nil {
		return nil
	}
	weight := def.Behavior.Risk.Weight
	radius := def.Behavior.Risk.SenseRadius

	towerTiles := make([]grid.Tile, 0, len(s.ecs.Towers))
	for _, tower := range s.ecs.Towers {
		towerTiles = append(towerTiles, tower.Tile)
	}

	return func(t grid.Tile) float64 {
		count := 0
		for _, tt := range towerTiles {
			if t.Distance(tt) <= radius {
				count++
			}
		}
		return weight * float64(count)
	}
}

func (s *MovementSystem) currentSpeed(id types.EntityID, enemy *component.Enemy, vel *component.Velocity) float64 {
	speed := vel.Speed

	if sprint, ok := s.ecs.Sprints[id]; ok && sprint.Active {
		if def, found := defs.EnemyLibrary[enemy.DefID]; found && def.Behavior != nil && def.Behavior.Sprint != nil {
			speed *= def.Behavior.Sprint.Multiplier
		}
	}
	if devour, ok := s.ecs.Devours[id]; ok && devour.Count > 0 {
		if def, found := defs.EnemyLibrary[enemy.DefID]; found && def.Behavior != nil && def.Behavior.Devour != nil {
			speed *= math.Pow(def.Behavior.Devour.SlowFactor, float64(devour.Count))
		}
	}
	return speed
}

func (s *MovementSystem) onTileReached(id types.EntityID, enemy *component.Enemy, tile grid.Tile) {
	wave := s.ecs.Wave
	if enemy.GatherBound && wave != nil && wave.Gather != nil && !wave.Gather.Released && tile == wave.Gather.Point {
		if !enemy.GatherHeld {
			enemy.GatherHeld = true
			wave.Gather.Arrived++
		}
		return
	}

	if tile == s.gridModel.Base {
		s.onBaseReached(id, enemy)
	}
}

func (s *MovementSystem) onBaseReached(id types.EntityID, enemy *component.Enemy) {
	state := s.ecs.GameState
	if enemy.Variant == defs.VariantCourier {
		// Курьер не наносит урона: он дарит щит врагам следующей волны.
		if def, ok := defs.EnemyLibrary[enemy.DefID]; ok && def.Behavior != nil && def.Behavior.Courier != nil {
			c := def.Behavior.Courier
			state.NextWaveShield += c.ShieldGrant
			if state.NextWaveShield > c.ShieldCap {
				state.NextWaveShield = c.ShieldCap
			}
		}
	} else {
		state.BaseHealth -= enemy.DamageToBase
	}
	enemy.Arrived = true
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: id})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
