// internal/system/boss.go
package system

import (
	"sort"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// SpawnFunc спавнит врага на тайле; внедряется из WaveSystem, чтобы призыв
// босса шёл через общий учёт живых врагов.
type SpawnFunc func(defID string, tile grid.Tile) types.EntityID

// DestroyTowerFunc сносит башню на тайле (и освобождает его в сетке).
// Внедряется из app, где живёт размещение.
type DestroyTowerFunc func(tile grid.Tile) bool

// BossSystem ведёт два независимых навыка босса: призыв и разрушение башен
// с телеграфом. Неудачная попытка (нет тайла, нет цели) повторяется через
// короткую задержку, а не через полный кулдаун — босс не замолкает навсегда.
type BossSystem struct {
	ecs          *entity.ECS
	gridModel    *grid.Grid
	spawn        SpawnFunc
	destroyTower DestroyTowerFunc
}

func NewBossSystem(ecs *entity.ECS, g *grid.Grid, spawn SpawnFunc, destroy DestroyTowerFunc) *BossSystem {
	return &BossSystem{ecs: ecs, gridModel: g, spawn: spawn, destroyTower: destroy}
}

func (s *BossSystem) Update(deltaTime float64) {
	for id, boss := range s.ecs.Bosses {
		enemy, okE := s.ecs.Enemies[id]
		health, okH := s.ecs.Healths[id]
		if !okE || !okH || enemy.Arrived || health.Value <= 0 {
			continue
		}
		def, ok := defs.EnemyLibrary[enemy.DefID]
		if !ok || def.Behavior == nil || def.Behavior.Boss == nil {
			continue
		}
		params := def.Behavior.Boss

		s.updateSummon(id, boss, params, deltaTime)
		s.updateTelegraphs(boss, deltaTime)
		s.updateDestroy(id, boss, params, deltaTime)
	}
}

func (s *BossSystem) updateSummon(id types.EntityID, boss *component.BossState, params *defs.BossParams, dt float64) {
	boss.SummonTimer -= dt
	if boss.SummonTimer > 0 {
		return
	}
	pos := s.ecs.Positions[id]
	if pos == nil {
		return
	}
	center := utils.ScreenToTile(pos.X, pos.Y)

	free := s.freeTilesAround(center, params.SummonRadius)
	if len(free) == 0 {
		boss.SummonTimer = config.BossRetryDelay
		return
	}
	count := params.SummonCount
	if count > len(free) {
		count = len(free)
	}
	for i := 0; i < count; i++ {
		s.spawn(params.SummonEnemyID, free[i])
	}
	boss.SummonTimer = params.SummonInterval
}

// freeTilesAround возвращает проходимые тайлы в радиусе, не занятые базой,
// башней (заблокирован) или другим врагом.
func (s *BossSystem) freeTilesAround(center grid.Tile, radius int) []grid.Tile {
	occupied := make(map[grid.Tile]bool, len(s.ecs.Enemies))
	for enemyID, enemy := range s.ecs.Enemies {
		if enemy.Arrived {
			continue
		}
		if p, ok := s.ecs.Positions[enemyID]; ok {
			occupied[utils.ScreenToTile(p.X, p.Y)] = true
		}
	}

	var free []grid.Tile
	for dRow := -radius; dRow <= radius; dRow++ {
		for dCol := -radius; dCol <= radius; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			t := grid.Tile{Row: center.Row + dRow, Col: center.Col + dCol}
			if !s.gridModel.IsWalkable(t) || t == s.gridModel.Base || occupied[t] {
				continue
			}
			free = append(free, t)
		}
	}
	return free
}

func (s *BossSystem) updateTelegraphs(boss *component.BossState, dt float64) {
	kept := boss.Telegraphs[:0]
	for _, tg := range boss.Telegraphs {
		tg.Timer -= dt
		if tg.Timer <= 0 {
			s.destroyTower(tg.TowerTile)
			continue
		}
		kept = append(kept, tg)
	}
	boss.Telegraphs = kept
}

func (s *BossSystem) updateDestroy(id types.EntityID, boss *component.BossState, params *defs.BossParams, dt float64) {
	boss.DestroyTimer -= dt
	if boss.DestroyTimer > 0 {
		return
	}
	pos := s.ecs.Positions[id]
	if pos == nil {
		return
	}

	// Кандидаты: башни в радиусе, ещё не помеченные, самые больные сверху.
	type candidate struct {
		tile   grid.Tile
		damage int
	}
	marked := make(map[grid.Tile]bool)
	for _, tg := range boss.Telegraphs {
		marked[tg.TowerTile] = true
	}
	var candidates []candidate
	for _, tower := range s.ecs.Towers {
		if marked[tower.Tile] {
			continue
		}
		tx, ty := utils.TileToScreen(tower.Tile)
		if utils.TileDistance(pos.X, pos.Y, tx, ty) > params.DestroyRange {
			continue
		}
		damage := 0
		if def, ok := defs.TowerLibrary[tower.DefID]; ok {
			damage = def.Damage
		}
		candidates = append(candidates, candidate{tile: tower.Tile, damage: damage})
	}
	if len(candidates) == 0 {
		boss.DestroyTimer = config.BossRetryDelay
		return
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].damage > candidates[j].damage })

	count := params.DestroyCount
	if count > len(candidates) {
		count = len(candidates)
	}
	for i := 0; i < count; i++ {
		boss.Telegraphs = append(boss.Telegraphs, component.Telegraph{
			TowerTile: candidates[i].tile,
			Timer:     config.BossTelegraphDelay,
		})
	}
	boss.DestroyTimer = params.DestroyInterval
}
