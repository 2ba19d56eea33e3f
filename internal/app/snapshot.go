// internal/app/snapshot.go
package app

import (
	"sort"

	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

// EntityKind — род сущности в снапшоте для хоста.
type EntityKind string

const (
	KindEnemy      EntityKind = "ENEMY"
	KindTower      EntityKind = "TOWER"
	KindProjectile EntityKind = "PROJECTILE"
)

// EntitySnapshot — позиция и состояние одной сущности на конец тика.
// Симуляция не держит ссылок на объекты рендера: хост привязывает визуал
// к ID через события created/removed и читает снапшоты.
type EntitySnapshot struct {
	ID         types.EntityID
	Kind       EntityKind
	DefID      string
	Variant    defs.Variant
	X, Y       float64
	Health     float64
	MaxHealth  float64
	Shield     int
	SizeFactor float64
	Tile       grid.Tile
	Disabled   bool
}

// Snapshot возвращает срез всех живых сущностей, отсортированный по ID.
func (sim *Simulation) Snapshot() []EntitySnapshot {
	snaps := make([]EntitySnapshot, 0, len(sim.ECS.Enemies)+len(sim.ECS.Towers)+len(sim.ECS.Projectiles))

	for id, enemy := range sim.ECS.Enemies {
		snap := EntitySnapshot{
			ID:         id,
			Kind:       KindEnemy,
			DefID:      enemy.DefID,
			Variant:    enemy.Variant,
			Shield:     enemy.Shield,
			SizeFactor: enemy.SizeFactor,
		}
		if pos, ok := sim.ECS.Positions[id]; ok {
			snap.X, snap.Y = pos.X, pos.Y
		}
		if health, ok := sim.ECS.Healths[id]; ok {
			snap.Health, snap.MaxHealth = health.Value, health.Max
		}
		snaps = append(snaps, snap)
	}
	for id, tower := range sim.ECS.Towers {
		snap := EntitySnapshot{
			ID:       id,
			Kind:     KindTower,
			DefID:    tower.DefID,
			Tile:     tower.Tile,
			Disabled: tower.Disabled,
		}
		if pos, ok := sim.ECS.Positions[id]; ok {
			snap.X, snap.Y = pos.X, pos.Y
		}
		snaps = append(snaps, snap)
	}
	for id := range sim.ECS.Projectiles {
		snap := EntitySnapshot{ID: id, Kind: KindProjectile}
		if pos, ok := sim.ECS.Positions[id]; ok {
			snap.X, snap.Y = pos.X, pos.Y
		}
		snaps = append(snaps, snap)
	}

	sort.Slice(snaps, func(i, j int) bool { return snaps[i].ID < snaps[j].ID })
	return snaps
}

// TelegraphedTiles — тайлы башен, помеченных боссом на разрушение;
// хост подсвечивает их на время телеграфа.
func (sim *Simulation) TelegraphedTiles() []grid.Tile {
	var tiles []grid.Tile
	for _, boss := range sim.ECS.Bosses {
		for _, tg := range boss.Telegraphs {
			tiles = append(tiles, tg.TowerTile)
		}
	}
	return tiles
}
