package app

import (
	"errors"
	"testing"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/event"
	"go-grid-defense/pkg/grid"
)

func testLevel(waves []defs.WaveDefinition) defs.LevelDefinition {
	return defs.LevelDefinition{
		Name:        "test",
		Width:       10,
		Height:      5,
		Spawns:      []defs.TileRef{{Row: 2, Col: 0}},
		Base:        defs.TileRef{Row: 2, Col: 9},
		StartEnergy: 200,
		BaseHealth:  100,
		Waves:       waves,
	}
}

func gruntWave(count int) defs.WaveDefinition {
	return defs.WaveDefinition{
		Groups:     []defs.EnemyGroup{{EnemyID: "ENEMY_GRUNT", Count: count, Interval: 0.3}},
		ClearDelay: 1,
	}
}

func TestPlaceTowerLifecycle(t *testing.T) {
	sim := NewSimulation(testLevel([]defs.WaveDefinition{gruntWave(3)}), 1)

	var placed, rejected int
	sim.Dispatcher.Subscribe(event.TowerPlaced, event.ListenerFunc(func(event.Event) { placed++ }))
	sim.Dispatcher.Subscribe(event.PlacementRejected, event.ListenerFunc(func(event.Event) { rejected++ }))

	tile := grid.Tile{Row: 0, Col: 4}
	startEnergy := sim.ECS.GameState.Energy

	id, err := sim.PlaceTower(tile, "TOWER_ARROW")
	if err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	if id == 0 {
		t.Fatal("PlaceTower returned zero entity")
	}
	cost := defs.TowerLibrary["TOWER_ARROW"].Cost
	if got := sim.ECS.GameState.Energy; got != startEnergy-cost {
		t.Errorf("energy after placement = %v, want %v", got, startEnergy-cost)
	}
	if !sim.Grid.IsBlocked(tile) {
		t.Error("tower tile not blocked")
	}
	if placed != 1 {
		t.Errorf("TowerPlaced events = %d, want 1", placed)
	}

	// Повторная постройка на том же тайле — типизированный отказ без мутаций.
	if _, err := sim.PlaceTower(tile, "TOWER_ARROW"); err == nil {
		t.Fatal("placing on an occupied tile succeeded")
	} else {
		var perr *PlacementError
		if !errors.As(err, &perr) || perr.Reason != ReasonOverlapsExisting {
			t.Errorf("err = %v, want reason %s", err, ReasonOverlapsExisting)
		}
	}
	if rejected != 1 {
		t.Errorf("PlacementRejected events = %d, want 1", rejected)
	}

	// Снос возвращает часть стоимости и освобождает тайл.
	energyBefore := sim.ECS.GameState.Energy
	if !sim.RemoveTower(tile) {
		t.Fatal("RemoveTower failed")
	}
	if sim.Grid.IsBlocked(tile) {
		t.Error("tile still blocked after removal")
	}
	if got := sim.ECS.GameState.Energy; got <= energyBefore {
		t.Error("removal did not refund energy")
	}
	if len(sim.ECS.Towers) != 0 {
		t.Error("tower entity survived removal")
	}
}

func TestPlaceTowerInsufficientEnergy(t *testing.T) {
	level := testLevel([]defs.WaveDefinition{gruntWave(1)})
	level.StartEnergy = 10
	sim := NewSimulation(level, 1)

	_, err := sim.PlaceTower(grid.Tile{Row: 0, Col: 4}, "TOWER_ARROW")
	var perr *PlacementError
	if !errors.As(err, &perr) || perr.Reason != ReasonInsufficientEnergy {
		t.Errorf("err = %v, want reason %s", err, ReasonInsufficientEnergy)
	}
	if sim.ECS.GameState.Energy != 10 {
		t.Error("rejected placement changed energy")
	}
}

func TestPlaceObstacleInvalidatesAllPaths(t *testing.T) {
	sim := NewSimulation(testLevel([]defs.WaveDefinition{gruntWave(3)}), 1)

	for i := 0; i < 3; i++ {
		sim.WaveSystem.SpawnEnemy("ENEMY_GRUNT", grid.Tile{Row: 2, Col: 0}, 1, 1, 0)
	}
	// Прогнать движение, чтобы пути проложились.
	sim.MovementSystem.Update(0.01)
	for id := range sim.ECS.Enemies {
		if sim.ECS.Paths[id].NeedsRepath {
			t.Fatalf("enemy %d still flagged for repath after update", id)
		}
	}

	if err := sim.PlaceObstacle(grid.Rect{Row: 0, Col: 5, Width: 1, Height: 1}, grid.SourcePlayer, 0); err != nil {
		t.Fatalf("PlaceObstacle: %v", err)
	}
	for id := range sim.ECS.Enemies {
		if !sim.ECS.Paths[id].NeedsRepath {
			t.Errorf("enemy %d path not invalidated by obstacle commit", id)
		}
	}
}

func TestPlaceObstacleRejectionLeavesStateIntact(t *testing.T) {
	sim := NewSimulation(testLevel([]defs.WaveDefinition{gruntWave(1)}), 1)
	sim.WaveSystem.SpawnEnemy("ENEMY_GRUNT", grid.Tile{Row: 2, Col: 0}, 1, 1, 0)
	sim.MovementSystem.Update(0.01)

	obstacles := len(sim.Grid.Obstacles)
	err := sim.PlaceObstacle(grid.Rect{Row: 2, Col: 9, Width: 1, Height: 1}, grid.SourcePlayer, 0)
	if err == nil {
		t.Fatal("obstacle on the base accepted")
	}
	if len(sim.Grid.Obstacles) != obstacles {
		t.Error("rejected obstacle recorded")
	}
	for id := range sim.ECS.Enemies {
		if sim.ECS.Paths[id].NeedsRepath {
			t.Errorf("rejected obstacle invalidated path of enemy %d", id)
		}
	}
}

func TestTemporaryObstacleExpires(t *testing.T) {
	sim := NewSimulation(testLevel([]defs.WaveDefinition{gruntWave(1)}), 1)
	tile := grid.Tile{Row: 0, Col: 3}
	if err := sim.PlaceObstacle(grid.Rect{Row: tile.Row, Col: tile.Col, Width: 1, Height: 1}, grid.SourceTemporary, 1.0); err != nil {
		t.Fatalf("PlaceObstacle: %v", err)
	}
	if !sim.Grid.IsBlocked(tile) {
		t.Fatal("temporary obstacle not committed")
	}

	sim.StartWaves()
	for i := 0; i < 30; i++ {
		sim.Update(0.05)
	}
	if sim.Grid.IsBlocked(tile) {
		t.Error("temporary obstacle survived past its expiry")
	}
}

func TestDefeatWhenBaseFalls(t *testing.T) {
	sim := NewSimulation(testLevel([]defs.WaveDefinition{gruntWave(12)}), 1)

	var lost bool
	sim.Dispatcher.Subscribe(event.LevelLost, event.ListenerFunc(func(event.Event) { lost = true }))

	sim.StartWaves()
	for i := 0; i < 4000 && sim.ECS.GameState.Outcome == component.OutcomeNone; i++ {
		sim.Update(0.05)
	}

	if sim.ECS.GameState.Outcome != component.OutcomeDefeat {
		t.Fatalf("outcome = %v, want defeat", sim.ECS.GameState.Outcome)
	}
	if sim.ECS.GameState.BaseHealth > 0 {
		t.Errorf("base health = %d at defeat", sim.ECS.GameState.BaseHealth)
	}
	if !lost {
		t.Error("LevelLost event not dispatched")
	}
}

func TestVictoryWhenWavesCleared(t *testing.T) {
	sim := NewSimulation(testLevel([]defs.WaveDefinition{gruntWave(3)}), 1)

	var won bool
	sim.Dispatcher.Subscribe(event.LevelWon, event.ListenerFunc(func(event.Event) { won = true }))

	sim.StartWaves()
	for i := 0; i < 2000 && sim.ECS.GameState.Outcome == component.OutcomeNone; i++ {
		sim.Update(0.05)
		// Мгновенно добиваем всё, что заспавнилось.
		for id := range sim.ECS.Enemies {
			sim.ECS.Healths[id].Value = 0
		}
	}

	if sim.ECS.GameState.Outcome != component.OutcomeVictory {
		t.Fatalf("outcome = %v, want victory", sim.ECS.GameState.Outcome)
	}
	if !won {
		t.Error("LevelWon event not dispatched")
	}
	if sim.ECS.GameState.ReachedWave != 1 {
		t.Errorf("reached wave = %d, want 1", sim.ECS.GameState.ReachedWave)
	}
}

func TestNoUpdatesAfterOutcome(t *testing.T) {
	sim := NewSimulation(testLevel([]defs.WaveDefinition{gruntWave(1)}), 1)
	sim.ECS.GameState.Outcome = component.OutcomeDefeat

	before := sim.Clock.LogicTime
	sim.Update(1.0)
	if sim.Clock.LogicTime != before {
		t.Error("simulation advanced after the level was decided")
	}
}

func TestKillRewardsEnergy(t *testing.T) {
	sim := NewSimulation(testLevel([]defs.WaveDefinition{gruntWave(1)}), 1)
	id := sim.WaveSystem.SpawnEnemy("ENEMY_GRUNT", grid.Tile{Row: 2, Col: 0}, 1, 1, 0)
	if id == 0 {
		t.Fatal("SpawnEnemy failed")
	}

	var death event.EnemyDeath
	sim.Dispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(e event.Event) {
		death = e.Data.(event.EnemyDeath)
	}))

	before := sim.ECS.GameState.Energy
	sim.ECS.Healths[id].Value = 0
	sim.StartWaves()
	sim.Update(0.05)

	reward := float64(defs.EnemyLibrary["ENEMY_GRUNT"].RewardEnergy)
	if got := sim.ECS.GameState.Energy - before; got != reward {
		t.Errorf("energy delta = %v, want %v", got, reward)
	}
	if death.ID != id {
		t.Errorf("death event for %d, want %d", death.ID, id)
	}
	if _, alive := sim.ECS.Enemies[id]; alive {
		t.Error("dead enemy not removed")
	}
}

func TestSnapshotSortedAndComplete(t *testing.T) {
	sim := NewSimulation(testLevel([]defs.WaveDefinition{gruntWave(1)}), 1)
	sim.WaveSystem.SpawnEnemy("ENEMY_GRUNT", grid.Tile{Row: 2, Col: 0}, 1, 1, 0)
	if _, err := sim.PlaceTower(grid.Tile{Row: 0, Col: 4}, "TOWER_ARROW"); err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}

	snaps := sim.Snapshot()
	if len(snaps) != 2 {
		t.Fatalf("snapshot size = %d, want 2", len(snaps))
	}
	for i := 1; i < len(snaps); i++ {
		if snaps[i-1].ID >= snaps[i].ID {
			t.Error("snapshot not sorted by ID")
		}
	}
	kinds := map[EntityKind]bool{}
	for _, s := range snaps {
		kinds[s.Kind] = true
	}
	if !kinds[KindEnemy] || !kinds[KindTower] {
		t.Errorf("snapshot kinds = %v, want enemy and tower", kinds)
	}
}
