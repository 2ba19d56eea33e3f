package system

import (
	"testing"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

func newWaveFixture(waves []defs.WaveDefinition) (*entity.ECS, *WaveSystem, *event.Dispatcher) {
	ecs := entity.NewECS()
	ecs.GameState = &component.GameState{BaseHealth: 100}
	g := grid.NewGrid(10, 5, []grid.Tile{{Row: 2, Col: 0}}, grid.Tile{Row: 2, Col: 9})
	level := &defs.LevelDefinition{
		Width: 10, Height: 5,
		Spawns: []defs.TileRef{{Row: 2, Col: 0}},
		Base:   defs.TileRef{Row: 2, Col: 9},
		Waves:  waves,
	}
	dispatcher := event.NewDispatcher()
	ws := NewWaveSystem(ecs, g, level, dispatcher, utils.NewPRNGService(1))
	return ecs, ws, dispatcher
}

func testWaves(counts ...int) []defs.WaveDefinition {
	waves := make([]defs.WaveDefinition, len(counts))
	for i, c := range counts {
		waves[i] = defs.WaveDefinition{
			Groups:     []defs.EnemyGroup{{EnemyID: "ENEMY_GRUNT", Count: c, Interval: 0.5, HPMultiplier: 1, SpeedMultiplier: 1}},
			ClearDelay: 1,
		}
	}
	return waves
}

// killAll убивает всех живых врагов так же, как это делает уборка симуляции:
// событие до удаления сущности.
func killAll(ecs *entity.ECS, dispatcher *event.Dispatcher) {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	for _, id := range ids {
		dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyDeath{ID: id}})
		ecs.RemoveEnemy(id)
	}
}

func TestSpawningEmitsExactCount(t *testing.T) {
	ecs, ws, _ := newWaveFixture(testWaves(4))
	wave := &component.Wave{
		Index: 1, Phase: WaveSpawning,
		Groups:     []defs.EnemyGroup{{EnemyID: "ENEMY_GRUNT", Count: 4, Interval: 0.5, HPMultiplier: 1, SpeedMultiplier: 1}},
		ClearDelay: 1,
	}
	ecs.Wave = wave

	for i := 0; i < 100; i++ {
		ws.Update(0.1, wave)
	}
	if len(ecs.Enemies) != 4 {
		t.Errorf("spawned %d enemies, want exactly 4", len(ecs.Enemies))
	}
	if wave.Phase != WaveSpawnDone {
		t.Errorf("phase = %v, want spawnDone", wave.Phase)
	}
	if ws.ActiveEnemies() != 4 {
		t.Errorf("ActiveEnemies = %d, want 4", ws.ActiveEnemies())
	}
}

func TestWaveAdvancesAfterClearAndDelay(t *testing.T) {
	ecs, ws, dispatcher := newWaveFixture(testWaves(2, 3))

	var cleared []int
	dispatcher.Subscribe(event.WaveCleared, event.ListenerFunc(func(e event.Event) {
		cleared = append(cleared, e.Data.(int))
	}))

	ecs.Wave = ws.StartWave(1)
	for i := 0; i < 50 && ecs.Wave.Phase == WaveSpawning; i++ {
		ws.Update(0.1, ecs.Wave)
	}
	if len(ecs.Enemies) != 2 {
		t.Fatalf("wave 1 spawned %d enemies, want 2", len(ecs.Enemies))
	}

	// Пока враги живы, волна стоит в spawnDone.
	ws.Update(0.1, ecs.Wave)
	if ecs.Wave.Phase != WaveSpawnDone {
		t.Fatalf("phase = %v, want spawnDone while enemies live", ecs.Wave.Phase)
	}

	killAll(ecs, dispatcher)
	ws.Update(0.1, ecs.Wave)
	if ecs.Wave.Phase != WaveClearDelay {
		t.Fatalf("phase = %v, want clearDelay after clearing", ecs.Wave.Phase)
	}
	if len(cleared) != 1 || cleared[0] != 1 {
		t.Errorf("WaveCleared events = %v, want [1]", cleared)
	}

	// Пауза между волнами истекает, стартует волна 2.
	for i := 0; i < 20 && ecs.Wave != nil && ecs.Wave.Index == 1; i++ {
		ws.Update(0.1, ecs.Wave)
	}
	if ecs.Wave == nil || ecs.Wave.Index != 2 {
		t.Fatalf("next wave did not start, wave = %+v", ecs.Wave)
	}
	if ecs.GameState.ReachedWave != 2 {
		t.Errorf("ReachedWave = %d, want 2", ecs.GameState.ReachedWave)
	}
}

func TestCompletedAfterLastWave(t *testing.T) {
	ecs, ws, dispatcher := newWaveFixture(testWaves(1))
	ecs.Wave = ws.StartWave(1)

	for i := 0; i < 200 && !ws.Completed(); i++ {
		if ecs.Wave != nil && ecs.Wave.Phase == WaveSpawnDone {
			killAll(ecs, dispatcher)
		}
		ws.Update(0.1, ecs.Wave)
	}
	if !ws.Completed() {
		t.Fatal("wave system never completed")
	}
	if ecs.Wave != nil {
		t.Error("completed system still holds an active wave")
	}
}

func TestShieldBonusFromPreviousWave(t *testing.T) {
	ecs, ws, _ := newWaveFixture(testWaves(2))
	ecs.GameState.NextWaveShield = 12

	wave := ws.StartWave(1)
	if wave.ShieldBonus != 12 {
		t.Errorf("ShieldBonus = %d, want 12", wave.ShieldBonus)
	}
	if ecs.GameState.NextWaveShield != 0 {
		t.Error("NextWaveShield not consumed by wave start")
	}

	ecs.Wave = wave
	for i := 0; i < 50 && wave.Phase == WaveSpawning; i++ {
		ws.Update(0.1, wave)
	}
	for id, enemy := range ecs.Enemies {
		if enemy.Shield != 12 {
			t.Errorf("enemy %d shield = %d, want 12", id, enemy.Shield)
		}
	}
}

func TestSpawnEnemyUnknownDefinition(t *testing.T) {
	_, ws, _ := newWaveFixture(testWaves(1))
	if id := ws.SpawnEnemy("ENEMY_DOES_NOT_EXIST", grid.Tile{Row: 2, Col: 0}, 1, 1, 0); id != 0 {
		t.Errorf("SpawnEnemy for unknown def = %d, want 0", id)
	}
}

func TestSpawnEnemyMultipliers(t *testing.T) {
	ecs, ws, _ := newWaveFixture(testWaves(1))
	id := ws.SpawnEnemy("ENEMY_GRUNT", grid.Tile{Row: 2, Col: 0}, 1.5, 2.0, 0)
	if id == 0 {
		t.Fatal("SpawnEnemy failed")
	}
	def := defs.EnemyLibrary["ENEMY_GRUNT"]
	if got, want := ecs.Healths[id].Max, float64(def.Health)*1.5; got != want {
		t.Errorf("max health = %v, want %v", got, want)
	}
	if got, want := ecs.Velocities[id].Speed, def.Speed*2.0; got != want {
		t.Errorf("speed = %v, want %v", got, want)
	}
}

func TestGatherWaveHoldsThenReleases(t *testing.T) {
	ecs, ws, dispatcher := newWaveFixture(testWaves(2))
	g := grid.NewGrid(10, 5, []grid.Tile{{Row: 2, Col: 0}}, grid.Tile{Row: 2, Col: 9})
	ms := NewMovementSystem(ecs, g, dispatcher)

	wave := &component.Wave{
		Index: 1, Phase: WaveSpawning,
		Groups: []defs.EnemyGroup{{EnemyID: "ENEMY_GRUNT", Count: 2, Interval: 0.2, HPMultiplier: 1, SpeedMultiplier: 1}},
		Gather: &component.GatherState{Point: grid.Tile{Row: 2, Col: 4}, Expected: 2},
	}
	ecs.Wave = wave

	released := false
	for i := 0; i < 400; i++ {
		ws.Update(0.05, wave)
		ms.Update(0.05)
		if wave.Gather.Released {
			released = true
			break
		}
	}
	if !released {
		t.Fatal("gather wave never released")
	}
	for id, enemy := range ecs.Enemies {
		if enemy.GatherHeld {
			t.Errorf("enemy %d still held after release", id)
		}
		if !ecs.Paths[id].NeedsRepath && !ecs.Paths[id].Exhausted() {
			// После отпуска путь либо помечен, либо уже перепроложен к базе.
			last := ecs.Paths[id].Tiles[len(ecs.Paths[id].Tiles)-1]
			if last != g.Base {
				t.Errorf("enemy %d path does not end at base after release", id)
			}
		}
	}
}
