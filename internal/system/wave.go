// internal/system/wave.go
package system

import (
	"log"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// WaveSystem ведёт конечный автомат волны:
// idle → spawning → spawnDone (ждём зачистки) → clearDelay → следующая волна.
type WaveSystem struct {
	ecs             *entity.ECS
	gridModel       *grid.Grid
	level           *defs.LevelDefinition
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	activeEnemies   int
	completed       bool
}

func NewWaveSystem(ecs *entity.ECS, g *grid.Grid, level *defs.LevelDefinition, dispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		gridModel:       g,
		level:           level,
		eventDispatcher: dispatcher,
		rng:             rng,
	}
	dispatcher.Subscribe(event.EnemyKilled, ws)
	dispatcher.Subscribe(event.EnemyReachedBase, ws)
	return ws
}

// Completed сообщает, что последняя волна зачищена и пауза после неё истекла.
func (s *WaveSystem) Completed() bool { return s.completed }

// ActiveEnemies возвращает число живых врагов, учитываемых волной.
func (s *WaveSystem) ActiveEnemies() int { return s.activeEnemies }

func (s *WaveSystem) Update(deltaTime float64, wave *component.Wave) {
	if wave == nil || s.completed {
		return
	}

	switch wave.Phase {
	case WaveIdle:
		wave.Phase = WaveSpawning
		fallthrough
	case WaveSpawning:
		s.updateSpawning(deltaTime, wave)
	case WaveSpawnDone:
		if s.activeEnemies == 0 {
			s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: wave.Index})
			wave.Phase = WaveClearDelay
			wave.ClearTimer = wave.ClearDelay
		}
	case WaveClearDelay:
		wave.ClearTimer -= deltaTime
		if wave.ClearTimer <= 0 {
			if wave.Index >= len(s.level.Waves) {
				s.completed = true
				s.ecs.Wave = nil
				return
			}
			s.ecs.Wave = s.StartWave(wave.Index + 1)
		}
	}

	s.updateGather(wave)
}

// Фазы волны переиспользуют component-константы, чтобы тесты читались.
const (
	WaveIdle       = component.WaveIdle
	WaveSpawning   = component.WaveSpawning
	WaveSpawnDone  = component.WaveSpawnDone
	WaveClearDelay = component.WaveClearDelay
)

func (s *WaveSystem) updateSpawning(deltaTime float64, wave *component.Wave) {
	if wave.GroupIndex >= len(wave.Groups) {
		wave.Phase = WaveSpawnDone
		return
	}
	group := wave.Groups[wave.GroupIndex]
	wave.SpawnTimer += deltaTime
	if wave.SpawnTimer >= group.Interval {
		wave.SpawnTimer = 0
		s.spawnFromGroup(wave, group)
		wave.Emitted++
		if wave.Emitted >= group.Count {
			wave.GroupIndex++
			wave.Emitted = 0
		}
		if wave.GroupIndex >= len(wave.Groups) {
			wave.Phase = WaveSpawnDone
		}
	}
}

func (s *WaveSystem) spawnFromGroup(wave *component.Wave, group defs.EnemyGroup) {
	spawnTile := s.gridModel.Spawns[s.rng.Intn(len(s.gridModel.Spawns))]
	id := s.SpawnEnemy(group.EnemyID, spawnTile, group.HPMultiplier, group.SpeedMultiplier, wave.ShieldBonus)
	if id != 0 && wave.Gather != nil && !wave.Gather.Released {
		s.ecs.Enemies[id].GatherBound = true
	}
}

// SpawnEnemy создаёт вражескую сущность на тайле. Используется и волной,
// и навыком призыва босса. Возвращает 0, если определение не найдено.
func (s *WaveSystem) SpawnEnemy(defID string, tile grid.Tile, hpMult, speedMult float64, shield int) types.EntityID {
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		log.Printf("WaveSystem: enemy definition not found for ID: %s", defID)
		return 0
	}
	if hpMult <= 0 {
		hpMult = 1
	}
	if speedMult <= 0 {
		speedMult = 1
	}

	id := s.ecs.NewEntity()
	x, y := utils.TileToScreen(tile)
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed * speedMult}
	s.ecs.Paths[id] = &component.Path{}
	maxHP := float64(def.Health) * hpMult
	s.ecs.Healths[id] = &component.Health{Value: maxHP, Max: maxHP}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:        defID,
		Variant:      def.Variant,
		Armor:        def.Armor,
		DamageToBase: def.DamageToBase,
		RewardEnergy: def.RewardEnergy,
		Shield:       shield,
		SizeFactor:   1.0,
	}
	s.attachBehaviorState(id, def)
	s.activeEnemies++

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
	if def.Variant == defs.VariantBoss {
		s.eventDispatcher.Dispatch(event.Event{Type: event.BossSpawned, Data: id})
	}
	return id
}

func (s *WaveSystem) attachBehaviorState(id types.EntityID, def defs.EnemyDefinition) {
	b := def.Behavior
	switch def.Variant {
	case defs.VariantSprinter:
		cooldown := 2.0
		if b != nil && b.Sprint != nil {
			cooldown = b.Sprint.Cooldown
		}
		s.ecs.Sprints[id] = &component.SprintState{Active: false, Timer: cooldown}
	case defs.VariantDevourer:
		s.ecs.Devours[id] = &component.DevourState{}
	case defs.VariantHealer:
		interval := 2.5
		if b != nil && b.Heal != nil {
			interval = b.Heal.Interval
		}
		s.ecs.Heals[id] = &component.HealPulse{Timer: interval}
	case defs.VariantSymbiote:
		charges := 0
		if b != nil && b.Symbiote != nil {
			charges = b.Symbiote.MaxCharges
		}
		s.ecs.Symbiotes[id] = &component.SymbioteState{Charges: charges}
	case defs.VariantBoss:
		if b != nil && b.Boss != nil {
			s.ecs.Bosses[id] = &component.BossState{
				SummonTimer:  b.Boss.SummonInterval,
				DestroyTimer: b.Boss.DestroyInterval,
			}
		}
	}
}

// StartWave собирает состояние волны номер index. Короткий список волн
// дополняется повторением последней (см. defs.WaveForIndex), так что кривой
// конфиг не валит уровень.
func (s *WaveSystem) StartWave(index int) *component.Wave {
	waveDef := defs.WaveForIndex(s.level, index)

	wave := &component.Wave{
		Index:      index,
		Phase:      WaveSpawning,
		Groups:     append([]defs.EnemyGroup(nil), waveDef.Groups...),
		ClearDelay: waveDef.ClearDelay,
	}

	// Щит, заработанный курьерами прошлой волны.
	wave.ShieldBonus = s.ecs.GameState.NextWaveShield
	s.ecs.GameState.NextWaveShield = 0

	s.applyRareEvents(wave)

	s.ecs.GameState.ReachedWave = index
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: index})
	return wave
}

// applyRareEvents может переписать список групп волны перед спавном:
// массовый раш (все группы быстрее и чаще) или волна сбора (сойтись в точке,
// потом идти вместе).
func (s *WaveSystem) applyRareEvents(wave *component.Wave) {
	if s.rng.Chance(config.RushWaveChance) {
		for i := range wave.Groups {
			wave.Groups[i].Interval /= 2
			if wave.Groups[i].SpeedMultiplier <= 0 {
				wave.Groups[i].SpeedMultiplier = 1
			}
			wave.Groups[i].SpeedMultiplier *= 1.5
		}
		log.Printf("Волна %d: массовый раш!", wave.Index)
		return
	}
	if s.rng.Chance(config.GatherWaveChance) {
		point, ok := s.pickGatherPoint()
		if !ok {
			return
		}
		wave.Gather = &component.GatherState{
			Point:    point,
			Expected: wave.TotalCount(),
		}
		log.Printf("Волна %d: сбор в (%d,%d) перед общим рывком", wave.Index, point.Row, point.Col)
	}
}

// pickGatherPoint ищет проходимый тайл примерно на полпути к базе.
func (s *WaveSystem) pickGatherPoint() (grid.Tile, bool) {
	spawn := s.gridModel.Spawns[0]
	path := grid.AStar(spawn, s.gridModel.Base, s.gridModel.IsWalkable, nil)
	if len(path) < 3 {
		return grid.Tile{}, false
	}
	return path[len(path)/2], true
}

func (s *WaveSystem) updateGather(wave *component.Wave) {
	g := wave.Gather
	if g == nil || g.Released {
		return
	}
	// Спавн ещё идёт — рано.
	if wave.Phase == WaveSpawning {
		return
	}
	if g.Arrived >= g.Expected {
		g.Released = true
		for id, enemy := range s.ecs.Enemies {
			if enemy.GatherHeld {
				enemy.GatherHeld = false
			}
			if path, ok := s.ecs.Paths[id]; ok {
				path.NeedsRepath = true
			}
		}
	}
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		s.activeEnemies--
		if death, ok := e.Data.(event.EnemyDeath); ok {
			s.noteGatherDeath(death.ID)
		}
	case event.EnemyReachedBase:
		s.activeEnemies--
	}
}

// noteGatherDeath корректирует счётчики сбора: погибший до точки сбора
// уменьшает ожидание, погибший в точке — и ожидание, и прибывших.
func (s *WaveSystem) noteGatherDeath(id types.EntityID) {
	wave := s.ecs.Wave
	if wave == nil || wave.Gather == nil || wave.Gather.Released {
		return
	}
	enemy, ok := s.ecs.Enemies[id]
	if !ok || !enemy.GatherBound {
		return
	}
	wave.Gather.Expected--
	if enemy.GatherHeld {
		wave.Gather.Arrived--
	}
}
