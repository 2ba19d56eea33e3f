// internal/system/behavior.go
package system

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
)

// corpse — останки врага, интересные пожирателям недолгое время.
type corpse struct {
	x, y     float64
	diedAt   float64
	consumed bool
}

// BehaviorSystem обновляет реактивную логику вариантов врагов. Диспетчеризация
// идёт через таблицу по варианту, а не через цепочку условий: у варианта без
// записи в таблице нет активной логики (plain, courier, jammer, smart).
type BehaviorSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	corpses         []corpse
}

type variantUpdate func(s *BehaviorSystem, id types.EntityID, enemy *component.Enemy, params *defs.BehaviorParams, dt float64)

var variantUpdates = map[defs.Variant]variantUpdate{
	defs.VariantSprinter: (*BehaviorSystem).updateSprinter,
	defs.VariantDevourer: (*BehaviorSystem).updateDevourer,
	defs.VariantHealer:   (*BehaviorSystem).updateHealer,
	defs.VariantSymbiote: (*BehaviorSystem).updateSymbiote,
}

func NewBehaviorSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *BehaviorSystem {
	bs := &BehaviorSystem{ecs: ecs, eventDispatcher: dispatcher}
	dispatcher.Subscribe(event.EnemyKilled, bs)
	return bs
}

func (s *BehaviorSystem) Update(deltaTime float64) {
	s.expireCorpses()
	for id, enemy := range s.ecs.Enemies {
		update, ok := variantUpdates[enemy.Variant]
		if !ok {
			continue
		}
		def, found := defs.EnemyLibrary[enemy.DefID]
		if !found {
			continue
		}
		update(s, id, enemy, def.Behavior, deltaTime)
	}
}

// OnEvent регистрирует останки для пожирателей.
func (s *BehaviorSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	if death, ok := e.Data.(event.EnemyDeath); ok {
		s.corpses = append(s.corpses, corpse{x: death.X, y: death.Y, diedAt: death.Time})
	}
}

func (s *BehaviorSystem) expireCorpses() {
	// Окно у всех пожирателей своё, держим останки по максимальному из
	// известных окон; по умолчанию 5 секунд.
	window := 5.0
	kept := s.corpses[:0]
	for _, c := range s.corpses {
		if !c.consumed && s.ecs.GameTime-c.diedAt <= window {
			kept = append(kept, c)
		}
	}
	s.corpses = kept
}

// updateSprinter: отдых → рывок (скорость × множитель, по таймеру) → отдых.
func (s *BehaviorSystem) updateSprinter(id types.EntityID, enemy *component.Enemy, params *defs.BehaviorParams, dt float64) {
	sprint, ok := s.ecs.Sprints[id]
	if !ok || params == nil || params.Sprint == nil {
		return
	}
	sprint.Timer -= dt
	if sprint.Timer > 0 {
		return
	}
	if sprint.Active {
		sprint.Active = false
		sprint.Timer = params.Sprint.Cooldown
	} else {
		sprint.Active = true
		sprint.Timer = params.Sprint.Duration
	}
}

// updateDevourer: оказавшись рядом со свежими останками, съедает их —
// лечится, замедляется и растёт, до предела.
func (s *BehaviorSystem) updateDevourer(id types.EntityID, enemy *component.Enemy, params *defs.BehaviorParams, dt float64) {
	devour, ok := s.ecs.Devours[id]
	if !ok || params == nil || params.Devour == nil {
		return
	}
	p := params.Devour
	if devour.Count >= p.MaxCount {
		return
	}
	pos, hasPos := s.ecs.Positions[id]
	health, hasHealth := s.ecs.Healths[id]
	if !hasPos || !hasHealth {
		return
	}
	for i := range s.corpses {
		c := &s.corpses[i]
		if c.consumed || s.ecs.GameTime-c.diedAt > p.TimeWindow {
			continue
		}
		if utils.TileDistance(pos.X, pos.Y, c.x, c.y) > p.Radius {
			continue
		}
		c.consumed = true
		devour.Count++
		health.Value += float64(p.Heal)
		if health.Value > health.Max {
			health.Value = health.Max
		}
		enemy.SizeFactor *= p.GrowFactor
		if devour.Count >= p.MaxCount {
			break
		}
	}
}

// updateHealer: периодически лечит всех прочих живых врагов в радиусе.
func (s *BehaviorSystem) updateHealer(id types.EntityID, enemy *component.Enemy, params *defs.BehaviorParams, dt float64) {
	pulse, ok := s.ecs.Heals[id]
	if !ok || params == nil || params.Heal == nil {
		return
	}
	pulse.Timer -= dt
	if pulse.Timer > 0 {
		return
	}
	p := params.Heal
	pulse.Timer = p.Interval

	pos, hasPos := s.ecs.Positions[id]
	if !hasPos {
		return
	}
	for otherID, other := range s.ecs.Enemies {
		if otherID == id || other.Arrived {
			continue
		}
		otherPos, okPos := s.ecs.Positions[otherID]
		otherHealth, okHealth := s.ecs.Healths[otherID]
		if !okPos || !okHealth || otherHealth.Value <= 0 {
			continue
		}
		if utils.TileDistance(pos.X, pos.Y, otherPos.X, otherPos.Y) > p.Radius {
			continue
		}
		otherHealth.Value += float64(p.Amount)
		if otherHealth.Value > otherHealth.Max {
			otherHealth.Value = otherHealth.Max
		}
	}
}

// updateSymbiote: восстанавливает спутники-щиты до предела. Заряды чисто
// защитные: каждый поглощает один удар (см. ApplyDamage).
func (s *BehaviorSystem) updateSymbiote(id types.EntityID, enemy *component.Enemy, params *defs.BehaviorParams, dt float64) {
	sym, ok := s.ecs.Symbiotes[id]
	if !ok || params == nil || params.Symbiote == nil {
		return
	}
	p := params.Symbiote
	if sym.Charges >= p.MaxCharges {
		return
	}
	sym.Timer += dt
	if sym.Timer >= p.RechargePeriod {
		sym.Timer = 0
		sym.Charges++
	}
}
