// cmd/headless/main.go
//
// Прогон симуляции без окна: фиксированный шаг, простая стратегия застройки,
// отчёт об исходе в stdout. Удобно для балансировки уровней и регрессий.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/event"
	"go-grid-defense/pkg/grid"
)

func main() {
	levelPath := flag.String("level", "", "путь к YAML уровня (пусто — встроенный)")
	seed := flag.Int64("seed", 1, "seed генератора")
	step := flag.Float64("step", 0.05, "шаг симуляции, сек")
	maxTime := flag.Float64("max-time", 600, "лимит логического времени, сек")
	flag.Parse()

	level := defs.DefaultLevel()
	if *levelPath != "" {
		loaded, err := defs.LoadLevel(*levelPath)
		if err != nil {
			log.Fatalf("headless: %v", err)
		}
		level = loaded
	}

	sim := app.NewSimulation(level, *seed)

	kills := 0
	leaks := 0
	sim.Dispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(event.Event) { kills++ }))
	sim.Dispatcher.Subscribe(event.EnemyReachedBase, event.ListenerFunc(func(event.Event) { leaks++ }))
	sim.Dispatcher.Subscribe(event.WaveStarted, event.ListenerFunc(func(e event.Event) {
		if index, ok := e.Data.(int); ok {
			fmt.Printf("t=%7.2f  wave %d started\n", sim.Clock.LogicTime, index)
		}
	}))

	buildDefaultLayout(sim)
	sim.StartWaves()

	for sim.ECS.GameState.Outcome == component.OutcomeNone && sim.Clock.LogicTime < *maxTime {
		sim.Update(*step)
	}

	state := sim.ECS.GameState
	fmt.Printf("\n--- report ---\n")
	fmt.Printf("outcome:      %s\n", outcomeLabel(state.Outcome))
	fmt.Printf("reached wave: %d\n", state.ReachedWave)
	fmt.Printf("base health:  %d\n", state.BaseHealth)
	fmt.Printf("kills:        %d\n", kills)
	fmt.Printf("leaks:        %d\n", leaks)
	fmt.Printf("logic time:   %.1fs\n", sim.Clock.LogicTime)

	if state.Outcome == component.OutcomeDefeat {
		os.Exit(1)
	}
}

// buildDefaultLayout ставит по башне вокруг базы, пока хватает энергии.
// Не оптимально, но достаточно для smoke-прогонов баланса.
func buildDefaultLayout(sim *app.Simulation) {
	base := sim.Grid.Base
	order := []string{"TOWER_ARROW", "TOWER_CANNON", "TOWER_ARROW", "TOWER_SNIPER", "TOWER_ARROW"}
	next := 0
	for radius := 2; radius <= 4 && next < len(order); radius++ {
		for dr := -radius; dr <= radius && next < len(order); dr++ {
			for dc := -radius; dc <= radius && next < len(order); dc++ {
				t := grid.Tile{Row: base.Row + dr, Col: base.Col + dc}
				if t.Distance(base) != radius {
					continue
				}
				if _, err := sim.PlaceTower(t, order[next]); err == nil {
					next++
				}
			}
		}
	}
	log.Printf("headless: placed %d towers", next)
}

func outcomeLabel(o component.Outcome) string {
	switch o {
	case component.OutcomeVictory:
		return "victory"
	case component.OutcomeDefeat:
		return "defeat"
	default:
		return "timeout"
	}
}
