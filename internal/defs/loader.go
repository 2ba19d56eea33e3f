// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadEnemyDefinitions reads the enemy configuration file and replaces the
// EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}
	return nil
}

// LoadTowerDefinitions reads the tower configuration file and replaces the
// TowerLibrary.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	TowerLibrary = make(map[string]TowerDefinition)
	for _, def := range towerDefs {
		TowerLibrary[def.ID] = def
	}
	return nil
}

// LoadLevel reads a level definition from a YAML file and sanitizes it.
func LoadLevel(path string) (LevelDefinition, error) {
	var level LevelDefinition
	file, err := os.ReadFile(path)
	if err != nil {
		return level, fmt.Errorf("failed to read level file: %w", err)
	}
	if err := yaml.Unmarshal(file, &level); err != nil {
		return level, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	diags := SanitizeLevel(&level)
	for _, d := range diags {
		fmt.Printf("level %q: %s\n", level.Name, d)
	}
	return level, nil
}

// SanitizeLevel приводит конфигурацию уровня к пригодному виду вместо отказа:
// короткие и пустые списки дополняются, кривые числа зажимаются. Возвращает
// диагностику для хоста.
func SanitizeLevel(level *LevelDefinition) []string {
	var diags []string

	if level.Width < 4 || level.Height < 4 {
		diags = append(diags, fmt.Sprintf("map size %dx%d too small, using 10x10", level.Width, level.Height))
		level.Width, level.Height = 10, 10
	}
	if len(level.Spawns) == 0 {
		diags = append(diags, "no spawn tiles, adding (0,0)")
		level.Spawns = []TileRef{{Row: 0, Col: 0}}
	}
	clampTile := func(t *TileRef) {
		if t.Row < 0 {
			t.Row = 0
		}
		if t.Row >= level.Height {
			t.Row = level.Height - 1
		}
		if t.Col < 0 {
			t.Col = 0
		}
		if t.Col >= level.Width {
			t.Col = level.Width - 1
		}
	}
	for i := range level.Spawns {
		clampTile(&level.Spawns[i])
	}
	clampTile(&level.Base)

	if level.BaseHealth <= 0 {
		level.BaseHealth = 100
	}
	if level.StartEnergy < 0 {
		level.StartEnergy = 0
	}

	if len(level.Waves) == 0 {
		diags = append(diags, "no waves defined, using a single default wave")
		level.Waves = []WaveDefinition{{
			Groups:     []EnemyGroup{{EnemyID: "ENEMY_GRUNT", Count: 5, Interval: 1.0}},
			ClearDelay: 3,
		}}
	}
	for wi := range level.Waves {
		wave := &level.Waves[wi]
		kept := wave.Groups[:0]
		for _, group := range wave.Groups {
			if group.Count <= 0 {
				diags = append(diags, fmt.Sprintf("wave %d: dropping empty group %q", wi+1, group.EnemyID))
				continue
			}
			if _, ok := EnemyLibrary[group.EnemyID]; !ok {
				diags = append(diags, fmt.Sprintf("wave %d: unknown enemy %q, substituting ENEMY_GRUNT", wi+1, group.EnemyID))
				group.EnemyID = "ENEMY_GRUNT"
			}
			if group.Interval <= 0 {
				group.Interval = 1.0
			}
			if group.HPMultiplier <= 0 {
				group.HPMultiplier = 1.0
			}
			if group.SpeedMultiplier <= 0 {
				group.SpeedMultiplier = 1.0
			}
			kept = append(kept, group)
		}
		wave.Groups = kept
		if len(wave.Groups) == 0 {
			wave.Groups = []EnemyGroup{{EnemyID: "ENEMY_GRUNT", Count: 5, Interval: 1.0, HPMultiplier: 1, SpeedMultiplier: 1}}
		}
		if wave.ClearDelay < 0 {
			wave.ClearDelay = 0
		}
	}
	return diags
}

// WaveForIndex возвращает определение волны с номером index (с единицы).
// Список короче запрошенного номера дополняется повторением последней волны.
func WaveForIndex(level *LevelDefinition, index int) WaveDefinition {
	if index < 1 {
		index = 1
	}
	if index <= len(level.Waves) {
		return level.Waves[index-1]
	}
	// Волны закончились — повторяем последнюю.
	return level.Waves[len(level.Waves)-1]
}
