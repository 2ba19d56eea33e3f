// internal/event/types.go
package event

import (
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

const (
	EnemySpawned      EventType = "EnemySpawned"      // Data: types.EntityID
	EnemyKilled       EventType = "EnemyKilled"       // Data: EnemyDeath
	EnemyReachedBase  EventType = "EnemyReachedBase"  // Data: types.EntityID
	EnemyRemoved      EventType = "EnemyRemoved"      // Data: types.EntityID
	WaveStarted       EventType = "WaveStarted"       // Data: int (номер волны)
	WaveCleared       EventType = "WaveCleared"       // Data: int
	BossSpawned       EventType = "BossSpawned"       // Data: types.EntityID
	TowerPlaced       EventType = "TowerPlaced"       // Data: types.EntityID
	TowerRemoved      EventType = "TowerRemoved"      // Data: grid.Tile
	TowerDestroyed    EventType = "TowerDestroyed"    // Data: grid.Tile (навык босса)
	PlacementRejected EventType = "PlacementRejected" // Data: string (причина)
	LevelWon          EventType = "LevelWon"          // Data: int (достигнутая волна)
	LevelLost         EventType = "LevelLost"         // Data: int
)

// EnemyDeath несёт место и время смерти — пожиратели ищут свежие останки.
type EnemyDeath struct {
	ID     types.EntityID
	X, Y   float64
	Tile   grid.Tile
	Time   float64
	Reward int
}
