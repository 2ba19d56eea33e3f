// internal/component/game_state.go
package component

// Outcome — итог уровня.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// GameState — компонент для хранения состояния игры.
type GameState struct {
	BaseHealth  int
	Energy      float64
	Outcome     Outcome
	ReachedWave int // номер волны, до которой дошли (для таблицы рекордов)

	// NextWaveShield — щит от курьеров, переносится на следующую волну.
	NextWaveShield int
}
