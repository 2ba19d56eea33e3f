// internal/app/clock.go
package app

// Clock переводит wall-clock дельты хоста в логическое время симуляции.
// Все таймеры движка выражены в логических секундах, поэтому смена скорости
// и пауза никогда не рассинхронизируют их.
type Clock struct {
	LogicTime float64 // накопленное логическое время, сек

	speed    float64
	paused   bool
	pausedAt float64
}

func NewClock() *Clock {
	return &Clock{speed: 1.0}
}

// Tick возвращает логическую дельту: wallDelta × speed, либо ровно 0 на паузе.
func (c *Clock) Tick(wallDelta float64) float64 {
	if c.paused {
		return 0
	}
	logicDelta := wallDelta * c.speed
	c.LogicTime += logicDelta
	return logicDelta
}

// SetSpeed задаёт множитель скорости (1x, 2x).
func (c *Clock) SetSpeed(multiplier float64) {
	if multiplier > 0 {
		c.speed = multiplier
	}
}

func (c *Clock) Speed() float64 { return c.speed }

// Pause запоминает момент остановки.
func (c *Clock) Pause() {
	if !c.paused {
		c.paused = true
		c.pausedAt = c.LogicTime
	}
}

// Resume снимает паузу.
func (c *Clock) Resume() {
	c.paused = false
	c.pausedAt = 0
}

func (c *Clock) TogglePause() {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
}

func (c *Clock) IsPaused() bool { return c.paused }

// PausedAt возвращает логическое время, на котором стоит пауза.
func (c *Clock) PausedAt() float64 { return c.pausedAt }
