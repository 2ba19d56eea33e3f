// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	TileSize     = 40.0
	MaxDeltaTime = 0.06

	BaseHealth  = 100
	StartEnergy = 120.0

	// Снаряды
	ProjectileSpeed  = 360.0 // pixels per second
	ProjectileRadius = 5.0   // pixels

	// Кулдаун джаммеров не может растянуть интервал атаки сильнее этого
	// множителя, иначе несколько джаммеров выключили бы башню насовсем.
	JammerStackCap = 3.0

	// Доля стоимости, возвращаемая при сносе башни.
	TowerRefundFactor = 0.5

	// Босс: короткая задержка перед повтором навыка, если цель/тайл не нашлись.
	BossRetryDelay = 1.0
	// Подсветка башни перед разрушением навыком босса.
	BossTelegraphDelay = 1.5

	// Вероятности редких событий, проверяются перед стартом каждой волны.
	RushWaveChance   = 0.05
	GatherWaveChance = 0.05

	SpeedButtonX    = ScreenWidth - 140
	SpeedButtonY    = 26
	SpeedButtonSize = 16.0
	PauseButtonX    = ScreenWidth - 90
	PauseButtonY    = 26
	PauseButtonSize = 14.0

	// Минимальный интервал между кликами по кнопкам UI, мс.
	ClickCooldown = 200
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	WalkableColor   = color.RGBA{50, 70, 90, 255}
	BlockedColor    = color.RGBA{150, 70, 70, 255}
	SpawnColor      = color.RGBA{0, 255, 0, 255}
	BaseColor       = color.RGBA{50, 205, 50, 255}
	TowerColor      = color.RGBA{70, 130, 180, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	BossColor       = color.RGBA{180, 50, 230, 255}
	ProjectileColor = color.RGBA{255, 215, 0, 255}
	TextColor       = color.RGBA{240, 240, 240, 255}
	TelegraphColor  = color.RGBA{255, 100, 0, 255}
)
