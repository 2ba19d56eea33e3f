// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/ui"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// Порядок соответствует клавишам 1..5.
var towerHotkeys = []string{
	"TOWER_ARROW",
	"TOWER_CANNON",
	"TOWER_SNIPER",
	"TOWER_EXECUTIONER",
	"TOWER_BEAM",
}

type AppGame struct {
	sim            *app.Simulation
	speedButton    *ui.SpeedButton
	pauseButton    *ui.PauseButton
	waveIndicator  *ui.WaveIndicator
	fontFace       font.Face
	selectedTower  int
	lastUpdateTime time.Time
}

func NewAppGame(sim *app.Simulation) *AppGame {
	speedColors := []color.RGBA{
		{200, 200, 200, 255}, // 1x
		{255, 215, 0, 255},   // 2x
	}
	return &AppGame{
		sim: sim,
		speedButton: ui.NewSpeedButton(
			config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, speedColors),
		pauseButton: ui.NewPauseButton(
			config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize,
			config.TextColor, config.SpawnColor),
		waveIndicator:  ui.NewWaveIndicator(config.ScreenWidth/2, 30, config.TextColor, config.BossColor),
		fontFace:       basicfont.Face7x13,
		lastUpdateTime: time.Now(),
	}
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.handleInput()
	a.sim.Update(deltaTime)
	return nil
}

func (a *AppGame) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.sim.StartWaves()
	}
	for i := range towerHotkeys {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			a.selectedTower = i
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		mx, my := float32(x), float32(y)
		switch {
		case a.speedButton.IsClicked(mx, my):
			if time.Since(a.speedButton.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
				a.speedButton.ToggleState()
				a.sim.Clock.SetSpeed(float64(a.speedButton.CurrentState + 1))
			}
		case a.pauseButton.IsClicked(mx, my):
			if time.Since(a.pauseButton.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
				a.pauseButton.TogglePause()
				a.sim.Clock.TogglePause()
			}
		default:
			tile := utils.ScreenToTile(float64(x), float64(y))
			if _, err := a.sim.PlaceTower(tile, towerHotkeys[a.selectedTower]); err != nil {
				log.Printf("game: %v", err)
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		a.sim.RemoveTower(utils.ScreenToTile(float64(x), float64(y)))
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	a.drawGrid(screen)
	a.drawEntities(screen)
	a.drawHUD(screen)
}

func (a *AppGame) drawGrid(screen *ebiten.Image) {
	g := a.sim.Grid
	const ts = float32(config.TileSize)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			t := grid.Tile{Row: row, Col: col}
			clr := config.WalkableColor
			switch {
			case t == g.Base:
				clr = config.BaseColor
			case g.IsSpawn(t):
				clr = config.SpawnColor
			case g.IsBlocked(t):
				clr = config.BlockedColor
			}
			vector.DrawFilledRect(screen, float32(col)*ts+1, float32(row)*ts+1, ts-2, ts-2, clr, false)
		}
	}
	for _, t := range a.sim.TelegraphedTiles() {
		vector.StrokeRect(screen, float32(t.Col)*ts, float32(t.Row)*ts, ts, ts, 3.0, config.TelegraphColor, true)
	}
}

func (a *AppGame) drawEntities(screen *ebiten.Image) {
	for _, snap := range a.sim.Snapshot() {
		x, y := float32(snap.X), float32(snap.Y)
		switch snap.Kind {
		case app.KindTower:
			clr := config.TowerColor
			if snap.Disabled {
				clr = config.BlockedColor
			}
			vector.DrawFilledCircle(screen, x, y, config.TileSize*0.35, clr, true)
		case app.KindEnemy:
			clr := config.EnemyColor
			if snap.Variant == defs.VariantBoss {
				clr = config.BossColor
			}
			radius := float32(config.TileSize * 0.25 * snap.SizeFactor)
			vector.DrawFilledCircle(screen, x, y, radius, clr, true)
			if snap.MaxHealth > 0 {
				a.drawHealthBar(screen, x, y-radius-6, snap.Health/snap.MaxHealth)
			}
			if snap.Shield > 0 {
				vector.StrokeCircle(screen, x, y, radius+3, 2.0, config.ProjectileColor, true)
			}
		case app.KindProjectile:
			vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius, config.ProjectileColor, true)
		}
	}
}

func (a *AppGame) drawHealthBar(screen *ebiten.Image, x, y float32, ratio float64) {
	const width, height = 22.0, 3.0
	vector.DrawFilledRect(screen, x-width/2, y, width, height, color.RGBA{0, 0, 0, 180}, false)
	vector.DrawFilledRect(screen, x-width/2, y, width*float32(ratio), height, config.SpawnColor, false)
}

func (a *AppGame) drawHUD(screen *ebiten.Image) {
	state := a.sim.ECS.GameState
	hud := fmt.Sprintf("HP %d  Energy %.0f  [%s]", state.BaseHealth, state.Energy,
		defs.TowerLibrary[towerHotkeys[a.selectedTower]].Name)
	text.Draw(screen, hud, a.fontFace, 12, 24, config.TextColor)

	if wave := a.sim.ECS.Wave; wave != nil {
		a.waveIndicator.Draw(screen, wave.Index, a.waveHasBoss(wave.Index), a.fontFace)
	}
	a.speedButton.Draw(screen)
	a.pauseButton.Draw(screen)

	switch state.Outcome {
	case component.OutcomeVictory:
		text.Draw(screen, "VICTORY", a.fontFace, config.ScreenWidth/2-28, config.ScreenHeight/2, config.SpawnColor)
	case component.OutcomeDefeat:
		text.Draw(screen, "DEFEAT", a.fontFace, config.ScreenWidth/2-24, config.ScreenHeight/2, config.EnemyColor)
	}
}

func (a *AppGame) waveHasBoss(index int) bool {
	wave := defs.WaveForIndex(&a.sim.Level, index)
	for _, group := range wave.Groups {
		if def, ok := defs.EnemyLibrary[group.EnemyID]; ok && def.Variant == defs.VariantBoss {
			return true
		}
	}
	return false
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	levelPath := flag.String("level", "", "путь к YAML уровня (пусто — встроенный)")
	seed := flag.Int64("seed", 0, "seed генератора, 0 — случайный")
	flag.Parse()

	level := defs.DefaultLevel()
	if *levelPath != "" {
		loaded, err := defs.LoadLevel(*levelPath)
		if err != nil {
			log.Fatalf("game: %v", err)
		}
		level = loaded
	}

	sim := app.NewSimulation(level, *seed)
	scores, err := app.NewScoreStore("go-grid-defense")
	if err != nil {
		log.Printf("game: score storage unavailable: %v", err)
	}
	sim.Scores = scores
	if scores != nil {
		log.Printf("game: best wave so far: %d", scores.Progress().BestWave)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Grid Defense")
	if err := ebiten.RunGame(NewAppGame(sim)); err != nil {
		log.Fatal(err)
	}
}
