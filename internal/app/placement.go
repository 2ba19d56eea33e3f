// internal/app/placement.go
package app

import (
	"fmt"

	"go-grid-defense/pkg/grid"
)

// PlacementReason — типизированная причина отказа в размещении.
// Отказ никогда не бывает молчаливым no-op.
type PlacementReason string

const (
	ReasonOutOfBounds        PlacementReason = "out-of-bounds"
	ReasonOverlapsBase       PlacementReason = "overlaps-base"
	ReasonOverlapsSpawn      PlacementReason = "overlaps-spawn"
	ReasonOverlapsExisting   PlacementReason = "overlaps-existing"
	ReasonWouldDisconnect    PlacementReason = "would-disconnect-path"
	ReasonInsufficientEnergy PlacementReason = "insufficient-energy"
)

// PlacementError — отказ с причиной и прямоугольником кандидата.
type PlacementError struct {
	Reason PlacementReason
	Rect   grid.Rect
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("placement rejected (%s): rect %dx%d at (%d,%d)",
		e.Reason, e.Rect.Width, e.Rect.Height, e.Rect.Row, e.Rect.Col)
}

// PlacementValidator проверяет кандидата на размещение через теневую копию
// сетки: мутация коммитится только если каждый спавн по-прежнему достигает
// базы. Это страж инварианта связности — карта не может стать нерешаемой.
type PlacementValidator struct {
	gridModel         *grid.Grid
	CheckConnectivity bool
}

func NewPlacementValidator(g *grid.Grid) *PlacementValidator {
	return &PlacementValidator{gridModel: g, CheckConnectivity: true}
}

// Validate возвращает nil, если прямоугольник можно заблокировать.
func (v *PlacementValidator) Validate(rect grid.Rect) *PlacementError {
	g := v.gridModel
	if !g.InBoundsRect(rect) {
		return &PlacementError{Reason: ReasonOutOfBounds, Rect: rect}
	}
	if rect.Contains(g.Base) {
		return &PlacementError{Reason: ReasonOverlapsBase, Rect: rect}
	}
	for _, spawn := range g.Spawns {
		if rect.Contains(spawn) {
			return &PlacementError{Reason: ReasonOverlapsSpawn, Rect: rect}
		}
	}
	if g.OverlapsObstacle(rect) {
		return &PlacementError{Reason: ReasonOverlapsExisting, Rect: rect}
	}

	if v.CheckConnectivity {
		staged := g.Clone()
		staged.BlockRect(rect)
		for _, spawn := range staged.Spawns {
			if grid.AStar(spawn, staged.Base, staged.IsWalkable, nil) == nil {
				return &PlacementError{Reason: ReasonWouldDisconnect, Rect: rect}
			}
		}
	}
	return nil
}
