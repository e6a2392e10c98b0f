package level

import (
	"errors"
	"fmt"

	"github.com/jstraceski/BreakJoe/internal/config"
	"github.com/jstraceski/BreakJoe/internal/physics"
	"github.com/jstraceski/BreakJoe/internal/vecmath"
)

var (
	// ErrTooWide is returned when a row has more slots than the world width
	// can hold.
	ErrTooWide = errors.New("row does not fit the world width")
	// ErrTooTall is returned when the rows reach below the bottom of the world.
	ErrTooTall = errors.New("rows do not fit the world height")
)

// Geometry places brick rows inside the world.
type Geometry struct {
	WorldWidth  float64
	WorldHeight float64
	TopOffset   float64 // Gap between the top of the world and the first row
	BrickHeight float64
	Spacing     float64 // Gap between bricks and between rows
	Drag        float64
}

// GeometryFor returns the brick geometry of a config.
func GeometryFor(cfg config.Config) Geometry {
	return Geometry{
		WorldWidth:  cfg.World.Width,
		WorldHeight: cfg.World.Height,
		TopOffset:   cfg.Bricks.TopOffset,
		BrickHeight: cfg.Bricks.Height,
		Spacing:     cfg.Bricks.Spacing,
		Drag:        cfg.Bricks.Drag,
	}
}

// brickWidth is the width of each slot in a row of n slots.
func (g Geometry) brickWidth(n int) float64 {
	return (g.WorldWidth - float64(n+1)*g.Spacing) / float64(n)
}

// rowCenterY is the centre height of row idx, counted from the top.
func (g Geometry) rowCenterY(idx int) float64 {
	fromTop := g.TopOffset + g.BrickHeight/2 +
		g.Spacing*float64(idx+1) + g.BrickHeight*float64(idx)
	return g.WorldHeight - fromTop
}

// Validate reports whether every brick of l gets a positive size inside the
// world. Layout of a level that fails Validate yields bricks the physics
// engine rejects.
func (l *Level) Validate(g Geometry) error {
	for idx, row := range l.Rows {
		n := len(row)
		if n == 0 {
			continue
		}
		if w := g.brickWidth(n); w <= 0 {
			return fmt.Errorf("level %s: row %d has %d slots: %w", l.ID, idx+1, n, ErrTooWide)
		}
		if !hasBricks(row) {
			continue
		}
		if g.rowCenterY(idx)-g.BrickHeight/2 < 0 {
			return fmt.Errorf("level %s: row %d: %w", l.ID, idx+1, ErrTooTall)
		}
	}
	return nil
}

// ValidateAll checks every level against g and returns the first failure.
func ValidateAll(levels []*Level, g Geometry) error {
	for _, l := range levels {
		if err := l.Validate(g); err != nil {
			return err
		}
	}
	return nil
}

func hasBricks(row []int) bool {
	for _, h := range row {
		if h > 0 {
			return true
		}
	}
	return false
}

// Layout converts a level into brick entities. Each row divides the world
// width evenly among its slots; row 0 sits TopOffset below the top edge.
func Layout(l *Level, g Geometry) []physics.Entity {
	var bricks []physics.Entity
	for rowIdx, row := range l.Rows {
		n := len(row)
		if n == 0 {
			continue
		}
		width := g.brickWidth(n)
		y := g.rowCenterY(rowIdx)

		for i, hits := range row {
			if hits <= 0 {
				continue
			}
			x := g.Spacing*float64(i+1) + width/2 + width*float64(i)
			bricks = append(bricks, physics.NewBrick(vecmath.Vec2(x, y), width, g.BrickHeight, hits, g.Drag))
		}
	}
	return bricks
}
