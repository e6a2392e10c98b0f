// Package physics implements the per-tick simulation for BreakJoe: velocity
// integration, arena boundary resolution, circle-vs-rectangle narrow phase and
// collision response. It performs no I/O and never creates or frees entities.
package physics

import (
	"fmt"

	"github.com/jstraceski/BreakJoe/internal/vecmath"
)

// Role determines collision special cases and scoring.
type Role int

const (
	RolePaddle Role = iota
	RoleBrick
	RoleBall
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RolePaddle:
		return "paddle"
	case RoleBrick:
		return "brick"
	case RoleBall:
		return "ball"
	default:
		return "unknown"
	}
}

// Shape is the collision geometry of an entity: Rect or Circle.
type Shape interface {
	// HalfExtents returns the distance from the centre to the edge on each axis.
	HalfExtents() vecmath.Vector3D
	validate() error
}

// Rect is an axis-aligned rectangle centred on the entity position.
type Rect struct {
	Width  float64
	Height float64
}

// HalfExtents returns half the width and height.
func (r Rect) HalfExtents() vecmath.Vector3D {
	return vecmath.Vec2(r.Width/2, r.Height/2)
}

func (r Rect) validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("rect has non-positive extent %gx%g", r.Width, r.Height)
	}
	return nil
}

// Circle is a disc centred on the entity position.
type Circle struct {
	Radius float64
}

// HalfExtents returns the radius on both axes.
func (c Circle) HalfExtents() vecmath.Vector3D {
	return vecmath.Vec2(c.Radius, c.Radius)
}

func (c Circle) validate() error {
	if c.Radius <= 0 {
		return fmt.Errorf("circle has non-positive radius %g", c.Radius)
	}
	return nil
}

// Entity is a physical body in the arena.
type Entity struct {
	Pos          vecmath.Vector3D
	PredictedPos vecmath.Vector3D
	Velocity     vecmath.Vector3D

	Shape Shape
	Role  Role

	Hits     int     // Remaining hits, bricks only
	Drag     float64 // Velocity multiplier per tick, in (0, 1]
	Reflects bool    // Elastic wall response when true
	Active   bool
}

// NewPaddle creates an active paddle centred at pos.
func NewPaddle(pos vecmath.Vector3D, width, height, drag float64) Entity {
	return Entity{
		Pos:          pos,
		PredictedPos: pos,
		Shape:        Rect{Width: width, Height: height},
		Role:         RolePaddle,
		Drag:         drag,
		Active:       true,
	}
}

// NewBall creates an active ball centred at pos.
func NewBall(pos vecmath.Vector3D, radius, drag float64, reflects bool) Entity {
	return Entity{
		Pos:          pos,
		PredictedPos: pos,
		Shape:        Circle{Radius: radius},
		Role:         RoleBall,
		Drag:         drag,
		Reflects:     reflects,
		Active:       true,
	}
}

// NewBrick creates a brick that absorbs the given number of hits.
// A brick with zero hits starts inactive.
func NewBrick(pos vecmath.Vector3D, width, height float64, hits int, drag float64) Entity {
	return Entity{
		Pos:          pos,
		PredictedPos: pos,
		Shape:        Rect{Width: width, Height: height},
		Role:         RoleBrick,
		Hits:         hits,
		Drag:         drag,
		Active:       hits > 0,
	}
}

// IsRect reports whether the entity has rectangular geometry.
func (e *Entity) IsRect() bool {
	_, ok := e.Shape.(Rect)
	return ok
}

// IsCircle reports whether the entity has circular geometry.
func (e *Entity) IsCircle() bool {
	_, ok := e.Shape.(Circle)
	return ok
}

// Radius returns the circle radius, or 0 for non-circles.
func (e *Entity) Radius() float64 {
	if c, ok := e.Shape.(Circle); ok {
		return c.Radius
	}
	return 0
}

// Validate checks the geometry and drag preconditions.
func (e *Entity) Validate() error {
	if e.Shape == nil {
		return fmt.Errorf("%s has no shape", e.Role)
	}
	if err := e.Shape.validate(); err != nil {
		return err
	}
	if e.Drag <= 0 || e.Drag > 1 {
		return fmt.Errorf("%s drag %g outside (0, 1]", e.Role, e.Drag)
	}
	if e.Hits < 0 {
		return fmt.Errorf("%s has negative hits %d", e.Role, e.Hits)
	}
	return nil
}
