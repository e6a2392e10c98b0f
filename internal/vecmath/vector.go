// Package vecmath provides the 3-component vector and 3x3 matrix kernel used by
// the physics engine. Both types are thin value wrappers over mathgl's float64
// types with zero-safe division, normalization and projection.
package vecmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the default tolerance for approximate comparisons.
const Epsilon = 1e-9

// Vector3D is a three component float64 vector (X, Y, Z).
type Vector3D mgl64.Vec3

// Zero is the zero vector.
var Zero = Vector3D{}

// Vec creates a vector from its components.
func Vec(x, y, z float64) Vector3D {
	return Vector3D{x, y, z}
}

// Vec2 creates a vector in the XY plane.
func Vec2(x, y float64) Vector3D {
	return Vector3D{x, y, 0}
}

func (v Vector3D) gl() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

// X returns the first component.
func (v Vector3D) X() float64 { return v[0] }

// Y returns the second component.
func (v Vector3D) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vector3D) Z() float64 { return v[2] }

// Add returns v + o.
func (v Vector3D) Add(o Vector3D) Vector3D {
	return Vector3D(v.gl().Add(o.gl()))
}

// Sub returns v - o.
func (v Vector3D) Sub(o Vector3D) Vector3D {
	return Vector3D(v.gl().Sub(o.gl()))
}

// Scale returns v * s.
func (v Vector3D) Scale(s float64) Vector3D {
	return Vector3D(v.gl().Mul(s))
}

// Div returns v / s. Dividing by zero returns v unchanged.
func (v Vector3D) Div(s float64) Vector3D {
	if s == 0 {
		return v
	}
	return Vector3D(v.gl().Mul(1 / s))
}

// Negate returns -v.
func (v Vector3D) Negate() Vector3D {
	return Vector3D{-v[0], -v[1], -v[2]}
}

// Dot returns the dot product of v and o.
func (v Vector3D) Dot(o Vector3D) float64 {
	return v.gl().Dot(o.gl())
}

// Cross returns the cross product v x o.
func (v Vector3D) Cross(o Vector3D) Vector3D {
	return Vector3D(v.gl().Cross(o.gl()))
}

// Magnitude returns the euclidean length of v.
func (v Vector3D) Magnitude() float64 {
	return v.gl().Len()
}

// MagnitudeSqr returns the squared length of v.
func (v Vector3D) MagnitudeSqr() float64 {
	return v.gl().LenSqr()
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to the zero vector.
func (v Vector3D) Normalize() Vector3D {
	l := v.Magnitude()
	if l == 0 {
		return Zero
	}
	return v.Div(l)
}

// Project returns the projection of v onto o.
// Projecting onto the zero vector yields the zero vector.
func (v Vector3D) Project(o Vector3D) Vector3D {
	d := o.MagnitudeSqr()
	if d == 0 {
		return Zero
	}
	return o.Scale(v.Dot(o) / d)
}

// ClampMagnitude rescales v to length max when it is longer than max.
// Direction is preserved.
func (v Vector3D) ClampMagnitude(max float64) Vector3D {
	l := v.Magnitude()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// DistanceSqr returns the squared distance between v and o.
func (v Vector3D) DistanceSqr(o Vector3D) float64 {
	return v.Sub(o).MagnitudeSqr()
}

// ApproxEqual reports whether v and o differ by at most eps per component.
func (v Vector3D) ApproxEqual(o Vector3D, eps float64) bool {
	return v.gl().ApproxEqualThreshold(o.gl(), eps)
}

// IsFinite reports whether every component is a finite number.
func (v Vector3D) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// String formats the vector as "(x, y, z)".
func (v Vector3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}

// ClosestPointOnSegment returns the point on segment [a, b] nearest to p.
// The projection factor is clamped to [0, 1]; a degenerate segment returns a.
func ClosestPointOnSegment(p, a, b Vector3D) Vector3D {
	ab := b.Sub(a)
	denom := ab.MagnitudeSqr()
	if denom == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / denom
	t = math.Max(0, math.Min(1, t))
	return a.Add(ab.Scale(t))
}
