package physics

import "github.com/jstraceski/BreakJoe/internal/vecmath"

// Bounds is the world rectangle [0, Width] x [0, Height] with y pointing up.
type Bounds struct {
	Width  float64
	Height float64
}

// Wall normals point back into the arena.
var (
	NormalLeft   = vecmath.Vec2(1, 0)
	NormalRight  = vecmath.Vec2(-1, 0)
	NormalBottom = vecmath.Vec2(0, 1)
	NormalTop    = vecmath.Vec2(0, -1)
)

// ResolveBounds clamps the predicted position of e into b and removes or
// reflects the velocity component along every violated wall. It returns the
// combined unit normal of the violated walls and whether any wall was hit.
//
// The four walls are tested independently and each violation is answered.
// Wall normals are orthogonal, so answering them in turn equals a per-axis
// response; the returned normal is their renormalised sum.
func ResolveBounds(e *Entity, b Bounds) (vecmath.Vector3D, bool) {
	if !e.Active {
		return vecmath.Zero, false
	}

	half := e.Shape.HalfExtents()
	p := e.PredictedPos
	x, y := p.X(), p.Y()

	var normals []vecmath.Vector3D
	if x-half.X() < 0 {
		x = half.X()
		normals = append(normals, NormalLeft)
	}
	if x+half.X() > b.Width {
		x = b.Width - half.X()
		normals = append(normals, NormalRight)
	}
	if y-half.Y() < 0 {
		y = half.Y()
		normals = append(normals, NormalBottom)
	}
	if y+half.Y() > b.Height {
		y = b.Height - half.Y()
		normals = append(normals, NormalTop)
	}
	if len(normals) == 0 {
		return vecmath.Zero, false
	}

	e.PredictedPos = vecmath.Vec(x, y, p.Z())

	var sum vecmath.Vector3D
	for _, n := range normals {
		e.Velocity = respondToNormal(e.Velocity, n, e.Reflects)
		sum = sum.Add(n)
	}
	return sum.Normalize(), true
}

// respondToNormal reflects v about n when reflects is set, otherwise it
// removes the component of v along n.
func respondToNormal(v, n vecmath.Vector3D, reflects bool) vecmath.Vector3D {
	proj := v.Project(n)
	if reflects {
		return v.Sub(proj.Scale(2))
	}
	return v.Sub(proj)
}
