package physics

import (
	"math"

	"github.com/jstraceski/BreakJoe/internal/vecmath"
)

// Contact describes a penetrating rectangle/circle pair.
type Contact struct {
	Rect   ID
	Circle ID
	Point  vecmath.Vector3D // Closest point on the rectangle perimeter
	Dist   float64          // Distance from the circle centre to Point
	Inside bool             // Circle centre lies within the rectangle
}

// Corners returns the rectangle corners around the predicted centre in the
// order top-left, top-right, bottom-right, bottom-left.
func Corners(center vecmath.Vector3D, r Rect) [4]vecmath.Vector3D {
	hw, hh := r.Width/2, r.Height/2
	return [4]vecmath.Vector3D{
		center.Add(vecmath.Vec2(-hw, hh)),
		center.Add(vecmath.Vec2(hw, hh)),
		center.Add(vecmath.Vec2(hw, -hh)),
		center.Add(vecmath.Vec2(-hw, -hh)),
	}
}

// ClosestPerimeterPoint returns the point on the rectangle's perimeter
// nearest to p, checking the edges top, right, bottom, left. Ties keep the
// earlier edge.
func ClosestPerimeterPoint(center vecmath.Vector3D, r Rect, p vecmath.Vector3D) (vecmath.Vector3D, float64) {
	c := Corners(center, r)
	best := vecmath.Zero
	bestSqr := math.Inf(1)
	for i := range c {
		q := vecmath.ClosestPointOnSegment(p, c[i], c[(i+1)%4])
		if d := q.DistanceSqr(p); d < bestSqr {
			best, bestSqr = q, d
		}
	}
	return best, bestSqr
}

// Detect tests a rectangle and a circle at their predicted positions. It is a
// pure query: neither entity is modified.
//
// A pair collides when the circle centre is closer to the perimeter than the
// radius, or when the centre lies inside the rectangle.
func Detect(rectID ID, rect *Entity, circleID ID, circle *Entity) (Contact, bool) {
	r, ok := rect.Shape.(Rect)
	if !ok {
		return Contact{}, false
	}
	c, ok := circle.Shape.(Circle)
	if !ok || !rect.Active || !circle.Active {
		return Contact{}, false
	}

	center := circle.PredictedPos
	point, distSqr := ClosestPerimeterPoint(rect.PredictedPos, r, center)
	dist := math.Sqrt(distSqr)
	inside := contains(rect.PredictedPos, r, center)
	if dist >= c.Radius && !inside {
		return Contact{}, false
	}
	return Contact{
		Rect:   rectID,
		Circle: circleID,
		Point:  point,
		Dist:   dist,
		Inside: inside,
	}, true
}

// contains reports whether p lies strictly inside the rectangle.
func contains(center vecmath.Vector3D, r Rect, p vecmath.Vector3D) bool {
	d := p.Sub(center)
	return math.Abs(d.X()) < r.Width/2 && math.Abs(d.Y()) < r.Height/2
}

// Pair is an unordered rectangle/circle pair in arena iteration order.
type Pair struct {
	Rect   ID
	Circle ID
}

// Pairs lists every rectangle/circle pair of active entities exactly once.
// Rectangle/rectangle and circle/circle pairs are never produced. Pairs
// involving the circle skip are omitted; pass NoID to keep all of them.
func Pairs(a *Arena, skip ID) []Pair {
	ids := a.ids
	var out []Pair
	for i := range ids {
		ei := &a.entities[i]
		if !ei.Active {
			continue
		}
		for j := i + 1; j < len(ids); j++ {
			ej := &a.entities[j]
			if !ej.Active {
				continue
			}
			switch {
			case ei.IsRect() && ej.IsCircle():
				if ids[j] != skip {
					out = append(out, Pair{Rect: ids[i], Circle: ids[j]})
				}
			case ei.IsCircle() && ej.IsRect():
				if ids[i] != skip {
					out = append(out, Pair{Rect: ids[j], Circle: ids[i]})
				}
			}
		}
	}
	return out
}
