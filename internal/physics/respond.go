package physics

import "github.com/jstraceski/BreakJoe/internal/vecmath"

// Response tuning.
const (
	DefaultPushOut     = 1.1 // Push-out distance as a multiple of the radius
	DefaultPaddleDepth = 10  // Paddle normal origin depth in paddle heights
	MomentumTransfer   = 0.5 // Share of the rectangle velocity given to the circle
)

// Response is the outcome of resolving one contact.
type Response struct {
	Score    int              // Hits the brick had before this contact
	Depleted bool             // The brick became inactive
	Normal   vecmath.Vector3D // Normal the circle velocity was resolved against
}

// Respond resolves a contact: it pushes the circle out of the rectangle,
// reflects or boosts its velocity, transfers rectangle momentum and damages
// bricks.
func Respond(a *Arena, c Contact, pushOut, paddleDepth float64) Response {
	rect := a.Get(c.Rect)
	circle := a.Get(c.Circle)
	if rect == nil || circle == nil {
		return Response{}
	}

	n := circle.PredictedPos.Sub(c.Point).Normalize()
	if c.Inside {
		n = n.Negate()
	}
	circle.PredictedPos = c.Point.Add(n.Scale(circle.Radius() * pushOut))

	if rect.Role == RolePaddle {
		h := rect.Shape.HalfExtents().Y() * 2
		origin := rect.PredictedPos.Sub(vecmath.Vec2(0, paddleDepth*h))
		n = circle.PredictedPos.Sub(origin).Normalize()
	}

	v := circle.Velocity
	if n.Dot(v) < 0 {
		v = v.Sub(v.Project(n).Scale(2))
	} else {
		v = v.Add(n.Scale(rect.Velocity.Magnitude()))
	}
	circle.Velocity = v.Add(rect.Velocity.Scale(MomentumTransfer))

	res := Response{Normal: n}
	if rect.Role == RoleBrick && rect.Hits > 0 {
		res.Score = rect.Hits
		rect.Hits--
		if rect.Hits == 0 {
			rect.Active = false
			res.Depleted = true
		}
	}
	return res
}
