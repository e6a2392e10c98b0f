package physics

import (
	"fmt"

	"github.com/jstraceski/BreakJoe/internal/vecmath"
)

// DefaultMaxSpeed is the speed limit applied to every entity per tick.
const DefaultMaxSpeed = 10

// DefaultCaptureOffset places a captured ball just above the paddle centre.
var DefaultCaptureOffset = vecmath.Vec2(0, 10)

// Params are the per-tick inputs to Advance.
type Params struct {
	Bounds        Bounds
	MaxSpeed      float64
	Captured      bool             // Ball rides on the paddle and never collides
	Lives         int              // Lives before the tick
	CaptureOffset vecmath.Vector3D // Zero means DefaultCaptureOffset
	PushOut       float64          // Zero means DefaultPushOut
	PaddleDepth   float64          // Zero means DefaultPaddleDepth
}

// EventKind classifies a physics event.
type EventKind int

const (
	EventWall EventKind = iota
	EventPaddle
	EventBrick
	EventBallLost
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventWall:
		return "wall"
	case EventPaddle:
		return "paddle"
	case EventBrick:
		return "brick"
	case EventBallLost:
		return "ball_lost"
	default:
		return "unknown"
	}
}

// Event reports something that happened during a tick.
type Event struct {
	Kind     EventKind
	Entity   ID // Entity that moved into the wall, or the circle of a contact
	Other    ID // Rectangle of a contact, NoID otherwise
	Point    vecmath.Vector3D
	Normal   vecmath.Vector3D
	Score    int
	Depleted bool
}

// TickResult summarises one call to Advance.
type TickResult struct {
	ScoreDelta   int
	Depleted     []ID // Bricks that became inactive this tick
	BallLost     bool
	Captured     bool // Ball is captured after the tick
	Lives        int  // Lives after the tick
	LevelCleared bool
	GameOver     bool
	Events       []Event
}

// Advance runs one fixed-timestep tick over the arena: integrate, resolve
// walls, resolve rectangle/circle contacts, commit, then evaluate ball loss and
// level completion. The arena must contain a paddle and a ball.
//
// Advance panics when an active entity has malformed geometry or drag.
func Advance(a *Arena, p Params) TickResult {
	p = p.withDefaults()
	mustValidate(a)

	paddleID, ok := a.First(RolePaddle)
	if !ok {
		panic("physics: arena has no paddle")
	}
	ballID, ok := a.First(RoleBall)
	if !ok {
		panic("physics: arena has no ball")
	}

	res := TickResult{Lives: p.Lives, Captured: p.Captured}

	if p.Captured {
		pin(a.Get(ballID), a.Get(paddleID), p.CaptureOffset)
	}

	IntegrateAll(a, p.MaxSpeed)

	a.Each(func(id ID, e *Entity) {
		if n, hit := ResolveBounds(e, p.Bounds); hit {
			res.Events = append(res.Events, Event{
				Kind:   EventWall,
				Entity: id,
				Other:  NoID,
				Point:  e.PredictedPos,
				Normal: n,
			})
		}
	})

	skip := NoID
	if p.Captured {
		skip = ballID
	}
	for _, pair := range Pairs(a, skip) {
		c, hit := Detect(pair.Rect, a.Get(pair.Rect), pair.Circle, a.Get(pair.Circle))
		if !hit {
			continue
		}
		rect := a.Get(pair.Rect)
		kind := EventBrick
		if rect.Role == RolePaddle {
			kind = EventPaddle
		}
		resp := Respond(a, c, p.PushOut, p.PaddleDepth)
		res.ScoreDelta += resp.Score
		if resp.Depleted {
			res.Depleted = append(res.Depleted, pair.Rect)
		}
		res.Events = append(res.Events, Event{
			Kind:     kind,
			Entity:   pair.Circle,
			Other:    pair.Rect,
			Point:    c.Point,
			Normal:   resp.Normal,
			Score:    resp.Score,
			Depleted: resp.Depleted,
		})
	}

	a.Each(func(_ ID, e *Entity) {
		e.Pos = e.PredictedPos
	})

	ball, paddle := a.Get(ballID), a.Get(paddleID)
	switch {
	case p.Captured:
		pin(ball, paddle, p.CaptureOffset)
	case ball.Pos.Y() < paddle.Pos.Y()-paddle.Shape.HalfExtents().Y():
		res.Events = append(res.Events, Event{
			Kind:   EventBallLost,
			Entity: ballID,
			Other:  paddleID,
			Point:  ball.Pos,
		})
		pin(ball, paddle, p.CaptureOffset)
		res.BallLost = true
		res.Captured = true
		res.Lives--
		res.GameOver = res.Lives <= 0
	}

	res.LevelCleared = a.ActiveBricks() == 0
	return res
}

// pin attaches the ball to the paddle and stops it.
func pin(ball, paddle *Entity, offset vecmath.Vector3D) {
	ball.Pos = paddle.Pos.Add(offset)
	ball.PredictedPos = ball.Pos
	ball.Velocity = vecmath.Zero
}

func (p Params) withDefaults() Params {
	if p.MaxSpeed <= 0 {
		p.MaxSpeed = DefaultMaxSpeed
	}
	if p.PushOut <= 0 {
		p.PushOut = DefaultPushOut
	}
	if p.PaddleDepth <= 0 {
		p.PaddleDepth = DefaultPaddleDepth
	}
	if p.CaptureOffset == vecmath.Zero {
		p.CaptureOffset = DefaultCaptureOffset
	}
	return p
}

// mustValidate panics on the first active entity that breaks a geometry or
// drag precondition.
func mustValidate(a *Arena) {
	a.Each(func(id ID, e *Entity) {
		if !e.Active {
			return
		}
		if err := e.Validate(); err != nil {
			panic(fmt.Sprintf("physics: entity %d: %v", id, err))
		}
	})
}
