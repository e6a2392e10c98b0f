package physics

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/jstraceski/BreakJoe/internal/vecmath"
)

const eps = 1e-9

func TestIntegrateClampsSpeed(t *testing.T) {
	tests := []struct {
		name     string
		velocity vecmath.Vector3D
		drag     float64
	}{
		{"fast diagonal", vecmath.Vec2(30, 40), 1},
		{"fast with drag", vecmath.Vec2(-100, 0), 0.95},
		{"slow", vecmath.Vec2(1, 2), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewBall(vecmath.Vec2(50, 50), 2, tt.drag, true)
			e.Velocity = tt.velocity
			Integrate(&e, DefaultMaxSpeed)

			if s := e.Velocity.Magnitude(); s > DefaultMaxSpeed+eps {
				t.Errorf("speed = %v, expected <= %v", s, DefaultMaxSpeed)
			}
			if !e.PredictedPos.ApproxEqual(e.Pos.Add(e.Velocity), eps) {
				t.Errorf("PredictedPos = %v, expected pos + velocity", e.PredictedPos)
			}
		})
	}

	e := NewBall(vecmath.Vec2(0, 0), 1, 1, true)
	e.Velocity = vecmath.Vec2(30, 40)
	Integrate(&e, 10)
	if !e.Velocity.ApproxEqual(vecmath.Vec2(6, 8), eps) {
		t.Errorf("clamped velocity = %v, expected (6, 8, 0)", e.Velocity)
	}
}

func TestIntegrateInactiveDoesNotMove(t *testing.T) {
	e := NewBrick(vecmath.Vec2(10, 10), 4, 2, 0, 0.95)
	e.Velocity = vecmath.Vec2(5, 5)
	Integrate(&e, DefaultMaxSpeed)
	if e.PredictedPos != e.Pos {
		t.Errorf("inactive entity predicted %v, expected %v", e.PredictedPos, e.Pos)
	}
}

func TestIntegrateNoDragRoundTrip(t *testing.T) {
	const n = 25
	start := vecmath.Vec2(100, 200)
	v := vecmath.Vec2(1.5, -0.5)

	e := NewBall(start, 3, 1, true)
	e.Velocity = v
	for range n {
		Integrate(&e, DefaultMaxSpeed)
		e.Pos = e.PredictedPos
	}

	expected := start.Add(v.Scale(n))
	if !e.Pos.ApproxEqual(expected, 1e-9) {
		t.Errorf("after %d ticks pos = %v, expected %v", n, e.Pos, expected)
	}
	if e.Velocity != v {
		t.Errorf("velocity changed to %v", e.Velocity)
	}
}

func TestResolveBoundsRightWall(t *testing.T) {
	b := Bounds{Width: 100, Height: 100}

	tests := []struct {
		name     string
		reflects bool
		expectVX float64
	}{
		{"absorbing", false, 0},
		{"reflecting", true, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewBall(vecmath.Vec2(97, 50), 2, 1, tt.reflects)
			e.Velocity = vecmath.Vec2(5, 1)
			Integrate(&e, DefaultMaxSpeed)

			n, hit := ResolveBounds(&e, b)
			if !hit {
				t.Fatal("expected wall hit")
			}
			if !n.ApproxEqual(NormalRight, eps) {
				t.Errorf("normal = %v, expected %v", n, NormalRight)
			}
			if edge := e.PredictedPos.X() + 2; math.Abs(edge-b.Width) > eps {
				t.Errorf("right edge at %v, expected %v", edge, b.Width)
			}
			if math.Abs(e.Velocity.X()-tt.expectVX) > eps {
				t.Errorf("vx = %v, expected %v", e.Velocity.X(), tt.expectVX)
			}
			if e.Velocity.Y() != 1 {
				t.Errorf("tangential velocity changed to %v", e.Velocity.Y())
			}
		})
	}
}

func TestResolveBoundsCorner(t *testing.T) {
	b := Bounds{Width: 100, Height: 100}
	e := NewBall(vecmath.Vec2(1, 99), 2, 1, true)
	e.Velocity = vecmath.Vec2(-3, 4)
	Integrate(&e, DefaultMaxSpeed)

	n, hit := ResolveBounds(&e, b)
	if !hit {
		t.Fatal("expected wall hit")
	}
	expectedN := vecmath.Vec2(1, -1).Normalize()
	if !n.ApproxEqual(expectedN, eps) {
		t.Errorf("normal = %v, expected %v", n, expectedN)
	}
	if !e.PredictedPos.ApproxEqual(vecmath.Vec2(2, 98), eps) {
		t.Errorf("PredictedPos = %v, expected (2, 98, 0)", e.PredictedPos)
	}
	if !e.Velocity.ApproxEqual(vecmath.Vec2(3, -4), eps) {
		t.Errorf("velocity = %v, expected both components mirrored", e.Velocity)
	}
}

func TestResolveBoundsIdempotent(t *testing.T) {
	b := Bounds{Width: 100, Height: 100}
	e := NewPaddle(vecmath.Vec2(-20, 50), 40, 10, 0.95)
	e.Velocity = vecmath.Vec2(-3, 0)
	Integrate(&e, DefaultMaxSpeed)
	ResolveBounds(&e, b)

	before := e
	if _, hit := ResolveBounds(&e, b); hit {
		t.Error("second resolve reported a hit")
	}
	if e.PredictedPos != before.PredictedPos || e.Velocity != before.Velocity {
		t.Errorf("second resolve changed entity: %v/%v -> %v/%v",
			before.PredictedPos, before.Velocity, e.PredictedPos, e.Velocity)
	}
}

// setup places a rectangle and a circle at the given predicted positions.
func setup(rect Entity, rectPos vecmath.Vector3D, circle Entity, circlePos vecmath.Vector3D) (*Arena, ID, ID) {
	a := NewArena()
	rect.Pos, rect.PredictedPos = rectPos, rectPos
	circle.Pos, circle.PredictedPos = circlePos, circlePos
	rid := a.Add(rect)
	cid := a.Add(circle)
	return a, rid, cid
}

func TestDetectScenarios(t *testing.T) {
	brick := NewBrick(vecmath.Zero, 10, 10, 1, 0.95)
	ball := NewBall(vecmath.Zero, 2, 1, true)

	t.Run("no collision above", func(t *testing.T) {
		a, rid, cid := setup(brick, vecmath.Vec2(0, 0), ball, vecmath.Vec2(0, 10))
		point, distSqr := ClosestPerimeterPoint(vecmath.Zero, Rect{10, 10}, vecmath.Vec2(0, 10))
		if !point.ApproxEqual(vecmath.Vec2(0, 5), eps) || math.Abs(distSqr-25) > eps {
			t.Errorf("closest = %v (d^2=%v), expected (0, 5) at distance 5", point, distSqr)
		}
		if _, hit := Detect(rid, a.Get(rid), cid, a.Get(cid)); hit {
			t.Error("expected no collision")
		}
	})

	t.Run("penetrating top edge", func(t *testing.T) {
		a, rid, cid := setup(brick, vecmath.Vec2(0, 0), ball, vecmath.Vec2(0, 6))
		c, hit := Detect(rid, a.Get(rid), cid, a.Get(cid))
		if !hit {
			t.Fatal("expected collision")
		}
		if !c.Point.ApproxEqual(vecmath.Vec2(0, 5), eps) || math.Abs(c.Dist-1) > eps {
			t.Errorf("contact = %v dist %v, expected (0, 5) dist 1", c.Point, c.Dist)
		}

		Respond(a, c, DefaultPushOut, DefaultPaddleDepth)
		if got := a.Get(cid).PredictedPos; !got.ApproxEqual(vecmath.Vec2(0, 7.2), eps) {
			t.Errorf("pushed to %v, expected (0, 7.2, 0)", got)
		}
	})
}

func TestDetectOutsideNeverCollides(t *testing.T) {
	r := NewBrick(vecmath.Zero, 10, 6, 1, 0.95)
	ball := NewBall(vecmath.Zero, 2, 1, true)

	// Expanded half extents are 7 and 5.
	positions := []vecmath.Vector3D{
		vecmath.Vec2(7, 0), vecmath.Vec2(-7, 0), vecmath.Vec2(0, 5), vecmath.Vec2(0, -5),
		vecmath.Vec2(7, 5), vecmath.Vec2(-9, 3), vecmath.Vec2(30, -30), vecmath.Vec2(2, 12),
	}
	for _, p := range positions {
		a, rid, cid := setup(r, vecmath.Zero, ball, p)
		if _, hit := Detect(rid, a.Get(rid), cid, a.Get(cid)); hit {
			t.Errorf("circle at %v should not collide", p)
		}
	}
}

func TestDetectCentreInsideCollides(t *testing.T) {
	sizes := []Rect{{10, 10}, {100, 10}, {4, 30}}
	for _, s := range sizes {
		brick := NewBrick(vecmath.Zero, s.Width, s.Height, 1, 0.95)
		ball := NewBall(vecmath.Zero, 2, 1, true)
		center := vecmath.Vec2(40, 40)
		a, rid, cid := setup(brick, center, ball, center)

		c, hit := Detect(rid, a.Get(rid), cid, a.Get(cid))
		if !hit {
			t.Errorf("%vx%v: circle at rectangle centre should collide", s.Width, s.Height)
			continue
		}
		if !c.Inside {
			t.Errorf("%vx%v: contact should be marked inside", s.Width, s.Height)
		}
	}

	// Square: top edge wins the tie and the circle is pushed out above it.
	brick := NewBrick(vecmath.Zero, 10, 10, 1, 0.95)
	a, rid, cid := setup(brick, vecmath.Zero, NewBall(vecmath.Zero, 2, 1, true), vecmath.Zero)
	c, _ := Detect(rid, a.Get(rid), cid, a.Get(cid))
	Respond(a, c, DefaultPushOut, DefaultPaddleDepth)
	if got := a.Get(cid).PredictedPos; !got.ApproxEqual(vecmath.Vec2(0, 7.2), eps) {
		t.Errorf("pushed to %v, expected (0, 7.2, 0)", got)
	}
}

func TestRespondBrickDepletes(t *testing.T) {
	brick := NewBrick(vecmath.Zero, 10, 10, 1, 0.95)
	ball := NewBall(vecmath.Zero, 2, 1, true)
	ball.Velocity = vecmath.Vec2(0, -1)
	a, rid, cid := setup(brick, vecmath.Zero, ball, vecmath.Vec2(0, 6))

	c, _ := Detect(rid, a.Get(rid), cid, a.Get(cid))
	resp := Respond(a, c, DefaultPushOut, DefaultPaddleDepth)

	if resp.Score != 1 {
		t.Errorf("score = %d, expected 1", resp.Score)
	}
	if !resp.Depleted || a.Get(rid).Active {
		t.Error("brick with one hit should become inactive")
	}
	if a.Get(rid).Hits != 0 {
		t.Errorf("hits = %d, expected 0", a.Get(rid).Hits)
	}
	if v := a.Get(cid).Velocity; !v.ApproxEqual(vecmath.Vec2(0, 1), eps) {
		t.Errorf("velocity = %v, expected reflected (0, 1, 0)", v)
	}
}

func TestRespondMultiHitBrick(t *testing.T) {
	brick := NewBrick(vecmath.Zero, 10, 10, 3, 0.95)
	a, rid, cid := setup(brick, vecmath.Zero, NewBall(vecmath.Zero, 2, 1, true), vecmath.Vec2(0, 6))

	c, _ := Detect(rid, a.Get(rid), cid, a.Get(cid))
	resp := Respond(a, c, DefaultPushOut, DefaultPaddleDepth)
	if resp.Score != 3 || resp.Depleted {
		t.Errorf("score = %d depleted = %v, expected 3 and false", resp.Score, resp.Depleted)
	}
	if !resp.Normal.ApproxEqual(vecmath.Vec2(0, 1), eps) {
		t.Errorf("normal = %v, expected (0, 1, 0)", resp.Normal)
	}
	if a.Get(rid).Hits != 2 || !a.Get(rid).Active {
		t.Errorf("hits = %d active = %v, expected 2 and true", a.Get(rid).Hits, a.Get(rid).Active)
	}
}

func TestRespondPaddleNormalPointsUp(t *testing.T) {
	paddle := NewPaddle(vecmath.Zero, 100, 10, 0.95)
	ball := NewBall(vecmath.Zero, 2, 1, true)
	ball.Velocity = vecmath.Vec2(-1, 0)
	// Ball touches the right side of the paddle.
	a, rid, cid := setup(paddle, vecmath.Vec2(100, 20), ball, vecmath.Vec2(151, 20))

	c, hit := Detect(rid, a.Get(rid), cid, a.Get(cid))
	if !hit {
		t.Fatal("expected collision with paddle side")
	}
	resp := Respond(a, c, DefaultPushOut, DefaultPaddleDepth)

	origin := vecmath.Vec2(100, 20-DefaultPaddleDepth*10)
	if want := a.Get(cid).PredictedPos.Sub(origin).Normalize(); !resp.Normal.ApproxEqual(want, eps) {
		t.Errorf("normal = %v, expected paddle normal %v", resp.Normal, want)
	}

	v := a.Get(cid).Velocity
	if v.Y() <= 0 {
		t.Errorf("velocity %v should point upward after paddle bounce", v)
	}
	if v.X() >= 0 {
		t.Errorf("velocity %v should keep moving left", v)
	}
}

func TestRespondGrazingPaddleImpulse(t *testing.T) {
	paddle := NewPaddle(vecmath.Zero, 100, 10, 0.95)
	paddle.Velocity = vecmath.Vec2(2, 0)
	ball := NewBall(vecmath.Zero, 2, 1, true)
	ball.Velocity = vecmath.Vec2(0, 1)
	a, rid, cid := setup(paddle, vecmath.Vec2(100, 20), ball, vecmath.Vec2(100, 26))

	c, _ := Detect(rid, a.Get(rid), cid, a.Get(cid))
	Respond(a, c, DefaultPushOut, DefaultPaddleDepth)

	// Moving away: boost along the normal by |paddle velocity| then add half of it.
	if v := a.Get(cid).Velocity; !v.ApproxEqual(vecmath.Vec2(1, 3), eps) {
		t.Errorf("velocity = %v, expected (1, 3, 0)", v)
	}
}

func TestPairs(t *testing.T) {
	a := NewArena()
	r1 := a.Add(NewBrick(vecmath.Vec2(50, 150), 20, 10, 1, 0.95))
	c1 := a.Add(NewBall(vecmath.Vec2(100, 100), 2, 1, true))
	dead := a.Add(NewBrick(vecmath.Vec2(100, 150), 20, 10, 0, 0.95))
	r2 := a.Add(NewPaddle(vecmath.Vec2(100, 20), 100, 10, 0.95))
	c2 := a.Add(NewBall(vecmath.Vec2(150, 100), 2, 1, true))

	tests := []struct {
		name string
		skip ID
		want []Pair
	}{
		{"all pairs", NoID, []Pair{{r1, c1}, {r1, c2}, {r2, c1}, {r2, c2}}},
		{"skip first circle", c1, []Pair{{r1, c2}, {r2, c2}}},
		{"skip last circle", c2, []Pair{{r1, c1}, {r2, c1}}},
		{"skip ignores rects", r1, []Pair{{r1, c1}, {r1, c2}, {r2, c1}, {r2, c2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pairs(a, tt.skip)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Pairs() = %v, expected %v", got, tt.want)
			}
			for _, p := range got {
				if p.Rect == dead || p.Circle == dead {
					t.Errorf("inactive brick %d paired in %v", dead, p)
				}
			}
		})
	}
}

func TestAdvancePaddleEventCarriesPaddleNormal(t *testing.T) {
	a, pid, bid := newScene()
	ball := a.Get(bid)
	// Off-centre hit on the paddle top: contact normal is straight up, the
	// paddle normal leans right.
	ball.Pos = vecmath.Vec2(140, 26.5)
	ball.Velocity = vecmath.Vec2(0, -1)

	res := Advance(a, Params{Bounds: Bounds{200, 200}, MaxSpeed: 10, Lives: 3})

	var ev *Event
	for i := range res.Events {
		if res.Events[i].Kind == EventPaddle {
			ev = &res.Events[i]
		}
	}
	if ev == nil {
		t.Fatalf("missing paddle event in %+v", res.Events)
	}
	if ev.Other != pid || ev.Entity != bid {
		t.Errorf("event entities = %d/%d, expected %d/%d", ev.Entity, ev.Other, bid, pid)
	}
	if !ev.Point.ApproxEqual(vecmath.Vec2(140, 25), eps) {
		t.Errorf("contact point = %v, expected (140, 25, 0)", ev.Point)
	}
	want := vecmath.Vec2(40, 107.2).Normalize()
	if !ev.Normal.ApproxEqual(want, 1e-6) {
		t.Errorf("event normal = %v, expected paddle normal %v", ev.Normal, want)
	}
}

func TestAdvanceIgnoresInactiveBrick(t *testing.T) {
	a, _, bid := newScene()
	brick := NewBrick(vecmath.Vec2(100, 101), 20, 10, 2, 0.95)
	brick.Active = false
	id := a.Add(brick)
	a.Get(bid).Velocity = vecmath.Vec2(0, 1)

	res := Advance(a, Params{Bounds: Bounds{200, 200}, MaxSpeed: 10, Lives: 3})

	if res.ScoreDelta != 0 || len(res.Depleted) != 0 {
		t.Errorf("inactive brick scored: delta=%d depleted=%v", res.ScoreDelta, res.Depleted)
	}
	for _, ev := range res.Events {
		if ev.Kind == EventBrick {
			t.Errorf("unexpected brick event %+v", ev)
		}
	}
	if got := a.Get(id).Hits; got != 2 {
		t.Errorf("inactive brick hits = %d, expected 2", got)
	}
	if got := a.Get(bid).Pos; !got.ApproxEqual(vecmath.Vec2(100, 101), eps) {
		t.Errorf("ball at %v, expected to pass through to (100, 101, 0)", got)
	}
}

func newScene() (*Arena, ID, ID) {
	a := NewArena()
	pid := a.Add(NewPaddle(vecmath.Vec2(100, 20), 100, 10, 0.95))
	bid := a.Add(NewBall(vecmath.Vec2(100, 100), 2, 1, true))
	return a, pid, bid
}

func TestAdvanceBrickScenario(t *testing.T) {
	a, _, bid := newScene()
	brick := a.Add(NewBrick(vecmath.Vec2(100, 150), 20, 10, 1, 0.95))
	ball := a.Get(bid)
	ball.Pos = vecmath.Vec2(100, 143)
	ball.Velocity = vecmath.Vec2(0, 1)

	res := Advance(a, Params{Bounds: Bounds{200, 200}, MaxSpeed: 10, Lives: 3})

	if res.ScoreDelta != 1 {
		t.Errorf("ScoreDelta = %d, expected 1", res.ScoreDelta)
	}
	if len(res.Depleted) != 1 || res.Depleted[0] != brick {
		t.Errorf("Depleted = %v, expected [%d]", res.Depleted, brick)
	}
	if a.Get(brick).Active {
		t.Error("brick should be inactive")
	}
	if !res.LevelCleared {
		t.Error("level should be cleared when the last brick depletes")
	}
	if got := a.Get(bid).Pos; !got.ApproxEqual(vecmath.Vec2(100, 142.8), eps) {
		t.Errorf("ball committed at %v, expected (100, 142.8, 0)", got)
	}

	var found bool
	for _, ev := range res.Events {
		if ev.Kind == EventBrick && ev.Other == brick && ev.Score == 1 && ev.Depleted {
			found = true
		}
	}
	if !found {
		t.Errorf("missing brick event in %+v", res.Events)
	}
}

func TestAdvanceBallLost(t *testing.T) {
	a, pid, bid := newScene()
	a.Add(NewBrick(vecmath.Vec2(100, 150), 20, 10, 2, 0.95))
	ball := a.Get(bid)
	ball.Pos = vecmath.Vec2(100, 5)
	ball.Velocity = vecmath.Vec2(0, -1)

	res := Advance(a, Params{Bounds: Bounds{200, 200}, MaxSpeed: 10, Lives: 3})

	if !res.BallLost || !res.Captured {
		t.Errorf("BallLost = %v Captured = %v, expected both true", res.BallLost, res.Captured)
	}
	if res.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", res.Lives)
	}
	if res.GameOver {
		t.Error("game should not be over with lives left")
	}
	if v := a.Get(bid).Velocity; v != vecmath.Zero {
		t.Errorf("velocity = %v, expected zero", v)
	}
	expected := a.Get(pid).Pos.Add(DefaultCaptureOffset)
	if got := a.Get(bid).Pos; !got.ApproxEqual(expected, eps) {
		t.Errorf("ball at %v, expected %v", got, expected)
	}
	if res.LevelCleared {
		t.Error("level should not be cleared")
	}
}

func TestAdvanceLastLifeIsGameOver(t *testing.T) {
	a, _, bid := newScene()
	a.Add(NewBrick(vecmath.Vec2(100, 150), 20, 10, 1, 0.95))
	a.Get(bid).Pos = vecmath.Vec2(100, 5)

	res := Advance(a, Params{Bounds: Bounds{200, 200}, Lives: 1})
	if !res.GameOver || res.Lives != 0 {
		t.Errorf("GameOver = %v Lives = %d, expected true and 0", res.GameOver, res.Lives)
	}
}

func TestAdvanceCapturedBallFollowsPaddle(t *testing.T) {
	a, pid, bid := newScene()
	brick := a.Add(NewBrick(vecmath.Vec2(100, 32), 20, 4, 1, 0.95))
	a.Get(pid).Velocity = vecmath.Vec2(3, 0)
	a.Get(bid).Velocity = vecmath.Vec2(0, 5)

	res := Advance(a, Params{Bounds: Bounds{200, 200}, Captured: true, Lives: 3})

	if !res.Captured || res.BallLost {
		t.Errorf("Captured = %v BallLost = %v, expected true and false", res.Captured, res.BallLost)
	}
	expected := a.Get(pid).Pos.Add(DefaultCaptureOffset)
	if got := a.Get(bid).Pos; !got.ApproxEqual(expected, eps) {
		t.Errorf("captured ball at %v, expected %v", got, expected)
	}
	if a.Get(bid).Velocity != vecmath.Zero {
		t.Errorf("captured ball velocity = %v, expected zero", a.Get(bid).Velocity)
	}
	if !a.Get(brick).Active || res.ScoreDelta != 0 {
		t.Error("captured ball must not collide")
	}
}

func TestAdvancePanicsOnMalformedEntity(t *testing.T) {
	a, _, _ := newScene()
	a.Add(NewBrick(vecmath.Vec2(50, 50), 0, 10, 1, 0.95))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for zero-width brick")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "non-positive extent") {
			t.Errorf("panic message = %v", r)
		}
	}()
	Advance(a, Params{Bounds: Bounds{200, 200}, Lives: 3})
}

func TestAdvancePanicsWithoutBall(t *testing.T) {
	a := NewArena()
	a.Add(NewPaddle(vecmath.Vec2(100, 20), 100, 10, 0.95))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for arena without ball")
		}
	}()
	Advance(a, Params{Bounds: Bounds{200, 200}})
}
