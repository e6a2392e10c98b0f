package game

import "github.com/jstraceski/BreakJoe/internal/core"

// autopilotDeadZone is how far the ball may drift from the paddle centre
// before the autopilot pushes the paddle.
const autopilotDeadZone = 8.0

// Autopilot returns the input a simple player would give this tick: launch a
// captured ball and steer the paddle under the ball otherwise. The paddle
// velocity is considered so the autopilot does not overshoot.
func Autopilot(s *Session) core.InputFrame {
	in := core.NewInputFrame()
	if s.Phase() == core.PhaseCaptured {
		in.Set(core.ActionLaunch)
		return in
	}
	if s.Phase() != core.PhasePlaying {
		return in
	}

	paddle, ball := s.Paddle(), s.Ball()
	// Where the paddle ends up if left alone for a few ticks
	lookahead := paddle.Pos.X() + paddle.Velocity.X()*4
	target := ball.Pos.X() + ball.Velocity.X()*2

	switch {
	case target < lookahead-autopilotDeadZone:
		in.Set(core.ActionLeft)
	case target > lookahead+autopilotDeadZone:
		in.Set(core.ActionRight)
	}
	return in
}
