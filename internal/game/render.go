package game

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/jstraceski/BreakJoe/internal/core"
	"github.com/jstraceski/BreakJoe/internal/lang"
	"github.com/jstraceski/BreakJoe/internal/physics"
)

// Minimum terminal size that still shows a playable field.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// Glyphs used to draw the field.
const (
	BrickRune  = '█'
	PaddleRune = '='
	BallRune   = '●'
	BorderRune = '─'
)

// hudRows is the number of rows above the playing field.
const hudRows = 2

// Render draws the current session state to the screen. The world is y-up
// and scaled to fill the area below the HUD.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}

	s.renderHUD(dst)

	s.arena.Each(func(_ physics.ID, e *physics.Entity) {
		if !e.Active {
			return
		}
		switch e.Role {
		case physics.RoleBrick:
			s.renderRect(dst, e, BrickRune, core.ColorForHits(e.Hits))
		case physics.RolePaddle:
			s.renderRect(dst, e, PaddleRune, core.ColorWhite)
		}
	})

	// Ball last so it stays visible over bricks
	ball := s.arena.Get(s.ball)
	x, y := s.toCell(dst, ball.Pos.X(), ball.Pos.Y())
	dst.SetColor(x, y, BallRune, core.ColorYellow)

	s.renderOverlay(dst)
}

// renderHUD draws the score, level and lives using the session language.
func (s *Session) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("%s: %d", s.text.Text(lang.KeyScore), s.score))

	levelText := fmt.Sprintf("%s: %d/%d", s.text.Text(lang.KeyLevel), s.levelIndex+1, len(s.levels))
	dst.DrawTextCentered(0, levelText, core.ColorDefault)

	livesText := fmt.Sprintf("%s: %d", s.text.Text(lang.KeyLives), s.lives)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(livesText)-1, 0, livesText)

	for x := range dst.Width() {
		dst.SetColor(x, 1, BorderRune, core.ColorGray)
	}
}

// renderRect fills the cells covered by a rectangle entity, at least one cell.
func (s *Session) renderRect(dst *core.Screen, e *physics.Entity, r rune, c core.Color) {
	half := e.Shape.HalfExtents()
	x0, y0 := s.toCell(dst, e.Pos.X()-half.X(), e.Pos.Y()+half.Y())
	x1, y1 := s.toCell(dst, e.Pos.X()+half.X(), e.Pos.Y()-half.Y())
	// Leave a gap between neighbouring bricks when there is room
	if e.Role == physics.RoleBrick && x1-x0 > 2 {
		x1--
	}
	dst.FillRect(core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0)), r, c)
}

// renderOverlay draws the pause or transition banner in a box.
func (s *Session) renderOverlay(dst *core.Screen) {
	var msg, hint string
	switch s.Phase() {
	case core.PhasePaused:
		msg, hint = "PAUSED", "P to resume"
	case core.PhaseWon:
		msg = s.banner
		hint = fmt.Sprintf("%s: %d  R to play again", s.text.Text(lang.KeyScore), s.score)
	case core.PhaseBanner, core.PhaseGameOver:
		msg = s.banner
	case core.PhaseCaptured:
		hint = "SPACE to launch"
	}

	if msg == "" {
		if hint != "" {
			dst.DrawTextCentered(dst.Height()-1, hint, core.ColorGray)
		}
		return
	}

	w := max(utf8.RuneCountInString(msg), utf8.RuneCountInString(hint)) + 4
	h := 3
	if hint != "" {
		h = 4
	}
	top := (dst.Height() - h) / 2
	box := core.NewRect((dst.Width()-w)/2, top, w, h)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorCyan)
	dst.DrawTextCentered(top+1, msg, core.ColorWhite)
	if hint != "" {
		dst.DrawTextCentered(top+2, hint, core.ColorGray)
	}
}

// toCell maps a world point to a screen cell in the field below the HUD.
func (s *Session) toCell(dst *core.Screen, wx, wy float64) (int, int) {
	fieldH := dst.Height() - hudRows
	col := int(math.Floor(wx / s.cfg.World.Width * float64(dst.Width())))
	row := hudRows + int(math.Floor((s.cfg.World.Height-wy)/s.cfg.World.Height*float64(fieldH)))
	return core.Clamp(col, 0, dst.Width()-1), core.Clamp(row, hudRows, dst.Height()-1)
}
