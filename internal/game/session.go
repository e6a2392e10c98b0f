// Package game implements a BreakJoe session: lives, score, level campaign,
// transition banners and input handling around the physics engine.
package game

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jstraceski/BreakJoe/internal/config"
	"github.com/jstraceski/BreakJoe/internal/core"
	"github.com/jstraceski/BreakJoe/internal/lang"
	"github.com/jstraceski/BreakJoe/internal/level"
	"github.com/jstraceski/BreakJoe/internal/physics"
	"github.com/jstraceski/BreakJoe/internal/sound"
	"github.com/jstraceski/BreakJoe/internal/vecmath"
)

// Option configures a Session.
type Option func(*Session)

// WithSound routes collision and transition events to p.
func WithSound(p sound.Player) Option {
	return func(s *Session) {
		if p != nil {
			s.sound = p
		}
	}
}

// WithLogger sets the logger for session transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLanguage selects the HUD and banner language.
func WithLanguage(t *lang.Table) Option {
	return func(s *Session) {
		if t != nil {
			s.text = t
		}
	}
}

// WithTickRate sets the ticks per second used for banner timing.
func WithTickRate(rate int) Option {
	return func(s *Session) {
		if rate > 0 {
			s.tickRate = rate
		}
	}
}

// WithStartLevel starts every run at the given zero-based level.
func WithStartLevel(index int) Option {
	return func(s *Session) {
		s.startLevel = index
	}
}

// Session is one player's run through a level campaign. It owns the arena
// and is not safe for concurrent use.
type Session struct {
	cfg        config.Config
	levels     []*level.Level
	text       *lang.Table
	sound      sound.Player
	logger     *log.Logger
	difficulty *config.DifficultyManager
	tickRate   int
	startLevel int

	runID  string
	arena  *physics.Arena
	paddle physics.ID
	ball   physics.ID

	score      int
	lives      int
	levelIndex int
	tick       int

	captured    bool
	paused      bool
	won         bool
	losing      bool // Lose banner is showing; level restarts when it ends
	bannerTicks int
	banner      string

	lastEvents []physics.Event
}

// New creates a session positioned at the first level with the ball captured.
func New(cfg config.Config, levels []*level.Level, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, level.ErrNoLevels
	}
	if err := level.ValidateAll(levels, level.GeometryFor(cfg)); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:      cfg,
		levels:   levels,
		text:     lang.MustLoad(cfg.Gameplay.Language),
		sound:    sound.Nop{},
		logger:   log.New(io.Discard),
		tickRate: 60,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startLevel = max(0, min(s.startLevel, len(levels)-1))
	s.Reset()
	return s, nil
}

// Reset starts a new run from the first level.
func (s *Session) Reset() {
	s.runID = uuid.NewString()
	s.difficulty = config.NewDifficultyManager(s.cfg.Difficulty)
	s.arena = physics.NewArena()

	w, h := s.cfg.World.Width, s.cfg.World.Height
	s.paddle = s.arena.Add(physics.NewPaddle(
		vecmath.Vec2(w/2, h*s.cfg.Paddle.YFraction),
		s.cfg.Paddle.Width, s.cfg.Paddle.Height, s.cfg.Paddle.Drag,
	))
	s.ball = s.arena.Add(physics.NewBall(
		vecmath.Vec2(w/2, h/2),
		s.cfg.Ball.Radius, s.cfg.Ball.Drag, s.cfg.Ball.Reflects,
	))

	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.tick = 0
	s.paused = false
	s.won = false
	s.losing = false
	s.bannerTicks = 0
	s.banner = ""
	s.lastEvents = nil
	s.loadLevel(s.startLevel)

	s.logger.Debug("run started", "run", s.runID, "levels", len(s.levels))
}

// loadLevel replaces the bricks, recentres the paddle and captures the ball.
func (s *Session) loadLevel(index int) {
	s.levelIndex = index
	s.arena.RemoveRole(physics.RoleBrick)
	for _, b := range level.Layout(s.levels[index], s.geometry()) {
		s.arena.Add(b)
	}

	p := s.arena.Get(s.paddle)
	p.Pos = vecmath.Vec2(s.cfg.World.Width/2, s.cfg.World.Height*s.cfg.Paddle.YFraction)
	p.PredictedPos = p.Pos
	p.Velocity = vecmath.Zero
	s.captureBall()
}

func (s *Session) captureBall() {
	s.captured = true
	b := s.arena.Get(s.ball)
	b.Pos = s.arena.Get(s.paddle).Pos.Add(s.captureOffset())
	b.PredictedPos = b.Pos
	b.Velocity = vecmath.Zero
}

func (s *Session) geometry() level.Geometry {
	return level.GeometryFor(s.cfg)
}

func (s *Session) captureOffset() vecmath.Vector3D {
	return vecmath.Vec2(0, s.cfg.Physics.CaptureOffset)
}

// Params returns the physics parameters for the next tick.
func (s *Session) Params() physics.Params {
	return physics.Params{
		Bounds:        physics.Bounds{Width: s.cfg.World.Width, Height: s.cfg.World.Height},
		MaxSpeed:      s.difficulty.MaxSpeed(s.cfg.Physics.MaxSpeed, s.score, s.tick),
		Captured:      s.captured,
		Lives:         s.lives,
		CaptureOffset: s.captureOffset(),
		PushOut:       s.cfg.Physics.PushOut,
		PaddleDepth:   s.cfg.Physics.PaddleNormalDepth,
	}
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.lastEvents = nil

	if in.Has(core.ActionRestart) && s.won {
		s.Reset()
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionPause) && s.bannerTicks == 0 && !s.won {
		s.paused = !s.paused
	}
	if s.paused || s.won {
		return core.StepResult{State: s.State()}
	}

	// Transition banner freezes the field
	if s.bannerTicks > 0 {
		s.bannerTicks--
		if s.bannerTicks == 0 {
			s.endBanner()
		}
		return core.StepResult{State: s.State()}
	}

	s.tick++
	s.applyInput(in)

	res := physics.Advance(s.arena, s.Params())
	s.lastEvents = res.Events
	s.score += res.ScoreDelta
	s.lives = res.Lives
	s.captured = res.Captured
	s.playEvents(res.Events)

	if len(res.Depleted) > 0 {
		s.arena.Compact()
	}

	switch {
	case res.LevelCleared:
		s.levelCleared()
	case res.GameOver:
		s.lose()
	case res.BallLost:
		s.logger.Debug("ball lost", "run", s.runID, "lives", s.lives)
	}

	return core.StepResult{State: s.State()}
}

// applyInput pushes the paddle and launches a captured ball.
func (s *Session) applyInput(in core.InputFrame) {
	p := s.arena.Get(s.paddle)
	speed := s.cfg.Physics.PaddleSpeed
	if in.Has(core.ActionLeft) {
		p.Velocity = p.Velocity.Sub(vecmath.Vec2(speed, 0))
	}
	if in.Has(core.ActionRight) {
		p.Velocity = p.Velocity.Add(vecmath.Vec2(speed, 0))
	}

	if in.Has(core.ActionLaunch) && s.captured {
		b := s.arena.Get(s.ball)
		b.Velocity = vecmath.Vec2(0, s.cfg.Physics.LaunchVelocity).Add(p.Velocity)
		s.captured = false
	}
}

func (s *Session) playEvents(events []physics.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case physics.EventBrick:
			s.sound.Play(sound.KeyHit)
		case physics.EventPaddle:
			s.sound.Play(sound.KeyPaddle)
		case physics.EventWall:
			if ev.Entity == s.ball {
				s.sound.Play(sound.KeyWall)
			}
		case physics.EventBallLost:
			s.sound.Play(sound.KeyLose)
		}
	}
}

func (s *Session) levelCleared() {
	s.arena.RemoveRole(physics.RoleBrick)
	s.captureBall()

	if s.levelIndex == len(s.levels)-1 {
		s.won = true
		s.banner = s.text.Text(lang.KeyYouWin)
		s.sound.Play(sound.KeyWin)
		s.logger.Info("campaign won", "run", s.runID, "score", s.score)
		return
	}

	s.lives = s.cfg.Gameplay.Lives
	s.loadLevel(s.levelIndex + 1)
	s.showBanner(s.text.Text(lang.KeyNextLevel))
	s.sound.Play(sound.KeyLevel)
	s.logger.Info("level cleared", "run", s.runID, "level", s.levelIndex, "score", s.score)
}

func (s *Session) lose() {
	s.losing = true
	s.arena.RemoveRole(physics.RoleBrick)
	s.captureBall()
	s.showBanner(s.text.Text(lang.KeyYouLose))
	s.logger.Info("game over", "run", s.runID, "level", s.levelIndex, "score", s.score)
}

func (s *Session) showBanner(text string) {
	s.banner = text
	s.bannerTicks = max(1, int(math.Round(s.cfg.Gameplay.PauseSeconds*float64(s.tickRate))))
}

// endBanner finishes a transition. After a loss the run restarts on the same
// level with a fresh score.
func (s *Session) endBanner() {
	s.banner = ""
	if !s.losing {
		return
	}
	s.losing = false
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.runID = uuid.NewString()
	s.loadLevel(s.levelIndex)
}

// State returns the platform view of the session.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Lives:    s.lives,
		Level:    s.levelIndex,
		Phase:    s.Phase(),
		GameOver: s.won || s.losing,
	}
}

// Phase returns the current session phase.
func (s *Session) Phase() core.Phase {
	switch {
	case s.won:
		return core.PhaseWon
	case s.losing:
		return core.PhaseGameOver
	case s.bannerTicks > 0:
		return core.PhaseBanner
	case s.paused:
		return core.PhasePaused
	case s.captured:
		return core.PhaseCaptured
	default:
		return core.PhasePlaying
	}
}

// RunID identifies the current run. A loss or a restart starts a new run.
func (s *Session) RunID() string { return s.runID }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// LevelIndex returns the zero-based current level.
func (s *Session) LevelIndex() int { return s.levelIndex }

// Level returns the current level.
func (s *Session) Level() *level.Level { return s.levels[s.levelIndex] }

// LevelCount returns the number of levels in the campaign.
func (s *Session) LevelCount() int { return len(s.levels) }

// Tick returns the number of simulated ticks in this run.
func (s *Session) Tick() int { return s.tick }

// Captured reports whether the ball rides on the paddle.
func (s *Session) Captured() bool { return s.captured }

// Banner returns the transition text currently shown, if any.
func (s *Session) Banner() string { return s.banner }

// Events returns the physics events of the last simulated tick.
func (s *Session) Events() []physics.Event { return s.lastEvents }

// Ball returns a copy of the ball entity.
func (s *Session) Ball() physics.Entity { return *s.arena.Get(s.ball) }

// Paddle returns a copy of the paddle entity.
func (s *Session) Paddle() physics.Entity { return *s.arena.Get(s.paddle) }

// BricksLeft returns the number of active bricks.
func (s *Session) BricksLeft() int { return s.arena.ActiveBricks() }

// Config returns the session configuration.
func (s *Session) Config() config.Config { return s.cfg }
