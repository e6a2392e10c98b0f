// Package telemetry records per-tick session traces as CSV and summarises
// headless runs.
package telemetry

import (
	"fmt"
	"io"
	"sort"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/jstraceski/BreakJoe/internal/game"
	"github.com/jstraceski/BreakJoe/internal/physics"
)

// TickRecord is one row of a trace.
type TickRecord struct {
	Run        string  `csv:"run"`
	Tick       int     `csv:"tick"`
	Level      int     `csv:"level"`
	Phase      string  `csv:"phase"`
	Score      int     `csv:"score"`
	Lives      int     `csv:"lives"`
	Bricks     int     `csv:"bricks"`
	BallX      float64 `csv:"ball_x"`
	BallY      float64 `csv:"ball_y"`
	BallSpeed  float64 `csv:"ball_speed"`
	PaddleX    float64 `csv:"paddle_x"`
	Walls      int     `csv:"walls"`
	PaddleHits int     `csv:"paddle_hits"`
	BrickHits  int     `csv:"brick_hits"`
	BallLost   bool    `csv:"ball_lost"`
}

// Record captures the session state after its last step.
func Record(s *game.Session) TickRecord {
	ball, paddle := s.Ball(), s.Paddle()
	r := TickRecord{
		Run:       s.RunID(),
		Tick:      s.Tick(),
		Level:     s.LevelIndex(),
		Phase:     s.Phase().String(),
		Score:     s.Score(),
		Lives:     s.Lives(),
		Bricks:    s.BricksLeft(),
		BallX:     ball.Pos.X(),
		BallY:     ball.Pos.Y(),
		BallSpeed: ball.Velocity.Magnitude(),
		PaddleX:   paddle.Pos.X(),
	}
	for _, ev := range s.Events() {
		switch ev.Kind {
		case physics.EventWall:
			r.Walls++
		case physics.EventPaddle:
			r.PaddleHits++
		case physics.EventBrick:
			r.BrickHits++
		case physics.EventBallLost:
			r.BallLost = true
		}
	}
	return r
}

// Writer appends tick records as CSV. A nil Writer discards records.
type Writer struct {
	w             io.Writer
	headerWritten bool
}

// NewWriter returns a Writer on w, or nil when w is nil.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		return nil
	}
	return &Writer{w: w}
}

// Write appends one record, writing the header first if needed.
func (tw *Writer) Write(r TickRecord) error {
	if tw == nil {
		return nil
	}

	records := []TickRecord{r}

	if !tw.headerWritten {
		if err := gocsv.Marshal(records, tw.w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		tw.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, tw.w); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// Collector accumulates records for a run summary.
type Collector struct {
	speeds     []float64
	ticks      int
	walls      int
	paddleHits int
	brickHits  int
	ballsLost  int
	maxScore   int
	maxLevel   int
}

// Add folds one record into the collector. Ball speed is sampled only while
// the ball is in play.
func (c *Collector) Add(r TickRecord) {
	c.ticks++
	c.walls += r.Walls
	c.paddleHits += r.PaddleHits
	c.brickHits += r.BrickHits
	if r.BallLost {
		c.ballsLost++
	}
	if r.BallSpeed > 0 {
		c.speeds = append(c.speeds, r.BallSpeed)
	}
	c.maxScore = max(c.maxScore, r.Score)
	c.maxLevel = max(c.maxLevel, r.Level)
}

// Summary aggregates a run.
type Summary struct {
	Ticks       int
	Walls       int
	PaddleHits  int
	BrickHits   int
	BallsLost   int
	MaxScore    int
	MaxLevel    int
	SpeedMean   float64
	SpeedStdDev float64
	SpeedP50    float64
	SpeedP90    float64
}

// Summary returns the aggregate statistics so far.
func (c *Collector) Summary() Summary {
	s := Summary{
		Ticks:      c.ticks,
		Walls:      c.walls,
		PaddleHits: c.paddleHits,
		BrickHits:  c.brickHits,
		BallsLost:  c.ballsLost,
		MaxScore:   c.maxScore,
		MaxLevel:   c.maxLevel,
	}
	if len(c.speeds) == 0 {
		return s
	}

	sorted := make([]float64, len(c.speeds))
	copy(sorted, c.speeds)
	sort.Float64s(sorted)

	s.SpeedMean, s.SpeedStdDev = stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		s.SpeedStdDev = 0
	}
	s.SpeedP50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.SpeedP90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return s
}

// String formats the summary for terminal output.
func (s Summary) String() string {
	return fmt.Sprintf(
		"ticks=%d score=%d level=%d bricks=%d paddle=%d walls=%d lost=%d speed=%.2f±%.2f p50=%.2f p90=%.2f",
		s.Ticks, s.MaxScore, s.MaxLevel+1, s.BrickHits, s.PaddleHits, s.Walls, s.BallsLost,
		s.SpeedMean, s.SpeedStdDev, s.SpeedP50, s.SpeedP90,
	)
}
