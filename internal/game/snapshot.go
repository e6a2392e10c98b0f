package game

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/jstraceski/BreakJoe/internal/physics"
)

// Snapshot contains the session state needed to compare or replay runs.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Score      int
	Lives      int
	LevelIndex int
	Captured   bool
	Phase      string

	// Paddle and ball state, each as 4 floats: X, Y, VX, VY
	Paddle [4]float64
	Ball   [4]float64

	// Bricks in arena order, each as 3 floats: X, Y, Hits
	BrickData []float64
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       uint64(s.tick), //#nosec G115 -- tick count is always positive
		Score:      s.score,
		Lives:      s.lives,
		LevelIndex: s.levelIndex,
		Captured:   s.captured,
		Phase:      s.Phase().String(),
	}

	s.arena.Each(func(_ physics.ID, e *physics.Entity) {
		state := [4]float64{e.Pos.X(), e.Pos.Y(), e.Velocity.X(), e.Velocity.Y()}
		switch e.Role {
		case physics.RolePaddle:
			snap.Paddle = state
		case physics.RoleBall:
			snap.Ball = state
		case physics.RoleBrick:
			if e.Active {
				snap.BrickData = append(snap.BrickData, e.Pos.X(), e.Pos.Y(), float64(e.Hits))
			}
		}
	})

	return snap
}

// Hash returns an xxhash digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putInt := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	putFloat := func(v float64) {
		putInt(math.Float64bits(v))
	}

	putInt(snap.Tick)
	putInt(uint64(snap.Score))      //#nosec G115 -- hash computation
	putInt(uint64(snap.Lives))      //#nosec G115 -- hash computation
	putInt(uint64(snap.LevelIndex)) //#nosec G115 -- hash computation
	if snap.Captured {
		putInt(1)
	} else {
		putInt(0)
	}
	_, _ = d.WriteString(snap.Phase)

	for _, v := range snap.Paddle {
		putFloat(v)
	}
	for _, v := range snap.Ball {
		putFloat(v)
	}
	for _, v := range snap.BrickData {
		putFloat(v)
	}

	return d.Sum64()
}
