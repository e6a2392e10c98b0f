// Package sound plays short synthesized effects for game events.
//
// The session only ever calls Player.Play with one of the Key constants; the
// physics engine never touches audio.
package sound

import "sync"

// Effect keys.
const (
	KeyHit    = "hit"    // Ball hit a brick
	KeyPaddle = "paddle" // Ball hit the paddle
	KeyWall   = "wall"   // Ball bounced off a wall
	KeyLose   = "lose"   // Ball lost
	KeyLevel  = "level"  // Level cleared
	KeyWin    = "win"    // Campaign finished
)

// Player is a side-effecting sound sink.
type Player interface {
	Play(key string)
}

// Nop discards every sound.
type Nop struct{}

// Play does nothing.
func (Nop) Play(string) {}

// Recorder remembers played keys in order. It is safe for concurrent use.
type Recorder struct {
	mu   sync.Mutex
	keys []string
}

// Play records key.
func (r *Recorder) Play(key string) {
	r.mu.Lock()
	r.keys = append(r.keys, key)
	r.mu.Unlock()
}

// Keys returns a copy of the recorded keys.
func (r *Recorder) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Count returns how many times key was played.
func (r *Recorder) Count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, k := range r.keys {
		if k == key {
			n++
		}
	}
	return n
}
