package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak level.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestEffectsAreFiniteAndInRange(t *testing.T) {
	tests := []struct {
		key      string
		duration time.Duration
	}{
		{KeyHit, 60 * time.Millisecond},
		{KeyPaddle, 70 * time.Millisecond},
		{KeyWall, 40 * time.Millisecond},
		{KeyLose, 500 * time.Millisecond},
		{KeyLevel, 440 * time.Millisecond},
		{KeyWin, 800 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s := Effect(tt.key, 1)
			if s == nil {
				t.Fatal("Effect returned nil")
			}
			n, peak := drain(s)
			if n != sampleRate.N(tt.duration) {
				t.Errorf("streamed %d samples, expected %d", n, sampleRate.N(tt.duration))
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("peak = %v, expected in (0, 1]", peak)
			}
		})
	}
}

func TestEffectSilentAtZeroVolume(t *testing.T) {
	_, peak := drain(Effect(KeyHit, 0))
	if peak != 0 {
		t.Errorf("peak = %v, expected silence", peak)
	}
}

func TestEffectUnknownKey(t *testing.T) {
	if Effect("background", 1) != nil {
		t.Error("unknown key should yield nil")
	}
}

// Mixer must degrade gracefully when no audio device was opened.
func TestMixerWithoutInit(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Mixer panicked without Init: %v", r)
		}
	}()

	m := NewMixer(0.5)
	m.Play(KeyHit)
	m.Play("unknown")
	m.Close()
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var p Player = &r
	p.Play(KeyHit)
	p.Play(KeyWall)
	p.Play(KeyHit)

	if got := r.Keys(); len(got) != 3 || got[1] != KeyWall {
		t.Errorf("Keys() = %v", got)
	}
	if r.Count(KeyHit) != 2 {
		t.Errorf("Count(hit) = %d, expected 2", r.Count(KeyHit))
	}
	Nop{}.Play(KeyHit)
}
