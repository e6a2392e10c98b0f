package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Mixer plays effects through the system speaker.
type Mixer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewMixer creates a mixer with a volume in [0, 1]. Call Init before Play;
// until then Play is a no-op.
func NewMixer(volume float64) *Mixer {
	return &Mixer{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(1, volume)),
	}
}

// Init opens the speaker. Calling it twice is a no-op.
func (m *Mixer) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play starts the effect for key. Unknown keys are ignored.
func (m *Mixer) Play(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	s := Effect(key, m.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Close silences all effects.
func (m *Mixer) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// Effect returns a finite streamer for key at the given volume, or nil for
// unknown keys.
func Effect(key string, volume float64) beep.Streamer {
	var s beep.Streamer
	switch key {
	case KeyHit:
		s = beep.Take(sampleRate.N(60*time.Millisecond), newTone(880, 880, 40))
	case KeyPaddle:
		s = beep.Take(sampleRate.N(70*time.Millisecond), newTone(440, 440, 30))
	case KeyWall:
		s = beep.Take(sampleRate.N(40*time.Millisecond), newTone(330, 330, 60))
	case KeyLose:
		s = beep.Take(sampleRate.N(500*time.Millisecond), newTone(440, 110, 4))
	case KeyLevel:
		s = beep.Seq(
			beep.Take(sampleRate.N(120*time.Millisecond), newTone(523, 523, 10)),
			beep.Take(sampleRate.N(120*time.Millisecond), newTone(659, 659, 10)),
			beep.Take(sampleRate.N(200*time.Millisecond), newTone(784, 784, 8)),
		)
	case KeyWin:
		s = beep.Take(sampleRate.N(800*time.Millisecond), newTone(262, 1047, 2))
	default:
		return nil
	}
	return withVolume(s, volume)
}

// withVolume scales a streamer linearly; zero volume is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a sine whose frequency glides linearly from start to end over one
// second, shaped by an exponential decay envelope.
type tone struct {
	start, end float64
	decay      float64 // Envelope decay rate per second
	phase      float64
	pos        int
}

func newTone(start, end, decay float64) *tone {
	return &tone{start: start, end: end, decay: decay}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		freq := g.start + (g.end-g.start)*math.Min(t, 1)
		g.phase += 2 * math.Pi * freq / float64(sampleRate)

		// Short attack avoids clicks
		attack := math.Min(t/0.005, 1)
		sample := 0.4 * attack * math.Exp(-g.decay*t) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error {
	return nil
}
