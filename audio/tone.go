package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Wave selects the oscillator shape
type Wave int

const (
	Sine Wave = iota
	Triangle
	Square
	Noise
)

// tone is a one-shot oscillator with an exponential pitch sweep and decay
type tone struct {
	wave  Wave
	from  float64
	to    float64
	gain  float64
	total int
	pos   int
	phase float64
	rate  float64
	seed  uint32
}

func newTone(wave Wave, from, to, gain float64, samples int, rate beep.SampleRate) *tone {
	return &tone{
		wave:  wave,
		from:  from,
		to:    to,
		gain:  gain,
		total: samples,
		rate:  float64(rate),
		seed:  0x9e3779b9,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.from * math.Pow(t.to/t.from, progress)
		env := t.gain * math.Exp(-5*progress)

		v := env * t.sample()
		samples[i][0] = v
		samples[i][1] = v

		t.phase += freq / t.rate
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) sample() float64 {
	switch t.wave {
	case Triangle:
		return 4*math.Abs(t.phase-0.5) - 1
	case Square:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case Noise:
		// xorshift32, deterministic per tone
		t.seed ^= t.seed << 13
		t.seed ^= t.seed >> 17
		t.seed ^= t.seed << 5
		return float64(t.seed)/float64(math.MaxUint32)*2 - 1
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

func (t *tone) Err() error { return nil }
