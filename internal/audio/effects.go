package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// TwangGenerator generates a plucked string: a decaying tone whose pitch
// drops slightly right after release
type TwangGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	phase float64
}

// NewTwangGenerator creates a twang sound generator
func NewTwangGenerator(sr beep.SampleRate, freq float64) *TwangGenerator {
	return &TwangGenerator{sr: sr, freq: freq}
}

func (g *TwangGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Частота падает на треть за первые 50 мс
		freq := g.freq * (1 + 0.33*math.Exp(-t*60))
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := math.Exp(-t * 14)
		sample := 0.35 * envelope * (math.Sin(g.phase) + 0.3*math.Sin(2*g.phase))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *TwangGenerator) Err() error {
	return nil
}

// ChimeGenerator plays two notes back to back, the second starting at a third
// of the way through
type ChimeGenerator struct {
	sr           beep.SampleRate
	first, again float64
	pos          int
}

// NewChimeGenerator creates a chime sound generator
func NewChimeGenerator(sr beep.SampleRate, first, second float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, first: first, again: second}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq, local := g.first, t
		if t >= 0.1 {
			freq, local = g.again, t-0.1
		}
		envelope := math.Min(local/0.005, 1) * math.Exp(-local*12)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
