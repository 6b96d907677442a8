package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// odd harmonics for a harsh edge
		sample := 0.5*math.Sin(2*math.Pi*g.freq*t) +
			0.25*math.Sin(2*math.Pi*g.freq*3*t) +
			0.125*math.Sin(2*math.Pi*g.freq*5*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// CrackGenerator generates a decaying noise burst over a low rumble
type CrackGenerator struct {
	sr     beep.SampleRate
	rumble float64
	pos    int
	rng    *rand.Rand
}

// NewCrackGenerator creates a crack generator, equal seeds give equal output
func NewCrackGenerator(sr beep.SampleRate, rumble float64, seed int64) *CrackGenerator {
	return &CrackGenerator{
		sr:     sr,
		rumble: rumble,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (g *CrackGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// quick attack, slower decay
		envelope := math.Exp(-t * 8)
		noise := g.rng.Float64()*2 - 1
		low := g.rumble * math.Sin(2*math.Pi*80*t)

		sample := envelope * (0.3*noise + low)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrackGenerator) Err() error {
	return nil
}
