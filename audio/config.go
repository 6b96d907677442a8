package audio

import (
	"math"
	"time"
)

// toneStep is one note of a tonal cue
type toneStep struct {
	freq float64
	dur  time.Duration
}

// cueSpec describes how a cue is synthesized
// Tonal cues play notes in sequence, noise cues use the crack generator
type cueSpec struct {
	tones  []toneStep
	buzzHz float64       // >0 buzzes for the total tone duration
	noise  time.Duration // >0 plays a crack burst
	rumble float64       // low rumble mixed into the crack burst
	gain   float64       // linear, relative to master
}

var cueSpecs = [cueCount]cueSpec{
	CuePickup: {
		tones: []toneStep{{880, 70 * time.Millisecond}, {1320, 110 * time.Millisecond}},
		gain:  0.6,
	},
	CuePaint: {
		tones: []toneStep{{660, 60 * time.Millisecond}, {990, 60 * time.Millisecond}, {1320, 90 * time.Millisecond}},
		gain:  0.5,
	},
	CueShieldBreak: {
		noise:  250 * time.Millisecond,
		rumble: 0.2,
		gain:   0.8,
	},
	CueGameOver: {
		buzzHz: 110,
		tones:  []toneStep{{0, 450 * time.Millisecond}},
		gain:   0.9,
	},
	CueWinStart: {
		tones: []toneStep{{523.25, 100 * time.Millisecond}, {659.25, 100 * time.Millisecond}, {783.99, 180 * time.Millisecond}},
		gain:  0.6,
	},
	CueCrack: {
		noise:  150 * time.Millisecond,
		rumble: 0.1,
		gain:   0.7,
	},
	CueBreak: {
		noise:  500 * time.Millisecond,
		rumble: 0.35,
		gain:   1.0,
	},
}

// duration returns the total length of a cue
func (s cueSpec) duration() time.Duration {
	if s.noise > 0 {
		return s.noise
	}
	var d time.Duration
	for _, t := range s.tones {
		d += t.dur
	}
	return d
}

// volumeExp converts a linear gain to the base-2 exponent effects.Volume expects
// Returns silent for non-positive gains
func volumeExp(gain float64) (exp float64, silent bool) {
	if gain <= 0 {
		return 0, true
	}
	return math.Log2(gain), false
}
