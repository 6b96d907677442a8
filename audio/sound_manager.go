package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/chaser/config"
	"github.com/lixenwraith/chaser/engine"
)

const speakerBufferDuration = 100 * time.Millisecond

// SoundManager plays game cues through the speaker
// Every method is safe to call when the speaker failed to initialize or audio is disabled
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
	muted       bool
	seed        int64
}

// NewSoundManager creates a new sound manager, no device is opened until Initialize
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	mixer := &beep.Mixer{}
	exp, silent := volumeExp(cfg.MasterVolume)
	return &SoundManager{
		cfg:        cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
		mixer:      mixer,
		master: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   exp,
			Silent:   silent,
		},
	}
}

// Initialize opens the speaker, a disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.sampleRate, sm.sampleRate.N(speakerBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

// Play queues cue on the mixer, returns false when nothing will be heard
func (sm *SoundManager) Play(cue Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	sm.seed++
	s, err := buildCue(sm.sampleRate, cue, sm.seed)
	if err != nil {
		log.Printf("audio: %v", err)
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// ToggleMute flips the mute state and returns it
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
		sm.master.Silent = sm.muted || sm.cfg.MasterVolume <= 0
		speaker.Unlock()
	}
	return sm.muted
}

// IsMuted returns the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Handle plays the cue matching a core event, if any
func (sm *SoundManager) Handle(ev engine.Event) {
	if cue, ok := CueFor(ev); ok {
		sm.Play(cue)
	}
}

// CueFor maps a core event to its cue
func CueFor(ev engine.Event) (Cue, bool) {
	switch ev.Type {
	case engine.EventPickupConsumed:
		if ev.Pickup.Kind == engine.PickupPaint {
			return CuePaint, true
		}
		return CuePickup, true
	case engine.EventShieldBroken:
		return CueShieldBreak, true
	case engine.EventGameOver:
		return CueGameOver, true
	case engine.EventWinStarted:
		return CueWinStart, true
	case engine.EventCracked:
		return CueCrack, true
	case engine.EventBroken:
		return CueBreak, true
	}
	return 0, false
}

// buildCue synthesizes a finite streamer for cue
func buildCue(sr beep.SampleRate, cue Cue, seed int64) (beep.Streamer, error) {
	if cue < 0 || cue >= cueCount {
		return nil, fmt.Errorf("cue %d: %w", cue, ErrUnknownCue)
	}
	spec := cueSpecs[cue]

	var s beep.Streamer
	switch {
	case spec.noise > 0:
		s = beep.Take(sr.N(spec.noise), NewCrackGenerator(sr, spec.rumble, seed))

	case spec.buzzHz > 0:
		s = beep.Take(sr.N(spec.duration()), NewBuzzGenerator(sr, spec.buzzHz))

	default:
		parts := make([]beep.Streamer, 0, len(spec.tones))
		for _, t := range spec.tones {
			tone, err := generators.SineTone(sr, t.freq)
			if err != nil {
				return nil, fmt.Errorf("cue %s: %w", cue, err)
			}
			parts = append(parts, beep.Take(sr.N(t.dur), tone))
		}
		s = beep.Seq(parts...)
	}

	exp, silent := volumeExp(spec.gain)
	return &effects.Volume{Streamer: s, Base: 2, Volume: exp, Silent: silent}, nil
}
