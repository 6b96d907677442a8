package audio

import (
	"errors"
)

// Cue is one of the short sounds the game plays
type Cue int

const (
	CuePickup      Cue = iota // Pickup collected
	CuePaint                  // Paint mode entered
	CueShieldBreak            // Shield absorbed a hit
	CueGameOver               // Chaser caught the player
	CueWinStart               // Win sequence armed
	CueCrack                  // Chaser cracked
	CueBreak                  // Chaser broken
	cueCount
)

var cueNames = [cueCount]string{
	CuePickup:      "pickup",
	CuePaint:       "paint",
	CueShieldBreak: "shield-break",
	CueGameOver:    "game-over",
	CueWinStart:    "win-start",
	CueCrack:       "crack",
	CueBreak:       "break",
}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// ErrUnknownCue is returned when building a streamer for an undefined cue
var ErrUnknownCue = errors.New("unknown audio cue")
