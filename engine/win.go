package engine

import (
	"github.com/lixenwraith/chaser/vmath"
)

// Decoy is a fake cursor shown during the win sequence
type Decoy struct {
	Pos     vmath.Vec2
	Clicked bool
}

// enterWinSequence freezes gameplay and arms the click counter
func (gs *GameState) enterWinSequence() {
	if !gs.transition(RoundWinPending) {
		return
	}

	gs.sched.Clear()
	gs.drawing = false
	gs.current = nil

	gs.decoys = make([]Decoy, gs.cfg.Win.Decoys)
	for i := range gs.decoys {
		gs.decoys[i].Pos = gs.randomPoint()
	}

	gs.transition(RoundWinActive)
	gs.emit(Event{Type: EventWinStarted, Score: gs.score})
}

// Click registers one click on the chaser during the win sequence
// Returns false when the click observer is not armed
func (gs *GameState) Click() bool {
	if gs.round != RoundWinActive {
		return false
	}

	gs.clicks++
	if gs.clicks == 1 {
		for i := range gs.decoys {
			gs.decoys[i].Clicked = true
		}
	}

	win := gs.cfg.Win
	if gs.clicks >= win.CrackClicks && !gs.cracked {
		gs.cracked = true
		gs.emit(Event{Type: EventCracked, Score: gs.score})
	}
	if gs.clicks >= win.BreakClicks {
		gs.clicks = win.BreakClicks
		gs.broken = true
		gs.transition(RoundWinComplete)
		gs.emit(Event{Type: EventBroken, Score: gs.score})
	}
	return true
}

// Cracked reports whether the chaser shows cracks
func (gs *GameState) Cracked() bool {
	return gs.cracked
}

// Broken reports whether the chaser has been broken
func (gs *GameState) Broken() bool {
	return gs.broken
}
