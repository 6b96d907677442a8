package engine

import (
	"slices"
	"time"

	"github.com/lixenwraith/chaser/vmath"
)

// EffectStatus is one timed effect as seen by the renderer
type EffectStatus struct {
	Active    bool
	Remaining time.Duration
}

// Snapshot is a deep copy of everything a renderer needs for one frame
// It shares no memory with the GameState that produced it
type Snapshot struct {
	RoundID string
	Round   RoundState
	Elapsed time.Duration
	Score   int

	Width, Height float64

	Player          vmath.Vec2
	PlayerVisible   bool
	PlayerHitRadius float64

	Chaser Chaser

	Stealth   EffectStatus
	Shield    EffectStatus
	PaintMode EffectStatus

	Drawing       bool
	Pickups       []Pickup
	Strokes       []PaintStroke
	CurrentStroke []vmath.Vec2

	Decoys      []Decoy
	Clicks      int
	ClickTarget int // clicks that break the chaser
	Cracked     bool
	Broken      bool
}

// Snapshot captures the current state for rendering
func (gs *GameState) Snapshot() Snapshot {
	s := Snapshot{
		RoundID:         gs.roundID,
		Round:           gs.round,
		Elapsed:         gs.now,
		Score:           gs.score,
		Width:           gs.width,
		Height:          gs.height,
		Player:          gs.player,
		PlayerVisible:   gs.playerVisible,
		PlayerHitRadius: gs.cfg.Player.HitRadius,
		Chaser:          gs.chaser,
		Stealth:         gs.effectStatus(gs.stealthActive, TimerStealthEnd),
		Shield:          gs.effectStatus(gs.shieldActive, TimerShieldEnd),
		PaintMode:       gs.effectStatus(gs.paintMode, TimerPaintModeEnd),
		Drawing:         gs.drawing,
		CurrentStroke:   slices.Clone(gs.current),
		Decoys:          slices.Clone(gs.decoys),
		Clicks:          gs.clicks,
		ClickTarget:     gs.cfg.Win.BreakClicks,
		Cracked:         gs.cracked,
		Broken:          gs.broken,
	}

	for _, p := range gs.pickups {
		if p.Active {
			s.Pickups = append(s.Pickups, p)
		}
	}

	lifetime := gs.cfg.Effects.StrokeLifetime
	for _, st := range gs.strokes {
		if gs.now-st.CreatedAt >= lifetime {
			continue
		}
		s.Strokes = append(s.Strokes, PaintStroke{
			Points:    slices.Clone(st.Points),
			CreatedAt: st.CreatedAt,
		})
	}
	return s
}

func (gs *GameState) effectStatus(active bool, kind TimerKind) EffectStatus {
	if !active {
		return EffectStatus{}
	}
	return EffectStatus{Active: true, Remaining: gs.sched.Remaining(kind, gs.now)}
}
