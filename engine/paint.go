package engine

import (
	"time"

	"github.com/lixenwraith/chaser/vmath"
)

// PaintStroke is a committed barrier polyline
type PaintStroke struct {
	Points    []vmath.Vec2
	CreatedAt time.Duration
}

// SetDrawing starts or ends the in-progress stroke
// Strokes only start in paint mode, a released stroke is committed when it holds more than one point
func (gs *GameState) SetDrawing(active bool) {
	if gs.round != RoundPlaying {
		return
	}

	if active {
		if gs.drawing || !gs.paintMode {
			return
		}
		gs.drawing = true
		gs.current = gs.current[:0]
		return
	}

	if !gs.drawing {
		return
	}
	gs.drawing = false
	if len(gs.current) > 1 {
		stroke := PaintStroke{
			Points:    append([]vmath.Vec2(nil), gs.current...),
			CreatedAt: gs.now,
		}
		gs.strokes = append(gs.strokes, stroke)
		gs.emit(Event{Type: EventStrokeCommitted})
	}
	gs.current = nil
}

// AppendStrokePoint extends the in-progress stroke, ignored when not drawing
func (gs *GameState) AppendStrokePoint(x, y float64) {
	if !gs.drawing || !gs.paintMode {
		return
	}
	gs.current = append(gs.current, gs.clamp(vmath.Vec2{X: x, Y: y}))
}

// Drawing reports whether a stroke is being recorded
func (gs *GameState) Drawing() bool {
	return gs.drawing
}

// blockedByPaint reports whether a chaser centered at pos would touch any committed stroke
func (gs *GameState) blockedByPaint(pos vmath.Vec2) bool {
	for i := range gs.strokes {
		if d, ok := vmath.PolylineDist(pos, gs.strokes[i].Points); ok && d < gs.chaser.Radius {
			return true
		}
	}
	return false
}

// expireStrokes drops strokes older than their lifetime
func (gs *GameState) expireStrokes() {
	lifetime := gs.cfg.Effects.StrokeLifetime
	kept := gs.strokes[:0]
	for _, s := range gs.strokes {
		if gs.now-s.CreatedAt < lifetime {
			kept = append(kept, s)
		}
	}
	gs.strokes = kept
}
