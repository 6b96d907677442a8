package engine

import (
	"time"

	"github.com/lixenwraith/chaser/vmath"
)

// Advance runs one simulation step of dt
// Does nothing outside Playing, win clicks go through Click
func (gs *GameState) Advance(in Input, dt time.Duration) {
	if gs.round != RoundPlaying || dt < 0 {
		return
	}

	gs.advanceClock(dt)
	gs.updatePlayer(in, dt)
	gs.moveChaser(dt)

	if gs.checkCollision() {
		return
	}
	gs.collectPickups()
}

// advanceClock fires every record due within the step at its own fire time
func (gs *GameState) advanceClock(dt time.Duration) {
	end := gs.now + dt
	for {
		kind, fireAt, ok := gs.sched.Next(end)
		if !ok {
			break
		}
		gs.now = fireAt
		gs.fire(kind)
	}
	gs.now = end

	gs.expirePickups()
	gs.expireStrokes()
}

func (gs *GameState) updatePlayer(in Input, dt time.Duration) {
	if in.Pointer {
		gs.player = in.Target
	}
	if in.DirX != 0 || in.DirY != 0 {
		step := gs.cfg.Player.KeySpeed * dt.Seconds()
		gs.player = vmath.V2Add(gs.player, vmath.Vec2{X: in.DirX * step, Y: in.DirY * step})
	}
	gs.player = gs.clamp(gs.player)

	gs.SetDrawing(in.Drawing)
	if in.Pointer {
		gs.AppendStrokePoint(gs.player.X, gs.player.Y)
	}
}

// moveChaser steps toward the visible player without overshooting
// A step that would touch a paint stroke is reverted
func (gs *GameState) moveChaser(dt time.Duration) {
	if !gs.playerVisible {
		return
	}

	delta := vmath.V2Sub(gs.player, gs.chaser.Pos)
	dist := vmath.V2Mag(delta)
	if dist <= gs.cfg.Chaser.SettleDistance {
		return
	}

	step := min(gs.chaser.Speed*dt.Seconds(), dist)
	next := vmath.V2Add(gs.chaser.Pos, vmath.V2Scale(delta, step/dist))
	if gs.blockedByPaint(next) {
		return
	}
	gs.chaser.Pos = next
}

// checkCollision resolves a chaser hit, returns true if the round ended
func (gs *GameState) checkCollision() bool {
	if !gs.playerVisible {
		return false
	}
	if !vmath.CirclesOverlap(gs.chaser.Pos, gs.chaser.Radius, gs.player, gs.cfg.Player.HitRadius) {
		return false
	}

	if gs.shieldActive {
		gs.consumeShield()
		return false
	}

	gs.transition(RoundGameOver)
	gs.sched.Clear()
	gs.drawing = false
	gs.current = nil
	gs.emit(Event{Type: EventGameOver, Score: gs.score})
	return true
}
