package engine

// applyEffect runs the collection effect of kind
// Timed effects replace their pending expiry instead of stacking
func (gs *GameState) applyEffect(kind PickupKind) {
	cfg := gs.cfg.Effects

	switch kind {
	case PickupTeleport:
		gs.player = gs.randomPoint()

	case PickupSwap:
		gs.player, gs.chaser.Pos = gs.chaser.Pos, gs.player

	case PickupStealth:
		gs.playerVisible = false
		gs.stealthActive = true
		gs.sched.Schedule(TimerStealthEnd, gs.now+cfg.Stealth, 0)
		gs.emit(Event{Type: EventEffectStarted, Pickup: Pickup{Kind: kind}})

	case PickupShield:
		gs.shieldActive = true
		gs.sched.Schedule(TimerShieldEnd, gs.now+cfg.Shield, 0)
		gs.emit(Event{Type: EventEffectStarted, Pickup: Pickup{Kind: kind}})

	case PickupPaint:
		gs.paintMode = true
		gs.sched.Schedule(TimerPaintModeEnd, gs.now+cfg.PaintMode, 0)
		gs.emit(Event{Type: EventEffectStarted, Pickup: Pickup{Kind: kind}})
	}
}

// fire runs the action of a due scheduler record
func (gs *GameState) fire(kind TimerKind) {
	switch kind {
	case TimerScoreTick:
		gs.score++

	case TimerSpeedRamp:
		gs.chaser.Speed += gs.cfg.Chaser.SpeedIncrement
		if maxSpeed := gs.cfg.Chaser.MaxSpeed; maxSpeed > 0 && gs.chaser.Speed > maxSpeed {
			gs.chaser.Speed = maxSpeed
		}

	case TimerPickupSpawn:
		gs.spawnRegularPickup()

	case TimerPaintSpawn:
		gs.spawnPickup(PickupPaint)

	case TimerStealthEnd:
		gs.playerVisible = true
		gs.stealthActive = false
		gs.emit(Event{Type: EventEffectEnded, Pickup: Pickup{Kind: PickupStealth}})

	case TimerShieldEnd:
		gs.shieldActive = false
		gs.emit(Event{Type: EventEffectEnded, Pickup: Pickup{Kind: PickupShield}})

	case TimerPaintModeEnd:
		gs.paintMode = false
		gs.drawing = false
		gs.current = nil
		gs.emit(Event{Type: EventEffectEnded, Pickup: Pickup{Kind: PickupPaint}})
	}
}

// consumeShield absorbs a chaser hit and throws the player to a random point
func (gs *GameState) consumeShield() {
	gs.shieldActive = false
	gs.sched.Cancel(TimerShieldEnd)
	gs.player = gs.randomPoint()
	gs.emit(Event{Type: EventShieldBroken})
}
