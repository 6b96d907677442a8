package engine

import (
	"time"

	"github.com/lixenwraith/chaser/vmath"
)

// PickupKind tags what a pickup does on collection
type PickupKind uint8

const (
	PickupTeleport PickupKind = iota
	PickupSwap
	PickupStealth
	PickupShield
	PickupPaint
)

// regularKinds are drawn uniformly by the regular spawn timer
var regularKinds = [...]PickupKind{PickupTeleport, PickupSwap, PickupStealth, PickupShield}

var pickupKindNames = [...]string{
	PickupTeleport: "teleport",
	PickupSwap:     "swap",
	PickupStealth:  "stealth",
	PickupShield:   "shield",
	PickupPaint:    "paint",
}

func (k PickupKind) String() string {
	if int(k) < len(pickupKindNames) {
		return pickupKindNames[k]
	}
	return "unknown"
}

// Pickup is a collectible placed by a spawn timer
// Consumed pickups are dropped from the state at the end of the step that consumed them
type Pickup struct {
	ID        int
	Kind      PickupKind
	Pos       vmath.Vec2
	Size      float64       // hit radius, player hit radius is added on top
	Active    bool          // cleared on first collision, never set again
	ExpiresAt time.Duration // 0 = no expiry, paint pickups only
}

// spawnPickup places a pickup of kind at a random point inside the spawn margin
func (gs *GameState) spawnPickup(kind PickupKind) {
	cfg := gs.cfg.Pickups
	margin := cfg.Margin
	if 2*margin > min(gs.width, gs.height) {
		margin = 0
	}

	p := Pickup{
		ID:   gs.nextPickupID,
		Kind: kind,
		Pos: vmath.Vec2{
			X: margin + gs.rng.Float64()*(gs.width-2*margin),
			Y: margin + gs.rng.Float64()*(gs.height-2*margin),
		},
		Size:   cfg.Size,
		Active: true,
	}
	if kind == PickupPaint {
		p.Size = cfg.PaintSize
		p.ExpiresAt = gs.now + cfg.PaintLifetime
	}

	gs.nextPickupID++
	gs.pickups = append(gs.pickups, p)
	gs.emit(Event{Type: EventPickupSpawned, Pickup: p})
}

// spawnRegularPickup draws one of the non-paint kinds uniformly
func (gs *GameState) spawnRegularPickup() {
	gs.spawnPickup(regularKinds[gs.rng.Intn(len(regularKinds))])
}

// expirePickups drops paint pickups whose lifetime has run out
func (gs *GameState) expirePickups() {
	kept := gs.pickups[:0]
	for _, p := range gs.pickups {
		if p.ExpiresAt > 0 && gs.now >= p.ExpiresAt {
			gs.emit(Event{Type: EventPickupExpired, Pickup: p})
			continue
		}
		kept = append(kept, p)
	}
	gs.pickups = kept
}

// collectPickups consumes every active pickup touching the player
// A non-paint pickup collected during paint mode starts the win sequence instead of its effect
func (gs *GameState) collectPickups() {
	hitRadius := gs.cfg.Player.HitRadius

	for i := range gs.pickups {
		p := &gs.pickups[i]
		if !p.Active || !vmath.CirclesOverlap(gs.player, hitRadius, p.Pos, p.Size) {
			continue
		}

		p.Active = false
		gs.emit(Event{Type: EventPickupConsumed, Pickup: *p})

		if gs.paintMode && p.Kind != PickupPaint {
			gs.enterWinSequence()
			break
		}
		gs.applyEffect(p.Kind)
	}

	gs.dropInactivePickups()
}

func (gs *GameState) dropInactivePickups() {
	kept := gs.pickups[:0]
	for _, p := range gs.pickups {
		if p.Active {
			kept = append(kept, p)
		}
	}
	gs.pickups = kept
}
