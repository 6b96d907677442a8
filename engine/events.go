// Package engine is the chaser simulation core.
//
// GameState owns every entity of a round and advances it one step at a time
// through Advance(in, dt). Timed behavior (score tick, speed ramp, pickup
// spawns, effect expiry) lives in explicit Scheduler records fired during
// Advance, so a round is fully reproducible from its seed and input samples.
//
// Event Flow Pattern:
//  1. Advance/Click/Restart append events to the state's pending list
//  2. The front end drains them once per frame: events := gs.DrainEvents()
//  3. Consumers (audio cues, logging, replay) react without touching state
//
// The package performs no I/O and is not safe for concurrent use: input
// handling, Advance and Snapshot must run on one goroutine.
package engine

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventRoundStarted signals a fresh round
	// Trigger: New, Restart | Consumer: logging, replay | Payload: RoundID
	EventRoundStarted EventType = iota

	// EventPickupSpawned signals a pickup placed on the canvas
	// Trigger: pickup-spawn and paint-spawn timers | Payload: Pickup
	EventPickupSpawned

	// EventPickupExpired signals a paint pickup that timed out uncollected
	// Trigger: Advance expiry pass | Payload: Pickup
	EventPickupExpired

	// EventPickupConsumed signals a player-pickup collision
	// Trigger: Advance pickup pass | Consumer: audio | Payload: Pickup
	EventPickupConsumed

	// EventEffectStarted signals a timed effect switching on or being extended
	// Trigger: stealth, shield, paint pickups | Payload: Pickup (kind only)
	EventEffectStarted

	// EventEffectEnded signals a timed effect reverting on schedule
	// Trigger: effect expiry timers | Payload: Pickup (kind only)
	EventEffectEnded

	// EventShieldBroken signals a chaser hit absorbed by the shield
	// Trigger: Advance collision pass | Consumer: audio, logging
	EventShieldBroken

	// EventStrokeCommitted signals a paint barrier placed
	// Trigger: drawing released with more than one point
	EventStrokeCommitted

	// EventGameOver signals an unshielded chaser hit
	// Trigger: Advance collision pass | Consumer: audio, logging | Payload: Score
	EventGameOver

	// EventWinStarted signals entry into the win sequence
	// Trigger: non-paint pickup collected during paint mode | Consumer: audio, logging
	EventWinStarted

	// EventCracked signals the crack click threshold
	// Trigger: Click | Consumer: audio
	EventCracked

	// EventBroken signals the final click, the win sequence is complete
	// Trigger: Click | Consumer: audio, logging | Payload: Score
	EventBroken
)

var eventTypeNames = map[EventType]string{
	EventRoundStarted:    "round-started",
	EventPickupSpawned:   "pickup-spawned",
	EventPickupExpired:   "pickup-expired",
	EventPickupConsumed:  "pickup-consumed",
	EventEffectStarted:   "effect-started",
	EventEffectEnded:     "effect-ended",
	EventShieldBroken:    "shield-broken",
	EventStrokeCommitted: "stroke-committed",
	EventGameOver:        "game-over",
	EventWinStarted:      "win-started",
	EventCracked:         "cracked",
	EventBroken:          "broken",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is a notification emitted by the core, fields beyond Type and At are set per type
type Event struct {
	Type    EventType
	At      time.Duration // simulated time since round start
	RoundID string
	Pickup  Pickup
	Score   int
}

// emit appends an event stamped with the current simulated time
func (gs *GameState) emit(ev Event) {
	ev.At = gs.now
	ev.RoundID = gs.roundID
	gs.events = append(gs.events, ev)
}

// DrainEvents returns pending events in emission order and clears the list
func (gs *GameState) DrainEvents() []Event {
	if len(gs.events) == 0 {
		return nil
	}
	out := gs.events
	gs.events = nil
	return out
}
