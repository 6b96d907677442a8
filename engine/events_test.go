package engine

import (
	"testing"
	"time"
)

func TestDrainEventsOrder(t *testing.T) {
	gs := NewGameState(StaticTestConfig())
	gs.DrainEvents()

	gs.applyEffect(PickupStealth)
	gs.Advance(Input{}, 3*time.Second)

	events := gs.DrainEvents()
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d: %v", len(events), events)
	}
	if events[0].Type != EventEffectStarted || events[0].At != 0 {
		t.Errorf("Expected effect-started at 0, got %v at %v", events[0].Type, events[0].At)
	}
	if events[1].Type != EventEffectEnded || events[1].At != 3*time.Second {
		t.Errorf("Expected effect-ended at 3s, got %v at %v", events[1].Type, events[1].At)
	}
	if events[1].Pickup.Kind != PickupStealth {
		t.Errorf("Expected stealth payload, got %v", events[1].Pickup.Kind)
	}
	for _, ev := range events {
		if ev.RoundID != gs.RoundID() {
			t.Errorf("Expected round ID %s, got %s", gs.RoundID(), ev.RoundID)
		}
	}
}

func TestEventTypeString(t *testing.T) {
	if EventShieldBroken.String() != "shield-broken" {
		t.Errorf("Expected shield-broken, got %s", EventShieldBroken)
	}
	if PickupPaint.String() != "paint" {
		t.Errorf("Expected paint, got %s", PickupPaint)
	}
	if RoundWinActive.String() != "win-active" {
		t.Errorf("Expected win-active, got %s", RoundWinActive)
	}
}
