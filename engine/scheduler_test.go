package engine

import (
	"testing"
	"time"
)

func TestSchedulerFiresInOrder(t *testing.T) {
	var s Scheduler
	s.Schedule(TimerShieldEnd, 3*time.Second, 0)
	s.Schedule(TimerScoreTick, time.Second, time.Second)
	s.Schedule(TimerStealthEnd, 3*time.Second, 0)

	var got []TimerKind
	var times []time.Duration
	for {
		kind, at, ok := s.Next(3 * time.Second)
		if !ok {
			break
		}
		got = append(got, kind)
		times = append(times, at)
	}

	// equal fire times resolve by arming order, the periodic re-arm counts as a new arming
	want := []TimerKind{TimerScoreTick, TimerScoreTick, TimerShieldEnd, TimerStealthEnd, TimerScoreTick}
	wantTimes := []time.Duration{time.Second, 2 * time.Second, 3 * time.Second, 3 * time.Second, 3 * time.Second}
	if len(got) != len(want) {
		t.Fatalf("Expected %d firings, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] || times[i] != wantTimes[i] {
			t.Errorf("Firing %d: expected %v at %v, got %v at %v", i, want[i], wantTimes[i], got[i], times[i])
		}
	}

	if s.Len() != 1 {
		t.Errorf("Expected only the periodic record left, got %d", s.Len())
	}
	if at, ok := s.Pending(TimerScoreTick); !ok || at != 4*time.Second {
		t.Errorf("Expected score tick re-armed at 4s, got %v (armed=%v)", at, ok)
	}
}

func TestSchedulerReplaceAndCancel(t *testing.T) {
	var s Scheduler
	s.Schedule(TimerStealthEnd, 3*time.Second, 0)
	s.Schedule(TimerStealthEnd, 5*time.Second, 0)

	if s.Len() != 1 {
		t.Errorf("Expected one record per kind, got %d", s.Len())
	}
	if _, _, ok := s.Next(4 * time.Second); ok {
		t.Error("Expected replaced record not to fire at its old time")
	}
	if r := s.Remaining(TimerStealthEnd, 4*time.Second); r != time.Second {
		t.Errorf("Expected 1s remaining, got %v", r)
	}

	if !s.Cancel(TimerStealthEnd) {
		t.Error("Expected Cancel to report an armed record")
	}
	if s.Cancel(TimerStealthEnd) {
		t.Error("Expected second Cancel to report nothing pending")
	}
	if r := s.Remaining(TimerStealthEnd, 0); r != 0 {
		t.Errorf("Expected no remaining time after cancel, got %v", r)
	}
}

func TestSchedulerClear(t *testing.T) {
	var s Scheduler
	s.Schedule(TimerScoreTick, time.Second, time.Second)
	s.Schedule(TimerPaintSpawn, 30*time.Second, 30*time.Second)
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Expected empty scheduler, got %d", s.Len())
	}
	if _, _, ok := s.Next(time.Hour); ok {
		t.Error("Expected nothing to fire after Clear")
	}
}

func TestTimerKindString(t *testing.T) {
	if TimerSpeedRamp.String() != "speed-ramp" {
		t.Errorf("Expected speed-ramp, got %s", TimerSpeedRamp)
	}
	if TimerKind(200).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", TimerKind(200))
	}
}
