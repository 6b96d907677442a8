package engine

import (
	"time"
)

// TimerKind tags a scheduled record with the action it triggers
type TimerKind uint8

const (
	// TimerScoreTick adds one point (periodic)
	TimerScoreTick TimerKind = iota
	// TimerSpeedRamp raises chaser speed (periodic)
	TimerSpeedRamp
	// TimerPickupSpawn drops a regular pickup (periodic)
	TimerPickupSpawn
	// TimerPaintSpawn drops a short-lived paint pickup (periodic)
	TimerPaintSpawn
	// TimerStealthEnd restores player visibility (one-shot)
	TimerStealthEnd
	// TimerShieldEnd drops an unconsumed shield (one-shot)
	TimerShieldEnd
	// TimerPaintModeEnd disables stroke recording (one-shot)
	TimerPaintModeEnd

	timerKindCount
)

var timerKindNames = [timerKindCount]string{
	TimerScoreTick:    "score-tick",
	TimerSpeedRamp:    "speed-ramp",
	TimerPickupSpawn:  "pickup-spawn",
	TimerPaintSpawn:   "paint-spawn",
	TimerStealthEnd:   "stealth-end",
	TimerShieldEnd:    "shield-end",
	TimerPaintModeEnd: "paint-mode-end",
}

func (k TimerKind) String() string {
	if k < timerKindCount {
		return timerKindNames[k]
	}
	return "unknown"
}

// timerRecord is one pending expiration on the simulated timeline
type timerRecord struct {
	active bool
	fireAt time.Duration // simulated time since round start
	period time.Duration // 0 = one-shot
	seq    uint64        // insertion order, breaks fireAt ties
}

// Scheduler holds at most one pending record per TimerKind
// Records fire in fireAt order when the owner calls Next with the new simulated time
// Not safe for concurrent use, owned by GameState
type Scheduler struct {
	records [timerKindCount]timerRecord
	seq     uint64
}

// Schedule arms kind to fire at fireAt, replacing any pending record of the same kind
// A positive period re-arms the record after each firing
func (s *Scheduler) Schedule(kind TimerKind, fireAt, period time.Duration) {
	s.seq++
	s.records[kind] = timerRecord{
		active: true,
		fireAt: fireAt,
		period: period,
		seq:    s.seq,
	}
}

// Cancel disarms kind, returns false if nothing was pending
func (s *Scheduler) Cancel(kind TimerKind) bool {
	wasActive := s.records[kind].active
	s.records[kind] = timerRecord{}
	return wasActive
}

// Clear disarms every record
func (s *Scheduler) Clear() {
	s.records = [timerKindCount]timerRecord{}
}

// Pending returns the fire time of kind if armed
func (s *Scheduler) Pending(kind TimerKind) (time.Duration, bool) {
	r := s.records[kind]
	return r.fireAt, r.active
}

// Remaining returns time left until kind fires, zero if not armed
func (s *Scheduler) Remaining(kind TimerKind, now time.Duration) time.Duration {
	r := s.records[kind]
	if !r.active || r.fireAt <= now {
		return 0
	}
	return r.fireAt - now
}

// Len returns the number of armed records
func (s *Scheduler) Len() int {
	n := 0
	for i := range s.records {
		if s.records[i].active {
			n++
		}
	}
	return n
}

// Next pops the earliest record due at or before now
// Periodic records are re-armed one period later, one-shot records are disarmed
// Callers loop until ok is false so a large step fires every missed period in order
func (s *Scheduler) Next(now time.Duration) (kind TimerKind, fireAt time.Duration, ok bool) {
	best := -1
	for i := range s.records {
		r := &s.records[i]
		if !r.active || r.fireAt > now {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := &s.records[best]
		if r.fireAt < b.fireAt || (r.fireAt == b.fireAt && r.seq < b.seq) {
			best = i
		}
	}
	if best < 0 {
		return 0, 0, false
	}

	r := &s.records[best]
	kind = TimerKind(best)
	fireAt = r.fireAt

	if r.period > 0 {
		r.fireAt += r.period
		s.seq++
		r.seq = s.seq
	} else {
		*r = timerRecord{}
	}
	return kind, fireAt, true
}
