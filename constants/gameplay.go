package constants

import "time"

// Chaser
const (
	// ChaserStartX is the chaser spawn X at round start
	ChaserStartX = 100.0

	// ChaserStartY is the chaser spawn Y at round start
	ChaserStartY = 100.0

	// ChaserRadius is the chaser body radius, constant for the whole round
	ChaserRadius = 20.0

	// ChaserStartSpeed is the initial pursuit speed in units/sec (0.05 * 60 per frame at 60 FPS)
	ChaserStartSpeed = 180.0

	// ChaserSpeedIncrement is added to the speed on every ramp tick
	ChaserSpeedIncrement = 18.0

	// ChaserMaxSpeed caps the ramp, 0 means unbounded
	ChaserMaxSpeed = 0.0

	// ChaserSettleDistance stops pursuit when closer than this to avoid jitter
	ChaserSettleDistance = 1.0

	// SpeedRampInterval is the period of the chaser speed ramp
	SpeedRampInterval = 3 * time.Second
)

// Player
const (
	// PlayerHitRadius is the cursor collision radius
	PlayerHitRadius = 5.0

	// PlayerKeySpeed is the directional key movement speed in units/sec (8 per frame at 60 FPS)
	PlayerKeySpeed = 480.0
)

// Score
const (
	// ScoreInterval is the period of the +1 score tick
	ScoreInterval = 1 * time.Second
)

// Pickups
const (
	// PickupSpawnInterval is the period of regular pickup spawns
	PickupSpawnInterval = 4 * time.Second

	// PickupSize is the hit size of regular pickups
	PickupSize = 20.0

	// PaintSpawnInterval is the period of paint pickup spawns
	PaintSpawnInterval = 30 * time.Second

	// PaintPickupLifetime is how long an uncollected paint pickup stays on the canvas
	PaintPickupLifetime = 3 * time.Second

	// PaintPickupSize is the hit size of paint pickups
	PaintPickupSize = 24.0

	// PickupSpawnMargin keeps spawns away from canvas edges
	PickupSpawnMargin = 20.0
)

// Effects
const (
	// StealthDuration is how long the player stays invisible
	StealthDuration = 3 * time.Second

	// ShieldDuration is how long an unconsumed shield lasts
	ShieldDuration = 8 * time.Second

	// PaintModeDuration is how long stroke recording stays enabled
	PaintModeDuration = 5 * time.Second

	// PaintStrokeLifetime is how long a committed stroke blocks the chaser
	PaintStrokeLifetime = 10 * time.Second
)

// Win Sequence
const (
	// WinDecoyCount is the number of decoy cursors spawned on entry
	WinDecoyCount = 20

	// WinCrackClicks marks the chaser cracked
	WinCrackClicks = 5

	// WinBreakClicks completes the sequence
	WinBreakClicks = 10
)
