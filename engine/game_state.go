package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/chaser/config"
	"github.com/lixenwraith/chaser/vmath"
)

// RoundState is the phase of the current round
type RoundState int

const (
	// RoundPlaying is normal gameplay
	RoundPlaying RoundState = iota
	// RoundGameOver is the terminal loss state
	RoundGameOver
	// RoundWinPending is the instantaneous hand-off into the win sequence
	RoundWinPending
	// RoundWinActive counts clicks toward breaking the chaser
	RoundWinActive
	// RoundWinComplete is the terminal win state
	RoundWinComplete
)

var roundStateNames = [...]string{
	RoundPlaying:     "playing",
	RoundGameOver:    "game-over",
	RoundWinPending:  "win-pending",
	RoundWinActive:   "win-active",
	RoundWinComplete: "win-complete",
}

func (r RoundState) String() string {
	if r >= 0 && int(r) < len(roundStateNames) {
		return roundStateNames[r]
	}
	return "unknown"
}

// Terminal reports whether only Restart can leave this state
func (r RoundState) Terminal() bool {
	return r == RoundGameOver || r == RoundWinComplete
}

var validTransitions = map[RoundState][]RoundState{
	RoundPlaying:    {RoundGameOver, RoundWinPending},
	RoundWinPending: {RoundWinActive},
	RoundWinActive:  {RoundWinComplete},
}

// CanTransition checks if a round state transition is valid
func CanTransition(from, to RoundState) bool {
	for _, state := range validTransitions[from] {
		if state == to {
			return true
		}
	}
	return false
}

// Chaser is the pursuing disc
type Chaser struct {
	Pos    vmath.Vec2
	Radius float64
	Speed  float64 // units/sec, never decreases within a round
}

// Input is one frame's sample from the input source
type Input struct {
	Pointer bool       // Target holds a fresh pointer position
	Target  vmath.Vec2 // canvas coordinates, clamped by the core
	DirX    float64    // directional keys, -1, 0 or 1 per axis
	DirY    float64
	Drawing bool // pointer button held
}

// GameState centralizes every entity of a round with a single owner
type GameState struct {
	cfg config.Config
	rng *rand.Rand

	// ===== CANVAS =====
	width, height float64

	// ===== ROUND =====
	roundID string
	round   RoundState
	now     time.Duration // simulated time since round start
	score   int
	sched   Scheduler
	events  []Event

	// ===== PLAYER =====
	player        vmath.Vec2
	playerVisible bool

	// ===== CHASER =====
	chaser Chaser

	// ===== EFFECTS =====
	stealthActive bool
	shieldActive  bool
	paintMode     bool

	// ===== PICKUPS =====
	pickups      []Pickup
	nextPickupID int

	// ===== PAINT =====
	drawing bool
	current []vmath.Vec2
	strokes []PaintStroke

	// ===== WIN SEQUENCE =====
	clicks  int
	cracked bool
	broken  bool
	decoys  []Decoy
}

// NewGameState creates a state seeded from cfg.Seed and starts the first round
// cfg is assumed validated
func NewGameState(cfg config.Config) *GameState {
	gs := &GameState{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		width:  cfg.Canvas.Width,
		height: cfg.Canvas.Height,
	}
	gs.Restart()
	return gs
}

// Restart reinitializes every entity and re-arms the periodic timers
// The canvas size and random stream carry over from the previous round
func (gs *GameState) Restart() {
	cfg := gs.cfg

	gs.roundID = gs.newRoundID()
	gs.round = RoundPlaying
	gs.now = 0
	gs.score = 0
	gs.sched.Clear()

	gs.player = vmath.Vec2{X: gs.width / 2, Y: gs.height / 2}
	gs.playerVisible = true

	gs.chaser = Chaser{
		Pos:    vmath.V2ClampRect(vmath.Vec2{X: cfg.Chaser.StartX, Y: cfg.Chaser.StartY}, gs.width, gs.height),
		Radius: cfg.Chaser.Radius,
		Speed:  cfg.Chaser.Speed,
	}

	gs.stealthActive = false
	gs.shieldActive = false
	gs.paintMode = false

	gs.pickups = nil
	gs.nextPickupID = 0

	gs.drawing = false
	gs.current = nil
	gs.strokes = nil

	gs.clicks = 0
	gs.cracked = false
	gs.broken = false
	gs.decoys = nil

	gs.sched.Schedule(TimerScoreTick, cfg.Score.Interval, cfg.Score.Interval)
	gs.sched.Schedule(TimerSpeedRamp, cfg.Chaser.RampInterval, cfg.Chaser.RampInterval)
	gs.sched.Schedule(TimerPickupSpawn, cfg.Pickups.SpawnInterval, cfg.Pickups.SpawnInterval)
	gs.sched.Schedule(TimerPaintSpawn, cfg.Pickups.PaintSpawnInterval, cfg.Pickups.PaintSpawnInterval)

	gs.emit(Event{Type: EventRoundStarted})
}

// newRoundID draws a UUID from the seeded stream so replays reproduce it
func (gs *GameState) newRoundID() string {
	id, err := uuid.NewRandomFromReader(gs.rng)
	if err != nil {
		// rand.Rand never fails to read
		panic(err)
	}
	return id.String()
}

// Resize changes the canvas bounds and pulls every entity back inside
// Non-positive sizes are ignored
func (gs *GameState) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	gs.width = width
	gs.height = height

	gs.player = gs.clamp(gs.player)
	gs.chaser.Pos = gs.clamp(gs.chaser.Pos)
	for i := range gs.pickups {
		gs.pickups[i].Pos = gs.clamp(gs.pickups[i].Pos)
	}
	for i := range gs.decoys {
		gs.decoys[i].Pos = gs.clamp(gs.decoys[i].Pos)
	}
}

func (gs *GameState) clamp(v vmath.Vec2) vmath.Vec2 {
	return vmath.V2ClampRect(v, gs.width, gs.height)
}

// randomPoint returns a uniform point within the canvas
func (gs *GameState) randomPoint() vmath.Vec2 {
	return vmath.Vec2{
		X: gs.rng.Float64() * gs.width,
		Y: gs.rng.Float64() * gs.height,
	}
}

// transition moves to a new round state if the table allows it
func (gs *GameState) transition(to RoundState) bool {
	if !CanTransition(gs.round, to) {
		return false
	}
	gs.round = to
	return true
}

// ===== ACCESSORS =====

// Config returns the tuning the state was built with
func (gs *GameState) Config() config.Config {
	return gs.cfg
}

// RoundID returns the identifier of the current round
func (gs *GameState) RoundID() string {
	return gs.roundID
}

// Round returns the current round state
func (gs *GameState) Round() RoundState {
	return gs.round
}

// Score returns the survival score
func (gs *GameState) Score() int {
	return gs.score
}

// Elapsed returns simulated time since round start
func (gs *GameState) Elapsed() time.Duration {
	return gs.now
}

// Size returns the canvas bounds
func (gs *GameState) Size() (width, height float64) {
	return gs.width, gs.height
}

// Player returns the player position
func (gs *GameState) Player() vmath.Vec2 {
	return gs.player
}

// PlayerVisible reports whether the chaser can see the player
func (gs *GameState) PlayerVisible() bool {
	return gs.playerVisible
}

// Chaser returns a copy of the chaser
func (gs *GameState) Chaser() Chaser {
	return gs.chaser
}

// ShieldActive reports whether the next hit will be absorbed
func (gs *GameState) ShieldActive() bool {
	return gs.shieldActive
}

// PaintMode reports whether strokes can be recorded
func (gs *GameState) PaintMode() bool {
	return gs.paintMode
}

// Clicks returns the win sequence click count
func (gs *GameState) Clicks() int {
	return gs.clicks
}
