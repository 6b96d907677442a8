package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/chaser/vmath"
)

func near(a, b vmath.Vec2) bool {
	return vmath.V2Dist(a, b) < 1e-9
}

func TestScoreTicksPerSimulatedSecond(t *testing.T) {
	gs := NewGameState(StaticTestConfig())

	stepFor(gs, Input{}, 16*time.Millisecond, 10*time.Second)
	if gs.Score() != 10 {
		t.Errorf("Expected score 10 after 10s, got %d", gs.Score())
	}

	gs.Advance(Input{}, 3500*time.Millisecond)
	if gs.Score() != 13 {
		t.Errorf("Expected a long step to catch up to 13, got %d", gs.Score())
	}
}

func TestScoreFreezesAfterGameOver(t *testing.T) {
	gs := NewGameState(StaticTestConfig())
	stepFor(gs, Input{}, 500*time.Millisecond, 2*time.Second)

	gs.player = gs.chaser.Pos
	gs.Advance(Input{}, 0)
	if gs.Round() != RoundGameOver {
		t.Fatalf("Expected game over, got %v", gs.Round())
	}
	if gs.sched.Len() != 0 {
		t.Errorf("Expected timers cancelled on game over, got %d armed", gs.sched.Len())
	}

	score := gs.Score()
	elapsed := gs.Elapsed()
	stepFor(gs, Input{}, 500*time.Millisecond, 5*time.Second)
	if gs.Score() != score {
		t.Errorf("Expected score frozen at %d, got %d", score, gs.Score())
	}
	if gs.Elapsed() != elapsed {
		t.Errorf("Expected clock frozen at %v, got %v", elapsed, gs.Elapsed())
	}
}

func TestSpeedRampNonDecreasing(t *testing.T) {
	cfg := TestConfig()
	cfg.Pickups.SpawnInterval = time.Hour
	cfg.Pickups.PaintSpawnInterval = time.Hour
	gs := NewGameState(cfg)
	// hidden player keeps the chaser parked
	gs.playerVisible = false

	prev := gs.Chaser().Speed
	for i := 0; i < 20; i++ {
		gs.Advance(Input{}, 500*time.Millisecond)
		if s := gs.Chaser().Speed; s < prev {
			t.Fatalf("Expected non-decreasing speed, went %v -> %v", prev, s)
		}
		prev = gs.Chaser().Speed
	}

	// 10s elapsed, ramps at 3s 6s 9s
	if want := 180.0 + 3*18; prev != want {
		t.Errorf("Expected speed %v, got %v", want, prev)
	}
	if gs.Chaser().Pos != (vmath.Vec2{X: 100, Y: 100}) {
		t.Errorf("Expected chaser not to track a hidden player, got %v", gs.Chaser().Pos)
	}
}

func TestSpeedRampCap(t *testing.T) {
	cfg := TestConfig()
	cfg.Chaser.MaxSpeed = 200
	cfg.Pickups.SpawnInterval = time.Hour
	cfg.Pickups.PaintSpawnInterval = time.Hour
	gs := NewGameState(cfg)
	gs.playerVisible = false

	stepFor(gs, Input{}, time.Second, 12*time.Second)
	if s := gs.Chaser().Speed; s != 200 {
		t.Errorf("Expected speed capped at 200, got %v", s)
	}
}

func TestChaserMovesTowardPlayer(t *testing.T) {
	cfg := StaticTestConfig()
	cfg.Chaser.Speed = 180
	gs := NewGameState(cfg)
	gs.player = vmath.Vec2{X: 400, Y: 100}

	gs.Advance(Input{}, time.Second)
	if p := gs.Chaser().Pos; !near(p, vmath.Vec2{X: 280, Y: 100}) {
		t.Errorf("Expected chaser near (280,100), got %v", p)
	}
}

func TestChaserOvershootClamp(t *testing.T) {
	cfg := StaticTestConfig()
	cfg.Chaser.Speed = 1000
	gs := NewGameState(cfg)
	gs.playerVisible = true
	gs.player = vmath.Vec2{X: 150, Y: 100}

	gs.moveChaser(time.Second)
	if p := gs.Chaser().Pos; p != gs.player {
		t.Errorf("Expected chaser to stop on the player at %v, got %v", gs.player, p)
	}
}

func TestChaserSettlesWithinOneUnit(t *testing.T) {
	cfg := StaticTestConfig()
	cfg.Chaser.Speed = 180
	gs := NewGameState(cfg)
	gs.player = vmath.Vec2{X: 100.5, Y: 100}

	gs.moveChaser(time.Second)
	if p := gs.Chaser().Pos; p != (vmath.Vec2{X: 100, Y: 100}) {
		t.Errorf("Expected chaser to hold within settle distance, got %v", p)
	}
}

func TestCollisionAtSharedPosition(t *testing.T) {
	gs := NewGameState(StaticTestConfig())
	gs.player = vmath.Vec2{X: 100, Y: 100}
	gs.DrainEvents()

	gs.Advance(Input{}, 0)

	if gs.Round() != RoundGameOver {
		t.Errorf("Expected game over, got %v", gs.Round())
	}
	events := gs.DrainEvents()
	if len(events) != 1 || events[0].Type != EventGameOver {
		t.Errorf("Expected a game-over event, got %v", events)
	}
}

func TestShieldAbsorbsHit(t *testing.T) {
	gs := NewGameState(StaticTestConfig())
	gs.applyEffect(PickupShield)
	gs.player = vmath.Vec2{X: 100, Y: 100}
	gs.DrainEvents()

	gs.Advance(Input{}, 0)

	if gs.Round() != RoundPlaying {
		t.Errorf("Expected round to continue, got %v", gs.Round())
	}
	if gs.ShieldActive() {
		t.Error("Expected shield consumed")
	}
	if _, ok := gs.sched.Pending(TimerShieldEnd); ok {
		t.Error("Expected shield expiry cancelled")
	}
	p := gs.Player()
	if p.X < 0 || p.X > 800 || p.Y < 0 || p.Y > 600 {
		t.Errorf("Expected relocated player within bounds, got %v", p)
	}

	var broken bool
	for _, ev := range gs.DrainEvents() {
		if ev.Type == EventShieldBroken {
			broken = true
		}
	}
	if !broken {
		t.Error("Expected shield-broken event")
	}
}

func TestHiddenPlayerCannotCollide(t *testing.T) {
	gs := NewGameState(StaticTestConfig())
	gs.applyEffect(PickupStealth)
	gs.player = vmath.Vec2{X: 100, Y: 100}

	gs.Advance(Input{}, 0)
	if gs.Round() != RoundPlaying {
		t.Errorf("Expected hidden player to survive contact, got %v", gs.Round())
	}
}

func TestKeyboardMovement(t *testing.T) {
	gs := NewGameState(StaticTestConfig())

	gs.Advance(Input{DirX: 1}, 500*time.Millisecond)
	if p := gs.Player(); p != (vmath.Vec2{X: 640, Y: 300}) {
		t.Errorf("Expected player at (640,300), got %v", p)
	}

	gs.Advance(Input{DirX: 1, DirY: -1}, time.Second)
	if p := gs.Player(); p != (vmath.Vec2{X: 800, Y: 0}) {
		t.Errorf("Expected player clamped to (800,0), got %v", p)
	}
}

func TestPointerTargetClamped(t *testing.T) {
	gs := NewGameState(StaticTestConfig())

	gs.Advance(Input{Pointer: true, Target: vmath.Vec2{X: -50, Y: 900}}, 16*time.Millisecond)
	if p := gs.Player(); p != (vmath.Vec2{X: 0, Y: 600}) {
		t.Errorf("Expected player clamped to (0,600), got %v", p)
	}
}

func TestNegativeStepIgnored(t *testing.T) {
	gs := NewGameState(StaticTestConfig())
	gs.Advance(Input{}, -time.Second)
	if gs.Elapsed() != 0 {
		t.Errorf("Expected clock unchanged, got %v", gs.Elapsed())
	}
}
