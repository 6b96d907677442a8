package engine

import (
	"time"

	"github.com/lixenwraith/chaser/config"
)

// TestConfig returns the default tuning with a fixed seed and audio off
func TestConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 1
	cfg.Audio.Enabled = false
	return cfg
}

// NewTestGameState creates a round from TestConfig
func NewTestGameState() *GameState {
	return NewGameState(TestConfig())
}

// StaticTestConfig freezes the chaser and pushes pickup spawns out of reach of short tests
func StaticTestConfig() config.Config {
	cfg := TestConfig()
	cfg.Chaser.Speed = 0
	cfg.Chaser.SpeedIncrement = 0
	cfg.Pickups.SpawnInterval = time.Hour
	cfg.Pickups.PaintSpawnInterval = time.Hour
	return cfg
}
