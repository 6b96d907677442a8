// Package config holds the round tuning and its loaders
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/chaser/constants"
)

// Config is the complete tuning for one game session
// Zero Seed asks the caller to pick a time-based seed
type Config struct {
	Seed    int64         `yaml:"seed"`
	Canvas  CanvasConfig  `yaml:"canvas"`
	Chaser  ChaserConfig  `yaml:"chaser"`
	Player  PlayerConfig  `yaml:"player"`
	Score   ScoreConfig   `yaml:"score"`
	Pickups PickupConfig  `yaml:"pickups"`
	Effects EffectConfig  `yaml:"effects"`
	Win     WinConfig     `yaml:"win"`
	Audio   AudioConfig   `yaml:"audio"`
}

// CanvasConfig is the initial canvas size, the front end may resize later
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ChaserConfig tunes the pursuer
type ChaserConfig struct {
	StartX         float64       `yaml:"start_x"`
	StartY         float64       `yaml:"start_y"`
	Radius         float64       `yaml:"radius"`
	Speed          float64       `yaml:"speed"`
	SpeedIncrement float64       `yaml:"speed_increment"`
	MaxSpeed       float64       `yaml:"max_speed"` // 0 = unbounded
	RampInterval   time.Duration `yaml:"ramp_interval"`
	SettleDistance float64       `yaml:"settle_distance"`
}

// PlayerConfig tunes the cursor proxy
type PlayerConfig struct {
	HitRadius float64 `yaml:"hit_radius"`
	KeySpeed  float64 `yaml:"key_speed"`
}

// ScoreConfig tunes the survival score
type ScoreConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// PickupConfig tunes pickup spawning
type PickupConfig struct {
	SpawnInterval      time.Duration `yaml:"spawn_interval"`
	Size               float64       `yaml:"size"`
	PaintSpawnInterval time.Duration `yaml:"paint_spawn_interval"`
	PaintLifetime      time.Duration `yaml:"paint_lifetime"`
	PaintSize          float64       `yaml:"paint_size"`
	Margin             float64       `yaml:"margin"`
}

// EffectConfig holds effect windows
type EffectConfig struct {
	Stealth        time.Duration `yaml:"stealth"`
	Shield         time.Duration `yaml:"shield"`
	PaintMode      time.Duration `yaml:"paint_mode"`
	StrokeLifetime time.Duration `yaml:"stroke_lifetime"`
}

// WinConfig tunes the scripted win sequence
type WinConfig struct {
	Decoys      int `yaml:"decoys"`
	CrackClicks int `yaml:"crack_clicks"`
	BreakClicks int `yaml:"break_clicks"`
}

// AudioConfig controls sound cues
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 - 1.0
	SampleRate   int     `yaml:"sample_rate"`
}

// Default returns the tuning of the original game
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  constants.DefaultCanvasWidth,
			Height: constants.DefaultCanvasHeight,
		},
		Chaser: ChaserConfig{
			StartX:         constants.ChaserStartX,
			StartY:         constants.ChaserStartY,
			Radius:         constants.ChaserRadius,
			Speed:          constants.ChaserStartSpeed,
			SpeedIncrement: constants.ChaserSpeedIncrement,
			MaxSpeed:       constants.ChaserMaxSpeed,
			RampInterval:   constants.SpeedRampInterval,
			SettleDistance: constants.ChaserSettleDistance,
		},
		Player: PlayerConfig{
			HitRadius: constants.PlayerHitRadius,
			KeySpeed:  constants.PlayerKeySpeed,
		},
		Score: ScoreConfig{
			Interval: constants.ScoreInterval,
		},
		Pickups: PickupConfig{
			SpawnInterval:      constants.PickupSpawnInterval,
			Size:               constants.PickupSize,
			PaintSpawnInterval: constants.PaintSpawnInterval,
			PaintLifetime:      constants.PaintPickupLifetime,
			PaintSize:          constants.PaintPickupSize,
			Margin:             constants.PickupSpawnMargin,
		},
		Effects: EffectConfig{
			Stealth:        constants.StealthDuration,
			Shield:         constants.ShieldDuration,
			PaintMode:      constants.PaintModeDuration,
			StrokeLifetime: constants.PaintStrokeLifetime,
		},
		Win: WinConfig{
			Decoys:      constants.WinDecoyCount,
			CrackClicks: constants.WinCrackClicks,
			BreakClicks: constants.WinBreakClicks,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   48000,
		},
	}
}

// Validate rejects tunings the simulation cannot run with
func (c Config) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positiveDur := func(name string, d time.Duration) {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, d))
		}
	}

	positive("canvas.width", c.Canvas.Width)
	positive("canvas.height", c.Canvas.Height)
	positive("chaser.radius", c.Chaser.Radius)
	positive("player.hit_radius", c.Player.HitRadius)
	positive("player.key_speed", c.Player.KeySpeed)
	positive("pickups.size", c.Pickups.Size)
	positive("pickups.paint_size", c.Pickups.PaintSize)

	if c.Chaser.Speed < 0 {
		errs = append(errs, fmt.Errorf("chaser.speed must not be negative, got %v", c.Chaser.Speed))
	}
	if c.Chaser.SpeedIncrement < 0 {
		errs = append(errs, fmt.Errorf("chaser.speed_increment must not be negative, got %v", c.Chaser.SpeedIncrement))
	}
	if c.Chaser.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("chaser.max_speed must not be negative, got %v", c.Chaser.MaxSpeed))
	}
	if c.Pickups.Margin < 0 || 2*c.Pickups.Margin > min(c.Canvas.Width, c.Canvas.Height) {
		errs = append(errs, fmt.Errorf("pickups.margin %v does not fit the canvas", c.Pickups.Margin))
	}

	positiveDur("chaser.ramp_interval", c.Chaser.RampInterval)
	positiveDur("score.interval", c.Score.Interval)
	positiveDur("pickups.spawn_interval", c.Pickups.SpawnInterval)
	positiveDur("pickups.paint_spawn_interval", c.Pickups.PaintSpawnInterval)
	positiveDur("pickups.paint_lifetime", c.Pickups.PaintLifetime)
	positiveDur("effects.stealth", c.Effects.Stealth)
	positiveDur("effects.shield", c.Effects.Shield)
	positiveDur("effects.paint_mode", c.Effects.PaintMode)
	positiveDur("effects.stroke_lifetime", c.Effects.StrokeLifetime)

	if c.Win.Decoys < 0 {
		errs = append(errs, fmt.Errorf("win.decoys must not be negative, got %d", c.Win.Decoys))
	}
	if c.Win.CrackClicks <= 0 || c.Win.BreakClicks < c.Win.CrackClicks {
		errs = append(errs, fmt.Errorf("win clicks need 0 < crack_clicks <= break_clicks, got %d/%d",
			c.Win.CrackClicks, c.Win.BreakClicks))
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.master_volume must be within [0, 1], got %v", c.Audio.MasterVolume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}

	return errors.Join(errs...)
}
