package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/chaser/constants"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
	if cfg.Chaser.Radius != constants.ChaserRadius {
		t.Errorf("Expected chaser radius %v, got %v", constants.ChaserRadius, cfg.Chaser.Radius)
	}
	if cfg.Effects.Stealth != 3*time.Second {
		t.Errorf("Expected stealth 3s, got %v", cfg.Effects.Stealth)
	}
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	cfg := Default()
	doc := `
seed: 42
chaser:
  speed: 90
  max_speed: 400
effects:
  shield: 2s500ms
`
	if err := Decode(strings.NewReader(doc), &cfg); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Seed)
	}
	if cfg.Chaser.Speed != 90 {
		t.Errorf("Expected speed 90, got %v", cfg.Chaser.Speed)
	}
	if cfg.Chaser.MaxSpeed != 400 {
		t.Errorf("Expected max speed 400, got %v", cfg.Chaser.MaxSpeed)
	}
	if cfg.Effects.Shield != 2500*time.Millisecond {
		t.Errorf("Expected shield 2.5s, got %v", cfg.Effects.Shield)
	}
	// Untouched fields keep defaults
	if cfg.Chaser.Radius != constants.ChaserRadius {
		t.Errorf("Expected default radius kept, got %v", cfg.Chaser.Radius)
	}
	if cfg.Effects.Stealth != constants.StealthDuration {
		t.Errorf("Expected default stealth kept, got %v", cfg.Effects.Stealth)
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	cfg := Default()
	if err := Decode(strings.NewReader("chaser:\n  sped: 1\n"), &cfg); err == nil {
		t.Error("Expected error for unknown field")
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	cfg := Default()
	if err := Decode(strings.NewReader(""), &cfg); err != nil {
		t.Errorf("Expected empty document to be accepted, got %v", err)
	}
}

func TestEncodeRoundTripsDurations(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Default()); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(buf.String(), "stealth: 3s") {
		t.Errorf("Expected human readable durations, got:\n%s", buf.String())
	}

	cfg := Config{}
	if err := Decode(&buf, &cfg); err != nil {
		t.Fatalf("Decode of encoded config failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected encoded config to decode to defaults, got %+v", cfg)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Canvas.Width = 0
	cfg.Effects.Shield = 0
	cfg.Win.CrackClicks = 12

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"canvas.width", "effects.shield", "crack_clicks"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %q, got %v", want, err)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "150")

	cfg := Default()
	ApplyEnv(&cfg)

	if cfg.Seed != 1234 {
		t.Errorf("Expected seed 1234, got %d", cfg.Seed)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled from env")
	}
	if cfg.Audio.MasterVolume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", cfg.Audio.MasterVolume)
	}
}

func TestApplyEnvIgnoresMalformed(t *testing.T) {
	t.Setenv(EnvSeed, "not-a-number")
	t.Setenv(EnvAudioEnabled, "maybe")

	cfg := Default()
	ApplyEnv(&cfg)

	if cfg.Seed != 0 {
		t.Errorf("Expected seed untouched, got %d", cfg.Seed)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected audio enabled untouched")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chaser.yaml")
	if err := os.WriteFile(path, []byte("canvas:\n  width: 1024\n  height: 768\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Canvas.Width != 1024 || cfg.Canvas.Height != 768 {
		t.Errorf("Expected canvas 1024x768, got %vx%v", cfg.Canvas.Width, cfg.Canvas.Height)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("chaser:\n  radius: -3\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected validation error for negative radius")
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "CHASER_TEST_DOTENV_VALUE"
	t.Cleanup(func() { os.Unsetenv(key) })

	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	if got := os.Getenv(key); got != "from-file" {
		t.Errorf("Expected %q, got %q", "from-file", got)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/chaser.yaml")

	if got := ResolvePath("local.yaml"); got != "local.yaml" {
		t.Errorf("Expected flag value to win, got %q", got)
	}
	if got := ResolvePath(""); got != "/etc/chaser.yaml" {
		t.Errorf("Expected env fallback, got %q", got)
	}
}
