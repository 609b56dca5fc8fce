package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

// isolateSearchPath points the user and local config lookups at empty dirs.
func isolateSearchPath(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg JumperConfig
	if err := yaml.Unmarshal(GetDefaultYAML("jumper"), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	want := DefaultJumperConfig()
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults differ from DefaultJumperConfig:\n got %+v\nwant %+v", cfg, want)
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game returned yaml")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultJumperConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JumperConfig)
	}{
		{"too few stages", func(c *JumperConfig) { c.Stages = c.Stages[:4] }},
		{"unlabeled stage", func(c *JumperConfig) { c.Stages[2].Label = "" }},
		{"start stage zero", func(c *JumperConfig) { c.Difficulty.StartStage = 0 }},
		{"start stage six", func(c *JumperConfig) { c.Difficulty.StartStage = 6 }},
		{"no key hold", func(c *JumperConfig) { c.Controls.KeyHoldMs = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultJumperConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadJumperFallsBackToEmbedded(t *testing.T) {
	isolateSearchPath(t)

	cfg, err := LoadJumper("")
	if err != nil {
		t.Fatalf("LoadJumper: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultJumperConfig()) {
		t.Error("fallback config differs from defaults")
	}
}

func TestLoadJumperCustomPathOverlaysDefaults(t *testing.T) {
	isolateSearchPath(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 0.5\ndifficulty:\n  start_stage: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadJumper(path)
	if err != nil {
		t.Fatalf("LoadJumper: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 || cfg.Difficulty.StartStage != 2 {
		t.Errorf("overrides not applied: gravity=%v start=%d", cfg.Physics.Gravity, cfg.Difficulty.StartStage)
	}
	if cfg.Physics.JumpStrength != -12 || len(cfg.Stages) != StageCount {
		t.Errorf("defaults lost: jump=%v stages=%d", cfg.Physics.JumpStrength, len(cfg.Stages))
	}
}

func TestLoadJumperCustomPathErrors(t *testing.T) {
	isolateSearchPath(t)

	if _, err := LoadJumper(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadJumper(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLoadJumperSearchOrder(t *testing.T) {
	home := isolateSearchPath(t)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "jumper.yaml"), []byte("scoring:\n  unit: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadJumper("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scoring.Unit != 5 {
		t.Errorf("local config ignored: unit=%v", cfg.Scoring.Unit)
	}

	userDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "jumper.yaml"), []byte("scoring:\n  unit: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadJumper("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scoring.Unit != 20 {
		t.Errorf("user config should win over local: unit=%v", cfg.Scoring.Unit)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		ok      bool
		wantErr bool
	}{
		{"", "", false, false},
		{"easy", DifficultyEasy, true, false},
		{" Hard ", DifficultyHard, true, false},
		{"fixed", DifficultyFixed, true, false},
		{"nightmare", "", false, true},
	}

	for _, tt := range tests {
		got, ok, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = %q, %v, %v", tt.in, got, ok, err)
		}
	}
}

func TestApplyJumperPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantStart   int
	}{
		{DifficultyEasy, true, 1},
		{DifficultyNormal, true, 1},
		{DifficultyHard, true, 3},
		{DifficultyFixed, false, 2},
	}

	for _, tt := range tests {
		cfg := DefaultJumperConfig()
		cfg.Difficulty.StartStage = 2
		ApplyJumperPreset(&cfg, tt.preset)
		if cfg.Difficulty.Enabled != tt.wantEnabled || cfg.Difficulty.StartStage != tt.wantStart {
			t.Errorf("%s: enabled=%v start=%d, want %v %d",
				tt.preset, cfg.Difficulty.Enabled, cfg.Difficulty.StartStage, tt.wantEnabled, tt.wantStart)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: preset produced invalid config: %v", tt.preset, err)
		}
	}
}
