// Package config provides YAML-based game configuration loading and
// difficulty presets for Sky Jumper.
package config

import (
	"errors"
	"fmt"
)

// StageCount is the number of entries a stage table must have.
const StageCount = 5

// JumperConfig contains all configuration for Sky Jumper.
// Distances are in logical canvas units, speeds in units per tick.
type JumperConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Physics    JumperPhysics    `yaml:"physics"`
	Player     JumperPlayer     `yaml:"player"`
	Platforms  JumperPlatforms  `yaml:"platforms"`
	Spawns     JumperSpawns     `yaml:"spawns"`
	Bullets    JumperBullets    `yaml:"bullets"`
	Camera     CameraConfig     `yaml:"camera"`
	Margins    MarginsConfig    `yaml:"margins"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Stages     []StageConfig    `yaml:"stages"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Controls   ControlsConfig   `yaml:"controls"`
}

// CanvasConfig is the logical world size the renderer scales to the terminal.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// JumperPhysics defines kinematic constants.
type JumperPhysics struct {
	Gravity          float64 `yaml:"gravity"`
	JumpStrength     float64 `yaml:"jump_strength"` // Negative = up
	MoveSpeed        float64 `yaml:"move_speed"`
	Drag             float64 `yaml:"drag"`              // Horizontal decay with no direction held
	SpringMultiplier float64 `yaml:"spring_multiplier"` // Applied to jump_strength on springs
}

// JumperPlayer defines the player's start position and hitbox.
type JumperPlayer struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// JumperPlatforms defines platform size, landing band and variant cutoffs.
type JumperPlatforms struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	LandingBand    float64 `yaml:"landing_band"`
	SpringCutoff   float64 `yaml:"spring_cutoff"`
	BreakingCutoff float64 `yaml:"breaking_cutoff"`
}

// JumperSpawns defines hazard spawn chances and sizes.
type JumperSpawns struct {
	EnemyChance    float64 `yaml:"enemy_chance"`
	ObstacleChance float64 `yaml:"obstacle_chance"`
	EnemyWidth     float64 `yaml:"enemy_width"`
	EnemyHeight    float64 `yaml:"enemy_height"`
	ObstacleSize   float64 `yaml:"obstacle_size"`
	Offset         float64 `yaml:"offset"` // Height above the platform
}

// JumperBullets defines bullet speed and hitbox.
type JumperBullets struct {
	Speed  float64 `yaml:"speed"` // Negative = up
	Hitbox float64 `yaml:"hitbox"`
}

// CameraConfig defines when the camera follows the player.
type CameraConfig struct {
	Trigger float64 `yaml:"trigger"` // Fraction of canvas height from the top
}

// MarginsConfig defines how far past the view things survive.
type MarginsConfig struct {
	Fall   float64 `yaml:"fall"`
	Prune  float64 `yaml:"prune"`
	Bullet float64 `yaml:"bullet"`
}

// ScoringConfig defines how camera travel converts to points.
type ScoringConfig struct {
	Unit float64 `yaml:"unit"`
}

// StageConfig is one row of the difficulty ladder.
type StageConfig struct {
	Threshold     int     `yaml:"threshold"` // Score at which the stage starts
	MinGap        float64 `yaml:"min_gap"`
	MaxGap        float64 `yaml:"max_gap"`
	PlatformCount int     `yaml:"platform_count"`
	Label         string  `yaml:"label"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled    bool `yaml:"enabled"`     // false = stay at start_stage
	StartStage int  `yaml:"start_stage"` // 1..5
}

// ControlsConfig tunes keyboard hold emulation. Terminals report key
// presses and autorepeats but no releases.
type ControlsConfig struct {
	KeyHoldMs   int `yaml:"key_hold_ms"`   // Hold after the first press
	KeyRepeatMs int `yaml:"key_repeat_ms"` // Hold after each autorepeat
}

// Validate checks the parts of the config that the simulation does not.
// Physics constants are validated when the world is built.
func (c JumperConfig) Validate() error {
	if len(c.Stages) != StageCount {
		return fmt.Errorf("config: need exactly %d stages, got %d", StageCount, len(c.Stages))
	}
	for i, s := range c.Stages {
		if s.Label == "" {
			return fmt.Errorf("config: stage %d has no label", i+1)
		}
	}
	if c.Difficulty.StartStage < 1 || c.Difficulty.StartStage > StageCount {
		return fmt.Errorf("config: start_stage must be in [1, %d], got %d", StageCount, c.Difficulty.StartStage)
	}
	if c.Controls.KeyHoldMs <= 0 || c.Controls.KeyRepeatMs <= 0 {
		return errors.New("config: key hold durations must be positive")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartStageForPreset returns the first stage of a run for a difficulty preset.
func StartStageForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyHard:
		return 3
	default:
		return 1
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
