package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default Sky Jumper configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Canvas: CanvasConfig{
			Width:  400,
			Height: 600,
		},
		Physics: JumperPhysics{
			Gravity:          0.4,
			JumpStrength:     -12,
			MoveSpeed:        5,
			Drag:             0.8,
			SpringMultiplier: 1.5,
		},
		Player: JumperPlayer{
			StartX: 200,
			StartY: 400,
			Width:  40,
			Height: 50,
		},
		Platforms: JumperPlatforms{
			Width:          80,
			Height:         15,
			LandingBand:    10,
			SpringCutoff:   0.85,
			BreakingCutoff: 0.70,
		},
		Spawns: JumperSpawns{
			EnemyChance:    0.2,
			ObstacleChance: 0.1,
			EnemyWidth:     50,
			EnemyHeight:    50,
			ObstacleSize:   60,
			Offset:         100,
		},
		Bullets: JumperBullets{
			Speed:  -10,
			Hitbox: 8,
		},
		Camera: CameraConfig{
			Trigger: 1.0 / 3.0,
		},
		Margins: MarginsConfig{
			Fall:   100,
			Prune:  200,
			Bullet: 100,
		},
		Scoring: ScoringConfig{
			Unit: 10,
		},
		Stages: []StageConfig{
			{Threshold: 0, MinGap: 50, MaxGap: 100, PlatformCount: 8, Label: "Easy"},
			{Threshold: 100, MinGap: 70, MaxGap: 130, PlatformCount: 6, Label: "Medium"},
			{Threshold: 300, MinGap: 90, MaxGap: 160, PlatformCount: 5, Label: "Hard"},
			{Threshold: 500, MinGap: 110, MaxGap: 190, PlatformCount: 4, Label: "Expert"},
			{Threshold: 1000, MinGap: 130, MaxGap: 220, PlatformCount: 3, Label: "Master"},
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			StartStage: 1,
		},
		Controls: ControlsConfig{
			KeyHoldMs:   450,
			KeyRepeatMs: 120,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "jumper":
		return defaultJumperYAML
	default:
		return nil
	}
}
