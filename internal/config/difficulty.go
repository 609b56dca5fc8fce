package config

import (
	"fmt"
	"strings"
)

// ParsePreset converts a flag value into a preset. An empty string means
// no preset and returns ok=false.
func ParsePreset(s string) (preset DifficultyPreset, ok bool, err error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return "", false, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true, nil
	default:
		return "", false, fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyJumperPreset modifies the config based on a difficulty preset.
// Fixed keeps the configured start stage and turns progression off.
func ApplyJumperPreset(cfg *JumperConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.StartStage = StartStageForPreset(preset)

	// Hazards scale with the preset on top of the stage floor.
	switch preset {
	case DifficultyEasy:
		cfg.Spawns.EnemyChance = 0.1
		cfg.Spawns.ObstacleChance = 0.05
	case DifficultyHard:
		cfg.Spawns.EnemyChance = 0.3
		cfg.Spawns.ObstacleChance = 0.15
	}
}
