package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	jcore "github.com/vovakirdan/tui-jumper/internal/games/jumper/core"
)

// TuningFromConfig converts a loaded config into simulation tuning and
// validates the result.
func TuningFromConfig(cfg config.JumperConfig) (jcore.Tuning, error) {
	if err := cfg.Validate(); err != nil {
		return jcore.Tuning{}, err
	}

	var stages jcore.StageTable
	for i, s := range cfg.Stages {
		stages.Thresholds[i] = s.Threshold
		stages.Params[i] = jcore.StageParams{
			MinGap:        s.MinGap,
			MaxGap:        s.MaxGap,
			PlatformCount: s.PlatformCount,
			Label:         s.Label,
		}
	}

	t := jcore.Tuning{
		CanvasW: cfg.Canvas.Width,
		CanvasH: cfg.Canvas.Height,

		Gravity:          cfg.Physics.Gravity,
		JumpStrength:     cfg.Physics.JumpStrength,
		MoveSpeed:        cfg.Physics.MoveSpeed,
		Drag:             cfg.Physics.Drag,
		SpringMultiplier: cfg.Physics.SpringMultiplier,

		PlayerStartX: cfg.Player.StartX,
		PlayerStartY: cfg.Player.StartY,
		PlayerW:      cfg.Player.Width,
		PlayerH:      cfg.Player.Height,

		PlatformW:      cfg.Platforms.Width,
		PlatformH:      cfg.Platforms.Height,
		LandingBand:    cfg.Platforms.LandingBand,
		SpringCutoff:   cfg.Platforms.SpringCutoff,
		BreakingCutoff: cfg.Platforms.BreakingCutoff,

		EnemyChance:    cfg.Spawns.EnemyChance,
		ObstacleChance: cfg.Spawns.ObstacleChance,
		EnemyW:         cfg.Spawns.EnemyWidth,
		EnemyH:         cfg.Spawns.EnemyHeight,
		ObstacleSize:   cfg.Spawns.ObstacleSize,
		SpawnOffset:    cfg.Spawns.Offset,

		BulletSpeed:  cfg.Bullets.Speed,
		BulletHitbox: cfg.Bullets.Hitbox,

		CameraTrigger: cfg.Camera.Trigger,

		FallMargin:   cfg.Margins.Fall,
		PruneMargin:  cfg.Margins.Prune,
		BulletMargin: cfg.Margins.Bullet,

		ScoreUnit: cfg.Scoring.Unit,

		Stages:      stages,
		StageFloor:  cfg.Difficulty.StartStage,
		Progression: cfg.Difficulty.Enabled,
	}
	if err := t.Validate(); err != nil {
		return jcore.Tuning{}, err
	}
	return t, nil
}
