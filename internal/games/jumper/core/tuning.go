package core

import (
	"fmt"
)

// Tuning holds every constant the simulation reads.
// All distances are world units on the logical canvas; speeds are per tick.
type Tuning struct {
	CanvasW float64
	CanvasH float64

	Gravity          float64 // Added to VY every tick
	JumpStrength     float64 // Bounce velocity, negative is up
	MoveSpeed        float64 // |VX| while a direction is held
	Drag             float64 // VX multiplier per tick with no direction held
	SpringMultiplier float64 // Applied to JumpStrength on springs

	PlayerStartX float64
	PlayerStartY float64
	PlayerW      float64
	PlayerH      float64

	PlatformW      float64
	PlatformH      float64
	LandingBand    float64 // Extra depth below a platform's bottom that still counts as landing
	SpringCutoff   float64 // Variant draw above this is a spring
	BreakingCutoff float64 // Variant draw above this (and not spring) is breaking

	EnemyChance    float64 // Per generated platform
	ObstacleChance float64 // Per generated platform
	EnemyW         float64
	EnemyH         float64
	ObstacleSize   float64
	SpawnOffset    float64 // Hazards spawn this far above their platform

	BulletSpeed  float64 // Negative is up
	BulletHitbox float64 // Side of the square centered on the bullet

	CameraTrigger float64 // Fraction of CanvasH; camera follows once the player is above it

	FallMargin   float64 // Below the view before the player is lost
	PruneMargin  float64 // Below the view before entities are dropped
	BulletMargin float64 // Above the view before bullets are dropped

	ScoreUnit float64 // Camera distance per point

	Stages      StageTable
	StageFloor  int  // Lowest stage a run can be in
	Progression bool // When false the stage stays at StageFloor
}

// DefaultTuning returns the stock game constants.
func DefaultTuning() Tuning {
	return Tuning{
		CanvasW: 400,
		CanvasH: 600,

		Gravity:          0.4,
		JumpStrength:     -12,
		MoveSpeed:        5,
		Drag:             0.8,
		SpringMultiplier: 1.5,

		PlayerStartX: 200,
		PlayerStartY: 400,
		PlayerW:      40,
		PlayerH:      50,

		PlatformW:      80,
		PlatformH:      15,
		LandingBand:    10,
		SpringCutoff:   0.85,
		BreakingCutoff: 0.70,

		EnemyChance:    0.2,
		ObstacleChance: 0.1,
		EnemyW:         50,
		EnemyH:         50,
		ObstacleSize:   60,
		SpawnOffset:    100,

		BulletSpeed:  -10,
		BulletHitbox: 8,

		CameraTrigger: 1.0 / 3.0,

		FallMargin:   100,
		PruneMargin:  200,
		BulletMargin: 100,

		ScoreUnit: 10,

		Stages:      DefaultStageTable(),
		StageFloor:  1,
		Progression: true,
	}
}

// Validate rejects tunings that cannot produce a playable world.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"canvas width", t.CanvasW},
		{"canvas height", t.CanvasH},
		{"gravity", t.Gravity},
		{"move speed", t.MoveSpeed},
		{"spring multiplier", t.SpringMultiplier},
		{"player width", t.PlayerW},
		{"player height", t.PlayerH},
		{"platform width", t.PlatformW},
		{"platform height", t.PlatformH},
		{"enemy width", t.EnemyW},
		{"enemy height", t.EnemyH},
		{"obstacle size", t.ObstacleSize},
		{"bullet hitbox", t.BulletHitbox},
		{"score unit", t.ScoreUnit},
	}
	for _, f := range positive {
		if f.v <= 0 {
			return fmt.Errorf("jumper: %s must be positive, got %v", f.name, f.v)
		}
	}
	if t.JumpStrength >= 0 {
		return fmt.Errorf("jumper: jump strength must be negative, got %v", t.JumpStrength)
	}
	if t.BulletSpeed >= 0 {
		return fmt.Errorf("jumper: bullet speed must be negative, got %v", t.BulletSpeed)
	}
	if t.Drag < 0 || t.Drag >= 1 {
		return fmt.Errorf("jumper: drag must be in [0, 1), got %v", t.Drag)
	}
	if t.PlatformW >= t.CanvasW || t.EnemyW >= t.CanvasW || t.ObstacleSize >= t.CanvasW {
		return fmt.Errorf("jumper: entities must be narrower than the canvas")
	}
	if t.BreakingCutoff < 0 || t.BreakingCutoff > t.SpringCutoff || t.SpringCutoff > 1 {
		return fmt.Errorf("jumper: variant cutoffs must satisfy 0 <= breaking (%v) <= spring (%v) <= 1",
			t.BreakingCutoff, t.SpringCutoff)
	}
	if t.EnemyChance < 0 || t.EnemyChance > 1 || t.ObstacleChance < 0 || t.ObstacleChance > 1 {
		return fmt.Errorf("jumper: spawn chances must be in [0, 1]")
	}
	if t.CameraTrigger <= 0 || t.CameraTrigger >= 1 {
		return fmt.Errorf("jumper: camera trigger must be in (0, 1), got %v", t.CameraTrigger)
	}
	if t.LandingBand < 0 || t.FallMargin < 0 || t.PruneMargin < 0 || t.BulletMargin < 0 || t.SpawnOffset < 0 {
		return fmt.Errorf("jumper: margins must not be negative")
	}
	// Plain bounces must climb the opening triads.
	if climb := easyRowOffsets[1] - easyRowOffsets[0] + easyMiddleLift; climb >= t.MaxJumpHeight() {
		return fmt.Errorf("jumper: jump reaches %.0f, opening rows need %.0f", t.MaxJumpHeight(), climb)
	}
	if t.StageFloor < 1 || t.StageFloor > MaxStage {
		return fmt.Errorf("jumper: stage floor must be in [1, %d], got %d", MaxStage, t.StageFloor)
	}
	if err := t.Stages.Validate(); err != nil {
		return fmt.Errorf("jumper: stage table: %w", err)
	}
	return nil
}

// stageFor applies the floor and progression switch on top of the table lookup.
func (t *Tuning) stageFor(score int) int {
	if !t.Progression {
		return t.StageFloor
	}
	return max(t.StageFloor, t.Stages.StageForScore(score))
}

// MaxJumpHeight is the apex height of a normal bounce.
func (t *Tuning) MaxJumpHeight() float64 {
	return t.JumpStrength * t.JumpStrength / (2 * t.Gravity)
}
