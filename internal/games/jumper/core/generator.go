package core

import (
	"math/rand"
)

// Easy rows sit this far apart, counted up from the bottom of the canvas.
var (
	easyRowOffsets = [3]float64{200, 320, 440}
	easyRowXs      = [3][3]float64{
		{80, 200, 320},
		{60, 180, 300},
		{100, 220, 340},
	}
)

const (
	startPlatformOffset = 80 // Start platform height above the canvas bottom
	easyMiddleLift      = 20 // Middle platform of each triad sits this much higher
	easyBatchLift       = 60 // First random batch starts this far above the last triad
)

// Generator produces platforms and their hazards from an injected RNG.
type Generator struct {
	rng    *rand.Rand
	tuning *Tuning
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand, tuning *Tuning) *Generator {
	return &Generator{rng: rng, tuning: tuning}
}

// GenerateBatch produces the stage's platform count above anchorY,
// each strictly higher than the last, and rolls hazards per platform.
func (g *Generator) GenerateBatch(anchorY float64, stage int) Batch {
	params := g.tuning.Stages.ParamsForStage(stage)
	t := g.tuning

	batch := Batch{Platforms: make([]Platform, 0, params.PlatformCount)}
	y := anchorY
	for i := 0; i < params.PlatformCount; i++ {
		x := g.rng.Float64() * (t.CanvasW - t.PlatformW)
		y -= g.rng.Float64()*(params.MaxGap-params.MinGap) + params.MinGap
		batch.Platforms = append(batch.Platforms, Platform{
			X:    x,
			Y:    y,
			W:    t.PlatformW,
			H:    t.PlatformH,
			Kind: g.pickKind(),
		})
	}

	for _, p := range batch.Platforms {
		if g.rng.Float64() < t.EnemyChance {
			batch.Enemies = append(batch.Enemies, Enemy{
				X: g.rng.Float64() * (t.CanvasW - t.EnemyW),
				Y: p.Y - t.SpawnOffset,
				W: t.EnemyW,
				H: t.EnemyH,
			})
		}
		if g.rng.Float64() < t.ObstacleChance {
			batch.Obstacles = append(batch.Obstacles, Obstacle{
				X:    g.rng.Float64() * (t.CanvasW - t.ObstacleSize),
				Y:    p.Y - t.SpawnOffset,
				Size: t.ObstacleSize,
				Kind: ObstacleBlackhole,
			})
		}
	}
	return batch
}

func (g *Generator) pickKind() PlatformKind {
	u := g.rng.Float64()
	switch {
	case u > g.tuning.SpringCutoff:
		return PlatformSpring
	case u > g.tuning.BreakingCutoff:
		return PlatformBreaking
	default:
		return PlatformNormal
	}
}

// EasyLayout returns the fixed opening section: the start platform under the
// player followed by three triads. It uses no randomness.
func (g *Generator) EasyLayout() []Platform {
	t := g.tuning
	normal := func(x, y float64) Platform {
		return Platform{X: x, Y: y, W: t.PlatformW, H: t.PlatformH, Kind: PlatformNormal}
	}

	startX := t.PlayerStartX + t.PlayerW/2 - t.PlatformW/2
	platforms := []Platform{normal(startX, t.CanvasH-startPlatformOffset)}
	for i, offset := range easyRowOffsets {
		row := t.CanvasH - offset
		xs := easyRowXs[i]
		platforms = append(platforms,
			normal(xs[0], row),
			normal(xs[1], row-easyMiddleLift),
			normal(xs[2], row),
		)
	}
	return platforms
}

// InitialLayout returns the easy section followed by one stage-1 batch
// anchored above the last triad.
func (g *Generator) InitialLayout() Batch {
	easy := g.EasyLayout()
	anchor := g.tuning.CanvasH - easyRowOffsets[len(easyRowOffsets)-1] - easyBatchLift
	batch := g.GenerateBatch(anchor, 1)
	batch.Platforms = append(easy, batch.Platforms...)
	return batch
}
