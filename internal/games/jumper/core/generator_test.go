package core

import (
	"math/rand"
	"reflect"
	"testing"
)

func newTestGenerator(seed int64) *Generator {
	tu := DefaultTuning()
	return NewGenerator(rand.New(rand.NewSource(seed)), &tu)
}

func TestGenerateBatchShape(t *testing.T) {
	for stage := 1; stage <= MaxStage; stage++ {
		g := newTestGenerator(int64(stage))
		params := ParamsForStage(stage)
		anchor := -1234.0

		batch := g.GenerateBatch(anchor, stage)
		if len(batch.Platforms) != params.PlatformCount {
			t.Fatalf("stage %d: got %d platforms, want %d", stage, len(batch.Platforms), params.PlatformCount)
		}

		prev := anchor
		for i, p := range batch.Platforms {
			gap := prev - p.Y
			if gap < params.MinGap || gap > params.MaxGap {
				t.Errorf("stage %d platform %d: gap %.2f outside [%v, %v]", stage, i, gap, params.MinGap, params.MaxGap)
			}
			if p.X < 0 || p.X >= g.tuning.CanvasW-p.W {
				t.Errorf("stage %d platform %d: x %.2f outside canvas", stage, i, p.X)
			}
			if p.Broken {
				t.Errorf("stage %d platform %d: generated broken", stage, i)
			}
			prev = p.Y
		}
	}
}

func TestGenerateBatchHazardsNearPlatforms(t *testing.T) {
	g := newTestGenerator(7)
	g.tuning.EnemyChance = 1
	g.tuning.ObstacleChance = 1

	batch := g.GenerateBatch(0, 1)
	if len(batch.Enemies) != len(batch.Platforms) || len(batch.Obstacles) != len(batch.Platforms) {
		t.Fatalf("certain spawns: got %d enemies and %d obstacles for %d platforms",
			len(batch.Enemies), len(batch.Obstacles), len(batch.Platforms))
	}
	for i, p := range batch.Platforms {
		if batch.Enemies[i].Y != p.Y-g.tuning.SpawnOffset {
			t.Errorf("enemy %d at y=%.2f, want %.2f", i, batch.Enemies[i].Y, p.Y-g.tuning.SpawnOffset)
		}
		if batch.Obstacles[i].Y != p.Y-g.tuning.SpawnOffset {
			t.Errorf("obstacle %d at y=%.2f, want %.2f", i, batch.Obstacles[i].Y, p.Y-g.tuning.SpawnOffset)
		}
		if batch.Obstacles[i].Kind != ObstacleBlackhole {
			t.Errorf("obstacle %d kind = %v", i, batch.Obstacles[i].Kind)
		}
		if x := batch.Enemies[i].X; x < 0 || x >= g.tuning.CanvasW-g.tuning.EnemyW {
			t.Errorf("enemy %d x=%.2f outside canvas", i, x)
		}
	}

	g.tuning.EnemyChance = 0
	g.tuning.ObstacleChance = 0
	batch = g.GenerateBatch(0, 1)
	if len(batch.Enemies) != 0 || len(batch.Obstacles) != 0 {
		t.Errorf("zero chance still spawned %d enemies, %d obstacles", len(batch.Enemies), len(batch.Obstacles))
	}
}

func TestGenerateBatchVariantMix(t *testing.T) {
	g := newTestGenerator(99)
	counts := map[PlatformKind]int{}
	for i := 0; i < 500; i++ {
		for _, p := range g.GenerateBatch(0, 1).Platforms {
			counts[p.Kind]++
		}
	}
	total := counts[PlatformNormal] + counts[PlatformBreaking] + counts[PlatformSpring]
	// Expected shares are 70/15/15.
	if share := float64(counts[PlatformNormal]) / float64(total); share < 0.6 || share > 0.8 {
		t.Errorf("normal share = %.2f", share)
	}
	if counts[PlatformBreaking] == 0 || counts[PlatformSpring] == 0 {
		t.Errorf("missing variants: %v", counts)
	}
}

func TestGenerateBatchDeterministic(t *testing.T) {
	a := newTestGenerator(42).GenerateBatch(-300, 2)
	b := newTestGenerator(42).GenerateBatch(-300, 2)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different batches")
	}

	c := newTestGenerator(43).GenerateBatch(-300, 2)
	if reflect.DeepEqual(a.Platforms, c.Platforms) {
		t.Error("different seeds produced identical platforms")
	}
}

func TestInitialLayoutIndependentOfSeed(t *testing.T) {
	want := newTestGenerator(1).EasyLayout()
	if len(want) != 10 {
		t.Fatalf("easy layout has %d platforms, want 10", len(want))
	}

	for _, seed := range []int64{0, 2, 12345, -7} {
		got := newTestGenerator(seed).InitialLayout()
		if !reflect.DeepEqual(got.Platforms[:len(want)], want) {
			t.Errorf("seed %d: easy section differs", seed)
		}
		if len(got.Platforms) != len(want)+ParamsForStage(1).PlatformCount {
			t.Errorf("seed %d: got %d platforms", seed, len(got.Platforms))
		}
	}
}

func TestInitialLayoutStartPlatformUnderPlayer(t *testing.T) {
	g := newTestGenerator(5)
	tu := g.tuning
	start := g.EasyLayout()[0]

	playerLeft, playerRight := tu.PlayerStartX, tu.PlayerStartX+tu.PlayerW
	if start.X >= playerLeft || start.X+start.W <= playerRight {
		t.Errorf("start platform [%.0f, %.0f] does not span player [%.0f, %.0f]",
			start.X, start.X+start.W, playerLeft, playerRight)
	}
	if start.Y <= tu.PlayerStartY+tu.PlayerH {
		t.Errorf("start platform y=%.0f is not below player feet %.0f", start.Y, tu.PlayerStartY+tu.PlayerH)
	}
	if start.Kind != PlatformNormal {
		t.Errorf("start platform kind = %v", start.Kind)
	}
}

func TestEasyLayoutGaps(t *testing.T) {
	g := newTestGenerator(0)
	triads := g.EasyLayout()[1:]
	if len(triads) != 9 {
		t.Fatalf("got %d triad platforms, want 9", len(triads))
	}

	reach := g.tuning.MaxJumpHeight()
	for i := 0; i < len(triads); i += 3 {
		row := triads[i : i+3]
		for j := 1; j < 3; j++ {
			if gap := row[j-1].Y - row[j].Y; gap > 40 || gap < -40 {
				t.Errorf("triad %d: gap %.0f between platforms %d and %d", i/3, gap, j-1, j)
			}
		}
		for _, p := range row {
			if p.Kind != PlatformNormal {
				t.Errorf("triad %d has a %v platform", i/3, p.Kind)
			}
		}
		if i > 0 {
			if climb := triads[i-3].Y - row[0].Y; climb >= reach {
				t.Errorf("triad %d is %.0f above the previous one, jump reaches %.0f", i/3, climb, reach)
			}
		}
	}
}
