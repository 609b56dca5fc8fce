package core

import (
	"testing"
)

func TestStageForScore(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{-10, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{499, 3},
		{500, 4},
		{999, 4},
		{1000, 5},
		{50000, 5},
	}

	for _, tt := range tests {
		if got := StageForScore(tt.score); got != tt.want {
			t.Errorf("StageForScore(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestStageForScoreMonotonic(t *testing.T) {
	prev := StageForScore(-100)
	for s := -99; s <= 3000; s++ {
		got := StageForScore(s)
		if got < prev {
			t.Fatalf("stage dropped from %d to %d at score %d", prev, got, s)
		}
		if got < 1 || got > MaxStage {
			t.Fatalf("StageForScore(%d) = %d, out of [1, %d]", s, got, MaxStage)
		}
		prev = got
	}
}

func TestParamsForStage(t *testing.T) {
	tests := []struct {
		stage int
		want  StageParams
	}{
		{1, StageParams{50, 100, 8, "Easy"}},
		{2, StageParams{70, 130, 6, "Medium"}},
		{3, StageParams{90, 160, 5, "Hard"}},
		{4, StageParams{110, 190, 4, "Expert"}},
		{5, StageParams{130, 220, 3, "Master"}},
		{6, StageParams{130, 220, 3, "Master"}},
		{99, StageParams{130, 220, 3, "Master"}},
		{0, StageParams{50, 100, 8, "Easy"}},
	}

	for _, tt := range tests {
		got := ParamsForStage(tt.stage)
		if got != tt.want {
			t.Errorf("ParamsForStage(%d) = %+v, want %+v", tt.stage, got, tt.want)
		}
		if got.MinGap > got.MaxGap || got.PlatformCount <= 0 {
			t.Errorf("ParamsForStage(%d) is degenerate: %+v", tt.stage, got)
		}
	}
}

func TestStageTableValidate(t *testing.T) {
	if err := DefaultStageTable().Validate(); err != nil {
		t.Fatalf("default table rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*StageTable)
	}{
		{"min above max", func(st *StageTable) { st.Params[2].MinGap = 200 }},
		{"zero count", func(st *StageTable) { st.Params[0].PlatformCount = 0 }},
		{"non-zero first threshold", func(st *StageTable) { st.Thresholds[0] = 5 }},
		{"unordered thresholds", func(st *StageTable) { st.Thresholds[3] = 200 }},
		{"shrinking gaps", func(st *StageTable) { st.Params[4].MaxGap = 150; st.Params[4].MinGap = 100 }},
		{"growing count", func(st *StageTable) { st.Params[1].PlatformCount = 9 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := DefaultStageTable()
			tt.mutate(&st)
			if err := st.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestStageFloorAndProgression(t *testing.T) {
	tu := DefaultTuning()
	tu.StageFloor = 3
	if got := tu.stageFor(0); got != 3 {
		t.Errorf("floor 3 at score 0: got stage %d", got)
	}
	if got := tu.stageFor(600); got != 4 {
		t.Errorf("floor 3 at score 600: got stage %d", got)
	}

	tu.Progression = false
	if got := tu.stageFor(5000); got != 3 {
		t.Errorf("progression off: got stage %d, want floor 3", got)
	}
}

func TestTuningValidate(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"positive jump", func(tu *Tuning) { tu.JumpStrength = 12 }},
		{"zero gravity", func(tu *Tuning) { tu.Gravity = 0 }},
		{"weak jump", func(tu *Tuning) { tu.JumpStrength = -5 }},
		{"drag of one", func(tu *Tuning) { tu.Drag = 1 }},
		{"platform wider than canvas", func(tu *Tuning) { tu.PlatformW = 500 }},
		{"cutoffs swapped", func(tu *Tuning) { tu.BreakingCutoff = 0.9 }},
		{"chance above one", func(tu *Tuning) { tu.EnemyChance = 1.5 }},
		{"floor out of range", func(tu *Tuning) { tu.StageFloor = 6 }},
		{"bad stage table", func(tu *Tuning) { tu.Stages.Params[0].MaxGap = 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu := DefaultTuning()
			tt.mutate(&tu)
			if err := tu.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
