package core

import (
	"errors"
	"fmt"
)

// MaxStage is the highest difficulty stage.
const MaxStage = 5

// StageParams controls platform spacing for one stage.
type StageParams struct {
	MinGap        float64 // Smallest vertical gap between consecutive platforms
	MaxGap        float64 // Largest vertical gap
	PlatformCount int     // Platforms produced per batch
	Label         string
}

// StageTable maps cumulative score to stage and stage to generation parameters.
// Index i describes stage i+1.
type StageTable struct {
	Thresholds [MaxStage]int // Minimum score for each stage; Thresholds[0] is 0
	Params     [MaxStage]StageParams
}

// DefaultStageTable returns the stock five-stage progression.
func DefaultStageTable() StageTable {
	return StageTable{
		Thresholds: [MaxStage]int{0, 100, 300, 500, 1000},
		Params: [MaxStage]StageParams{
			{MinGap: 50, MaxGap: 100, PlatformCount: 8, Label: "Easy"},
			{MinGap: 70, MaxGap: 130, PlatformCount: 6, Label: "Medium"},
			{MinGap: 90, MaxGap: 160, PlatformCount: 5, Label: "Hard"},
			{MinGap: 110, MaxGap: 190, PlatformCount: 4, Label: "Expert"},
			{MinGap: 130, MaxGap: 220, PlatformCount: 3, Label: "Master"},
		},
	}
}

var defaultStages = DefaultStageTable()

// StageForScore returns the stage for a score using the default table.
func StageForScore(score int) int {
	return defaultStages.StageForScore(score)
}

// ParamsForStage returns generation parameters using the default table.
func ParamsForStage(stage int) StageParams {
	return defaultStages.ParamsForStage(stage)
}

// StageForScore returns the highest stage whose threshold is <= score.
// Always in [1, MaxStage].
func (t StageTable) StageForScore(score int) int {
	stage := 1
	for i := 1; i < MaxStage; i++ {
		if score >= t.Thresholds[i] {
			stage = i + 1
		}
	}
	return stage
}

// ParamsForStage returns the parameters for stage, clamped into [1, MaxStage].
func (t StageTable) ParamsForStage(stage int) StageParams {
	if stage < 1 {
		stage = 1
	}
	if stage > MaxStage {
		stage = MaxStage
	}
	return t.Params[stage-1]
}

// Validate checks that the table is well formed and gets harder with each stage.
func (t StageTable) Validate() error {
	if t.Thresholds[0] != 0 {
		return errors.New("stage 1 must start at score 0")
	}
	for i := 0; i < MaxStage; i++ {
		p := t.Params[i]
		if p.MinGap <= 0 {
			return fmt.Errorf("stage %d: min gap must be positive, got %v", i+1, p.MinGap)
		}
		if p.MinGap > p.MaxGap {
			return fmt.Errorf("stage %d: min gap %v exceeds max gap %v", i+1, p.MinGap, p.MaxGap)
		}
		if p.PlatformCount <= 0 {
			return fmt.Errorf("stage %d: platform count must be positive, got %d", i+1, p.PlatformCount)
		}
		if i == 0 {
			continue
		}
		prev := t.Params[i-1]
		if t.Thresholds[i] <= t.Thresholds[i-1] {
			return fmt.Errorf("stage %d: threshold %d is not above stage %d threshold %d",
				i+1, t.Thresholds[i], i, t.Thresholds[i-1])
		}
		if p.MinGap < prev.MinGap || p.MaxGap < prev.MaxGap {
			return fmt.Errorf("stage %d: gaps must not shrink", i+1)
		}
		if p.PlatformCount > prev.PlatformCount {
			return fmt.Errorf("stage %d: platform count must not grow", i+1)
		}
	}
	return nil
}
