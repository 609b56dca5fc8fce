package jumper

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	jcore "github.com/vovakirdan/tui-jumper/internal/games/jumper/core"
)

// isolateConfig makes the loader see only the given YAML (or the embedded
// defaults when yaml is empty).
func isolateConfig(t *testing.T, yaml string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	path := ""
	if yaml != "" {
		path = filepath.Join(t.TempDir(), "jumper.yaml")
		if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	SetConfigPath(path)
	SetDifficultyPreset("")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

type recordingObserver struct {
	scores []int
	overs  []int
}

func (o *recordingObserver) ScoreChanged(score int) { o.scores = append(o.scores, score) }
func (o *recordingObserver) GameOver(score int)     { o.overs = append(o.overs, score) }

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 32, TickRate: 60, Seed: seed}
}

func TestTuningFromConfigDefaults(t *testing.T) {
	got, err := TuningFromConfig(config.DefaultJumperConfig())
	if err != nil {
		t.Fatalf("TuningFromConfig: %v", err)
	}
	if want := jcore.DefaultTuning(); !reflect.DeepEqual(got, want) {
		t.Errorf("default config tuning differs:\n got %+v\nwant %+v", got, want)
	}
}

func TestTuningFromConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.JumperConfig)
	}{
		{"four stages", func(c *config.JumperConfig) { c.Stages = c.Stages[:4] }},
		{"no gravity", func(c *config.JumperConfig) { c.Physics.Gravity = 0 }},
		{"inverted gaps", func(c *config.JumperConfig) { c.Stages[0].MinGap = 150 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultJumperConfig()
			tt.mutate(&cfg)
			if _, err := TuningFromConfig(cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadConfigAppliesPreset(t *testing.T) {
	isolateConfig(t, "")
	SetDifficultyPreset("hard")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Difficulty.StartStage != 3 || !cfg.Difficulty.Enabled {
		t.Errorf("difficulty = %+v, want start 3 enabled", cfg.Difficulty)
	}

	g := New()
	g.Reset(testRuntime(1))
	if g.State().Level != 3 || g.State().Label != "Hard" {
		t.Errorf("state = %+v, want stage 3", g.State())
	}
}

func TestGameDeterminism(t *testing.T) {
	isolateConfig(t, "")

	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%90 < 30 {
			inputs[i].Hold(core.ActionLeft, core.SourceKeyboard)
		}
		if i%25 == 0 {
			inputs[i].Set(core.ActionShoot)
		}
	}

	run := func() jcore.Snapshot {
		g := New()
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.World().Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("Determinism failed:\n%+v\n%+v", a, b)
	}
}

func TestGameResetStartsFreshWorld(t *testing.T) {
	isolateConfig(t, "")

	g := New()
	g.Reset(testRuntime(42))
	first := g.World()
	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionShoot)
		g.Step(in)
	}

	g.Reset(testRuntime(42))
	if g.World() == first {
		t.Fatal("Reset reused the previous world")
	}
	snap := g.World().Snapshot()
	if snap.Tick != 0 || snap.Score != 0 || snap.Bullets != 0 || snap.CameraY != 0 {
		t.Errorf("fresh world snapshot = %+v", snap)
	}
	if first.TickCount() != 50 {
		t.Errorf("old world was modified: tick %d", first.TickCount())
	}
}

func TestStepHeldTransitions(t *testing.T) {
	isolateConfig(t, "")
	g := New()
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.Hold(core.ActionLeft, core.SourceTouch)
	g.Step(in)
	if got := g.World().Intent(); got != (jcore.Intent{Left: true}) {
		t.Errorf("touch left: %+v", got)
	}

	in = core.NewInputFrame()
	in.Hold(core.ActionLeft, core.SourceTouch)
	in.Hold(core.ActionRight, core.SourceTouch)
	g.Step(in)
	if got := g.World().Intent(); got != (jcore.Intent{Right: true}) {
		t.Errorf("touch right while left held: %+v", got)
	}

	g.Step(core.NewInputFrame())
	if got := g.World().Intent(); got != (jcore.Intent{}) {
		t.Errorf("after release: %+v", got)
	}

	in = core.NewInputFrame()
	in.Hold(core.ActionLeft, core.SourceKeyboard)
	in.Hold(core.ActionRight, core.SourceKeyboard)
	g.Step(in)
	if got := g.World().Intent(); got != (jcore.Intent{Left: true, Right: true}) {
		t.Errorf("keyboard both: %+v", got)
	}
}

func TestStepPauseAndShoot(t *testing.T) {
	isolateConfig(t, "")
	g := New()
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	if res := g.Step(in); !res.State.Paused {
		t.Fatal("pause action did not pause")
	}

	in = core.NewInputFrame()
	in.Set(core.ActionShoot)
	g.Step(in)
	tick := g.World().TickCount()
	if len(g.World().Bullets()) != 1 {
		t.Errorf("bullets while paused = %d, want 1", len(g.World().Bullets()))
	}

	in = core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if g.State().Paused || g.World().TickCount() != tick+1 {
		t.Errorf("resume failed: paused=%v tick=%d", g.State().Paused, g.World().TickCount())
	}
}

func TestObserverNotified(t *testing.T) {
	// Starting below the start platform guarantees a fall.
	isolateConfig(t, `
player:
  start_y: 560
spawns:
  enemy_chance: 0
  obstacle_chance: 0
`)
	obs := &recordingObserver{}
	g := New()
	g.SetObserver(obs)
	g.Reset(testRuntime(3))

	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("player never fell")
	}
	if len(obs.overs) != 1 || obs.overs[0] != g.State().Score {
		t.Errorf("game over notifications = %v, score %d", obs.overs, g.State().Score)
	}
	if got := g.EndCause(); got != "fall" {
		t.Errorf("EndCause() = %q, want fall", got)
	}

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(obs.overs) != 1 {
		t.Errorf("game over notified %d times", len(obs.overs))
	}
}

func TestObserverScoreUpdates(t *testing.T) {
	// A bounce this strong carries the player past the camera trigger.
	isolateConfig(t, `
physics:
  jump_strength: -20
spawns:
  enemy_chance: 0
  obstacle_chance: 0
`)
	obs := &recordingObserver{}
	g := New()
	g.SetObserver(obs)
	g.Reset(testRuntime(3))

	for i := 0; i < 120 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(obs.scores) == 0 {
		t.Fatal("no score updates after a high bounce")
	}
	for i := 1; i < len(obs.scores); i++ {
		if obs.scores[i] <= obs.scores[i-1] {
			t.Fatalf("scores not increasing: %v", obs.scores)
		}
	}
}

func TestPrepareReusedByReset(t *testing.T) {
	isolateConfig(t, "")
	path := filepath.Join(t.TempDir(), "jumper.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  start_stage: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)

	if _, err := Prepare(); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	// Later edits to the file do not reach games of this session.
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := New()
	g.Reset(testRuntime(1))
	if g.ConfigErr() != nil {
		t.Errorf("ConfigErr() = %v, want nil", g.ConfigErr())
	}
	if g.State().Level != 2 {
		t.Errorf("stage = %d, want the prepared start stage 2", g.State().Level)
	}
}

func TestPrepareRejectsInvalidConfig(t *testing.T) {
	isolateConfig(t, "physics:\n  gravity: 0\n")

	if _, err := Prepare(); err == nil {
		t.Error("Prepare accepted a config without gravity")
	}
}

func TestResetFallsBackOnBadConfig(t *testing.T) {
	isolateConfig(t, "physics:\n  gravity: 0\n")

	g := New()
	g.Reset(testRuntime(1))
	if g.ConfigErr() == nil {
		t.Error("ConfigErr() = nil, want the load error")
	}
	if g.World() == nil || g.State().Level != 1 {
		t.Errorf("state = %+v, want a default run", g.State())
	}
	if g.Controls() != config.DefaultJumperConfig().Controls {
		t.Errorf("Controls() = %+v, want defaults", g.Controls())
	}
}

func TestSetPaused(t *testing.T) {
	isolateConfig(t, "")
	g := New()
	g.Reset(testRuntime(1))

	g.SetPaused(true)
	tick := g.World().TickCount()
	g.Step(core.NewInputFrame())
	if !g.State().Paused || g.World().TickCount() != tick {
		t.Errorf("paused=%v tick=%d, want paused at %d", g.State().Paused, g.World().TickCount(), tick)
	}

	g.SetPaused(false)
	g.Step(core.NewInputFrame())
	if g.State().Paused || g.World().TickCount() != tick+1 {
		t.Errorf("resume failed: paused=%v tick=%d", g.State().Paused, g.World().TickCount())
	}
}
