// Package jumper adapts the Sky Jumper simulation to the platform: it loads
// configuration, turns input frames into controls and draws the world.
package jumper

import (
	"math/rand"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	jcore "github.com/vovakirdan/tui-jumper/internal/games/jumper/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "jumper"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// prepared holds the config validated by Prepare, nil until then.
var prepared *preparedConfig

type preparedConfig struct {
	cfg    config.JumperConfig
	tuning jcore.Tuning
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
	prepared = nil
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names fall back to the config's own difficulty.
func SetDifficultyPreset(preset string) {
	p, ok, err := config.ParsePreset(preset)
	if err != nil || !ok {
		difficultyPreset = ""
		prepared = nil
		return
	}
	difficultyPreset = p
	prepared = nil
}

// LoadConfig loads the config from the configured search path and applies
// the difficulty preset.
func LoadConfig() (config.JumperConfig, error) {
	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyJumperPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Prepare loads and validates the config once. Games reuse the result on
// every Reset instead of reading the config again.
func Prepare() (config.JumperConfig, error) {
	prepared = nil
	cfg, err := LoadConfig()
	if err != nil {
		return cfg, err
	}
	tuning, err := TuningFromConfig(cfg)
	if err != nil {
		return cfg, err
	}
	prepared = &preparedConfig{cfg: cfg, tuning: tuning}
	return cfg, nil
}

// loadTuning returns the prepared config, or loads one when Prepare was not
// called. An unusable config yields the defaults along with the error.
func loadTuning() (config.JumperConfig, jcore.Tuning, error) {
	if prepared != nil {
		return prepared.cfg, prepared.tuning, nil
	}
	cfg, err := LoadConfig()
	if err != nil {
		return config.DefaultJumperConfig(), jcore.DefaultTuning(), err
	}
	tuning, err := TuningFromConfig(cfg)
	if err != nil {
		return config.DefaultJumperConfig(), jcore.DefaultTuning(), err
	}
	return cfg, tuning, nil
}

// Game implements registry.Game for Sky Jumper.
type Game struct {
	world    *jcore.World
	tuning   jcore.Tuning
	cfg      config.JumperConfig
	runtime  core.RuntimeConfig
	observer core.Observer
	loaded   bool
	cfgErr   error
	held     map[core.Action]core.InputSource // Continuous actions held last tick
}

// New creates a new Sky Jumper game instance.
func New() *Game {
	return &Game{held: make(map[core.Action]core.InputSource)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Jumper"
}

// SetObserver registers the receiver of score and game-over notifications.
func (g *Game) SetObserver(o core.Observer) {
	g.observer = o
}

// Reset starts a new run with a brand-new world. The old world is dropped.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.loaded {
		g.cfg, g.tuning, g.cfgErr = loadTuning()
		g.loaded = true
	}

	world, err := jcore.NewWorld(g.tuning, rand.New(rand.NewSource(runtime.Seed)), g.callbacks())
	if err != nil {
		// Loaded tuning was validated and the defaults always are.
		panic(err)
	}
	g.world = world
	clear(g.held)
}

func (g *Game) callbacks() jcore.Callbacks {
	return jcore.Callbacks{
		OnScoreUpdate: func(score int) {
			if g.observer != nil {
				g.observer.ScoreChanged(score)
			}
		},
		OnGameOver: func(score int) {
			if g.observer != nil {
				g.observer.GameOver(score)
			}
		},
	}
}

// Step applies one input frame and advances the world by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.world.TogglePause()
	}

	g.applyHeld(in, core.ActionLeft, jcore.DirLeft)
	g.applyHeld(in, core.ActionRight, jcore.DirRight)

	if in.Has(core.ActionShoot) {
		g.world.Shoot()
	}

	g.world.Tick()
	return core.StepResult{State: g.State()}
}

// applyHeld turns a change in a held action into a press or release.
func (g *Game) applyHeld(in core.InputFrame, a core.Action, dir jcore.Direction) {
	src, down := in.IsHeld(a)
	prev, wasDown := g.held[a]
	switch {
	case down && (!wasDown || prev != src):
		g.world.Press(dir, src)
		g.held[a] = src
	case !down && wasDown:
		g.world.Release(dir)
		delete(g.held, a)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score(),
		Level:    g.world.Stage(),
		Label:    g.world.StageLabel(),
		GameOver: g.world.Phase() == jcore.PhaseOver,
		Paused:   g.world.Paused(),
	}
}

// SetPaused pauses or resumes the current run. It has no effect once over.
func (g *Game) SetPaused(paused bool) {
	if g.world != nil {
		g.world.SetPaused(paused)
	}
}

// ConfigErr reports why the loaded config was replaced by the defaults.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// World exposes the current run for the platform's game-over screen.
func (g *Game) World() *jcore.World {
	return g.world
}

// EndCause names what ended the run, or "none" while it is still going.
func (g *Game) EndCause() string {
	if g.world == nil {
		return jcore.CauseNone.String()
	}
	return g.world.Cause().String()
}

// Controls returns the keyboard hold settings from the loaded config.
func (g *Game) Controls() config.ControlsConfig {
	return g.cfg.Controls
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
