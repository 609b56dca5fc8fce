package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// Outcome is how the player left the game screen.
type Outcome int

const (
	OutcomeQuit Outcome = iota
	OutcomeMenu
	OutcomeChangeName
)

// Game-over menu entries, in display order.
const (
	optPlayAgain = iota
	optChangeName
	optMenu
	optQuit
)

var gameOverOptions = []string{"Play again", "Change name", "Menu", "Quit"}

// controlsProvider is implemented by games that tune keyboard hold emulation.
type controlsProvider interface {
	Controls() config.ControlsConfig
}

// causeReporter is implemented by games that can say what ended a run.
type causeReporter interface {
	EndCause() string
}

// pauser is implemented by games that can be paused from outside a frame.
type pauser interface {
	SetPaused(paused bool)
}

// configReporter is implemented by games that fall back to defaults when
// their config cannot be loaded.
type configReporter interface {
	ConfigErr() error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	holds     *HoldTracker
	touch     core.Action // Touch-bar direction held by the mouse
	frame     core.InputFrame
	gameState core.GameState
	run       *runObserver
	player    string
	cursor    int // Selected game-over entry
	outcome   Outcome
	quitting  bool
	clock     func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game and starts a run.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		frame:     core.NewInputFrame(),
		player:    storage.DefaultPlayerName,
		clock:     time.Now,
	}

	best := 0
	if store != nil {
		if name, err := store.PlayerName(); err == nil {
			m.player = name
		} else {
			logger.Warn("could not read player name", "error", err)
		}
		if b, err := store.BestScore(); err == nil {
			best = b
		} else {
			logger.Warn("could not read best score", "error", err)
		}
	}

	m.startRun(best)
	return m
}

// startRun resets the game into a fresh run with the current seed.
func (m *Model) startRun(best int) {
	m.run = newRunObserver(m.game, m.store, m.player, m.config.Seed, best)
	if obs, ok := m.game.(registry.Observable); ok {
		obs.SetObserver(m.run)
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	if cr, ok := m.game.(configReporter); ok && cr.ConfigErr() != nil {
		logger.Warn("config unusable, playing with defaults", "game", m.game.ID(), "error", cr.ConfigErr())
	}

	// Hold windows come from the game's config, which Reset has just loaded.
	ctl := config.DefaultJumperConfig().Controls
	if cp, ok := m.game.(controlsProvider); ok {
		ctl = cp.Controls()
	}
	m.holds = NewHoldTracker(ctl.KeyHoldMs, ctl.KeyRepeatMs)
	m.touch = core.ActionNone
	m.frame.Clear()
	m.cursor = 0

	logger.Info("run started",
		"game", m.game.ID(),
		"run", m.run.id,
		"seed", m.config.Seed,
		"player", m.player,
		"stage", m.gameState.Level,
	)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		return m.handleBlur()

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.choose(optQuit)
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.gameState.GameOver {
		return m.handleGameOverKey(msg, action)
	}

	switch {
	case IsHeld(action):
		m.holds.Press(action, m.clock())
	case action == core.ActionShoot, action == core.ActionPause:
		m.frame.Set(action)
	}

	return m, nil
}

// handleGameOverKey drives the game-over menu.
func (m Model) handleGameOverKey(msg tea.KeyMsg, action core.Action) (tea.Model, tea.Cmd) {
	if action == core.ActionRestart {
		return m.choose(optPlayAgain)
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(gameOverOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		return m.choose(m.cursor)
	case MenuActionBack:
		return m.choose(optMenu)
	}

	return m, nil
}

// choose acts on a game-over menu entry.
func (m Model) choose(opt int) (tea.Model, tea.Cmd) {
	switch opt {
	case optPlayAgain:
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.startRun(m.run.best)
		return m, nil
	case optChangeName:
		m.outcome = OutcomeChangeName
	case optMenu:
		m.outcome = OutcomeMenu
	default:
		m.outcome = OutcomeQuit
	}
	m.quitting = true
	return m, tea.Quit
}

// handleMouse maps mouse events onto the touch bar.
// Pressing ◀ or ▶ holds that direction until the button is released or the
// pointer leaves it. FIRE and clicks on the playfield shoot.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	bar := core.LayoutTouchBar(m.screen.Width(), m.screen.Height())

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.gameState.GameOver {
			return m, nil
		}
		switch a := bar.ButtonAt(msg.X, msg.Y); {
		case IsHeld(a):
			m.touch = a
		case a == core.ActionShoot:
			m.frame.Set(core.ActionShoot)
		case msg.Y > 0 && msg.Y < bar.Row:
			m.frame.Set(core.ActionShoot)
		}

	case tea.MouseActionMotion:
		if m.touch != core.ActionNone && bar.ButtonAt(msg.X, msg.Y) != m.touch {
			m.touch = core.ActionNone
		}

	case tea.MouseActionRelease:
		m.touch = core.ActionNone
	}

	return m, nil
}

// handleResize processes window resize events.
// The renderer rescales the world, so the run carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleBlur pauses a running game when the terminal loses focus.
// Keys pressed elsewhere never reach us, so holds are dropped too.
func (m Model) handleBlur() (tea.Model, tea.Cmd) {
	m.holds.Reset()
	m.touch = core.ActionNone
	if p, ok := m.game.(pauser); ok && !m.gameState.GameOver {
		p.SetPaused(true)
		m.gameState = m.game.State()
		logger.Debug("paused on focus loss", "run", m.run.id)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.holds.Fill(&m.frame, m.clock())
	if m.touch != core.ActionNone {
		m.frame.Hold(m.touch, core.SourceTouch)
	}

	prev := m.gameState
	result := m.game.Step(m.frame)
	m.gameState = result.State

	if m.gameState.Level != prev.Level {
		logger.Info("stage changed",
			"run", m.run.id,
			"stage", m.gameState.Level,
			"label", m.gameState.Label,
			"score", m.gameState.Score,
		)
	}
	if m.gameState.Paused != prev.Paused {
		logger.Debug("pause toggled", "run", m.run.id, "paused", m.gameState.Paused)
	}
	if m.gameState.GameOver && !prev.GameOver {
		// Movement keys now drive the game-over menu.
		m.holds.Reset()
		m.touch = core.ActionNone
	}

	// Clear input for next frame
	m.frame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("could not save screenshot", "error", err)
		return
	}
	logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.gameState.GameOver {
		return m.gameOverView()
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Outcome returns how the player left the game screen.
func (m Model) Outcome() Outcome {
	return m.outcome
}

// Run starts the Bubble Tea program for game and reports how the player left.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (Outcome, error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Touch bar and playfield clicks
		tea.WithReportFocus(),     // Pause on focus loss
	)

	finalModel, err := p.Run()
	if err != nil {
		return OutcomeQuit, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return OutcomeQuit, nil
	}
	return m.Outcome(), nil
}
