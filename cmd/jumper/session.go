package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// session carries what every screen needs between Bubble Tea programs.
type session struct {
	store     *storage.Store
	cfg       core.RuntimeConfig
	title     string
	namedOnce bool // First-play name prompt already shown
}

// newSession validates the game config, opens storage and measures the
// terminal. An invalid config is fatal here, before the alt-screen starts.
func newSession() *session {
	prepareGame()

	if !registry.Exists(jumper.GameID) {
		logger.Fatal("unknown game", "game", jumper.GameID)
	}
	game, err := registry.Create(jumper.GameID)
	if err != nil {
		logger.Fatal("game not registered", "game", jumper.GameID, "error", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	width, height := terminalSize()
	return &session{
		store: store,
		title: game.Title(),
		cfg: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
	}
}

// prepareGame hands the config flags to the game and validates the resulting
// config once. Every run of the session reuses it.
func prepareGame() {
	if _, _, err := config.ParsePreset(flagDifficulty); err != nil {
		logger.Fatal("invalid --difficulty", "error", err)
	}
	jumper.SetConfigPath(flagConfig)
	jumper.SetDifficultyPreset(flagDifficulty)

	cfg, err := jumper.Prepare()
	if err != nil {
		logger.Fatal("invalid config", "path", flagConfig, "error", err)
	}
	logger.Debug("config ok",
		"difficulty", flagDifficulty,
		"start_stage", cfg.Difficulty.StartStage,
		"progression", cfg.Difficulty.Enabled,
	)
}

func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func (s *session) close() {
	if s.store != nil {
		s.store.Close()
	}
}

// play runs games until the player leaves.
// Reports whether the player asked for the menu.
func (s *session) play() bool {
	s.welcome()

	for {
		game, err := registry.Create(jumper.GameID)
		if err != nil {
			logger.Error("could not create game", "error", err)
			return false
		}

		outcome, err := tui.Run(game, s.store, s.cfg)
		// Only the first run replays --seed.
		s.cfg.Seed = 0
		if err != nil {
			logger.Error("game failed", "error", err)
			return false
		}

		switch outcome {
		case tui.OutcomeChangeName:
			s.changeName(false)
		case tui.OutcomeMenu:
			return true
		default:
			return false
		}
	}
}

// menu shows the main menu until the player quits.
func (s *session) menu() {
	for {
		res, err := tui.RunMenu(s.title, s.store, s.cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		s.cfg = res.Config

		switch res.Choice {
		case tui.MenuPlay:
			if !s.play() {
				return
			}
		case tui.MenuScores:
			goBack, err := tui.RunScoreboard(jumper.GameID, s.title, s.store, s.cfg.ScreenW, s.cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
				return
			}
			if !goBack {
				return
			}
		case tui.MenuChangeName:
			s.changeName(false)
		default:
			return
		}
	}
}

// welcome asks for a name once, on the first play of a player still using
// the default name.
func (s *session) welcome() {
	if s.namedOnce || s.store == nil {
		return
	}
	s.namedOnce = true

	name, err := s.store.PlayerName()
	if err != nil || name != storage.DefaultPlayerName {
		return
	}
	s.changeName(true)
}

func (s *session) changeName(welcome bool) {
	name, ok, err := tui.RunNamePrompt(s.store, s.cfg, welcome)
	if err != nil {
		logger.Error("name prompt failed", "error", err)
		return
	}
	if ok && s.store == nil {
		logger.Warn("no scores database, name not saved", "player", name)
	}
}
