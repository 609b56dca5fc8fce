// Package registry maps game IDs to factories. Game packages register
// themselves from init, so the CLI only needs a blank import to offer them.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Game is a fixed-tick simulation the platform can run.
// Implementations hold no terminal state: the platform maps keys and mouse
// events to an InputFrame, calls Step once per tick and Render once per frame.
type Game interface {
	ID() string    // Stable identifier, also the storage key for scores
	Title() string // Display name

	// Reset throws the current run away and starts a new one from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the caller has cleared.
	Render(dst *core.Screen)

	State() core.GameState
}

// Observable is implemented by games that push run notifications.
// The platform sets the observer before the first Reset.
type Observable interface {
	SetObserver(o core.Observer)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu    sync.RWMutex
	games = make(map[string]entry)
)

// Register adds a factory under id. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := games[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{factory: f, title: f().Title()}
}

// List returns the registered games ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(games))
	for id, e := range games {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return infos
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := games[id]
	return ok
}
