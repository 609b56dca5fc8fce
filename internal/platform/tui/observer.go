package tui

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// logger receives session logs. The alt-screen owns the terminal while a
// program runs, so the default discards everything.
var logger = log.New(io.Discard)

// SetLogger sets the logger used by the TUI. nil restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// runObserver follows one run: it is the game's observer and persists the
// run once the game reports it over.
type runObserver struct {
	game    registry.Game
	store   *storage.Store
	id      string
	seed    int64
	player  string
	score   int
	over    bool
	best    int  // Best score known when the run ended
	newBest bool // Whether this run set the best score
}

func newRunObserver(game registry.Game, store *storage.Store, player string, seed int64, best int) *runObserver {
	return &runObserver{
		game:   game,
		store:  store,
		id:     uuid.NewString(),
		seed:   seed,
		player: player,
		best:   best,
	}
}

// ScoreChanged implements core.Observer.
func (o *runObserver) ScoreChanged(score int) {
	o.score = score
	logger.Debug("score", "run", o.id, "score", score)
}

// GameOver implements core.Observer.
func (o *runObserver) GameOver(score int) {
	if o.over {
		return
	}
	o.over = true
	o.score = score

	stage := o.game.State().Level
	logger.Info("game over", "run", o.id, "score", score, "stage", stage)

	if o.store == nil {
		if score > o.best {
			o.best, o.newBest = score, true
		}
		return
	}

	if _, err := o.store.SaveRun(storage.Run{
		GameID:     o.game.ID(),
		RunID:      o.id,
		PlayerName: o.player,
		Score:      score,
		Stage:      stage,
	}); err != nil {
		logger.Warn("could not save run", "run", o.id, "error", err)
	}

	newBest, err := o.store.RecordBest(score)
	if err != nil {
		logger.Warn("could not record best score", "error", err)
	}
	o.newBest = newBest && score > 0

	if best, err := o.store.BestScore(); err == nil {
		o.best = best
	} else {
		o.best = max(o.best, score)
	}
	if o.newBest {
		logger.Info("new best score", "player", o.player, "score", score)
	}
}
