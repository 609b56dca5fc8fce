package core

import (
	"math"
	"math/rand"
)

// Callbacks are the notifications a World pushes to its owner.
// Either may be nil.
type Callbacks struct {
	OnScoreUpdate func(score int) // At most once per tick, only on increase
	OnGameOver    func(score int) // Exactly once per World
}

// StepResult describes what happened during one tick.
type StepResult struct {
	Tick         uint64
	Score        int
	Stage        int
	ScoreChanged bool
	StageChanged bool
	Bounces      int // Platforms that fired a bounce this tick
	Generated    int // Platforms appended by frontier generation
	Kills        int // Enemies removed by bullets
	GameOver     bool
	Cause        EndCause
}

// World is the whole simulation state for one run. It is not safe for
// concurrent use; input calls and Tick must come from the same goroutine.
type World struct {
	tuning Tuning
	gen    *Generator
	cb     Callbacks

	player    Player
	platforms []Platform
	enemies   []Enemy
	obstacles []Obstacle
	bullets   []Bullet

	cameraY float64
	score   int
	stage   int
	phase   Phase
	cause   EndCause
	tick    uint64

	intent Intent
}

// NewWorld validates tuning and lays out a fresh run drawing from rng.
func NewWorld(tuning Tuning, rng *rand.Rand, cb Callbacks) (*World, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		tuning: tuning,
		cb:     cb,
		player: Player{
			X: tuning.PlayerStartX,
			Y: tuning.PlayerStartY,
			W: tuning.PlayerW,
			H: tuning.PlayerH,
		},
		phase: PhaseRunning,
	}
	w.gen = NewGenerator(rng, &w.tuning)
	w.stage = w.tuning.stageFor(0)

	initial := w.gen.InitialLayout()
	w.platforms = initial.Platforms
	w.enemies = initial.Enemies
	w.obstacles = initial.Obstacles
	w.bullets = make([]Bullet, 0, 16)
	return w, nil
}

// Tick advances the simulation by one step. It does nothing while paused or over.
func (w *World) Tick() StepResult {
	if w.phase != PhaseRunning {
		return w.result()
	}
	w.tick++
	t := &w.tuning

	integratePlayer(&w.player, w.intent, t)
	wrapPlayer(&w.player, t.CanvasW)
	res := w.result()
	res.Bounces = landOnPlatforms(&w.player, w.platforms, t)

	w.followCamera()
	res.ScoreChanged, res.StageChanged = w.updateScore()
	res.Generated = w.extendFrontier()

	w.advanceBullets()
	w.bullets, w.enemies, res.Kills = shootDown(w.bullets, w.enemies, t.BulletHitbox)

	switch {
	case touchesEnemy(w.player, w.enemies):
		return w.end(res, CauseEnemy)
	case touchesObstacle(w.player, w.obstacles):
		return w.end(res, CauseObstacle)
	case w.player.Y > w.cameraY+t.CanvasH+t.FallMargin:
		return w.end(res, CauseFall)
	}

	w.prune()
	res.Score, res.Stage = w.score, w.stage
	return res
}

func (w *World) result() StepResult {
	return StepResult{
		Tick:     w.tick,
		Score:    w.score,
		Stage:    w.stage,
		GameOver: w.phase == PhaseOver,
		Cause:    w.cause,
	}
}

// followCamera scrolls up by the player's overshoot past the trigger line.
func (w *World) followCamera() {
	trigger := w.cameraY + w.tuning.CanvasH*w.tuning.CameraTrigger
	if w.player.Y < trigger {
		w.cameraY -= trigger - w.player.Y
	}
}

func (w *World) updateScore() (scoreChanged, stageChanged bool) {
	score := int(math.Floor(-w.cameraY / w.tuning.ScoreUnit))
	if score <= w.score {
		return false, false
	}
	w.score = score
	if w.cb.OnScoreUpdate != nil {
		w.cb.OnScoreUpdate(score)
	}
	if stage := w.tuning.stageFor(score); stage > w.stage {
		w.stage = stage
		stageChanged = true
	}
	return true, stageChanged
}

// extendFrontier generates one batch when the topmost platform is less than
// a canvas height above the camera.
func (w *World) extendFrontier() int {
	anchor := w.cameraY
	if len(w.platforms) > 0 {
		anchor = w.platforms[0].Y
		for _, p := range w.platforms[1:] {
			anchor = min(anchor, p.Y)
		}
		if anchor <= w.cameraY-w.tuning.CanvasH {
			return 0
		}
	}
	batch := w.gen.GenerateBatch(anchor, w.stage)
	w.platforms = append(w.platforms, batch.Platforms...)
	w.enemies = append(w.enemies, batch.Enemies...)
	w.obstacles = append(w.obstacles, batch.Obstacles...)
	return len(batch.Platforms)
}

func (w *World) advanceBullets() {
	limit := w.cameraY - w.tuning.BulletMargin
	valid := w.bullets[:0]
	for _, b := range w.bullets {
		b.Y += b.VY
		if b.Y >= limit {
			valid = append(valid, b)
		}
	}
	w.bullets = valid
}

// prune drops platforms, enemies and obstacles that fell behind the camera.
func (w *World) prune() {
	limit := w.cameraY + w.tuning.CanvasH + w.tuning.PruneMargin

	platforms := w.platforms[:0]
	for _, p := range w.platforms {
		if p.Y < limit {
			platforms = append(platforms, p)
		}
	}
	w.platforms = platforms

	enemies := w.enemies[:0]
	for _, e := range w.enemies {
		if e.Y < limit {
			enemies = append(enemies, e)
		}
	}
	w.enemies = enemies

	obstacles := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.Y < limit {
			obstacles = append(obstacles, o)
		}
	}
	w.obstacles = obstacles
}

func (w *World) end(res StepResult, cause EndCause) StepResult {
	w.phase = PhaseOver
	w.cause = cause
	w.intent = Intent{}
	if w.cb.OnGameOver != nil {
		w.cb.OnGameOver(w.score)
	}
	res.Score, res.Stage = w.score, w.stage
	res.GameOver = true
	res.Cause = cause
	return res
}

// TogglePause flips between Running and Paused. It has no effect once over.
func (w *World) TogglePause() {
	switch w.phase {
	case PhaseRunning:
		w.phase = PhasePaused
	case PhasePaused:
		w.phase = PhaseRunning
	}
}

// SetPaused pauses or resumes a run that is not over.
func (w *World) SetPaused(paused bool) {
	if w.phase == PhaseOver {
		return
	}
	if paused {
		w.phase = PhasePaused
	} else {
		w.phase = PhaseRunning
	}
}

// Paused reports whether the run is paused.
func (w *World) Paused() bool { return w.phase == PhasePaused }

// Accessors return views for rendering. Callers must not modify the slices.

func (w *World) Player() Player        { return w.player }
func (w *World) Platforms() []Platform { return w.platforms }
func (w *World) Enemies() []Enemy      { return w.enemies }
func (w *World) Obstacles() []Obstacle { return w.obstacles }
func (w *World) Bullets() []Bullet     { return w.bullets }
func (w *World) CameraY() float64      { return w.cameraY }
func (w *World) Score() int            { return w.score }
func (w *World) Stage() int            { return w.stage }
func (w *World) StageLabel() string    { return w.tuning.Stages.ParamsForStage(w.stage).Label }
func (w *World) Phase() Phase          { return w.phase }
func (w *World) Cause() EndCause       { return w.cause }
func (w *World) TickCount() uint64     { return w.tick }
