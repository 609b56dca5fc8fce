// Package core is the Sky Jumper simulation: difficulty stages, procedural
// generation, kinematics and collision, and the fixed-tick World loop.
// It has no terminal or storage dependencies.
package core

import (
	platformcore "github.com/vovakirdan/tui-jumper/internal/core"
)

// PlatformKind is the platform variant.
type PlatformKind int

const (
	PlatformNormal   PlatformKind = iota
	PlatformBreaking              // Bounces once, then inert
	PlatformSpring                // Stronger bounce
)

// String returns the variant name.
func (k PlatformKind) String() string {
	switch k {
	case PlatformNormal:
		return "normal"
	case PlatformBreaking:
		return "breaking"
	case PlatformSpring:
		return "spring"
	default:
		return "unknown"
	}
}

// ObstacleKind is the hazard variant. Only blackholes exist.
type ObstacleKind int

const (
	ObstacleBlackhole ObstacleKind = iota
)

// String returns the variant name.
func (k ObstacleKind) String() string {
	if k == ObstacleBlackhole {
		return "blackhole"
	}
	return "unknown"
}

// Player is the controlled character. Y grows downward.
type Player struct {
	X, Y   float64 // Top-left corner in world units
	VX, VY float64 // Velocity per tick
	W, H   float64
}

// Rect returns the player's bounding box.
func (p Player) Rect() platformcore.RectF {
	return platformcore.NewRectF(p.X, p.Y, p.W, p.H)
}

// Bottom returns the y-coordinate of the player's feet.
func (p Player) Bottom() float64 {
	return p.Y + p.H
}

// Platform is a surface the player bounces on.
type Platform struct {
	X, Y   float64
	W, H   float64
	Kind   PlatformKind
	Broken bool // Breaking platforms only; never reverts to false
}

// Rect returns the platform's bounding box.
func (p Platform) Rect() platformcore.RectF {
	return platformcore.NewRectF(p.X, p.Y, p.W, p.H)
}

// Enemy is a hovering creature; touching it is fatal, a bullet removes it.
type Enemy struct {
	X, Y float64
	W, H float64
}

// Rect returns the enemy's bounding box.
func (e Enemy) Rect() platformcore.RectF {
	return platformcore.NewRectF(e.X, e.Y, e.W, e.H)
}

// Obstacle is a static hazard. Bullets pass through it.
type Obstacle struct {
	X, Y float64
	Size float64
	Kind ObstacleKind
}

// Rect returns the obstacle's bounding box.
func (o Obstacle) Rect() platformcore.RectF {
	return platformcore.NewRectF(o.X, o.Y, o.Size, o.Size)
}

// Bullet travels straight up at a constant speed. X, Y is its center.
type Bullet struct {
	X, Y float64
	VY   float64
}

// Hitbox returns a size×size box centered on the bullet.
func (b Bullet) Hitbox(size float64) platformcore.RectF {
	half := size / 2
	return platformcore.NewRectF(b.X-half, b.Y-half, size, size)
}

// Batch is the output of one generation pass.
type Batch struct {
	Platforms []Platform
	Enemies   []Enemy
	Obstacles []Obstacle
}

// Phase is the World state machine position.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseOver // Terminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// EndCause records why a run ended.
type EndCause int

const (
	CauseNone EndCause = iota
	CauseEnemy
	CauseObstacle
	CauseFall
)

// String returns the cause name.
func (c EndCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseEnemy:
		return "enemy"
	case CauseObstacle:
		return "blackhole"
	case CauseFall:
		return "fall"
	default:
		return "unknown"
	}
}

// Direction is a horizontal movement intent.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Intent is the pair of movement flags read at the start of every tick.
type Intent struct {
	Left  bool
	Right bool
}
