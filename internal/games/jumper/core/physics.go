package core

import (
	platformcore "github.com/vovakirdan/tui-jumper/internal/core"
)

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func Overlaps(a, b platformcore.RectF) bool {
	return a.Intersects(b)
}

// integratePlayer applies intent, gravity and velocity for one tick.
func integratePlayer(p *Player, in Intent, t *Tuning) {
	switch {
	case in.Left:
		p.VX = -t.MoveSpeed
	case in.Right:
		p.VX = t.MoveSpeed
	default:
		p.VX *= t.Drag
	}
	p.VY += t.Gravity
	p.X += p.VX
	p.Y += p.VY
}

// wrapPlayer moves a player that left the canvas to the opposite side.
func wrapPlayer(p *Player, canvasW float64) {
	if p.X+p.W < 0 {
		p.X = canvasW - p.W
	} else if p.X > canvasW {
		p.X = 0
	}
}

// landOnPlatforms bounces a descending player off any platform whose landing
// band contains the player's feet. Every platform is checked; the last hit
// decides the bounce. Returns the number of platforms hit.
func landOnPlatforms(p *Player, platforms []Platform, t *Tuning) int {
	if p.VY <= 0 {
		return 0
	}
	hits := 0
	bottom := p.Bottom()
	for i := range platforms {
		pl := &platforms[i]
		if pl.Broken {
			continue
		}
		if p.X+p.W <= pl.X || p.X >= pl.X+pl.W {
			continue
		}
		// The band is [top, top+height+band): feet exactly on the top edge land.
		if bottom < pl.Y || bottom >= pl.Y+pl.H+t.LandingBand {
			continue
		}
		hits++
		switch pl.Kind {
		case PlatformSpring:
			p.VY = t.JumpStrength * t.SpringMultiplier
		case PlatformBreaking:
			p.VY = t.JumpStrength
			pl.Broken = true
		default:
			p.VY = t.JumpStrength
		}
	}
	return hits
}

// shootDown removes bullet/enemy pairs that overlap. Each bullet removes at
// most one enemy and each enemy absorbs at most one bullet.
// Returns the surviving slices and the number of kills.
func shootDown(bullets []Bullet, enemies []Enemy, hitbox float64) ([]Bullet, []Enemy, int) {
	kills := 0
	for i := len(enemies) - 1; i >= 0; i-- {
		er := enemies[i].Rect()
		for j := len(bullets) - 1; j >= 0; j-- {
			if !Overlaps(bullets[j].Hitbox(hitbox), er) {
				continue
			}
			bullets = append(bullets[:j], bullets[j+1:]...)
			enemies = append(enemies[:i], enemies[i+1:]...)
			kills++
			break
		}
	}
	return bullets, enemies, kills
}

// touchesEnemy reports whether the player overlaps any enemy.
func touchesEnemy(p Player, enemies []Enemy) bool {
	pr := p.Rect()
	for _, e := range enemies {
		if Overlaps(pr, e.Rect()) {
			return true
		}
	}
	return false
}

// touchesObstacle reports whether the player overlaps any obstacle.
func touchesObstacle(p Player, obstacles []Obstacle) bool {
	pr := p.Rect()
	for _, o := range obstacles {
		if Overlaps(pr, o.Rect()) {
			return true
		}
	}
	return false
}
