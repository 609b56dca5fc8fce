package core

import (
	platformcore "github.com/vovakirdan/tui-jumper/internal/core"
)

// Press sets a movement intent. A touch press clears the opposite direction;
// keyboard presses leave it alone.
func (w *World) Press(dir Direction, src platformcore.InputSource) {
	switch dir {
	case DirLeft:
		w.intent.Left = true
		if src == platformcore.SourceTouch {
			w.intent.Right = false
		}
	case DirRight:
		w.intent.Right = true
		if src == platformcore.SourceTouch {
			w.intent.Left = false
		}
	}
}

// Release clears a movement intent.
func (w *World) Release(dir Direction) {
	switch dir {
	case DirLeft:
		w.intent.Left = false
	case DirRight:
		w.intent.Right = false
	}
}

// Intent returns the current movement flags.
func (w *World) Intent() Intent {
	return w.intent
}

// Shoot fires a bullet from the top center of the player. It works in every
// phase; a bullet fired while paused starts moving on resume.
func (w *World) Shoot() {
	w.bullets = append(w.bullets, Bullet{
		X:  w.player.X + w.player.W/2,
		Y:  w.player.Y,
		VY: w.tuning.BulletSpeed,
	})
}
