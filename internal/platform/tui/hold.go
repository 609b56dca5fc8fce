package tui

import (
	"time"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// HoldTracker turns terminal key presses into held actions.
// Terminals report key-down and autorepeat but never key-up, so a press holds
// its action for an initial window long enough to cover the autorepeat delay,
// and every repeat renews it for a shorter window. When the renewals stop the
// hold expires, which is as close to a key release as a terminal gets.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	until   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given windows in milliseconds.
func NewHoldTracker(holdMs, repeatMs int) *HoldTracker {
	return &HoldTracker{
		initial: time.Duration(holdMs) * time.Millisecond,
		repeat:  time.Duration(repeatMs) * time.Millisecond,
		until:   make(map[core.Action]time.Time),
	}
}

// Press records a key-down or autorepeat of a. Holds are independent:
// pressing one direction leaves the other to run out its own window.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	deadline, held := h.until[a]
	if !held || !now.Before(deadline) {
		h.until[a] = now.Add(h.initial)
		return
	}
	if renewed := now.Add(h.repeat); renewed.After(deadline) {
		h.until[a] = renewed
	}
}

// Held reports whether a is held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	deadline, ok := h.until[a]
	return ok && now.Before(deadline)
}

// Expire drops every hold whose window has passed.
func (h *HoldTracker) Expire(now time.Time) {
	for a, deadline := range h.until {
		if !now.Before(deadline) {
			delete(h.until, a)
		}
	}
}

// Fill adds the active holds to frame as keyboard-held actions.
func (h *HoldTracker) Fill(frame *core.InputFrame, now time.Time) {
	h.Expire(now)
	for a := range h.until {
		frame.Hold(a, core.SourceKeyboard)
	}
}

// Reset drops all holds.
func (h *HoldTracker) Reset() {
	clear(h.until)
}
