package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

func TestHoldTracker_InitialWindow(t *testing.T) {
	h := NewHoldTracker(450, 120)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)

	if !h.Held(core.ActionLeft, t0.Add(449*time.Millisecond)) {
		t.Error("press should hold for the initial window")
	}
	if h.Held(core.ActionLeft, t0.Add(450*time.Millisecond)) {
		t.Error("hold should expire after the initial window")
	}
}

func TestHoldTracker_RepeatRenews(t *testing.T) {
	h := NewHoldTracker(450, 120)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)
	// Autorepeat every 30ms past the initial window.
	last := t0
	for at := 400 * time.Millisecond; at <= 1000*time.Millisecond; at += 30 * time.Millisecond {
		last = t0.Add(at)
		h.Press(core.ActionRight, last)
	}

	if !h.Held(core.ActionRight, last.Add(119*time.Millisecond)) {
		t.Error("repeat should renew the hold")
	}
	if h.Held(core.ActionRight, last.Add(120*time.Millisecond)) {
		t.Error("hold should expire once repeats stop")
	}
}

func TestHoldTracker_RepeatDoesNotShortenInitial(t *testing.T) {
	h := NewHoldTracker(450, 120)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionLeft, t0.Add(10*time.Millisecond))

	if !h.Held(core.ActionLeft, t0.Add(400*time.Millisecond)) {
		t.Error("an early repeat must not cut the initial window short")
	}
}

func TestHoldTracker_DirectionsIndependent(t *testing.T) {
	h := NewHoldTracker(450, 120)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0.Add(50*time.Millisecond))

	now := t0.Add(60 * time.Millisecond)
	if !h.Held(core.ActionLeft, now) || !h.Held(core.ActionRight, now) {
		t.Error("both directions should be held")
	}

	// Left runs out its own window while right keeps going.
	now = t0.Add(460 * time.Millisecond)
	if h.Held(core.ActionLeft, now) {
		t.Error("left should expire after its window")
	}
	if !h.Held(core.ActionRight, now) {
		t.Error("right should still be held")
	}
}

func TestHoldTracker_Fill(t *testing.T) {
	h := NewHoldTracker(450, 120)
	t0 := time.Unix(1000, 0)
	h.Press(core.ActionLeft, t0)

	frame := core.NewInputFrame()
	h.Fill(&frame, t0.Add(100*time.Millisecond))
	src, ok := frame.IsHeld(core.ActionLeft)
	if !ok || src != core.SourceKeyboard {
		t.Errorf("IsHeld(Left) = %v, %v, want keyboard, true", src, ok)
	}

	frame.Clear()
	h.Fill(&frame, t0.Add(time.Second))
	if _, ok := frame.IsHeld(core.ActionLeft); ok {
		t.Error("expired hold should not be filled")
	}
	if len(h.until) != 0 {
		t.Errorf("expired holds kept: %v", h.until)
	}
}

func TestHoldTracker_Reset(t *testing.T) {
	h := NewHoldTracker(450, 120)
	t0 := time.Unix(1000, 0)
	h.Press(core.ActionLeft, t0)
	h.Reset()

	if h.Held(core.ActionLeft, t0) {
		t.Error("Reset should drop holds")
	}
}
