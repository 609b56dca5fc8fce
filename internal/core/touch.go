package core

// TouchBar is the on-screen control strip on the bottom row: a left button,
// a fire button and a right button, each a third of the width.
// Renderers draw it and the platform hit-tests mouse events against it,
// so both always agree on where the buttons are.
type TouchBar struct {
	Row     int
	Buttons [3]TouchButton
}

// TouchButton is one button of the touch bar.
type TouchButton struct {
	Action Action // ActionLeft, ActionShoot or ActionRight
	Label  string
	X0, X1 int // Half-open column range
}

// LayoutTouchBar places the bar on the last row of a w×h screen.
func LayoutTouchBar(w, h int) TouchBar {
	third := w / 3
	return TouchBar{
		Row: h - 1,
		Buttons: [3]TouchButton{
			{Action: ActionLeft, Label: "◀", X0: 0, X1: third},
			{Action: ActionShoot, Label: "FIRE", X0: third, X1: w - third},
			{Action: ActionRight, Label: "▶", X0: w - third, X1: w},
		},
	}
}

// ButtonAt returns the action of the button under (x, y), or ActionNone.
func (b TouchBar) ButtonAt(x, y int) Action {
	if y != b.Row {
		return ActionNone
	}
	for _, btn := range b.Buttons {
		if x >= btn.X0 && x < btn.X1 {
			return btn.Action
		}
	}
	return ActionNone
}

// Draw renders the bar. Buttons whose action is in held are highlighted.
func (b TouchBar) Draw(dst *Screen, held map[Action]InputSource) {
	for _, btn := range b.Buttons {
		fill, text := ColorDarkGray, ColorWhite
		if _, ok := held[btn.Action]; ok {
			fill, text = ColorGray, ColorBrightYellow
		}
		dst.DrawHLine(btn.X0, b.Row, btn.X1-btn.X0, '▔', fill)
		label := "[ " + btn.Label + " ]"
		x := btn.X0 + (btn.X1-btn.X0-len([]rune(label)))/2
		dst.DrawTextColor(x, b.Row, label, text)
	}
}
