package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	gameOverTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	gameOverPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 3)
	newBestStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	selectedStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// causeText describes an end cause for the game-over screen.
func causeText(cause string) string {
	switch cause {
	case "enemy":
		return "Caught by an enemy"
	case "blackhole":
		return "Swallowed by a blackhole"
	case "fall":
		return "Fell out of the sky"
	}
	return ""
}

// gameOverView renders the game-over panel centered on the screen.
func (m Model) gameOverView() string {
	var b strings.Builder

	b.WriteString(gameOverTitleStyle.Render("G A M E   O V E R"))
	b.WriteString("\n")
	if cr, ok := m.game.(causeReporter); ok {
		if text := causeText(cr.EndCause()); text != "" {
			b.WriteString(hintStyle.Render(text))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Player: %s\n", m.player)
	fmt.Fprintf(&b, "Score:  %d\n", m.gameState.Score)
	fmt.Fprintf(&b, "Stage:  %d %s\n", m.gameState.Level, m.gameState.Label)
	fmt.Fprintf(&b, "Best:   %d", m.run.best)
	if m.run.newBest {
		b.WriteString("  ")
		b.WriteString(newBestStyle.Render("NEW BEST!"))
	}
	b.WriteString("\n\n")

	for i, opt := range gameOverOptions {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + opt))
		} else {
			b.WriteString("  " + opt)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Up/Down: Select  |  Enter: Confirm  |  R: Play again"))

	panel := gameOverPanelStyle.Render(b.String())
	return lipgloss.Place(m.screen.Width(), m.screen.Height(), lipgloss.Center, lipgloss.Center, panel)
}
