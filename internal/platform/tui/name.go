package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// NamePromptModel asks for the player name and stores it.
type NamePromptModel struct {
	input    textinput.Model
	store    *storage.Store
	width    int
	height   int
	welcome  bool // First play: greet instead of "change name"
	name     string
	err      error
	done     bool
	canceled bool
}

// NewNamePromptModel creates a prompt prefilled with the current name.
// A welcome prompt starts empty since the current name is only the default.
func NewNamePromptModel(store *storage.Store, cfg core.RuntimeConfig, welcome bool) NamePromptModel {
	ti := textinput.New()
	ti.Placeholder = storage.DefaultPlayerName
	ti.CharLimit = storage.MaxNameLength
	ti.Width = storage.MaxNameLength + 1
	ti.Prompt = "> "

	if store != nil && !welcome {
		if name, err := store.PlayerName(); err == nil {
			ti.SetValue(name)
		}
	}
	ti.Focus()

	return NamePromptModel{
		input:   ti,
		store:   store,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		welcome: welcome,
	}
}

// Init starts the cursor blink.
func (m NamePromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m NamePromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			m = m.submit()
			if m.done {
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.err = nil
	return m, cmd
}

// submit validates and stores the typed name.
func (m NamePromptModel) submit() NamePromptModel {
	value := m.input.Value()
	if strings.TrimSpace(value) == "" && m.welcome {
		value = storage.DefaultPlayerName
	}

	if m.store == nil {
		name := storage.NormalizeName(value)
		if name == "" {
			m.err = storage.ErrEmptyName
			return m
		}
		m.name, m.done = name, true
		return m
	}

	name, err := m.store.SetPlayerName(value)
	if err != nil {
		m.err = err
		return m
	}
	logger.Info("player name set", "player", name)
	m.name, m.done = name, true
	return m
}

// View renders the prompt.
func (m NamePromptModel) View() string {
	if m.done || m.canceled {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	if m.welcome {
		b.WriteString(centerText("Welcome to Sky Jumper!", m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText("What should we call you?", m.width))
	} else {
		b.WriteString(centerText("Change your name", m.width))
	}
	b.WriteString("\n\n")

	pad := strings.Repeat(" ", max(0, (m.width-storage.MaxNameLength-3)/2))
	b.WriteString(pad + m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(centerText(errorStyle.Render(m.err.Error()), m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(centerText(hintStyle.Render("Enter: Save  |  Esc: Cancel"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Name returns the stored name once the prompt is done.
func (m NamePromptModel) Name() (string, bool) {
	return m.name, m.done
}

// RunNamePrompt asks for the player name.
// Returns the stored name, or ok false when the player canceled.
func RunNamePrompt(store *storage.Store, cfg core.RuntimeConfig, welcome bool) (name string, ok bool, err error) {
	p := tea.NewProgram(
		NewNamePromptModel(store, cfg, welcome),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isPrompt := finalModel.(NamePromptModel)
	if !isPrompt {
		return "", false, nil
	}
	name, ok = m.Name()
	return name, ok, nil
}
