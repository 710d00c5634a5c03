// ABOUTME: Bubbletea model for the player status TUI
// ABOUTME: Renders playback state, buffer usage and counters
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/linx-audio/linx-go/internal/version"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	playStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pauseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

// StatusMsg carries a player snapshot into the TUI.
type StatusMsg struct {
	State        string
	SampleRate   int
	Channels     int
	BufferUsage  float64
	TotalBytes   uint64
	TotalFrames  uint64
	DecodeErrors uint64
	Source       string
}

// TogglePauseMsg asks the app to pause or resume playback.
type TogglePauseMsg struct{}

// QuitMsg asks the app to shut down.
type QuitMsg struct{}

// Control carries key-driven requests back to the application.
type Control struct {
	Toggle chan TogglePauseMsg
	Quit   chan QuitMsg
}

// NewControl creates a control channel pair.
func NewControl() *Control {
	return &Control{
		Toggle: make(chan TogglePauseMsg, 4),
		Quit:   make(chan QuitMsg, 1),
	}
}

// Model represents the TUI state.
type Model struct {
	status  StatusMsg
	control *Control
	width   int
	height  int
}

// NewModel creates a TUI model.
func NewModel(control *Control) Model {
	return Model{
		status:  StatusMsg{State: "idle"},
		control: control,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case StatusMsg:
		m.status = msg
	}

	return m, nil
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.control != nil {
			select {
			case m.control.Quit <- QuitMsg{}:
			default:
			}
		}
		return m, tea.Quit
	case " ", "p":
		if m.control != nil {
			select {
			case m.control.Toggle <- TogglePauseMsg{}:
			default:
			}
		}
	}

	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s v%s", version.Product, version.Version)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("State:  "))
	b.WriteString(renderState(m.status.State))
	b.WriteString("\n")

	if m.status.Source != "" {
		b.WriteString(labelStyle.Render("Source: "))
		b.WriteString(m.status.Source)
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("Format: "))
	b.WriteString(fmt.Sprintf("%dHz, %dch", m.status.SampleRate, m.status.Channels))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Buffer: "))
	b.WriteString(renderUsageBar(m.status.BufferUsage, 30))
	b.WriteString(fmt.Sprintf(" %3.0f%%", m.status.BufferUsage*100))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Played: "))
	b.WriteString(fmt.Sprintf("%d frames, %d bytes", m.status.TotalFrames, m.status.TotalBytes))
	b.WriteString("\n")

	if m.status.DecodeErrors > 0 {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Decode errors: %d", m.status.DecodeErrors)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("space/p pause · q quit"))

	return borderStyle.Render(b.String())
}

// renderState colors the state name.
func renderState(state string) string {
	switch state {
	case "playing":
		return playStyle.Render(state)
	case "paused":
		return pauseStyle.Render(state)
	case "error":
		return errorStyle.Render(state)
	default:
		return state
	}
}

// renderUsageBar draws a fill bar of the given width.
func renderUsageBar(usage float64, width int) string {
	if usage < 0 {
		usage = 0
	}
	if usage > 1 {
		usage = 1
	}

	filled := int(usage * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
