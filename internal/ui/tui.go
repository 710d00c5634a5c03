// ABOUTME: TUI initialization and control
// ABOUTME: Wraps bubbletea program for the player status view
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI.
func Run(control *Control) (*tea.Program, error) {
	p := tea.NewProgram(NewModel(control), tea.WithAltScreen())
	return p, nil
}
