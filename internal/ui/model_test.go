// ABOUTME: Tests for the TUI model
// ABOUTME: Verifies message handling and rendering
package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewModel(t *testing.T) {
	m := NewModel(nil)

	if m.status.State != "idle" {
		t.Errorf("expected initial state 'idle', got %q", m.status.State)
	}
}

func TestUpdateStatus(t *testing.T) {
	m := NewModel(nil)

	updated, _ := m.Update(StatusMsg{
		State:       "playing",
		SampleRate:  16000,
		Channels:    1,
		BufferUsage: 0.5,
		TotalFrames: 42,
	})

	model := updated.(Model)
	if model.status.State != "playing" {
		t.Errorf("expected state 'playing', got %q", model.status.State)
	}
	if model.status.TotalFrames != 42 {
		t.Errorf("expected 42 frames, got %d", model.status.TotalFrames)
	}
}

func TestUpdateWindowSize(t *testing.T) {
	m := NewModel(nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	model := updated.(Model)
	if model.width != 80 || model.height != 24 {
		t.Errorf("expected 80x24, got %dx%d", model.width, model.height)
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := NewModel(nil)

	if m.View() != "Loading..." {
		t.Errorf("expected loading placeholder, got %q", m.View())
	}
}

func TestViewShowsState(t *testing.T) {
	m := NewModel(nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	updated, _ = updated.(Model).Update(StatusMsg{State: "playing", SampleRate: 16000, Channels: 1})

	view := updated.(Model).View()
	if !strings.Contains(view, "playing") {
		t.Error("view should show the playback state")
	}
	if !strings.Contains(view, "16000Hz") {
		t.Error("view should show the sample rate")
	}
}

func TestQuitKey(t *testing.T) {
	control := NewControl()
	m := NewModel(control)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	select {
	case <-control.Quit:
	default:
		t.Error("expected quit request on control channel")
	}
}

func TestPauseKey(t *testing.T) {
	control := NewControl()
	m := NewModel(control)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})

	select {
	case <-control.Toggle:
	default:
		t.Error("expected toggle request on control channel")
	}
}

func TestRenderUsageBar(t *testing.T) {
	bar := renderUsageBar(0.5, 10)
	if !strings.HasPrefix(bar, "[") || !strings.HasSuffix(bar, "]") {
		t.Errorf("expected bracketed bar, got %q", bar)
	}

	empty := renderUsageBar(0, 10)
	if strings.Contains(empty, "█") {
		t.Error("empty bar should have no fill")
	}

	full := renderUsageBar(1, 10)
	if strings.Contains(full, "░") {
		t.Error("full bar should have no gaps")
	}

	// Out-of-range values are clamped
	renderUsageBar(-1, 10)
	renderUsageBar(2, 10)
}
