package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetrisus/internal/core"
)

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return model, cmd
}

func TestMenuShowsBest(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, 1418)
	view := m.View()
	if !strings.Contains(view, "Best: 1418") {
		t.Error("menu should show the best score")
	}
	if !strings.Contains(view, "> Play") {
		t.Error("cursor should start on Play")
	}
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuChoice
	}{
		{"play", []tea.KeyMsg{{Type: tea.KeyEnter}}, MenuPlay},
		{"scores", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuScores},
		{"quit item", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuQuit},
		{"cursor stops at bottom", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuQuit},
		{"cursor stops at top", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}}, MenuPlay},
		{"tab opens scores", []tea.KeyMsg{{Type: tea.KeyTab}}, MenuScores},
		{"esc quits", []tea.KeyMsg{{Type: tea.KeyEsc}}, MenuQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, 0)
			var cmd tea.Cmd
			for _, k := range tt.keys {
				m, cmd = menuKey(t, m, k)
			}
			if got := m.Choice(); got != tt.want {
				t.Errorf("Choice() = %d, expected %d", got, tt.want)
			}
			if cmd == nil {
				t.Error("a choice should quit the menu program")
			}
			if m.View() != "" {
				t.Error("view should be empty after a choice")
			}
		})
	}
}

func TestMenuTracksResize(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, 0)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	w, h := next.(MenuModel).Size()
	if w != 120 || h != 40 {
		t.Errorf("Size() = %dx%d, expected 120x40", w, h)
	}
	if next.(MenuModel).Choice() != MenuNone {
		t.Error("resize should not pick anything")
	}
}
