package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/block-blast/internal/storage"
)

func TestMenuNavigateAndSelect(t *testing.T) {
	m := NewMenuModel("Block Blast", nil, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	if m.cursor != len(menuItems)-1 {
		t.Fatalf("cursor = %d, want clamped to %d", m.cursor, len(menuItems)-1)
	}

	next, _ = m.Update(runeKey('k'))
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() != MenuHistory {
		t.Errorf("selected = %v, want %v", m.Selected(), MenuHistory)
	}
	if cmd == nil {
		t.Error("selecting should quit the menu program")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel("Block Blast", nil, 80, 24)
	next, _ := m.Update(runeKey('q'))
	if got := next.(MenuModel).Selected(); got != MenuQuit {
		t.Errorf("selected = %v, want %v", got, MenuQuit)
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel("Block Blast", nil, 80, 24)
	view := m.View()
	for _, want := range []string{"B L O C K   B L A S T", "New game", "History", "Quit", "> New game"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Games:") {
		t.Error("stats line should be hidden without history")
	}

	stats := &storage.GameStats{GamesCount: 3, HighScore: 120, AvgScore: 60, TotalLines: 9}
	view = NewMenuModel("Block Blast", stats, 80, 24).View()
	if !strings.Contains(view, "Best: 120") {
		t.Errorf("view missing stats line:\n%s", view)
	}
}
