// internal/commands/view_test.go
package commands

import (
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pagerContent(lines int) string {
	rows := make([]string, 0, lines)
	for i := 0; i < lines; i++ {
		rows = append(rows, "regel "+strconv.Itoa(i))
	}
	return strings.Join(rows, "\n")
}

func TestPagerWaitsForWindowSize(t *testing.T) {
	m := newPagerModel("Rapport", pagerContent(3))
	if !strings.Contains(m.View(), "Rapport laden") {
		t.Fatalf("expected loading view, got %q", m.View())
	}
	if m.Init() != nil {
		t.Fatal("expected no initial command")
	}
}

func TestPagerResizeAndScroll(t *testing.T) {
	m := newPagerModel("Rapport", pagerContent(50))
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 14})

	if !m.ready {
		t.Fatal("expected pager to be ready after resize")
	}
	if m.viewport.Height != 10 || m.viewport.Width != 60 {
		t.Fatalf("unexpected viewport size %dx%d", m.viewport.Width, m.viewport.Height)
	}
	view := m.View()
	if !strings.Contains(view, "Rapport") || !strings.Contains(view, "regel 0") || strings.Contains(view, "regel 49") {
		t.Fatalf("unexpected first page:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if !m.viewport.AtBottom() {
		t.Fatal("expected G to jump to the bottom")
	}
	if !strings.Contains(m.View(), "regel 49") || !strings.Contains(m.View(), "100%") {
		t.Fatalf("unexpected last page:\n%s", m.View())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if !m.viewport.AtTop() {
		t.Fatal("expected g to jump to the top")
	}

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 2})
	if m.viewport.Height != 1 || m.viewport.Width != 80 {
		t.Fatalf("expected clamped viewport, got %dx%d", m.viewport.Width, m.viewport.Height)
	}
}

func TestPagerQuits(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := newPagerModel("Rapport", "x")
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", key.String())
		}
	}
}
