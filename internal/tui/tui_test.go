package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/beemax/beemax/internal/search"
	"github.com/beemax/beemax/internal/wordindex"
)

func testModel(t *testing.T) Model {
	t.Helper()
	ix := wordindex.New([]string{"abcdefg", "face", "feed"})
	res, err := search.Run(ix, search.PangramSets(ix), 1, nil)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	return New(res)
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{}
}

func TestNewBuildsFourBoards(t *testing.T) {
	m := testModel(t)

	if m.boards[0].title != "Most words" {
		t.Errorf("boards[0].title = %q, want %q", m.boards[0].title, "Most words")
	}
	if m.boards[0].count != 3 {
		t.Errorf("most-words board has %d words, want 3", m.boards[0].count)
	}
	if m.boards[3].title != "Lowest score" {
		t.Errorf("boards[3].title = %q, want %q", m.boards[3].title, "Lowest score")
	}
}

func TestTabCyclesBoards(t *testing.T) {
	m := testModel(t)

	for i := 1; i <= 4; i++ {
		next, _ := m.Update(keyMsg("tab"))
		m = next.(Model)
		if m.active != i%4 {
			t.Fatalf("after %d tabs active = %d, want %d", i, m.active, i%4)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command for q")
	}
}

func TestFilterNarrowsWords(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(keyMsg("/"))
	m = next.(Model)
	if !m.filtering {
		t.Fatal("expected filtering mode after /")
	}

	for _, c := range []string{"f", "e", "e"} {
		next, _ = m.Update(keyMsg(c))
		m = next.(Model)
	}

	lines := m.visibleLines()
	if len(lines) != 1 || lines[0].Word != "feed" {
		t.Errorf("filter 'fee' matched %v, want just feed", lines)
	}

	next, _ = m.Update(keyMsg("esc"))
	m = next.(Model)
	if m.filter != "" || m.filtering {
		t.Error("esc should clear the filter")
	}
	if len(m.visibleLines()) != 3 {
		t.Errorf("cleared filter shows %d words, want 3", len(m.visibleLines()))
	}
}

func TestViewRendersSummary(t *testing.T) {
	m := testModel(t)
	m.width, m.height = 80, 30

	out := m.View()
	if !strings.Contains(out, "[E]ABCDFG") {
		t.Errorf("view missing winning board label:\n%s", out)
	}
	if !strings.Contains(out, "abcdefg(14)*") {
		t.Errorf("view missing pangram word line:\n%s", out)
	}
}
