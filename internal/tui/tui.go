// Package tui is an interactive browser over the four winning boards. Tab
// between objectives, scroll the word table, and fuzzy-filter words with /.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/beemax/beemax/internal/report"
	"github.com/beemax/beemax/internal/search"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	pangramStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	filterStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

type board struct {
	title  string
	puzzle string
	count  int
	score  int
	lines  []report.WordLine
}

// Model drives the results browser.
type Model struct {
	boards    [4]board
	active    int
	filter    string
	filtering bool
	offset    int
	width     int
	height    int
}

// New builds the browser model from finished search results.
func New(res *search.Results) Model {
	build := func(title string, r search.Result) board {
		return board{
			title:  title,
			puzzle: r.Puzzle.String(),
			count:  r.Words.Cardinality(),
			score:  r.Words.Score(),
			lines:  report.WordLines(r.Words),
		}
	}
	return Model{
		boards: [4]board{
			build("Most words", res.MostWords),
			build("Highest score", res.HighestScore),
			build("Fewest words", res.FewestWords),
			build("Lowest score", res.LowestScore),
		},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.active = (m.active + 1) % len(m.boards)
			m.offset = 0
		case "shift+tab", "left", "h":
			m.active = (m.active + len(m.boards) - 1) % len(m.boards)
			m.offset = 0
		case "down", "j":
			m.offset++
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "g", "home":
			m.offset = 0
		case "/":
			m.filtering = true
			m.filter = ""
			m.offset = 0
		}
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.filtering = false
		m.filter = ""
	case "enter":
		m.filtering = false
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
		}
	default:
		if len(msg.String()) == 1 {
			m.filter += msg.String()
			m.offset = 0
		}
	}
	return m, nil
}

// visibleLines applies the fuzzy filter to the active board's words.
func (m Model) visibleLines() []report.WordLine {
	b := m.boards[m.active]
	if m.filter == "" {
		return b.lines
	}

	words := make([]string, len(b.lines))
	for i, l := range b.lines {
		words[i] = l.Word
	}
	matches := fuzzy.Find(m.filter, words)

	out := make([]report.WordLine, len(matches))
	for i, match := range matches {
		out[i] = b.lines[match.Index]
	}
	return out
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🐝 beemax results"))
	b.WriteString("\n")

	// Objective tabs
	var tabs []string
	for i, board := range m.boards {
		if i == m.active {
			tabs = append(tabs, activeTabStyle.Render(board.title))
		} else {
			tabs = append(tabs, tabStyle.Render(board.title))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	// Summary box for the active board
	active := m.boards[m.active]
	summary := fmt.Sprintf(
		"%s %s\n%s %s\n%s %s",
		labelStyle.Render("Board:"),
		valueStyle.Render(active.puzzle),
		labelStyle.Render("Words:"),
		valueStyle.Render(report.CountWords(active.count)),
		labelStyle.Render("Score:"),
		valueStyle.Render(fmt.Sprintf("%d", active.score)),
	)
	b.WriteString(boxStyle.Render(summary))
	b.WriteString("\n\n")

	if m.filtering || m.filter != "" {
		b.WriteString(filterStyle.Render("/" + m.filter))
		b.WriteString("\n")
	}

	b.WriteString(m.renderWords())

	help := "tab: objective • j/k: scroll • /: filter • q: quit"
	if m.filtering {
		help = "enter: apply filter • esc: clear"
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m Model) renderWords() string {
	lines := m.visibleLines()
	if len(lines) == 0 {
		return labelStyle.Render("No matching words.") + "\n"
	}

	rows := m.pageSize()
	offset := m.offset
	if offset > len(lines)-1 {
		offset = len(lines) - 1
	}
	end := offset + rows
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for _, l := range lines[offset:end] {
		if l.Pangram {
			b.WriteString(pangramStyle.Render(l.String()))
		} else {
			b.WriteString(l.String())
		}
		b.WriteString("\n")
	}
	if end < len(lines) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("… %d more", len(lines)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

// pageSize is how many word rows fit under the fixed chrome.
func (m Model) pageSize() int {
	const chrome = 12
	if m.height <= chrome {
		return 10
	}
	return m.height - chrome
}
