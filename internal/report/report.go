// Package report renders search results for humans. The core hands it the
// four winning boards; everything here is formatting.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/beemax/beemax/internal/search"
	"github.com/beemax/beemax/internal/wordindex"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	puzzleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	wordListStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// WordLine is one rendered word: the word itself, its score, and whether it
// is a pangram.
type WordLine struct {
	Word    string
	Score   int
	Pangram bool
}

// String renders the line as "word(score)" with a trailing * for pangrams.
func (l WordLine) String() string {
	marker := ""
	if l.Pangram {
		marker = "*"
	}
	return fmt.Sprintf("%s(%d)%s", l.Word, l.Score, marker)
}

// WordLines returns one line per member word, in index order.
func WordLines(set *wordindex.CandidateSet) []WordLine {
	words := set.Words()
	lines := make([]WordLine, len(words))
	for i, w := range words {
		lines[i] = WordLine{Word: w, Score: wordindex.Score(w), Pangram: wordindex.IsPangram(w)}
	}
	return lines
}

// CountWords says "1 word" or "n words".
func CountWords(n int) string {
	if n == 1 {
		return "1 word"
	}
	return fmt.Sprintf("%d words", n)
}

// Render writes the four results to w. With showWords the full word list of
// each board is printed after its summary line.
func Render(w io.Writer, res *search.Results, showWords bool) {
	sections := []struct {
		title string
		r     search.Result
	}{
		{"Best letter set", res.MostWords},
		{"Highest-scoring letter set", res.HighestScore},
		{"Worst letter set", res.FewestWords},
		{"Lowest-scoring letter set", res.LowestScore},
	}

	for _, sec := range sections {
		fmt.Fprintf(w, "%s is %s, which has %s scoring %d in total\n",
			titleStyle.Render(sec.title),
			puzzleStyle.Render(sec.r.Puzzle.String()),
			CountWords(sec.r.Words.Cardinality()),
			sec.r.Words.Score(),
		)
		if showWords {
			lines := WordLines(sec.r.Words)
			rendered := make([]string, len(lines))
			for i, l := range lines {
				rendered[i] = l.String()
			}
			fmt.Fprintf(w, "%s %s\n",
				wordListStyle.Render("Words for that set:"),
				strings.Join(rendered, ", "),
			)
		}
	}
}
