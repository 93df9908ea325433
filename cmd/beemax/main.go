package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/beemax/beemax/internal/report"
	"github.com/beemax/beemax/internal/search"
	"github.com/beemax/beemax/internal/storage"
	"github.com/beemax/beemax/internal/tui"
	"github.com/beemax/beemax/internal/wordindex"
	"github.com/beemax/beemax/pkg/wordlist"
)

var (
	wordFile  string
	dbPath    string
	parallel  int
	verbose   bool
	showWords bool
)

var rootCmd = &cobra.Command{
	Use:   "beemax",
	Short: "Find the best and worst possible Spelling Bee boards",
	Long: `Searches every 7-letter board that admits at least one pangram and
reports the boards with the most words, the highest total score, the fewest
words and the lowest total score, one winner per required-letter variant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve()
	},
}

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse the four winning boards interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExplore()
	},
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import a plaintext word list into the dictionary store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&wordFile, "file", "f", "/usr/share/dict/words", "Path to the word list")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Read words from this sqlite dictionary store instead of a file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every extremum replacement during the search")
	rootCmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "Number of search workers")
	rootCmd.Flags().BoolVarP(&showWords, "words", "w", false, "Print the full word list of each winning board")
	exploreCmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "Number of search workers")

	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// loadWords picks the word source: the sqlite store when --db is given,
// otherwise a plaintext dictionary file.
func loadWords() ([]string, error) {
	if dbPath != "" {
		store, err := storage.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open dictionary store: %w", err)
		}
		defer store.Close()
		return store.LoadWords()
	}
	return wordlist.Load(wordFile)
}

func solve(log *logrus.Logger) (*search.Results, error) {
	start := time.Now()

	words, err := loadWords()
	if err != nil {
		return nil, err
	}
	log.Infof("word list size %d", len(words))

	ix := wordindex.New(words)
	sets := search.PangramSets(ix)
	log.Infof("%d sets of letters allow at least one pangram", len(sets))

	res, err := search.Run(ix, sets, parallel, log)
	if err != nil {
		return nil, err
	}
	log.Infof("searched %d boards in %.1fs", len(sets), time.Since(start).Seconds())
	return res, nil
}

func runSolve() error {
	log := newLogger()
	res, err := solve(log)
	if err != nil {
		return err
	}
	report.Render(os.Stdout, res, showWords)
	return nil
}

func runExplore() error {
	log := newLogger()
	res, err := solve(log)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(res), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runImport(path string) error {
	words, err := wordlist.Load(path)
	if err != nil {
		return err
	}

	target := dbPath
	if target == "" {
		if target, err = storage.DefaultPath(); err != nil {
			return fmt.Errorf("failed to locate dictionary store: %w", err)
		}
	}

	store, err := storage.Open(target)
	if err != nil {
		return fmt.Errorf("failed to open dictionary store: %w", err)
	}
	defer store.Close()

	n, err := store.ImportWords(words)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("imported %d new words into %s (%d read from %s)\n", n, target, len(words), path)
	return nil
}
