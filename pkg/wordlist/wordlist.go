// Package wordlist reads and filters dictionary files. A usable word is four
// or more lowercase ASCII letters, which drops proper nouns, apostrophes and
// short tokens from typical system dictionaries.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
)

var allowed = regexp.MustCompile(`^[a-z]{4,}$`)

// Read scans r line by line and returns the usable words in order, with
// duplicates removed (first occurrence wins).
func Read(r io.Reader) ([]string, error) {
	seen := make(map[string]bool)
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := scanner.Text()
		if !allowed.MatchString(word) {
			continue
		}
		if seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Load reads the dictionary file at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	return words, nil
}
