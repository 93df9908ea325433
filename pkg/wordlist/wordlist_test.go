package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain words pass",
			input: "face\nfeed\nbanana\n",
			want:  []string{"face", "feed", "banana"},
		},
		{
			name:  "short words dropped",
			input: "cat\nace\nface\n",
			want:  []string{"face"},
		},
		{
			name:  "proper nouns dropped",
			input: "Facet\nface\nLONDON\n",
			want:  []string{"face"},
		},
		{
			name:  "punctuation dropped",
			input: "don't\nface-off\nface\n",
			want:  []string{"face"},
		},
		{
			name:  "duplicates keep first occurrence",
			input: "face\nfeed\nface\n",
			want:  []string{"face", "feed"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Read() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Read()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("face\nnope!\nfeed\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	words, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(words) != 2 || words[0] != "face" || words[1] != "feed" {
		t.Errorf("Load() = %v, want [face feed]", words)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
