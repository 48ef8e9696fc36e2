// Package dictionary loads the static word list the engine validates
// answers against.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	minWordLength = 2
	maxWordLength = 16
)

// Dictionary is a thread-safe, load-once set of lowercase a..z words of
// length 2..16. Content is static per process once Load returns.
type Dictionary struct {
	mu    sync.RWMutex
	words map[string]struct{}
}

// Load reads one word per line from path, lowercasing and trimming each
// entry. Blank lines are skipped; a word outside the 2..16 length range or
// containing anything but a..z makes Load fail with an error naming its
// line.
func Load(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer file.Close()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if !isValidWord(word) {
			return nil, fmt.Errorf("dictionary: line %d: %q is not a lowercase 2-16 letter word", lineNum, word)
		}
		words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: reading %s: %w", path, err)
	}

	return &Dictionary{words: words}, nil
}

// NewFromWords builds a Dictionary directly from an in-memory word list,
// used by tests that need a dictionary without touching the filesystem.
// Words are lowercased but not otherwise validated.
func NewFromWords(words []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		d.words[strings.ToLower(w)] = struct{}{}
	}
	return d
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Words returns every word in the dictionary, used by the Puzzle Builder
// to scan for achievable words. The returned slice is a
// fresh copy safe to mutate.
func (d *Dictionary) Words() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	return out
}

// Size reports how many words the dictionary holds.
func (d *Dictionary) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}

func isValidWord(word string) bool {
	if len(word) < minWordLength || len(word) > maxWordLength {
		return false
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
