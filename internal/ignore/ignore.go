// Package ignore implements the user-supplied ignore set: words that must
// never be treated as misspelled, regardless of dictionary status.
package ignore

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Set holds lowercase words exempt from correction. It is loaded once per
// session and read-only during processing; a nil *Set behaves as empty.
type Set struct {
	words map[string]struct{}
}

// NewSet creates an empty ignore set.
func NewSet() *Set {
	return &Set{words: make(map[string]struct{})}
}

// Load reads an ignore list: one word per line, lowercased on load.
// Blank lines and lines starting with '#' are skipped.
func Load(r io.Reader) (*Set, error) {
	set := NewSet()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ignore list: %w", err)
	}

	return set, nil
}

// Add inserts a word, lowercased.
func (s *Set) Add(word string) {
	s.words[strings.ToLower(word)] = struct{}{}
}

// Contains reports whether the lowercase word is in the set.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}
