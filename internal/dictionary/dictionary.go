// Package dictionary provides the spelling capability behind the corrector:
// a frequency-ranked word list answering bulk unknown-word queries and
// single best-suggestion lookups. The word list is immutable once built, so
// a Dictionary is safe for concurrent readers without locking.
package dictionary

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

//go:embed data/en_words.txt
var defaultWordData []byte

// Dictionary holds known lowercase words with their corpus frequencies.
// Suggestions are ranked frequency-first among the closest candidates.
type Dictionary struct {
	words map[string]int64 // lowercase word -> corpus frequency

	// Words bucketed by rune length. Edit distance between words whose
	// lengths differ by more than the distance limit can never be within
	// the limit, so a candidate scan only touches nearby buckets.
	lengthBuckets map[int][]string

	// Cache for suggestion lookups. The word list never changes, so cached
	// entries stay valid for the dictionary's lifetime.
	cache        map[string]string
	cacheMu      sync.RWMutex
	maxCacheSize int
}

// New creates a Dictionary from a map of lowercase words to frequencies.
// Entries with a non-positive frequency are kept with frequency 1 so that
// presence still counts as "known".
func New(frequencies map[string]int64) *Dictionary {
	d := &Dictionary{
		words:         make(map[string]int64, len(frequencies)),
		lengthBuckets: make(map[int][]string),
		cache:         make(map[string]string),
		maxCacheSize:  10000,
	}

	for word, freq := range frequencies {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		if freq <= 0 {
			freq = 1
		}
		if _, exists := d.words[word]; !exists {
			length := utf8.RuneCountInString(word)
			d.lengthBuckets[length] = append(d.lengthBuckets[length], word)
		}
		d.words[word] = freq
	}

	return d
}

// Load builds a Dictionary from a word-frequency list: one word per line,
// optionally followed by whitespace and a count. Lines starting with '#'
// and blank lines are skipped; words without a count get frequency 1.
func Load(r io.Reader) (*Dictionary, error) {
	frequencies := make(map[string]int64)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		word := strings.ToLower(fields[0])
		var freq int64 = 1
		if len(fields) > 1 {
			parsed, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid frequency for word '%s' on line %d: %w", word, lineNo, err)
			}
			freq = parsed
		}
		frequencies[word] += freq
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	return New(frequencies), nil
}

// Default returns a Dictionary built from the embedded English word list.
func Default() (*Dictionary, error) {
	d, err := Load(bytes.NewReader(defaultWordData))
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded word list: %w", err)
	}
	return d, nil
}

// Len returns the number of known words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Known reports whether the lowercase word is present in the dictionary.
func (d *Dictionary) Known(word string) bool {
	_, ok := d.words[word]
	return ok
}

// Frequency returns the corpus frequency of a word, 0 when unknown.
func (d *Dictionary) Frequency(word string) int64 {
	return d.words[word]
}

// Unknown returns the subset of the given lowercase words that the
// dictionary does not know. This is the bulk classification call: one
// invocation covers a whole document's candidate batch.
func (d *Dictionary) Unknown(words []string) map[string]struct{} {
	unknown := make(map[string]struct{})
	for _, word := range words {
		if !d.Known(word) {
			unknown[word] = struct{}{}
		}
	}
	return unknown
}
