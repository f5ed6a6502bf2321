package tokenizer

import (
	"regexp"
)

// tokenRegex matches, in order of preference: words (letters with internal
// apostrophes or hyphens, so "don't" and "state-of-the-art" stay whole),
// numbers (digits with internal decimal/grouping separators), and finally
// any single non-space character. Whitespace is never captured; the
// detokenizer restores conventional spacing.
var tokenRegex = regexp.MustCompile(`\p{L}+(?:['\x{2019}-]\p{L}+)*|\p{N}+(?:[.,]\p{N}+)*|\S`)

// Tokenize splits text into an ordered sequence of word, number, and
// punctuation tokens. Unlike a search-index tokenizer it preserves the
// original casing and keeps punctuation as standalone tokens so the
// sequence can be reassembled into readable text.
func Tokenize(text string) []string {
	tokens := tokenRegex.FindAllString(text, -1)
	if tokens == nil {
		return []string{} // Return empty slice instead of nil
	}
	return tokens
}
