package corrector

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CaseCategory classifies a token's casing pattern so a lowercase
// suggestion can be rendered the way the original token was written.
type CaseCategory int

const (
	// CaseOther covers lowercase and mixed-case tokens; suggestions are
	// returned unmodified for these.
	CaseOther CaseCategory = iota
	// CaseTitle is first letter uppercase, remainder lowercase.
	CaseTitle
	// CaseUpper is every letter uppercase.
	CaseUpper
)

// CategoryOf returns the casing category of a token. Title-case is checked
// before all-caps so a single capital letter counts as title-cased, matching
// how the replacement is rendered most readably.
func CategoryOf(token string) CaseCategory {
	switch {
	case isTitleCase(token):
		return CaseTitle
	case isAllUpper(token):
		return CaseUpper
	default:
		return CaseOther
	}
}

// ApplyCase reapplies a casing category to a suggestion. Dictionaries return
// suggestions in lowercase; title-case uppercases the first rune and
// lowercases the rest, all-caps uppercases everything, and any other
// category leaves the suggestion untouched.
func ApplyCase(category CaseCategory, suggestion string) string {
	if suggestion == "" {
		return suggestion
	}

	switch category {
	case CaseTitle:
		first, size := utf8.DecodeRuneInString(suggestion)
		return string(unicode.ToUpper(first)) + strings.ToLower(suggestion[size:])
	case CaseUpper:
		return strings.ToUpper(suggestion)
	default:
		return suggestion
	}
}
