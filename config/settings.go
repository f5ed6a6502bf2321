// Package config provides configuration structures for the spell checker.
// It defines candidate selection thresholds and casing-based skip rules.
package config

// CheckerSettings contains all configuration options for a spell-check run.
// The zero value is not usable directly; call ApplyDefaults first or start
// from DefaultSettings().
//
// Candidate selection applies the rules in this order:
// 1. Only fully alphabetic tokens are considered
// 2. Tokens shorter than MinWordLength (in runes) are skipped
// 3. All-uppercase tokens are skipped when IgnoreAllCaps is set
// 4. Title-cased tokens are skipped when IgnoreTitleCase is set
type CheckerSettings struct {
	MinWordLength   int  `json:"min_word_length"`   // Minimum word length (runes) for a token to be a correction candidate (e.g., 3)
	IgnoreAllCaps   bool `json:"ignore_all_caps"`   // Skip all-uppercase tokens such as acronyms (e.g., "NASA")
	IgnoreTitleCase bool `json:"ignore_title_case"` // Skip title-cased tokens such as proper nouns (e.g., "Yonsei")
}

// DefaultSettings returns the settings used when the caller does not
// configure anything: minimum length 3, acronyms skipped, title-cased
// words still checked.
func DefaultSettings() CheckerSettings {
	return CheckerSettings{
		MinWordLength: defaultMinWordLength,
		IgnoreAllCaps: true,
	}
}

const (
	defaultMinWordLength = 3
	maxMinWordLength     = 20
)

// ApplyDefaults applies default values to unset fields
func (settings *CheckerSettings) ApplyDefaults() {
	if settings.MinWordLength == 0 {
		settings.MinWordLength = defaultMinWordLength
	}
}

// Validate checks the settings for basic requirements and returns a list of
// problems, empty when the settings are usable.
func (settings *CheckerSettings) Validate() []string {
	var conflicts []string

	if settings.MinWordLength < 1 {
		conflicts = append(conflicts, "min_word_length must be at least 1")
	}
	if settings.MinWordLength > maxMinWordLength {
		conflicts = append(conflicts, "min_word_length must be at most 20")
	}

	return conflicts
}
