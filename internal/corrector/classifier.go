package corrector

import (
	"unicode"
	"unicode/utf8"
)

// IsCandidate decides whether a token is eligible for spelling correction.
// Rules, applied in order: the token must be fully alphabetic, at least
// minLength runes long, not all-uppercase when ignoreAllCaps is set, and
// not title-cased when ignoreTitleCase is set. Pure predicate, no side
// effects.
func IsCandidate(token string, minLength int, ignoreAllCaps, ignoreTitleCase bool) bool {
	if !isAlphabetic(token) {
		return false
	}
	if utf8.RuneCountInString(token) < minLength {
		return false
	}
	if ignoreAllCaps && isAllUpper(token) {
		return false
	}
	if ignoreTitleCase && isTitleCase(token) {
		return false
	}
	return true
}

// isAlphabetic reports whether the token is non-empty and contains only
// letters. Tokens with digits, hyphens, or apostrophes are not candidates.
func isAlphabetic(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isAllUpper reports whether every letter in the token is uppercase.
func isAllUpper(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// isTitleCase reports whether the first letter is uppercase and the rest
// are lowercase, e.g. "Yonsei". A single uppercase letter counts as
// title-cased.
func isTitleCase(token string) bool {
	first := true
	for _, r := range token {
		if first {
			if !unicode.IsUpper(r) {
				return false
			}
			first = false
			continue
		}
		if !unicode.IsLower(r) {
			return false
		}
	}
	return !first
}
