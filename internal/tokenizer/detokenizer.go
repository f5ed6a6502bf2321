package tokenizer

import (
	"strings"
)

// noSpaceBefore lists tokens that attach directly to the preceding token,
// matching conventional English spacing.
var noSpaceBefore = map[string]bool{
	".": true, ",": true, "!": true, "?": true, ";": true, ":": true,
	")": true, "]": true, "}": true, "%": true, "…": true, "’": true,
}

// noSpaceAfter lists tokens that attach directly to the following token.
var noSpaceAfter = map[string]bool{
	"(": true, "[": true, "{": true, "$": true, "#": true, "‘": true,
}

// Detokenize reassembles a token sequence into a single string, restoring
// conventional spacing around punctuation. Empty tokens are skipped rather
// than producing stray spaces, so a sequence that was defensively blanked
// out still detokenizes cleanly. For simple sentences with standard
// punctuation spacing, Detokenize(Tokenize(x)) == x.
func Detokenize(tokens []string) string {
	return DetokenizeWith(tokens, nil)
}

// DetokenizeWith is Detokenize with a per-token decorator applied to the
// emitted text. Spacing decisions always use the undecorated token, so a
// decorator can wrap tokens (for example to highlight corrections) without
// disturbing the layout. A nil decorator emits tokens unchanged.
func DetokenizeWith(tokens []string, decorate func(index int, token string) string) string {
	var sb strings.Builder
	glueNext := false      // Previous token suppresses the following space
	inDoubleQuote := false // Tracks open/close state for straight double quotes
	wroteAny := false

	for i, tok := range tokens {
		if tok == "" {
			continue // Skip defensively blanked tokens
		}

		space := true
		switch {
		case !wroteAny:
			space = false
		case glueNext:
			space = false
		case noSpaceBefore[tok]:
			space = false
		case strings.HasPrefix(tok, "'"):
			// Contraction remainders like 's or 'll attach to the previous word
			space = false
		case tok == `"`:
			if inDoubleQuote {
				space = false // Closing quote hugs the quoted text
			}
		}

		if space {
			sb.WriteByte(' ')
		}

		out := tok
		if decorate != nil {
			out = decorate(i, tok)
		}
		sb.WriteString(out)
		wroteAny = true

		glueNext = noSpaceAfter[tok]
		if tok == `"` {
			if !inDoubleQuote {
				glueNext = true // Opening quote hugs the quoted text
			}
			inDoubleQuote = !inDoubleQuote
		}
	}

	return sb.String()
}
