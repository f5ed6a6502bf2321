package corrector

import (
	"fmt"
	"strings"

	"github.com/gcbaptista/go-spell-checker/config"
	"github.com/gcbaptista/go-spell-checker/internal/ignore"
	"github.com/gcbaptista/go-spell-checker/internal/tokenizer"
	"github.com/gcbaptista/go-spell-checker/services"
)

// Service implements the end-to-end correction pass over one text.
// It fulfills the services.Corrector interface. The pass is state-free:
// every call tokenizes, classifies, looks up, substitutes, and reassembles
// without touching anything shared beyond the read-only dictionary and
// ignore set.
type Service struct {
	dict     services.Dictionary
	settings *config.CheckerSettings
	ignore   *ignore.Set // may be nil (empty set)
}

// NewService creates a new correction Service.
func NewService(dict services.Dictionary, settings *config.CheckerSettings, ignoreSet *ignore.Set) (*Service, error) {
	if dict == nil {
		return nil, fmt.Errorf("dictionary cannot be nil")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}

	return &Service{
		dict:     dict,
		settings: settings,
		ignore:   ignoreSet,
	}, nil
}

// Correct runs the single correction pass:
// tokenize, classify candidates, bulk-classify unknowns (one dictionary
// call for the whole document), substitute best-guess corrections with the
// original casing reapplied, and detokenize. Empty input yields an empty
// result with all counts zero.
func (s *Service) Correct(text string) services.CorrectionResult {
	tokens := tokenizer.Tokenize(text)

	candidateIndices := make([]int, 0)
	candidateWords := make([]string, 0)

	for i, tok := range tokens {
		if !IsCandidate(tok, s.settings.MinWordLength, s.settings.IgnoreAllCaps, s.settings.IgnoreTitleCase) {
			continue
		}
		lower := strings.ToLower(tok)
		if s.ignore.Contains(lower) {
			continue
		}
		candidateIndices = append(candidateIndices, i)
		candidateWords = append(candidateWords, lower)
	}

	// One bulk lookup per document bounds dictionary cost to a single call.
	unknown := s.dict.Unknown(candidateWords)

	correctedIndices := make([]int, 0)

	for n, i := range candidateIndices {
		lower := candidateWords[n]
		if _, isUnknown := unknown[lower]; !isUnknown {
			continue
		}

		suggestion := s.dict.Correction(lower)
		if suggestion == "" || suggestion == lower {
			continue // No usable suggestion: leave the token unchanged
		}

		tokens[i] = ApplyCase(CategoryOf(tokens[i]), suggestion)
		correctedIndices = append(correctedIndices, i)
	}

	return services.CorrectionResult{
		CorrectedText:    tokenizer.Detokenize(tokens),
		Tokens:           tokens,
		TotalTokens:      len(tokens),
		CandidateCount:   len(candidateWords),
		CorrectedCount:   len(correctedIndices),
		CorrectedIndices: correctedIndices,
	}
}

// Highlight re-renders a correction result with every corrected token
// passed through wrap, so a presentation layer can mark corrections
// without this package emitting any markup itself.
func Highlight(result services.CorrectionResult, wrap func(token string) string) string {
	corrected := make(map[int]struct{}, len(result.CorrectedIndices))
	for _, i := range result.CorrectedIndices {
		corrected[i] = struct{}{}
	}

	return tokenizer.DetokenizeWith(result.Tokens, func(index int, token string) string {
		if _, ok := corrected[index]; ok {
			return wrap(token)
		}
		return token
	})
}
