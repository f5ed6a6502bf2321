package services

import (
	"io"

	"github.com/gcbaptista/go-spell-checker/model"
)

// CorrectionResult represents the outcome of one correction pass over a
// single piece of text.
type CorrectionResult struct {
	CorrectedText    string   `json:"corrected_text"`
	Tokens           []string `json:"-"` // Corrected token sequence, kept for re-rendering with highlights
	TotalTokens      int      `json:"total_tokens"`      // All tokens, punctuation included
	CandidateCount   int      `json:"candidate_count"`   // Tokens eligible for correction
	CorrectedCount   int      `json:"corrected_count"`   // Tokens actually replaced
	CorrectedIndices []int    `json:"corrected_indices"` // Token positions that were replaced, for highlighting
}

// Dictionary is the black-box spelling capability: bulk unknown-word
// classification plus single best-suggestion retrieval. Any conformant
// dictionary or spell index can be substituted.
type Dictionary interface {
	// Unknown returns the subset of the given lowercase words that the
	// dictionary does not know. It is called once per document with the
	// full candidate batch.
	Unknown(words []string) map[string]struct{}

	// Correction returns the single best-guess correction for a lowercase
	// word, or the empty string when no suggestion exists.
	Correction(word string) string
}

// Corrector runs the end-to-end correction pass over one text.
type Corrector interface {
	Correct(text string) CorrectionResult
}

// DocumentChecker processes uploaded documents and produces per-file reports.
type DocumentChecker interface {
	CheckDocument(doc model.Document) (model.FileReport, error)
	CheckDocuments(docs []model.Document) ([]model.FileReport, error)
}

// SummaryReporter exposes the aggregate view over all reports of a session.
type SummaryReporter interface {
	Reports() []model.FileReport
	Totals() model.SummaryTotals
	WriteSummaryCSV(w io.Writer) error
}
