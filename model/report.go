package model

import "time"

// FileReport is the per-document outcome of a spell check: the corrected
// text plus the summary counters shown to the user. Reports are created
// once per processed document and not mutated afterward.
type FileReport struct {
	ID             string    `json:"id"`       // Unique UUID for this report
	Filename       string    `json:"filename"` // Name of the source document
	CorrectedText  string    `json:"corrected_text"`
	TotalTokens    int       `json:"total_tokens"`    // All tokens produced by the tokenizer, punctuation included
	CandidateCount int       `json:"candidate_count"` // Tokens that passed the candidate classifier
	CorrectedCount int       `json:"corrected_count"` // Candidates actually replaced with a suggestion
	UsedFallback   bool      `json:"used_fallback"`   // True when the content was not valid UTF-8 and the legacy decoder ran
	Took           int64     `json:"took"`            // Processing time in milliseconds
	ProcessedAt    time.Time `json:"processed_at"`
}

// SummaryTotals aggregates the counters of every report in a session.
type SummaryTotals struct {
	Files          int `json:"files"`
	TotalTokens    int `json:"total_tokens"`
	CandidateCount int `json:"candidate_count"`
	CorrectedCount int `json:"corrected_count"`
}
