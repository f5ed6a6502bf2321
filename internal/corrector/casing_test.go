package corrector

import (
	"testing"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		token string
		want  CaseCategory
	}{
		{"teh", CaseOther},
		{"Teh", CaseTitle},
		{"TEH", CaseUpper},
		{"tEh", CaseOther},
		{"A", CaseTitle}, // single capital reads as title-case
		{"", CaseOther},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := CategoryOf(tt.token)
			if got != tt.want {
				t.Errorf("CategoryOf(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestApplyCase(t *testing.T) {
	tests := []struct {
		name       string
		category   CaseCategory
		suggestion string
		want       string
	}{
		{"title capitalizes first rune", CaseTitle, "the", "The"},
		{"upper uppercases everything", CaseUpper, "the", "THE"},
		{"other leaves suggestion alone", CaseOther, "the", "the"},
		{"empty suggestion", CaseTitle, "", ""},
		{"unicode first rune", CaseTitle, "état", "État"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyCase(tt.category, tt.suggestion)
			if got != tt.want {
				t.Errorf("ApplyCase(%v, %q) = %q, want %q", tt.category, tt.suggestion, got, tt.want)
			}
		})
	}
}
