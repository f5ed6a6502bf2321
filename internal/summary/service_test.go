package summary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-spell-checker/model"
)

func TestRecordAndTotals(t *testing.T) {
	service := NewService()

	service.Record(model.FileReport{
		Filename:       "a.txt",
		TotalTokens:    10,
		CandidateCount: 4,
		CorrectedCount: 2,
	})
	service.Record(model.FileReport{
		Filename:       "b.txt",
		TotalTokens:    7,
		CandidateCount: 3,
		CorrectedCount: 1,
	})

	totals := service.Totals()
	assert.Equal(t, 2, totals.Files)
	assert.Equal(t, 17, totals.TotalTokens)
	assert.Equal(t, 7, totals.CandidateCount)
	assert.Equal(t, 3, totals.CorrectedCount)

	reports := service.Reports()
	require.Len(t, reports, 2)
	assert.Equal(t, "a.txt", reports[0].Filename)
	assert.Equal(t, "b.txt", reports[1].Filename)
}

func TestReportsReturnsCopy(t *testing.T) {
	service := NewService()
	service.Record(model.FileReport{Filename: "a.txt"})

	reports := service.Reports()
	reports[0].Filename = "mutated.txt"

	assert.Equal(t, "a.txt", service.Reports()[0].Filename)
}

func TestReset(t *testing.T) {
	service := NewService()
	service.Record(model.FileReport{Filename: "a.txt"})

	service.Reset()

	assert.Empty(t, service.Reports())
	assert.Equal(t, 0, service.Totals().Files)
}

func TestWriteSummaryCSV(t *testing.T) {
	service := NewService()
	service.Record(model.FileReport{
		Filename:       "essay.txt",
		TotalTokens:    120,
		CandidateCount: 80,
		CorrectedCount: 5,
	})
	service.Record(model.FileReport{
		Filename:       "notes, final.txt", // comma forces CSV quoting
		TotalTokens:    30,
		CandidateCount: 12,
		CorrectedCount: 0,
	})

	var buf bytes.Buffer
	err := service.WriteSummaryCSV(&buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "filename,total_tokens,candidate_count,corrected_count", lines[0])
	assert.Equal(t, "essay.txt,120,80,5", lines[1])
	assert.Equal(t, `"notes, final.txt",30,12,0`, lines[2])
}

func TestWriteSummaryCSVEmptySession(t *testing.T) {
	service := NewService()

	var buf bytes.Buffer
	require.NoError(t, service.WriteSummaryCSV(&buf))

	assert.Equal(t, "filename,total_tokens,candidate_count,corrected_count\n", buf.String())
}
