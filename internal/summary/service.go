// Package summary collects per-file reports over a session and exposes the
// aggregate view: totals across files and a CSV export of the summary table.
package summary

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/gcbaptista/go-spell-checker/model"
)

const maxReportsToKeep = 10000 // Keep last 10k reports to bound memory

// csvHeader matches the columns of the per-file summary table.
var csvHeader = []string{"filename", "total_tokens", "candidate_count", "corrected_count"}

// Service implements report collection and summary export.
// It fulfills the services.SummaryReporter interface.
type Service struct {
	mutex   sync.RWMutex
	reports []model.FileReport
}

// NewService creates a new summary service with no recorded reports.
func NewService() *Service {
	return &Service{
		reports: make([]model.FileReport, 0),
	}
}

// Record appends a report to the session.
func (s *Service) Record(report model.FileReport) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.reports = append(s.reports, report)

	// Keep only the latest reports to prevent unbounded growth
	if len(s.reports) > maxReportsToKeep {
		s.reports = s.reports[len(s.reports)-maxReportsToKeep:]
	}
}

// Reports returns a copy of all recorded reports in processing order.
func (s *Service) Reports() []model.FileReport {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	reports := make([]model.FileReport, len(s.reports))
	copy(reports, s.reports)
	return reports
}

// Totals aggregates the counters of every recorded report.
func (s *Service) Totals() model.SummaryTotals {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	totals := model.SummaryTotals{Files: len(s.reports)}
	for _, report := range s.reports {
		totals.TotalTokens += report.TotalTokens
		totals.CandidateCount += report.CandidateCount
		totals.CorrectedCount += report.CorrectedCount
	}
	return totals
}

// Reset discards all recorded reports.
func (s *Service) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.reports = s.reports[:0]
}

// WriteSummaryCSV writes the per-file summary table as CSV: a header row
// followed by one row per processed file.
func (s *Service) WriteSummaryCSV(w io.Writer) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, report := range s.reports {
		row := []string{
			report.Filename,
			strconv.Itoa(report.TotalTokens),
			strconv.Itoa(report.CandidateCount),
			strconv.Itoa(report.CorrectedCount),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for '%s': %w", report.Filename, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}
