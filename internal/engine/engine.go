package engine

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-spell-checker/config"
	"github.com/gcbaptista/go-spell-checker/internal/corrector"
	"github.com/gcbaptista/go-spell-checker/internal/dictionary"
	interrors "github.com/gcbaptista/go-spell-checker/internal/errors"
	"github.com/gcbaptista/go-spell-checker/internal/ignore"
	"github.com/gcbaptista/go-spell-checker/internal/summary"
	"github.com/gcbaptista/go-spell-checker/internal/textenc"
	"github.com/gcbaptista/go-spell-checker/model"
	"github.com/gcbaptista/go-spell-checker/services"
)

// Engine orchestrates one spell-checking session: it owns the dictionary,
// the optional ignore set, and the summary of everything processed so far.
// It implements the services.DocumentChecker and services.SummaryReporter
// interfaces.
//
// The dictionary is loaded at most once per Engine via EnsureDictionary and
// immutable afterward, so documents can be checked from multiple goroutines
// without cross-request locking; within one session, documents are expected
// to be processed sequentially.
type Engine struct {
	settings config.CheckerSettings

	dictOnce sync.Once
	dict     services.Dictionary
	dictErr  error

	ignoreSet *ignore.Set
	summary   *summary.Service
}

// NewEngine creates a session engine with the given settings. Settings get
// defaults applied; invalid settings are rejected.
func NewEngine(settings config.CheckerSettings) (*Engine, error) {
	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		return nil, interrors.NewValidationError("settings", strings.Join(problems, "; "))
	}

	return &Engine{
		settings: settings,
		summary:  summary.NewService(),
	}, nil
}

// UseDictionary installs a custom dictionary instead of the embedded
// default. Must be called before the first document is processed; once a
// dictionary is in place the session keeps it, and a later call returns an
// error instead of silently dropping the replacement.
func (e *Engine) UseDictionary(dict services.Dictionary) error {
	if dict == nil {
		return interrors.NewValidationError("dictionary", "must not be nil")
	}

	installed := false
	e.dictOnce.Do(func() {
		e.dict = dict
		installed = true
	})
	if !installed {
		return interrors.NewValidationError("dictionary", "a dictionary is already installed for this session")
	}
	return nil
}

// EnsureDictionary makes sure the dictionary is ready, loading the embedded
// default word list on first use. The load happens once per Engine lifetime
// no matter how often this is called; every document check goes through it,
// so callers never race the initialization.
func (e *Engine) EnsureDictionary() error {
	e.dictOnce.Do(func() {
		dict, err := dictionary.Default()
		if err != nil {
			e.dictErr = fmt.Errorf("failed to load default dictionary: %w", err)
			return
		}
		log.Printf("Loaded embedded dictionary with %d words", dict.Len())
		e.dict = dict
	})

	if e.dictErr != nil {
		return interrors.NewDictionaryNotLoadedError(e.dictErr.Error())
	}
	if e.dict == nil {
		return interrors.NewDictionaryNotLoadedError("no dictionary installed")
	}
	return nil
}

// LoadIgnoreList reads the optional user-supplied ignore list. On failure a
// warning-grade IgnoreListError is returned and the session continues with
// an empty ignore set. Returns the number of words loaded.
func (e *Engine) LoadIgnoreList(r io.Reader) (int, error) {
	set, err := ignore.Load(r)
	if err != nil {
		log.Printf("Warning: Failed to load ignore list: %v. Continuing with an empty ignore set.", err)
		e.ignoreSet = nil
		return 0, interrors.NewIgnoreListError(err)
	}

	e.ignoreSet = set
	return set.Len(), nil
}

// CheckDocument decodes and spell-checks a single document, records its
// report in the session summary, and returns the report.
func (e *Engine) CheckDocument(doc model.Document) (model.FileReport, error) {
	if err := e.EnsureDictionary(); err != nil {
		return model.FileReport{}, err
	}

	service, err := corrector.NewService(e.dict, &e.settings, e.ignoreSet)
	if err != nil {
		return model.FileReport{}, fmt.Errorf("failed to create corrector: %w", err)
	}

	startTime := time.Now()

	var (
		text         string
		usedFallback bool
	)
	if !doc.IsEmpty() {
		text, usedFallback = textenc.Decode(doc.Content)
		if usedFallback {
			log.Printf("Warning: Document '%s' is not valid UTF-8, decoded as Windows-1252", doc.Name)
		}
	}

	result := service.Correct(text)

	report := model.FileReport{
		ID:             uuid.New().String(),
		Filename:       doc.Name,
		CorrectedText:  result.CorrectedText,
		TotalTokens:    result.TotalTokens,
		CandidateCount: result.CandidateCount,
		CorrectedCount: result.CorrectedCount,
		UsedFallback:   usedFallback,
		Took:           time.Since(startTime).Milliseconds(),
		ProcessedAt:    startTime,
	}

	e.summary.Record(report)
	return report, nil
}

// CheckDocuments processes documents sequentially and independently,
// returning one report per document in input order. Zero documents is a
// user-input condition reported as ErrNoDocuments; nothing is processed.
func (e *Engine) CheckDocuments(docs []model.Document) ([]model.FileReport, error) {
	if len(docs) == 0 {
		return nil, interrors.NewNoDocumentsError()
	}

	reports := make([]model.FileReport, 0, len(docs))
	for _, doc := range docs {
		report, err := e.CheckDocument(doc)
		if err != nil {
			return reports, fmt.Errorf("failed to check document '%s': %w", doc.Name, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// Reports returns the per-file reports recorded so far, in processing order.
func (e *Engine) Reports() []model.FileReport {
	return e.summary.Reports()
}

// Totals returns the aggregate counters across all recorded reports.
func (e *Engine) Totals() model.SummaryTotals {
	return e.summary.Totals()
}

// WriteSummaryCSV exports the session's per-file summary table as CSV.
func (e *Engine) WriteSummaryCSV(w io.Writer) error {
	return e.summary.WriteSummaryCSV(w)
}
