// Package testing provides utilities and helpers for testing the spell checker.
package testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-spell-checker/config"
	"github.com/gcbaptista/go-spell-checker/internal/dictionary"
	"github.com/gcbaptista/go-spell-checker/internal/engine"
)

// CreateTestDictionary builds a small fixed-frequency dictionary so tests
// get predictable suggestion ranking regardless of the embedded word list.
func CreateTestDictionary() *dictionary.Dictionary {
	return dictionary.New(map[string]int64{
		"this":  500000,
		"is":    400000,
		"a":     350000,
		"and":   300000,
		"fine":  120000,
		"test":  90000,
		"text":  80000,
		"cat":   70000,
		"word":  60000,
		"world": 15000,
		"here":  110000,
		"café":  5000,
	})
}

// CreateTestEngine creates an engine over the test dictionary with the
// given settings; zero-value settings get the defaults.
func CreateTestEngine(t *testing.T, settings config.CheckerSettings) *engine.Engine {
	t.Helper()

	eng, err := engine.NewEngine(settings)
	require.NoError(t, err, "Failed to create test engine")

	require.NoError(t, eng.UseDictionary(CreateTestDictionary()), "Failed to install test dictionary")
	return eng
}
