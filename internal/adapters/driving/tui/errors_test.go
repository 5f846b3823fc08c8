package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingLookupService,
		ErrMissingExportService,
		ErrMissingReportService,
		ErrMissingSession,
	}

	// Ensure all errors are unique
	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingLookupService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingLookupService.Error(), "lookup service")
}

func TestErrMissingSession_Message(t *testing.T) {
	assert.Contains(t, ErrMissingSession.Error(), "session")
}
