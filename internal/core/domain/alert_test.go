package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAlert_Visible(t *testing.T) {
	assert.False(t, Alert{}.Visible())
	assert.False(t, Alert{Severity: SeverityError}.Visible())
	assert.True(t, Alert{Message: "x", Severity: SeverityInfo}.Visible())
}

func TestSeverity_IsValid(t *testing.T) {
	assert.True(t, SeverityError.IsValid())
	assert.True(t, SeveritySuccess.IsValid())
	assert.True(t, SeverityInfo.IsValid())
	assert.False(t, Severity("warning").IsValid())
}

func TestAlertTTL(t *testing.T) {
	assert.Equal(t, 5*time.Second, AlertTTL)
}
