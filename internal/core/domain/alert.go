package domain

import "time"

// AlertTTL is how long an alert stays visible without a newer message.
const AlertTTL = 5 * time.Second

// Severity selects how an alert is styled.
type Severity string

// Alert severities.
const (
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is recognised.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeveritySuccess, SeverityInfo:
		return true
	default:
		return false
	}
}

// Alert is the transient status message shown to the operator.
// An empty Message means no alert is shown.
type Alert struct {
	Message  string
	Severity Severity
}

// Visible reports whether the alert should be rendered.
func (a Alert) Visible() bool {
	return a.Message != ""
}
