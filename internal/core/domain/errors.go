package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidation indicates required input was missing before any request was sent.
	ErrValidation = errors.New("validation failed")

	// ErrUnreachable indicates a request was sent but no response came back.
	ErrUnreachable = errors.New("server unreachable")

	// ErrNoDocumentTypes indicates the server returned an empty document type catalog.
	ErrNoDocumentTypes = errors.New("no document types available")

	// ErrUnsupportedFormat indicates an unknown export format.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrExportFailed indicates the export or its download step failed.
	ErrExportFailed = errors.New("export failed")

	// ErrNoCustomer indicates an operation needs a selected customer and there is none.
	ErrNoCustomer = errors.New("no customer selected")
)

// APIError represents a non-2xx response from the customer API.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d (URL: %s)", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("api: status %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// StatusOf returns the HTTP status carried by err, or 0 when err holds no response.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// IsBadRequest checks if the error is a 400 response.
func IsBadRequest(err error) bool {
	return StatusOf(err) == http.StatusBadRequest
}

// ErrorKind classifies a failed flow.
type ErrorKind string

// Failure kinds surfaced to the operator.
const (
	KindLoadFailure   ErrorKind = "load_failure"
	KindValidation    ErrorKind = "validation_failure"
	KindNotFound      ErrorKind = "not_found"
	KindBadRequest    ErrorKind = "bad_request"
	KindConnectivity  ErrorKind = "connectivity_failure"
	KindGeneric       ErrorKind = "generic_failure"
	KindExportFailure ErrorKind = "export_failure"
)

// FlowError is a failure recovered by the flow that raised it.
// Message is the single human-readable text shown in the alert.
type FlowError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// NewFlowError creates a FlowError wrapping err.
func NewFlowError(kind ErrorKind, message string, err error) *FlowError {
	return &FlowError{Kind: kind, Message: message, Err: err}
}

func (e *FlowError) Error() string {
	return e.Message
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// UserMessage returns the operator-facing message for err.
// Errors that were not classified by a flow fall back to fallback.
func UserMessage(err error, fallback string) string {
	var flowErr *FlowError
	if errors.As(err, &flowErr) && flowErr.Message != "" {
		return flowErr.Message
	}
	return fallback
}

// KindOf returns the failure kind of err, or KindGeneric when unclassified.
func KindOf(err error) ErrorKind {
	var flowErr *FlowError
	if errors.As(err, &flowErr) {
		return flowErr.Kind
	}
	return KindGeneric
}
