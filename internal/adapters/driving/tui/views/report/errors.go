package report

import "errors"

// ErrNoReportService indicates that no report service was provided.
var ErrNoReportService = errors.New("report service is required")
