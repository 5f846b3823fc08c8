package tui

import "errors"

// ErrMissingLookupService is returned when the lookup service is not provided.
var ErrMissingLookupService = errors.New("tui: lookup service is required")

// ErrMissingExportService is returned when the export service is not provided.
var ErrMissingExportService = errors.New("tui: export service is required")

// ErrMissingReportService is returned when the report service is not provided.
var ErrMissingReportService = errors.New("tui: report service is required")

// ErrMissingSession is returned when the session store is not provided.
var ErrMissingSession = errors.New("tui: session is required")
