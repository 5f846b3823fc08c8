package detail

import "errors"

// ErrNoExportService indicates that no export service was provided.
var ErrNoExportService = errors.New("export service is required")
