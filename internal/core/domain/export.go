package domain

import (
	"fmt"
	"strings"
	"time"
)

// ExportFormat is a customer export format understood by the server.
type ExportFormat string

// Available export formats.
const (
	ExportCSV   ExportFormat = "csv"
	ExportExcel ExportFormat = "excel"
	ExportTXT   ExportFormat = "txt"
)

// AllExportFormats returns the formats in the order they are offered.
func AllExportFormats() []ExportFormat {
	return []ExportFormat{ExportCSV, ExportExcel, ExportTXT}
}

// ParseExportFormat parses a format name, case-insensitively.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	return f, nil
}

// IsValid returns true if the format is recognised.
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportCSV, ExportExcel, ExportTXT:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f ExportFormat) String() string {
	return string(f)
}

// Extension returns the file extension: xlsx for excel, the format name otherwise.
func (f ExportFormat) Extension() string {
	if f == ExportExcel {
		return "xlsx"
	}
	return string(f)
}

// Label returns the button label for the format.
func (f ExportFormat) Label() string {
	switch f {
	case ExportExcel:
		return "Exportar Excel"
	default:
		return "Exportar " + strings.ToUpper(string(f))
	}
}

// CustomerExportFileName returns cliente_<numero_documento>.<ext>.
func CustomerExportFileName(documentNumber string, f ExportFormat) string {
	return fmt.Sprintf("cliente_%s.%s", documentNumber, f.Extension())
}

// LoyaltyReportFileName returns reporte_fidelizacion_<YYYY-MM-DD>.xlsx for the
// UTC calendar date of t.
func LoyaltyReportFileName(t time.Time) string {
	return fmt.Sprintf("reporte_fidelizacion_%s.xlsx", t.UTC().Format(time.DateOnly))
}
