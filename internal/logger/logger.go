// Package logger provides leveled logging for the consulta client.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users follow each API round trip.
//
// Output is human-readable on a terminal and JSON lines otherwise.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var (
	mu      sync.RWMutex
	verbose bool
	level   = zerolog.InfoLevel
	output  io.Writer = os.Stderr
	log               = build()
)

// build creates the logger for the current settings (caller must hold lock).
func build() zerolog.Logger {
	lvl := level
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(writerFor(output)).Level(lvl).With().Timestamp().Logger()
}

func writerFor(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return zerolog.ConsoleWriter{Out: f, TimeFormat: time.TimeOnly}
	}
	return w
}

// SetVerbose enables or disables verbose logging.
// Verbose mode lowers the level to debug regardless of SetLevel.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	log = build()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetLevel sets the minimum level when not verbose.
// Accepts debug, info, warn and error.
func SetLevel(name string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || lvl == zerolog.NoLevel {
		return fmt.Errorf("unknown log level %q", name)
	}

	mu.Lock()
	defer mu.Unlock()
	level = lvl
	log = build()
	return nil
}

// SetOutput sets the output writer.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = build()
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	l := current()
	l.Debug().Msgf(format, args...)
}

// Section logs a section header at debug level.
func Section(name string) {
	l := current()
	l.Debug().Str("section", name).Msg("=== " + name + " ===")
}

// Info logs an informational message.
func Info(format string, args ...any) {
	l := current()
	l.Info().Msgf(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	l := current()
	l.Warn().Msgf(format, args...)
}

// Error logs err with a message.
func Error(err error, format string, args ...any) {
	l := current()
	l.Error().Err(err).Msgf(format, args...)
}
