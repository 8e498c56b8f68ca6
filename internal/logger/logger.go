// Package logger provides leveled logging for the ProConnect CLI.
// Messages at or above the configured level are written to stderr through
// zerolog; debug messages additionally require verbose mode (--verbose).
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	verbose bool
	level   = zerolog.WarnLevel
	log     = newLogger(os.Stderr)
)

// newLogger builds a plain console logger without timestamps or colour.
func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	})
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(w)
}

// SetLevel sets the minimum level for Info and Warn.
//
//	"debug" → DebugLevel
//	"info"  → InfoLevel
//	"warn"  → WarnLevel  ← default
//	"error" → ErrorLevel
func SetLevel(s string) {
	mu.Lock()
	defer mu.Unlock()
	level = ParseLevel(s)
}

// Level returns the configured minimum level.
func Level() zerolog.Level {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// ParseLevel converts a level name to a zerolog.Level.
// Unrecognised names fall back to warn.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// enabled reports whether a message at lvl should be written (caller holds lock).
func enabled(lvl zerolog.Level) bool {
	return verbose || lvl >= level
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Debug().Msgf(format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Debug().Msgf("=== %s ===", name)
	}
}

// Info prints an informational message.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if enabled(zerolog.InfoLevel) {
		log.Info().Msgf(format, args...)
	}
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if enabled(zerolog.WarnLevel) {
		log.Warn().Msgf(format, args...)
	}
}

// Error prints an error message.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if enabled(zerolog.ErrorLevel) {
		log.Error().Msgf(format, args...)
	}
}
