package finder

import (
	"os"

	"github.com/rs/zerolog"
)

// Diagnostics receives non-fatal traversal failures: unreadable
// directories, entries that cannot be stat'ed, and similar per-entry
// conditions. A reported entry is skipped and the traversal continues.
type Diagnostics interface {
	Report(path string, err error)
}

// LogDiagnostics writes each report as a zerolog warning.
type LogDiagnostics struct {
	log zerolog.Logger
}

// NewLogDiagnostics wraps an existing logger.
func NewLogDiagnostics(log zerolog.Logger) *LogDiagnostics {
	return &LogDiagnostics{log: log}
}

// NewConsoleDiagnostics returns a sink writing human-readable warnings to
// stderr.
func NewConsoleDiagnostics() *LogDiagnostics {
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger()
	return &LogDiagnostics{log: log}
}

func (d *LogDiagnostics) Report(path string, err error) {
	d.log.Warn().Str("path", path).Err(err).Msg("skipped during scan")
}

// NopDiagnostics discards all reports.
type NopDiagnostics struct{}

func (NopDiagnostics) Report(string, error) {}
