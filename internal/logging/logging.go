// Package logging configures the console logger for diagnostics.
//
// All log output goes to stderr so the command's stdout stays exactly
// the listing output. The default level is warn; raise to debug to
// trace parsing and index assignment.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the console logger.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
}

// New creates a console logger writing to w with the given options.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          "todo",
	})
}

// ParseLevel maps a config level string to a log level.
func ParseLevel(s string) (log.Level, error) {
	switch s {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "", "warn":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.WarnLevel, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// ParseFormat maps a config format string to a log formatter.
func ParseFormat(s string) (log.Formatter, error) {
	switch s {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unknown log format %q (want text|json|logfmt)", s)
	}
}
