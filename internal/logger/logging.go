// Package logger builds prefixed charmbracelet/log loggers for the packages
// that write to their own stream.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger on stderr that follows the global log level.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix)
}

// NewWithWriter creates a logger on w that follows the global log level.
func NewWithWriter(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// Setup points the package-level logger at stderr, keeping stdout free for
// the IPC stream.
func Setup(debug bool) {
	log.SetOutput(os.Stderr)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return
	}
	log.SetLevel(log.WarnLevel)
	log.SetReportTimestamp(false)
}
