package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// ConsoleLogger writes leveled messages to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	logger *log.Logger
}

// NewConsoleLogger creates a ConsoleLogger on stderr.
// Verbose calls produce output only when verbose is true.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stderr, verbose)
}

// NewConsoleLoggerTo creates a ConsoleLogger writing to w.
func NewConsoleLoggerTo(w io.Writer, verbose bool) *ConsoleLogger {
	l := log.NewWithOptions(w, log.Options{Prefix: "ogmi"})
	if verbose {
		l.SetLevel(log.DebugLevel)
	} else {
		l.SetLevel(log.InfoLevel)
	}
	return &ConsoleLogger{logger: l}
}

// Verbose logs diagnostic detail at debug level.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

// Info logs normal progress messages.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

// Error logs failures.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}
