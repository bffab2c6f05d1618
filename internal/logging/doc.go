// Package logging provides implementations of the ogmi.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: leveled, prefixed output on stderr via charmbracelet/log
//   - NullLogger: discards all messages (tests and library defaults)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
