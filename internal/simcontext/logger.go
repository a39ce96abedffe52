package simcontext

import (
	"fmt"
	"os"
)

// Logger is a minimal stderr logger. No structured-logging library
// appears anywhere in the example pack; every repo that logs at all
// does it with fmt.Fprintf(os.Stderr, ...), so this follows suit
// rather than reaching for a dependency nothing else in the corpus
// uses.
type Logger struct {
	prefix string
}

// NewLogger returns a Logger that prefixes every line with prefix.
func NewLogger(prefix string) *Logger {
	return &Logger{prefix: prefix}
}

// Warnf logs a non-fatal warning, the same style the teacher uses for
// a failed audio init it chooses to continue past.
func (l *Logger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s: "+format+"\n", append([]any{l.prefix}, args...)...)
}

// Infof logs an informational line.
func (l *Logger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s: "+format+"\n", append([]any{l.prefix}, args...)...)
}
