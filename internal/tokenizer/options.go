package tokenizer

import (
	"fmt"

	"github.com/shapestone/shape-lex/internal/symtab"
)

// ErrorMode specifies what the tokenizer does after a diagnostic.
type ErrorMode int

const (
	// ErrorModeAbort returns the first diagnostic and ends the session (default).
	ErrorModeAbort ErrorMode = iota
	// ErrorModeWarn reports the diagnostic to WarningCallback, discards the
	// rest of the offending line and keeps scanning.
	ErrorModeWarn
	// ErrorModeSkip discards the rest of the offending line silently.
	ErrorModeSkip
)

// Options configures the tokenizer behavior.
type Options struct {
	// OnError selects the diagnostic policy. Default: ErrorModeAbort
	OnError ErrorMode
	// AllowStringSpaces permits spaces and tabs inside string literals.
	// A newline always ends a string with a diagnostic. Default: false
	AllowStringSpaces bool
	// WarningCallback is invoked for diagnostics when OnError is ErrorModeWarn
	WarningCallback func(line int, message string)
	// Symbols is the intern table to use. Nil means a fresh seeded table.
	Symbols *symtab.Table
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		OnError: ErrorModeAbort,
	}
}

// String returns the string representation of ErrorMode.
func (m ErrorMode) String() string {
	switch m {
	case ErrorModeAbort:
		return "abort"
	case ErrorModeWarn:
		return "warn"
	case ErrorModeSkip:
		return "skip"
	default:
		return fmt.Sprintf("ErrorMode(%d)", int(m))
	}
}
