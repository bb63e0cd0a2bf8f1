// Package lex provides configurable options for tokenizing.
package lex

import (
	"fmt"
	"strings"

	"github.com/shapestone/shape-lex/internal/tokenizer"
)

// Options configures tokenizing behavior.
type Options struct {
	// OnError specifies how diagnostics are handled.
	// Default: ErrorModeAbort
	OnError ErrorMode

	// AllowStringSpaces permits spaces and tabs inside string literals.
	// A newline still ends a string with a diagnostic.
	// Default: false
	AllowStringSpaces bool

	// WarningCallback is invoked for each diagnostic when OnError is ErrorModeWarn.
	// If nil, diagnostics are only recorded.
	WarningCallback WarningHandler

	// Symbols is the intern table to use. Sharing one table between
	// tokenizers makes equal spellings share one Symbol across them.
	// Default: nil (a fresh table per tokenizer)
	Symbols *SymbolTable
}

// DefaultOptions returns the default tokenizer configuration.
func DefaultOptions() Options {
	return Options{
		OnError:           ErrorModeAbort,
		AllowStringSpaces: false,
		WarningCallback:   nil,
		Symbols:           nil,
	}
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	switch o.OnError {
	case ErrorModeAbort, ErrorModeWarn, ErrorModeSkip:
	default:
		return &OptionsError{Field: "OnError", Message: fmt.Sprintf("unknown mode %d", int(o.OnError))}
	}
	if o.WarningCallback != nil && o.OnError != ErrorModeWarn {
		return &OptionsError{Field: "WarningCallback", Message: "only used with ErrorModeWarn"}
	}
	return nil
}

func (o Options) internal() tokenizer.Options {
	return tokenizer.Options{
		OnError:           o.OnError,
		AllowStringSpaces: o.AllowStringSpaces,
		WarningCallback:   o.WarningCallback,
		Symbols:           o.Symbols,
	}
}

// ParseErrorMode parses "abort", "warn" or "skip", ignoring case and
// surrounding space.
func ParseErrorMode(s string) (ErrorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "abort":
		return ErrorModeAbort, nil
	case "warn":
		return ErrorModeWarn, nil
	case "skip":
		return ErrorModeSkip, nil
	default:
		return ErrorModeAbort, &OptionsError{Field: "OnError", Message: fmt.Sprintf("unknown mode %q", s)}
	}
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "lex: invalid " + e.Field + ": " + e.Message
}
