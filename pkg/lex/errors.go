// Package lex provides error types and recovery modes for tokenizing.
package lex

import (
	"github.com/shapestone/shape-lex/internal/tokenizer"
)

// ErrorMode specifies how the tokenizer handles a lexical diagnostic.
type ErrorMode = tokenizer.ErrorMode

const (
	// ErrorModeAbort returns the first diagnostic and ends the session (default).
	ErrorModeAbort = tokenizer.ErrorModeAbort
	// ErrorModeWarn reports the diagnostic through WarningCallback and
	// resumes on the next line.
	ErrorModeWarn = tokenizer.ErrorModeWarn
	// ErrorModeSkip silently resumes on the next line.
	ErrorModeSkip = tokenizer.ErrorModeSkip
)

// Error is a lexical diagnostic with position information. Use errors.As to
// retrieve it and errors.Is with the sentinels below to classify it.
type Error = tokenizer.Error

// ErrorKind classifies an Error.
type ErrorKind = tokenizer.ErrorKind

// Diagnostic kinds. Each has a stable code, see ErrorKind.Code.
const (
	StreamError        = tokenizer.StreamError
	IllegalCharacter   = tokenizer.IllegalCharacter
	MalformedNumber    = tokenizer.MalformedNumber
	MalformedFloat     = tokenizer.MalformedFloat
	UnterminatedChar   = tokenizer.UnterminatedChar
	UnterminatedString = tokenizer.UnterminatedString
)

// Common tokenizing errors
var (
	// ErrStream indicates the source could not be opened or read.
	ErrStream = tokenizer.ErrStream

	// ErrIllegalCharacter indicates a rune that starts no token.
	ErrIllegalCharacter = tokenizer.ErrIllegalCharacter

	// ErrMalformedNumber indicates an exponent marker without a sign or digit after it.
	ErrMalformedNumber = tokenizer.ErrMalformedNumber

	// ErrMalformedFloat indicates a leading dot without a digit after it.
	ErrMalformedFloat = tokenizer.ErrMalformedFloat

	// ErrUnterminatedChar indicates an empty, multi-rune or unclosed character literal.
	ErrUnterminatedChar = tokenizer.ErrUnterminatedChar

	// ErrUnterminatedString indicates whitespace or end of input before a closing quote.
	ErrUnterminatedString = tokenizer.ErrUnterminatedString
)

// WarningHandler is a callback function for diagnostics in ErrorModeWarn.
type WarningHandler func(line int, message string)
