package tokenizer

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a lexical diagnostic.
type ErrorKind int

const (
	// StreamError: the source could not be opened or read.
	StreamError ErrorKind = iota
	// IllegalCharacter: no operator or punctuation starts with the rune.
	IllegalCharacter
	// MalformedNumber: an exponent marker not followed by a sign or digit.
	MalformedNumber
	// MalformedFloat: a leading dot not followed by a digit.
	MalformedFloat
	// UnterminatedChar: empty, multi-rune, or unclosed character literal.
	UnterminatedChar
	// UnterminatedString: whitespace or end of input before the closing quote.
	UnterminatedString
)

// Sentinel errors matched by errors.Is through *Error.
var (
	ErrStream             = errors.New("cannot read source")
	ErrIllegalCharacter   = errors.New("illegal character")
	ErrMalformedNumber    = errors.New("malformed number")
	ErrMalformedFloat     = errors.New("malformed float")
	ErrUnterminatedChar   = errors.New("unterminated character literal")
	ErrUnterminatedString = errors.New("unterminated string literal")
)

var errorKinds = [...]struct {
	name     string
	code     string
	sentinel error
}{
	StreamError:        {"StreamError", "L0001", ErrStream},
	IllegalCharacter:   {"IllegalCharacter", "L0002", ErrIllegalCharacter},
	MalformedNumber:    {"MalformedNumber", "L0003", ErrMalformedNumber},
	MalformedFloat:     {"MalformedFloat", "L0004", ErrMalformedFloat},
	UnterminatedChar:   {"UnterminatedChar", "L0005", ErrUnterminatedChar},
	UnterminatedString: {"UnterminatedString", "L0006", ErrUnterminatedString},
}

func (k ErrorKind) valid() bool {
	return k >= 0 && int(k) < len(errorKinds)
}

func (k ErrorKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return errorKinds[k].name
}

// Code returns the diagnostic code, e.g. "L0002".
func (k ErrorKind) Code() string {
	if !k.valid() {
		return ""
	}
	return errorKinds[k].code
}

// Error is a lexical diagnostic with position information.
type Error struct {
	Kind ErrorKind
	// Line and Column locate the start of the offending lexeme (1-indexed).
	Line   int
	Column int
	// Text is the offending source text.
	Text string
	// Err is the underlying cause, set for stream errors.
	Err error
}

func (e *Error) Error() string {
	if e.Kind == StreamError {
		return fmt.Sprintf("lex error: %v: %v", ErrStream, e.Err)
	}
	return fmt.Sprintf("lex error on line %d, column %d: %v %q",
		e.Line, e.Column, e.sentinel(), e.Text)
}

// Code returns the diagnostic code of the error's kind.
func (e *Error) Code() string {
	return e.Kind.Code()
}

// Unwrap exposes both the kind's sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *Error) sentinel() error {
	if !e.Kind.valid() {
		return nil
	}
	return errorKinds[e.Kind].sentinel
}
