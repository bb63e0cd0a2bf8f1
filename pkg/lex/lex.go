// Package lex provides lexical analysis for the shape-lex source language.
//
// The tokenizer is a hand-written scanner that classifies identifiers and
// reserved words, integer, float and scientific-notation numerals, character
// and string literals, operators and punctuation, and skips line comments.
// Every token carries the line and the columns it spans for diagnostics.
//
// # Thread Safety
//
// The package-level functions are safe for concurrent use by multiple
// goroutines: each call creates its own tokenizer and symbol table. A Scanner
// must not be shared between goroutines.
//
// # Tokenizing APIs
//
//   - Tokenize(string) - tokenizes source text in memory
//   - TokenizeReader(io.Reader) - tokenizes from any io.Reader
//   - TokenizeFile(path) - tokenizes a file
//   - Open / NewScanner - pulls one token at a time
//
// # Example usage with Tokenize:
//
//	tokens, err := lex.Tokenize("int x = 3.5e2 ;")
//	if err != nil {
//	    // err is a *lex.Error with line and column
//	}
//	for _, tok := range tokens {
//	    fmt.Println(lex.FormatToken(tok))
//	}
//
// # Example usage with Scanner:
//
//	scanner, err := lex.Open("prog.x", lex.DefaultOptions())
//	if err != nil {
//	    // the file could not be opened
//	}
//	defer scanner.Close()
//
//	for scanner.Scan() {
//	    tok := scanner.Token()
//	    // process tok
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle the diagnostic
//	}
//
// # Error Policy
//
// By default the first diagnostic ends the session: it is returned once and
// no text after it is tokenized. ErrorModeWarn and ErrorModeSkip instead
// discard the rest of the offending line and continue.
package lex

import (
	"io"

	"github.com/shapestone/shape-lex/internal/source"
	"github.com/shapestone/shape-lex/internal/symtab"
	"github.com/shapestone/shape-lex/internal/tokenizer"
)

// Token is one classified lexeme with its position.
type Token = tokenizer.Token

// Kind classifies a token.
type Kind = symtab.Kind

// Symbol is the canonical interned spelling shared by equal tokens.
type Symbol = symtab.Symbol

// SymbolTable interns spellings. Reserved words and operators are seeded.
type SymbolTable = symtab.Table

// Literal and name kinds. Reserved words and operators have kinds of their
// own, named by Kind.String.
const (
	Identifier       = symtab.Identifier
	Integer          = symtab.Integer
	Float            = symtab.Float
	ScientificNumber = symtab.ScientificNumber
	Char             = symtab.Char
	String           = symtab.String
)

// NewSymbolTable returns a seeded symbol table that can be shared between
// tokenizers through Options.Symbols.
func NewSymbolTable() *SymbolTable {
	return symtab.New()
}

// Tokenize tokenizes source text from a string.
//
// It returns every token up to the end of input. If a diagnostic ends the
// session, the tokens before it are returned together with the *Error.
//
// Example:
//
//	tokens, err := lex.Tokenize("while (i < 10) i++")
func Tokenize(input string) ([]Token, error) {
	return TokenizeWithOptions(input, DefaultOptions())
}

// TokenizeWithOptions tokenizes source text from a string with custom options.
//
// Example:
//
//	opts := lex.DefaultOptions()
//	opts.AllowStringSpaces = true
//	tokens, err := lex.TokenizeWithOptions(`s = "hello world"`, opts)
func TokenizeWithOptions(input string, opts Options) ([]Token, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return tokenizer.New(source.FromString(input), opts.internal()).Drain()
}

// TokenizeReader tokenizes source text read from r.
// If r is an io.Closer it is closed when tokenizing ends.
func TokenizeReader(r io.Reader) ([]Token, error) {
	return TokenizeReaderWithOptions(r, DefaultOptions())
}

// TokenizeReaderWithOptions tokenizes source text read from r with custom options.
func TokenizeReaderWithOptions(r io.Reader, opts Options) ([]Token, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return tokenizer.New(source.FromReader(r), opts.internal()).Drain()
}

// TokenizeFile tokenizes the file at path. A file that cannot be opened
// yields an *Error of kind StreamError.
func TokenizeFile(path string) ([]Token, error) {
	return TokenizeFileWithOptions(path, DefaultOptions())
}

// TokenizeFileWithOptions tokenizes the file at path with custom options.
func TokenizeFileWithOptions(path string, opts Options) ([]Token, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	tok, err := tokenizer.Open(path, opts.internal())
	if err != nil {
		return nil, err
	}
	return tok.Drain()
}

// Format returns the format identifier for this tokenizer.
func Format() string {
	return "shape-lex"
}
