package lex

import (
	"io"

	"github.com/shapestone/shape-lex/internal/source"
	"github.com/shapestone/shape-lex/internal/tokenizer"
)

// Scanner provides a streaming interface for reading tokens one at a time.
// The input is read in full on the first call to Scan; a read error that
// cuts it short is reported by Err as an *Error of kind StreamError after
// the tokens read before it.
//
// Example usage:
//
//	file, _ := os.Open("prog.x")
//
//	scanner := lex.NewScanner(file)
//	defer scanner.Close()
//	for scanner.Scan() {
//	    tok := scanner.Token()
//	    fmt.Println(tok.Kind(), tok.Text())
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	tok     *tokenizer.Tokenizer
	current Token
	err     error
	done    bool
}

// NewScanner creates a new Scanner that reads source text from the given
// io.Reader with default options. If the reader is an io.Closer, it is closed
// when scanning ends or Close is called.
//
// Example:
//
//	scanner := lex.NewScanner(reader)
func NewScanner(reader io.Reader) *Scanner {
	return newScanner(tokenizer.New(source.FromReader(reader), DefaultOptions().internal()))
}

// NewScannerWithOptions creates a new Scanner with custom options.
func NewScannerWithOptions(reader io.Reader, opts Options) (*Scanner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return newScanner(tokenizer.New(source.FromReader(reader), opts.internal())), nil
}

// Open creates a Scanner over the file at path. The file is closed when
// scanning ends or Close is called. A file that cannot be opened yields an
// *Error of kind StreamError.
func Open(path string, opts Options) (*Scanner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	tok, err := tokenizer.Open(path, opts.internal())
	if err != nil {
		return nil, err
	}
	return newScanner(tok), nil
}

func newScanner(tok *tokenizer.Tokenizer) *Scanner {
	return &Scanner{tok: tok}
}

// Scan advances the scanner to the next token.
// It returns false at the end of input or when a diagnostic ends the session.
// After Scan returns false, the Err method will return any error that occurred.
//
// Example:
//
//	for scanner.Scan() {
//	    tok := scanner.Token()
//	    // process tok
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	tok, err := s.tok.Next()
	if err != nil {
		s.done = true
		s.current = Token{}
		if err != io.EOF {
			s.err = err
		}
		return false
	}

	s.current = tok
	return true
}

// Token returns the current token.
// This should only be called after Scan() returns true.
func (s *Scanner) Token() Token {
	return s.current
}

// Err returns the error, if any, that was encountered during scanning.
// It returns nil at a clean end of input.
func (s *Scanner) Err() error {
	return s.err
}

// Diagnostics returns every diagnostic reported so far. Under
// ErrorModeWarn and ErrorModeSkip this is where recovered diagnostics are kept.
func (s *Scanner) Diagnostics() []*Error {
	return s.tok.Diagnostics()
}

// Symbols returns the table the scanner interns into.
func (s *Scanner) Symbols() *SymbolTable {
	return s.tok.Symbols()
}

// Close releases the input. It is safe to call after scanning has ended and
// more than once.
func (s *Scanner) Close() error {
	s.done = true
	return s.tok.Close()
}
