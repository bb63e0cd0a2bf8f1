// Package source supplies runes to the tokenizer one at a time, tracking the
// line and column of each rune it hands out. It is a thin cursor over a
// Shape tokenizer.Stream.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// ErrEndOfInput is returned by Next once the stream is exhausted or closed.
var ErrEndOfInput = errors.New("source: end of input")

// Source is a rune cursor over a stream. It is not safe for concurrent use.
type Source struct {
	stream tokenizer.Stream
	reader io.Reader
	closer io.Closer
	name   string
	err    error

	// position of the rune most recently returned by Next
	line   int
	column int

	// position the next rune will have
	nextLine   int
	nextColumn int

	exhausted bool
	closed    bool
}

// Open opens the file at path. The file is read on first use and closed by
// Close.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	s := FromReader(f)
	s.name = path
	return s, nil
}

// FromString returns a source over an in-memory string.
func FromString(input string) *Source {
	return newSource(tokenizer.NewStream(input), 1, 1)
}

// FromReader returns a source over the contents of r. Nothing is read until
// the first rune is requested; then r is read to the end in one pass. A read
// error ends the input at the last byte received and is kept for Err. If r
// implements io.Closer it is closed by Close.
func FromReader(r io.Reader) *Source {
	s := newSource(nil, 1, 1)
	s.reader = r
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// FromStream wraps a stream that may already be positioned mid-input.
// Line and column numbering continue from the stream's location. The stream
// is borrowed: Close does not affect it.
func FromStream(stream tokenizer.Stream) *Source {
	loc := stream.GetLocation()
	return newSource(stream, max(loc.Row, 1), max(loc.Column, 1))
}

func newSource(stream tokenizer.Stream, line, column int) *Source {
	return &Source{
		stream:     stream,
		nextLine:   line,
		nextColumn: column,
	}
}

// load reads a reader-backed source into memory on first use.
func (s *Source) load() {
	if s.stream != nil {
		return
	}
	var data []byte
	if s.reader != nil {
		data, s.err = io.ReadAll(s.reader)
		s.reader = nil
	}
	s.stream = tokenizer.NewStream(string(data))
}

// Err returns the error that cut reading short, if any. Reaching the end of
// input is not an error.
func (s *Source) Err() error {
	return s.err
}

// Next consumes and returns the next rune.
func (s *Source) Next() (rune, error) {
	if s.closed || s.exhausted {
		return 0, ErrEndOfInput
	}
	s.load()
	r, ok := s.stream.NextChar()
	if !ok {
		s.exhausted = true
		return 0, ErrEndOfInput
	}

	s.line, s.column = s.nextLine, s.nextColumn
	if r == '\n' {
		s.nextLine++
		s.nextColumn = 1
	} else {
		s.nextColumn++
	}
	return r, nil
}

// Peek returns the next rune without consuming it.
func (s *Source) Peek() (rune, bool) {
	if s.closed || s.exhausted {
		return 0, false
	}
	s.load()
	return s.stream.PeekChar()
}

// Lookahead returns up to n upcoming runes without consuming any of them.
// Fewer are returned near the end of input.
func (s *Source) Lookahead(n int) []rune {
	if s.closed || s.exhausted || n <= 0 {
		return nil
	}
	s.load()
	if n == 1 {
		if r, ok := s.stream.PeekChar(); ok {
			return []rune{r}
		}
		return nil
	}

	clone := s.stream.Clone()
	runes := make([]rune, 0, n)
	for len(runes) < n {
		r, ok := clone.NextChar()
		if !ok {
			break
		}
		runes = append(runes, r)
	}
	return runes
}

// Line is the 1-based line of the rune most recently returned by Next.
func (s *Source) Line() int { return s.line }

// Column is the 1-based column of the rune most recently returned by Next.
func (s *Source) Column() int { return s.column }

// NextLine is the line the next rune will be on.
func (s *Source) NextLine() int { return s.nextLine }

// NextColumn is the column the next rune will have.
func (s *Source) NextColumn() int { return s.nextColumn }

// Offset is the stream offset of the next rune.
func (s *Source) Offset() int {
	if s.stream == nil {
		return 0
	}
	return s.stream.GetOffset()
}

// Name is the path the source was opened from, if any.
func (s *Source) Name() string { return s.name }

// Closed reports whether Close has been called.
func (s *Source) Closed() bool { return s.closed }

// Close releases the underlying file. It is safe to call more than once;
// only the first call has any effect.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
