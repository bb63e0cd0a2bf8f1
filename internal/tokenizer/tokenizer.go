package tokenizer

import (
	"io"
	"strings"
	"unicode"

	"github.com/shapestone/shape-lex/internal/source"
	"github.com/shapestone/shape-lex/internal/symtab"
)

type state int

const (
	scanning state = iota
	terminated
)

// Tokenizer is a hand-written scanner over a single source. Terminated is
// absorbing: once entered, Next returns io.EOF and the source is closed.
//
// A Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	src     *source.Source
	symbols *symtab.Table
	opts    Options
	state   state
	diags   []*Error
	buf     strings.Builder
}

// start is where the token being scanned begins.
type start struct {
	line, column, offset int
}

// New creates a tokenizer reading from src. The tokenizer owns src and
// closes it on termination.
func New(src *source.Source, opts Options) *Tokenizer {
	symbols := opts.Symbols
	if symbols == nil {
		symbols = symtab.New()
	}
	return &Tokenizer{
		src:     src,
		symbols: symbols,
		opts:    opts,
	}
}

// NewFromString creates a tokenizer over an in-memory input.
func NewFromString(input string, opts Options) *Tokenizer {
	return New(source.FromString(input), opts)
}

// Open creates a tokenizer over the file at path. A file that cannot be
// opened yields a StreamError.
func Open(path string, opts Options) (*Tokenizer, error) {
	src, err := source.Open(path)
	if err != nil {
		return nil, &Error{Kind: StreamError, Text: path, Err: err}
	}
	return New(src, opts), nil
}

// Symbols returns the intern table used by the tokenizer.
func (t *Tokenizer) Symbols() *symtab.Table {
	return t.symbols
}

// Diagnostics returns every diagnostic reported so far.
func (t *Tokenizer) Diagnostics() []*Error {
	return t.diags
}

// Terminated reports whether the tokenizer has stopped producing tokens.
func (t *Tokenizer) Terminated() bool {
	return t.state == terminated
}

// Close terminates the session and releases the source. Callers that stop
// before io.EOF must call it; calling it again is a no-op.
func (t *Tokenizer) Close() error {
	return t.terminate()
}

func (t *Tokenizer) terminate() error {
	if t.state == terminated {
		return nil
	}
	t.state = terminated
	return t.src.Close()
}

// Next returns the next token. At the end of input it returns io.EOF. A
// lexical problem is returned as *Error; under ErrorModeAbort that is the
// last result before io.EOF.
func (t *Tokenizer) Next() (Token, error) {
	for t.state == scanning {
		tok, ok, err := t.scan()
		if err != nil {
			t.diags = append(t.diags, err)
			switch t.opts.OnError {
			case ErrorModeWarn:
				if t.opts.WarningCallback != nil {
					t.opts.WarningCallback(err.Line, err.Error())
				}
				t.skipLine()
			case ErrorModeSkip:
				t.skipLine()
			default:
				t.terminate()
				return Token{}, err
			}
			continue
		}
		if ok {
			return tok, nil
		}
	}
	return Token{}, io.EOF
}

// Drain reads tokens until the end of input. Under ErrorModeAbort a
// diagnostic stops the drain and is returned with the tokens read so far.
func (t *Tokenizer) Drain() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := t.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

// scan recognizes at most one token. ok is false when nothing was emitted:
// a comment was skipped or the input ended.
func (t *Tokenizer) scan() (tok Token, ok bool, err *Error) {
	r, more := t.skipWhitespace()
	if !more {
		return Token{}, false, t.finish()
	}

	at := start{line: t.src.NextLine(), column: t.src.NextColumn(), offset: t.src.Offset()}
	t.buf.Reset()

	switch {
	case isIdentStart(r):
		return t.scanIdentifier(at), true, nil
	case isDigit(r):
		tok, err = t.scanNumber(at)
	case r == '.':
		tok, err = t.scanLeadingDot(at)
	case r == '\'':
		tok, err = t.scanChar(at)
	case r == '"':
		tok, err = t.scanString(at)
	default:
		return t.scanOperator(at)
	}
	return tok, err == nil, err
}

// finish terminates at the end of input. A read error that cut the input
// short is reported as a StreamError.
func (t *Tokenizer) finish() *Error {
	readErr := t.src.Err()
	t.terminate()
	if readErr == nil {
		return nil
	}
	return &Error{
		Kind:   StreamError,
		Line:   t.src.NextLine(),
		Column: t.src.NextColumn(),
		Text:   t.src.Name(),
		Err:    readErr,
	}
}

func (t *Tokenizer) skipWhitespace() (rune, bool) {
	for {
		r, ok := t.src.Peek()
		if !ok || !unicode.IsSpace(r) {
			return r, ok
		}
		t.src.Next()
	}
}

// skipLine discards runes through the next newline.
func (t *Tokenizer) skipLine() {
	for {
		r, err := t.src.Next()
		if err != nil || r == '\n' {
			return
		}
	}
}

// consume moves the next rune into the buffer.
func (t *Tokenizer) consume() {
	if r, err := t.src.Next(); err == nil {
		t.buf.WriteRune(r)
	}
}

func (t *Tokenizer) consumeWhile(pred func(rune) bool) {
	for {
		r, ok := t.src.Peek()
		if !ok || !pred(r) {
			return
		}
		t.consume()
	}
}

func (t *Tokenizer) peekIs(pred func(rune) bool) bool {
	r, ok := t.src.Peek()
	return ok && pred(r)
}

func (t *Tokenizer) emit(kind symtab.Kind, at start) Token {
	return Token{
		Left:   at.column,
		Right:  t.src.Column(),
		Line:   at.line,
		Offset: at.offset,
		Symbol: t.symbols.Intern(t.buf.String(), kind),
	}
}

func (t *Tokenizer) fail(kind ErrorKind, at start, text string) *Error {
	return &Error{Kind: kind, Line: at.line, Column: at.column, Text: text}
}

func (t *Tokenizer) scanIdentifier(at start) Token {
	t.consume()
	t.consumeWhile(isIdentPart)
	return t.emit(symtab.Identifier, at)
}

func (t *Tokenizer) scanNumber(at start) (Token, *Error) {
	kind := symtab.Integer
	t.consumeWhile(isDigit)
	if t.peekIs(isDot) {
		t.consume()
		kind = symtab.Float
		t.consumeWhile(isDigit)
	}
	return t.scanExponent(kind, at)
}

func (t *Tokenizer) scanLeadingDot(at start) (Token, *Error) {
	t.consume()
	if r, ok := t.src.Peek(); !ok || !isDigit(r) {
		text := "."
		if ok && r != '\n' {
			text += string(r)
		}
		return Token{}, t.fail(MalformedFloat, at, text)
	}
	t.consumeWhile(isDigit)
	return t.scanExponent(symtab.Float, at)
}

// scanExponent finishes a numeral whose mantissa is in the buffer. An
// exponent keeps its marker, sign and digits in the spelling.
func (t *Tokenizer) scanExponent(kind symtab.Kind, at start) (Token, *Error) {
	if !t.peekIs(isExponentMarker) {
		return t.emit(kind, at), nil
	}
	t.consume()
	if t.peekIs(isSign) {
		t.consume()
	}
	if !t.peekIs(isDigit) {
		text := t.buf.String()
		if r, ok := t.src.Peek(); ok && !unicode.IsSpace(r) {
			text += string(r)
		}
		return Token{}, t.fail(MalformedNumber, at, text)
	}
	t.consumeWhile(isDigit)
	return t.emit(symtab.ScientificNumber, at), nil
}

func (t *Tokenizer) scanChar(at start) (Token, *Error) {
	t.src.Next() // opening quote

	r, ok := t.src.Peek()
	if !ok || r == '\n' {
		return Token{}, t.fail(UnterminatedChar, at, "'")
	}
	if r == '\'' {
		t.src.Next()
		return Token{}, t.fail(UnterminatedChar, at, "''")
	}
	t.consume()

	if r, ok := t.src.Peek(); !ok || r != '\'' {
		text := "'" + t.buf.String()
		if ok && r != '\n' {
			text += string(r)
		}
		return Token{}, t.fail(UnterminatedChar, at, text)
	}
	t.src.Next() // closing quote
	return t.emit(symtab.Char, at), nil
}

func (t *Tokenizer) scanString(at start) (Token, *Error) {
	t.src.Next() // opening quote

	for {
		r, ok := t.src.Peek()
		switch {
		case !ok:
			return Token{}, t.fail(UnterminatedString, at, `"`+t.buf.String())
		case r == '"':
			t.src.Next()
			return t.emit(symtab.String, at), nil
		case unicode.IsSpace(r) && !t.stringSpaceAllowed(r):
			return Token{}, t.fail(UnterminatedString, at, `"`+t.buf.String())
		}
		t.consume()
	}
}

func (t *Tokenizer) stringSpaceAllowed(r rune) bool {
	return t.opts.AllowStringSpaces && (r == ' ' || r == '\t')
}

// scanOperator matches the longest operator spelling at the cursor. Only
// the matched runes are consumed; the rest of the lookahead stays in the
// source.
func (t *Tokenizer) scanOperator(at start) (Token, bool, *Error) {
	lookahead := t.src.Lookahead(t.symbols.MaxOperatorLen())

	for n := len(lookahead); n > 0; n-- {
		sym, ok := t.symbols.Operator(string(lookahead[:n]))
		if !ok {
			continue
		}
		for i := 0; i < n; i++ {
			t.src.Next()
		}
		if sym.Kind == symtab.Comment {
			t.skipLine()
			return Token{}, false, nil
		}
		return Token{
			Left:   at.column,
			Right:  t.src.Column(),
			Line:   at.line,
			Offset: at.offset,
			Symbol: sym,
		}, true, nil
	}

	t.src.Next()
	return Token{}, false, t.fail(IllegalCharacter, at, string(lookahead[0]))
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDot(r rune) bool {
	return r == '.'
}

func isSign(r rune) bool {
	return r == '+' || r == '-'
}

func isExponentMarker(r rune) bool {
	return r == 'e' || r == 'E'
}
