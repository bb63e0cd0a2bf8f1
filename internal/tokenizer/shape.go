package tokenizer

import (
	"unicode"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-lex/internal/source"
	"github.com/shapestone/shape-lex/internal/symtab"
)

// Kinds of the Shape tokens that carry no shape-lex token. Consumers that
// only want tokens skip both.
const (
	WhitespaceKind = "Whitespace"
	CommentKind    = "Comment"
)

// NewShapeTokenizer creates a Shape tokenizer that produces shape-lex tokens.
// Token kinds are symtab.Kind names ("Identifier", "Equal", ...) and values
// are the source spelling, quotes included for char and string literals.
// Whitespace and comments come through as WhitespaceKind and CommentKind
// tokens so that every rune of the input is accounted for.
func NewShapeTokenizer(opts Options) shapetokenizer.Tokenizer {
	return shapetokenizer.NewTokenizerWithoutWhitespace(
		WhitespaceMatcher,
		CommentMatcher,
		Matcher(opts),
	)
}

// NewShapeTokenizerWithStream creates a Shape tokenizer over a pre-configured stream.
func NewShapeTokenizerWithStream(stream shapetokenizer.Stream, opts Options) shapetokenizer.Tokenizer {
	tok := NewShapeTokenizer(opts)
	tok.InitializeFromStream(stream)
	return tok
}

// WhitespaceMatcher matches a run of the runes the scanner treats as
// whitespace.
func WhitespaceMatcher(stream shapetokenizer.Stream) *shapetokenizer.Token {
	var value []rune
	for {
		r, ok := stream.PeekChar()
		if !ok || !unicode.IsSpace(r) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}
	if len(value) == 0 {
		return nil
	}
	return shapetokenizer.NewToken(WhitespaceKind, value)
}

// CommentMatcher matches a line comment up to, not including, the newline.
func CommentMatcher(stream shapetokenizer.Stream) *shapetokenizer.Token {
	value := []rune("//")
	if !stream.MatchChars(value) {
		return nil
	}
	for {
		r, ok := stream.PeekChar()
		if !ok || r == '\n' {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}
	return shapetokenizer.NewToken(CommentKind, value)
}

// Matcher adapts the scanner to Shape's matcher protocol: it recognizes the
// token starting exactly at the stream position. It returns nil at
// whitespace, at a comment, at the end of input and on a diagnostic; the
// error policy is always abort here since a matcher has no way to report.
//
// All tokens produced by one matcher share opts.Symbols (a fresh table when
// nil).
func Matcher(opts Options) shapetokenizer.Matcher {
	if opts.Symbols == nil {
		opts.Symbols = symtab.New()
	}
	opts.OnError = ErrorModeAbort
	opts.WarningCallback = nil

	return func(stream shapetokenizer.Stream) *shapetokenizer.Token {
		if r, ok := stream.PeekChar(); !ok || unicode.IsSpace(r) {
			return nil
		}
		start := stream.GetOffset()

		tok, err := New(source.FromStream(stream), opts).Next()
		if err != nil || tok.Offset != start {
			return nil
		}
		return shapetokenizer.NewToken(tok.Kind().String(), []rune(tok.Lexeme()))
	}
}
