package lex

import (
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-lex/internal/tokenizer"
)

// Kinds of the Shape tokens for whitespace and comments. They carry no
// shape-lex token; skip them when only tokens are wanted.
const (
	ShapeWhitespaceKind = tokenizer.WhitespaceKind
	ShapeCommentKind    = tokenizer.CommentKind
)

// NewShapeTokenizer returns a Shape tokenizer that emits shape-lex tokens,
// for Shape parsers that consume a shapetokenizer.Tokenizer. Token kinds are
// Kind names such as "Identifier" or "Equal"; values are the source spelling,
// quotes included for char and string literals. Whitespace and comments are
// emitted as ShapeWhitespaceKind and ShapeCommentKind tokens.
// Tokenizing stops at the first diagnostic regardless of opts.OnError.
//
// Example:
//
//	tok := lex.NewShapeTokenizer(lex.DefaultOptions())
//	tok.Initialize("x = 1 // one")
//	for {
//	    token, ok := tok.NextToken()
//	    if !ok {
//	        break
//	    }
//	    if token.Kind() == lex.ShapeWhitespaceKind || token.Kind() == lex.ShapeCommentKind {
//	        continue
//	    }
//	    // process token
//	}
func NewShapeTokenizer(opts Options) shapetokenizer.Tokenizer {
	return tokenizer.NewShapeTokenizer(opts.internal())
}

// NewShapeTokenizerWithStream creates a Shape tokenizer over a pre-configured stream,
// for example one made with shapetokenizer.NewStreamFromReader.
func NewShapeTokenizerWithStream(stream shapetokenizer.Stream, opts Options) shapetokenizer.Tokenizer {
	return tokenizer.NewShapeTokenizerWithStream(stream, opts.internal())
}

// Matcher returns the shape-lex scanner as a single Shape matcher, to be
// combined with other matchers in shapetokenizer.NewTokenizer. It matches
// only a token starting exactly at the stream position, never whitespace or
// comments.
func Matcher(opts Options) shapetokenizer.Matcher {
	return tokenizer.Matcher(opts.internal())
}
