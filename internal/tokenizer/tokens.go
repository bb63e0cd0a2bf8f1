// Package tokenizer converts a rune stream into shape-lex tokens.
package tokenizer

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-lex/internal/symtab"
)

// Token is one classified lexeme. Left and Right are the 1-based columns of
// its first and last rune on Line; char and string tokens span their quotes.
// Tokens are values and never change after the tokenizer returns them.
type Token struct {
	Left   int
	Right  int
	Line   int
	Offset int
	Symbol *symtab.Symbol
}

// Kind returns the kind of the token's symbol.
func (t Token) Kind() symtab.Kind {
	if t.Symbol == nil {
		return symtab.Probe
	}
	return t.Symbol.Kind
}

// Text returns the interned spelling. For char and string literals this is
// the value between the quotes.
func (t Token) Text() string {
	if t.Symbol == nil {
		return ""
	}
	return t.Symbol.Spelling
}

// Lexeme returns the token as it was written in the source.
func (t Token) Lexeme() string {
	switch t.Kind() {
	case symtab.Char:
		return "'" + t.Text() + "'"
	case symtab.String:
		return `"` + t.Text() + `"`
	default:
		return t.Text()
	}
}

// Position returns the token start as a Shape AST position.
func (t Token) Position() ast.Position {
	return ast.NewPosition(t.Offset, t.Line, t.Left)
}

func (t Token) String() string {
	if t.Kind().HasValue() {
		return fmt.Sprintf("%s(%s) %d:%d-%d", t.Kind(), t.Lexeme(), t.Line, t.Left, t.Right)
	}
	return fmt.Sprintf("%s %d:%d-%d", t.Kind(), t.Line, t.Left, t.Right)
}
