// Package lex provides token rendering.
//
// Each token renders on one line as its kind name, its value for identifiers
// and literals, then its columns and line:
//
//	Identifier count	L: 5 R: 9 line: 1
//	Assign	L: 11 R: 11 line: 1
package lex

import (
	"bytes"
	"fmt"
	"io"
)

// FormatToken renders a single token.
func FormatToken(tok Token) string {
	var buf bytes.Buffer
	writeToken(&buf, tok)
	return buf.String()
}

// Render renders tokens one per line.
//
// Example:
//
//	tokens, _ := lex.Tokenize("x = 1")
//	out := lex.Render(tokens)
//	// Identifier x	L: 1 R: 1 line: 1
//	// Assign	L: 3 R: 3 line: 1
//	// Integer 1	L: 5 R: 5 line: 1
func Render(tokens []Token) []byte {
	var buf bytes.Buffer
	for _, tok := range tokens {
		writeToken(&buf, tok)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// RenderTo writes tokens one per line to w.
func RenderTo(w io.Writer, tokens []Token) error {
	_, err := w.Write(Render(tokens))
	return err
}

func writeToken(buf *bytes.Buffer, tok Token) {
	buf.WriteString(tok.Kind().String())
	if tok.Kind().HasValue() {
		buf.WriteByte(' ')
		buf.WriteString(tok.Text())
	}
	fmt.Fprintf(buf, "\tL: %d R: %d line: %d", tok.Left, tok.Right, tok.Line)
}
