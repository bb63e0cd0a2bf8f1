package lex

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-lex/internal/symtab"
)

// Column order of a token row produced by ToAST.
const (
	ColumnKind = iota
	ColumnText
	ColumnLine
	ColumnLeft
	ColumnRight
	ColumnOffset

	columnCount
)

// ToAST converts tokens to a Shape AST so they can be handed to other Shape
// tools. The result is an array of rows, one per token; each row is an
// ArrayDataNode of literals [kind, text, line, left, right, offset]
// positioned at the token start.
func ToAST(tokens []Token) *ast.ArrayDataNode {
	rows := make([]ast.SchemaNode, 0, len(tokens))
	for _, tok := range tokens {
		pos := tok.Position()
		fields := []ast.SchemaNode{
			ColumnKind:   ast.NewLiteralNode(tok.Kind().String(), pos),
			ColumnText:   ast.NewLiteralNode(tok.Text(), pos),
			ColumnLine:   ast.NewLiteralNode(int64(tok.Line), pos),
			ColumnLeft:   ast.NewLiteralNode(int64(tok.Left), pos),
			ColumnRight:  ast.NewLiteralNode(int64(tok.Right), pos),
			ColumnOffset: ast.NewLiteralNode(int64(tok.Offset), pos),
		}
		rows = append(rows, ast.NewArrayDataNode(fields, pos))
	}
	return ast.NewArrayDataNode(rows, ast.ZeroPosition())
}

// FromAST rebuilds tokens from the output of ToAST. Identifier and literal
// spellings are interned into symbols; a nil table means a fresh one.
// Reserved words and operators must already be in the table with the row's
// kind, so a row can never reclassify a spelling for later tokenizing.
func FromAST(node ast.SchemaNode, symbols *SymbolTable) ([]Token, error) {
	arrayNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}
	if symbols == nil {
		symbols = NewSymbolTable()
	}

	tokens := make([]Token, 0, arrayNode.Len())
	for i, elem := range arrayNode.Elements() {
		row, ok := elem.(*ast.ArrayDataNode)
		if !ok || row.Len() != columnCount {
			return nil, fmt.Errorf("token %d: expected a row of %d literals, got %T", i, columnCount, elem)
		}

		var (
			kindName, text            string
			line, left, right, offset int64
		)
		fields := []interface{}{&kindName, &text, &line, &left, &right, &offset}
		for col, dst := range fields {
			lit, ok := row.Get(col).(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("token %d column %d: expected *ast.LiteralNode, got %T", i, col, row.Get(col))
			}
			if err := assignLiteral(dst, lit.Value()); err != nil {
				return nil, fmt.Errorf("token %d column %d: %w", i, col, err)
			}
		}

		kind, ok := symtab.KindByName(kindName)
		if !ok || kind == symtab.Probe || kind == symtab.Comment {
			return nil, fmt.Errorf("token %d: unknown kind %q", i, kindName)
		}
		sym, err := lookupSymbol(symbols, text, kind)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		tokens = append(tokens, Token{
			Left:   int(left),
			Right:  int(right),
			Line:   int(line),
			Offset: int(offset),
			Symbol: sym,
		})
	}
	return tokens, nil
}

// lookupSymbol resolves a row's spelling. Only identifiers and literals may
// add to the table.
func lookupSymbol(symbols *SymbolTable, text string, kind Kind) (*Symbol, error) {
	var sym *Symbol
	if kind == Identifier || kind.IsLiteral() {
		sym = symbols.Intern(text, kind)
	} else {
		sym, _ = symbols.Probe(text)
	}
	if sym == nil {
		return nil, fmt.Errorf("%q is not a %v", text, kind)
	}
	if sym.Kind != kind {
		return nil, fmt.Errorf("%q is %v, not %v", text, sym.Kind, kind)
	}
	return sym, nil
}

func assignLiteral(dst, value interface{}) error {
	switch d := dst.(type) {
	case *string:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		*d = s
	case *int64:
		switch v := value.(type) {
		case int64:
			*d = v
		case int:
			*d = int64(v)
		case float64:
			*d = int64(v)
		default:
			return fmt.Errorf("expected integer, got %T", value)
		}
	}
	return nil
}
