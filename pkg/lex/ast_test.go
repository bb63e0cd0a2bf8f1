package lex

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
)

func TestToAST(t *testing.T) {
	tokens, err := Tokenize("int n = 42")
	if err != nil {
		t.Fatal(err)
	}

	node := ToAST(tokens)
	if node.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", node.Len())
	}

	row, ok := node.Get(3).(*ast.ArrayDataNode)
	if !ok {
		t.Fatalf("row type = %T", node.Get(3))
	}
	want := []interface{}{"Integer", "42", int64(1), int64(9), int64(10), int64(8)}
	for col, w := range want {
		lit, ok := row.Get(col).(*ast.LiteralNode)
		if !ok {
			t.Fatalf("column %d type = %T", col, row.Get(col))
		}
		if lit.Value() != w {
			t.Errorf("column %d = %v, want %v", col, lit.Value(), w)
		}
	}
}

func TestFromAST_RoundTrip(t *testing.T) {
	input := "program p { float f = .5e-3 ; char c = 'x' }"
	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatal(err)
	}

	got, err := FromAST(ToAST(tokens), nil)
	if err != nil {
		t.Fatalf("FromAST() error = %v", err)
	}
	if len(got) != len(tokens) {
		t.Fatalf("got %d tokens, want %d", len(got), len(tokens))
	}
	for i := range tokens {
		if got[i].Kind() != tokens[i].Kind() || got[i].Text() != tokens[i].Text() {
			t.Errorf("token %d = %v, want %v", i, got[i], tokens[i])
		}
		if got[i].Position() != tokens[i].Position() || got[i].Right != tokens[i].Right {
			t.Errorf("token %d position = %v, want %v", i, got[i], tokens[i])
		}
	}
}

func TestFromAST_Invalid(t *testing.T) {
	pos := ast.ZeroPosition()
	row := func(kind, text string) ast.SchemaNode {
		return ast.NewArrayDataNode([]ast.SchemaNode{
			ast.NewLiteralNode(kind, pos),
			ast.NewLiteralNode(text, pos),
			ast.NewLiteralNode(int64(1), pos),
			ast.NewLiteralNode(int64(1), pos),
			ast.NewLiteralNode(int64(1), pos),
			ast.NewLiteralNode(int64(0), pos),
		}, pos)
	}
	rows := func(nodes ...ast.SchemaNode) ast.SchemaNode {
		return ast.NewArrayDataNode(nodes, pos)
	}

	tests := []struct {
		name string
		node ast.SchemaNode
	}{
		{"not an array", ast.NewLiteralNode("x", pos)},
		{"short row", ast.NewArrayDataNode([]ast.SchemaNode{
			ast.NewArrayDataNode([]ast.SchemaNode{ast.NewLiteralNode("Identifier", pos)}, pos),
		}, pos)},
		{"unknown kind", rows(row("Bogus", "x"))},
		{"probe kind", rows(row("Probe", "x"))},
		{"comment kind", rows(row("Comment", "//"))},
		{"reserved spelling as identifier", rows(row("Identifier", "while"))},
		{"identifier as reserved word", rows(row("While", "foo"))},
		{"identifier as operator", rows(row("Plus", "foo"))},
		{"wrong operator kind", rows(row("Assign", "=="))},
		{"row of five", rows(ast.NewArrayDataNode([]ast.SchemaNode{
			ast.NewLiteralNode("Identifier", pos),
			ast.NewLiteralNode("x", pos),
			ast.NewLiteralNode(int64(1), pos),
			ast.NewLiteralNode(int64(1), pos),
			ast.NewLiteralNode(int64(1), pos),
		}, pos))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromAST(tt.node, nil); err == nil {
				t.Error("FromAST() error = nil")
			}
		})
	}
}

func TestFromAST_SharedTableKeepsClassification(t *testing.T) {
	pos := ast.ZeroPosition()
	literal := func(v interface{}) ast.SchemaNode { return ast.NewLiteralNode(v, pos) }
	row := func(kind, text string) ast.SchemaNode {
		return ast.NewArrayDataNode([]ast.SchemaNode{
			literal(kind), literal(text), literal(int64(1)), literal(int64(1)), literal(int64(3)), literal(int64(0)),
		}, pos)
	}

	opts := DefaultOptions()
	opts.Symbols = NewSymbolTable()

	if _, err := FromAST(ast.NewArrayDataNode([]ast.SchemaNode{row("While", "foo")}, pos), opts.Symbols); err == nil {
		t.Fatal("FromAST() accepted an identifier spelled as a reserved word")
	}
	tokens, err := FromAST(ast.NewArrayDataNode([]ast.SchemaNode{row("While", "while"), row("Identifier", "bar")}, pos), opts.Symbols)
	if err != nil {
		t.Fatalf("FromAST() error = %v", err)
	}
	if tokens[0].Kind().String() != "While" || tokens[1].Kind() != Identifier {
		t.Errorf("kinds = %v %v", tokens[0].Kind(), tokens[1].Kind())
	}

	later, err := TokenizeWithOptions("foo bar", opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, tok := range later {
		if tok.Kind() != Identifier {
			t.Errorf("%q lexed as %v after FromAST, want Identifier", tok.Text(), tok.Kind())
		}
	}
	if later[1].Symbol != tokens[1].Symbol {
		t.Error("identifier from FromAST and from tokenizing differ")
	}
}
