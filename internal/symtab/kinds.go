// Package symtab interns token spellings to canonical symbols.
package symtab

import "fmt"

// Kind classifies a Symbol. The set is closed.
type Kind int

const (
	// Probe is never stored. Interning with Probe only tests membership.
	Probe Kind = iota

	// Literal and name classes
	Identifier
	Integer
	Float
	ScientificNumber
	Char
	String

	// Reserved words
	Program
	Int
	Boolean
	FloatType
	CharType
	StringType
	Void
	If
	Then
	Else
	While
	For
	Do
	Function
	Return
	True
	False

	// Operators and punctuation
	LeftBrace
	RightBrace
	LeftParen
	RightParen
	LeftBracket
	RightBracket
	Comma
	Semicolon
	Colon
	Assign
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	Plus
	Minus
	Multiply
	Divide
	Modulo
	Or
	And
	Not
	Increment
	Decrement

	// Comment start; filtered by the tokenizer, never emitted.
	Comment
)

var kindNames = [...]string{
	Probe:            "Probe",
	Identifier:       "Identifier",
	Integer:          "Integer",
	Float:            "Float",
	ScientificNumber: "ScientificNumber",
	Char:             "Char",
	String:           "String",
	Program:          "Program",
	Int:              "Int",
	Boolean:          "Boolean",
	FloatType:        "FloatType",
	CharType:         "CharType",
	StringType:       "StringType",
	Void:             "Void",
	If:               "If",
	Then:             "Then",
	Else:             "Else",
	While:            "While",
	For:              "For",
	Do:               "Do",
	Function:         "Function",
	Return:           "Return",
	True:             "True",
	False:            "False",
	LeftBrace:        "LeftBrace",
	RightBrace:       "RightBrace",
	LeftParen:        "LeftParen",
	RightParen:       "RightParen",
	LeftBracket:      "LeftBracket",
	RightBracket:     "RightBracket",
	Comma:            "Comma",
	Semicolon:        "Semicolon",
	Colon:            "Colon",
	Assign:           "Assign",
	Equal:            "Equal",
	NotEqual:         "NotEqual",
	Less:             "Less",
	LessEqual:        "LessEqual",
	Greater:          "Greater",
	GreaterEqual:     "GreaterEqual",
	Plus:             "Plus",
	Minus:            "Minus",
	Multiply:         "Multiply",
	Divide:           "Divide",
	Modulo:           "Modulo",
	Or:               "Or",
	And:              "And",
	Not:              "Not",
	Increment:        "Increment",
	Decrement:        "Decrement",
	Comment:          "Comment",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindByName returns the kind whose String is name.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return Probe, false
}

// IsLiteral reports whether k is a literal class whose spelling is its value.
func (k Kind) IsLiteral() bool {
	return k >= Integer && k <= String
}

// IsReserved reports whether k is a reserved word.
func (k Kind) IsReserved() bool {
	return k >= Program && k <= False
}

// IsOperator reports whether k is an operator or punctuation kind.
func (k Kind) IsOperator() bool {
	return k >= LeftBrace && k <= Decrement
}

// HasValue reports whether tokens of kind k carry a user-visible spelling
// (identifiers and literals), as opposed to fixed spellings.
func (k Kind) HasValue() bool {
	return k == Identifier || k.IsLiteral()
}

// reservedWords are seeded before any scanning.
var reservedWords = map[string]Kind{
	"program":  Program,
	"int":      Int,
	"boolean":  Boolean,
	"float":    FloatType,
	"char":     CharType,
	"string":   StringType,
	"void":     Void,
	"if":       If,
	"then":     Then,
	"else":     Else,
	"while":    While,
	"for":      For,
	"do":       Do,
	"function": Function,
	"return":   Return,
	"true":     True,
	"false":    False,
}

// operators are the one and two character spellings the tokenizer matches
// by longest prefix. "//" opens a line comment.
var operators = map[string]Kind{
	"{":  LeftBrace,
	"}":  RightBrace,
	"(":  LeftParen,
	")":  RightParen,
	"[":  LeftBracket,
	"]":  RightBracket,
	",":  Comma,
	";":  Semicolon,
	":":  Colon,
	"=":  Assign,
	"==": Equal,
	"!=": NotEqual,
	"<":  Less,
	"<=": LessEqual,
	">":  Greater,
	">=": GreaterEqual,
	"+":  Plus,
	"-":  Minus,
	"*":  Multiply,
	"/":  Divide,
	"%":  Modulo,
	"|":  Or,
	"&":  And,
	"!":  Not,
	"++": Increment,
	"--": Decrement,
	"//": Comment,
}
