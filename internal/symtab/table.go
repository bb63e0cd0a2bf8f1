package symtab

import "unicode/utf8"

// Symbol is the canonical representation of a spelling. Symbols are
// compared by pointer; a Table hands out exactly one per spelling.
type Symbol struct {
	Spelling string
	Kind     Kind
}

func (s *Symbol) String() string {
	return s.Spelling
}

// Table interns spellings for a single lexing session.
//
// Names (identifiers, reserved words, operators) share one namespace, so a
// reserved spelling always resolves to its reserved kind. Each literal kind
// has a namespace of its own: the char literal 'x', the string "x" and the
// identifier x are three distinct symbols.
//
// A Table is not safe for concurrent use.
type Table struct {
	names    map[string]*Symbol
	literals map[Kind]map[string]*Symbol
	maxOpLen int
}

// New returns a table seeded with the reserved words and operators.
func New() *Table {
	t := &Table{
		names:    make(map[string]*Symbol, len(reservedWords)+len(operators)+64),
		literals: make(map[Kind]map[string]*Symbol, 5),
	}
	for spelling, kind := range reservedWords {
		t.names[spelling] = &Symbol{Spelling: spelling, Kind: kind}
	}
	for spelling, kind := range operators {
		t.names[spelling] = &Symbol{Spelling: spelling, Kind: kind}
		if n := utf8.RuneCountInString(spelling); n > t.maxOpLen {
			t.maxOpLen = n
		}
	}
	return t
}

// Intern returns the symbol for spelling, creating it with kind if it does
// not exist yet. The kind of an existing symbol never changes. Interning with
// Probe never inserts and returns nil when the spelling is unknown.
func (t *Table) Intern(spelling string, kind Kind) *Symbol {
	if kind == Probe {
		sym, _ := t.Probe(spelling)
		return sym
	}

	ns := t.names
	if kind.IsLiteral() {
		ns = t.literals[kind]
		if ns == nil {
			ns = make(map[string]*Symbol)
			t.literals[kind] = ns
		}
	}

	if sym, ok := ns[spelling]; ok {
		return sym
	}
	sym := &Symbol{Spelling: spelling, Kind: kind}
	ns[spelling] = sym
	return sym
}

// Probe looks spelling up in the name namespace without inserting.
func (t *Table) Probe(spelling string) (*Symbol, bool) {
	sym, ok := t.names[spelling]
	return sym, ok
}

// Operator returns the operator or punctuation symbol spelled s, if any.
// The comment start counts as an operator here.
func (t *Table) Operator(s string) (*Symbol, bool) {
	sym, ok := t.names[s]
	if !ok || !(sym.Kind.IsOperator() || sym.Kind == Comment) {
		return nil, false
	}
	return sym, true
}

// MaxOperatorLen is the length in runes of the longest operator spelling.
func (t *Table) MaxOperatorLen() int {
	return t.maxOpLen
}

// Len returns the number of interned symbols across all namespaces.
func (t *Table) Len() int {
	n := len(t.names)
	for _, ns := range t.literals {
		n += len(ns)
	}
	return n
}
