package lex

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
)

// TestTokenize tests the testable properties of the tokenizer through the public API.
func TestTokenize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKinds []string
		wantTexts []string
		wantErr   error
	}{
		{
			name:  "whitespace only",
			input: "  \t\n\n ",
		},
		{
			name:      "integer",
			input:     "123",
			wantKinds: []string{"Integer"},
			wantTexts: []string{"123"},
		},
		{
			name:      "float",
			input:     "123.45",
			wantKinds: []string{"Float"},
			wantTexts: []string{"123.45"},
		},
		{
			name:      "scientific keeps exponent digits",
			input:     "123.45e6",
			wantKinds: []string{"ScientificNumber"},
			wantTexts: []string{"123.45e6"},
		},
		{
			name:    "dot then letter",
			input:   ".e",
			wantErr: ErrMalformedFloat,
		},
		{
			name:      "comment then identifier",
			input:     "// comment\nx",
			wantKinds: []string{"Identifier"},
			wantTexts: []string{"x"},
		},
		{
			name:      "composite operator",
			input:     "==",
			wantKinds: []string{"Equal"},
			wantTexts: []string{"=="},
		},
		{
			name:      "single operator then identifier",
			input:     "=x",
			wantKinds: []string{"Assign", "Identifier"},
			wantTexts: []string{"=", "x"},
		},
		{
			name:    "two char literal",
			input:   "'ab'",
			wantErr: ErrUnterminatedChar,
		},
		{
			name:    "unterminated string",
			input:   `"abc`,
			wantErr: ErrUnterminatedString,
		},
		{
			name:      "tokens before a diagnostic are kept",
			input:     "a = b ? c",
			wantKinds: []string{"Identifier", "Assign", "Identifier"},
			wantTexts: []string{"a", "=", "b"},
			wantErr:   ErrIllegalCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Tokenize() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("Tokenize() unexpected error: %v", err)
			}

			if len(tokens) != len(tt.wantKinds) {
				t.Fatalf("got %d tokens, want %d", len(tokens), len(tt.wantKinds))
			}
			for i := range tokens {
				if tokens[i].Kind().String() != tt.wantKinds[i] {
					t.Errorf("token %d: kind = %v, want %s", i, tokens[i].Kind(), tt.wantKinds[i])
				}
				if tokens[i].Text() != tt.wantTexts[i] {
					t.Errorf("token %d: text = %q, want %q", i, tokens[i].Text(), tt.wantTexts[i])
				}
			}
		})
	}
}

func TestTokenize_ReservedWordTwice(t *testing.T) {
	tokens, err := Tokenize("return x return")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Symbol != tokens[2].Symbol {
		t.Error("reserved word symbols differ")
	}
	if tokens[0].Kind() == Identifier {
		t.Error("reserved word classified as Identifier")
	}
}

func TestTokenize_ConcurrentCallsAreIndependent(t *testing.T) {
	done := make(chan []Token, 2)
	for i := 0; i < 2; i++ {
		go func() {
			tokens, _ := Tokenize("alpha beta")
			done <- tokens
		}()
	}
	a, b := <-done, <-done
	if a[0].Symbol == b[0].Symbol {
		t.Error("separate calls shared a symbol table")
	}
}

func TestTokenizeWithOptions_SharedSymbols(t *testing.T) {
	opts := DefaultOptions()
	opts.Symbols = NewSymbolTable()

	a, err := TokenizeWithOptions("alpha", opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := TokenizeWithOptions("alpha", opts)
	if err != nil {
		t.Fatal(err)
	}
	if a[0].Symbol != b[0].Symbol {
		t.Error("shared table produced different symbols")
	}
}

func TestTokenizeWithOptions_InvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.OnError = ErrorMode(9)

	_, err := TokenizeWithOptions("x", opts)
	var optErr *OptionsError
	if !errors.As(err, &optErr) {
		t.Fatalf("error = %v, want *OptionsError", err)
	}
}

func TestTokenizeReader(t *testing.T) {
	tokens, err := TokenizeReader(strings.NewReader("if a != b then c = 'x'"))
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 8 {
		t.Errorf("got %d tokens, want 8", len(tokens))
	}
}

func TestTokenizeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.x")
	if err := os.WriteFile(path, []byte("program main {\n  int n = 10 // ten\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tokens, err := TokenizeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 8 {
		t.Fatalf("got %d tokens, want 8", len(tokens))
	}
	if last := tokens[len(tokens)-1]; last.Line != 3 || last.Kind().String() != "RightBrace" {
		t.Errorf("last token = %v", last)
	}
}

func TestTokenizeReader_ReadError(t *testing.T) {
	errBroken := errors.New("read failed")
	tokens, err := TokenizeReader(io.MultiReader(strings.NewReader("a b "), iotest.ErrReader(errBroken)))

	if len(tokens) != 2 {
		t.Errorf("got %d tokens, want 2", len(tokens))
	}
	var lexErr *Error
	if !errors.As(err, &lexErr) || lexErr.Kind != StreamError {
		t.Fatalf("error = %v, want StreamError", err)
	}
	if !errors.Is(err, errBroken) {
		t.Errorf("error = %v, want the read error in its chain", err)
	}
}

func TestTokenizeFile_MatchesTokenize(t *testing.T) {
	inputs := map[string]string{
		"rune across 8 KiB": strings.Repeat("a ", 4095) + "bé c\n",
		"wide runes":        strings.Repeat("naïve 'ü' \"Ωmega\" // ✓\n", 2000),
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prog.x")
			if err := os.WriteFile(path, []byte(input), 0o644); err != nil {
				t.Fatal(err)
			}

			want, err := Tokenize(input)
			if err != nil {
				t.Fatal(err)
			}
			got, err := TokenizeFile(path)
			if err != nil {
				t.Fatalf("TokenizeFile() error = %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("got %d tokens, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i].Symbol.Spelling != want[i].Symbol.Spelling || got[i].Position() != want[i].Position() {
					t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestTokenizeFile_Missing(t *testing.T) {
	_, err := TokenizeFile(filepath.Join(t.TempDir(), "missing.x"))

	var lexErr *Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("error = %v, want *Error", err)
	}
	if lexErr.Kind != StreamError || !errors.Is(err, ErrStream) {
		t.Errorf("error kind = %v", lexErr.Kind)
	}
}

func TestFormat(t *testing.T) {
	if Format() != "shape-lex" {
		t.Errorf("Format() = %q", Format())
	}
}
