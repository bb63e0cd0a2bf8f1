package lex

import (
	"errors"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		input    string
		kind     ErrorKind
		sentinel error
		code     string
	}{
		{"#", IllegalCharacter, ErrIllegalCharacter, "L0002"},
		{"1e+", MalformedNumber, ErrMalformedNumber, "L0003"},
		{". 5", MalformedFloat, ErrMalformedFloat, "L0004"},
		{"''", UnterminatedChar, ErrUnterminatedChar, "L0005"},
		{`"a b"`, UnterminatedString, ErrUnterminatedString, "L0006"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			_, err := Tokenize(tt.input)

			var lexErr *Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("Tokenize(%q) error = %v, want *Error", tt.input, err)
			}
			if lexErr.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", lexErr.Kind, tt.kind)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}
			if lexErr.Code() != tt.code {
				t.Errorf("Code() = %q, want %q", lexErr.Code(), tt.code)
			}
			if lexErr.Line != 1 || lexErr.Column != 1 {
				t.Errorf("position = %d:%d, want 1:1", lexErr.Line, lexErr.Column)
			}
		})
	}
}

func TestErrorSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrStream,
		ErrIllegalCharacter,
		ErrMalformedNumber,
		ErrMalformedFloat,
		ErrUnterminatedChar,
		ErrUnterminatedString,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v matches %v", a, b)
			}
		}
	}
}

func TestStreamErrorCode(t *testing.T) {
	if got := StreamError.Code(); got != "L0001" {
		t.Errorf("StreamError.Code() = %q, want L0001", got)
	}
}
