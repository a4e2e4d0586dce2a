package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"for":   KwFor,
		"var":   KwVar,
		"print": KwPrint,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{"For", "PRINT", "variable", "x", "y", "forx", ""}
	for _, lexeme := range notKw {
		if k, ok := LookupKeyword(lexeme); ok {
			t.Fatalf("LookupKeyword(%q) = %v, want miss", lexeme, k)
		}
	}
}
