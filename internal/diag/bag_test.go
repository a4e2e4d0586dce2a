package diag

import (
	"testing"

	"ember/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(NewError(SynUnexpectedToken, source.Span{}, "one")) {
		t.Fatal("first Add should succeed")
	}
	if !bag.Add(NewError(SynUnexpectedToken, source.Span{}, "two")) {
		t.Fatal("second Add should succeed")
	}
	if bag.Add(NewError(SynUnexpectedToken, source.Span{}, "three")) {
		t.Fatal("third Add should hit the limit")
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(10)
	bag.Add(New(SevWarning, LexBadNumber, source.Span{}, "warn"))

	if bag.HasErrors() {
		t.Error("warning alone must not count as error")
	}
	if !bag.HasWarnings() {
		t.Error("expected HasWarnings")
	}

	bag.Add(NewError(SynUnclosedParen, source.Span{}, "err"))
	if !bag.HasErrors() {
		t.Error("expected HasErrors after adding an error")
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewError(SynUnexpectedToken, source.Span{Start: 5, End: 6}, "later"))
	bag.Add(NewError(LexUnknownChar, source.Span{Start: 1, End: 2}, "earlier"))
	bag.Sort()

	items := bag.Items()
	if items[0].Message != "earlier" || items[1].Message != "later" {
		t.Errorf("expected span order, got %q then %q", items[0].Message, items[1].Message)
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	sp := source.Span{Start: 1, End: 2}
	bag.Add(NewError(LexUnknownChar, sp, "dup"))
	bag.Add(NewError(LexUnknownChar, sp, "dup"))
	bag.Dedup()

	if bag.Len() != 1 {
		t.Fatalf("expected 1 after dedup, got %d", bag.Len())
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:      "LEX1001",
		SynUnclosedBrace:    "SYN2003",
		EvalUnboundVariable: "EVAL3001",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("Code(%d).ID() = %q, want %q", code, got, want)
		}
	}
}
