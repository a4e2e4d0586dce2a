package diagfmt

import (
	"bytes"
	"testing"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/lexer"
	"ember/internal/parser"
	"ember/internal/source"
	"ember/internal/token"
)

func parseFile(t *testing.T, src string) (*ast.Builder, ast.FileID) {
	t.Helper()

	fs := source.NewFileSet()
	id := fs.AddVirtual("test.em", []byte(src))
	file := fs.Get(id)

	bag := diag.NewBag(16)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	arenas := ast.NewBuilder(ast.Hints{})
	res := parser.ParseTokens(tokens, arenas, parser.Options{Reporter: reporter})
	if bag.HasErrors() {
		t.Fatalf("parse of %q failed: %v", src, bag.Items())
	}
	return arenas, res.File
}

func TestFormatTree(t *testing.T) {
	b, file := parseFile(t, "2 + 3 * 4")

	var buf bytes.Buffer
	if err := FormatTree(&buf, b, file); err != nil {
		t.Fatalf("FormatTree: %v", err)
	}

	want := "Statement[0]\n" +
		"  Plus\n" +
		"    Number 2\n" +
		"    Multiply\n" +
		"      Number 3\n" +
		"      Number 4\n"
	if got := buf.String(); got != want {
		t.Fatalf("tree mismatch:\n got:\n%s want:\n%s", got, want)
	}
}

func TestFormatTreeGroups(t *testing.T) {
	b, file := parseFile(t, "{(x + 1)} // 2")

	var buf bytes.Buffer
	if err := FormatTree(&buf, b, file); err != nil {
		t.Fatalf("FormatTree: %v", err)
	}

	want := "Statement[0]\n" +
		"  IntegerDivide\n" +
		"    Block\n" +
		"      Paren\n" +
		"        Plus\n" +
		"          Variable x\n" +
		"          Number 1\n" +
		"    Number 2\n"
	if got := buf.String(); got != want {
		t.Fatalf("tree mismatch:\n got:\n%s want:\n%s", got, want)
	}
}

func TestFormatTreeMultipleStatements(t *testing.T) {
	b, file := parseFile(t, "1 2")

	var buf bytes.Buffer
	if err := FormatTree(&buf, b, file); err != nil {
		t.Fatalf("FormatTree: %v", err)
	}

	want := "Statement[0]\n" +
		"  Number 1\n" +
		"Statement[1]\n" +
		"  Number 2\n"
	if got := buf.String(); got != want {
		t.Fatalf("tree mismatch:\n got:\n%s want:\n%s", got, want)
	}
}
