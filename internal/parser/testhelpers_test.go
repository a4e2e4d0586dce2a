package parser

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/lexer"
	"ember/internal/source"
	"ember/internal/token"
)

// parseSource lexes and parses src, returning the arenas, the parsed file
// and the diagnostic bag.
func parseSource(t *testing.T, src string) (*ast.Builder, ast.FileID, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	id := fs.AddVirtual("test.em", []byte(src))
	file := fs.Get(id)

	bag := diag.NewBag(64)
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
	res := ParseTokens(tokens, arenas, Options{Reporter: reporter})
	return arenas, res.File, bag
}

// renderExpr prints an expression as a parenthesized prefix form, which
// the tests use to pin down the exact tree shape.
func renderExpr(t *testing.T, b *ast.Builder, id ast.ExprID) string {
	t.Helper()

	expr := b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprNumber:
		data, ok := b.Exprs.Number(id)
		if !ok {
			t.Fatalf("number payload missing for expr %d", id)
		}
		return strconv.FormatFloat(data.Value, 'g', -1, 64)
	case ast.ExprVariable:
		data, ok := b.Exprs.Variable(id)
		if !ok {
			t.Fatalf("variable payload missing for expr %d", id)
		}
		return data.Name
	case ast.ExprBinary:
		data, ok := b.Exprs.Binary(id)
		if !ok {
			t.Fatalf("binary payload missing for expr %d", id)
		}
		return fmt.Sprintf("(%s %s %s)",
			data.Op.Symbol(),
			renderExpr(t, b, data.Left),
			renderExpr(t, b, data.Right))
	case ast.ExprParen:
		data, ok := b.Exprs.Group(id)
		if !ok {
			t.Fatalf("group payload missing for expr %d", id)
		}
		return fmt.Sprintf("(paren %s)", renderExpr(t, b, data.Inner))
	case ast.ExprBlock:
		data, ok := b.Exprs.Group(id)
		if !ok {
			t.Fatalf("group payload missing for expr %d", id)
		}
		return fmt.Sprintf("(block %s)", renderExpr(t, b, data.Inner))
	default:
		t.Fatalf("unexpected expr kind %s", expr.Kind)
		return ""
	}
}

// renderFile renders every statement of the file, one per line segment.
func renderFile(t *testing.T, b *ast.Builder, file ast.FileID) string {
	t.Helper()

	var parts []string
	for _, stmtID := range b.Files.Get(file).Stmts {
		data, ok := b.Stmts.Expr(stmtID)
		if !ok {
			t.Fatalf("statement %d is not an expression statement", stmtID)
		}
		parts = append(parts, renderExpr(t, b, data.Expr))
	}
	return strings.Join(parts, "; ")
}

// requireCode asserts that the bag contains a diagnostic with the code.
func requireCode(t *testing.T, bag *diag.Bag, code diag.Code) diag.Diagnostic {
	t.Helper()

	for _, d := range bag.Items() {
		if d.Code == code {
			return d
		}
	}
	t.Fatalf("expected diagnostic %s, got %d others", code.ID(), bag.Len())
	return diag.Diagnostic{}
}
