package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"ember/internal/ast"
)

// treePrinter renders expressions as an indented tree, one node per line.
// It drives its own recursion so it can manage the indent depth around
// each child walk.
type treePrinter struct {
	ast.BaseVisitor
	w     io.Writer
	depth int
	err   error
}

// FormatTree writes the parsed file as an indented node tree.
func FormatTree(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	p := &treePrinter{w: w}
	walker := ast.NewWalker(builder, p)
	file := builder.Files.Get(fileID)
	for i, stmtID := range file.Stmts {
		p.line("Statement[%d]", i)
		p.depth++
		walker.WalkStmt(stmtID)
		p.depth--
	}
	return p.err
}

func (p *treePrinter) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	indent := strings.Repeat("  ", p.depth)
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", indent, fmt.Sprintf(format, args...))
}

func (p *treePrinter) VisitNumber(w *ast.Walker, id ast.ExprID) {
	data, _ := w.Builder.Exprs.Number(id)
	p.line("Number %s", strconv.FormatFloat(data.Value, 'g', -1, 64))
}

func (p *treePrinter) VisitVariable(w *ast.Walker, id ast.ExprID) {
	data, _ := w.Builder.Exprs.Variable(id)
	p.line("Variable %s", data.Name)
}

func (p *treePrinter) VisitBinary(w *ast.Walker, id ast.ExprID) {
	data, _ := w.Builder.Exprs.Binary(id)
	p.line("%s", data.Op)
	p.depth++
	w.WalkExpr(data.Left)
	w.WalkExpr(data.Right)
	p.depth--
}

func (p *treePrinter) VisitParen(w *ast.Walker, id ast.ExprID) {
	data, _ := w.Builder.Exprs.Group(id)
	p.line("Paren")
	p.depth++
	w.WalkExpr(data.Inner)
	p.depth--
}

func (p *treePrinter) VisitBlock(w *ast.Walker, id ast.ExprID) {
	data, _ := w.Builder.Exprs.Group(id)
	p.line("Block")
	p.depth++
	w.WalkExpr(data.Inner)
	p.depth--
}
