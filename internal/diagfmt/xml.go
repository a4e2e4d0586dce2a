package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"ember/internal/ast"
)

// xmlPrinter renders expressions as XML elements. Element names come from
// the node and operator kinds; number text always carries a decimal point
// so whole values read as reals.
type xmlPrinter struct {
	ast.BaseVisitor
	w     io.Writer
	depth int
	err   error
}

// FormatXML writes the parsed file as an XML document wrapped in a fixed
// program envelope.
func FormatXML(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	p := &xmlPrinter{w: w, depth: 1}
	if _, err := fmt.Fprint(w, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<program>\n"); err != nil {
		return err
	}
	walker := ast.NewWalker(builder, p)
	walker.WalkFile(fileID)
	if p.err != nil {
		return p.err
	}
	_, err := fmt.Fprint(w, "</program>\n")
	return err
}

func (p *xmlPrinter) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	indent := strings.Repeat("  ", p.depth)
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", indent, fmt.Sprintf(format, args...))
}

// formatReal renders v with an explicit decimal point, so 8 prints as 8.0.
func formatReal(v float64) string {
	s := fmt.Sprintf("%g", v)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (p *xmlPrinter) VisitNumber(w *ast.Walker, id ast.ExprID) {
	data, _ := w.Builder.Exprs.Number(id)
	p.line("<real>%s</real>", formatReal(data.Value))
}

func (p *xmlPrinter) VisitVariable(w *ast.Walker, id ast.ExprID) {
	data, _ := w.Builder.Exprs.Variable(id)
	p.line("<variable>%s</variable>", data.Name)
}

func (p *xmlPrinter) VisitBinary(w *ast.Walker, id ast.ExprID) {
	data, _ := w.Builder.Exprs.Binary(id)
	p.line("<%s>", data.Op)
	p.depth++
	w.WalkExpr(data.Left)
	w.WalkExpr(data.Right)
	p.depth--
	p.line("</%s>", data.Op)
}

func (p *xmlPrinter) VisitParen(w *ast.Walker, id ast.ExprID) {
	data, _ := w.Builder.Exprs.Group(id)
	p.line("<paren>")
	p.depth++
	w.WalkExpr(data.Inner)
	p.depth--
	p.line("</paren>")
}

func (p *xmlPrinter) VisitBlock(w *ast.Walker, id ast.ExprID) {
	data, _ := w.Builder.Exprs.Group(id)
	p.line("<block>")
	p.depth++
	w.WalkExpr(data.Inner)
	p.depth--
	p.line("</block>")
}
