package ast

// Visitor is the traversal contract over the closed node set: one callback
// per node kind. The Walker dispatches by kind, so adding a node kind
// forces every consumer to handle it at compile time. Consumers embed
// BaseVisitor and override only the callbacks they care about; everything
// else falls back to structural recursion.
type Visitor interface {
	VisitExprStmt(w *Walker, id StmtID)
	VisitNumber(w *Walker, id ExprID)
	VisitVariable(w *Walker, id ExprID)
	VisitBinary(w *Walker, id ExprID)
	VisitParen(w *Walker, id ExprID)
	VisitBlock(w *Walker, id ExprID)
}

// Walker routes nodes to a Visitor's callbacks.
type Walker struct {
	Builder *Builder
	Visitor Visitor
}

func NewWalker(b *Builder, v Visitor) *Walker {
	return &Walker{Builder: b, Visitor: v}
}

// WalkFile visits every statement of the file in order.
func (w *Walker) WalkFile(id FileID) {
	file := w.Builder.Files.Get(id)
	if file == nil {
		return
	}
	for _, stmt := range file.Stmts {
		w.WalkStmt(stmt)
	}
}

// WalkStmt dispatches one statement to the visitor.
func (w *Walker) WalkStmt(id StmtID) {
	stmt := w.Builder.Stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case StmtExpr:
		w.Visitor.VisitExprStmt(w, id)
	}
}

// WalkExpr dispatches one expression to the visitor.
func (w *Walker) WalkExpr(id ExprID) {
	expr := w.Builder.Exprs.Get(id)
	if expr == nil {
		return
	}
	switch expr.Kind {
	case ExprNumber:
		w.Visitor.VisitNumber(w, id)
	case ExprVariable:
		w.Visitor.VisitVariable(w, id)
	case ExprBinary:
		w.Visitor.VisitBinary(w, id)
	case ExprParen:
		w.Visitor.VisitParen(w, id)
	case ExprBlock:
		w.Visitor.VisitBlock(w, id)
	}
}

// BaseVisitor provides default structural recursion: compound nodes
// descend into their children, leaves do nothing.
type BaseVisitor struct{}

func (BaseVisitor) VisitExprStmt(w *Walker, id StmtID) {
	if data, ok := w.Builder.Stmts.Expr(id); ok {
		w.WalkExpr(data.Expr)
	}
}

func (BaseVisitor) VisitNumber(*Walker, ExprID) {}

func (BaseVisitor) VisitVariable(*Walker, ExprID) {}

func (BaseVisitor) VisitBinary(w *Walker, id ExprID) {
	if data, ok := w.Builder.Exprs.Binary(id); ok {
		w.WalkExpr(data.Left)
		w.WalkExpr(data.Right)
	}
}

func (BaseVisitor) VisitParen(w *Walker, id ExprID) {
	if data, ok := w.Builder.Exprs.Group(id); ok {
		w.WalkExpr(data.Inner)
	}
}

func (BaseVisitor) VisitBlock(w *Walker, id ExprID) {
	if data, ok := w.Builder.Exprs.Group(id); ok {
		w.WalkExpr(data.Inner)
	}
}
