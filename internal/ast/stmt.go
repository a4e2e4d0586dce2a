package ast

import (
	"ember/internal/source"
)

type StmtKind uint8

const (
	// StmtExpr wraps a single expression. It is the only statement kind
	// today; the variant exists so that future statement kinds do not
	// break consumers.
	StmtExpr StmtKind = iota
)

func (k StmtKind) String() string {
	switch k {
	case StmtExpr:
		return "ExprStmt"
	}
	return "Unknown"
}

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type StmtExprData struct {
	Expr ExprID
}

type Stmts struct {
	Arena *Arena[Stmt]
	Exprs *Arena[StmtExprData]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{
		Arena: NewArena[Stmt](capHint),
		Exprs: NewArena[StmtExprData](capHint),
	}
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewExpr creates an expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    StmtExpr,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

// Expr returns the expression statement data for the given statement ID.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}
