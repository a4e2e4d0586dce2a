package ast

import (
	"ember/internal/source"
)

type ExprNumberData struct {
	Value float64
}

type ExprVariableData struct {
	Name string
}

type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

// ExprGroupData backs both ExprParen and ExprBlock: each wraps exactly one
// inner expression.
type ExprGroupData struct {
	Inner ExprID
}

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena     *Arena[Expr]
	Numbers   *Arena[ExprNumberData]
	Variables *Arena[ExprVariableData]
	Binaries  *Arena[ExprBinaryData]
	Groups    *Arena[ExprGroupData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using
// capHint as the initial capacity.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:     NewArena[Expr](capHint),
		Numbers:   NewArena[ExprNumberData](capHint),
		Variables: NewArena[ExprVariableData](capHint),
		Binaries:  NewArena[ExprBinaryData](capHint),
		Groups:    NewArena[ExprGroupData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression header for the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewNumber creates a numeric literal expression.
func (e *Exprs) NewNumber(span source.Span, value float64) ExprID {
	payload := e.Numbers.Allocate(ExprNumberData{Value: value})
	return e.new(ExprNumber, span, PayloadID(payload))
}

// Number returns the literal data for the given expression ID.
func (e *Exprs) Number(id ExprID) (*ExprNumberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprNumber {
		return nil, false
	}
	return e.Numbers.Get(uint32(expr.Payload)), true
}

// NewVariable creates a variable reference expression.
func (e *Exprs) NewVariable(span source.Span, name string) ExprID {
	payload := e.Variables.Allocate(ExprVariableData{Name: name})
	return e.new(ExprVariable, span, PayloadID(payload))
}

// Variable returns the variable data for the given expression ID.
func (e *Exprs) Variable(id ExprID) (*ExprVariableData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprVariable {
		return nil, false
	}
	return e.Variables.Get(uint32(expr.Payload)), true
}

// NewBinary creates a binary expression.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewParen creates a parenthesized grouping around inner.
func (e *Exprs) NewParen(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprParen, span, PayloadID(payload))
}

// NewBlock creates a '{...}' block grouping around inner.
func (e *Exprs) NewBlock(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprBlock, span, PayloadID(payload))
}

// Group returns the grouping data for paren and block expressions.
func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	expr := e.Get(id)
	if expr == nil || (expr.Kind != ExprParen && expr.Kind != ExprBlock) {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}
