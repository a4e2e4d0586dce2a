package ast

import (
	"ember/internal/source"
)

type ExprKind uint8

const (
	// ExprNumber is a numeric literal leaf.
	ExprNumber ExprKind = iota
	// ExprVariable is a variable reference leaf.
	ExprVariable
	// ExprBinary is a binary operation over two subtrees.
	ExprBinary
	// ExprParen preserves explicit '(...)' grouping. It exists for display
	// only and is transparent during evaluation.
	ExprParen
	// ExprBlock wraps '{...}' around a single inner expression. Like
	// ExprParen it is transparent during evaluation but kept distinct for
	// display.
	ExprBlock
)

func (k ExprKind) String() string {
	switch k {
	case ExprNumber:
		return "Number"
	case ExprVariable:
		return "Variable"
	case ExprBinary:
		return "Binary"
	case ExprParen:
		return "Paren"
	case ExprBlock:
		return "Block"
	}
	return "Unknown"
}

// Expr is the per-node header; the kind-specific payload lives in a side
// arena addressed by Payload.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// BinaryOp identifies a binary operator.
type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinIntDiv
	BinPow
)

func (op BinaryOp) String() string {
	switch op {
	case BinAdd:
		return "Plus"
	case BinSub:
		return "Minus"
	case BinMul:
		return "Multiply"
	case BinDiv:
		return "Divide"
	case BinIntDiv:
		return "IntegerDivide"
	case BinPow:
		return "Pow"
	}
	return "Unknown"
}

// Symbol returns the source spelling of the operator.
func (op BinaryOp) Symbol() string {
	switch op {
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	case BinIntDiv:
		return "//"
	case BinPow:
		return "^"
	}
	return "?"
}
