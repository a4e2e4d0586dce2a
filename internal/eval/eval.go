// Package eval computes the numeric value of parsed programs. Every value
// is a float64; evaluation walks the expression tree bottom-up and threads
// results through return values.
package eval

import (
	"fmt"
	"math"

	"ember/internal/ast"
	"ember/internal/diag"
)

// Reserved bindings every program starts with.
const (
	reservedX = 1.0
	reservedY = 3.0
)

type Options struct {
	Reporter diag.Reporter
	// Vars are extra bindings. The reserved names win over any binding
	// supplied here.
	Vars map[string]float64
}

// Result is the outcome of evaluating a file. HasValue is false only for
// programs with no statements.
type Result struct {
	Value    float64
	HasValue bool
}

type Evaluator struct {
	arenas *ast.Builder
	vars   map[string]float64
	opts   Options
}

func New(arenas *ast.Builder, opts Options) *Evaluator {
	vars := make(map[string]float64, len(opts.Vars)+2)
	for name, v := range opts.Vars {
		vars[name] = v
	}
	// Reserved bindings apply irrespective of the supplied map.
	vars["x"] = reservedX
	vars["y"] = reservedY
	return &Evaluator{
		arenas: arenas,
		vars:   vars,
		opts:   opts,
	}
}

// EvalFile evaluates every statement in order and returns the value of the
// last one. A statement that fails stops the run with HasValue false.
func (ev *Evaluator) EvalFile(file ast.FileID) (Result, bool) {
	var res Result
	for _, stmtID := range ev.arenas.Files.Get(file).Stmts {
		v, ok := ev.evalStmt(stmtID)
		if !ok {
			return Result{}, false
		}
		res = Result{Value: v, HasValue: true}
	}
	return res, true
}

func (ev *Evaluator) evalStmt(id ast.StmtID) (float64, bool) {
	data, ok := ev.arenas.Stmts.Expr(id)
	if !ok {
		return 0, false
	}
	return ev.evalExpr(data.Expr)
}

func (ev *Evaluator) evalExpr(id ast.ExprID) (float64, bool) {
	expr := ev.arenas.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprNumber:
		data, _ := ev.arenas.Exprs.Number(id)
		return data.Value, true

	case ast.ExprVariable:
		data, _ := ev.arenas.Exprs.Variable(id)
		v, bound := ev.vars[data.Name]
		if !bound {
			ev.report(diag.EvalUnboundVariable, id,
				fmt.Sprintf("variable %q has no value", data.Name))
			return 0, false
		}
		return v, true

	case ast.ExprBinary:
		data, _ := ev.arenas.Exprs.Binary(id)
		left, ok := ev.evalExpr(data.Left)
		if !ok {
			return 0, false
		}
		right, ok := ev.evalExpr(data.Right)
		if !ok {
			return 0, false
		}
		return ev.applyBinary(data.Op, left, right), true

	case ast.ExprParen, ast.ExprBlock:
		data, _ := ev.arenas.Exprs.Group(id)
		return ev.evalExpr(data.Inner)

	default:
		return 0, false
	}
}

func (ev *Evaluator) applyBinary(op ast.BinaryOp, left, right float64) float64 {
	switch op {
	case ast.BinAdd:
		return left + right
	case ast.BinSub:
		return left - right
	case ast.BinMul:
		return left * right
	case ast.BinDiv:
		return left / right
	case ast.BinIntDiv:
		// Truncating division: the quotient is rounded toward zero.
		return math.Trunc(left / right)
	case ast.BinPow:
		return pow(left, right)
	default:
		return 0
	}
}

// pow raises base to a whole exponent. The exponent is truncated toward
// zero and clamped at zero from below, so 2^3.9 is 8 and 2^-1 is 1.
func pow(base, exponent float64) float64 {
	whole := math.Trunc(exponent)
	if whole < 0 {
		whole = 0
	}
	return math.Pow(base, whole)
}

func (ev *Evaluator) report(code diag.Code, at ast.ExprID, msg string) {
	if ev.opts.Reporter == nil {
		return
	}
	span := ev.arenas.Exprs.Get(at).Span
	ev.opts.Reporter.Report(code, diag.SevError, span, msg, nil)
}
