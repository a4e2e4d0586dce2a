package parser

import (
	"fmt"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/token"
)

// parseExpr parses a full expression at the lowest precedence level.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(0)
}

// parseBinaryExpr is a precedence climber. It parses a primary operand and
// then folds in operator/operand pairs as long as the operator binds at
// least as tightly as minPrec. The right-hand recursion uses the operator's
// own precedence, which makes every level group to the right.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		opTok := p.peek()
		prec, isOp := p.getBinaryOperatorPrec(opTok.Kind)
		if !isOp || prec < minPrec {
			return left, true
		}
		p.advance()

		right, ok := p.parseBinaryExpr(prec)
		if !ok {
			return ast.NoExprID, false
		}

		op := p.tokenKindToBinaryOp(opTok.Kind)
		span := p.arenas.Exprs.Get(left).Span.Cover(p.arenas.Exprs.Get(right).Span)
		left = p.arenas.Exprs.NewBinary(span, op, left, right)
	}
}

// parsePrimary parses an operand: a number literal, a variable reference,
// or a grouped expression in parentheses or braces. Both grouping forms
// keep a dedicated node so the concrete brackets survive into rendering.
func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	t := p.peek()
	switch t.Kind {
	case token.Number:
		p.advance()
		return p.arenas.Exprs.NewNumber(t.Span, t.Value), true

	case token.Ident:
		p.advance()
		return p.arenas.Exprs.NewVariable(t.Span, t.Text), true

	case token.LParen:
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		closing, ok := p.expect(token.RParen, diag.SynUnclosedParen,
			"expected ')' to close the parenthesized expression")
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewParen(open.Span.Cover(closing.Span), inner), true

	case token.LBrace:
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		closing, ok := p.expect(token.RBrace, diag.SynUnclosedBrace,
			"expected '}' to close the braced expression")
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewBlock(open.Span.Cover(closing.Span), inner), true

	case token.EOF:
		p.report(diag.SynUnexpectedEOF, "expected an expression, found end of input")
		return ast.NoExprID, false

	default:
		p.report(diag.SynUnexpectedToken,
			fmt.Sprintf("expected an expression, found %s %q", t.Kind, t.Text))
		p.advance()
		return ast.NoExprID, false
	}
}
