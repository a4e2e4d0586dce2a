package parser

import (
	"ember/internal/ast"
	"ember/internal/token"
)

// Precedence table for binary operators. Higher binds tighter.
const (
	precAdditive       = 1 // + -
	precMultiplicative = 2 // * / //
	precPower          = 3 // ^
)

// getBinaryOperatorPrec returns the precedence and associativity of kind,
// or (-1, false) for non-operators.
//
// Every operator is right-associative here: the recursive right-hand parse
// reuses the operator's own precedence instead of precedence+1, so chains
// of equal precedence group to the right ("8 - 3 - 2" is 8 - (3 - 2)).
// This matches the committed language behavior; see DESIGN.md.
func (p *Parser) getBinaryOperatorPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.Plus, token.Minus:
		return precAdditive, true
	case token.Star, token.Slash, token.SlashSlash:
		return precMultiplicative, true
	case token.Caret:
		return precPower, true
	default:
		return -1, false
	}
}

// tokenKindToBinaryOp maps an operator token to its AST operator.
func (p *Parser) tokenKindToBinaryOp(kind token.Kind) ast.BinaryOp {
	switch kind {
	case token.Plus:
		return ast.BinAdd
	case token.Minus:
		return ast.BinSub
	case token.Star:
		return ast.BinMul
	case token.Slash:
		return ast.BinDiv
	case token.SlashSlash:
		return ast.BinIntDiv
	case token.Caret:
		return ast.BinPow
	default:
		return ast.BinAdd
	}
}
