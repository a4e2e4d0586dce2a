package token

import (
	"ember/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// Value carries the parsed literal value for Number tokens and is zero
	// for every other kind.
	Value float64
}

// IsLiteral reports whether the token is a numeric literal.
func (t Token) IsLiteral() bool {
	return t.Kind == Number
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, SlashSlash, Caret, Assign, Semicolon,
		LParen, RParen, LBrace, RBrace:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFor, KwVar, KwPrint:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsBinaryOp reports whether the token can act as a binary operator.
func (t Token) IsBinaryOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, SlashSlash, Caret:
		return true
	default:
		return false
	}
}
