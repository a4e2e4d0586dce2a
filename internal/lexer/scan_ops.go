package lexer

import (
	"fmt"

	"ember/internal/diag"
	"ember/internal/token"
)

// scanOperatorOrPunct scans punctuation, longest match first: the only
// two-character operator is '//', everything else is single-character.
// An unrecognized character yields an Invalid token plus a diagnostic,
// never a failure.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	if lx.try2('/', '/') {
		return emit(token.SlashSlash)
	}

	ch := lx.cursor.Peek()
	if ch < utf8RuneSelf {
		lx.cursor.Bump()
		switch ch {
		case '+':
			return emit(token.Plus)
		case '-':
			return emit(token.Minus)
		case '*':
			return emit(token.Star)
		case '/':
			return emit(token.Slash)
		case '^':
			return emit(token.Caret)
		case '=':
			return emit(token.Assign)
		case ';':
			return emit(token.Semicolon)
		case '(':
			return emit(token.LParen)
		case ')':
			return emit(token.RParen)
		case '{':
			return emit(token.LBrace)
		case '}':
			return emit(token.RBrace)
		}
	} else {
		// Consume the whole rune so the Invalid token never splits a
		// UTF-8 sequence.
		lx.bumpRune()
	}

	tok := emit(token.Invalid)
	lx.report(diag.LexUnknownChar, diag.SevError, tok.Span, fmt.Sprintf("unrecognized character %q", tok.Text))
	return tok
}
