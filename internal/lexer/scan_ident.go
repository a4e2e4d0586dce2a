package lexer

import (
	"ember/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword scans a maximal alphanumeric run and checks it against
// the closed keyword set. Keywords are case-sensitive. Token.Text is the
// exact source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 || !isAlphaRune(r) {
		// Not a letter after all; treat as punctuation.
		return lx.scanOperatorOrPunct()
	}
	lx.bumpRune()
	for {
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isAlnumRune(r2) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
