package lexer

import (
	"strconv"

	"ember/internal/diag"
	"ember/internal/token"
)

// scanNumber consumes a maximal run of digits, optionally followed by a
// single '.' and more digits. A second '.' terminates the number early and
// is left for the next token. The value is always a float, even for
// whole-number spellings; text strconv cannot parse degrades to 0.0 with a
// warning rather than failing (lenient by contract).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Eat('.') {
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		lx.report(diag.LexBadNumber, diag.SevWarning, sp, "malformed number "+strconv.Quote(text)+", using 0")
		value = 0.0
	}

	return token.Token{Kind: token.Number, Span: sp, Text: text, Value: value}
}
