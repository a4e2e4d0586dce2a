package lexer

import (
	"ember/internal/source"
	"ember/internal/token"
)

// eofText is the placeholder literal of the synthetic EOF token. Its span
// is the degenerate (0,0); it is the one token whose text does not slice
// the source.
const eofText = "\x00"

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1-element lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next token. At end of input it returns the EOF token;
// every call past that point returns EOF again.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: source.Span{File: lx.file.ID, Start: 0, End: 0},
			Text: eofText,
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isDec(ch):
		return lx.scanNumber()
	case isSpaceByte(ch):
		return lx.scanWhitespace()
	case isAlphaByte(ch) || ch >= utf8RuneSelf:
		// Possibly a Unicode letter; scanIdentOrKeyword sorts it out.
		return lx.scanIdentOrKeyword()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// scanWhitespace consumes a maximal run of whitespace into one token.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for {
		r, sz := lx.peekRune()
		if sz == 0 || !isSpaceRune(r) {
			break
		}
		lx.bumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Whitespace,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
