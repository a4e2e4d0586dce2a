package parser

import (
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

// peek returns the current token. Past the end of the slice it synthesizes
// an EOF token carrying the last consumed span so diagnostics still point
// somewhere.
func (p *Parser) peek() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return token.Token{Kind: token.EOF, Span: p.lastSpan, Text: "\x00"}
}

func (p *Parser) at(kind token.Kind) bool {
	return p.peek().Kind == kind
}

// advance consumes the current token and returns it.
func (p *Parser) advance() token.Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	if t.Kind != token.EOF {
		p.lastSpan = t.Span
	}
	return t
}

// expect consumes the current token if it has the wanted kind and reports
// code otherwise.
func (p *Parser) expect(kind token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	p.report(code, msg)
	return token.Token{}, false
}

// report emits an error diagnostic anchored to the current position.
func (p *Parser) report(code diag.Code, msg string) {
	if p.opts.Enough() {
		return
	}
	p.opts.CurrentErrors++
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, p.diagnosticSpan(), msg, nil)
	}
}

// diagnosticSpan picks the span the current error should point at. The EOF
// token carries the degenerate span (0,0), which is useless for a caret, so
// errors at the end of input fall back to the last consumed token.
func (p *Parser) diagnosticSpan() source.Span {
	t := p.peek()
	if t.Kind == token.EOF {
		return p.lastSpan
	}
	return t.Span
}
