package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error limit has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser holds the state for parsing one token sequence. It is constructed
// from a finite token slice with whitespace already filtered out; the
// grammar never observes whitespace.
type Parser struct {
	tokens   []token.Token
	pos      int
	arenas   *ast.Builder
	file     ast.FileID
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics
}

// ParseTokens is the entry point for parsing one tokenized file. The token
// slice is expected to end with an EOF token; a missing one is tolerated.
func ParseTokens(tokens []token.Token, arenas *ast.Builder, opts Options) Result {
	filtered := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != token.Whitespace {
			filtered = append(filtered, t)
		}
	}

	var startSpan source.Span
	if len(filtered) > 0 {
		startSpan = filtered[0].Span
	}

	p := Parser{
		tokens:   filtered,
		arenas:   arenas,
		file:     arenas.NewFile(startSpan),
		opts:     opts,
		lastSpan: startSpan,
	}

	p.parseStmts()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

// parseStmts is the top-level loop: one statement per expression until the
// tokens run out. Running out of tokens is the end of the program, not an
// error; a statement that fails to parse has already been reported and
// ends the run.
func (p *Parser) parseStmts() {
	startSpan := p.peek().Span
	for !p.at(token.EOF) {
		stmtID, ok := p.parseStatement()
		if !ok {
			break
		}
		p.arenas.PushStmt(p.file, stmtID)
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lastSpan)
}

// parseStatement parses exactly one expression and wraps it as an
// expression statement.
func (p *Parser) parseStatement() (ast.StmtID, bool) {
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	span := p.arenas.Exprs.Get(expr).Span
	return p.arenas.Stmts.NewExpr(span, expr), true
}
