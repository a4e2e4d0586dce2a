package ast

import (
	"ember/internal/source"
)

type Hints struct{ Files, Stmts, Exprs uint }

// Builder owns the arenas a parse run allocates into. Subtrees are
// exclusively owned by their parents through IDs; nothing is shared and
// nothing is mutated after construction.
type Builder struct {
	Files *Files
	Stmts *Stmts
	Exprs *Exprs
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 2
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 6
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Files: NewFiles(hints.Files),
		Stmts: NewStmts(hints.Stmts),
		Exprs: NewExprs(hints.Exprs),
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

func (b *Builder) PushStmt(file FileID, stmt StmtID) {
	f := b.Files.Get(file)
	f.Stmts = append(f.Stmts, stmt)
}
