package ast

import (
	"ember/internal/source"
)

// File is a parsed program: an ordered, append-only statement list. It is
// built once by the parser and read-only afterwards.
type File struct {
	Span  source.Span
	Stmts []StmtID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(span source.Span) FileID {
	return FileID(f.Arena.Allocate(File{Span: span}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
