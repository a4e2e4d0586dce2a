package driver

import (
	"fortio.org/safecast"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/parser"
	"ember/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
}

// Parse loads path, lexes it and parses the token stream into an AST.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	tok, err := Tokenize(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return parseTokens(tok, maxDiagnostics)
}

// ParseSource parses in-memory content under a virtual file name.
func ParseSource(name string, content []byte, maxDiagnostics int) (*ParseResult, error) {
	return parseTokens(TokenizeSource(name, content, maxDiagnostics), maxDiagnostics)
}

func parseTokens(tok *TokenizeResult, maxDiagnostics int) (*ParseResult, error) {
	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	builder := ast.NewBuilder(ast.Hints{})
	result := parser.ParseTokens(tok.Tokens, builder, parser.Options{
		Reporter:  diag.BagReporter{Bag: tok.Bag},
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: tok.FileSet,
		File:    tok.File,
		Builder: builder,
		FileID:  result.File,
		Bag:     tok.Bag,
	}, nil
}
