package lexer

import (
	"ember/internal/diag"
	"ember/internal/source"
)

type Options struct {
	// Reporter may be nil: diagnostics are then dropped, but lexing
	// continues either way. The lexer itself never fails.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}
