package driver

import (
	"ember/internal/diag"
	"ember/internal/eval"
)

type EvalResult struct {
	*ParseResult
	Result eval.Result
}

// Eval loads, parses and evaluates path. Vars are layered over the
// built-in bindings. Diagnostics land in the result's Bag; evaluation is
// skipped when parsing already produced errors.
func Eval(path string, vars map[string]float64, maxDiagnostics int) (*EvalResult, error) {
	parsed, err := Parse(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return evalParsed(parsed, vars), nil
}

// EvalSource evaluates in-memory content under a virtual file name.
func EvalSource(name string, content []byte, vars map[string]float64, maxDiagnostics int) (*EvalResult, error) {
	parsed, err := ParseSource(name, content, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return evalParsed(parsed, vars), nil
}

func evalParsed(parsed *ParseResult, vars map[string]float64) *EvalResult {
	res := &EvalResult{ParseResult: parsed}
	if parsed.Bag.HasErrors() {
		return res
	}

	ev := eval.New(parsed.Builder, eval.Options{
		Reporter: diag.BagReporter{Bag: parsed.Bag},
		Vars:     vars,
	})
	if result, ok := ev.EvalFile(parsed.FileID); ok {
		res.Result = result
	}
	return res
}
