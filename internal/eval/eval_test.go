package eval_test

import (
	"math"
	"testing"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/eval"
	"ember/internal/lexer"
	"ember/internal/parser"
	"ember/internal/source"
	"ember/internal/token"
)

func evalSource(t *testing.T, src string, vars map[string]float64) (eval.Result, bool, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	id := fs.AddVirtual("test.em", []byte(src))
	file := fs.Get(id)

	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	arenas := ast.NewBuilder(ast.Hints{})
	res := parser.ParseTokens(tokens, arenas, parser.Options{Reporter: reporter})
	if bag.HasErrors() {
		t.Fatalf("parse of %q failed: %v", src, bag.Items())
	}

	ev := eval.New(arenas, eval.Options{Reporter: reporter, Vars: vars})
	result, ok := ev.EvalFile(res.File)
	return result, ok, bag
}

func requireValue(t *testing.T, src string, want float64) {
	t.Helper()
	res, ok, bag := evalSource(t, src, nil)
	if !ok {
		t.Fatalf("eval of %q failed: %v", src, bag.Items())
	}
	if !res.HasValue {
		t.Fatalf("eval of %q produced no value", src)
	}
	if res.Value != want {
		t.Fatalf("eval %q = %g, want %g", src, res.Value, want)
	}
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"2 * 3 + 4", 10},
		{"10 - 4", 6},
		{"1 / 2", 0.5},
		{"2.5 * 4", 10},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			requireValue(t, tc.src, tc.want)
		})
	}
}

func TestRightAssociativeChains(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"8 - 3 - 2", 7},  // 8 - (3 - 2)
		{"16 / 4 / 2", 8}, // 16 / (4 / 2)
		{"2 ^ 3 ^ 2", 512},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			requireValue(t, tc.src, tc.want)
		})
	}
}

func TestPower(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"2 ^ 3", 8},
		{"2 ^ 0", 1},
		// Fractional exponents are truncated before the multiply loop.
		{"2 ^ 3.9", 8},
		{"2 ^ 0.5", 1},
		// Negative exponents clamp to zero.
		{"2 ^ (0 - 1)", 1},
		{"0 ^ 0", 1},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			requireValue(t, tc.src, tc.want)
		})
	}
}

// Exponentiation is constant time in the exponent; huge exponents must
// evaluate immediately instead of stalling.
func TestPowLargeExponent(t *testing.T) {
	requireValue(t, "1 ^ 10000000000000", 1)
	requireValue(t, "2 ^ 100", math.Pow(2, 100))
	requireValue(t, "2 ^ 10000", math.Inf(1))
}

func TestIntegerDivide(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"6 // 4", 1},
		{"7 // 2", 3},
		{"8 // 2", 4},
		// Truncation is toward zero, not toward negative infinity.
		{"(0 - 7) // 2", -3},
		{"7.5 // 2", 3},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			requireValue(t, tc.src, tc.want)
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	res, ok, _ := evalSource(t, "1 / 0", nil)
	if !ok || !math.IsInf(res.Value, 1) {
		t.Fatalf("1 / 0 = %g, want +Inf", res.Value)
	}
	res, ok, _ = evalSource(t, "0 / 0", nil)
	if !ok || !math.IsNaN(res.Value) {
		t.Fatalf("0 / 0 = %g, want NaN", res.Value)
	}
}

func TestGroupingForms(t *testing.T) {
	requireValue(t, "{2 + 2}", 4)
	requireValue(t, "{(1 + 2)} * 3", 9)
}

func TestReservedVariables(t *testing.T) {
	requireValue(t, "x", 1)
	requireValue(t, "y", 3)
	requireValue(t, "x + y", 4)
	requireValue(t, "y ^ 2", 9)
}

func TestSuppliedVars(t *testing.T) {
	vars := map[string]float64{"radius": 2, "height": 5}
	res, ok, bag := evalSource(t, "radius * height + y", vars)
	if !ok {
		t.Fatalf("eval failed: %v", bag.Items())
	}
	if res.Value != 13 {
		t.Fatalf("got %g, want 13", res.Value)
	}
}

// The two built-in bindings apply irrespective of the supplied map.
func TestReservedNamesWinOverSuppliedVars(t *testing.T) {
	vars := map[string]float64{"x": 10, "y": 20}
	res, ok, bag := evalSource(t, "x + y", vars)
	if !ok {
		t.Fatalf("eval failed: %v", bag.Items())
	}
	if res.Value != 4 {
		t.Fatalf("got %g, want 4", res.Value)
	}
}

func TestUnboundVariable(t *testing.T) {
	_, ok, bag := evalSource(t, "1 + nope", nil)
	if ok {
		t.Fatalf("expected evaluation to fail")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.EvalUnboundVariable {
			found = true
			if d.Primary.Start == d.Primary.End {
				t.Fatalf("diagnostic span is empty")
			}
		}
	}
	if !found {
		t.Fatalf("expected %s diagnostic", diag.EvalUnboundVariable.ID())
	}
}

func TestEmptyProgram(t *testing.T) {
	res, ok, _ := evalSource(t, "", nil)
	if !ok {
		t.Fatalf("empty program must evaluate")
	}
	if res.HasValue {
		t.Fatalf("empty program must produce no value")
	}
}

func TestMultipleStatementsLastValue(t *testing.T) {
	requireValue(t, "1 + 1 2 + 2 3 + 3", 6)
}
