package eval

import (
	"testing"

	"github.com/blueset/calc-sub004/internal/config"
	"github.com/blueset/calc-sub004/internal/evalast"
	"github.com/blueset/calc-sub004/internal/rates"
	"github.com/blueset/calc-sub004/internal/refdata"
	"github.com/blueset/calc-sub004/internal/value"
)

func testEnv() *Env {
	return New(refdata.DefaultIndex(), rates.Empty(), config.Default(), Scope{}, value.Instant{EpochMs: 0})
}

func num(x float64) *evalast.NumberNode { return &evalast.NumberNode{X: x} }

func unitNum(x float64, unit string) *evalast.NumberNode {
	return &evalast.NumberNode{X: x, Unit: &evalast.UnitRef{Kind: evalast.KindUnit, ID: unit, Dimension: dimensionFor(unit)}}
}

// dimensionFor looks up a reference unit's dimension for test fixtures
// so constructed nodes match what the normalizer would have produced.
func dimensionFor(unit string) string {
	idx := refdata.DefaultIndex()
	if u, ok := idx.Units.ByID(unit); ok {
		return u.Dimension
	}
	return unit
}

func TestArithmetic(t *testing.T) {
	env := testEnv()

	sum, _ := Eval(&evalast.BinaryNode{Op: "+", Left: num(1), Right: num(1)}, env)
	if n, ok := sum.(value.Number); !ok || n.X != 2 {
		t.Errorf("1+1 = %v, want Number(2)", sum)
	}

	div, _ := Eval(&evalast.BinaryNode{Op: "/", Left: num(1), Right: num(0)}, env)
	if e, ok := value.IsError(div); !ok || e.Kind != value.DivisionByZero {
		t.Errorf("1/0 = %v, want DivisionByZero error", div)
	}
}

func TestUnitConversionArithmetic(t *testing.T) {
	env := testEnv()
	// 1 km + 500 m should resolve to 1500 m or 1.5 km depending on which
	// operand is left; the left operand's unit wins.
	result, _ := Eval(&evalast.BinaryNode{Op: "+", Left: unitNum(1, "kilometer"), Right: unitNum(500, "meter")}, env)
	n, ok := result.(value.Number)
	if !ok {
		t.Fatalf("1km+500m = %v, want Number", result)
	}
	if n.Unit != "kilometer" || n.X != 1.5 {
		t.Errorf("1km+500m = %v %s, want 1.5 kilometer", n.X, n.Unit)
	}
}

func TestVariableAssignmentAndLookup(t *testing.T) {
	env := testEnv()
	assigned, _ := Eval(&evalast.VariableAssignmentNode{Name: "x", Value: num(10)}, env)
	if n, ok := assigned.(value.Number); !ok || n.X != 10 {
		t.Fatalf("assignment result = %v, want Number(10)", assigned)
	}
	if _, ok := env.Scope["x"]; !ok {
		t.Fatal("x not bound in scope after assignment")
	}

	looked, _ := Eval(&evalast.VariableNode{Name: "x"}, env)
	if n, ok := looked.(value.Number); !ok || n.X != 10 {
		t.Errorf("lookup x = %v, want Number(10)", looked)
	}

	undef, _ := Eval(&evalast.VariableNode{Name: "never"}, env)
	if e, ok := value.IsError(undef); !ok || e.Kind != value.UnknownVariable {
		t.Errorf("lookup undefined = %v, want UnknownVariable error", undef)
	}
}

func TestConditional(t *testing.T) {
	env := testEnv()
	out, _ := Eval(&evalast.ConditionalNode{
		Cond: &evalast.BooleanNode{B: true},
		Then: num(1),
		Else: num(2),
	}, env)
	if n, ok := out.(value.Number); !ok || n.X != 1 {
		t.Errorf("true ? 1 : 2 = %v, want Number(1)", out)
	}
}

func TestFahrenheitToCelsius(t *testing.T) {
	env := testEnv()
	out, _ := Eval(&evalast.ConversionNode{
		Expr: unitNum(100, "fahrenheit"),
		Op:   evalast.ConvTo,
		Target: &evalast.UnitTarget{
			Units: []evalast.UnitRef{{Kind: evalast.KindUnit, ID: "celsius", Dimension: "temperature"}},
		},
	}, env)
	n, ok := out.(value.Number)
	if !ok {
		t.Fatalf("100 degF to degC = %v, want Number", out)
	}
	if diff := n.X - 37.7778; diff > 1e-3 || diff < -1e-3 {
		t.Errorf("100 degF to degC = %v, want ~37.7778", n.X)
	}
}

func TestSameUnitAffineAdditionErrors(t *testing.T) {
	env := testEnv()
	sum, _ := Eval(&evalast.BinaryNode{Op: "+", Left: unitNum(100, "celsius"), Right: unitNum(50, "celsius")}, env)
	e, ok := value.IsError(sum)
	if !ok || e.Kind != value.DimensionMismatch {
		t.Errorf("100 degC + 50 degC = %v, want DimensionMismatch error", sum)
	}

	diff, _ := Eval(&evalast.BinaryNode{Op: "-", Left: unitNum(100, "celsius"), Right: unitNum(50, "celsius")}, env)
	if n, ok := diff.(value.Number); !ok || n.X != 50 {
		t.Errorf("100 degC - 50 degC = %v, want Number(50) (a delta)", diff)
	}
}

func TestRateAccumulate(t *testing.T) {
	env := testEnv()
	// 100 KiB/s * 10 minutes should accumulate to 60000 KiB, converting
	// the duration into the rate's own denominator (seconds) before
	// cancelling it rather than leaving an unsimplified Derived.
	rate := &evalast.DerivedNode{X: 100, Terms: []evalast.Term{
		{Unit: evalast.UnitRef{Kind: evalast.KindUnit, ID: "kibibyte", Dimension: "data"}, Exponent: 1},
		{Unit: evalast.UnitRef{Kind: evalast.KindUnit, ID: "second", Dimension: "time"}, Exponent: -1},
	}}
	out, _ := Eval(&evalast.BinaryNode{Op: "*", Left: rate, Right: unitNum(10, "minute")}, env)
	n, ok := out.(value.Number)
	if !ok {
		t.Fatalf("100 KiB/s * 10 minutes = %v, want Number", out)
	}
	if n.Unit != "kibibyte" || n.X != 60000 {
		t.Errorf("100 KiB/s * 10 minutes = %v %s, want 60000 kibibyte", n.X, n.Unit)
	}
}

func TestDataSizeBaseMixingHint(t *testing.T) {
	env := testEnv()
	out, hints := Eval(&evalast.BinaryNode{Op: "+", Left: unitNum(1, "kibibyte"), Right: unitNum(1, "kilobyte")}, env)
	if _, ok := value.IsError(out); ok {
		t.Fatalf("1 KiB + 1 kB = %v, want a successful conversion, not an error", out)
	}
	if len(hints) != 1 || hints[0].Kind != value.DataSizeBaseMixing {
		t.Errorf("hints = %v, want one DataSizeBaseMixing hint", hints)
	}
}
