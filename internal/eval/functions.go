package eval

import (
	"math"

	"github.com/blueset/calc-sub004/internal/evalast"
	"github.com/blueset/calc-sub004/internal/value"
)

func (ev *evaluator) call(n *evalast.FunctionCallNode) value.Value {
	sp := spanOf(n.Sp)
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v := ev.eval(a)
		if e, ok := value.IsError(v); ok {
			return e
		}
		args[i] = v
	}

	switch n.Name {
	case "sqrt":
		return ev.elementwise1(args, sp, math.Sqrt)
	case "abs":
		return ev.elementwise1(args, sp, math.Abs)
	case "floor":
		return ev.elementwise1(args, sp, math.Floor)
	case "ceil":
		return ev.elementwise1(args, sp, math.Ceil)
	case "trunc":
		return ev.elementwise1(args, sp, math.Trunc)
	case "round":
		return ev.round(args, sp)
	case "min":
		return ev.extremum(args, sp, true)
	case "max":
		return ev.extremum(args, sp, false)
	case "sum":
		return ev.sum(args, sp)
	case "sin", "cos", "tan":
		return ev.trigForward(n.Name, args, sp)
	case "asin", "acos", "atan":
		return ev.trigInverse(n.Name, args, sp)
	}
	return value.Errorf(value.UnknownFunction, sp, "unknown function %q", n.Name)
}

func requireOneNumberLike(args []value.Value, sp value.Span) (value.Value, value.Value) {
	if len(args) != 1 {
		return nil, value.Errorf(value.DomainError, sp, "expected 1 argument, got %d", len(args))
	}
	return args[0], nil
}

// elementwise1 applies f to every numeric field of a quantity-shaped
// value, preserving its unit(s): a Number's magnitude, a Derived's
// coefficient, each Composite part, or each Duration field.
func (ev *evaluator) elementwise1(args []value.Value, sp value.Span, f func(float64) float64) value.Value {
	v, errv := requireOneNumberLike(args, sp)
	if errv != nil {
		return errv
	}
	switch t := v.(type) {
	case value.Number:
		return value.Number{X: f(t.X), Unit: t.Unit}
	case value.Derived:
		return value.Derived{X: f(t.X), Terms: t.Terms}
	case value.Composite:
		parts := make([]value.Component, len(t.Parts))
		for i, p := range t.Parts {
			parts[i] = value.Component{X: f(p.X), Unit: p.Unit}
		}
		return value.Composite{Parts: parts}
	case value.Duration:
		return value.Duration{
			Years: int(f(float64(t.Years))), Months: int(f(float64(t.Months))),
			Weeks: int(f(float64(t.Weeks))), Days: int(f(float64(t.Days))),
			Hours: int(f(float64(t.Hours))), Minutes: int(f(float64(t.Minutes))),
			Seconds: int(f(float64(t.Seconds))), Millis: int(f(float64(t.Millis))),
		}
	}
	return value.Errorf(value.DomainError, sp, "expected a number, got %s", v.TypeName())
}

func (ev *evaluator) round(args []value.Value, sp value.Span) value.Value {
	if len(args) < 1 || len(args) > 2 {
		return value.Errorf(value.DomainError, sp, "round expects 1 or 2 arguments")
	}
	digits := 0
	if len(args) == 2 {
		n, ok := args[1].(value.Number)
		if !ok || n.Unit != "" {
			return value.Errorf(value.DomainError, sp, "round's precision argument must be a dimensionless number")
		}
		digits = int(n.X)
	}
	scale := math.Pow(10, float64(digits))
	return ev.elementwise1(args[:1], sp, func(x float64) float64 {
		return math.Round(x*scale) / scale
	})
}

func (ev *evaluator) sum(args []value.Value, sp value.Span) value.Value {
	if len(args) == 0 {
		return value.Errorf(value.DomainError, sp, "sum expects at least 1 argument")
	}
	acc := args[0]
	for _, a := range args[1:] {
		acc = ev.addSub(acc, a, 1, sp)
		if e, ok := value.IsError(acc); ok {
			return e
		}
	}
	return acc
}

func (ev *evaluator) extremum(args []value.Value, sp value.Span, wantMin bool) value.Value {
	if len(args) == 0 {
		return value.Errorf(value.DomainError, sp, "expected at least 1 argument")
	}
	best := args[0]
	for _, a := range args[1:] {
		c, errv := ev.order(a, best, sp)
		if errv != nil {
			return errv
		}
		if (wantMin && c < 0) || (!wantMin && c > 0) {
			best = a
		}
	}
	return best
}

const degPerRad = 180 / math.Pi

// angleToRadians interprets a trig argument against its own unit
// (degree or radian are separate dimensions here, so the conversion is
// done directly rather than through refdata), or the angleUnit setting
// when the argument is a bare unitless number.
func (ev *evaluator) angleToRadians(v value.Value, sp value.Span) (float64, value.Value) {
	n, ok := v.(value.Number)
	if !ok {
		return 0, value.Errorf(value.DomainError, sp, "expected a number")
	}
	switch n.Unit {
	case "degree":
		return n.X / degPerRad, nil
	case "radian":
		return n.X, nil
	case "":
		if ev.env.Settings.Eval.AngleUnit == "rad" {
			return n.X, nil
		}
		return n.X / degPerRad, nil
	}
	return 0, value.Errorf(value.DimensionMismatch, sp, "expected an angle, got %s", n.Unit)
}

func (ev *evaluator) radiansToAngle(rad float64) value.Value {
	if ev.env.Settings.Eval.AngleUnit == "rad" {
		return value.Number{X: rad, Unit: "radian"}
	}
	return value.Number{X: rad * degPerRad, Unit: "degree"}
}

func (ev *evaluator) trigForward(name string, args []value.Value, sp value.Span) value.Value {
	v, errv := requireOneNumberLike(args, sp)
	if errv != nil {
		return errv
	}
	rad, errv := ev.angleToRadians(v, sp)
	if errv != nil {
		return errv
	}
	switch name {
	case "sin":
		return value.Number{X: math.Sin(rad)}
	case "cos":
		return value.Number{X: math.Cos(rad)}
	case "tan":
		return value.Number{X: math.Tan(rad)}
	}
	return value.Errorf(value.UnknownFunction, sp, "unknown function %q", name)
}

func (ev *evaluator) trigInverse(name string, args []value.Value, sp value.Span) value.Value {
	v, errv := requireOneNumberLike(args, sp)
	if errv != nil {
		return errv
	}
	n, ok := v.(value.Number)
	if !ok || n.Unit != "" {
		return value.Errorf(value.DomainError, sp, "%s expects a dimensionless number", name)
	}
	var rad float64
	switch name {
	case "asin":
		rad = math.Asin(n.X)
	case "acos":
		rad = math.Acos(n.X)
	case "atan":
		rad = math.Atan(n.X)
	default:
		return value.Errorf(value.UnknownFunction, sp, "unknown function %q", name)
	}
	return ev.radiansToAngle(rad)
}
