package eval

import (
	"math"

	"github.com/blueset/calc-sub004/internal/evalast"
	"github.com/blueset/calc-sub004/internal/refdata"
	"github.com/blueset/calc-sub004/internal/temporal"
	"github.com/blueset/calc-sub004/internal/value"
)

func (ev *evaluator) binary(n *evalast.BinaryNode) value.Value {
	l := ev.eval(n.Left)
	if e, ok := value.IsError(l); ok {
		return e
	}
	r := ev.eval(n.Right)
	if e, ok := value.IsError(r); ok {
		return e
	}
	sp := spanOf(n.Sp)
	switch n.Op {
	case "+":
		return ev.addSub(l, r, 1, sp)
	case "-":
		return ev.addSub(l, r, -1, sp)
	case "*":
		return ev.mulDiv(l, r, false, sp)
	case "/":
		return ev.mulDiv(l, r, true, sp)
	case "per":
		return ev.mulDiv(l, r, true, sp)
	case "%", "mod":
		return ev.modulo(l, r, sp)
	case "^":
		return ev.power(l, r, sp)
	case "<", "<=", ">", ">=", "==", "!=":
		return ev.compare(n.Op, l, r, sp)
	case "&&", "||":
		return ev.logical(n.Op, l, r, sp)
	case "&", "|", "xor", "<<", ">>":
		return ev.bitwise(n.Op, l, r, sp)
	}
	return value.Errorf(value.DomainError, sp, "unsupported operator %q", n.Op)
}

// reduceIfComposite collapses a Composite into a single Number in the
// base unit of its dimension, the representation +,-,*,/ operate on;
// a composite's own invariant is that every part shares one dimension.
func reduceIfComposite(idx *refdata.Index, v value.Value) value.Value {
	c, ok := v.(value.Composite)
	if !ok || len(c.Parts) == 0 {
		return v
	}
	u, ok := idx.Units.ByID(c.Parts[0].Unit)
	if !ok {
		return v
	}
	dim, ok := idx.Units.Dimension(u.Dimension)
	if !ok {
		return v
	}
	base, ok := idx.Units.ByID(dim.BaseUnit)
	if !ok {
		return v
	}
	total := 0.0
	for _, p := range c.Parts {
		pu, ok := idx.Units.ByID(p.Unit)
		if !ok {
			return v
		}
		total += pu.Conversion.ToBase(p.X)
	}
	return value.Number{X: base.Conversion.FromBase(total), Unit: base.ID}
}

func sameTermShape(a, b []value.Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (ev *evaluator) addSub(l, r value.Value, sign float64, sp value.Span) value.Value {
	if tv, handled := ev.temporalAddSub(l, r, sign, sp); handled {
		return tv
	}
	idx := ev.env.Idx
	lc, rc := reduceIfComposite(idx, l), reduceIfComposite(idx, r)
	lx, lterms, lok := termsOf(lc)
	rx, rterms, rok := termsOf(rc)
	if !lok || !rok {
		return value.Errorf(value.DomainError, sp, "cannot add or subtract %s and %s", lc.TypeName(), rc.TypeName())
	}
	switch {
	case len(lterms) == 0 && len(rterms) == 0:
		return value.Number{X: lx + sign*rx}
	case len(lterms) == 1 && len(rterms) == 1:
		fromID, toID := rterms[0].Unit, lterms[0].Unit
		fu, _ := idx.Units.ByID(fromID)
		tu, _ := idx.Units.ByID(toID)
		if fu != nil && tu != nil && (fu.Conversion.Kind == refdata.Affine || tu.Conversion.Kind == refdata.Affine) {
			// Addition is rejected whenever either side has an affine
			// (absolute-scale) unit, including an affine value plus a linear
			// delta such as "20 °C + 5 K". Subtraction is accepted only
			// between two values of the same affine unit.
			if sign > 0 || fromID != toID {
				return value.Errorf(value.DimensionMismatch, sp, "cannot combine %s and %s directly", fromID, toID)
			}
		}
		if fromID != toID && fu != nil && tu != nil && fu.Dimension == "data" && tu.Dimension == "data" {
			fb, fok := refdata.DataSizeBase(fu)
			tb, tok := refdata.DataSizeBase(tu)
			if fok && tok && fb != tb {
				ev.hint(value.DataSizeBaseMixing, sp, "combining a %d-based unit (%s) with a %d-based unit (%s)", fb, fromID, tb, toID)
			}
		}
		converted, errv := convertScalar(ev.env, rx, fromID, toID, sp)
		if errv != nil {
			return errv
		}
		return value.Number{X: lx + sign*converted, Unit: toID}
	case len(lterms) == len(rterms) && sameTermShape(lterms, rterms):
		return value.Derived{X: lx + sign*rx, Terms: append([]value.Term{}, lterms...)}
	default:
		return value.Errorf(value.DimensionMismatch, sp, "incompatible units")
	}
}

func (ev *evaluator) mulDiv(l, r value.Value, divide bool, sp value.Span) value.Value {
	idx := ev.env.Idx
	lc, rc := reduceIfComposite(idx, l), reduceIfComposite(idx, r)

	if !divide {
		if rate, ok := asRate(ev, lc); ok {
			if _, dterms, dok := termsOf(rc); dok && len(dterms) == 1 && dterms[0].Exponent == 1 && dimensionOf(idx, dterms[0].Unit) == "time" {
				return rate.Accumulate(ev, rc, sp)
			}
		}
		if rate, ok := asRate(ev, rc); ok {
			if _, dterms, dok := termsOf(lc); dok && len(dterms) == 1 && dterms[0].Exponent == 1 && dimensionOf(idx, dterms[0].Unit) == "time" {
				return rate.Accumulate(ev, lc, sp)
			}
		}
	}

	lx, lterms, lok := termsOf(lc)
	rx, rterms, rok := termsOf(rc)
	if !lok || !rok {
		return value.Errorf(value.DomainError, sp, "cannot multiply or divide %s and %s", lc.TypeName(), rc.TypeName())
	}
	if divide && rx == 0 {
		return value.Errorf(value.DivisionByZero, sp, "division by zero")
	}
	x := lx * rx
	if divide {
		x = lx / rx
	}
	combined := append([]value.Term{}, lterms...)
	for _, t := range rterms {
		exp := t.Exponent
		if divide {
			exp = -exp
		}
		combined = append(combined, value.Term{Unit: t.Unit, Exponent: exp})
	}
	return buildFromTerms(x, combined)
}

func (ev *evaluator) modulo(l, r value.Value, sp value.Span) value.Value {
	lx, lterms, lok := termsOf(l)
	rx, rterms, rok := termsOf(r)
	if !lok || !rok || len(lterms) != 0 || len(rterms) != 0 {
		return value.Errorf(value.DomainError, sp, "%% requires dimensionless operands")
	}
	if rx == 0 {
		return value.Errorf(value.DivisionByZero, sp, "modulo by zero")
	}
	return value.Number{X: math.Mod(lx, rx)}
}

func (ev *evaluator) power(l, r value.Value, sp value.Span) value.Value {
	rx, rterms, rok := termsOf(r)
	if !rok || len(rterms) != 0 {
		return value.Errorf(value.DomainError, sp, "exponent must be dimensionless")
	}
	lx, lterms, lok := termsOf(l)
	if !lok {
		return value.Errorf(value.DomainError, sp, "cannot raise %s to a power", l.TypeName())
	}
	if len(lterms) == 0 {
		return value.Number{X: math.Pow(lx, rx)}
	}
	if rx != math.Trunc(rx) {
		return value.Errorf(value.DomainError, sp, "a unit's exponent must be a whole number")
	}
	n := int(rx)
	terms := make([]value.Term, len(lterms))
	for i, t := range lterms {
		terms[i] = value.Term{Unit: t.Unit, Exponent: t.Exponent * n}
	}
	return buildFromTerms(math.Pow(lx, rx), terms)
}

func (ev *evaluator) logical(op string, l, r value.Value, sp value.Span) value.Value {
	lb, ok1 := l.(value.Boolean)
	rb, ok2 := r.(value.Boolean)
	if !ok1 || !ok2 {
		return value.Errorf(value.DomainError, sp, "%s requires boolean operands", op)
	}
	if op == "&&" {
		return value.Boolean{B: lb.B && rb.B}
	}
	return value.Boolean{B: lb.B || rb.B}
}

func (ev *evaluator) bitwise(op string, l, r value.Value, sp value.Span) value.Value {
	ln, ok1 := l.(value.Number)
	rn, ok2 := r.(value.Number)
	if !ok1 || !ok2 || ln.Unit != "" || rn.Unit != "" {
		return value.Errorf(value.DomainError, sp, "%s requires dimensionless numbers", op)
	}
	if ln.X != math.Trunc(ln.X) || rn.X != math.Trunc(rn.X) {
		return value.Errorf(value.DomainError, sp, "%s requires whole numbers", op)
	}
	a, b := int64(ln.X), int64(rn.X)
	var out int64
	switch op {
	case "&":
		out = a & b
	case "|":
		out = a | b
	case "xor":
		out = a ^ b
	case "<<":
		out = a << uint64(b)
	case ">>":
		out = a >> uint64(b)
	}
	return value.Number{X: float64(out)}
}

func (ev *evaluator) unary(n *evalast.UnaryNode) value.Value {
	v := ev.eval(n.Arg)
	if e, ok := value.IsError(v); ok {
		return e
	}
	sp := spanOf(n.Sp)
	switch n.Op {
	case "-":
		switch t := v.(type) {
		case value.Number:
			return value.Number{X: -t.X, Unit: t.Unit}
		case value.Derived:
			return value.Derived{X: -t.X, Terms: t.Terms}
		case value.Composite:
			parts := make([]value.Component, len(t.Parts))
			for i, p := range t.Parts {
				parts[i] = value.Component{X: -p.X, Unit: p.Unit}
			}
			return value.Composite{Parts: parts}
		case value.Duration:
			return temporal.NegateDuration(t)
		}
		return value.Errorf(value.DomainError, sp, "cannot negate %s", v.TypeName())
	case "!":
		b, ok := v.(value.Boolean)
		if !ok {
			return value.Errorf(value.DomainError, sp, "! requires a boolean")
		}
		return value.Boolean{B: !b.B}
	case "~":
		num, ok := v.(value.Number)
		if !ok || num.Unit != "" || num.X != math.Trunc(num.X) {
			return value.Errorf(value.DomainError, sp, "~ requires a dimensionless whole number")
		}
		return value.Number{X: float64(^int64(num.X))}
	}
	return value.Errorf(value.DomainError, sp, "unsupported unary operator %q", n.Op)
}

func (ev *evaluator) postfix(n *evalast.PostfixNode) value.Value {
	v := ev.eval(n.Arg)
	if e, ok := value.IsError(v); ok {
		return e
	}
	sp := spanOf(n.Sp)
	if n.Op != "!" {
		return value.Errorf(value.DomainError, sp, "unsupported postfix operator %q", n.Op)
	}
	num, ok := v.(value.Number)
	if !ok || num.Unit != "" || num.X != math.Trunc(num.X) || num.X < 0 {
		return value.Errorf(value.DomainError, sp, "! requires a non-negative whole number")
	}
	result := 1.0
	for i := 2.0; i <= num.X; i++ {
		result *= i
	}
	return value.Number{X: result}
}
