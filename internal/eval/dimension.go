package eval

import (
	"github.com/blueset/calc-sub004/internal/refdata"
	"github.com/blueset/calc-sub004/internal/value"
)

// dimensionOf reports the dimension a runtime unit id belongs to. A
// reference-table unit carries its own dimension; a currency code's
// dimension is always "currency"; anything else (a user-defined name,
// or an ambiguous-currency-symbol's synthetic id) is its own dimension
// by construction, since evalast's normalizer set Dimension==ID for
// both of those UnitRef kinds.
func dimensionOf(idx *refdata.Index, id string) string {
	if id == "" {
		return ""
	}
	if u, ok := idx.Units.ByID(id); ok {
		return u.Dimension
	}
	if _, ok := idx.Currencies.ByCode(id); ok {
		return "currency"
	}
	return id
}

// convertScalar converts x from unit fromID to unit toID, both
// dimensionally compatible runtime unit ids. It is the single place
// both arithmetic (+/-) and the conversion operator reduce a quantity
// from one unit to another.
func convertScalar(env *Env, x float64, fromID, toID string, sp value.Span) (float64, value.Value) {
	idx := env.Idx
	if fromID == toID {
		return x, nil
	}
	if fu, ok := idx.Units.ByID(fromID); ok {
		tu, ok2 := idx.Units.ByID(toID)
		if !ok2 {
			return 0, value.Errorf(value.UnknownUnit, sp, "unknown unit %q", toID)
		}
		if fu.Dimension != tu.Dimension {
			return 0, value.Errorf(value.DimensionMismatch, sp, "cannot convert %s to %s", fu.Dimension, tu.Dimension)
		}
		return tu.Conversion.FromBase(fu.Conversion.ToBase(x)), nil
	}
	if _, ok := idx.Currencies.ByCode(fromID); ok {
		if _, ok2 := idx.Currencies.ByCode(toID); !ok2 {
			return 0, value.Errorf(value.UnknownUnit, sp, "unknown currency %q", toID)
		}
		out, ok := env.Rates.Convert(x, fromID, toID)
		if !ok {
			return 0, value.Errorf(value.CurrencyNoRate, sp, "no exchange rate for %s or %s", fromID, toID)
		}
		return out, nil
	}
	// User-defined name or ambiguous-symbol dimension: the dimension IS
	// the id, so fromID != toID here always means incompatible.
	return 0, value.Errorf(value.DimensionMismatch, sp, "cannot convert %s to %s", fromID, toID)
}

// sameDimension reports whether two runtime unit ids (either may be "")
// name the same dimension.
func sameDimension(idx *refdata.Index, a, b string) bool {
	return dimensionOf(idx, a) == dimensionOf(idx, b)
}

// termsOf normalizes any quantity-shaped value into a bare number plus
// its Derived terms, so +,-,*,/,^ can share one representation. A
// Number contributes a single exponent-1 term when it has a unit.
func termsOf(v value.Value) (x float64, terms []value.Term, ok bool) {
	switch t := v.(type) {
	case value.Number:
		if t.Unit == "" {
			return t.X, nil, true
		}
		return t.X, []value.Term{{Unit: t.Unit, Exponent: 1}}, true
	case value.Derived:
		return t.X, t.Terms, true
	}
	return 0, nil, false
}

// buildFromTerms reassembles a bare number and its unit terms into the
// simplest runtime shape: unitless Number, single-unit Number, or
// Derived, dropping any exponent-0 term and sorting for a canonical
// form.
func buildFromTerms(x float64, terms []value.Term) value.Value {
	merged := map[string]int{}
	order := []string{}
	for _, t := range terms {
		if _, seen := merged[t.Unit]; !seen {
			order = append(order, t.Unit)
		}
		merged[t.Unit] += t.Exponent
	}
	out := make([]value.Term, 0, len(order))
	for _, u := range order {
		if e := merged[u]; e != 0 {
			out = append(out, value.Term{Unit: u, Exponent: e})
		}
	}
	sortTerms(out)
	if len(out) == 0 {
		return value.Number{X: x}
	}
	if len(out) == 1 && out[0].Exponent == 1 {
		return value.Number{X: x, Unit: out[0].Unit}
	}
	return value.Derived{X: x, Terms: out}
}

func sortTerms(terms []value.Term) {
	for i := 1; i < len(terms); i++ {
		j := i
		for j > 0 && terms[j-1].Unit > terms[j].Unit {
			terms[j-1], terms[j] = terms[j], terms[j-1]
			j--
		}
	}
}
