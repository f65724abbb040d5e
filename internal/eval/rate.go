package eval

import (
	"github.com/blueset/calc-sub004/internal/value"
)

// Rate is a value.Derived specialized to exactly one denominator term
// in the "time" dimension, e.g. "100 MB/s" or "$0.10/hour". It isn't a
// distinct runtime representation — any such Derived already is one —
// this type just names the shape so Accumulate has somewhere to live.
type Rate value.Derived

// asRate reports whether v has a rate's shape: a single term with
// exponent -1 whose unit belongs to the time dimension, alongside
// whatever numerator terms (or none, for a bare coefficient) remain.
func asRate(ev *evaluator, v value.Value) (Rate, bool) {
	d, ok := v.(value.Derived)
	if !ok {
		return Rate{}, false
	}
	denomSeen := false
	for _, t := range d.Terms {
		if t.Exponent >= 0 {
			continue
		}
		if denomSeen || t.Exponent != -1 || dimensionOf(ev.env.Idx, t.Unit) != "time" {
			return Rate{}, false
		}
		denomSeen = true
	}
	if !denomSeen {
		return Rate{}, false
	}
	return Rate(d), true
}

// Accumulate multiplies a rate by a duration (rate × duration →
// quantity), converting the duration into the rate's own denominator
// unit first so "100 MB/s * 10 minutes" cancels to a plain byte
// quantity instead of leaving a byte·minute/second Derived that the
// generic term-merge in mulDiv can't simplify (it only cancels terms
// that already share the exact same unit id).
func (r Rate) Accumulate(ev *evaluator, duration value.Value, sp value.Span) value.Value {
	denomUnit := ""
	denomAt := -1
	for i, t := range r.Terms {
		if t.Exponent == -1 {
			denomUnit, denomAt = t.Unit, i
			break
		}
	}
	dx, dterms, ok := termsOf(duration)
	if !ok || len(dterms) != 1 || dterms[0].Exponent != 1 {
		return value.Errorf(value.DomainError, sp, "a rate can only accumulate over a single time duration")
	}
	converted, errv := convertScalar(ev.env, dx, dterms[0].Unit, denomUnit, sp)
	if errv != nil {
		return errv
	}
	terms := make([]value.Term, 0, len(r.Terms)-1)
	for i, t := range r.Terms {
		if i != denomAt {
			terms = append(terms, t)
		}
	}
	return buildFromTerms(r.X*converted, terms)
}
