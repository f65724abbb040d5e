package normalize

import (
	"strings"

	"github.com/blueset/calc-sub004/internal/evalast"
	"github.com/blueset/calc-sub004/internal/refdata"
	"github.com/blueset/calc-sub004/internal/unitphrase"
)

// resolveSimple resolves one already-segmented word or multi-word name
// to a UnitRef, implementing §4.6's resolution order: (a) exact
// case-sensitive unit spelling, (b) exact currency code or name, (c)
// currency symbol (unambiguous or synthetic ambiguous dimension), (d)
// case-insensitive unit similarity match. Anything left over becomes a
// user-defined dimension — unknown unit names are never an error by
// themselves, only unknown variables are.
func resolveSimple(idx *refdata.Index, name string) evalast.UnitRef {
	if u, ok := idx.Units.ExactMatch(name); ok {
		return evalast.UnitRef{Kind: evalast.KindUnit, ID: u.ID, Dimension: u.Dimension}
	}
	if c, ok := idx.Currencies.ByCode(strings.ToUpper(name)); ok {
		return evalast.UnitRef{Kind: evalast.KindCurrency, ID: c.Code, Dimension: "currency"}
	}
	if c, ok := idx.Currencies.ByName(name); ok {
		return evalast.UnitRef{Kind: evalast.KindCurrency, ID: c.Code, Dimension: "currency"}
	}
	if cur, amb := idx.Currencies.ResolveSymbol(name); cur != nil {
		return evalast.UnitRef{Kind: evalast.KindCurrency, ID: cur.Code, Dimension: "currency"}
	} else if amb != nil {
		return evalast.UnitRef{Kind: evalast.KindAmbiguousCurrency, ID: amb.Dimension, Dimension: amb.Dimension}
	}
	if u, ok := idx.Units.BestSimilarMatch(name); ok {
		return evalast.UnitRef{Kind: evalast.KindUnit, ID: u.ID, Dimension: u.Dimension}
	}
	return evalast.UnitRef{Kind: evalast.KindUserDefined, ID: name, Dimension: name}
}

// namedPowerPrefixes/Suffixes rewrite the spelled-out power forms
// ("square foot", "foot squared", "cubic meter", "meter cubed") into an
// exponent applied to the single resulting term, per §4.6.
var namedPowerPrefixes = map[string]int{"square ": 2, "cubic ": 3}
var namedPowerSuffixes = map[string]int{" squared": 2, " cubed": 3}

func stripNamedPower(s string) (string, int) {
	lower := strings.ToLower(s)
	for prefix, exp := range namedPowerPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return s[len(prefix):], exp
		}
	}
	for suffix, exp := range namedPowerSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return s[:len(s)-len(suffix)], exp
		}
	}
	return s, 1
}

var superscriptDigits = map[rune]int{
	'⁰': 0, '¹': 1, '²': 2, '³': 3, '⁴': 4, '⁵': 5, '⁶': 6, '⁷': 7, '⁸': 8, '⁹': 9,
}

// stripSuperscript splits a trailing run of Unicode superscript digits
// (optionally preceded by '⁻') off a unit token, returning the base
// spelling and the signed exponent it names ("m²" -> "m", 2; "s⁻¹" ->
// "s", -1). ok is false when there is no trailing superscript run.
func stripSuperscript(s string) (base string, exp int, ok bool) {
	runes := []rune(s)
	i := len(runes)
	for i > 0 {
		r := runes[i-1]
		if _, isDigit := superscriptDigits[r]; isDigit || r == '⁻' {
			i--
			continue
		}
		break
	}
	if i == len(runes) || i == 0 {
		return s, 1, false
	}
	sup := runes[i:]
	neg := false
	j := 0
	if sup[0] == '⁻' {
		neg, j = true, 1
	}
	if j == len(sup) {
		return s, 1, false
	}
	val := 0
	for ; j < len(sup); j++ {
		d, isDigit := superscriptDigits[sup[j]]
		if !isDigit {
			return s, 1, false
		}
		val = val*10 + d
	}
	if neg {
		val = -val
	}
	return string(runes[:i]), val, true
}

// normalizeUnitPhrase turns the parser's raw, possibly multi-word,
// possibly "X per Y" unit phrase text into a list of resolved terms, in
// the order the phrase spells them, applying any named-power rewrite and superscript exponents
// along the way.
func normalizeUnitPhrase(idx *refdata.Index, raw string) []evalast.Term {
	stripped, namedExp := stripNamedPower(raw)
	segs := unitphrase.Segment(idx, stripped)
	terms := make([]evalast.Term, 0, len(segs))
	for _, seg := range segs {
		text := seg.Text
		exp := seg.Exponent
		if base, supExp, ok := stripSuperscript(text); ok {
			text = base
			if seg.Exponent < 0 && supExp > 0 {
				exp = -supExp
			} else {
				exp = supExp
			}
		}
		if namedExp != 1 && len(segs) == 1 {
			exp *= namedExp
		}
		ref := resolveSimple(idx, text)
		terms = append(terms, evalast.Term{Unit: ref, Exponent: exp})
	}
	return terms
}

// collapseTerms builds a NumberNode when terms reduces to a single
// unit with exponent 1, and a DerivedNode otherwise, matching §3.4's
// invariant that Number stays dimensionally pure.
func collapseTerms(x float64, sp evalast.Span, terms []evalast.Term) evalast.Node {
	if len(terms) == 1 && terms[0].Exponent == 1 {
		u := terms[0].Unit
		return &evalast.NumberNode{Sp: sp, X: x, Unit: &u}
	}
	sorted := append([]evalast.Term{}, terms...)
	sortTerms(sorted)
	return &evalast.DerivedNode{Sp: sp, X: x, Terms: sorted}
}

func sortTerms(terms []evalast.Term) {
	for i := 1; i < len(terms); i++ {
		for j := i; j > 0 && terms[j-1].Unit.ID > terms[j].Unit.ID; j-- {
			terms[j-1], terms[j] = terms[j], terms[j-1]
		}
	}
}
