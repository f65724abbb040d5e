// Package format renders a runtime internal/value.Value as the text a
// document line displays: decimal separator, digit grouping, auto or
// fixed precision, unit display style, derived-unit notation, and the
// explicit presentation targets (binary/octal/hex/scientific/fraction/
// ordinal/base-N) a conversion operator may have requested.
package format

import (
	"strconv"
	"strings"

	"github.com/blueset/calc-sub004/internal/config"
	"github.com/blueset/calc-sub004/internal/refdata"
	"github.com/blueset/calc-sub004/internal/value"
)

// Render turns v into display text using idx for unit/currency/zone
// names and s for every presentation preference.
func Render(v value.Value, idx *refdata.Index, s *config.Settings) string {
	switch t := v.(type) {
	case value.Error:
		return "Error: " + t.Msg
	case value.Presented:
		return renderPresented(t, idx, s)
	case value.Boolean:
		return t.String()
	case value.Number:
		return renderNumber(t, idx, s)
	case value.Derived:
		return renderDerived(t, idx, s)
	case value.Composite:
		return renderComposite(t, idx, s)
	case value.PlainDate:
		return renderDate(t, s)
	case value.PlainTime:
		return renderTime(t, s)
	case value.PlainDateTime:
		return renderDateTime(t, s)
	case value.Instant:
		return renderInstant(t, idx, s)
	case value.ZonedDateTime:
		return renderZoned(t, idx, s)
	case value.Duration:
		return renderDuration(t)
	}
	return v.String()
}

func renderNumber(n value.Number, idx *refdata.Index, s *config.Settings) string {
	if n.Unit == "" {
		return renderMagnitude(n.X, s)
	}
	if cur, ok := idx.Currencies.ByCode(n.Unit); ok {
		return renderCurrency(n.X, cur, s)
	}
	mag := renderMagnitude(n.X, s)
	return mag + " " + unitDisplay(idx, n.Unit, n.X, s.Format.UnitStyle)
}

// unitDisplay resolves a runtime unit id to display text. A reference
// unit uses its symbol or singular/plural name; a currency code that
// reached here (unambiguous but with no minor-unit amount path, e.g.
// inside a Derived term) falls back to its code; anything else
// (user-defined name, ambiguous-symbol dimension id) echoes the id.
func unitDisplay(idx *refdata.Index, id string, magnitude float64, style string) string {
	if u, ok := idx.Units.ByID(id); ok {
		if style == "name" {
			if magnitude == 1 || magnitude == -1 {
				return u.DisplayName.Singular
			}
			return u.DisplayName.Plural
		}
		if u.DisplayName.Symbol != "" {
			return u.DisplayName.Symbol
		}
		return u.DisplayName.Singular
	}
	if cur, ok := idx.Currencies.ByCode(id); ok {
		return cur.Code
	}
	return id
}

var superscriptDigits = map[byte]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
}

func superscript(n int) string {
	digits := strconv.Itoa(n)
	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		b.WriteRune(superscriptDigits[digits[i]])
	}
	return b.String()
}

func renderDerived(d value.Derived, idx *refdata.Index, s *config.Settings) string {
	var num, den []string
	for _, t := range d.Terms {
		name := unitDisplay(idx, t.Unit, 1, s.Format.UnitStyle)
		if t.Exponent > 0 {
			if t.Exponent > 1 {
				name += superscript(t.Exponent)
			}
			num = append(num, name)
		} else {
			e := -t.Exponent
			if e > 1 {
				name += superscript(e)
			}
			den = append(den, name)
		}
	}
	numStr := strings.Join(num, " ")
	if numStr == "" {
		numStr = "1"
	}
	var unitStr string
	switch len(den) {
	case 0:
		unitStr = numStr
	case 1:
		unitStr = numStr + "/" + den[0]
	default:
		unitStr = numStr + "/(" + strings.Join(den, " ") + ")"
	}
	return renderMagnitude(d.X, s) + " " + unitStr
}

func renderComposite(c value.Composite, idx *refdata.Index, s *config.Settings) string {
	parts := make([]string, len(c.Parts))
	for i, p := range c.Parts {
		var mag string
		if i == len(c.Parts)-1 {
			mag = renderMagnitude(p.X, s)
		} else {
			mag = strconv.FormatFloat(p.X, 'f', 0, 64)
		}
		parts[i] = mag + " " + unitDisplay(idx, p.Unit, p.X, s.Format.UnitStyle)
	}
	return strings.Join(parts, " ")
}
