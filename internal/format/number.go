package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/blueset/calc-sub004/internal/config"
	"github.com/blueset/calc-sub004/internal/refdata"
	"github.com/shopspring/decimal"
)

// renderMagnitude formats a bare float64 per the auto-precision rule:
// exponential past 1e6 or below 1e-4, otherwise 2/4/6 decimals scaled
// by magnitude, unless the settings pin an explicit precision. Zero
// always renders as the bare digit "0".
func renderMagnitude(x float64, s *config.Settings) string {
	if x == 0 {
		return "0"
	}
	prec := s.Format.Precision
	auto := prec < 0
	if auto {
		ax := math.Abs(x)
		switch {
		case ax >= 1e6 || ax < 1e-4:
			return renderExponential(x, 6)
		case ax >= 100:
			prec = 2
		case ax >= 1:
			prec = 4
		default:
			prec = 6
		}
	}
	str := strconv.FormatFloat(x, 'f', prec, 64)
	if auto {
		str = strings.TrimRight(strings.TrimRight(str, "0"), ".")
	}
	return groupAndSeparate(str, s)
}

// renderExponential matches toExponential(sigFigs-1)'s output shape:
// "d.ddddde±N" with no leading zero padding on the exponent.
func renderExponential(x float64, sigFigs int) string {
	str := strconv.FormatFloat(x, 'e', sigFigs-1, 64)
	mantissa, exp, ok := strings.Cut(str, "e")
	if !ok {
		return str
	}
	sign := "+"
	if strings.HasPrefix(exp, "-") {
		sign = "-"
		exp = exp[1:]
	} else if strings.HasPrefix(exp, "+") {
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + sign + exp
}

// groupAndSeparate splits str into integer/fraction parts, inserts
// s.Format.GroupSeparator at the configured cadence within the integer
// part, and rejoins with s.Format.DecimalSeparator.
func groupAndSeparate(str string, s *config.Settings) string {
	neg := strings.HasPrefix(str, "-")
	if neg {
		str = str[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(str, ".")
	intPart = groupDigits(intPart, s.Format.GroupSize, s.Format.GroupSeparator)
	out := intPart
	if hasFrac {
		sep := s.Format.DecimalSeparator
		if sep == "" {
			sep = "."
		}
		out += sep + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

func groupDigits(digits string, size config.GroupSize, sep string) string {
	if sep == "" || size == config.GroupOff || len(digits) <= 3 {
		return digits
	}
	var groups []string
	switch size {
	case config.GroupFour:
		groups = chunkFromRight(digits, 4)
	case config.GroupSouthAsian:
		groups = chunkSouthAsian(digits)
	default:
		groups = chunkFromRight(digits, 3)
	}
	return strings.Join(groups, sep)
}

func chunkFromRight(digits string, n int) []string {
	var groups []string
	for len(digits) > n {
		cut := len(digits) - n
		groups = append([]string{digits[cut:]}, groups...)
		digits = digits[:cut]
	}
	groups = append([]string{digits}, groups...)
	return groups
}

// chunkSouthAsian groups the last three digits together, then groups
// of two working left (1,00,000 style).
func chunkSouthAsian(digits string) []string {
	if len(digits) <= 3 {
		return []string{digits}
	}
	var groups []string
	groups = append(groups, digits[len(digits)-3:])
	digits = digits[:len(digits)-3]
	for len(digits) > 2 {
		cut := len(digits) - 2
		groups = append([]string{digits[cut:]}, groups...)
		digits = digits[:cut]
	}
	if digits != "" {
		groups = append([]string{digits}, groups...)
	}
	return groups
}

// renderCurrency clamps x to the currency's minor-unit precision with
// shopspring/decimal (avoiding float64's binary rounding surprises for
// money) before grouping and attaching the symbol.
func renderCurrency(x float64, cur *refdata.Currency, s *config.Settings) string {
	rounded := decimal.NewFromFloat(x).Round(int32(cur.MinorUnits))
	str := rounded.StringFixed(int32(cur.MinorUnits))
	grouped := groupAndSeparate(str, s)
	symbol := cur.Code
	if len(cur.AdjacentSymbols) > 0 {
		return cur.AdjacentSymbols[0] + grouped
	}
	if len(cur.SpacedSymbols) > 0 {
		symbol = cur.SpacedSymbols[0]
	}
	return grouped + " " + symbol
}
