package normalize

import (
	"strconv"
	"strings"

	"github.com/blueset/calc-sub004/internal/ptree"
)

// parseNumber converts a lexed numeric literal's exact source text into
// a float64, handling every radix and the percent/permille suffix forms
// the parser fuses onto a decimal literal.
func parseNumber(lit *ptree.NumberLiteral) (float64, *Error) {
	text := lit.Text
	switch lit.Kind {
	case ptree.BinaryNumber, ptree.OctalNumber, ptree.HexNumber:
		return parseRadix(lit)
	case ptree.PercentNumber:
		base := strings.TrimSuffix(text, "%")
		x, err := parseDecimalText(base)
		if err != nil {
			return 0, numErr(lit, text)
		}
		return x / 100, nil
	case ptree.PermilleNumber:
		base := strings.TrimSuffix(text, "‰")
		x, err := parseDecimalText(base)
		if err != nil {
			return 0, numErr(lit, text)
		}
		return x / 1000, nil
	default:
		x, err := parseDecimalText(text)
		if err != nil {
			return 0, numErr(lit, text)
		}
		return x, nil
	}
}

func numErr(lit *ptree.NumberLiteral, text string) *Error {
	sp := lit.Sp
	return &Error{Message: "invalid numeric literal " + strconv.Quote(text), Start: sp.Start, End: sp.End, Column: sp.Column}
}

// parseDecimalText strips the lexer's accepted grouping characters
// (',', '_') before delegating to strconv, since the grammar treats
// "1,000" and "1000" as the same literal.
func parseDecimalText(s string) (float64, error) {
	s = strings.NewReplacer(",", "", "_", "").Replace(s)
	return strconv.ParseFloat(s, 64)
}

func parseRadix(lit *ptree.NumberLiteral) (float64, *Error) {
	text := lit.Text
	var prefix string
	var base int
	switch lit.Kind {
	case ptree.BinaryNumber:
		prefix, base = text[:2], 2
	case ptree.OctalNumber:
		prefix, base = text[:2], 8
	case ptree.HexNumber:
		prefix, base = text[:2], 16
	}
	digits := strings.ReplaceAll(text[len(prefix):], "_", "")
	n, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, numErr(lit, text)
	}
	return float64(n), nil
}
