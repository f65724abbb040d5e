package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blueset/calc-sub004/internal/config"
	"github.com/blueset/calc-sub004/internal/refdata"
	"github.com/blueset/calc-sub004/internal/value"
)

func renderPresented(p value.Presented, idx *refdata.Index, s *config.Settings) string {
	n, ok := p.Inner.(value.Number)
	if !ok {
		return Render(p.Inner, idx, s)
	}
	switch p.Format {
	case "binary":
		return renderIntBase(n.X, 2, "0b", false)
	case "octal":
		return renderIntBase(n.X, 8, "0o", false)
	case "hex", "hexadecimal":
		return renderIntBase(n.X, 16, "0x", true)
	case "base":
		return renderIntBase(n.X, p.Base, "", p.Base > 10)
	case "scientific":
		sig := 6
		if p.Arg != nil {
			sig = int(*p.Arg)
		}
		return renderExponential(n.X, sig)
	case "fraction":
		maxDen := 1000
		if p.Arg != nil {
			maxDen = int(*p.Arg)
		}
		return renderFraction(n.X, maxDen)
	case "ordinal":
		return renderOrdinal(n.X)
	}
	return Render(p.Inner, idx, s)
}

func renderIntBase(x float64, base int, prefix string, upper bool) string {
	neg := x < 0
	if neg {
		x = -x
	}
	digits := strconv.FormatInt(int64(x), base)
	if upper {
		digits = strings.ToUpper(digits)
	}
	sign := ""
	if neg {
		sign = "-"
	}
	return sign + prefix + digits
}

// renderFraction approximates x as a continued fraction with
// denominator at most maxDen, the standard Stern-Brocot style
// algorithm: each step ties the convergent's denominator to the
// previous two.
func renderFraction(x float64, maxDen int) string {
	whole := 0
	frac := x
	neg := x < 0
	if neg {
		frac = -frac
	}
	if frac >= 1 {
		whole = int(frac)
		frac -= float64(whole)
	}
	num, den := approximateFraction(frac, maxDen)
	sign := ""
	if neg {
		sign = "-"
	}
	switch {
	case num == 0:
		return fmt.Sprintf("%s%d", sign, whole)
	case whole == 0:
		return fmt.Sprintf("%s%d/%d", sign, num, den)
	default:
		return fmt.Sprintf("%s%d %d/%d", sign, whole, num, den)
	}
}

func approximateFraction(x float64, maxDen int) (num, den int) {
	if x == 0 {
		return 0, 1
	}
	h0, h1 := 0, 1
	k0, k1 := 1, 0
	z := x
	for {
		a := int(z)
		h2 := a*h1 + h0
		k2 := a*k1 + k0
		if k2 > maxDen {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		frac := z - float64(a)
		if frac < 1e-9 {
			break
		}
		z = 1 / frac
	}
	if k1 == 0 {
		return h1, 1
	}
	return h1, k1
}

func renderOrdinal(x float64) string {
	n := int(x)
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		suffix = "th"
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
