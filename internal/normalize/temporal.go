package normalize

import (
	"strconv"
	"strings"

	"github.com/blueset/calc-sub004/internal/evalast"
	"github.com/blueset/calc-sub004/internal/ptree"
	"github.com/blueset/calc-sub004/internal/refdata"
)

var monthNumbers = map[string]int{
	"jan": 1, "january": 1, "feb": 2, "february": 2,
	"mar": 3, "march": 3, "apr": 4, "april": 4,
	"may": 5, "jun": 6, "june": 6, "jul": 7, "july": 7,
	"aug": 8, "august": 8, "sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10, "nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

func (z *normalizer) dateLiteral(n *ptree.DateLiteral) (evalast.Node, *Error) {
	m, ok := monthNumbers[strings.ToLower(n.Month)]
	if !ok {
		return nil, &Error{Message: "unknown month " + strconv.Quote(n.Month), Start: n.Sp.Start, End: n.Sp.End, Column: n.Sp.Column}
	}
	day, _ := strconv.Atoi(n.Day)
	out := &evalast.DateLiteralNode{Sp: span(n.Sp), M: m, D: day}
	if n.Year != nil {
		y, _ := strconv.Atoi(*n.Year)
		out.Y = y
		out.HasYear = true
	}
	return out, nil
}

func (z *normalizer) plainTimeToken(n *ptree.PlainTimeToken) (evalast.Node, *Error) {
	h, mi, s, ms := parseHMS(n.Text)
	return &evalast.PlainTimeNode{Sp: span(n.Sp), H: h, Min: mi, S: s, Ms: ms}, nil
}

// parseHMS parses the lexer's HH(:MM(:SS)?) plain-time token text.
func parseHMS(text string) (h, m, s, ms int) {
	parts := strings.Split(text, ":")
	h, _ = strconv.Atoi(parts[0])
	if len(parts) > 1 {
		m, _ = strconv.Atoi(parts[1])
	}
	if len(parts) > 2 {
		secParts := strings.SplitN(parts[2], ".", 2)
		s, _ = strconv.Atoi(secParts[0])
		if len(secParts) > 1 {
			fracStr := (secParts[1] + "000")[:3]
			ms, _ = strconv.Atoi(fracStr)
		}
	}
	return
}

func (z *normalizer) timeLiteral(n *ptree.TimeLiteral) (evalast.Node, *Error) {
	h, _ := strconv.Atoi(n.Hour)
	mi, _ := strconv.Atoi(n.Minute)
	s := 0
	if n.Second != nil {
		s, _ = strconv.Atoi(*n.Second)
	}
	if n.Period != nil {
		h = applyPeriod(h, *n.Period)
	}
	out := &evalast.TimeLiteralNode{Sp: span(n.Sp), H: h, Min: mi, S: s}
	if n.Offset != nil {
		out.Zone = formatUTCOffset(n.Offset)
		out.HasZone = true
	} else if n.Zone != "" {
		out.Zone = resolveTimezoneName(z.idx, n.Zone)
		out.HasZone = true
	}
	return out, nil
}

func applyPeriod(h int, period string) int {
	p := strings.ToUpper(period)
	if p == "AM" {
		if h == 12 {
			return 0
		}
		return h
	}
	// PM
	if h == 12 {
		return 12
	}
	return h + 12
}

// formatUTCOffset renders a fixed offset as "UTC+5:30"/"UTC-7", the
// form internal/temporal's zone resolver recognizes without an IANA
// lookup.
func formatUTCOffset(o *ptree.UTCOffset) string {
	if o.Minutes != nil {
		return "UTC" + o.Sign + o.Hours + ":" + *o.Minutes
	}
	return "UTC" + o.Sign + o.Hours
}

func (z *normalizer) relativeLiteral(n *ptree.RelativeLiteral) (evalast.Node, *Error) {
	var kind evalast.RelativeKind
	switch n.Keyword {
	case "now":
		kind = evalast.RelativeNow
	case "today":
		kind = evalast.RelativeToday
	case "yesterday":
		kind = evalast.RelativeYesterday
	case "tomorrow":
		kind = evalast.RelativeTomorrow
	}
	return &evalast.RelativeNode{Sp: span(n.Sp), Kind: kind}, nil
}

func (z *normalizer) relativeOffsetLiteral(n *ptree.RelativeOffsetLiteral) (evalast.Node, *Error) {
	amount, err := z.normalize(n.Amount)
	if err != nil {
		return nil, err
	}
	return &evalast.RelativeOffsetNode{
		Sp: span(n.Sp), Amount: amount, Unit: normalizeDurationUnit(n.Unit), Ago: n.Direction == "ago",
	}, nil
}

func normalizeDurationUnit(raw string) string {
	return strings.TrimSuffix(strings.ToLower(raw), "s")
}

func (z *normalizer) unixLiteral(n *ptree.UnixLiteral) (evalast.Node, *Error) {
	amount, err := z.normalize(n.Amount)
	if err != nil {
		return nil, err
	}
	return &evalast.UnixNode{Sp: span(n.Sp), Amount: amount}, nil
}

// resolveTimezoneName resolves a display/alias timezone name to its
// IANA id, leaving already-canonical IANA names unchanged.
func resolveTimezoneName(idx *refdata.Index, name string) string {
	if iana, ok := idx.Timezones.Resolve(name); ok {
		return iana
	}
	return name
}
