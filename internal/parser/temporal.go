package parser

import (
	"github.com/blueset/calc-sub004/internal/lexer"
	"github.com/blueset/calc-sub004/internal/ptree"
)

var monthNames = map[string]bool{
	"jan": true, "january": true, "feb": true, "february": true,
	"mar": true, "march": true, "apr": true, "april": true,
	"may": true, "jun": true, "june": true, "jul": true, "july": true,
	"aug": true, "august": true, "sep": true, "sept": true, "september": true,
	"oct": true, "october": true, "nov": true, "november": true,
	"dec": true, "december": true,
}

var durationUnitWords = map[string]bool{
	"second": true, "seconds": true, "minute": true, "minutes": true,
	"hour": true, "hours": true, "day": true, "days": true,
	"week": true, "weeks": true, "month": true, "months": true,
	"year": true, "years": true,
}

func (p *Parser) temporalLiteral(pos int) []candidate {
	var out []candidate
	out = append(out, p.plainTimeToken(pos)...)
	out = append(out, p.relativeKeyword(pos)...)
	out = append(out, p.dateLiteral(pos)...)
	out = append(out, p.relativeOffset(pos)...)
	out = append(out, p.unixLiteral(pos)...)
	return out
}

func (p *Parser) plainTimeToken(pos int) []candidate {
	if p.done(pos) || p.toks[pos].Type != lexer.PlainTime {
		return nil
	}
	t := p.toks[pos]
	return []candidate{{node: &ptree.PlainTimeToken{Sp: spanOf(t), Text: t.Text}, next: pos + 1}}
}

func (p *Parser) relativeKeyword(pos int) []candidate {
	if p.done(pos) || p.toks[pos].Type != lexer.Keyword {
		return nil
	}
	switch p.toks[pos].Value {
	case "now", "today", "yesterday", "tomorrow":
		t := p.toks[pos]
		return []candidate{{node: &ptree.RelativeLiteral{Sp: spanOf(t), Keyword: t.Value}, next: pos + 1}}
	}
	return nil
}

// dateLiteral recognizes "Month Day" or "Month Day Year", e.g.
// "Dec 25" or "Dec 25 2024".
func (p *Parser) dateLiteral(pos int) []candidate {
	if p.done(pos) || p.toks[pos].Type != lexer.Identifier {
		return nil
	}
	month := p.toks[pos]
	if !monthNames[lowerASCII(month.Text)] {
		return nil
	}
	day, next, ok := p.parseNumberAt(pos + 1)
	if !ok {
		return nil
	}
	sp := combineSpan(spanOf(month), day.Sp)
	out := []candidate{{node: &ptree.DateLiteral{Sp: sp, Month: month.Text, Day: day.Text}, next: next}}

	if year, next2, ok := p.parseNumberAt(next); ok {
		yr := year.Text
		sp2 := combineSpan(sp, year.Sp)
		out = append(out, candidate{
			node: &ptree.DateLiteral{Sp: sp2, Month: month.Text, Day: day.Text, Year: &yr},
			next: next2,
		})
	}
	return out
}

// relativeOffset recognizes "N unit ago" and "N unit from now".
func (p *Parser) relativeOffset(pos int) []candidate {
	num, next, ok := p.parseNumberAt(pos)
	if !ok {
		return nil
	}
	if p.done(next) || p.toks[next].Type != lexer.Identifier || !durationUnitWords[lowerASCII(p.toks[next].Text)] {
		return nil
	}
	unit := p.toks[next].Text
	var out []candidate
	if p.isKeyword(next+1, "ago") {
		sp := combineSpan(num.Sp, spanOf(p.toks[next+1]))
		out = append(out, candidate{
			node: &ptree.RelativeOffsetLiteral{Sp: sp, Amount: &ptree.Value{Sp: num.Sp, Number: num}, Unit: unit, Direction: "ago"},
			next: next + 2,
		})
	}
	if p.isKeyword(next+1, "from") && p.isKeyword(next+2, "now") {
		sp := combineSpan(num.Sp, spanOf(p.toks[next+2]))
		out = append(out, candidate{
			node: &ptree.RelativeOffsetLiteral{Sp: sp, Amount: &ptree.Value{Sp: num.Sp, Number: num}, Unit: unit, Direction: "from-now"},
			next: next + 3,
		})
	}
	return out
}

// unixLiteral recognizes "N unix" (epoch seconds instant literal).
func (p *Parser) unixLiteral(pos int) []candidate {
	num, next, ok := p.parseNumberAt(pos)
	if !ok || !p.isKeyword(next, "unix") {
		return nil
	}
	sp := combineSpan(num.Sp, spanOf(p.toks[next]))
	return []candidate{{
		node: &ptree.UnixLiteral{Sp: sp, Amount: &ptree.Value{Sp: num.Sp, Number: num}},
		next: next + 1,
	}}
}
