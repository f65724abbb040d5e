package parser

import (
	"github.com/blueset/calc-sub004/internal/lexer"
	"github.com/blueset/calc-sub004/internal/ptree"
)

// temporalProperties names the identifiers recognized as a
// PropertyTarget ("to year", "to hour"). These are plain identifiers,
// not reserved keywords, since the grammar's fixed keyword alphabet
// has no entry for them.
var temporalProperties = map[string]bool{
	"year": true, "month": true, "day": true, "hour": true,
	"minute": true, "second": true, "week": true, "quarter": true,
	"weekday": true, "dayofyear": true,
}

type targetCandidate struct {
	sp     ptree.Span
	target ptree.ConversionTarget
	next   int
}

func (p *Parser) conversionTarget(pos int) []targetCandidate {
	var out []targetCandidate
	out = append(out, p.baseTarget(pos)...)
	out = append(out, p.formatTarget(pos)...)
	out = append(out, p.propertyTarget(pos)...)
	out = append(out, p.unitTarget(pos)...)
	return out
}

func (p *Parser) baseTarget(pos int) []targetCandidate {
	if !p.isKeyword(pos, "base") {
		return nil
	}
	num, next, ok := p.parseNumberAt(pos + 1)
	if !ok {
		return nil
	}
	sp := combineSpan(spanOf(p.toks[pos]), num.Sp)
	return []targetCandidate{{sp: sp, target: &ptree.BaseTarget{Sp: sp, Base: num}, next: next}}
}

var formatKeywords = map[string]bool{
	"binary": true, "octal": true, "decimal": true, "decimals": true,
	"hexadecimal": true, "scientific": true, "fraction": true, "sigfigs": true,
}

func (p *Parser) formatTarget(pos int) []targetCandidate {
	var out []targetCandidate

	// Bare "to <format>".
	if !p.done(pos) && p.toks[pos].Type == lexer.Keyword && formatKeywords[p.toks[pos].Value] {
		sp := spanOf(p.toks[pos])
		out = append(out, targetCandidate{
			sp: sp, target: &ptree.FormatTarget{Sp: sp, Format: p.toks[pos].Value}, next: pos + 1,
		})
	}

	// "to <N> decimals" / "to <N> sigfigs".
	if num, next, ok := p.parseNumberAt(pos); ok {
		if !p.done(next) && p.toks[next].Type == lexer.Keyword && (p.toks[next].Value == "decimals" || p.toks[next].Value == "sigfigs") {
			sp := combineSpan(num.Sp, spanOf(p.toks[next]))
			out = append(out, targetCandidate{
				sp: sp, target: &ptree.FormatTarget{Sp: sp, Format: p.toks[next].Value, Arg: num}, next: next + 1,
			})
		}
	}
	return out
}

func (p *Parser) propertyTarget(pos int) []targetCandidate {
	if p.done(pos) || p.toks[pos].Type != lexer.Identifier {
		return nil
	}
	name := p.toks[pos].Text
	if !temporalProperties[lowerASCII(name)] {
		return nil
	}
	sp := spanOf(p.toks[pos])
	return []targetCandidate{{sp: sp, target: &ptree.PropertyTarget{Sp: sp, Property: lowerASCII(name)}, next: pos + 1}}
}

// unitTarget covers both a single (possibly multi-word) unit/currency
// target ("to USD", "to hong kong dollar") and a composite
// distribution target naming each component separately ("to ft in").
func (p *Parser) unitTarget(pos int) []targetCandidate {
	if p.done(pos) || p.toks[pos].Type != lexer.Identifier {
		return nil
	}
	end := pos
	for !p.done(end) && p.toks[end].Type == lexer.Identifier && end-pos < maxUnitPhraseWords {
		end++
	}
	run := p.toks[pos:end]

	var out []targetCandidate

	// Whole run as one multi-word unit name.
	whole := joinSpan(run)
	out = append(out, targetCandidate{
		sp:     whole,
		target: &ptree.UnitTarget{Sp: whole, Units: []*ptree.UnitRef{{Sp: whole, Name: joinWords(run)}}},
		next:   end,
	})

	// Every word as its own component (composite distribution target).
	if len(run) > 1 {
		units := make([]*ptree.UnitRef, len(run))
		for i, t := range run {
			units[i] = &ptree.UnitRef{Sp: spanOf(t), Name: t.Text}
		}
		out = append(out, targetCandidate{
			sp:     whole,
			target: &ptree.UnitTarget{Sp: whole, Units: units},
			next:   end,
		})
	}
	return out
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
