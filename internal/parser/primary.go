package parser

import (
	"strings"

	"github.com/blueset/calc-sub004/internal/lexer"
	"github.com/blueset/calc-sub004/internal/ptree"
)

// maxUnitPhraseWords bounds how many words a Value's unit phrase may
// absorb. Real unit/currency names run at most a handful of words
// ("hong kong dollar", "pound force"); this cap keeps candidate
// enumeration linear in line length rather than chasing every
// identifier run in a long narrative line.
const maxUnitPhraseWords = 10

// maxPrefixWords bounds a currency prefix before a number ("US$100"),
// which in practice is one or two tokens.
const maxPrefixWords = 2

// isUnitWordToken reports whether t can participate in a unit phrase.
// Besides plain identifiers this includes the degree/prime/double-prime
// marks and Unicode superscript runs ("°", "′", "″", "²"), which the
// lexer tokenizes separately but which join back into the unit's
// spelling via joinWords whenever they sit adjacent to their neighbor
// ("°F", "m²").
func isUnitWordToken(t lexer.Token) bool {
	switch t.Type {
	case lexer.Identifier, lexer.DegreeSign, lexer.PrimeSign, lexer.DoublePrime, lexer.Superscript:
		return true
	}
	return false
}

func (p *Parser) primary(pos int) []candidate {
	if p.done(pos) {
		return nil
	}

	var out []candidate
	out = append(out, p.parenthesized(pos)...)
	out = append(out, p.functionCall(pos)...)
	out = append(out, p.temporalLiteral(pos)...)
	out = append(out, p.composite(pos)...)
	out = append(out, p.value(pos)...)
	out = append(out, p.boolean(pos)...)
	out = append(out, p.bareIdentifier(pos)...)
	return out
}

func (p *Parser) parenthesized(pos int) []candidate {
	if p.done(pos) || p.toks[pos].Type != lexer.LParen {
		return nil
	}
	var out []candidate
	for _, inner := range p.conversion(pos + 1) {
		if p.done(inner.next) || p.toks[inner.next].Type != lexer.RParen {
			continue
		}
		out = append(out, candidate{
			node: inner.node, // parens don't change the tree, only its span recedes
			next: inner.next + 1,
		})
	}
	return out
}

func (p *Parser) functionCall(pos int) []candidate {
	if p.done(pos) || p.toks[pos].Type != lexer.Identifier {
		return nil
	}
	if p.done(pos+1) || p.toks[pos+1].Type != lexer.LParen {
		return nil
	}
	name := p.toks[pos].Text
	argSets := p.argList(pos + 2)
	var out []candidate
	for _, as := range argSets {
		if p.done(as.next) || p.toks[as.next].Type != lexer.RParen {
			continue
		}
		out = append(out, candidate{
			node: &ptree.FunctionCall{
				Sp:   combineSpan(spanOf(p.toks[pos]), spanOf(p.toks[as.next])),
				Name: name, Args: as.args,
			},
			next: as.next + 1,
		})
	}
	return out
}

type argListCandidate struct {
	args []ptree.Node
	next int
}

// argList enumerates candidate comma-separated argument lists. Ambiguity
// across arguments is combined as a full cartesian product: every
// candidate of the first slot is paired with every candidate list of
// the remaining slots.
func (p *Parser) argList(pos int) []argListCandidate {
	if !p.done(pos) && p.toks[pos].Type == lexer.RParen {
		return []argListCandidate{{args: nil, next: pos}}
	}
	var out []argListCandidate
	for _, first := range p.conversion(pos) {
		rest := p.argListTail(first.next)
		for _, r := range rest {
			out = append(out, argListCandidate{
				args: append([]ptree.Node{first.node}, r.args...),
				next: r.next,
			})
		}
	}
	return out
}

func (p *Parser) argListTail(pos int) []argListCandidate {
	if p.done(pos) || p.toks[pos].Type != lexer.Comma {
		return []argListCandidate{{args: nil, next: pos}}
	}
	return p.argList(pos + 1)
}

func (p *Parser) boolean(pos int) []candidate {
	if p.done(pos) || p.toks[pos].Type != lexer.Keyword {
		return nil
	}
	switch p.toks[pos].Value {
	case "true":
		return []candidate{{node: &ptree.Boolean{Sp: spanOf(p.toks[pos]), Value: true}, next: pos + 1}}
	case "false":
		return []candidate{{node: &ptree.Boolean{Sp: spanOf(p.toks[pos]), Value: false}, next: pos + 1}}
	}
	return nil
}

func (p *Parser) bareIdentifier(pos int) []candidate {
	if p.done(pos) || p.toks[pos].Type != lexer.Identifier {
		return nil
	}
	t := p.toks[pos]
	return []candidate{
		{node: &ptree.Variable{Sp: spanOf(t), Name: t.Text}, next: pos + 1},
		{node: &ptree.Constant{Sp: spanOf(t), Name: t.Text}, next: pos + 1},
	}
}

// parseNumberAt reads one numeric primary (optionally suffixed by an
// adjacent '%'/'‰' token) starting at pos.
func (p *Parser) parseNumberAt(pos int) (*ptree.NumberLiteral, int, bool) {
	if p.done(pos) {
		return nil, 0, false
	}
	t := p.toks[pos]
	var kind ptree.NumberKind
	switch t.Type {
	case lexer.Decimal:
		kind = ptree.DecimalNumber
	case lexer.Binary:
		kind = ptree.BinaryNumber
	case lexer.Octal:
		kind = ptree.OctalNumber
	case lexer.Hex:
		kind = ptree.HexNumber
	default:
		return nil, 0, false
	}
	end := pos + 1
	sp := spanOf(t)
	text := t.Text
	if !p.done(end) && (p.toks[end].Type == lexer.Percent || p.toks[end].Type == lexer.Permille) && p.toks[end].Offset == t.EndOffset {
		if p.toks[end].Type == lexer.Percent {
			kind = ptree.PercentNumber
		} else {
			kind = ptree.PermilleNumber
		}
		text += p.toks[end].Text
		sp = combineSpan(sp, spanOf(p.toks[end]))
		end++
	}
	return &ptree.NumberLiteral{Sp: sp, Text: text, Kind: kind}, end, true
}

func (p *Parser) value(pos int) []candidate {
	var out []candidate

	// Currency/unit prefix immediately before the number, e.g. "$100",
	// "US$100", "USD 100".
	for l := 1; l <= maxPrefixWords; l++ {
		if pos+l >= len(p.toks) {
			break
		}
		ok := true
		for k := 0; k < l; k++ {
			if p.toks[pos+k].Type != lexer.Identifier {
				ok = false
				break
			}
		}
		if !ok {
			break
		}
		num, next, ok := p.parseNumberAt(pos + l)
		if !ok {
			continue
		}
		name := joinWords(p.toks[pos : pos+l])
		out = append(out, candidate{
			node: &ptree.Value{
				Sp:     combineSpan(spanOf(p.toks[pos]), num.Sp),
				Number: num,
				Unit:   &ptree.UnitRef{Sp: joinSpan(p.toks[pos : pos+l]), Name: name},
			},
			next: next,
		})
	}

	num, next, ok := p.parseNumberAt(pos)
	if !ok {
		return out
	}
	out = append(out, candidate{node: &ptree.Value{Sp: num.Sp, Number: num}, next: next})

	for _, ph := range p.unitPhrase(next) {
		out = append(out, candidate{
			node: &ptree.Value{
				Sp:     combineSpan(num.Sp, ph.sp),
				Number: num,
				Unit:   &ptree.UnitRef{Sp: ph.sp, Name: ph.name},
			},
			next: ph.next,
		})
	}
	return out
}

type phraseCandidate struct {
	name string
	sp   ptree.Span
	next int
}

// unitPhrase enumerates every prefix-length absorption of the
// identifier run (and optional trailing "per"-clause) starting at pos,
// from a single word up to maxUnitPhraseWords. This is where the
// grammar's "per" ambiguity (derived-unit former vs division) and
// multi-word unit ambiguity both originate: shorter absorptions leave
// the remaining words for an enclosing binary expression, while the
// longest absorption is what lets "pound force person hong kong dollar
// per nautical mile" resolve to one four-term derived unit. The exact
// word segmentation within the absorbed text is left to the AST
// normalizer, which has the reference index to do it correctly.
var namedPowerPrefix = map[string]int{"square": 2, "cubic": 3}
var namedPowerSuffix = map[string]int{"squared": 2, "cubed": 3}

func (p *Parser) unitPhrase(pos int) []phraseCandidate {
	var out []phraseCandidate

	// "square foot"/"cubic meter": a leading keyword names the power;
	// absorb it as the phrase's first word so the normalizer can later
	// strip it and set the unit's exponent.
	n := 0
	cur := pos
	if !p.done(pos) && p.toks[pos].Type == lexer.Keyword {
		if _, ok := namedPowerPrefix[p.toks[pos].Value]; ok {
			cur = pos + 1
			n = 1
		}
	}
	for n < maxUnitPhraseWords && !p.done(cur) && isUnitWordToken(p.toks[cur]) {
		cur++
		n++
		out = append(out, phraseCandidate{
			name: joinWords(p.toks[pos:cur]),
			sp:   joinSpan(p.toks[pos:cur]),
			next: cur,
		})
		// "foot squared"/"meter cubed": a trailing keyword also names
		// the power, only meaningful right after the unit word(s).
		if !p.done(cur) && p.toks[cur].Type == lexer.Keyword {
			if _, ok := namedPowerSuffix[p.toks[cur].Value]; ok {
				out = append(out, phraseCandidate{
					name: joinWords(p.toks[pos : cur+1]),
					sp:   combineSpan(joinSpan(p.toks[pos:cur]), spanOf(p.toks[cur])),
					next: cur + 1,
				})
			}
		}
	}
	if n == 0 {
		return nil
	}
	if !p.isKeyword(cur, "per") {
		return out
	}
	denomStart := cur + 1
	dn := 0
	dcur := denomStart
	for dn < maxUnitPhraseWords && !p.done(dcur) && isUnitWordToken(p.toks[dcur]) {
		dcur++
		dn++
		out = append(out, phraseCandidate{
			name: joinWords(p.toks[pos:cur]) + " per " + joinWords(p.toks[denomStart:dcur]),
			sp:   combineSpan(joinSpan(p.toks[pos:cur]), joinSpan(p.toks[denomStart:dcur])),
			next: dcur,
		})
	}
	return out
}

// composite parses a run of 2+ adjacent (number, single-word-unit)
// pairs, "5 ft 7 in". Whether the units share a dimension is not
// checked here.
func (p *Parser) composite(pos int) []candidate {
	var parts []*ptree.Value
	var ends []int
	cur := pos
	for {
		num, next, ok := p.parseNumberAt(cur)
		if !ok || p.done(next) || !isUnitWordToken(p.toks[next]) {
			break
		}
		parts = append(parts, &ptree.Value{
			Sp:     combineSpan(num.Sp, spanOf(p.toks[next])),
			Number: num,
			Unit:   &ptree.UnitRef{Sp: spanOf(p.toks[next]), Name: p.toks[next].Text},
		})
		cur = next + 1
		ends = append(ends, cur)
	}
	if len(parts) < 2 {
		return nil
	}
	var out []candidate
	for l := 2; l <= len(parts); l++ {
		sp := combineSpan(parts[0].Sp, parts[l-1].Sp)
		out = append(out, candidate{
			node: &ptree.CompositeValue{Sp: sp, Parts: append([]*ptree.Value{}, parts[:l]...)},
			next: ends[l-1],
		})
	}
	return out
}

func joinWords(toks []lexer.Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 && t.Offset > toks[i-1].EndOffset {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

func joinSpan(toks []lexer.Token) ptree.Span {
	sp := spanOf(toks[0])
	for _, t := range toks[1:] {
		sp = combineSpan(sp, spanOf(t))
	}
	return sp
}
