// Package parser turns one line's token stream into every well-formed
// parse tree the grammar admits (internal/ptree). Ambiguity is resolved
// later by internal/prune and internal/selector; this package only
// enumerates.
//
// The grammar is the fixed operator-precedence cascade described for
// the language: assignment -> conversion -> conditional -> logical-or
// -> logical-and -> bitwise-or -> bitwise-xor -> bitwise-and ->
// comparison -> bit-shift -> additive -> multiplicative -> unary prefix
// -> power -> postfix factorial -> primary. Each level is implemented
// as a function from a token position to every candidate parse
// starting there, paired with the position just past it; candidates
// fan out wherever the grammar is genuinely ambiguous (adjacent
// `number identifier`, multi-word unit names, `per` as derived-unit
// former vs division) and are combined by straightforward cartesian
// product across binary operators.
package parser

import (
	"github.com/blueset/calc-sub004/internal/lexer"
	"github.com/blueset/calc-sub004/internal/ptree"
)

// candidate pairs a parsed node with the token index just past it.
type candidate struct {
	node ptree.Node
	next int
}

// levelFunc is the signature shared by every precedence-level parser.
type levelFunc func(pos int) []candidate

// Parser enumerates parse trees over a fixed token slice.
type Parser struct {
	toks []lexer.Token
}

// New builds a Parser over a line's tokens (as produced by lexer.Lex;
// lexer errors should already have been surfaced before parsing).
func New(toks []lexer.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse returns every parse tree that accounts for the entire token
// stream. An empty result (with a non-nil Error) means the grammar has
// no derivation covering the line.
func (p *Parser) Parse() ([]ptree.Node, *Error) {
	if len(p.toks) == 0 {
		return []ptree.Node{&ptree.Null{}}, nil
	}
	cands := p.assignment(0)
	var out []ptree.Node
	for _, c := range cands {
		if c.next == len(p.toks) {
			out = append(out, c.node)
		}
	}
	if len(out) == 0 {
		last := p.toks[len(p.toks)-1]
		return nil, errAt(last.Offset, last.Column, "no grammar derivation covers this line")
	}
	return dedup(out), nil
}

// dedup removes structurally identical candidates (different
// enumeration paths sometimes land on the same tree, e.g. a
// single-word unit phrase parsed as both a 1-term and a "whole run"
// partition). Equality is checked via String(), which is a faithful
// structural fingerprint for this closed node set.
func dedup(nodes []ptree.Node) []ptree.Node {
	seen := make(map[string]bool, len(nodes))
	out := make([]ptree.Node, 0, len(nodes))
	for _, n := range nodes {
		key := n.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}

func (p *Parser) at(pos int) lexer.Token {
	return p.toks[pos]
}

func (p *Parser) done(pos int) bool {
	return pos >= len(p.toks)
}

func (p *Parser) isKeyword(pos int, word string) bool {
	return !p.done(pos) && p.toks[pos].Type == lexer.Keyword && p.toks[pos].Value == word
}

func spanOf(t lexer.Token) ptree.Span {
	return ptree.Span{Start: t.Offset, End: t.EndOffset, Column: t.Column}
}

func combineSpan(a, b ptree.Span) ptree.Span {
	start, col := a.Start, a.Column
	if b.Start < a.Start {
		start, col = b.Start, b.Column
	}
	end := a.End
	if b.End > end {
		end = b.End
	}
	return ptree.Span{Start: start, End: end, Column: col}
}

// ---- assignment ----

func (p *Parser) assignment(pos int) []candidate {
	out := p.conversion(pos)
	if p.done(pos) || p.toks[pos].Type != lexer.Identifier {
		return out
	}
	if p.done(pos+1) || p.toks[pos+1].Type != lexer.Assign {
		return out
	}
	name := p.toks[pos].Text
	for _, rhs := range p.conversion(pos + 2) {
		out = append(out, candidate{
			node: &ptree.VariableAssignment{
				Sp:    combineSpan(spanOf(p.toks[pos]), rhs.node.Span()),
				Name:  name,
				Value: rhs.node,
			},
			next: rhs.next,
		})
	}
	return out
}

// ---- conversion ----

func (p *Parser) conversion(pos int) []candidate {
	var out []candidate
	for _, base := range p.conditional(pos) {
		out = append(out, p.extendConversion(base)...)
	}
	return out
}

func (p *Parser) extendConversion(base candidate) []candidate {
	op, width, ok := p.matchConvOp(base.next)
	if !ok {
		return []candidate{base}
	}
	var out []candidate
	for _, t := range p.conversionTarget(base.next + width) {
		node := &ptree.Conversion{
			Sp:     combineSpan(base.node.Span(), t.sp),
			Expr:   base.node,
			Op:     op,
			Target: t.target,
		}
		out = append(out, p.extendConversion(candidate{node: node, next: t.next})...)
	}
	return out
}

func (p *Parser) matchConvOp(pos int) (ptree.ConvOp, int, bool) {
	if p.done(pos) {
		return "", 0, false
	}
	t := p.toks[pos]
	if t.Type == lexer.Arrow {
		return ptree.ConvArr, 1, true
	}
	if t.Type != lexer.Keyword {
		return "", 0, false
	}
	switch t.Value {
	case "to":
		return ptree.ConvTo, 1, true
	case "in":
		return ptree.ConvIn, 1, true
	case "as":
		return ptree.ConvAs, 1, true
	}
	return "", 0, false
}

// ---- conditional ----

func (p *Parser) conditional(pos int) []candidate {
	if !p.isKeyword(pos, "if") {
		return p.logicalOr(pos)
	}
	var out []candidate
	for _, cond := range p.logicalOr(pos + 1) {
		if !p.isKeyword(cond.next, "then") {
			continue
		}
		for _, then := range p.logicalOr(cond.next + 1) {
			if !p.isKeyword(then.next, "else") {
				continue
			}
			for _, els := range p.conditional(then.next + 1) {
				node := &ptree.Conditional{
					Sp:   combineSpan(spanOf(p.toks[pos]), els.node.Span()),
					Cond: cond.node, Then: then.node, Else: els.node,
				}
				out = append(out, candidate{node: node, next: els.next})
			}
		}
	}
	return out
}

// ---- generic left-associative binary level ----

func (p *Parser) binaryLevel(pos int, next levelFunc, match func(pos int) (string, int, bool)) []candidate {
	var out []candidate
	for _, left := range next(pos) {
		out = append(out, p.extendBinary(left, next, match)...)
	}
	return out
}

func (p *Parser) extendBinary(left candidate, next levelFunc, match func(pos int) (string, int, bool)) []candidate {
	op, width, ok := match(left.next)
	if !ok {
		return []candidate{left}
	}
	var out []candidate
	for _, right := range next(left.next + width) {
		node := &ptree.Binary{
			Sp: combineSpan(left.node.Span(), right.node.Span()), Op: op,
			Left: left.node, Right: right.node,
		}
		out = append(out, p.extendBinary(candidate{node: node, next: right.next}, next, match)...)
	}
	return out
}

func (p *Parser) logicalOr(pos int) []candidate {
	return p.binaryLevel(pos, p.logicalAnd, func(pos int) (string, int, bool) {
		if !p.done(pos) && p.toks[pos].Type == lexer.OrOr {
			return "||", 1, true
		}
		return "", 0, false
	})
}

func (p *Parser) logicalAnd(pos int) []candidate {
	return p.binaryLevel(pos, p.bitOr, func(pos int) (string, int, bool) {
		if !p.done(pos) && p.toks[pos].Type == lexer.AndAnd {
			return "&&", 1, true
		}
		return "", 0, false
	})
}

func (p *Parser) bitOr(pos int) []candidate {
	return p.binaryLevel(pos, p.bitXor, func(pos int) (string, int, bool) {
		if !p.done(pos) && p.toks[pos].Type == lexer.Pipe {
			return "|", 1, true
		}
		return "", 0, false
	})
}

func (p *Parser) bitXor(pos int) []candidate {
	return p.binaryLevel(pos, p.bitAnd, func(pos int) (string, int, bool) {
		if p.isKeyword(pos, "xor") {
			return "xor", 1, true
		}
		return "", 0, false
	})
}

func (p *Parser) bitAnd(pos int) []candidate {
	return p.binaryLevel(pos, p.comparison, func(pos int) (string, int, bool) {
		if !p.done(pos) && p.toks[pos].Type == lexer.Amp {
			return "&", 1, true
		}
		return "", 0, false
	})
}

func (p *Parser) comparison(pos int) []candidate {
	return p.binaryLevel(pos, p.shift, func(pos int) (string, int, bool) {
		if p.done(pos) {
			return "", 0, false
		}
		switch p.toks[pos].Type {
		case lexer.Lt:
			return "<", 1, true
		case lexer.Le:
			return "<=", 1, true
		case lexer.Gt:
			return ">", 1, true
		case lexer.Ge:
			return ">=", 1, true
		case lexer.EqEq:
			return "==", 1, true
		case lexer.NotEq:
			return "!=", 1, true
		}
		return "", 0, false
	})
}

func (p *Parser) shift(pos int) []candidate {
	return p.binaryLevel(pos, p.additive, func(pos int) (string, int, bool) {
		if p.done(pos) {
			return "", 0, false
		}
		switch p.toks[pos].Type {
		case lexer.Shl:
			return "<<", 1, true
		case lexer.Shr:
			return ">>", 1, true
		}
		return "", 0, false
	})
}

func (p *Parser) additive(pos int) []candidate {
	return p.binaryLevel(pos, p.multiplicative, func(pos int) (string, int, bool) {
		if p.done(pos) {
			return "", 0, false
		}
		switch p.toks[pos].Type {
		case lexer.Plus:
			return "+", 1, true
		case lexer.Minus:
			return "-", 1, true
		}
		return "", 0, false
	})
}

func (p *Parser) multiplicative(pos int) []candidate {
	return p.binaryLevel(pos, p.unary, func(pos int) (string, int, bool) {
		if p.done(pos) {
			return "", 0, false
		}
		switch p.toks[pos].Type {
		case lexer.Star, lexer.Times:
			return "*", 1, true
		case lexer.Slash, lexer.Div:
			return "/", 1, true
		case lexer.Percent:
			return "%", 1, true
		}
		if p.isKeyword(pos, "per") {
			return "per", 1, true
		}
		if p.isKeyword(pos, "mod") {
			return "mod", 1, true
		}
		if p.isKeyword(pos, "of") {
			return "of", 1, true
		}
		return "", 0, false
	})
}

// ---- unary prefix ----

func (p *Parser) unary(pos int) []candidate {
	if p.done(pos) {
		return nil
	}
	var op string
	switch p.toks[pos].Type {
	case lexer.Minus:
		op = "-"
	case lexer.Bang:
		op = "!"
	case lexer.Tilde:
		op = "~"
	default:
		return p.power(pos)
	}
	var out []candidate
	for _, arg := range p.unary(pos + 1) {
		out = append(out, candidate{
			node: &ptree.Unary{Sp: combineSpan(spanOf(p.toks[pos]), arg.node.Span()), Op: op, Arg: arg.node},
			next: arg.next,
		})
	}
	return out
}

// ---- power (right-associative) ----

func (p *Parser) power(pos int) []candidate {
	var out []candidate
	for _, left := range p.postfix(pos) {
		if !p.done(left.next) && p.toks[left.next].Type == lexer.Caret {
			for _, right := range p.power(left.next + 1) {
				out = append(out, candidate{
					node: &ptree.Binary{
						Sp: combineSpan(left.node.Span(), right.node.Span()), Op: "^",
						Left: left.node, Right: right.node,
					},
					next: right.next,
				})
			}
			continue
		}
		out = append(out, left)
	}
	return out
}

// ---- postfix factorial ----

func (p *Parser) postfix(pos int) []candidate {
	var out []candidate
	for _, base := range p.primary(pos) {
		cur := base
		for !p.done(cur.next) && p.toks[cur.next].Type == lexer.Bang {
			cur = candidate{
				node: &ptree.Postfix{Sp: combineSpan(cur.node.Span(), spanOf(p.toks[cur.next])), Op: "!", Arg: cur.node},
				next: cur.next + 1,
			}
		}
		out = append(out, cur)
	}
	return out
}
