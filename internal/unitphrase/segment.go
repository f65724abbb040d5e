// Package unitphrase segments the raw, space-joined unit phrase text
// the parser absorbs into a Value's UnitRef (internal/ptree) into
// dimension terms, resolving each term against the reference index.
// It is shared by internal/selector (to score candidates by in-database
// ratio) and internal/normalize (to build the evaluation AST's Derived
// unit terms), so the two always agree on what a phrase means.
package unitphrase

import (
	"strings"

	"github.com/blueset/calc-sub004/internal/refdata"
)

// Term is one resolved or unresolved component of a unit phrase.
type Term struct {
	Text     string // the source words that make up this term
	Exponent int     // +1 on the numerator side, -1 after "per"
	Unit     *refdata.Unit
	Currency *refdata.Currency
}

// Resolved reports whether Term matched a reference-table entry.
func (t Term) Resolved() bool { return t.Unit != nil || t.Currency != nil }

// maxTermWords bounds the greedy longest-match window; real multi-word
// unit/currency names in the reference tables run at most a few words
// ("hong kong dollar", "pound force").
const maxTermWords = 4

// Segment splits phrase (as produced by the parser's unit-phrase
// absorption, optionally containing one " per ") into terms, matching
// the longest known unit/currency name at each position before
// falling back to a single unresolved (user-defined dimension) word.
func Segment(idx *refdata.Index, phrase string) []Term {
	num, den := splitPer(phrase)
	terms := segmentSide(idx, num, 1)
	terms = append(terms, segmentSide(idx, den, -1)...)
	return terms
}

func splitPer(phrase string) (num, den string) {
	if i := strings.Index(phrase, " per "); i >= 0 {
		return phrase[:i], phrase[i+len(" per "):]
	}
	return phrase, ""
}

func segmentSide(idx *refdata.Index, side string, exponent int) []Term {
	words := strings.Fields(side)
	var terms []Term
	i := 0
	for i < len(words) {
		maxLen := len(words) - i
		if maxLen > maxTermWords {
			maxLen = maxTermWords
		}
		matched := false
		for l := maxLen; l >= 1; l-- {
			text := strings.Join(words[i:i+l], " ")
			if u, ok := resolveUnit(idx, text); ok {
				terms = append(terms, Term{Text: text, Exponent: exponent, Unit: u})
				i += l
				matched = true
				break
			}
			if c, ok := resolveCurrency(idx, text); ok {
				terms = append(terms, Term{Text: text, Exponent: exponent, Currency: c})
				i += l
				matched = true
				break
			}
		}
		if !matched {
			terms = append(terms, Term{Text: words[i], Exponent: exponent})
			i++
		}
	}
	return terms
}

func resolveUnit(idx *refdata.Index, name string) (*refdata.Unit, bool) {
	if u, ok := idx.Units.ExactMatch(name); ok {
		return u, true
	}
	return idx.Units.BestSimilarMatch(name)
}

func resolveCurrency(idx *refdata.Index, name string) (*refdata.Currency, bool) {
	if c, ok := idx.Currencies.ByCode(strings.ToUpper(name)); ok {
		return c, true
	}
	return idx.Currencies.ByName(name)
}
