package refdata

import "strings"

// Constant is a named mathematical or physical constant.
type Constant struct {
	PrimaryName string
	Aliases     []string
	Value       float64
}

// ConstantIndex resolves constant names. Word aliases are matched
// case-insensitively; symbol aliases ("π") are matched case-sensitively
// since case carries meaning for symbols.
type ConstantIndex struct {
	byWord   map[string]*Constant // lowercased word -> constant
	bySymbol map[string]*Constant // exact symbol -> constant
}

// NewConstantIndex builds an index from a constant list.
func NewConstantIndex(constants []*Constant) *ConstantIndex {
	idx := &ConstantIndex{
		byWord:   make(map[string]*Constant),
		bySymbol: make(map[string]*Constant),
	}
	for _, c := range constants {
		names := append([]string{c.PrimaryName}, c.Aliases...)
		for _, n := range names {
			if isSymbolic(n) {
				idx.bySymbol[n] = c
			} else {
				idx.byWord[strings.ToLower(n)] = c
			}
		}
	}
	return idx
}

func isSymbolic(name string) bool {
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return len(name) > 0
}

// Resolve looks a constant up by either word (case-insensitive) or symbol
// (case-sensitive).
func (idx *ConstantIndex) Resolve(name string) (*Constant, bool) {
	if c, ok := idx.bySymbol[name]; ok {
		return c, true
	}
	if c, ok := idx.byWord[strings.ToLower(name)]; ok {
		return c, true
	}
	return nil, false
}

// BuiltinConstants is the default constant table.
func BuiltinConstants() []*Constant {
	return []*Constant{
		{PrimaryName: "pi", Aliases: []string{"π"}, Value: 3.14159265358979323846},
		{PrimaryName: "e", Aliases: []string{}, Value: 2.71828182845904523536},
		{PrimaryName: "tau", Aliases: []string{"τ"}, Value: 6.28318530717958647692},
		{PrimaryName: "phi", Aliases: []string{"φ", "golden ratio"}, Value: 1.61803398874989484820},
		{PrimaryName: "speed of light", Aliases: []string{"c"}, Value: 299792458},
		{PrimaryName: "avogadro", Aliases: []string{"avogadro's number", "avogadro number"}, Value: 6.02214076e23},
	}
}
