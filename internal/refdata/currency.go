package refdata

import (
	"strings"

	"golang.org/x/text/currency"
)

// Currency is a reference entry for an ISO 4217 currency.
type Currency struct {
	Code       string // ISO 4217 code, e.g. "USD"
	MinorUnits int    // number of decimal digits in the minor unit
	Names      []string
	// Symbols adjacent to the amount with no space ("$100") and spaced
	// ("100 EUR") respectively; either may be empty.
	AdjacentSymbols []string
	SpacedSymbols   []string
}

// AmbiguousSymbol is a currency symbol shared by more than one currency
// (e.g. "$" for USD, CAD, AUD, ...). Per spec.md §9 these map to a
// synthetic, non-convertible dimension rather than any single currency.
type AmbiguousSymbol struct {
	Symbol     string
	Dimension  string // synthetic dimension id, e.g. "currency-symbol-$"
	Candidates []string
}

// CurrencyIndex resolves currency codes, names, and symbols.
type CurrencyIndex struct {
	byCode     map[string]*Currency
	byName     map[string]*Currency // lowercased name -> currency
	bySymbol   map[string]*Currency // unambiguous symbol -> currency
	ambiguous  map[string]*AmbiguousSymbol
	insertion  []string
}

// NewCurrencyIndex builds a currency index from unambiguous currencies and
// the list of ambiguous symbols.
func NewCurrencyIndex(currencies []*Currency, ambiguous []*AmbiguousSymbol) *CurrencyIndex {
	idx := &CurrencyIndex{
		byCode:    make(map[string]*Currency, len(currencies)),
		byName:    make(map[string]*Currency),
		bySymbol:  make(map[string]*Currency),
		ambiguous: make(map[string]*AmbiguousSymbol, len(ambiguous)),
	}
	for _, c := range currencies {
		idx.byCode[c.Code] = c
		idx.insertion = append(idx.insertion, c.Code)
		for _, n := range c.Names {
			idx.byName[strings.ToLower(n)] = c
		}
		for _, s := range append(append([]string{}, c.AdjacentSymbols...), c.SpacedSymbols...) {
			idx.bySymbol[s] = c
		}
	}
	for _, a := range ambiguous {
		idx.ambiguous[a.Symbol] = a
	}
	return idx
}

// ByCode resolves an exact ISO 4217 code. Codes outside the curated
// table still resolve if golang.org/x/text/currency recognizes them as
// valid ISO 4217, so e.g. "SEK" works for currency math/display even
// though it has no hand-curated symbol or name entry.
func (idx *CurrencyIndex) ByCode(code string) (*Currency, bool) {
	if c, ok := idx.byCode[code]; ok {
		return c, true
	}
	if ValidISOCode(code) {
		return &Currency{Code: code, MinorUnits: 2}, true
	}
	return nil, false
}

// ValidISOCode reports whether code is a recognized ISO 4217 currency
// code, using golang.org/x/text/currency rather than a hand-maintained
// list. It rejects the special/testing codes (XXX, XTS, XUA, precious
// metals) the same way the ISO 4217 table itself marks them unusable
// for ordinary currency math.
func ValidISOCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return false
	}
	switch code {
	case "XXX", "XTS", "XUA", "XAG", "XAU", "XPD", "XPT":
		return false
	}
	return unit.String() == code
}

// ByName resolves a case-insensitive currency name ("us dollar", "hong kong
// dollar").
func (idx *CurrencyIndex) ByName(name string) (*Currency, bool) {
	c, ok := idx.byName[strings.ToLower(name)]
	return c, ok
}

// ResolveSymbol resolves a currency symbol. If the symbol is unambiguous it
// returns the currency; if ambiguous it returns the synthetic dimension
// descriptor instead.
func (idx *CurrencyIndex) ResolveSymbol(symbol string) (cur *Currency, amb *AmbiguousSymbol) {
	if a, ok := idx.ambiguous[symbol]; ok {
		return nil, a
	}
	if c, ok := idx.bySymbol[symbol]; ok {
		return c, nil
	}
	return nil, nil
}

// BuiltinCurrencies is a small, representative ISO 4217 table.
func BuiltinCurrencies() []*Currency {
	return []*Currency{
		{Code: "USD", MinorUnits: 2, Names: []string{"US dollar", "United States dollar", "dollar"}, AdjacentSymbols: []string{"US$"}},
		{Code: "EUR", MinorUnits: 2, Names: []string{"euro"}, AdjacentSymbols: []string{"€"}},
		{Code: "GBP", MinorUnits: 2, Names: []string{"British pound", "pound sterling"}, AdjacentSymbols: []string{"£"}},
		{Code: "JPY", MinorUnits: 0, Names: []string{"Japanese yen", "yen"}, AdjacentSymbols: []string{"¥"}},
		{Code: "HKD", MinorUnits: 2, Names: []string{"Hong Kong dollar"}, AdjacentSymbols: []string{"HK$"}},
		{Code: "CNY", MinorUnits: 2, Names: []string{"Chinese yuan", "renminbi"}, AdjacentSymbols: []string{"¥"}},
		{Code: "CAD", MinorUnits: 2, Names: []string{"Canadian dollar"}, AdjacentSymbols: []string{"C$"}},
		{Code: "AUD", MinorUnits: 2, Names: []string{"Australian dollar"}, AdjacentSymbols: []string{"A$"}},
		{Code: "KWD", MinorUnits: 3, Names: []string{"Kuwaiti dinar"}},
		{Code: "BHD", MinorUnits: 3, Names: []string{"Bahraini dinar"}},
	}
}

// BuiltinAmbiguousSymbols lists symbols shared by more than one currency.
func BuiltinAmbiguousSymbols() []*AmbiguousSymbol {
	return []*AmbiguousSymbol{
		{Symbol: "$", Dimension: "currency-symbol-$", Candidates: []string{"USD", "CAD", "AUD", "HKD"}},
		{Symbol: "¥", Dimension: "currency-symbol-¥", Candidates: []string{"JPY", "CNY"}},
	}
}
