// Package rates holds the runtime-installed currency exchange rate
// snapshot the evaluator consults for currency-to-currency conversion.
// Rates are external input (§6.2): an editor or caller installs a
// snapshot before or between document evaluations; the core never
// fetches rates itself.
package rates

import "strings"

// Table is an immutable snapshot of exchange rates relative to a base
// currency. Readers always observe the most recently installed
// snapshot; installing a new Table is the only mutation.
type Table struct {
	base      string
	timestamp int64
	toBase    map[string]float64 // code -> units of base per one unit of code
}

// Empty is the zero snapshot: no rates loaded, every Convert call
// fails with CurrencyNoRate.
func Empty() *Table {
	return &Table{toBase: map[string]float64{}}
}

// Data is the shape external callers load, matching §6.2's two
// accepted wire forms.
type Data struct {
	BaseCurrency string
	Timestamp    int64
	// Rates is FROM_TO -> rate, e.g. "USD_EUR": 0.92.
	Rates map[string]float64
	// Nested is base -> code -> rate, used instead of Rates when the
	// source data is already grouped by base.
	Nested map[string]map[string]float64
}

// Load builds a Table from the wire data. When Nested is present it
// takes priority; FromBase/toBase rates are both reduced to "units of
// BaseCurrency per one unit of code" internally, so this is the only
// place in the package a rate is inverted.
func Load(d Data) *Table {
	t := &Table{base: d.BaseCurrency, timestamp: d.Timestamp, toBase: map[string]float64{}}
	t.toBase[d.BaseCurrency] = 1
	if len(d.Nested) > 0 {
		for base, codes := range d.Nested {
			if base != d.BaseCurrency {
				continue
			}
			for code, rate := range codes {
				if rate != 0 {
					t.toBase[code] = 1 / rate
				}
			}
		}
		return t
	}
	for pair, rate := range d.Rates {
		from, to, ok := strings.Cut(pair, "_")
		if !ok || rate == 0 {
			continue
		}
		if from == d.BaseCurrency {
			t.toBase[to] = 1 / rate
		} else if to == d.BaseCurrency {
			t.toBase[from] = rate
		}
	}
	return t
}

// Convert converts amount from one currency code to another. ok is
// false when either code has no installed rate (CurrencyNoRate at the
// call site).
func (t *Table) Convert(amount float64, from, to string) (float64, bool) {
	if from == to {
		return amount, true
	}
	fromRate, ok := t.toBase[from]
	if !ok {
		return 0, false
	}
	toRate, ok := t.toBase[to]
	if !ok {
		return 0, false
	}
	return amount * fromRate / toRate, true
}
