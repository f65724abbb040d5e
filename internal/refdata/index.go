package refdata

// Index bundles every reference table the core consumes. It is built once
// and shared by reference across any number of concurrently running
// calculators; nothing in it is mutated after construction.
type Index struct {
	Units      *UnitIndex
	Currencies *CurrencyIndex
	Timezones  *TimezoneIndex
	Constants  *ConstantIndex
}

// DefaultIndex builds the reference index from the built-in tables. A real
// deployment loads units.json/currencies.json/timezones.json (see
// internal/refdata/load.go); the built-in tables cover the units,
// currencies, and zones spec.md's scenarios exercise.
func DefaultIndex() *Index {
	return &Index{
		Units:      NewUnitIndex(BuiltinUnits(), BuiltinDimensions()),
		Currencies: NewCurrencyIndex(BuiltinCurrencies(), BuiltinAmbiguousSymbols()),
		Timezones:  NewTimezoneIndex(BuiltinTimezoneAliases()),
		Constants:  NewConstantIndex(BuiltinConstants()),
	}
}
