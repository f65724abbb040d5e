package refdata

import "encoding/json"

// The wire shapes below mirror spec.md §6.1 exactly: units.json,
// currencies.json, and timezones.json are inputs to the core produced by an
// external data-generation pipeline. JSON is the fixed wire format named by
// the spec, so encoding/json is used directly rather than routing through a
// third-party codec (see DESIGN.md).

type unitsFile struct {
	Dimensions []*Dimension `json:"dimensions"`
	Units      []*jsonUnit  `json:"units"`
}

type jsonUnit struct {
	ID          string      `json:"id"`
	DisplayName DisplayName `json:"displayName"`
	Dimension   string      `json:"dimension"`
	Names       []string    `json:"names"`
	Conversion  struct {
		Kind   string   `json:"kind"`
		Factor float64  `json:"factor"`
		Offset float64  `json:"offset"`
		US     *jsonConv `json:"us"`
		UK     *jsonConv `json:"uk"`
	} `json:"conversion"`
}

type jsonConv struct {
	Kind   string  `json:"kind"`
	Factor float64 `json:"factor"`
	Offset float64 `json:"offset"`
}

func (j *jsonConv) toConversion() *Conversion {
	if j == nil {
		return nil
	}
	kind := Linear
	if j.Kind == "affine" {
		kind = Affine
	}
	return &Conversion{Kind: kind, Factor: j.Factor, Offset: j.Offset}
}

// LoadUnits decodes a units.json payload (spec.md §6.1) into a UnitIndex.
func LoadUnits(data []byte) (*UnitIndex, error) {
	var file unitsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	units := make([]*Unit, 0, len(file.Units))
	for _, ju := range file.Units {
		kind := Linear
		switch ju.Conversion.Kind {
		case "affine":
			kind = Affine
		case "variant":
			kind = Variant
		}
		units = append(units, &Unit{
			ID:          ju.ID,
			DisplayName: ju.DisplayName,
			Dimension:   ju.Dimension,
			Names:       ju.Names,
			Conversion: Conversion{
				Kind:   kind,
				Factor: ju.Conversion.Factor,
				Offset: ju.Conversion.Offset,
				US:     ju.Conversion.US.toConversion(),
				UK:     ju.Conversion.UK.toConversion(),
			},
		})
	}
	return NewUnitIndex(units, file.Dimensions), nil
}

type currenciesFile struct {
	Currencies []*jsonCurrency     `json:"currencies"`
	Ambiguous  []*AmbiguousSymbol `json:"ambiguousSymbols"`
}

type jsonCurrency struct {
	Code            string   `json:"code"`
	MinorUnits      int      `json:"minorUnits"`
	Names           []string `json:"names"`
	AdjacentSymbols []string `json:"adjacentSymbols"`
	SpacedSymbols   []string `json:"spacedSymbols"`
}

// LoadCurrencies decodes a currencies.json payload into a CurrencyIndex.
func LoadCurrencies(data []byte) (*CurrencyIndex, error) {
	var file currenciesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	currencies := make([]*Currency, 0, len(file.Currencies))
	for _, jc := range file.Currencies {
		currencies = append(currencies, &Currency{
			Code:            jc.Code,
			MinorUnits:      jc.MinorUnits,
			Names:           jc.Names,
			AdjacentSymbols: jc.AdjacentSymbols,
			SpacedSymbols:   jc.SpacedSymbols,
		})
	}
	return NewCurrencyIndex(currencies, file.Ambiguous), nil
}

type timezonesFile struct {
	Zones []struct {
		IANA  string `json:"iana"`
		Names []struct {
			Name      string `json:"name"`
			Territory string `json:"territory,omitempty"`
		} `json:"names"`
	} `json:"zones"`
}

// LoadTimezones decodes a timezones.json payload into a TimezoneIndex.
func LoadTimezones(data []byte) (*TimezoneIndex, error) {
	var file timezonesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	aliases := make(map[string]string)
	for _, z := range file.Zones {
		for _, n := range z.Names {
			aliases[n.Name] = z.IANA
		}
	}
	return NewTimezoneIndex(aliases), nil
}
