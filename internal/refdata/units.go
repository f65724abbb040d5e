// Package refdata holds the read-only reference tables the core consumes:
// units, currencies, timezone aliases, and named constants. Everything here
// is immutable once built and safe to share across concurrently running
// calculators.
package refdata

import (
	"math"
	"strings"
)

// ConversionKind distinguishes how a unit relates to its dimension's base
// unit.
type ConversionKind int

const (
	// Linear: base = x * Factor.
	Linear ConversionKind = iota
	// Affine: base = (x + Offset) * Factor. Used for temperatures.
	Affine
	// Variant: {US, UK} each carry their own Linear or Affine conversion,
	// used for units like the gallon that differ by locale.
	Variant
)

// Conversion describes how to turn a quantity in a unit into the
// dimension's base unit and back.
type Conversion struct {
	Kind   ConversionKind
	Factor float64
	Offset float64 // only meaningful for Affine
	US     *Conversion
	UK     *Conversion
}

// ToBase converts a value in this unit to the dimension's base unit.
func (c Conversion) ToBase(x float64) float64 {
	switch c.Kind {
	case Affine:
		return (x + c.Offset) * c.Factor
	case Variant:
		return c.US.ToBase(x)
	default:
		return x * c.Factor
	}
}

// FromBase converts a value in the dimension's base unit into this unit.
func (c Conversion) FromBase(base float64) float64 {
	switch c.Kind {
	case Affine:
		return base/c.Factor - c.Offset
	case Variant:
		return c.US.FromBase(base)
	default:
		return base / c.Factor
	}
}

// DisplayName carries the three textual forms a unit may render as.
type DisplayName struct {
	Symbol   string
	Singular string
	Plural   string
}

// Unit is a single entry in the reference index: an immutable, named,
// dimensioned conversion.
type Unit struct {
	ID          string
	DisplayName DisplayName
	Dimension   string
	Conversion  Conversion
	// Names are every case-sensitive spelling (symbol, singular, plural,
	// and any historical aliases) that resolves to this unit.
	Names []string
}

// Dimension groups units that can be converted to one another. BaseUnit is
// the id of the unit a composite value reduces to. For most dimensions its
// Conversion is the identity; volume's liter and speed's knot carry a
// factor to cubic meters and meters per second.
type Dimension struct {
	Name     string
	BaseUnit string
}

// UnitIndex is the immutable, queryable set of units and dimensions.
type UnitIndex struct {
	units      map[string]*Unit   // id -> unit
	byName     map[string]*Unit   // exact case-sensitive name -> unit
	byFold     map[string][]*Unit // case-insensitive folded name -> candidates, insertion order
	dimensions map[string]*Dimension
	multiword  map[string]bool // every space-joined name that is at least two words
	insertion  []string        // unit ids in table insertion order, for tie-breaking
}

// NewUnitIndex builds an index from a flat unit list.
func NewUnitIndex(units []*Unit, dims []*Dimension) *UnitIndex {
	idx := &UnitIndex{
		units:      make(map[string]*Unit, len(units)),
		byName:     make(map[string]*Unit),
		byFold:     make(map[string][]*Unit),
		dimensions: make(map[string]*Dimension, len(dims)),
		multiword:  make(map[string]bool),
	}
	for _, d := range dims {
		idx.dimensions[d.Name] = d
	}
	for _, u := range units {
		idx.units[u.ID] = u
		idx.insertion = append(idx.insertion, u.ID)
		for _, n := range u.Names {
			idx.byName[n] = u
			folded := strings.ToLower(n)
			idx.byFold[folded] = append(idx.byFold[folded], u)
			if strings.Contains(n, " ") {
				idx.multiword[folded] = true
			}
		}
	}
	return idx
}

// ByID returns the unit with the given canonical id.
func (idx *UnitIndex) ByID(id string) (*Unit, bool) {
	u, ok := idx.units[id]
	return u, ok
}

// ExactMatch resolves a unit by exact, case-sensitive spelling.
func (idx *UnitIndex) ExactMatch(name string) (*Unit, bool) {
	u, ok := idx.byName[name]
	return u, ok
}

// SimilarMatches returns every unit whose table has a case-insensitive
// spelling equal to name, in table insertion order (used by §4.6's
// tie-break rule).
func (idx *UnitIndex) SimilarMatches(name string) []*Unit {
	return idx.byFold[strings.ToLower(name)]
}

// IsMultiWordPrefix reports whether word1+" "+word2 (case-insensitively) is
// a known multi-word unit spelling, returning the matching display form.
func (idx *UnitIndex) IsMultiWordPrefix(word1, word2 string) (string, bool) {
	combined := word1 + " " + word2
	folded := strings.ToLower(combined)
	if idx.multiword[folded] {
		if candidates := idx.byFold[folded]; len(candidates) > 0 {
			return combined, true
		}
	}
	return "", false
}

// Dimension returns a dimension by name.
func (idx *UnitIndex) Dimension(name string) (*Dimension, bool) {
	d, ok := idx.dimensions[name]
	return d, ok
}

// BestSimilarMatch implements §4.6(c): among all case-insensitive matches,
// pick the one whose canonical display form shares the most leading
// characters with the input; ties break by table insertion order.
func (idx *UnitIndex) BestSimilarMatch(input string) (*Unit, bool) {
	candidates := idx.SimilarMatches(input)
	if len(candidates) == 0 {
		return nil, false
	}
	best := candidates[0]
	bestShared := sharedPrefixLen(best.DisplayName.Singular, input)
	bestPos := idx.position(best.ID)
	for _, c := range candidates[1:] {
		shared := sharedPrefixLen(c.DisplayName.Singular, input)
		pos := idx.position(c.ID)
		if shared > bestShared || (shared == bestShared && pos < bestPos) {
			best, bestShared, bestPos = c, shared, pos
		}
	}
	return best, true
}

func (idx *UnitIndex) position(id string) int {
	for i, v := range idx.insertion {
		if v == id {
			return i
		}
	}
	return len(idx.insertion)
}

// DataSizeBase reports whether u is a scaled data-size unit built on a
// binary (1024) or decimal (1000) prefix, e.g. kibibyte/mebibyte vs
// kilobyte/megabyte. byte/bit themselves (Factor 1) report ok=false:
// a bare base unit doesn't commit to either base.
func DataSizeBase(u *Unit) (base int, ok bool) {
	if u.Dimension != "data" || u.Conversion.Kind != Linear || u.Conversion.Factor <= 1 {
		return 0, false
	}
	if isPowerOf(u.Conversion.Factor, 1024) {
		return 1024, true
	}
	if isPowerOf(u.Conversion.Factor, 1000) {
		return 1000, true
	}
	return 0, false
}

func isPowerOf(x, base float64) bool {
	for x > base-0.5 {
		x /= base
	}
	return math.Abs(x-1) < 1e-9
}

func sharedPrefixLen(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
