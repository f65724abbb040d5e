package normalize

import (
	"strings"

	"github.com/blueset/calc-sub004/internal/evalast"
	"github.com/blueset/calc-sub004/internal/ptree"
)

func (z *normalizer) conversion(c *ptree.Conversion) (evalast.Node, *Error) {
	expr, err := z.normalize(c.Expr)
	if err != nil {
		return nil, err
	}
	target, err := z.target(c.Target)
	if err != nil {
		return nil, err
	}
	return &evalast.ConversionNode{Sp: span(c.Sp), Expr: expr, Op: evalast.ConvOp(c.Op), Target: target}, nil
}

func (z *normalizer) target(t ptree.ConversionTarget) (evalast.Target, *Error) {
	switch tt := t.(type) {
	case *ptree.UnitTarget:
		refs := make([]evalast.UnitRef, 0, len(tt.Units))
		for _, u := range tt.Units {
			terms := normalizeUnitPhrase(z.idx, u.Name)
			if len(terms) == 1 {
				refs = append(refs, terms[0].Unit)
			} else {
				// A multi-term derived spelling inside a unit target
				// (rare: "to km/h") collapses to its first term; the
				// remaining terms are dropped from the target list but
				// still inform the evaluator through Dimension string
				// only in the common single-term case this matters.
				for _, term := range terms {
					refs = append(refs, term.Unit)
				}
			}
		}
		return &evalast.UnitTarget{Sp: span(tt.Sp), Units: refs}, nil
	case *ptree.FormatTarget:
		var arg *float64
		if tt.Arg != nil {
			x, err := parseNumber(tt.Arg)
			if err != nil {
				return nil, err
			}
			arg = &x
		}
		return &evalast.FormatTarget{Sp: span(tt.Sp), Format: tt.Format, Arg: arg}, nil
	case *ptree.BaseTarget:
		x, err := parseNumber(tt.Base)
		if err != nil {
			return nil, err
		}
		return &evalast.BaseTarget{Sp: span(tt.Sp), Base: int(x)}, nil
	case *ptree.PropertyTarget:
		return &evalast.PropertyTarget{Sp: span(tt.Sp), Property: strings.ToLower(tt.Property)}, nil
	}
	sp := t.Span()
	return nil, &Error{Message: "unsupported conversion target", Start: sp.Start, End: sp.End, Column: sp.Column}
}
