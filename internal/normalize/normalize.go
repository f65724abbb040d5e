// Package normalize lowers the selector's chosen internal/ptree.Node
// into the unambiguous internal/evalast tree: unit names are resolved
// against the reference index, composite degree/arcminute/arcsecond
// context is tracked, named-power and superscript unit spellings are
// expanded into exponents, and keyword date/time forms become the
// Temporal sum type (leaving the arithmetic itself, which needs a
// clock, to the evaluator).
package normalize

import (
	"github.com/blueset/calc-sub004/internal/evalast"
	"github.com/blueset/calc-sub004/internal/ptree"
	"github.com/blueset/calc-sub004/internal/refdata"
)

type normalizer struct {
	idx *refdata.Index
}

// Normalize lowers the selected parse tree n into an evaluation AST.
func Normalize(n ptree.Node, idx *refdata.Index) (evalast.Node, *Error) {
	z := &normalizer{idx: idx}
	return z.normalize(n)
}

func span(sp ptree.Span) evalast.Span {
	return evalast.Span{Start: sp.Start, End: sp.End, Column: sp.Column}
}

func (z *normalizer) normalize(n ptree.Node) (evalast.Node, *Error) {
	switch t := n.(type) {
	case *ptree.Null:
		return &evalast.Null{Sp: span(t.Sp)}, nil
	case *ptree.Value:
		return z.value(t)
	case *ptree.CompositeValue:
		return z.composite(t)
	case *ptree.Boolean:
		return &evalast.BooleanNode{Sp: span(t.Sp), B: t.Value}, nil
	case *ptree.Variable:
		return &evalast.VariableNode{Sp: span(t.Sp), Name: t.Name}, nil
	case *ptree.Constant:
		return z.constant(t)
	case *ptree.FunctionCall:
		return z.functionCall(t)
	case *ptree.Binary:
		left, err := z.normalize(t.Left)
		if err != nil {
			return nil, err
		}
		right, err := z.normalize(t.Right)
		if err != nil {
			return nil, err
		}
		op := t.Op
		if op == "of" {
			// "N% of X" is sugar for (N/100) * X; the percent literal is
			// already a plain scaled Number by the time it reaches here,
			// so "of" has nothing left to do but multiply.
			op = "*"
		}
		return &evalast.BinaryNode{Sp: span(t.Sp), Op: op, Left: left, Right: right}, nil
	case *ptree.Unary:
		arg, err := z.normalize(t.Arg)
		if err != nil {
			return nil, err
		}
		return &evalast.UnaryNode{Sp: span(t.Sp), Op: t.Op, Arg: arg}, nil
	case *ptree.Postfix:
		arg, err := z.normalize(t.Arg)
		if err != nil {
			return nil, err
		}
		return &evalast.PostfixNode{Sp: span(t.Sp), Op: t.Op, Arg: arg}, nil
	case *ptree.Conditional:
		cond, err := z.normalize(t.Cond)
		if err != nil {
			return nil, err
		}
		then, err := z.normalize(t.Then)
		if err != nil {
			return nil, err
		}
		els, err := z.normalize(t.Else)
		if err != nil {
			return nil, err
		}
		return &evalast.ConditionalNode{Sp: span(t.Sp), Cond: cond, Then: then, Else: els}, nil
	case *ptree.VariableAssignment:
		val, err := z.normalize(t.Value)
		if err != nil {
			return nil, err
		}
		return &evalast.VariableAssignmentNode{Sp: span(t.Sp), Name: t.Name, Value: val}, nil
	case *ptree.Conversion:
		return z.conversion(t)
	case *ptree.DateLiteral:
		return z.dateLiteral(t)
	case *ptree.TimeLiteral:
		return z.timeLiteral(t)
	case *ptree.PlainTimeToken:
		return z.plainTimeToken(t)
	case *ptree.RelativeLiteral:
		return z.relativeLiteral(t)
	case *ptree.RelativeOffsetLiteral:
		return z.relativeOffsetLiteral(t)
	case *ptree.UnixLiteral:
		return z.unixLiteral(t)
	}
	sp := n.Span()
	return nil, &Error{Message: "unsupported parse tree node", Start: sp.Start, End: sp.End, Column: sp.Column}
}

func (z *normalizer) value(v *ptree.Value) (evalast.Node, *Error) {
	x, err := parseNumber(v.Number)
	if err != nil {
		return nil, err
	}
	if v.Unit == nil {
		return &evalast.NumberNode{Sp: span(v.Sp), X: x}, nil
	}
	terms := normalizeUnitPhrase(z.idx, v.Unit.Name)
	return collapseTerms(x, span(v.Sp), terms), nil
}

// degreeUnitID is the reference table's id for the degree unit; its
// presence as an earlier composite component puts ′/″ into arcminute/
// arcsecond territory instead of foot/inch.
const degreeUnitID = "degree"

func (z *normalizer) composite(c *ptree.CompositeValue) (evalast.Node, *Error) {
	parts := make([]evalast.Component, 0, len(c.Parts))
	sawDegree := false
	for _, part := range c.Parts {
		x, err := parseNumber(part.Number)
		if err != nil {
			return nil, err
		}
		ref := z.resolveCompositePart(part.Unit.Name, sawDegree)
		if ref.ID == degreeUnitID {
			sawDegree = true
		}
		parts = append(parts, evalast.Component{X: x, Unit: ref})
	}
	return &evalast.CompositeNode{Sp: span(c.Sp), Parts: parts}, nil
}

func (z *normalizer) resolveCompositePart(name string, inDegreeContext bool) evalast.UnitRef {
	if inDegreeContext {
		switch name {
		case "′":
			return evalast.UnitRef{Kind: evalast.KindUnit, ID: "arcminute", Dimension: "angle"}
		case "″":
			return evalast.UnitRef{Kind: evalast.KindUnit, ID: "arcsecond", Dimension: "angle"}
		}
	} else {
		switch name {
		case "′":
			return evalast.UnitRef{Kind: evalast.KindUnit, ID: "foot", Dimension: "length"}
		case "″":
			return evalast.UnitRef{Kind: evalast.KindUnit, ID: "inch", Dimension: "length"}
		}
	}
	return resolveSimple(z.idx, name)
}

func (z *normalizer) constant(c *ptree.Constant) (evalast.Node, *Error) {
	if k, ok := z.idx.Constants.Resolve(c.Name); ok {
		return &evalast.ConstantNode{Sp: span(c.Sp), Name: k.PrimaryName, Value: k.Value}, nil
	}
	// Selector preferred this reading over Variable (or Variable was
	// pruned as undefined); either way the evaluator reports
	// UnknownVariable for a name that resolves to nothing at all.
	return &evalast.VariableNode{Sp: span(c.Sp), Name: c.Name}, nil
}

func (z *normalizer) functionCall(f *ptree.FunctionCall) (evalast.Node, *Error) {
	args := make([]evalast.Node, 0, len(f.Args))
	for _, a := range f.Args {
		n, err := z.normalize(a)
		if err != nil {
			return nil, err
		}
		args = append(args, n)
	}
	return &evalast.FunctionCallNode{Sp: span(f.Sp), Name: f.Name, Args: args}, nil
}
