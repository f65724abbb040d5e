package eval

import (
	"github.com/blueset/calc-sub004/internal/evalast"
	"github.com/blueset/calc-sub004/internal/value"
)

// eval dispatches on the concrete evalast node type. Every branch
// either returns a value.Value directly or delegates to a grouped
// helper in arith.go/compare.go/convert.go/functions.go/temporal.go.
func (ev *evaluator) eval(n evalast.Node) value.Value {
	switch t := n.(type) {
	case *evalast.Null:
		return value.Boolean{}

	case *evalast.NumberNode:
		if t.Unit == nil {
			return value.Number{X: t.X}
		}
		return value.Number{X: t.X, Unit: t.Unit.ID}

	case *evalast.DerivedNode:
		terms := make([]value.Term, len(t.Terms))
		for i, term := range t.Terms {
			terms[i] = value.Term{Unit: term.Unit.ID, Exponent: term.Exponent}
		}
		return buildFromTerms(t.X, terms)

	case *evalast.CompositeNode:
		parts := make([]value.Component, len(t.Parts))
		for i, p := range t.Parts {
			parts[i] = value.Component{X: p.X, Unit: p.Unit.ID}
		}
		return value.Composite{Parts: parts}

	case *evalast.BooleanNode:
		return value.Boolean{B: t.B}

	case *evalast.VariableNode:
		if v, ok := ev.env.Scope[t.Name]; ok {
			return v
		}
		return value.Errorf(value.UnknownVariable, spanOf(t.Sp), "undefined variable %q", t.Name)

	case *evalast.ConstantNode:
		return value.Number{X: t.Value}

	case *evalast.FunctionCallNode:
		return ev.call(t)

	case *evalast.BinaryNode:
		return ev.binary(t)

	case *evalast.UnaryNode:
		return ev.unary(t)

	case *evalast.PostfixNode:
		return ev.postfix(t)

	case *evalast.ConditionalNode:
		cond := ev.eval(t.Cond)
		if e, isErr := value.IsError(cond); isErr {
			return e
		}
		b, ok := cond.(value.Boolean)
		if !ok {
			return value.Errorf(value.DomainError, spanOf(t.Sp), "condition must be a boolean")
		}
		if b.B {
			return ev.eval(t.Then)
		}
		return ev.eval(t.Else)

	case *evalast.VariableAssignmentNode:
		v := ev.eval(t.Value)
		if _, isErr := value.IsError(v); !isErr {
			ev.env.Scope[t.Name] = v
		}
		return v

	case *evalast.ConversionNode:
		return ev.conversion(t)

	case *evalast.DateLiteralNode:
		return ev.dateLiteral(t)
	case *evalast.TimeLiteralNode:
		return ev.timeLiteral(t)
	case *evalast.PlainTimeNode:
		return value.PlainTime{H: t.H, Min: t.Min, S: t.S, Ms: t.Ms}
	case *evalast.RelativeNode:
		return ev.relative(t)
	case *evalast.RelativeOffsetNode:
		return ev.relativeOffset(t)
	case *evalast.UnixNode:
		return ev.unix(t)
	}
	return value.Errorf(value.DomainError, value.Span{}, "unsupported node %T", n)
}
