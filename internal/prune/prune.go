// Package prune discards ambiguous-parse candidates that reference an
// undefined variable, leaving only semantically admissible trees for
// internal/selector to choose among.
package prune

import (
	"fmt"

	"github.com/blueset/calc-sub004/internal/ptree"
)

// Scope reports which variable names are currently defined.
type Scope interface {
	Defined(name string) bool
}

// MapScope is the common Scope implementation: the set of variable
// names defined so far, threaded through the document by the
// orchestrator.
type MapScope map[string]bool

func (s MapScope) Defined(name string) bool { return s[name] }

// Error reports that every candidate was pruned away.
type Error struct {
	UndefinedName string
}

func (e *Error) Error() string {
	return fmt.Sprintf("undefined variable %q", e.UndefinedName)
}

// Prune keeps only candidates with no Variable node naming an
// undefined identifier. An identifier spelled as a Unit node is always
// kept (unknown units become user-defined dimensions downstream).
func Prune(candidates []ptree.Node, scope Scope) ([]ptree.Node, *Error) {
	var kept []ptree.Node
	var firstUndefined string
	for _, c := range candidates {
		if name, ok := firstUndefinedVariable(c, scope); ok {
			if firstUndefined == "" {
				firstUndefined = name
			}
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == 0 && len(candidates) > 0 {
		return nil, &Error{UndefinedName: firstUndefined}
	}
	return kept, nil
}

// firstUndefinedVariable walks a candidate tree looking for any
// Variable node naming an identifier not in scope. It is a typed,
// exhaustive visitor over the closed ptree.Node sum type.
func firstUndefinedVariable(n ptree.Node, scope Scope) (string, bool) {
	switch t := n.(type) {
	case nil, *ptree.Null, *ptree.NumberLiteral, *ptree.UnitRef, *ptree.Boolean,
		*ptree.Constant, *ptree.DateLiteral, *ptree.RelativeLiteral,
		*ptree.PlainTimeToken:
		return "", false
	case *ptree.Variable:
		if !scope.Defined(t.Name) {
			return t.Name, true
		}
		return "", false
	case *ptree.Value:
		return "", false // Number + optional UnitRef only
	case *ptree.CompositeValue:
		return "", false
	case *ptree.FunctionCall:
		for _, a := range t.Args {
			if name, ok := firstUndefinedVariable(a, scope); ok {
				return name, true
			}
		}
		return "", false
	case *ptree.Binary:
		if name, ok := firstUndefinedVariable(t.Left, scope); ok {
			return name, true
		}
		return firstUndefinedVariable(t.Right, scope)
	case *ptree.Unary:
		return firstUndefinedVariable(t.Arg, scope)
	case *ptree.Postfix:
		return firstUndefinedVariable(t.Arg, scope)
	case *ptree.Conditional:
		if name, ok := firstUndefinedVariable(t.Cond, scope); ok {
			return name, true
		}
		if name, ok := firstUndefinedVariable(t.Then, scope); ok {
			return name, true
		}
		return firstUndefinedVariable(t.Else, scope)
	case *ptree.VariableAssignment:
		return firstUndefinedVariable(t.Value, scope)
	case *ptree.Conversion:
		if name, ok := firstUndefinedVariable(t.Expr, scope); ok {
			return name, true
		}
		return "", false // ConversionTarget never carries a Variable node
	case *ptree.RelativeOffsetLiteral:
		return firstUndefinedVariable(t.Amount, scope)
	case *ptree.UnixLiteral:
		return firstUndefinedVariable(t.Amount, scope)
	default:
		return "", false
	}
}
