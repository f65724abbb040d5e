// Package selector picks one parse tree out of the pruner's surviving
// candidates by the fixed lexicographic rule: fewer unit terms, then a
// higher in-database ratio among those terms, then a preference for
// the variable reading over a user-defined-unit reading, then fewer
// total AST nodes. Ties keep the candidate that appeared earliest in
// the parser's enumeration order.
package selector

import (
	"github.com/blueset/calc-sub004/internal/ptree"
	"github.com/blueset/calc-sub004/internal/refdata"
	"github.com/blueset/calc-sub004/internal/unitphrase"
)

// score is compared lexicographically; within each field, a larger
// value always wins, so fields that are "prefer fewer" are stored
// negated.
type score struct {
	negUnitTerms   int
	inDatabaseRate float64
	variableBias   int
	negNodeCount   int
}

func less(a, b score) bool {
	if a.negUnitTerms != b.negUnitTerms {
		return a.negUnitTerms < b.negUnitTerms
	}
	if a.inDatabaseRate != b.inDatabaseRate {
		return a.inDatabaseRate < b.inDatabaseRate
	}
	if a.variableBias != b.variableBias {
		return a.variableBias < b.variableBias
	}
	return a.negNodeCount < b.negNodeCount
}

// Select returns the winning candidate among candidates, which must be
// non-empty (the pruner guarantees this or reports an error instead).
func Select(candidates []ptree.Node, idx *refdata.Index) ptree.Node {
	best := candidates[0]
	bestScore := scoreOf(best, idx)
	for _, c := range candidates[1:] {
		s := scoreOf(c, idx)
		if less(bestScore, s) {
			best, bestScore = c, s
		}
	}
	return best
}

func scoreOf(n ptree.Node, idx *refdata.Index) score {
	var unitTerms, resolvedTerms, variableNodes, nodeCount int
	walk(n, idx, &unitTerms, &resolvedTerms, &variableNodes, &nodeCount)
	rate := 1.0
	if unitTerms > 0 {
		rate = float64(resolvedTerms) / float64(unitTerms)
	}
	return score{
		negUnitTerms:   -unitTerms,
		inDatabaseRate: rate,
		variableBias:   variableNodes,
		negNodeCount:   -nodeCount,
	}
}

func countUnitRef(u *ptree.UnitRef, idx *refdata.Index, unitTerms, resolvedTerms *int) {
	if u == nil {
		return
	}
	terms := unitphrase.Segment(idx, u.Name)
	*unitTerms += len(terms)
	for _, t := range terms {
		if t.Resolved() {
			*resolvedTerms++
		}
	}
}

// walk is a typed, exhaustive visitor over the closed ptree.Node sum
// type, tallying the four raw counts the score is built from.
func walk(n ptree.Node, idx *refdata.Index, unitTerms, resolvedTerms, variableNodes, nodeCount *int) {
	if n == nil {
		return
	}
	*nodeCount++
	switch t := n.(type) {
	case *ptree.Null, *ptree.NumberLiteral, *ptree.Boolean, *ptree.Constant,
		*ptree.DateLiteral, *ptree.RelativeLiteral, *ptree.PlainTimeToken:
		// leaves with nothing further to tally
	case *ptree.UnitRef:
		countUnitRef(t, idx, unitTerms, resolvedTerms)
	case *ptree.Variable:
		*variableNodes++
	case *ptree.Value:
		*nodeCount++ // the NumberLiteral
		countUnitRef(t.Unit, idx, unitTerms, resolvedTerms)
	case *ptree.CompositeValue:
		for _, part := range t.Parts {
			walk(part, idx, unitTerms, resolvedTerms, variableNodes, nodeCount)
		}
	case *ptree.FunctionCall:
		for _, a := range t.Args {
			walk(a, idx, unitTerms, resolvedTerms, variableNodes, nodeCount)
		}
	case *ptree.Binary:
		walk(t.Left, idx, unitTerms, resolvedTerms, variableNodes, nodeCount)
		walk(t.Right, idx, unitTerms, resolvedTerms, variableNodes, nodeCount)
	case *ptree.Unary:
		walk(t.Arg, idx, unitTerms, resolvedTerms, variableNodes, nodeCount)
	case *ptree.Postfix:
		walk(t.Arg, idx, unitTerms, resolvedTerms, variableNodes, nodeCount)
	case *ptree.Conditional:
		walk(t.Cond, idx, unitTerms, resolvedTerms, variableNodes, nodeCount)
		walk(t.Then, idx, unitTerms, resolvedTerms, variableNodes, nodeCount)
		walk(t.Else, idx, unitTerms, resolvedTerms, variableNodes, nodeCount)
	case *ptree.VariableAssignment:
		walk(t.Value, idx, unitTerms, resolvedTerms, variableNodes, nodeCount)
	case *ptree.Conversion:
		walk(t.Expr, idx, unitTerms, resolvedTerms, variableNodes, nodeCount)
		walkTarget(t.Target, idx, unitTerms, resolvedTerms, nodeCount)
	case *ptree.RelativeOffsetLiteral:
		walk(t.Amount, idx, unitTerms, resolvedTerms, variableNodes, nodeCount)
	case *ptree.UnixLiteral:
		walk(t.Amount, idx, unitTerms, resolvedTerms, variableNodes, nodeCount)
	}
}

func walkTarget(target ptree.ConversionTarget, idx *refdata.Index, unitTerms, resolvedTerms, nodeCount *int) {
	*nodeCount++
	if ut, ok := target.(*ptree.UnitTarget); ok {
		for _, u := range ut.Units {
			countUnitRef(u, idx, unitTerms, resolvedTerms)
		}
	}
}
