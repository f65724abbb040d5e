// Package evalast is the normalized, unambiguous tree the normalizer
// produces from a selected internal/ptree.Node and the evaluator
// consumes. Every unit reference here is already resolved: a real
// reference-table unit, a currency, a user-defined dimension, or an
// ambiguous-currency-symbol synthetic dimension — there is no
// remaining lexical ambiguity.
package evalast


// Span locates a node within the source line.
type Span struct {
	Start, End, Column int
}

// Node is implemented by every evaluation-AST variant.
type Node interface {
	Span() Span
}

// UnitKind distinguishes what a UnitRef resolved to.
type UnitKind int

const (
	KindUnit UnitKind = iota
	KindCurrency
	KindUserDefined
	KindAmbiguousCurrency
)

// UnitRef is a single resolved dimension reference. Dimension is the
// key two UnitRefs must share to be directly comparable or combined
// in a derived unit: a reference-table dimension name for Kind==Unit,
// "currency" for Kind==Currency, the identifier itself for
// Kind==UserDefined (every user-defined name is its own dimension, by
// definition uninhabited by anything else), and the synthetic
// ambiguous-symbol dimension id for Kind==AmbiguousCurrency.
type UnitRef struct {
	Kind      UnitKind
	ID        string // unit id, ISO currency code, user-defined name, or ambiguous dimension id
	Dimension string
}

func (u UnitRef) String() string { return u.ID }

// Term is one factor of a derived unit.
type Term struct {
	Unit     UnitRef
	Exponent int
}

// Null is the evaluation AST for an empty line.
type Null struct{ Sp Span }

func (n *Null) Span() Span { return n.Sp }

// NumberNode is a dimensionally pure quantity literal: zero or one
// unit, exponent 1.
type NumberNode struct {
	Sp   Span
	X    float64
	Unit *UnitRef // nil for a bare unitless number
}

func (n *NumberNode) Span() Span { return n.Sp }

// DerivedNode is a quantity whose unit is a product of UnitRefs with
// signed exponents, sorted by Unit.ID.
type DerivedNode struct {
	Sp    Span
	X     float64
	Terms []Term
}

func (n *DerivedNode) Span() Span { return n.Sp }

// Component is one part of a CompositeNode.
type Component struct {
	X    float64
	Unit UnitRef
}

// CompositeNode is a quantity expressed as several same-dimension
// components, largest unit first (5 ft 7 in).
type CompositeNode struct {
	Sp    Span
	Parts []Component
}

func (n *CompositeNode) Span() Span { return n.Sp }

// BooleanNode is a literal truth value.
type BooleanNode struct {
	Sp Span
	B  bool
}

func (n *BooleanNode) Span() Span { return n.Sp }

// VariableNode references a name looked up in document scope.
type VariableNode struct {
	Sp   Span
	Name string
}

func (n *VariableNode) Span() Span { return n.Sp }

// ConstantNode is a resolved named constant; Value is already looked
// up so the evaluator need not consult the reference index again.
type ConstantNode struct {
	Sp    Span
	Name  string
	Value float64
}

func (n *ConstantNode) Span() Span { return n.Sp }

// FunctionCallNode is a named function applied to arguments.
type FunctionCallNode struct {
	Sp   Span
	Name string
	Args []Node
}

func (n *FunctionCallNode) Span() Span { return n.Sp }

// BinaryNode is a binary operator application.
type BinaryNode struct {
	Sp          Span
	Op          string
	Left, Right Node
}

func (n *BinaryNode) Span() Span { return n.Sp }

// UnaryNode is a prefix operator application.
type UnaryNode struct {
	Sp  Span
	Op  string
	Arg Node
}

func (n *UnaryNode) Span() Span { return n.Sp }

// PostfixNode is a postfix operator application (factorial).
type PostfixNode struct {
	Sp  Span
	Op  string
	Arg Node
}

func (n *PostfixNode) Span() Span { return n.Sp }

// ConditionalNode is an if/then/else expression.
type ConditionalNode struct {
	Sp               Span
	Cond, Then, Else Node
}

func (n *ConditionalNode) Span() Span { return n.Sp }

// VariableAssignmentNode binds Name to Value's evaluation result in
// document scope, if it evaluates without error.
type VariableAssignmentNode struct {
	Sp    Span
	Name  string
	Value Node
}

func (n *VariableAssignmentNode) Span() Span { return n.Sp }

// ConvOp names a conversion operator spelling.
type ConvOp string

const (
	ConvTo  ConvOp = "to"
	ConvIn  ConvOp = "in"
	ConvAs  ConvOp = "as"
	ConvArr ConvOp = "→"
)

// ConversionNode applies a conversion operator to Expr, targeting
// Target.
type ConversionNode struct {
	Sp     Span
	Expr   Node
	Op     ConvOp
	Target Target
}

func (n *ConversionNode) Span() Span { return n.Sp }

// Target is implemented by every conversion-target variant.
type Target interface {
	Span() Span
}

// UnitTarget names one or more UnitRefs to convert into; len==1 is a
// simple unit conversion, len>1 a composite distribution target
// (5 ft to ft in).
type UnitTarget struct {
	Sp    Span
	Units []UnitRef
}

func (t *UnitTarget) Span() Span { return t.Sp }

// FormatTarget names a presentation format (binary/octal/hex/
// scientific/fraction) with an optional numeric argument (decimals,
// sigfigs).
type FormatTarget struct {
	Sp     Span
	Format string
	Arg    *float64
}

func (t *FormatTarget) Span() Span { return t.Sp }

// BaseTarget converts an integer to base Base (2-36).
type BaseTarget struct {
	Sp   Span
	Base int
}

func (t *BaseTarget) Span() Span { return t.Sp }

// PropertyTarget extracts a named component (year/month/day/hour/...)
// from a temporal value.
type PropertyTarget struct {
	Sp       Span
	Property string
}

func (t *PropertyTarget) Span() Span { return t.Sp }
