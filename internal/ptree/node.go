// Package ptree defines the ambiguous parse-tree node types the
// backtracking parser produces for a single line. A line may yield many candidate
// trees; the pruner and selector (internal/prune, internal/selector)
// reduce that set to one before normalization.
package ptree

import "fmt"

// Span locates a node within the single line it was parsed from.
type Span struct {
	Start, End int // rune offsets, half-open
	Column     int // 1-indexed column of Start
}

// Node is implemented by every parse-tree variant.
type Node interface {
	String() string
	Span() Span
}

// Null represents an empty line: no tokens, one trivial parse.
type Null struct {
	Sp Span
}

func (n *Null) String() string { return "Null" }
func (n *Null) Span() Span     { return n.Sp }

// NumberLiteral is a raw numeric literal before unit attachment.
type NumberLiteral struct {
	Sp   Span
	Text string // exact source text, e.g. "1,000", "0x1F", "3.14e2"
	Kind NumberKind
}

// NumberKind distinguishes the literal radix/form so the normalizer
// knows how to parse Text into a float64.
type NumberKind int

const (
	DecimalNumber NumberKind = iota
	BinaryNumber
	OctalNumber
	HexNumber
	PercentNumber
	PermilleNumber
)

func (n *NumberLiteral) String() string { return fmt.Sprintf("NumberLiteral(%s)", n.Text) }
func (n *NumberLiteral) Span() Span     { return n.Sp }

// UnitRef is an identifier (possibly multi-word, e.g. "pound force")
// spelled where the grammar allows a unit, currency, or constant name.
type UnitRef struct {
	Sp   Span
	Name string
}

func (u *UnitRef) String() string { return fmt.Sprintf("UnitRef(%q)", u.Name) }
func (u *UnitRef) Span() Span     { return u.Sp }

// Value is a number with an optional unit/currency prefix or suffix.
type Value struct {
	Sp     Span
	Number *NumberLiteral
	Unit   *UnitRef // nil for a bare number
}

func (v *Value) String() string {
	if v.Unit == nil {
		return fmt.Sprintf("Value(%s)", v.Number)
	}
	return fmt.Sprintf("Value(%s, %s)", v.Number, v.Unit)
}
func (v *Value) Span() Span { return v.Sp }

// CompositeValue is a sequence of Value terms sharing one dimension,
// e.g. "5 ft 7 in".
type CompositeValue struct {
	Sp    Span
	Parts []*Value
}

func (c *CompositeValue) String() string {
	s := "CompositeValue["
	for i, p := range c.Parts {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + "]"
}
func (c *CompositeValue) Span() Span { return c.Sp }

// Variable is an identifier spelled where the grammar allows a bound name.
type Variable struct {
	Sp   Span
	Name string
}

func (v *Variable) String() string { return fmt.Sprintf("Variable(%q)", v.Name) }
func (v *Variable) Span() Span     { return v.Sp }

// Constant is an identifier or symbol spelled where the grammar allows a
// named mathematical/physical constant (pi, e, c, ...).
type Constant struct {
	Sp   Span
	Name string
}

func (c *Constant) String() string { return fmt.Sprintf("Constant(%q)", c.Name) }
func (c *Constant) Span() Span     { return c.Sp }

// Boolean is a literal true/false.
type Boolean struct {
	Sp    Span
	Value bool
}

func (b *Boolean) String() string { return fmt.Sprintf("Boolean(%v)", b.Value) }
func (b *Boolean) Span() Span     { return b.Sp }

// FunctionCall is name(args...).
type FunctionCall struct {
	Sp   Span
	Name string
	Args []Node
}

func (f *FunctionCall) String() string { return fmt.Sprintf("FunctionCall(%s, %d args)", f.Name, len(f.Args)) }
func (f *FunctionCall) Span() Span     { return f.Sp }

// Binary is a two-operand operator application. Op is the lexical
// operator spelling ("+", "-", "*", "/", "per", "mod", "%", "of", "^", "&", "|",
// "xor", "<", "<=", ">", ">=", "==", "!=", "<<", ">>", "&&", "||").
type Binary struct {
	Sp    Span
	Op    string
	Left  Node
	Right Node
}

func (b *Binary) String() string { return fmt.Sprintf("Binary(%q, %s, %s)", b.Op, b.Left, b.Right) }
func (b *Binary) Span() Span     { return b.Sp }

// Unary is a prefix operator application ("-", "!", "~").
type Unary struct {
	Sp  Span
	Op  string
	Arg Node
}

func (u *Unary) String() string { return fmt.Sprintf("Unary(%q, %s)", u.Op, u.Arg) }
func (u *Unary) Span() Span     { return u.Sp }

// Postfix is a postfix operator application (factorial "!").
type Postfix struct {
	Sp  Span
	Op  string
	Arg Node
}

func (p *Postfix) String() string { return fmt.Sprintf("Postfix(%s, %q)", p.Arg, p.Op) }
func (p *Postfix) Span() Span     { return p.Sp }

// Conditional is "if cond then a else b".
type Conditional struct {
	Sp   Span
	Cond Node
	Then Node
	Else Node
}

func (c *Conditional) String() string {
	return fmt.Sprintf("Conditional(%s, %s, %s)", c.Cond, c.Then, c.Else)
}
func (c *Conditional) Span() Span { return c.Sp }

// VariableAssignment binds Name to Value for subsequent lines.
type VariableAssignment struct {
	Sp    Span
	Name  string
	Value Node
}

func (a *VariableAssignment) String() string {
	return fmt.Sprintf("VariableAssignment(%q, %s)", a.Name, a.Value)
}
func (a *VariableAssignment) Span() Span { return a.Sp }

// ConvOp is the lexical spelling of a conversion operator.
type ConvOp string

const (
	ConvTo  ConvOp = "to"
	ConvIn  ConvOp = "in"
	ConvAs  ConvOp = "as"
	ConvArr ConvOp = "→"
)

// Conversion applies a conversion operator to Expr, targeting Target.
// Conversions chain left-associatively: "a to b to c" is
// Conversion(Conversion(a, to, b), to, c).
type Conversion struct {
	Sp     Span
	Expr   Node
	Op     ConvOp
	Target ConversionTarget
}

func (c *Conversion) String() string {
	return fmt.Sprintf("Conversion(%s, %s, %s)", c.Expr, c.Op, c.Target)
}
func (c *Conversion) Span() Span { return c.Sp }

// ConversionTarget is implemented by every shape a conversion can name.
type ConversionTarget interface {
	String() string
	Span() Span
}

// UnitTarget names one or more unit/currency terms, e.g. "ft in" or
// "USD". More than one part means a composite distribution target.
type UnitTarget struct {
	Sp    Span
	Units []*UnitRef
}

func (t *UnitTarget) String() string { return fmt.Sprintf("UnitTarget(%v)", t.Units) }
func (t *UnitTarget) Span() Span     { return t.Sp }

// FormatTarget names a presentation format: binary, octal, hexadecimal,
// decimal, scientific, fraction, sigfigs (with an optional operand, e.g.
// "3 sigfigs" or "2 decimals").
type FormatTarget struct {
	Sp     Span
	Format string
	Arg    *NumberLiteral // e.g. digit count for "sigfigs"/"decimals"; nil otherwise
}

func (t *FormatTarget) String() string { return fmt.Sprintf("FormatTarget(%s)", t.Format) }
func (t *FormatTarget) Span() Span     { return t.Sp }

// BaseTarget names an integer radix target, "to base 16".
type BaseTarget struct {
	Sp   Span
	Base *NumberLiteral
}

func (t *BaseTarget) String() string { return fmt.Sprintf("BaseTarget(%s)", t.Base.Text) }
func (t *BaseTarget) Span() Span     { return t.Sp }

// PropertyTarget names a temporal field projection, "to year"/"to hour".
type PropertyTarget struct {
	Sp       Span
	Property string
}

func (t *PropertyTarget) String() string { return fmt.Sprintf("PropertyTarget(%s)", t.Property) }
func (t *PropertyTarget) Span() Span     { return t.Sp }
