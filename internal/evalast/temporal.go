package evalast

// DateLiteralNode is a resolved calendar date (month name already
// mapped to a number).
type DateLiteralNode struct {
	Sp      Span
	Y, M, D int
	HasYear bool
}

func (n *DateLiteralNode) Span() Span { return n.Sp }

// TimeLiteralNode is a resolved wall-clock time, optionally zoned.
type TimeLiteralNode struct {
	Sp             Span
	H, Min, S, Ms  int
	Zone           string // resolved IANA id or fixed "UTC+5:30" offset, "" if unzoned
	HasZone        bool
}

func (n *TimeLiteralNode) Span() Span { return n.Sp }

// PlainTimeNode wraps the lexer's bare HH:MM:SS token, unzoned.
type PlainTimeNode struct {
	Sp            Span
	H, Min, S, Ms int
}

func (n *PlainTimeNode) Span() Span { return n.Sp }

// RelativeKind enumerates the keyword-relative instants.
type RelativeKind int

const (
	RelativeNow RelativeKind = iota
	RelativeToday
	RelativeYesterday
	RelativeTomorrow
)

// RelativeNode is a keyword-relative instant (now/today/yesterday/tomorrow).
type RelativeNode struct {
	Sp   Span
	Kind RelativeKind
}

func (n *RelativeNode) Span() Span { return n.Sp }

// RelativeOffsetNode is "N unit ago" (Ago==true) or "N unit from now"
// (Ago==false).
type RelativeOffsetNode struct {
	Sp     Span
	Amount Node
	Unit   string
	Ago    bool
}

func (n *RelativeOffsetNode) Span() Span { return n.Sp }

// UnixNode is "N unix", a Unix timestamp in seconds.
type UnixNode struct {
	Sp     Span
	Amount Node
}

func (n *UnixNode) Span() Span { return n.Sp }
