package ptree

import (
	"fmt"
	"strings"
)

// DateLiteral is a calendar date spelled in source, e.g. "Dec 25 2024".
// Year is nil when the year is omitted (resolved against the current
// year at evaluation time).
type DateLiteral struct {
	Sp    Span
	Month string
	Day   string
	Year  *string
}

func (d *DateLiteral) String() string {
	if d.Year != nil {
		return fmt.Sprintf("DateLiteral(%s %s %s)", d.Month, d.Day, *d.Year)
	}
	return fmt.Sprintf("DateLiteral(%s %s)", d.Month, d.Day)
}
func (d *DateLiteral) Span() Span { return d.Sp }

// UTCOffset is a fixed zone offset spelled as part of a time literal,
// "UTC-7" or "UTC+5:30".
type UTCOffset struct {
	Sign    string
	Hours   string
	Minutes *string
}

func (u *UTCOffset) String() string {
	if u.Minutes != nil {
		return fmt.Sprintf("UTC%s%s:%s", u.Sign, u.Hours, *u.Minutes)
	}
	return fmt.Sprintf("UTC%s%s", u.Sign, u.Hours)
}

// TimeLiteral is a clock time, "HH:MM(:SS)?" with an optional am/pm
// marker and/or trailing zone (offset or named, e.g. "UTC").
type TimeLiteral struct {
	Sp     Span
	Hour   string
	Minute string
	Second *string
	Period *string // "AM"/"PM", nil for 24h spellings
	Offset *UTCOffset
	Zone   string // named zone/alias, e.g. "UTC", "Hong Kong"; "" if none
}

func (t *TimeLiteral) String() string {
	var parts []string
	if t.Second != nil {
		parts = append(parts, fmt.Sprintf("%s:%s:%s", t.Hour, t.Minute, *t.Second))
	} else {
		parts = append(parts, fmt.Sprintf("%s:%s", t.Hour, t.Minute))
	}
	if t.Period != nil {
		parts = append(parts, *t.Period)
	}
	if t.Offset != nil {
		parts = append(parts, t.Offset.String())
	}
	if t.Zone != "" {
		parts = append(parts, t.Zone)
	}
	return fmt.Sprintf("TimeLiteral(%s)", strings.Join(parts, " "))
}
func (t *TimeLiteral) Span() Span { return t.Sp }

// RelativeLiteral is one of the bare keyword moments: now, today,
// yesterday, tomorrow.
type RelativeLiteral struct {
	Sp      Span
	Keyword string
}

func (r *RelativeLiteral) String() string { return fmt.Sprintf("RelativeLiteral(%s)", r.Keyword) }
func (r *RelativeLiteral) Span() Span     { return r.Sp }

// RelativeOffsetLiteral is "N unit ago" or "N unit from now".
type RelativeOffsetLiteral struct {
	Sp        Span
	Amount    Node
	Unit      string // "day", "hour", "week", ...
	Direction string // "ago" or "from-now"
}

func (r *RelativeOffsetLiteral) String() string {
	return fmt.Sprintf("RelativeOffsetLiteral(%s %s %s)", r.Amount, r.Unit, r.Direction)
}
func (r *RelativeOffsetLiteral) Span() Span { return r.Sp }

// UnixLiteral is "N unix": an epoch-seconds instant literal.
type UnixLiteral struct {
	Sp     Span
	Amount Node
}

func (u *UnixLiteral) String() string { return fmt.Sprintf("UnixLiteral(%s)", u.Amount) }
func (u *UnixLiteral) Span() Span     { return u.Sp }

// PlainTimeToken carries the lexer's HH(:MM(:SS)?) token through to the
// parser unchanged, for grammar positions that accept a bare clock time
// without an am/pm marker or zone.
type PlainTimeToken struct {
	Sp   Span
	Text string
}

func (p *PlainTimeToken) String() string { return fmt.Sprintf("PlainTimeToken(%s)", p.Text) }
func (p *PlainTimeToken) Span() Span     { return p.Sp }
