package value

import "fmt"

// PlainDate is a calendar date with no time-of-day or zone component,
// proleptic Gregorian.
type PlainDate struct {
	Y, M, D int
}

func (d PlainDate) String() string   { return fmt.Sprintf("%04d-%02d-%02d", d.Y, d.M, d.D) }
func (d PlainDate) TypeName() string { return "PlainDate" }
func (d PlainDate) Equal(other Value) bool {
	o, ok := other.(PlainDate)
	return ok && o == d
}

// PlainTime is a wall-clock time with no date or zone component.
type PlainTime struct {
	H, Min, S, Ms int
}

func (t PlainTime) String() string {
	if t.Ms != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%03d", t.H, t.Min, t.S, t.Ms)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.H, t.Min, t.S)
}
func (t PlainTime) TypeName() string { return "PlainTime" }
func (t PlainTime) Equal(other Value) bool {
	o, ok := other.(PlainTime)
	return ok && o == t
}

// PlainDateTime is a date and time with no zone attached.
type PlainDateTime struct {
	Date PlainDate
	Time PlainTime
}

func (dt PlainDateTime) String() string   { return dt.Date.String() + " " + dt.Time.String() }
func (dt PlainDateTime) TypeName() string { return "PlainDateTime" }
func (dt PlainDateTime) Equal(other Value) bool {
	o, ok := other.(PlainDateTime)
	return ok && o.Date == dt.Date && o.Time == dt.Time
}

// Instant is an absolute point in time, milliseconds since the Unix
// epoch, independent of any calendar or zone.
type Instant struct {
	EpochMs int64
}

func (i Instant) String() string   { return fmt.Sprintf("instant(%d)", i.EpochMs) }
func (i Instant) TypeName() string { return "Instant" }
func (i Instant) Equal(other Value) bool {
	o, ok := other.(Instant)
	return ok && o.EpochMs == i.EpochMs
}

// ZonedDateTime pairs an Instant with the zone its wall-clock
// representation is rendered in.
type ZonedDateTime struct {
	Instant Instant
	Zone    string // IANA zone id, e.g. "America/New_York", or a fixed "UTC+5:30" offset
}

func (z ZonedDateTime) String() string   { return fmt.Sprintf("%s %s", z.Instant, z.Zone) }
func (z ZonedDateTime) TypeName() string { return "ZonedDateTime" }
func (z ZonedDateTime) Equal(other Value) bool {
	o, ok := other.(ZonedDateTime)
	return ok && o == z
}

// Duration carries signed, possibly-unreduced magnitudes per field;
// normalization (carrying days into weeks, etc.) happens only at
// format or range boundaries, never implicitly during arithmetic.
type Duration struct {
	Years, Months, Weeks, Days     int
	Hours, Minutes, Seconds, Millis int
}

func (d Duration) String() string {
	return fmt.Sprintf("%dy %dmo %dw %dd %dh %dmi %ds %dms",
		d.Years, d.Months, d.Weeks, d.Days, d.Hours, d.Minutes, d.Seconds, d.Millis)
}
func (d Duration) TypeName() string { return "Duration" }
func (d Duration) Equal(other Value) bool {
	o, ok := other.(Duration)
	return ok && o == d
}

// TotalMillis reduces a duration with no month/year components to a
// single millisecond count, used for fixed-length comparisons and
// arithmetic that must commute regardless of field distribution.
func (d Duration) TotalMillis() int64 {
	days := int64(d.Weeks)*7 + int64(d.Days)
	return ((days*24+int64(d.Hours))*60+int64(d.Minutes))*60*1000 + int64(d.Seconds)*1000 + int64(d.Millis)
}

// HasCalendarComponents reports whether Years or Months is non-zero,
// meaning TotalMillis is not a faithful reduction (month/year lengths
// are not fixed).
func (d Duration) HasCalendarComponents() bool {
	return d.Years != 0 || d.Months != 0
}
