// Package temporal is the evaluator's self-contained date/time engine.
// Calendar arithmetic (month/year clamping, day-of-month rules) is
// implemented directly here against the proleptic Gregorian calendar
// rather than delegated to a date library; zone offset lookups alone
// go through the standard library's IANA tzdata-backed time.Location,
// since no third-party alternative in the dependency set carries its
// own timezone database.
package temporal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/blueset/calc-sub004/internal/refdata"
	"github.com/blueset/calc-sub004/internal/value"
)

var daysInMonthTable = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap reports whether y is a leap year in the proleptic Gregorian
// calendar.
func IsLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// DaysInMonth returns the number of days in month m (1-12) of year y.
func DaysInMonth(y, m int) int {
	if m == 2 && IsLeap(y) {
		return 29
	}
	return daysInMonthTable[m-1]
}

func clampDay(y, m, d int) int {
	if max := DaysInMonth(y, m); d > max {
		return max
	}
	return d
}

// AddMonths adds n months to d, clamping the day to the last valid day
// of the resulting month (Jan 31 + 1 month = Feb 28 or 29).
func AddMonths(d value.PlainDate, n int) value.PlainDate {
	total := (d.Y*12 + (d.M - 1)) + n
	y := total / 12
	m := total%12 + 1
	if m <= 0 {
		m += 12
		y--
	}
	return value.PlainDate{Y: y, M: m, D: clampDay(y, m, d.D)}
}

// AddYears adds n years to d, clamping Feb 29 to Feb 28 when the
// target year is not a leap year.
func AddYears(d value.PlainDate, n int) value.PlainDate {
	y := d.Y + n
	return value.PlainDate{Y: y, M: d.M, D: clampDay(y, d.M, d.D)}
}

// AddDays adds n days to d using the proleptic Gregorian calendar.
func AddDays(d value.PlainDate, n int) value.PlainDate {
	jdn := toJDN(d) + n
	return fromJDN(jdn)
}

// toJDN/fromJDN convert to/from a Julian day number, the standard way
// to do calendar-agnostic day arithmetic without relying on a host
// date type.
func toJDN(d value.PlainDate) int {
	a := (14 - d.M) / 12
	y := d.Y + 4800 - a
	m := d.M + 12*a - 3
	return d.D + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

func fromJDN(jdn int) value.PlainDate {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - (146097*b)/4
	dd := (4*c + 3) / 1461
	e := c - (1461*dd)/4
	m := (5*e + 2) / 153
	day := e - (153*m+2)/5 + 1
	month := m + 3 - 12*(m/10)
	year := 100*b + dd - 4800 + m/10
	return value.PlainDate{Y: year, M: month, D: day}
}

// AddTime adds h/mi/s/ms to t, returning the result and the number of
// whole days the addition carried (positive overflow or negative
// underflow), so a PlainTime addition that crosses midnight can lift
// into a PlainDateTime.
func AddTime(t value.PlainTime, hours, minutes, seconds, millis int) (value.PlainTime, int) {
	total := int64(t.Ms) + int64(millis)
	total += (int64(t.S) + int64(seconds)) * 1000
	total += (int64(t.Min) + int64(minutes)) * 60 * 1000
	total += (int64(t.H) + int64(hours)) * 60 * 60 * 1000
	const dayMs = 24 * 60 * 60 * 1000
	days := int(total / dayMs)
	rem := total % dayMs
	if rem < 0 {
		rem += dayMs
		days--
	}
	ms := int(rem)
	h := ms / (60 * 60 * 1000)
	ms -= h * 60 * 60 * 1000
	mi := ms / (60 * 1000)
	ms -= mi * 60 * 1000
	s := ms / 1000
	ms -= s * 1000
	return value.PlainTime{H: h, Min: mi, S: s, Ms: ms}, days
}

// AddDuration applies years and months first (clamped), then
// weeks/days to the date, then the time-of-day fields, carrying any
// day overflow from the time addition back into the date.
func AddDuration(dt value.PlainDateTime, d value.Duration) value.PlainDateTime {
	date := AddYears(dt.Date, d.Years)
	date = AddMonths(date, d.Months)
	date = AddDays(date, d.Weeks*7+d.Days)
	t, carry := AddTime(dt.Time, d.Hours, d.Minutes, d.Seconds, d.Millis)
	if carry != 0 {
		date = AddDays(date, carry)
	}
	return value.PlainDateTime{Date: date, Time: t}
}

// NegateDuration flips the sign of every field, used to implement
// subtraction as addition of the negation.
func NegateDuration(d value.Duration) value.Duration {
	return value.Duration{
		Years: -d.Years, Months: -d.Months, Weeks: -d.Weeks, Days: -d.Days,
		Hours: -d.Hours, Minutes: -d.Minutes, Seconds: -d.Seconds, Millis: -d.Millis,
	}
}

// DiffDates computes the Duration from b to a by common calendar
// subtraction: whole years, then whole months, then remaining days.
func DiffDates(a, b value.PlainDate) value.Duration {
	sign := 1
	if lessDate(a, b) {
		a, b = b, a
		sign = -1
	}
	years := a.Y - b.Y
	months := a.M - b.M
	days := a.D - b.D
	if days < 0 {
		months--
		// Borrow from the month before a's month.
		pm, py := a.M-1, a.Y
		if pm == 0 {
			pm, py = 12, a.Y-1
		}
		days += DaysInMonth(py, pm)
	}
	if months < 0 {
		years--
		months += 12
	}
	return value.Duration{Years: sign * years, Months: sign * months, Days: sign * days}
}

func lessDate(a, b value.PlainDate) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.M != b.M {
		return a.M < b.M
	}
	return a.D < b.D
}

// DiffInstants computes the Duration between two instants, populated
// only in the time components (no months/years: instants have no
// calendar).
func DiffInstants(a, b value.Instant) value.Duration {
	ms := a.EpochMs - b.EpochMs
	return millisToDuration(ms)
}

func millisToDuration(ms int64) value.Duration {
	neg := ms < 0
	if neg {
		ms = -ms
	}
	d := value.Duration{
		Days:    int(ms / (24 * 3600 * 1000)),
		Hours:   int((ms / (3600 * 1000)) % 24),
		Minutes: int((ms / (60 * 1000)) % 60),
		Seconds: int((ms / 1000) % 60),
		Millis:  int(ms % 1000),
	}
	if neg {
		d = NegateDuration(d)
	}
	return d
}

// Now returns the current instant.
func Now() value.Instant {
	return value.Instant{EpochMs: time.Now().UnixMilli()}
}

// location resolves a timezone alias/IANA id against idx, then loads
// the *time.Location that carries that zone's IANA transition rules. A
// fixed "UTC+5:30"/"UTC-7" spelling (from a literal clock-time offset
// rather than a named zone) builds a fixed-offset Location directly,
// since no IANA entry names an arbitrary fixed offset.
func location(idx *refdata.TimezoneIndex, zone string) (*time.Location, string, error) {
	if loc, ok := parseFixedOffset(zone); ok {
		return loc, zone, nil
	}
	iana := zone
	if resolved, ok := idx.Resolve(zone); ok {
		iana = resolved
	}
	loc, err := time.LoadLocation(iana)
	if err != nil {
		return nil, "", fmt.Errorf("unknown timezone %q", zone)
	}
	return loc, iana, nil
}

// parseFixedOffset recognizes "UTC+H", "UTC-H", "UTC+H:MM" spellings.
func parseFixedOffset(zone string) (*time.Location, bool) {
	rest, ok := strings.CutPrefix(zone, "UTC")
	if !ok || rest == "" {
		return nil, false
	}
	sign := 1
	switch rest[0] {
	case '+':
		rest = rest[1:]
	case '-':
		sign, rest = -1, rest[1:]
	default:
		return nil, false
	}
	hours, minutes := rest, "0"
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		hours, minutes = rest[:i], rest[i+1:]
	}
	h, err1 := strconv.Atoi(hours)
	m, err2 := strconv.Atoi(minutes)
	if err1 != nil || err2 != nil {
		return nil, false
	}
	offset := sign * (h*3600 + m*60)
	return time.FixedZone(zone, offset), true
}

// PlainDateTimeToInstant converts a wall-clock date/time in zone to an
// absolute Instant. A DST-skipped local time maps forward to the
// first valid instant; a DST-repeated local time maps to the earlier
// offset — both are the standard library's own Date semantics for an
// ambiguous or non-existent wall clock reading, which matches IANA tz
// rules directly.
func PlainDateTimeToInstant(dt value.PlainDateTime, idx *refdata.TimezoneIndex, zone string) (value.Instant, error) {
	loc, _, err := location(idx, zone)
	if err != nil {
		return value.Instant{}, err
	}
	t := time.Date(dt.Date.Y, time.Month(dt.Date.M), dt.Date.D, dt.Time.H, dt.Time.Min, dt.Time.S, dt.Time.Ms*1e6, loc)
	return value.Instant{EpochMs: t.UnixMilli()}, nil
}

// InstantToZoned attaches zone's wall-clock representation to i.
func InstantToZoned(i value.Instant, idx *refdata.TimezoneIndex, zone string) (value.ZonedDateTime, error) {
	_, iana, err := location(idx, zone)
	if err != nil {
		return value.ZonedDateTime{}, err
	}
	return value.ZonedDateTime{Instant: i, Zone: iana}, nil
}

// ZonedToPlainDateTime reads off the wall-clock date/time a
// ZonedDateTime represents.
func ZonedToPlainDateTime(z value.ZonedDateTime, idx *refdata.TimezoneIndex) (value.PlainDateTime, error) {
	loc, ok := parseFixedOffset(z.Zone)
	if !ok {
		var err error
		loc, err = time.LoadLocation(z.Zone)
		if err != nil {
			return value.PlainDateTime{}, fmt.Errorf("unknown timezone %q", z.Zone)
		}
	}
	t := time.UnixMilli(z.Instant.EpochMs).In(loc)
	return value.PlainDateTime{
		Date: value.PlainDate{Y: t.Year(), M: int(t.Month()), D: t.Day()},
		Time: value.PlainTime{H: t.Hour(), Min: t.Minute(), S: t.Second(), Ms: t.Nanosecond() / 1e6},
	}, nil
}
