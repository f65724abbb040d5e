package eval

import (
	"github.com/blueset/calc-sub004/internal/value"
)

// compare implements <,<=,>,>=,==,!= across every value shape
// comparison is meaningful for: same-dimension Numbers (converted
// through the base unit), Booleans, the temporal family by natural
// ordering, and Durations by total-millisecond (or year/month-plus-
// millisecond, when either side carries calendar components) reduction.
func (ev *evaluator) compare(op string, l, r value.Value, sp value.Span) value.Value {
	if op == "==" || op == "!=" {
		eq, errv := ev.equal(l, r, sp)
		if errv != nil {
			return errv
		}
		if op == "==" {
			return value.Boolean{B: eq}
		}
		return value.Boolean{B: !eq}
	}

	c, errv := ev.order(l, r, sp)
	if errv != nil {
		return errv
	}
	switch op {
	case "<":
		return value.Boolean{B: c < 0}
	case "<=":
		return value.Boolean{B: c <= 0}
	case ">":
		return value.Boolean{B: c > 0}
	case ">=":
		return value.Boolean{B: c >= 0}
	}
	return value.Errorf(value.DomainError, sp, "unsupported comparison %q", op)
}

// equal reports structural equality, converting same-dimension
// Numbers into a common unit first rather than relying on Value.Equal
// (which requires an identical unit spelling).
func (ev *evaluator) equal(l, r value.Value, sp value.Span) (bool, value.Value) {
	if ln, ok := l.(value.Number); ok {
		if rn, ok2 := r.(value.Number); ok2 {
			if !sameDimension(ev.env.Idx, ln.Unit, rn.Unit) {
				return false, nil
			}
			converted, errv := convertScalar(ev.env, rn.X, rn.Unit, ln.Unit, sp)
			if errv != nil {
				return false, errv
			}
			return ln.X == converted, nil
		}
	}
	if ld, ok := l.(value.Duration); ok {
		if rd, ok2 := r.(value.Duration); ok2 {
			return durationCompare(ld, rd) == 0, nil
		}
	}
	return l.Equal(r), nil
}

// order compares l and r, returning -1/0/1, or an error when the pair
// has no defined ordering.
func (ev *evaluator) order(l, r value.Value, sp value.Span) (int, value.Value) {
	switch lt := l.(type) {
	case value.Number:
		rt, ok := r.(value.Number)
		if !ok || !sameDimension(ev.env.Idx, lt.Unit, rt.Unit) {
			return 0, value.Errorf(value.DimensionMismatch, sp, "cannot compare %s and %s", l.TypeName(), r.TypeName())
		}
		converted, errv := convertScalar(ev.env, rt.X, rt.Unit, lt.Unit, sp)
		if errv != nil {
			return 0, errv
		}
		return cmpFloat(lt.X, converted), nil
	case value.PlainDate:
		rt, ok := r.(value.PlainDate)
		if !ok {
			return 0, value.Errorf(value.DomainError, sp, "cannot compare %s and %s", l.TypeName(), r.TypeName())
		}
		return cmpDate(lt, rt), nil
	case value.PlainTime:
		rt, ok := r.(value.PlainTime)
		if !ok {
			return 0, value.Errorf(value.DomainError, sp, "cannot compare %s and %s", l.TypeName(), r.TypeName())
		}
		return cmpInt(timeMs(lt), timeMs(rt)), nil
	case value.PlainDateTime:
		rt, ok := r.(value.PlainDateTime)
		if !ok {
			return 0, value.Errorf(value.DomainError, sp, "cannot compare %s and %s", l.TypeName(), r.TypeName())
		}
		if c := cmpDate(lt.Date, rt.Date); c != 0 {
			return c, nil
		}
		return cmpInt(timeMs(lt.Time), timeMs(rt.Time)), nil
	case value.Instant:
		rt, ok := r.(value.Instant)
		if !ok {
			return 0, value.Errorf(value.DomainError, sp, "cannot compare %s and %s", l.TypeName(), r.TypeName())
		}
		return cmpInt64(lt.EpochMs, rt.EpochMs), nil
	case value.ZonedDateTime:
		rt, ok := r.(value.ZonedDateTime)
		if !ok {
			return 0, value.Errorf(value.DomainError, sp, "cannot compare %s and %s", l.TypeName(), r.TypeName())
		}
		return cmpInt64(lt.Instant.EpochMs, rt.Instant.EpochMs), nil
	case value.Duration:
		rt, ok := r.(value.Duration)
		if !ok {
			return 0, value.Errorf(value.DomainError, sp, "cannot compare %s and %s", l.TypeName(), r.TypeName())
		}
		return durationCompare(lt, rt), nil
	}
	return 0, value.Errorf(value.DomainError, sp, "%s is not ordered", l.TypeName())
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpDate(a, b value.PlainDate) int {
	if a.Y != b.Y {
		return cmpInt(a.Y, b.Y)
	}
	if a.M != b.M {
		return cmpInt(a.M, b.M)
	}
	return cmpInt(a.D, b.D)
}

func timeMs(t value.PlainTime) int {
	return ((t.H*60+t.Min)*60+t.S)*1000 + t.Ms
}

// durationCompare reduces each Duration to (years, months, remaining
// milliseconds) and compares lexicographically; a Duration with no
// calendar components reduces to (0, 0, TotalMillis()).
func durationCompare(a, b value.Duration) int {
	ay, am, ams := a.Years, a.Months, (value.Duration{Weeks: a.Weeks, Days: a.Days, Hours: a.Hours, Minutes: a.Minutes, Seconds: a.Seconds, Millis: a.Millis}).TotalMillis()
	by, bm, bms := b.Years, b.Months, (value.Duration{Weeks: b.Weeks, Days: b.Days, Hours: b.Hours, Minutes: b.Minutes, Seconds: b.Seconds, Millis: b.Millis}).TotalMillis()
	if ay != by {
		return cmpInt(ay, by)
	}
	if am != bm {
		return cmpInt(am, bm)
	}
	if ams < bms {
		return -1
	}
	if ams > bms {
		return 1
	}
	return 0
}
