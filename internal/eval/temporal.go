package eval

import (
	"time"

	"github.com/blueset/calc-sub004/internal/evalast"
	"github.com/blueset/calc-sub004/internal/temporal"
	"github.com/blueset/calc-sub004/internal/value"
)

// nowPlainDateTime reads env.Now's wall-clock date and time in UTC, the
// reference point every unzoned relative literal (today, "+3 days",
// a bare date/time missing a year) resolves against.
func (ev *evaluator) nowPlainDateTime() value.PlainDateTime {
	t := time.UnixMilli(ev.env.Now.EpochMs).UTC()
	return value.PlainDateTime{
		Date: value.PlainDate{Y: t.Year(), M: int(t.Month()), D: t.Day()},
		Time: value.PlainTime{H: t.Hour(), Min: t.Minute(), S: t.Second(), Ms: t.Nanosecond() / 1e6},
	}
}

func (ev *evaluator) dateLiteral(n *evalast.DateLiteralNode) value.Value {
	y := n.Y
	if !n.HasYear {
		y = ev.nowPlainDateTime().Date.Y
	}
	return value.PlainDate{Y: y, M: n.M, D: n.D}
}

func (ev *evaluator) timeLiteral(n *evalast.TimeLiteralNode) value.Value {
	sp := spanOf(n.Sp)
	if !n.HasZone {
		return value.PlainTime{H: n.H, Min: n.Min, S: n.S, Ms: n.Ms}
	}
	dt := value.PlainDateTime{
		Date: ev.nowPlainDateTime().Date,
		Time: value.PlainTime{H: n.H, Min: n.Min, S: n.S, Ms: n.Ms},
	}
	inst, err := temporal.PlainDateTimeToInstant(dt, ev.env.Idx.Timezones, n.Zone)
	if err != nil {
		return value.Errorf(value.TimezoneUnknown, sp, "%v", err)
	}
	zdt, err := temporal.InstantToZoned(inst, ev.env.Idx.Timezones, n.Zone)
	if err != nil {
		return value.Errorf(value.TimezoneUnknown, sp, "%v", err)
	}
	return zdt
}

func (ev *evaluator) relative(n *evalast.RelativeNode) value.Value {
	switch n.Kind {
	case evalast.RelativeNow:
		return ev.env.Now
	case evalast.RelativeToday:
		return ev.nowPlainDateTime().Date
	case evalast.RelativeYesterday:
		return temporal.AddDays(ev.nowPlainDateTime().Date, -1)
	case evalast.RelativeTomorrow:
		return temporal.AddDays(ev.nowPlainDateTime().Date, 1)
	}
	return value.Errorf(value.DomainError, spanOf(n.Sp), "unsupported relative literal")
}

// durationFromAmountUnit maps a normalized singular unit word ("day",
// "month", "hour", ...) to the matching Duration field. An unrecognized
// unit falls back to Days, the most common relative-offset grain.
func durationFromAmountUnit(x float64, unit string) value.Duration {
	n := int(x)
	switch unit {
	case "year":
		return value.Duration{Years: n}
	case "month":
		return value.Duration{Months: n}
	case "week":
		return value.Duration{Weeks: n}
	case "day":
		return value.Duration{Days: n}
	case "hour":
		return value.Duration{Hours: n}
	case "minute":
		return value.Duration{Minutes: n}
	case "second":
		return value.Duration{Seconds: n}
	default:
		return value.Duration{Days: n}
	}
}

func (ev *evaluator) relativeOffset(n *evalast.RelativeOffsetNode) value.Value {
	sp := spanOf(n.Sp)
	amt := ev.eval(n.Amount)
	if e, ok := value.IsError(amt); ok {
		return e
	}
	num, ok := amt.(value.Number)
	if !ok {
		return value.Errorf(value.DomainError, sp, "relative offset amount must be a dimensionless number")
	}
	d := durationFromAmountUnit(num.X, n.Unit)
	if n.Ago {
		d = temporal.NegateDuration(d)
	}
	dt := temporal.AddDuration(ev.nowPlainDateTime(), d)
	inst, err := temporal.PlainDateTimeToInstant(dt, ev.env.Idx.Timezones, "UTC")
	if err != nil {
		return value.Errorf(value.TimezoneUnknown, sp, "%v", err)
	}
	return inst
}

func (ev *evaluator) unix(n *evalast.UnixNode) value.Value {
	sp := spanOf(n.Sp)
	amt := ev.eval(n.Amount)
	if e, ok := value.IsError(amt); ok {
		return e
	}
	num, ok := amt.(value.Number)
	if !ok {
		return value.Errorf(value.DomainError, sp, "unix timestamp must be a dimensionless number")
	}
	return value.Instant{EpochMs: int64(num.X * 1000)}
}

// temporalAddSub recognizes the temporal operand combinations +/-
// accepts beyond plain quantities: Duration arithmetic, date/time plus
// a duration (a PlainTime that crosses midnight becomes a PlainDateTime
// on today's date plus the carried days), and date minus date, instant
// minus instant or zoned minus zoned yielding a Duration; two PlainTimes
// or two PlainDateTimes are not subtracted here. ok is
// false when neither operand is temporal, so addSub falls back to its
// dimensional-quantity path.
func (ev *evaluator) temporalAddSub(l, r value.Value, sign float64, sp value.Span) (value.Value, bool) {
	negIfNeeded := func(d value.Duration) value.Duration {
		if sign < 0 {
			return temporal.NegateDuration(d)
		}
		return d
	}

	switch lt := l.(type) {
	case value.Duration:
		if rt, ok := r.(value.Duration); ok {
			rd := negIfNeeded(rt)
			return value.Duration{
				Years: lt.Years + rd.Years, Months: lt.Months + rd.Months,
				Weeks: lt.Weeks + rd.Weeks, Days: lt.Days + rd.Days,
				Hours: lt.Hours + rd.Hours, Minutes: lt.Minutes + rd.Minutes,
				Seconds: lt.Seconds + rd.Seconds, Millis: lt.Millis + rd.Millis,
			}, true
		}
	case value.PlainDate:
		if rt, ok := r.(value.Duration); ok {
			return temporal.AddDuration(value.PlainDateTime{Date: lt}, negIfNeeded(rt)).Date, true
		}
		if rt, ok := r.(value.PlainDate); ok && sign < 0 {
			return temporal.DiffDates(lt, rt), true
		}
	case value.PlainTime:
		if rt, ok := r.(value.Duration); ok {
			t, carry := temporal.AddTime(lt, rt.Hours, rt.Minutes, rt.Seconds, rt.Millis)
			if sign < 0 {
				t, carry = temporal.AddTime(lt, -rt.Hours, -rt.Minutes, -rt.Seconds, -rt.Millis)
			}
			if carry != 0 {
				date := temporal.AddDays(ev.nowPlainDateTime().Date, carry)
				return value.PlainDateTime{Date: date, Time: t}, true
			}
			return t, true
		}
	case value.PlainDateTime:
		if rt, ok := r.(value.Duration); ok {
			return temporal.AddDuration(lt, negIfNeeded(rt)), true
		}
	case value.Instant:
		if rt, ok := r.(value.Duration); ok {
			if rt.HasCalendarComponents() {
				return value.Errorf(value.DomainError, sp, "an instant cannot be offset by a calendar duration"), true
			}
			ms := negIfNeeded(rt).TotalMillis()
			return value.Instant{EpochMs: lt.EpochMs + ms}, true
		}
		if rt, ok := r.(value.Instant); ok && sign < 0 {
			return temporal.DiffInstants(lt, rt), true
		}
	case value.ZonedDateTime:
		if rt, ok := r.(value.Duration); ok {
			dt, err := temporal.ZonedToPlainDateTime(lt, ev.env.Idx.Timezones)
			if err != nil {
				return value.Errorf(value.TimezoneUnknown, sp, "%v", err), true
			}
			dt = temporal.AddDuration(dt, negIfNeeded(rt))
			inst, err := temporal.PlainDateTimeToInstant(dt, ev.env.Idx.Timezones, lt.Zone)
			if err != nil {
				return value.Errorf(value.TimezoneUnknown, sp, "%v", err), true
			}
			zdt, err := temporal.InstantToZoned(inst, ev.env.Idx.Timezones, lt.Zone)
			if err != nil {
				return value.Errorf(value.TimezoneUnknown, sp, "%v", err), true
			}
			return zdt, true
		}
		if rt, ok := r.(value.ZonedDateTime); ok && sign < 0 {
			return temporal.DiffInstants(lt.Instant, rt.Instant), true
		}
	}
	return nil, false
}
