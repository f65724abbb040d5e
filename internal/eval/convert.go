package eval

import (
	"math"

	"github.com/blueset/calc-sub004/internal/evalast"
	"github.com/blueset/calc-sub004/internal/value"
)

func (ev *evaluator) conversion(n *evalast.ConversionNode) value.Value {
	v := ev.eval(n.Expr)
	if e, ok := value.IsError(v); ok {
		return e
	}
	sp := spanOf(n.Sp)
	switch t := n.Target.(type) {
	case *evalast.UnitTarget:
		if len(t.Units) == 0 {
			return value.Errorf(value.DomainError, sp, "empty conversion target")
		}
		if len(t.Units) == 1 {
			return convertToUnit(ev.env, v, t.Units[0], sp)
		}
		return convertToComposite(ev.env, v, t.Units, sp)

	case *evalast.FormatTarget:
		return value.Presented{Inner: v, Format: t.Format, Arg: t.Arg}

	case *evalast.BaseTarget:
		num, ok := v.(value.Number)
		if !ok || num.Unit != "" || num.X != math.Trunc(num.X) {
			return value.Errorf(value.DomainError, sp, "a base-N conversion requires a dimensionless whole number")
		}
		return value.Presented{Inner: v, Format: "base", Base: t.Base}

	case *evalast.PropertyTarget:
		return extractProperty(v, t.Property, sp)
	}
	return value.Errorf(value.DomainError, sp, "unsupported conversion target")
}

// convertToUnit converts v into a single named unit or currency. A
// unitless Number is relabeled at face value rather than scaled, since
// there is no source unit to convert from.
func convertToUnit(env *Env, v value.Value, target evalast.UnitRef, sp value.Span) value.Value {
	idx := env.Idx
	switch val := v.(type) {
	case value.Number:
		if val.Unit == "" {
			return value.Number{X: val.X, Unit: target.ID}
		}
		if !sameDimension(idx, val.Unit, target.ID) {
			return value.Errorf(value.DimensionMismatch, sp, "cannot convert %s to %s", val.Unit, target.ID)
		}
		converted, errv := convertScalar(env, val.X, val.Unit, target.ID, sp)
		if errv != nil {
			return errv
		}
		return value.Number{X: converted, Unit: target.ID}

	case value.Composite:
		reduced := reduceIfComposite(idx, val)
		rn, ok := reduced.(value.Number)
		if !ok {
			return value.Errorf(value.InvalidConversion, sp, "cannot convert this composite value")
		}
		return convertToUnit(env, rn, target, sp)

	case value.Duration:
		if val.HasCalendarComponents() {
			return value.Errorf(value.InvalidConversion, sp, "a calendar duration cannot convert to a fixed time unit")
		}
		tu, ok := idx.Units.ByID(target.ID)
		if !ok || tu.Dimension != "time" {
			return value.Errorf(value.DimensionMismatch, sp, "cannot convert a duration to %s", target.ID)
		}
		return value.Number{X: tu.Conversion.FromBase(float64(val.TotalMillis()) / 1000), Unit: target.ID}
	}
	return value.Errorf(value.InvalidConversion, sp, "cannot convert %s", v.TypeName())
}

// convertToComposite distributes v across targets largest-to-smallest,
// each component keeping only its whole part except the last, which
// keeps whatever fraction remains (5 ft to ft in).
func convertToComposite(env *Env, v value.Value, targets []evalast.UnitRef, sp value.Span) value.Value {
	idx := env.Idx
	var baseTotal float64
	switch val := v.(type) {
	case value.Number:
		if val.Unit == "" {
			return value.Errorf(value.DimensionMismatch, sp, "cannot distribute a unitless number")
		}
		u, ok := idx.Units.ByID(val.Unit)
		if !ok {
			return value.Errorf(value.UnknownUnit, sp, "unknown unit %q", val.Unit)
		}
		baseTotal = u.Conversion.ToBase(val.X)
	case value.Composite:
		reduced := reduceIfComposite(idx, val)
		rn, ok := reduced.(value.Number)
		if !ok {
			return value.Errorf(value.InvalidConversion, sp, "cannot distribute this composite value")
		}
		u, ok2 := idx.Units.ByID(rn.Unit)
		if !ok2 {
			return value.Errorf(value.UnknownUnit, sp, "unknown unit %q", rn.Unit)
		}
		baseTotal = u.Conversion.ToBase(rn.X)
	case value.Duration:
		if val.HasCalendarComponents() {
			return value.Errorf(value.InvalidConversion, sp, "a calendar duration cannot distribute into fixed time units")
		}
		baseTotal = float64(val.TotalMillis()) / 1000
	default:
		return value.Errorf(value.InvalidConversion, sp, "cannot distribute %s", v.TypeName())
	}

	neg := baseTotal < 0
	remaining := baseTotal
	if neg {
		remaining = -remaining
	}
	parts := make([]value.Component, len(targets))
	for i, t := range targets {
		tu, ok := idx.Units.ByID(t.ID)
		if !ok {
			return value.Errorf(value.UnknownUnit, sp, "unknown unit %q", t.ID)
		}
		if i == len(targets)-1 {
			x := tu.Conversion.FromBase(remaining)
			if neg {
				x = -x
			}
			parts[i] = value.Component{X: x, Unit: t.ID}
			continue
		}
		whole := math.Trunc(tu.Conversion.FromBase(remaining))
		remaining -= tu.Conversion.ToBase(whole)
		if neg {
			whole = -whole
		}
		parts[i] = value.Component{X: whole, Unit: t.ID}
	}
	return value.Composite{Parts: parts}
}

// extractProperty pulls a named component (year, month, day, hour,
// minute, second, millisecond) out of a PlainDate, PlainTime or
// PlainDateTime; every other value, Instant and ZonedDateTime included,
// is rejected.
func extractProperty(v value.Value, prop string, sp value.Span) value.Value {
	var y, mo, d, h, mi, s, ms int
	var hasDate, hasTime bool
	switch t := v.(type) {
	case value.PlainDate:
		y, mo, d = t.Y, t.M, t.D
		hasDate = true
	case value.PlainTime:
		h, mi, s, ms = t.H, t.Min, t.S, t.Ms
		hasTime = true
	case value.PlainDateTime:
		y, mo, d = t.Date.Y, t.Date.M, t.Date.D
		h, mi, s, ms = t.Time.H, t.Time.Min, t.Time.S, t.Time.Ms
		hasDate, hasTime = true, true
	case value.ZonedDateTime:
		return value.Errorf(value.DomainError, sp, "extract a property from a plain date/time, not a zoned instant")
	default:
		return value.Errorf(value.InvalidConversion, sp, "%s has no properties", v.TypeName())
	}
	switch prop {
	case "year":
		if !hasDate {
			break
		}
		return value.Number{X: float64(y)}
	case "month":
		if !hasDate {
			break
		}
		return value.Number{X: float64(mo)}
	case "day":
		if !hasDate {
			break
		}
		return value.Number{X: float64(d)}
	case "hour":
		if !hasTime {
			break
		}
		return value.Number{X: float64(h)}
	case "minute":
		if !hasTime {
			break
		}
		return value.Number{X: float64(mi)}
	case "second":
		if !hasTime {
			break
		}
		return value.Number{X: float64(s)}
	case "millisecond":
		if !hasTime {
			break
		}
		return value.Number{X: float64(ms)}
	}
	return value.Errorf(value.DomainError, sp, "%q is not a property of this value", prop)
}
