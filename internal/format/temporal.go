package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/blueset/calc-sub004/internal/config"
	"github.com/blueset/calc-sub004/internal/refdata"
	"github.com/blueset/calc-sub004/internal/temporal"
	"github.com/blueset/calc-sub004/internal/value"
)

func renderDate(d value.PlainDate, s *config.Settings) string {
	tmpl := s.Format.DateFormat
	if tmpl == "" {
		tmpl = "YYYY-MM-DD"
	}
	r := strings.NewReplacer(
		"YYYY", fmt.Sprintf("%04d", d.Y),
		"MM", fmt.Sprintf("%02d", d.M),
		"DD", fmt.Sprintf("%02d", d.D),
	)
	return r.Replace(tmpl)
}

func renderTime(t value.PlainTime, s *config.Settings) string {
	if s.Format.TimeFormat == "h12" {
		h := t.H % 12
		if h == 0 {
			h = 12
		}
		suffix := "AM"
		if t.H >= 12 {
			suffix = "PM"
		}
		if t.Ms != 0 {
			return fmt.Sprintf("%d:%02d:%02d.%03d %s", h, t.Min, t.S, t.Ms, suffix)
		}
		return fmt.Sprintf("%d:%02d:%02d %s", h, t.Min, t.S, suffix)
	}
	if t.Ms != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%03d", t.H, t.Min, t.S, t.Ms)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.H, t.Min, t.S)
}

func renderDateTime(dt value.PlainDateTime, s *config.Settings) string {
	d, t := renderDate(dt.Date, s), renderTime(dt.Time, s)
	if s.Format.DateTimeOrder == "time_first" {
		return t + " " + d
	}
	return d + " " + t
}

func renderInstant(i value.Instant, idx *refdata.Index, s *config.Settings) string {
	t := time.UnixMilli(i.EpochMs).UTC()
	dt := value.PlainDateTime{
		Date: value.PlainDate{Y: t.Year(), M: int(t.Month()), D: t.Day()},
		Time: value.PlainTime{H: t.Hour(), Min: t.Minute(), S: t.Second(), Ms: t.Nanosecond() / 1e6},
	}
	return renderDateTime(dt, s) + " UTC"
}

func renderZoned(z value.ZonedDateTime, idx *refdata.Index, s *config.Settings) string {
	dt, err := temporal.ZonedToPlainDateTime(z, idx.Timezones)
	if err != nil {
		return renderInstant(z.Instant, idx, s)
	}
	name := z.Zone
	if n, ok := idx.Timezones.DisplayName(z.Zone); ok {
		name = n
	}
	return renderDateTime(dt, s) + " " + name
}

func renderDuration(d value.Duration) string {
	fields := []struct {
		n int
		u string
	}{
		{d.Years, "y"}, {d.Months, "mo"}, {d.Weeks, "w"}, {d.Days, "d"},
		{d.Hours, "h"}, {d.Minutes, "mi"}, {d.Seconds, "s"}, {d.Millis, "ms"},
	}
	var parts []string
	for _, f := range fields {
		if f.n != 0 {
			parts = append(parts, fmt.Sprintf("%d%s", f.n, f.u))
		}
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}
