// Package datetime implements tick-based date/time values and their text
// formats: the custom pattern engine, the culture-dependent standard formats,
// and fixed-width fast paths for the round-trip (O), RFC 1123 (R), sortable
// (s) and universal sortable (u) forms.
//
// A tick is 100ns. Tick zero is 0001-01-01T00:00:00 in the proleptic
// Gregorian calendar.
package datetime

import (
	"fmt"
	"time"

	"github.com/shabbyrobe/go-prim/calendar"
)

// Kind records how a DateTime's wall clock relates to UTC.
type Kind uint8

const (
	Unspecified Kind = iota
	UTC
	Local
)

func (k Kind) String() string {
	switch k {
	case Unspecified:
		return "Unspecified"
	case UTC:
		return "Utc"
	case Local:
		return "Local"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// DateTime is a wall clock reading with tick resolution.
type DateTime struct {
	ticks int64
	kind  Kind
}

var (
	MinValue = DateTime{ticks: calendar.MinTicks}
	MaxValue = DateTime{ticks: calendar.MaxTicks}
)

// New returns the DateTime for a Gregorian date and time of day.
func New(year, month, day, hour, minute, second int, kind Kind) (DateTime, error) {
	date, err := calendar.DateToTicks(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	clock, err := calendar.TimeToTicks(hour, minute, second)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{ticks: date + clock, kind: kind}, nil
}

func FromTicks(ticks int64, kind Kind) (DateTime, error) {
	if ticks < calendar.MinTicks || ticks > calendar.MaxTicks {
		return DateTime{}, calendar.ErrOutOfRange
	}
	return DateTime{ticks: ticks, kind: kind}, nil
}

// FromTime takes the wall clock of t in its own location. Times in time.UTC
// are UTC, times in time.Local are Local and anything else is Unspecified.
// Nanoseconds below tick resolution are truncated.
func FromTime(t time.Time) (DateTime, error) {
	if y := t.Year(); y < 1 || y > calendar.MaxYear {
		return DateTime{}, calendar.ErrOutOfRange
	}
	kind := Unspecified
	switch t.Location() {
	case time.UTC:
		kind = UTC
	case time.Local:
		kind = Local
	}
	_, off := t.Zone()
	return DateTime{
		ticks: calendar.FromUnix(t.Unix()+int64(off), int64(t.Nanosecond())),
		kind:  kind,
	}, nil
}

// Time converts d to a time.Time. UTC values are returned in time.UTC; any
// other kind is read as a local wall clock in zone and returned in a fixed
// location carrying zone's offset.
func (d DateTime) Time(zone Zone) time.Time {
	sec, nsec := calendar.ToUnix(d.ticks)
	if d.kind == UTC {
		return time.Unix(sec, nsec).UTC()
	}
	off := zoneOrSystem(zone).OffsetAtLocal(d.ticks)
	offSec := int(off / time.Second)
	return time.Unix(sec-int64(offSec), nsec).In(time.FixedZone("", offSec))
}

func (d DateTime) Ticks() int64 { return d.ticks }
func (d DateTime) Kind() Kind   { return d.kind }

// WithKind returns d with its kind replaced and the clock unchanged.
func (d DateTime) WithKind(kind Kind) DateTime { return DateTime{ticks: d.ticks, kind: kind} }

// Date returns the Gregorian year, month and day.
func (d DateTime) Date() (year, month, day int) { return calendar.Date(d.ticks) }

func (d DateTime) Year() int {
	y, _, _ := calendar.Date(d.ticks)
	return y
}

func (d DateTime) Month() int {
	_, m, _ := calendar.Date(d.ticks)
	return m
}

func (d DateTime) Day() int {
	_, _, day := calendar.Date(d.ticks)
	return day
}

func (d DateTime) Hour() int       { return int(d.ticks / calendar.TicksPerHour % 24) }
func (d DateTime) Minute() int     { return int(d.ticks / calendar.TicksPerMinute % 60) }
func (d DateTime) Second() int     { return int(d.ticks / calendar.TicksPerSecond % 60) }
func (d DateTime) Nanosecond() int { return int(d.ticks%calendar.TicksPerSecond) * 100 }

func (d DateTime) DayOfWeek() time.Weekday { return calendar.DayOfWeek(d.ticks) }

func (d DateTime) TimeOfDay() time.Duration {
	return time.Duration(d.ticks%calendar.TicksPerDay) * 100
}

// Add moves d by dur, truncated to whole ticks.
func (d DateTime) Add(dur time.Duration) (DateTime, error) {
	return d.AddTicks(int64(dur / 100))
}

func (d DateTime) AddTicks(n int64) (DateTime, error) {
	if n > calendar.MaxTicks-d.ticks || n < calendar.MinTicks-d.ticks {
		return DateTime{}, calendar.ErrOutOfRange
	}
	return DateTime{ticks: d.ticks + n, kind: d.kind}, nil
}

// UTC converts a Local or Unspecified value to UTC using zone. The result is
// clamped to the representable range.
func (d DateTime) UTC(zone Zone) DateTime {
	if d.kind == UTC {
		return d
	}
	off := zoneOrSystem(zone).OffsetAtLocal(d.ticks)
	return DateTime{ticks: clampTicks(d.ticks - int64(off/100)), kind: UTC}
}

// Local converts a UTC value to a Local one using zone. Unspecified values
// are assumed to be UTC. Local values are returned unchanged.
func (d DateTime) Local(zone Zone) DateTime {
	if d.kind == Local {
		return d
	}
	off := zoneOrSystem(zone).OffsetAtUTC(d.ticks)
	return DateTime{ticks: clampTicks(d.ticks + int64(off/100)), kind: Local}
}

func clampTicks(t int64) int64 {
	if t < calendar.MinTicks {
		return calendar.MinTicks
	} else if t > calendar.MaxTicks {
		return calendar.MaxTicks
	}
	return t
}

// Compare orders by ticks alone; kinds are not consulted.
func (d DateTime) Compare(o DateTime) int {
	switch {
	case d.ticks < o.ticks:
		return -1
	case d.ticks > o.ticks:
		return 1
	}
	return 0
}

// String formats d with the invariant general pattern.
func (d DateTime) String() string {
	s, err := Formatter{}.Format(d, "G")
	if err != nil {
		panic(err)
	}
	return s
}

func (d DateTime) Format(format string) (string, error) {
	return Formatter{}.Format(d, format)
}

func (d DateTime) AppendFormat(dst []byte, format string) ([]byte, error) {
	return Formatter{}.AppendFormat(dst, d, format)
}

func (d DateTime) TryFormat(dst []byte, format string) (int, error) {
	return Formatter{}.TryFormat(dst, d, format)
}

// MarshalText uses the round-trip format. Local values take their offset
// from the system zone.
func (d DateTime) MarshalText() ([]byte, error) {
	return d.AppendFormat(nil, "O")
}

func (d *DateTime) UnmarshalText(b []byte) error {
	v, err := ParseExact(string(b), "O", nil)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
