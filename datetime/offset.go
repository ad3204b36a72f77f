package datetime

import (
	"errors"
	"time"

	"github.com/shabbyrobe/go-prim/calendar"
)

const (
	MaxOffset = 14 * time.Hour
	MinOffset = -MaxOffset

	// nullOffset marks a DateTime being formatted, as opposed to a
	// DateTimeOffset, in the formatter internals.
	nullOffset time.Duration = -1 << 63
)

var (
	ErrOffsetPrecision   = errors.New("datetime: offset must be specified in whole minutes")
	ErrOffsetRange       = errors.New("datetime: offset must be within plus or minus 14 hours")
	ErrUTCRange          = errors.New("datetime: UTC time represented when the offset is applied must be between year 0 and 10,000")
	ErrOffsetUTCMismatch = errors.New("datetime: offset for a UTC time must be zero")
)

// DateTimeOffset is a wall clock reading paired with its offset from UTC.
// Both the clock and the UTC instant it implies are within the DateTime
// range.
type DateTimeOffset struct {
	clock         int64
	offsetMinutes int16
}

func validateOffset(offset time.Duration) (int16, error) {
	if offset%time.Minute != 0 {
		return 0, ErrOffsetPrecision
	}
	if offset < MinOffset || offset > MaxOffset {
		return 0, ErrOffsetRange
	}
	return int16(offset / time.Minute), nil
}

// NewOffset pairs clock with offset. A UTC clock must have a zero offset; the
// kind is otherwise discarded.
func NewOffset(clock DateTime, offset time.Duration) (DateTimeOffset, error) {
	mins, err := validateOffset(offset)
	if err != nil {
		return DateTimeOffset{}, err
	}
	if clock.kind == UTC && offset != 0 {
		return DateTimeOffset{}, ErrOffsetUTCMismatch
	}
	utc := clock.ticks - int64(offset/100)
	if utc < calendar.MinTicks || utc > calendar.MaxTicks {
		return DateTimeOffset{}, ErrUTCRange
	}
	return DateTimeOffset{clock: clock.ticks, offsetMinutes: mins}, nil
}

// FromDateTime takes the offset from d's kind: zero for UTC, otherwise the
// zone's offset for d's wall clock.
func FromDateTime(d DateTime, zone Zone) (DateTimeOffset, error) {
	if d.kind == UTC {
		return NewOffset(d, 0)
	}
	return NewOffset(d.WithKind(Unspecified), zoneOrSystem(zone).OffsetAtLocal(d.ticks))
}

// OffsetFromTime takes t's wall clock and zone offset. Offsets that are not
// whole minutes fail with ErrOffsetPrecision.
func OffsetFromTime(t time.Time) (DateTimeOffset, error) {
	clock, err := FromTime(t)
	if err != nil {
		return DateTimeOffset{}, err
	}
	_, off := t.Zone()
	return NewOffset(clock.WithKind(Unspecified), time.Duration(off)*time.Second)
}

func (o DateTimeOffset) Offset() time.Duration {
	return time.Duration(o.offsetMinutes) * time.Minute
}

// Ticks are the clock ticks.
func (o DateTimeOffset) Ticks() int64 { return o.clock }

func (o DateTimeOffset) UTCTicks() int64 {
	return o.clock - int64(o.Offset()/100)
}

// DateTime returns the wall clock as an Unspecified value.
func (o DateTimeOffset) DateTime() DateTime {
	return DateTime{ticks: o.clock, kind: Unspecified}
}

func (o DateTimeOffset) UTCDateTime() DateTime {
	return DateTime{ticks: o.UTCTicks(), kind: UTC}
}

// Time returns the instant in a fixed location carrying o's offset.
func (o DateTimeOffset) Time() time.Time {
	sec, nsec := calendar.ToUnix(o.UTCTicks())
	return time.Unix(sec, nsec).In(time.FixedZone("", int(o.Offset()/time.Second)))
}

func (o DateTimeOffset) Year() int               { return o.DateTime().Year() }
func (o DateTimeOffset) Month() int              { return o.DateTime().Month() }
func (o DateTimeOffset) Day() int                { return o.DateTime().Day() }
func (o DateTimeOffset) Hour() int               { return o.DateTime().Hour() }
func (o DateTimeOffset) Minute() int             { return o.DateTime().Minute() }
func (o DateTimeOffset) Second() int             { return o.DateTime().Second() }
func (o DateTimeOffset) Nanosecond() int         { return o.DateTime().Nanosecond() }
func (o DateTimeOffset) DayOfWeek() time.Weekday { return o.DateTime().DayOfWeek() }

// Equal reports whether o and v are the same instant, whatever their
// offsets.
func (o DateTimeOffset) Equal(v DateTimeOffset) bool {
	return o.UTCTicks() == v.UTCTicks()
}

// String formats o with the invariant default offset pattern.
func (o DateTimeOffset) String() string {
	s, err := Formatter{}.FormatOffset(o, "")
	if err != nil {
		panic(err)
	}
	return s
}

func (o DateTimeOffset) Format(format string) (string, error) {
	return Formatter{}.FormatOffset(o, format)
}

func (o DateTimeOffset) AppendFormat(dst []byte, format string) ([]byte, error) {
	return Formatter{}.AppendFormatOffset(dst, o, format)
}

func (o DateTimeOffset) TryFormat(dst []byte, format string) (int, error) {
	return Formatter{}.TryFormatOffset(dst, o, format)
}

func (o DateTimeOffset) MarshalText() ([]byte, error) {
	return o.AppendFormat(nil, "O")
}

func (o *DateTimeOffset) UnmarshalText(b []byte) error {
	v, err := ParseExactOffset(string(b), "O", nil)
	if err != nil {
		return err
	}
	*o = v
	return nil
}
