package datetime

import (
	"fmt"
	"time"

	"github.com/shabbyrobe/go-prim"
	"github.com/shabbyrobe/go-prim/calendar"
	"github.com/shabbyrobe/go-prim/culture"
)

// Formatter carries the context for a formatting call. The zero value
// formats with the invariant culture and the system zone.
//
// A format is either a single standard specifier or a custom pattern:
//
//	d  short date          D  long date
//	f  long date, short time
//	F  full date and time
//	g  general, short time G  general, long time
//	m  month and day       M  month and day
//	o  round trip          O  round trip
//	r  RFC 1123            R  RFC 1123
//	s  sortable            u  universal sortable
//	t  short time          T  long time
//	U  universal full (DateTime only)
//	y  year and month      Y  year and month
//
// O, R, s and u never consult the culture.
type Formatter struct {
	Provider culture.Provider
	Zone     Zone
}

// FormatError is returned for malformed patterns and short buffers.
type FormatError struct {
	Format string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("datetime: format %q: %v", e.Format, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (f Formatter) Format(d DateTime, format string) (string, error) {
	var buf [64]byte
	out, err := f.appendFormat(buf[:0], d, nullOffset, format)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (f Formatter) AppendFormat(dst []byte, d DateTime, format string) ([]byte, error) {
	return f.appendFormat(dst, d, nullOffset, format)
}

// TryFormat writes into dst and returns the number of bytes written. If dst
// is too short it fails with prim.ErrInsufficientDestination and dst is left
// untouched.
func (f Formatter) TryFormat(dst []byte, d DateTime, format string) (int, error) {
	return f.tryFormat(dst, d, nullOffset, format)
}

func (f Formatter) FormatOffset(o DateTimeOffset, format string) (string, error) {
	var buf [64]byte
	out, err := f.appendFormat(buf[:0], o.DateTime(), o.Offset(), format)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (f Formatter) AppendFormatOffset(dst []byte, o DateTimeOffset, format string) ([]byte, error) {
	return f.appendFormat(dst, o.DateTime(), o.Offset(), format)
}

func (f Formatter) TryFormatOffset(dst []byte, o DateTimeOffset, format string) (int, error) {
	return f.tryFormat(dst, o.DateTime(), o.Offset(), format)
}

func (f Formatter) appendFormat(dst []byte, d DateTime, offset time.Duration, format string) ([]byte, error) {
	zone := zoneOrSystem(f.Zone)
	if p, ok := planFast(d, offset, format, zone); ok {
		return appendFast(dst, p), nil
	}
	out, err := f.appendGeneral(dst, d, offset, format, zone)
	if err != nil {
		return dst, &FormatError{Format: format, Err: err}
	}
	return out, nil
}

func (f Formatter) tryFormat(dst []byte, d DateTime, offset time.Duration, format string) (int, error) {
	zone := zoneOrSystem(f.Zone)
	if p, ok := planFast(d, offset, format, zone); ok {
		if len(dst) < p.len() {
			return 0, &FormatError{Format: format, Err: prim.ErrInsufficientDestination}
		}
		return p.write(dst), nil
	}

	var buf [128]byte
	out, err := f.appendGeneral(buf[:0], d, offset, format, zone)
	if err != nil {
		return 0, &FormatError{Format: format, Err: err}
	}
	if len(out) > len(dst) {
		return 0, &FormatError{Format: format, Err: prim.ErrInsufficientDestination}
	}
	return copy(dst, out), nil
}

func appendFast(dst []byte, p fastPlan) []byte {
	n := p.len()
	ln := len(dst)
	if cap(dst)-ln < n {
		nd := make([]byte, ln, ln+n)
		copy(nd, dst)
		dst = nd
	}
	dst = dst[:ln+n]
	p.write(dst[ln:])
	return dst
}

func (f Formatter) appendGeneral(dst []byte, d DateTime, offset time.Duration, format string, zone Zone) ([]byte, error) {
	dtf := culture.DateTime(f.Provider)

	if format == "" {
		// Calendars that cannot represent 0001-01-01 print a bare time of day
		// in ISO form.
		timeOnly := false
		if d.ticks < calendar.TicksPerDay {
			switch dtf.Cal().ID() {
			case calendar.JapaneseID, calendar.HebrewID:
				timeOnly = true
				dtf = culture.DateTime(nil)
			}
		}
		switch {
		case offset == nullOffset && timeOnly:
			format = "s"
		case offset == nullOffset:
			format = "G"
		case timeOnly:
			format = culture.RoundtripPatternUnfixed
		default:
			format = dtf.DateTimeOffsetPattern()
		}
		if p, ok := planFast(d, offset, format, zone); ok {
			return appendFast(dst, p), nil
		}
	}

	if len(format) == 1 {
		var err error
		format, d, dtf, err = expandStandard(format[0], d, offset, dtf, zone)
		if err != nil {
			return dst, err
		}
	}
	return appendCustom(dst, d, offset, format, dtf, zone)
}

// expandStandard maps a standard specifier to its custom pattern. Some
// specifiers also switch to the invariant culture or shift d to UTC.
func expandStandard(spec byte, d DateTime, offset time.Duration, dtf *culture.DateTimeFormat, zone Zone) (string, DateTime, *culture.DateTimeFormat, error) {
	invariant := culture.DateTime(nil)

	switch spec {
	case 'd':
		return dtf.ShortDatePattern, d, dtf, nil
	case 'D':
		return dtf.LongDatePattern, d, dtf, nil
	case 'f':
		return dtf.LongDatePattern + " " + dtf.ShortTimePattern, d, dtf, nil
	case 'F':
		return dtf.FullDateTimePattern, d, dtf, nil
	case 'g':
		return dtf.GeneralShortTimePattern(), d, dtf, nil
	case 'G':
		return dtf.GeneralLongTimePattern(), d, dtf, nil
	case 'm', 'M':
		return dtf.MonthDayPattern, d, dtf, nil
	case 't':
		return dtf.ShortTimePattern, d, dtf, nil
	case 'T':
		return dtf.LongTimePattern, d, dtf, nil
	case 'y', 'Y':
		return dtf.YearMonthPattern, d, dtf, nil

	case 'o', 'O':
		return culture.RoundtripPattern, d, invariant, nil
	case 'r', 'R':
		if offset != nullOffset {
			d.ticks -= int64(offset / 100)
		}
		return culture.RFC1123Pattern, d, invariant, nil
	case 's':
		return culture.SortableDateTimePattern, d, invariant, nil
	case 'u':
		if offset != nullOffset {
			d.ticks -= int64(offset / 100)
		}
		return culture.UniversalSortableDateTimePattern, d, invariant, nil

	case 'U':
		if offset != nullOffset {
			return "", d, dtf, prim.ErrBadFormat
		}
		dtf = dtf.Gregorian()
		return dtf.FullDateTimePattern, d.UTC(zone), dtf, nil
	}

	return "", d, dtf, prim.ErrBadFormat
}
