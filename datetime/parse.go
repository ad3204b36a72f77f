package datetime

import (
	"errors"
	"strconv"
	"time"

	"github.com/shabbyrobe/go-prim"
	"github.com/shabbyrobe/go-prim/calendar"
)

var (
	ErrSyntax    = errors.New("string was not recognized as a valid DateTime")
	ErrDayOfWeek = errors.New("day of week does not match the date")
)

// ParseError is returned by the parsing functions. Err is ErrSyntax,
// ErrDayOfWeek, prim.ErrBadFormat for an unsupported format, or one of the
// range errors from calendar and NewOffset.
type ParseError struct {
	Func   string
	Input  string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return "datetime: " + e.Func + " " + strconv.Quote(e.Input) + " as " + strconv.Quote(e.Format) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

type zoneMark uint8

const (
	markNone zoneMark = iota
	markUTC
	markOffset
)

type fixedResult struct {
	ticks  int64
	mark   zoneMark
	offset time.Duration
}

// ParseExact reads s in one of the fixed formats O, R, s or u.
//
// An O string with no zone gives an Unspecified value and one ending in 'Z'
// gives a UTC value. An O string with an offset is converted to a Local
// value in zone, nil meaning the system zone. R and u give UTC values; s
// gives an Unspecified value.
func ParseExact(s string, format string, zone Zone) (DateTime, error) {
	d, err := parseExact(s, format, zone)
	if err != nil {
		return DateTime{}, &ParseError{Func: "ParseExact", Input: s, Format: format, Err: err}
	}
	return d, nil
}

func TryParseExact(s string, format string, zone Zone) (DateTime, bool) {
	d, err := parseExact(s, format, zone)
	return d, err == nil
}

// ParseExactOffset reads s in one of the fixed formats O, R, s or u. Strings
// with no zone take zone's offset for their wall clock; 'Z', R and u give a
// zero offset.
func ParseExactOffset(s string, format string, zone Zone) (DateTimeOffset, error) {
	o, err := parseExactOffset(s, format, zone)
	if err != nil {
		return DateTimeOffset{}, &ParseError{Func: "ParseExactOffset", Input: s, Format: format, Err: err}
	}
	return o, nil
}

func TryParseExactOffset(s string, format string, zone Zone) (DateTimeOffset, bool) {
	o, err := parseExactOffset(s, format, zone)
	return o, err == nil
}

func parseExact(s string, format string, zone Zone) (DateTime, error) {
	r, err := parseFixed(s, format)
	if err != nil {
		return DateTime{}, err
	}
	switch r.mark {
	case markUTC:
		return DateTime{ticks: r.ticks, kind: UTC}, nil
	case markOffset:
		utc := r.ticks - int64(r.offset/100)
		if utc < calendar.MinTicks || utc > calendar.MaxTicks {
			return DateTime{}, ErrUTCRange
		}
		local := utc + int64(zoneOrSystem(zone).OffsetAtUTC(utc)/100)
		if local < calendar.MinTicks || local > calendar.MaxTicks {
			return DateTime{}, calendar.ErrOutOfRange
		}
		return DateTime{ticks: local, kind: Local}, nil
	}
	return DateTime{ticks: r.ticks, kind: Unspecified}, nil
}

func parseExactOffset(s string, format string, zone Zone) (DateTimeOffset, error) {
	r, err := parseFixed(s, format)
	if err != nil {
		return DateTimeOffset{}, err
	}
	clock := DateTime{ticks: r.ticks}
	switch r.mark {
	case markUTC:
		return NewOffset(clock, 0)
	case markOffset:
		return NewOffset(clock, r.offset)
	}
	return NewOffset(clock, zoneOrSystem(zone).OffsetAtLocal(r.ticks))
}

func parseFixed(s string, format string) (r fixedResult, err error) {
	if len(format) != 1 {
		return r, prim.ErrBadFormat
	}
	switch format[0] {
	case 'O', 'o':
		return parseO(s)
	case 'R', 'r':
		return parseR(s)
	case 's':
		if len(s) != lenS {
			return r, ErrSyntax
		}
		r.ticks, err = parseDateClock(s, 'T')
		return r, err
	case 'u':
		if len(s) != lenU || s[19] != 'Z' {
			return r, ErrSyntax
		}
		r.ticks, err = parseDateClock(s, ' ')
		r.mark = markUTC
		return r, err
	}
	return r, prim.ErrBadFormat
}

// fixedNum reads n decimal digits at off.
func fixedNum(s string, off, n int) (v int, ok bool) {
	for i := off; i < off+n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}

// parseDateClock reads yyyy-MM-dd{sep}HH:mm:ss from the first 19 bytes of s.
func parseDateClock(s string, sep byte) (int64, error) {
	if len(s) < lenS || s[4] != '-' || s[7] != '-' || s[10] != sep || s[13] != ':' || s[16] != ':' {
		return 0, ErrSyntax
	}
	y, ok1 := fixedNum(s, 0, 4)
	mo, ok2 := fixedNum(s, 5, 2)
	d, ok3 := fixedNum(s, 8, 2)
	h, ok4 := fixedNum(s, 11, 2)
	mi, ok5 := fixedNum(s, 14, 2)
	sec, ok6 := fixedNum(s, 17, 2)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		return 0, ErrSyntax
	}
	date, err := calendar.DateToTicks(y, mo, d)
	if err != nil {
		return 0, err
	}
	clock, err := calendar.TimeToTicks(h, mi, sec)
	if err != nil {
		return 0, err
	}
	return date + clock, nil
}

func parseO(s string) (r fixedResult, err error) {
	if len(s) < lenO || s[19] != '.' {
		return r, ErrSyntax
	}
	if r.ticks, err = parseDateClock(s, 'T'); err != nil {
		return r, err
	}
	frac, ok := fixedNum(s, 20, maxFractionDigits)
	if !ok {
		return r, ErrSyntax
	}
	r.ticks += int64(frac)

	switch rest := s[lenO:]; {
	case rest == "":
	case rest == "Z":
		r.mark = markUTC
	case len(rest) == 6 && (rest[0] == '+' || rest[0] == '-') && rest[3] == ':':
		h, ok1 := fixedNum(rest, 1, 2)
		m, ok2 := fixedNum(rest, 4, 2)
		if !ok1 || !ok2 || m > 59 {
			return r, ErrSyntax
		}
		r.offset = time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
		if rest[0] == '-' {
			r.offset = -r.offset
		}
		if r.offset < MinOffset || r.offset > MaxOffset {
			return r, ErrOffsetRange
		}
		r.mark = markOffset
	default:
		return r, ErrSyntax
	}
	return r, nil
}

func parseR(s string) (r fixedResult, err error) {
	if len(s) != lenR || s[3] != ',' || s[4] != ' ' || s[7] != ' ' || s[11] != ' ' || s[16] != ' ' ||
		s[19] != ':' || s[22] != ':' || s[25:] != " GMT" {
		return r, ErrSyntax
	}

	dow := indexOf(invariantDays[:], s[0:3])
	month := indexOf(invariantMonths[:], s[8:11]) + 1
	day, ok1 := fixedNum(s, 5, 2)
	year, ok2 := fixedNum(s, 12, 4)
	h, ok3 := fixedNum(s, 17, 2)
	mi, ok4 := fixedNum(s, 20, 2)
	sec, ok5 := fixedNum(s, 23, 2)
	if dow < 0 || month < 1 || !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return r, ErrSyntax
	}

	date, err := calendar.DateToTicks(year, month, day)
	if err != nil {
		return r, err
	}
	if int(calendar.DayOfWeek(date)) != dow {
		return r, ErrDayOfWeek
	}
	clock, err := calendar.TimeToTicks(h, mi, sec)
	if err != nil {
		return r, err
	}
	return fixedResult{ticks: date + clock, mark: markUTC}, nil
}

func indexOf(names []string, s string) int {
	for i, n := range names {
		if n == s {
			return i
		}
	}
	return -1
}
