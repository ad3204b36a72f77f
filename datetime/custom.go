package datetime

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shabbyrobe/go-prim"
	"github.com/shabbyrobe/go-prim/calendar"
	"github.com/shabbyrobe/go-prim/culture"
	"github.com/shabbyrobe/go-prim/internal/digits"
)

const (
	maxFractionDigits = 7

	// Written in place of year 1 of a Japanese era when the year is followed
	// by the year suffix.
	japaneseEraStart  = "元"
	japaneseYearAfter = "年"
)

var pow10 = [...]int64{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000}

// customFormatter walks one custom pattern. start is where the whole
// formatting call began writing in dst, so that "F" can remove a '.' written
// by an enclosing pattern.
type customFormatter struct {
	dtf   *culture.DateTimeFormat
	cal   calendar.Calendar
	zone  Zone
	start int
}

func appendCustom(dst []byte, d DateTime, offset time.Duration, pattern string, dtf *culture.DateTimeFormat, zone Zone) ([]byte, error) {
	f := customFormatter{dtf: dtf, cal: dtf.Cal(), zone: zone, start: len(dst)}
	return f.append(dst, d, offset, pattern)
}

func repeatLen(pattern string, pos int) int {
	ch := pattern[pos]
	i := pos + 1
	for i < len(pattern) && pattern[i] == ch {
		i++
	}
	return i - pos
}

func (f *customFormatter) append(dst []byte, d DateTime, offset time.Duration, pattern string) ([]byte, error) {
	var (
		ticks    = d.ticks
		calID    = f.cal.ID()
		timeOnly = true
		err      error
	)

	for i := 0; i < len(pattern); {
		ch := pattern[i]
		n := 1

		switch ch {
		case 'g':
			n = repeatLen(pattern, i)
			dst = append(dst, f.dtf.EraName(f.cal.Era(ticks))...)

		case 'h':
			n = repeatLen(pattern, i)
			h := d.Hour() % 12
			if h == 0 {
				h = 12
			}
			dst = appendPadded(dst, h, min(n, 2))

		case 'H':
			n = repeatLen(pattern, i)
			dst = appendPadded(dst, d.Hour(), min(n, 2))

		case 'm':
			n = repeatLen(pattern, i)
			dst = appendPadded(dst, d.Minute(), min(n, 2))

		case 's':
			n = repeatLen(pattern, i)
			dst = appendPadded(dst, d.Second(), min(n, 2))

		case 'f', 'F':
			n = repeatLen(pattern, i)
			if n > maxFractionDigits {
				return dst, prim.ErrBadFormat
			}
			frac := ticks % calendar.TicksPerSecond / pow10[maxFractionDigits-n]
			if ch == 'f' {
				dst = digits.AppendDigits(dst, uint64(frac), n)
				break
			}
			eff := n
			for eff > 0 && frac%10 == 0 {
				frac /= 10
				eff--
			}
			if eff > 0 {
				dst = digits.AppendDigits(dst, uint64(frac), eff)
			} else if len(dst) > f.start && dst[len(dst)-1] == '.' {
				dst = dst[:len(dst)-1]
			}

		case 't':
			n = repeatLen(pattern, i)
			des := f.dtf.AMDesignator
			if d.Hour() >= 12 {
				des = f.dtf.PMDesignator
			}
			if n == 1 {
				_, sz := utf8.DecodeRuneInString(des)
				des = des[:sz]
			}
			dst = append(dst, des...)

		case 'd':
			n = repeatLen(pattern, i)
			if n <= 2 {
				day := f.cal.DayOfMonth(ticks)
				if calID == calendar.HebrewID {
					dst = appendHebrewNumber(dst, day)
				} else {
					dst = appendPadded(dst, day, n)
				}
			} else {
				dst = append(dst, f.dtf.DayName(int(f.cal.DayOfWeek(ticks)), n == 3)...)
			}
			timeOnly = false

		case 'M':
			n = repeatLen(pattern, i)
			month := f.cal.Month(ticks)
			switch {
			case n <= 2 && calID == calendar.HebrewID:
				dst = appendHebrewNumber(dst, month)
			case n <= 2:
				dst = appendPadded(dst, month, n)
			case calID == calendar.HebrewID:
				dst = append(dst, hebrewMonthName(f.dtf, f.cal, ticks, month, n == 3)...)
			case f.dtf.UseGenitiveMonth && useGenitive(pattern, i, n, 'd'):
				dst = append(dst, f.dtf.GenitiveMonthName(month, n == 3)...)
			default:
				dst = append(dst, f.dtf.MonthName(month, n == 3)...)
			}
			timeOnly = false

		case 'y':
			n = repeatLen(pattern, i)
			year := f.cal.Year(ticks)
			switch {
			case calID == calendar.JapaneseID && !f.dtf.FormatJapaneseFirstYearAsNumber &&
				year == 1 && followedByYearSuffix(pattern[i+n:]):
				dst = append(dst, japaneseEraStart...)
			case f.cal.ForceTwoDigitYears():
				dst = appendPadded(dst, year, min(n, 2))
			case calID == calendar.HebrewID:
				dst = appendHebrewNumber(dst, year)
			case n <= 2:
				dst = appendPadded(dst, year%100, n)
			case n <= 16:
				dst = appendPadded(dst, year, n)
			default:
				dst, err = prim.AppendFormat(dst, year, "D"+strconv.Itoa(n), nil)
				if err != nil {
					return dst, err
				}
			}
			timeOnly = false

		case 'z':
			n = repeatLen(pattern, i)
			dst = f.appendOffset(dst, d, offset, n, timeOnly)

		case 'K':
			dst = f.appendRoundtripZone(dst, d, offset)

		case ':':
			dst = append(dst, f.dtf.TimeSeparator...)

		case '/':
			dst = append(dst, f.dtf.DateSeparator...)

		case '\'', '"':
			dst, n, err = appendQuoted(dst, pattern, i)
			if err != nil {
				return dst, err
			}

		case '%':
			// %c formats c as a one-character custom pattern.
			if i+1 >= len(pattern) || pattern[i+1] == '%' {
				return dst, prim.ErrBadFormat
			}
			dst, err = f.append(dst, d, offset, pattern[i+1:i+2])
			if err != nil {
				return dst, err
			}
			n = 2

		case '\\':
			if i+1 >= len(pattern) {
				return dst, prim.ErrBadFormat
			}
			dst = append(dst, pattern[i+1])
			n = 2

		default:
			dst = append(dst, ch)
		}

		i += n
	}

	return dst, nil
}

// appendPadded writes v with at least n digits.
func appendPadded(dst []byte, v int, n int) []byte {
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}
	return digits.AppendDigits(dst, uint64(v), n)
}

func appendQuoted(dst []byte, pattern string, pos int) ([]byte, int, error) {
	quote := pattern[pos]
	i := pos + 1
	for i < len(pattern) {
		ch := pattern[i]
		i++
		switch ch {
		case quote:
			return dst, i - pos, nil
		case '\\':
			if i >= len(pattern) {
				return dst, 0, prim.ErrBadFormat
			}
			dst = append(dst, pattern[i])
			i++
		default:
			dst = append(dst, ch)
		}
	}
	return dst, 0, prim.ErrBadFormat
}

// useGenitive reports whether the month run at index is next to a one or two
// character day run, looking behind first and then ahead.
func useGenitive(pattern string, index, n int, match byte) bool {
	i := index - 1
	for i >= 0 && pattern[i] != match {
		i--
	}
	if i >= 0 {
		repeat := 0
		for i--; i >= 0 && pattern[i] == match; i-- {
			repeat++
		}
		if repeat <= 1 {
			return true
		}
	}

	for i = index + n; i < len(pattern) && pattern[i] != match; i++ {
	}
	if i < len(pattern) {
		repeat := 0
		for i++; i < len(pattern) && pattern[i] == match; i++ {
			repeat++
		}
		if repeat <= 1 {
			return true
		}
	}
	return false
}

func followedByYearSuffix(rest string) bool {
	return strings.HasPrefix(rest, japaneseYearAfter) ||
		strings.HasPrefix(rest, "'"+japaneseYearAfter)
}

// localOffset resolves the offset for a DateTime being formatted without an
// explicit one.
func (f *customFormatter) localOffset(d DateTime, timeOnly bool) time.Duration {
	switch {
	case timeOnly && d.ticks < calendar.TicksPerDay:
		// A bare time of day on 0001-01-01 gets today's offset.
		return f.zone.OffsetAtUTC(f.zone.NowUTC())
	case d.kind == UTC:
		return 0
	default:
		return f.zone.OffsetAtLocal(d.ticks)
	}
}

func appendSign(dst []byte, offset time.Duration) ([]byte, time.Duration) {
	if offset < 0 {
		return append(dst, '-'), -offset
	}
	return append(dst, '+'), offset
}

func (f *customFormatter) appendOffset(dst []byte, d DateTime, offset time.Duration, n int, timeOnly bool) []byte {
	if offset == nullOffset {
		offset = f.localOffset(d, timeOnly)
	}
	dst, offset = appendSign(dst, offset)
	hours, mins := int(offset/time.Hour), int(offset/time.Minute%60)
	if n <= 1 {
		return digits.AppendDigits(dst, uint64(hours), 1)
	}
	dst = digits.AppendDigits(dst, uint64(hours), 2)
	if n >= 3 {
		dst = append(dst, ':')
		dst = digits.AppendDigits(dst, uint64(mins), 2)
	}
	return dst
}

// appendRoundtripZone writes K: nothing for Unspecified, Z for UTC and the
// offset for Local values and DateTimeOffsets.
func (f *customFormatter) appendRoundtripZone(dst []byte, d DateTime, offset time.Duration) []byte {
	if offset == nullOffset {
		switch d.kind {
		case Local:
			offset = f.zone.OffsetAtLocal(d.ticks)
		case UTC:
			return append(dst, 'Z')
		default:
			return dst
		}
	}
	return appendHourMinute(dst, offset)
}

// appendHourMinute writes ±HH:mm.
func appendHourMinute(dst []byte, offset time.Duration) []byte {
	dst, offset = appendSign(dst, offset)
	dst = digits.AppendDigits(dst, uint64(offset/time.Hour), 2)
	dst = append(dst, ':')
	return digits.AppendDigits(dst, uint64(offset/time.Minute%60), 2)
}
