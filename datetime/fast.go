package datetime

import (
	"time"

	"github.com/shabbyrobe/go-prim/calendar"
	"github.com/shabbyrobe/go-prim/internal/digits"
)

// Output lengths of the fixed formats. O is 27 with no zone, 28 with 'Z' and
// 33 with an offset.
const (
	lenO       = 27
	lenOUTC    = lenO + 1
	lenOOffset = lenO + 6
	lenR       = 29
	lenS       = 19
	lenU       = 20
)

// Fixed formats always use the invariant English abbreviations.
var (
	invariantDays   = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	invariantMonths = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// oZone decides what follows the fraction in an O string. hasOffset is false
// for Unspecified values, for which nothing is written.
type oZone struct {
	utc       bool
	hasOffset bool
	offset    time.Duration
}

func (z oZone) len() int {
	switch {
	case z.utc:
		return lenOUTC
	case z.hasOffset:
		return lenOOffset
	}
	return lenO
}

func resolveOZone(d DateTime, offset time.Duration, zone Zone) oZone {
	if offset != nullOffset {
		return oZone{hasOffset: true, offset: offset}
	}
	switch d.kind {
	case Local:
		return oZone{hasOffset: true, offset: zone.OffsetAtLocal(d.ticks)}
	case UTC:
		return oZone{utc: true}
	}
	return oZone{}
}

// writeDate writes yyyy-MM-dd.
func writeDate(dst []byte, ticks int64) {
	y, m, d := calendar.Date(ticks)
	digits.WriteFourDecimalDigits(dst, 0, uint(y))
	dst[4] = '-'
	digits.WriteTwoDecimalDigits(dst, 5, uint(m))
	dst[7] = '-'
	digits.WriteTwoDecimalDigits(dst, 8, uint(d))
}

// writeClock writes HH:mm:ss at off.
func writeClock(dst []byte, off int, ticks int64) {
	h, m, s := calendar.Clock(ticks)
	digits.WriteTwoDecimalDigits(dst, off, uint(h))
	dst[off+2] = ':'
	digits.WriteTwoDecimalDigits(dst, off+3, uint(m))
	dst[off+5] = ':'
	digits.WriteTwoDecimalDigits(dst, off+6, uint(s))
}

// writeO writes yyyy-MM-ddTHH:mm:ss.fffffff and the zone; dst must hold
// z.len() bytes.
func writeO(dst []byte, ticks int64, z oZone) int {
	n := z.len()
	_ = dst[n-1]

	writeDate(dst, ticks)
	dst[10] = 'T'
	writeClock(dst, 11, ticks)
	dst[19] = '.'
	digits.WriteDigits(dst, 20, uint64(ticks%calendar.TicksPerSecond), maxFractionDigits)

	switch {
	case z.utc:
		dst[27] = 'Z'
	case z.hasOffset:
		offset := z.offset
		sign := byte('+')
		if offset < 0 {
			sign, offset = '-', -offset
		}
		mins := int(offset / time.Minute)
		dst[27] = sign
		digits.WriteTwoDecimalDigits(dst, 28, uint(mins/60))
		dst[30] = ':'
		digits.WriteTwoDecimalDigits(dst, 31, uint(mins%60))
	}
	return n
}

// writeR writes ddd, dd MMM yyyy HH:mm:ss GMT; ticks are already UTC.
func writeR(dst []byte, ticks int64) int {
	_ = dst[lenR-1]
	y, m, d := calendar.Date(ticks)

	copy(dst, invariantDays[calendar.DayOfWeek(ticks)])
	dst[3] = ','
	dst[4] = ' '
	digits.WriteTwoDecimalDigits(dst, 5, uint(d))
	dst[7] = ' '
	copy(dst[8:], invariantMonths[m-1])
	dst[11] = ' '
	digits.WriteFourDecimalDigits(dst, 12, uint(y))
	dst[16] = ' '
	writeClock(dst, 17, ticks)
	copy(dst[25:], " GMT")
	return lenR
}

// writeS writes yyyy-MM-ddTHH:mm:ss.
func writeS(dst []byte, ticks int64) int {
	_ = dst[lenS-1]
	writeDate(dst, ticks)
	dst[10] = 'T'
	writeClock(dst, 11, ticks)
	return lenS
}

// writeU writes yyyy-MM-dd HH:mm:ssZ; ticks are already UTC.
func writeU(dst []byte, ticks int64) int {
	_ = dst[lenU-1]
	writeDate(dst, ticks)
	dst[10] = ' '
	writeClock(dst, 11, ticks)
	dst[19] = 'Z'
	return lenU
}

// fastPlan is a resolved fixed-format request. Offsets have already been
// applied to ticks for R and u.
type fastPlan struct {
	spec  byte // 'O', 'R', 's' or 'u'
	ticks int64
	z     oZone
}

// planFast reports false if format is not one of O, o, R, r, s or u.
func planFast(d DateTime, offset time.Duration, format string, zone Zone) (p fastPlan, ok bool) {
	if len(format) != 1 {
		return p, false
	}
	p.ticks = d.ticks
	switch format[0] {
	case 'O', 'o':
		p.spec, p.z = 'O', resolveOZone(d, offset, zone)
	case 'R', 'r':
		p.spec = 'R'
		if offset != nullOffset {
			p.ticks -= int64(offset / 100)
		}
	case 's':
		p.spec = 's'
	case 'u':
		p.spec = 'u'
		if offset != nullOffset {
			p.ticks -= int64(offset / 100)
		}
	default:
		return p, false
	}
	return p, true
}

func (p fastPlan) len() int {
	switch p.spec {
	case 'O':
		return p.z.len()
	case 'R':
		return lenR
	case 's':
		return lenS
	}
	return lenU
}

// write fills dst[:p.len()].
func (p fastPlan) write(dst []byte) int {
	switch p.spec {
	case 'O':
		return writeO(dst, p.ticks, p.z)
	case 'R':
		return writeR(dst, p.ticks)
	case 's':
		return writeS(dst, p.ticks)
	}
	return writeU(dst, p.ticks)
}
