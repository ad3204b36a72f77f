package datetime

import (
	"unicode/utf8"

	"github.com/shabbyrobe/go-prim/calendar"
	"github.com/shabbyrobe/go-prim/culture"
)

const (
	hebrewTav       = 'ת' // 400
	hebrewQofMinus1 = 'צ' // 100 is one past this, 200 and 300 follow
	hebrewAlef      = 'א'
	hebrewHe        = 'ה'
	hebrewVav       = 'ו'
	hebrewZayin     = 'ז'
	hebrewTet       = 'ט'
	hebrewYod       = 'י'
)

var hebrewTens = [10]rune{0, 'י', 'כ', 'ל', 'מ', 'נ', 'ס', 'ע', 'פ', 'צ'}

// appendHebrewNumber writes n in Hebrew letters. Years above 5000 drop the
// thousands. A multi-letter number gets a gershayim before its last letter,
// a single letter gets a trailing geresh.
func appendHebrewNumber(dst []byte, n int) []byte {
	start := len(dst)
	if n > 5000 {
		n -= 5000
	}

	if hundreds := n / 100; hundreds > 0 {
		n -= hundreds * 100
		for i := 0; i < hundreds/4; i++ {
			dst = utf8.AppendRune(dst, hebrewTav)
		}
		if r := hundreds % 4; r > 0 {
			dst = utf8.AppendRune(dst, hebrewQofMinus1+rune(r))
		}
	}

	tens, units := hebrewTens[n/10], rune(0)
	if u := n % 10; u > 0 {
		units = hebrewAlef + rune(u-1)
	}

	// 15 and 16 are written 9+6 and 9+7.
	if tens == hebrewYod && units == hebrewHe {
		tens, units = hebrewTet, hebrewVav
	} else if tens == hebrewYod && units == hebrewVav {
		tens, units = hebrewTet, hebrewZayin
	}

	if tens != 0 {
		dst = utf8.AppendRune(dst, tens)
	}
	if units != 0 {
		dst = utf8.AppendRune(dst, units)
	}

	if utf8.RuneCount(dst[start:]) > 1 {
		_, sz := utf8.DecodeLastRune(dst)
		end := len(dst)
		dst = append(dst, 0)
		copy(dst[end-sz+1:], dst[end-sz:end])
		dst[end-sz] = '"'
	} else {
		dst = append(dst, '\'')
	}
	return dst
}

// hebrewMonthName uses the leap year names in a leap year. Otherwise the
// month number skips the leap month, Adar I, which sits seventh.
func hebrewMonthName(dtf *culture.DateTimeFormat, cal calendar.Calendar, ticks int64, month int, abbreviated bool) string {
	if cal.IsLeapYear(cal.Year(ticks), cal.Era(ticks)) {
		return dtf.LeapYearMonthName(month, abbreviated)
	}
	if month >= 7 {
		month++
	}
	return dtf.MonthName(month, abbreviated)
}
