package datetime

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shabbyrobe/go-prim"
	"github.com/shabbyrobe/go-prim/calendar"
	"github.com/shabbyrobe/go-prim/culture"
	"github.com/shabbyrobe/golib/assert"
)

// fakeHebrew reports fixed fields; there is no Hebrew date arithmetic in
// this module, only the Hebrew rendering rules.
type fakeHebrew struct {
	year, month, day int
	leap             bool
}

func (c fakeHebrew) ID() calendar.ID                { return calendar.HebrewID }
func (c fakeHebrew) Era(int64) int                  { return 1 }
func (c fakeHebrew) Year(int64) int                 { return c.year }
func (c fakeHebrew) Month(int64) int                { return c.month }
func (c fakeHebrew) DayOfMonth(int64) int           { return c.day }
func (c fakeHebrew) DayOfWeek(t int64) time.Weekday { return calendar.DayOfWeek(t) }
func (c fakeHebrew) IsLeapYear(year, era int) bool  { return c.leap }
func (c fakeHebrew) ForceTwoDigitYears() bool       { return false }

func hebrewCulture(cal fakeHebrew) *culture.Culture {
	dtf := culture.Invariant.DateTimeFormat().Clone()
	dtf.Calendar = cal
	for i := 0; i < 13; i++ {
		n := string(rune('1'+i%9)) + strings.Repeat("+", i/9)
		dtf.MonthNames[i] = "M" + n
		dtf.AbbreviatedMonthNames[i] = "A" + n
		dtf.LeapYearMonthNames[i] = "L" + n
	}
	return culture.Invariant.WithDateTimeFormat(dtf)
}

func TestCustomPattern(t *testing.T) {
	zero := must(New(2021, 3, 5, 13, 7, 9, Unspecified))
	tenth := must(zero.AddTicks(1000000))
	midnight := must(New(2021, 3, 5, 0, 30, 0, Unspecified))
	y2005 := must(New(2005, 6, 1, 0, 0, 0, Unspecified))

	for idx, tc := range []struct {
		d       DateTime
		pattern string
		out     string
	}{
		{testDate, "yyyy-MM-dd HH:mm:ss.ff", "2021-03-05 13:07:09.12"},
		{testDate, "yyyy-MM-dd HH:mm:ss.fffffff", "2021-03-05 13:07:09.1230000"},
		{testDate, "ss.FFF", "09.123"},
		{testDate, "ss.FFFFFFF", "09.123"},
		{tenth, "ss.FFF", "09.1"},
		{zero, "ss.FFF", "09"},
		{zero, "ss.fff", "09.000"},
		{zero, "ss.%F", "09"},
		{zero, "ss,FFF", "09,"},

		{testDate, `'literal\'text'`, "literal'text"},
		{testDate, `"dd"'MM'`, "ddMM"},
		{testDate, `\d\M`, "dM"},
		{testDate, "%d", "5"},
		{testDate, "%M", "3"},
		{testDate, "%H", "13"},
		{testDate, "%y", "21"},
		{testDate, "%h", "1"},

		{testDate, "hh:mm tt", "01:07 PM"},
		{testDate, "h:mm t", "1:07 P"},
		{midnight, "hh:mm tt", "12:30 AM"},
		{midnight, "HHH:mmm", "00:30"},

		{testDate, "ddd dddd", "Fri Friday"},
		{testDate, "MMM MMMM", "Mar March"},
		{testDate, "dd/MM/yyyy", "05/03/2021"},
		{testDate, "gg yyyy", "A.D. 2021"},

		{y2005, "%y", "5"},
		{y2005, "yy", "05"},
		{y2005, "yyy", "2005"},
		{y2005, "yyyyy", "02005"},
		{y2005, strings.Repeat("y", 17), "00000000000002005"},
		{MinValue, "yyyy-MM-dd", "0001-01-01"},
		{MaxValue, "yyyy-MM-dd HH:mm:ss.fffffff", "9999-12-31 23:59:59.9999999"},

		{testDate, "yyyy年M月", "2021年3月"},
	} {
		t.Run(tc.pattern, func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := tc.d.Format(tc.pattern)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out, "%d", idx)
		})
	}
}

func TestCustomPatternFails(t *testing.T) {
	for _, pattern := range []string{
		"'abc",
		`"abc`,
		`'abc\`,
		`dd\`,
		"%",
		"%%",
		"dd%",
		"ffffffff",
		"ss.FFFFFFFF",
	} {
		t.Run(pattern, func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := testDate.Format(pattern)
			tt.MustAssert(errors.Is(err, prim.ErrBadFormat), err)

			var fe *FormatError
			tt.MustAssert(errors.As(err, &fe))
			tt.MustEqual(pattern, fe.Format)
		})
	}
}

func TestCustomCulture(t *testing.T) {
	de := culture.MustParse("de-DE")
	ru := culture.MustParse("ru-RU")

	for idx, tc := range []struct {
		p       culture.Provider
		pattern string
		out     string
	}{
		{de, "dd/MM/yyyy HH:mm", "05.03.2021 13:07"},
		{de, "dddd, d. MMMM", "Freitag, 5. März"},
		{culture.MustParse("en-GB"), "h:mm tt", "1:07 pm"},
		{culture.MustParse("fr-FR"), "ddd d MMM", "ven. 5 mars"},

		{ru, "d MMMM", "5 марта"},
		{ru, "MMMM d", "марта 5"},
		{ru, "MMM d", "мар. 5"},
		{ru, "MMMM", "март"},
		{ru, "MMMM yyyy", "март 2021"},
		{ru, "dddd MMMM", "пятница март"},
		{ru, "dd MMMM", "05 марта"},
	} {
		t.Run(tc.pattern, func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := Formatter{Provider: tc.p}.Format(testDate, tc.pattern)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out, "%d", idx)
		})
	}
}

func TestCustomJapanese(t *testing.T) {
	ja := culture.MustParse("ja-JP").WithCalendar(calendar.Japanese)
	reiwa1 := must(New(2019, 5, 1, 9, 0, 0, Unspecified))

	dtf := ja.DateTimeFormat().Clone()
	dtf.FormatJapaneseFirstYearAsNumber = true
	numeric := ja.WithDateTimeFormat(dtf)

	for idx, tc := range []struct {
		p       culture.Provider
		d       DateTime
		pattern string
		out     string
	}{
		{ja, testDate, "ggy'年'M'月'd'日'", "令和3年3月5日"},
		{ja, reiwa1, "ggy'年'M'月'd'日'", "令和元年5月1日"},
		{ja, reiwa1, "ggy年", "令和元年"},
		{ja, reiwa1, "ggy", "令和1"},
		{ja, reiwa1, "gg yy/M/d", "令和 01/5/1"},
		{ja, testDate, "yyyy", "03"},
		{ja, must(New(2019, 4, 30, 0, 0, 0, Unspecified)), "ggy'年'", "平成31年"},
		{numeric, reiwa1, "ggy'年'M'月'd'日'", "令和1年5月1日"},
		{culture.Invariant.WithCalendar(calendar.Japanese), reiwa1, "gg y", "Reiwa 1"},
	} {
		t.Run(tc.pattern, func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := Formatter{Provider: tc.p}.Format(tc.d, tc.pattern)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out, "%d", idx)
		})
	}
}

func TestHebrewNumber(t *testing.T) {
	for _, tc := range []struct {
		n   int
		out string
	}{
		{1, "א'"},
		{5, "ה'"},
		{10, "י'"},
		{11, `י"א`},
		{15, `ט"ו`},
		{16, `ט"ז`},
		{30, "ל'"},
		{400, "ת'"},
		{500, `ת"ק`},
		{5781, `תשפ"א`},
		{5782, `תשפ"ב`},
	} {
		t.Run(tc.out, func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, string(appendHebrewNumber(nil, tc.n)))
			tt.MustEqual("x"+tc.out, string(appendHebrewNumber([]byte("x"), tc.n)))
		})
	}
}

func TestCustomHebrew(t *testing.T) {
	plain := hebrewCulture(fakeHebrew{year: 5781, month: 7, day: 15})
	leap := hebrewCulture(fakeHebrew{year: 5784, month: 7, day: 15, leap: true})

	for idx, tc := range []struct {
		p       culture.Provider
		pattern string
		out     string
	}{
		{plain, "%d", `ט"ו`},
		{plain, "%y", `תשפ"א`},
		{plain, "yyyy", `תשפ"א`},
		{plain, "%M", `ז'`},
		{plain, "MMMM", "M8"},
		{plain, "MMM", "A8"},
		{leap, "MMMM", "L7"},
		{leap, "MMM", "A7"},
		{plain, "dddd", "Friday"},
	} {
		t.Run(tc.pattern, func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := Formatter{Provider: tc.p}.Format(testDate, tc.pattern)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out, "%d", idx)
		})
	}
}

func TestCustomOffset(t *testing.T) {
	east := offsetOf(testDate, 5*time.Hour+30*time.Minute)
	west := offsetOf(testDate, -8*time.Hour)

	for idx, tc := range []struct {
		o       DateTimeOffset
		pattern string
		out     string
	}{
		{east, "%z", "+5"},
		{east, "zz", "+05"},
		{east, "zzz", "+05:30"},
		{east, "zzzz", "+05:30"},
		{east, "%K", "+05:30"},
		{west, "%z", "-8"},
		{west, "zzz", "-08:00"},
		{west, "HH:mmK", "13:07-08:00"},
		{offsetOf(testDate, 0), "%K", "+00:00"},
	} {
		t.Run(tc.pattern, func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := tc.o.Format(tc.pattern)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out, "%d", idx)
		})
	}
}

func TestCustomZone(t *testing.T) {
	timeOnly := must(FromTicks(13*calendar.TicksPerHour+7*calendar.TicksPerMinute, Unspecified))

	for idx, tc := range []struct {
		d       DateTime
		zone    Zone
		pattern string
		out     string
	}{
		{testDate, FixedZone(-3 * time.Hour), "yyyy zzz", "2021 -03:00"},
		{testDate.WithKind(UTC), FixedZone(2 * time.Hour), "yyyy zzz", "2021 +00:00"},
		{testDate.WithKind(Local), FixedZone(2 * time.Hour), "yyyy zz", "2021 +02"},
		{timeOnly, FixedZone(2 * time.Hour), "HH:mm zzz", "13:07 +02:00"},

		{testDate, FixedZone(time.Hour), "%K", ""},
		{testDate.WithKind(UTC), FixedZone(time.Hour), "%K", "Z"},
		{testDate.WithKind(Local), FixedZone(time.Hour), "%K", "+01:00"},
		{testDate.WithKind(Local), FixedZone(-(9*time.Hour + 30*time.Minute)), "%K", "-09:30"},
	} {
		t.Run(tc.pattern, func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := Formatter{Zone: tc.zone}.Format(tc.d, tc.pattern)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out, "%d", idx)
		})
	}
}

func TestCustomAppendKeepsPrefix(t *testing.T) {
	tt := assert.WrapTB(t)
	zero := must(New(2021, 3, 5, 13, 7, 9, Unspecified))

	// A '.' written before the call is never removed by F.
	out, err := zero.AppendFormat([]byte("x."), "FFF")
	tt.MustOK(err)
	tt.MustEqual("x.", string(out))

	out, err = zero.AppendFormat([]byte("x."), "ss.FFF")
	tt.MustOK(err)
	tt.MustEqual("x.09", string(out))
}
