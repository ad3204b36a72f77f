package datetime

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/shabbyrobe/go-prim"
	"github.com/shabbyrobe/go-prim/calendar"
	"github.com/shabbyrobe/go-prim/culture"
	"github.com/shabbyrobe/golib/assert"
)

func TestStandardFormats(t *testing.T) {
	enUS := culture.MustParse("en-US")
	ja := culture.MustParse("ja-JP").WithCalendar(calendar.Japanese)

	for idx, tc := range []struct {
		p      culture.Provider
		format string
		out    string
	}{
		{nil, "d", "03/05/2021"},
		{nil, "D", "Friday, 05 March 2021"},
		{nil, "f", "Friday, 05 March 2021 13:07"},
		{nil, "F", "Friday, 05 March 2021 13:07:09"},
		{nil, "g", "03/05/2021 13:07"},
		{nil, "G", "03/05/2021 13:07:09"},
		{nil, "", "03/05/2021 13:07:09"},
		{nil, "m", "March 05"},
		{nil, "M", "March 05"},
		{nil, "t", "13:07"},
		{nil, "T", "13:07:09"},
		{nil, "y", "2021 March"},
		{nil, "Y", "2021 March"},
		{nil, "o", "2021-03-05T13:07:09.1230000"},
		{nil, "O", "2021-03-05T13:07:09.1230000"},
		{nil, "r", "Fri, 05 Mar 2021 13:07:09 GMT"},
		{nil, "R", "Fri, 05 Mar 2021 13:07:09 GMT"},
		{nil, "s", "2021-03-05T13:07:09"},
		{nil, "u", "2021-03-05 13:07:09Z"},

		{enUS, "d", "3/5/2021"},
		{enUS, "t", "1:07 PM"},
		{enUS, "F", "Friday, March 5, 2021 1:07:09 PM"},
		{enUS, "", "3/5/2021 1:07:09 PM"},
		{enUS, "y", "March 2021"},
		{culture.MustParse("en-GB"), "D", "05 March 2021"},
		{culture.MustParse("fr-FR"), "D", "vendredi 5 mars 2021"},
		{culture.MustParse("de-DE"), "d", "05.03.2021"},
		{culture.MustParse("de-DE"), "D", "Freitag, 5. März 2021"},
		{culture.MustParse("ru-RU"), "D", "5 марта 2021 г."},
		{culture.MustParse("ru-RU"), "Y", "март 2021"},
		{culture.MustParse("ja-JP"), "D", "2021年3月5日"},
		{ja, "D", "令和3年3月5日"},
		{ja, "d", "令和 3/3/5"},

		{culture.MustParse("fr-FR"), "R", "Fri, 05 Mar 2021 13:07:09 GMT"},
		{culture.MustParse("ru-RU"), "s", "2021-03-05T13:07:09"},
		{ja, "O", "2021-03-05T13:07:09.1230000"},
		{ja, "u", "2021-03-05 13:07:09Z"},
	} {
		t.Run(tc.format, func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := Formatter{Provider: tc.p}.Format(testDate, tc.format)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out, "%d", idx)
		})
	}
}

func TestStandardFormatsOffset(t *testing.T) {
	o := offsetOf(testDate, 5*time.Hour+30*time.Minute)

	for idx, tc := range []struct {
		format string
		out    string
	}{
		{"", "03/05/2021 13:07:09 +05:30"},
		{"G", "03/05/2021 13:07:09"},
		{"O", "2021-03-05T13:07:09.1230000+05:30"},
		{"R", "Fri, 05 Mar 2021 07:37:09 GMT"},
		{"s", "2021-03-05T13:07:09"},
		{"u", "2021-03-05 07:37:09Z"},
		{"D", "Friday, 05 March 2021"},
	} {
		t.Run(tc.format, func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := o.Format(tc.format)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out, "%d", idx)
		})
	}

	tt := assert.WrapTB(t)
	tt.MustEqual("03/05/2021 13:07:09 +05:30", o.String())
	tt.MustEqual("03/05/2021 13:07:09", testDate.String())
}

func TestFormatU(t *testing.T) {
	tt := assert.WrapTB(t)
	f := Formatter{Zone: FixedZone(2 * time.Hour)}

	out, err := f.Format(testDate.WithKind(Local), "U")
	tt.MustOK(err)
	tt.MustEqual("Friday, 05 March 2021 11:07:09", out)

	out, err = f.Format(testDate.WithKind(UTC), "U")
	tt.MustOK(err)
	tt.MustEqual("Friday, 05 March 2021 13:07:09", out)

	// U always uses the Gregorian calendar.
	f.Provider = culture.MustParse("ja-JP").WithCalendar(calendar.Japanese)
	out, err = f.Format(testDate.WithKind(UTC), "U")
	tt.MustOK(err)
	tt.MustEqual("2021年3月5日 13:07:09", out)

	_, err = f.FormatOffset(offsetOf(testDate, 0), "U")
	tt.MustAssert(errors.Is(err, prim.ErrBadFormat), err)
}

func TestFormatOZones(t *testing.T) {
	for idx, tc := range []struct {
		d    DateTime
		zone Zone
		out  string
	}{
		{testDate, FixedZone(time.Hour), "2021-03-05T13:07:09.1230000"},
		{testDate.WithKind(UTC), FixedZone(time.Hour), "2021-03-05T13:07:09.1230000Z"},
		{testDate.WithKind(Local), FixedZone(time.Hour), "2021-03-05T13:07:09.1230000+01:00"},
		{testDate.WithKind(Local), FixedZone(-(2*time.Hour + 30*time.Minute)), "2021-03-05T13:07:09.1230000-02:30"},
		{testDate.WithKind(Local), FixedZone(0), "2021-03-05T13:07:09.1230000+00:00"},
	} {
		t.Run("", func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := Formatter{Zone: tc.zone}.Format(tc.d, "O")
			tt.MustOK(err)
			tt.MustEqual(tc.out, out, "%d", idx)
		})
	}
}

func TestFormatTimeOnly(t *testing.T) {
	tt := assert.WrapTB(t)
	clock := must(FromTicks(13*calendar.TicksPerHour+7*calendar.TicksPerMinute+9*calendar.TicksPerSecond, Unspecified))

	for _, p := range []culture.Provider{
		culture.MustParse("ja-JP").WithCalendar(calendar.Japanese),
		hebrewCulture(fakeHebrew{year: 5781, month: 7, day: 15}),
	} {
		out, err := Formatter{Provider: p}.Format(clock, "")
		tt.MustOK(err)
		tt.MustEqual("0001-01-01T13:07:09", out)

		out, err = Formatter{Provider: p}.FormatOffset(offsetOf(clock, 0), "")
		tt.MustOK(err)
		tt.MustEqual("0001-01-01T13:07:09 +00:00", out)
	}

	// Gregorian values are unaffected.
	out, err := clock.Format("")
	tt.MustOK(err)
	tt.MustEqual("01/01/0001 13:07:09", out)
}

func TestFormatBad(t *testing.T) {
	for _, format := range []string{"Q", "K", "z", "%", "\\", "e", "a"} {
		t.Run(format, func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := testDate.Format(format)
			tt.MustAssert(errors.Is(err, prim.ErrBadFormat), err)
			tt.MustEqual(fmt.Sprintf("datetime: format %q: invalid format", format), err.Error())
		})
	}
}

func TestFormatRFC1123Fixed(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(1))
	providers := []culture.Provider{nil, culture.MustParse("fr-FR"), culture.MustParse("ru-RU"),
		culture.MustParse("ja-JP").WithCalendar(calendar.Japanese)}

	for i := 0; i < 1000; i++ {
		d := must(FromTicks(randTicks(rng), Unspecified))
		for _, p := range providers {
			out, err := Formatter{Provider: p}.Format(d, "R")
			tt.MustOK(err)
			tt.MustEqual(lenR, len(out), "%s", out)
			tt.MustAssert(strings.HasSuffix(out, " GMT"), "%s", out)
		}
	}
}

// The fixed-format writers must agree with the general pattern engine.
func TestFastMatchesGeneral(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	zones := []Zone{FixedZone(0), FixedZone(9 * time.Hour), FixedZone(-(3*time.Hour + 30*time.Minute))}
	kinds := []Kind{Unspecified, UTC, Local}

	check := func(tt assert.T, d DateTime, offset time.Duration, zone Zone) {
		for _, spec := range []byte{'O', 'o', 'R', 'r', 's', 'u'} {
			p, ok := planFast(d, offset, string(spec), zone)
			tt.MustAssert(ok)
			fast := appendFast(nil, p)
			tt.MustEqual(p.len(), len(fast))

			pattern, gd, dtf, err := expandStandard(spec, d, offset, culture.DateTime(nil), zone)
			tt.MustOK(err)
			general, err := appendCustom(nil, gd, offset, pattern, dtf, zone)
			tt.MustOK(err)
			tt.MustEqual(string(general), string(fast), "%v %c\n%s", offset, spec, spew.Sdump(d))
		}
	}

	tt := assert.WrapTB(t)
	for i := 0; i < 2000; i++ {
		zone := zones[rng.Intn(len(zones))]
		d := must(FromTicks(randTicks(rng), kinds[rng.Intn(len(kinds))]))
		check(tt, d, nullOffset, zone)

		off := time.Duration(rng.Intn(2*840+1)-840) * time.Minute
		o := offsetOf(d.WithKind(Unspecified), off)
		check(tt, o.DateTime(), o.Offset(), zone)
	}
	check(tt, MinValue, nullOffset, zones[0])
	check(tt, MaxValue, nullOffset, zones[0])
}

func TestTryFormat(t *testing.T) {
	for _, format := range []string{"O", "R", "s", "u", "D", "yyyy-MM-dd"} {
		t.Run(format, func(t *testing.T) {
			tt := assert.WrapTB(t)
			want, err := testDate.Format(format)
			tt.MustOK(err)

			buf := make([]byte, len(want))
			n, err := testDate.TryFormat(buf, format)
			tt.MustOK(err)
			tt.MustEqual(want, string(buf[:n]))

			short := []byte(strings.Repeat("!", len(want)-1))
			n, err = testDate.TryFormat(short, format)
			tt.MustAssert(errors.Is(err, prim.ErrInsufficientDestination), err)
			tt.MustEqual(0, n)
			tt.MustEqual(strings.Repeat("!", len(want)-1), string(short))
		})
	}
}

func TestTryFormatOffset(t *testing.T) {
	tt := assert.WrapTB(t)
	o := offsetOf(testDate, -8*time.Hour)

	buf := make([]byte, lenOOffset)
	n, err := o.TryFormat(buf, "O")
	tt.MustOK(err)
	tt.MustEqual("2021-03-05T13:07:09.1230000-08:00", string(buf[:n]))

	_, err = o.TryFormat(buf[:lenOOffset-1], "O")
	tt.MustAssert(errors.Is(err, prim.ErrInsufficientDestination), err)

	_, err = o.TryFormat(buf, "U")
	tt.MustAssert(errors.Is(err, prim.ErrBadFormat), err)
}

func TestAppendFormat(t *testing.T) {
	tt := assert.WrapTB(t)

	out, err := testDate.AppendFormat([]byte("at "), "s")
	tt.MustOK(err)
	tt.MustEqual("at 2021-03-05T13:07:09", string(out))

	out, err = testDate.AppendFormat([]byte("at "), "HH:mm")
	tt.MustOK(err)
	tt.MustEqual("at 13:07", string(out))

	// Spare capacity is used in place.
	buf := make([]byte, 0, 64)
	out, err = testDate.AppendFormat(buf, "O")
	tt.MustOK(err)
	tt.MustAssert(&buf[:1][0] == &out[0])

	out, err = testDate.AppendFormat([]byte("at "), "%")
	tt.MustAssert(err != nil)
	tt.MustEqual("at ", string(out))
}

func BenchmarkFormatO(b *testing.B) {
	var buf [64]byte
	d := testDate.WithKind(UTC)
	for i := 0; i < b.N; i++ {
		_, _ = d.TryFormat(buf[:], "O")
	}
}

func BenchmarkFormatCustom(b *testing.B) {
	buf := make([]byte, 0, 64)
	for i := 0; i < b.N; i++ {
		_, _ = testDate.AppendFormat(buf[:0], "dddd, dd MMMM yyyy HH:mm:ss.fff")
	}
}
