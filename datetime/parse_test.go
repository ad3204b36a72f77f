package datetime

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/shabbyrobe/go-prim"
	"github.com/shabbyrobe/go-prim/calendar"
	"github.com/shabbyrobe/golib/assert"
)

func TestParseExact(t *testing.T) {
	zone := FixedZone(2 * time.Hour)

	for idx, tc := range []struct {
		in     string
		format string
		out    DateTime
	}{
		{"2021-03-05T13:07:09.1230000", "O", testDate},
		{"2021-03-05T13:07:09.1230000Z", "O", testDate.WithKind(UTC)},
		{"2021-03-05T13:07:09.1230000+02:00", "o", testDate.WithKind(Local)},
		{"2021-03-05T13:07:09.1230000-01:00", "O", must(testDate.Add(3 * time.Hour)).WithKind(Local)},
		{"0001-01-01T00:00:00.0000000", "O", MinValue},
		{"9999-12-31T23:59:59.9999999", "O", MaxValue},
		{"Fri, 05 Mar 2021 13:07:09 GMT", "R", must(New(2021, 3, 5, 13, 7, 9, UTC))},
		{"Fri, 05 Mar 2021 13:07:09 GMT", "r", must(New(2021, 3, 5, 13, 7, 9, UTC))},
		{"2021-03-05T13:07:09", "s", must(New(2021, 3, 5, 13, 7, 9, Unspecified))},
		{"2021-03-05 13:07:09Z", "u", must(New(2021, 3, 5, 13, 7, 9, UTC))},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := ParseExact(tc.in, tc.format, zone)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out, "%d", idx)

			out, ok := TryParseExact(tc.in, tc.format, zone)
			tt.MustAssert(ok, "%d", idx)
			tt.MustEqual(tc.out, out, "%d", idx)
		})
	}
}

func TestParseExactFails(t *testing.T) {
	for idx, tc := range []struct {
		in     string
		format string
		err    error
	}{
		{"", "O", ErrSyntax},
		{"2021-03-05T13:07:09.123", "O", ErrSyntax},
		{"2021-03-05T13:07:09.12300000", "O", ErrSyntax},
		{"2021-03-05T13:07:09,1230000", "O", ErrSyntax},
		{"2021-03-05T13:07:09.1230000z", "O", ErrSyntax},
		{"2021-03-05T13:07:09.1230000+0200", "O", ErrSyntax},
		{"2021-03-05T13:07:09.1230000+02:60", "O", ErrSyntax},
		{"2021-03-05T13:07:09.1230000+15:00", "O", ErrOffsetRange},
		{"2021-03-05T13:07:09.12a0000", "O", ErrSyntax},
		{"2021-02-29T13:07:09.1230000", "O", calendar.ErrOutOfRange},
		{"0001-01-01T00:00:00.0000000+01:00", "O", ErrUTCRange},

		{"2021-13-05T13:07:09", "s", calendar.ErrOutOfRange},
		{"2021-03-05T24:07:09", "s", calendar.ErrOutOfRange},
		{"2021-03-05X13:07:09", "s", ErrSyntax},
		{"2021-03-05T13:07:09Z", "s", ErrSyntax},
		{"2021-03-05 13:07:09", "u", ErrSyntax},
		{"2021-03-05T13:07:09Z", "u", ErrSyntax},

		{"Sat, 05 Mar 2021 13:07:09 GMT", "R", ErrDayOfWeek},
		{"Fri, 05 Mac 2021 13:07:09 GMT", "R", ErrSyntax},
		{"Fre, 05 Mar 2021 13:07:09 GMT", "R", ErrSyntax},
		{"Fri, 05 Mar 2021 13:07:09 UTC", "R", ErrSyntax},
		{"Fri,  5 Mar 2021 13:07:09 GMT", "R", ErrSyntax},

		{"2021-03-05T13:07:09", "G", prim.ErrBadFormat},
		{"2021-03-05T13:07:09", "yyyy-MM-ddTHH:mm:ss", prim.ErrBadFormat},
		{"2021-03-05T13:07:09", "", prim.ErrBadFormat},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := ParseExact(tc.in, tc.format, FixedZone(0))
			tt.MustAssert(errors.Is(err, tc.err), "%d: %v", idx, err)

			var pe *ParseError
			tt.MustAssert(errors.As(err, &pe), "%d", idx)
			tt.MustEqual("ParseExact", pe.Func)
			tt.MustEqual(tc.in, pe.Input)
			tt.MustEqual(tc.format, pe.Format)

			_, ok := TryParseExact(tc.in, tc.format, FixedZone(0))
			tt.MustAssert(!ok, "%d", idx)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	tt := assert.WrapTB(t)
	_, err := ParseExact("Sat, 05 Mar 2021 13:07:09 GMT", "R", nil)
	tt.MustEqual(`datetime: ParseExact "Sat, 05 Mar 2021 13:07:09 GMT" as "R": day of week does not match the date`, err.Error())
}

func TestParseExactOffset(t *testing.T) {
	zone := FixedZone(time.Hour)

	for idx, tc := range []struct {
		in     string
		format string
		out    DateTimeOffset
	}{
		{"2021-03-05T13:07:09.1230000+05:30", "O", offsetOf(testDate, 5*time.Hour+30*time.Minute)},
		{"2021-03-05T13:07:09.1230000-14:00", "O", offsetOf(testDate, MinOffset)},
		{"2021-03-05T13:07:09.1230000Z", "O", offsetOf(testDate, 0)},
		{"2021-03-05T13:07:09.1230000", "O", offsetOf(testDate, time.Hour)},
		{"2021-03-05T13:07:09", "s", offsetOf(must(New(2021, 3, 5, 13, 7, 9, Unspecified)), time.Hour)},
		{"2021-03-05 13:07:09Z", "u", offsetOf(must(New(2021, 3, 5, 13, 7, 9, Unspecified)), 0)},
		{"Fri, 05 Mar 2021 13:07:09 GMT", "R", offsetOf(must(New(2021, 3, 5, 13, 7, 9, Unspecified)), 0)},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := ParseExactOffset(tc.in, tc.format, zone)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out, "%d", idx)

			out, ok := TryParseExactOffset(tc.in, tc.format, zone)
			tt.MustAssert(ok, "%d", idx)
			tt.MustEqual(tc.out, out, "%d", idx)
		})
	}

	tt := assert.WrapTB(t)
	_, err := ParseExactOffset("9999-12-31T23:00:00.0000000-02:00", "O", zone)
	tt.MustAssert(errors.Is(err, ErrUTCRange), err)
	var pe *ParseError
	tt.MustAssert(errors.As(err, &pe))
	tt.MustEqual("ParseExactOffset", pe.Func)
}

func TestRoundTripO(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(3))
	zone := FixedZone(-(4*time.Hour + 45*time.Minute))
	f := Formatter{Zone: zone}

	for i := 0; i < 2000; i++ {
		d := must(FromTicks(randTicks(rng), Kind(rng.Intn(3))))
		s, err := f.Format(d, "O")
		tt.MustOK(err)
		out, err := ParseExact(s, "O", zone)
		tt.MustOK(err)
		tt.MustEqual(d, out, "%s", s)

		off := time.Duration(rng.Intn(2*840+1)-840) * time.Minute
		o := offsetOf(d.WithKind(Unspecified), off)
		s, err = o.Format("O")
		tt.MustOK(err)
		oout, err := ParseExactOffset(s, "O", zone)
		tt.MustOK(err)
		tt.MustEqual(o, oout, "%s", s)
	}
}

func TestRoundTripFixed(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 1000; i++ {
		// R, s and u have whole-second resolution.
		ticks := randTicks(rng)
		ticks -= ticks % calendar.TicksPerSecond
		d := must(FromTicks(ticks, UTC))

		for _, format := range []string{"R", "s", "u"} {
			s, err := d.Format(format)
			tt.MustOK(err)
			out, err := ParseExact(s, format, FixedZone(0))
			tt.MustOK(err)
			tt.MustEqual(ticks, out.Ticks(), "%s", s)
		}
	}
}
