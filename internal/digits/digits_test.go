package digits

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestWriteFixedWidth(t *testing.T) {
	tt := assert.WrapTB(t)

	buf := make([]byte, 13)
	for i := range buf {
		buf[i] = '.'
	}
	WriteFourDecimalDigits(buf, 0, 21)
	WriteTwoDecimalDigits(buf, 4, 7)
	WriteDigits(buf, 6, 1230000, 7)
	tt.MustEqual("0021071230000", string(buf))
}

func TestWriteDigitsDropsHighDigits(t *testing.T) {
	tt := assert.WrapTB(t)
	buf := make([]byte, 2)
	WriteDigits(buf, 0, 1234, 2)
	tt.MustEqual("34", string(buf))
}

func TestAppendDigits(t *testing.T) {
	for _, tc := range []struct {
		v   uint64
		min int
		out string
	}{
		{0, 0, "0"},
		{0, 3, "000"},
		{7, 1, "7"},
		{2021, 2, "2021"},
		{2021, 6, "002021"},
		{18446744073709551615, 0, "18446744073709551615"},
	} {
		t.Run(fmt.Sprintf("%d/%d", tc.v, tc.min), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, string(AppendDigits([]byte(nil), tc.v, tc.min)))
			tt.MustEqual("x"+tc.out, string(AppendDigits([]byte("x"), tc.v, tc.min)))
		})
	}
}

func TestAppendHex(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("00ff", string(AppendHex(nil, 0xff, 4, LowerHex)))
	tt.MustEqual("DEADBEEF", string(AppendHex(nil, 0xdeadbeef, 8, UpperHex)))
}

func TestDecodeByteSticky(t *testing.T) {
	tt := assert.WrapTB(t)

	invalid := 0
	tt.MustEqual(byte(0xab), DecodeByte('a', 'B', &invalid))
	tt.MustAssert(invalid >= 0)

	DecodeByte('g', '0', &invalid)
	tt.MustAssert(invalid < 0)

	// Stays invalid after subsequent good input.
	DecodeByte('0', '1', &invalid)
	tt.MustAssert(invalid < 0)

	invalid = 0
	DecodeByte('1', 'z', &invalid)
	tt.MustAssert(invalid < 0)
}

func TestFromHexChar(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 256; i++ {
		c := byte(i)
		v := FromHexChar(c)
		switch {
		case c >= '0' && c <= '9':
			tt.MustEqual(int(c-'0'), v)
		case c >= 'a' && c <= 'f':
			tt.MustEqual(int(c-'a'+10), v)
		case c >= 'A' && c <= 'F':
			tt.MustEqual(int(c-'A'+10), v)
		default:
			tt.MustEqual(0xFF, v)
			tt.MustAssert(!IsHexChar(c))
		}
	}
}
