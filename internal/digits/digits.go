// Package digits contains the fixed-width decimal and hex writers shared by
// the integer, GUID and date/time codecs.
//
// None of the Write functions check bounds beyond what the Go runtime does;
// callers size their buffers up front.
package digits

const (
	LowerHex = "0123456789abcdef"
	UpperHex = "0123456789ABCDEF"
)

// TwoDigits holds "00" through "99", two bytes per value.
const TwoDigits = "" +
	"00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// hexLookup maps a byte to its nibble value, or -1 if the byte is not a hex
// digit. Signedness matters: DecodeByte relies on -1 spreading into the
// sign bit of the accumulator.
var hexLookup = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < 10; i++ {
		t['0'+i] = int8(i)
	}
	for i := 0; i < 6; i++ {
		t['a'+i] = int8(10 + i)
		t['A'+i] = int8(10 + i)
	}
	return t
}()

// WriteTwoDecimalDigits writes v (0..99) into buf[off:off+2].
func WriteTwoDecimalDigits(buf []byte, off int, v uint) {
	buf[off] = TwoDigits[v*2]
	buf[off+1] = TwoDigits[v*2+1]
}

// WriteFourDecimalDigits writes v (0..9999) into buf[off:off+4].
func WriteFourDecimalDigits(buf []byte, off int, v uint) {
	hi, lo := v/100, v%100
	buf[off] = TwoDigits[hi*2]
	buf[off+1] = TwoDigits[hi*2+1]
	buf[off+2] = TwoDigits[lo*2]
	buf[off+3] = TwoDigits[lo*2+1]
}

// WriteDigits writes the low count decimal digits of v into
// buf[off:off+count], zero padded. Digits above count are dropped.
func WriteDigits(buf []byte, off int, v uint64, count int) {
	for i := off + count - 1; i >= off; i-- {
		q := v / 10
		buf[i] = byte('0' + v - q*10)
		v = q
	}
}

// CountDigits returns the number of decimal digits needed for v; 0 needs one.
func CountDigits(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// AppendDigits appends v in decimal, left-padded with zeros to at least
// minDigits digits.
func AppendDigits(dst []byte, v uint64, minDigits int) []byte {
	n := CountDigits(v)
	if minDigits > n {
		n = minDigits
	}
	ln := len(dst)
	dst = grow(dst, n)
	WriteDigits(dst, ln, v, n)
	return dst
}

// AppendHex appends the low count nibbles of v, most significant first.
func AppendHex(dst []byte, v uint64, count int, table string) []byte {
	ln := len(dst)
	dst = grow(dst, count)
	for i := ln + count - 1; i >= ln; i-- {
		dst[i] = table[v&0xf]
		v >>= 4
	}
	return dst
}

// FromHexChar returns the value of the hex digit c, or 0xFF if c is not one.
func FromHexChar(c byte) int {
	v := hexLookup[c]
	if v < 0 {
		return 0xFF
	}
	return int(v)
}

// IsHexChar reports whether c is a hex digit in either case.
func IsHexChar(c byte) bool { return hexLookup[c] >= 0 }

// DecodeByte combines two hex characters into a byte. If either is not a hex
// digit, *invalid goes negative and stays negative; callers decode a whole
// field and then check once.
func DecodeByte(hi, lo byte, invalid *int) byte {
	h := int(hexLookup[hi]) << 4
	l := int(hexLookup[lo])
	h |= l
	*invalid |= h
	return byte(h)
}

func grow(dst []byte, n int) []byte {
	ln := len(dst)
	if cap(dst)-ln < n {
		nd := make([]byte, ln, ln+n+16)
		copy(nd, dst)
		dst = nd
	}
	return dst[:ln+n]
}
