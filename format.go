package prim

import (
	"github.com/shabbyrobe/go-prim/culture"
	"github.com/shabbyrobe/go-prim/internal/digits"
)

// FormatFlags adjust FormatRadix.
type FormatFlags uint8

const (
	// FormatLeftAlign puts the padding after the digits instead of before.
	FormatLeftAlign FormatFlags = 1 << iota

	// FormatPrintRadixPrefix prefixes "0x" in radix 16 and "0" in radix 8.
	FormatPrintRadixPrefix

	// FormatPrintSign prints '+' before non-negative radix 10 values.
	FormatPrintSign

	// FormatPrefixSpace prints ' ' before non-negative radix 10 values.
	FormatPrefixSpace
)

// FormatRadix formats v in radix 2, 8, 10 or 16, padded with pad to at least
// width characters. Signs are only printed in radix 10; negative values in
// other radices print the two's complement pattern of v's own width, so
// int8(-1) in radix 16 is "ff".
func FormatRadix[T Integer](v T, radix, width int, pad byte, flags FormatFlags) (string, error) {
	r := loadRaw(v)
	out, err := appendRadix(nil, r, radix, width, pad, flags)
	if err != nil {
		return "", numError("FormatRadix", "", r.kind, err)
	}
	return string(out), nil
}

func appendRadix(dst []byte, r raw, radix, width int, pad byte, flags FormatFlags) ([]byte, error) {
	var shift uint
	switch radix {
	case 2:
		shift = 1
	case 8:
		shift = 3
	case 16:
		shift = 4
	case 10:
	default:
		return dst, ErrInvalidBase
	}

	var buf [radixBufferSize]byte
	var l U128
	neg := false
	if radix == 10 {
		l, neg = r.magnitude()
	} else {
		l = r.width()
	}

	// Digits go in least significant first and are reversed on the way out.
	n := 0
	if l.IsZero() {
		buf[0] = '0'
		n = 1
	} else if radix == 10 {
		for !l.IsZero() {
			var rem uint64
			l, rem = l.QuoRem64(10)
			buf[n] = byte('0' + rem)
			n++
		}
	} else {
		mask := uint64(radix - 1)
		for !l.IsZero() {
			buf[n] = digits.LowerHex[l.lo&mask]
			l = l.Rsh(shift)
			n++
		}
	}

	if radix != 10 && flags&FormatPrintRadixPrefix != 0 {
		if radix == 16 {
			buf[n], buf[n+1] = 'x', '0'
			n += 2
		} else if radix == 8 {
			buf[n] = '0'
			n++
		}
	}

	if radix == 10 {
		if neg {
			buf[n] = '-'
			n++
		} else if flags&FormatPrintSign != 0 {
			buf[n] = '+'
			n++
		} else if flags&FormatPrefixSpace != 0 {
			buf[n] = ' '
			n++
		}
	}

	padding := width - n
	if flags&FormatLeftAlign == 0 {
		for ; padding > 0; padding-- {
			dst = append(dst, pad)
		}
	}
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, buf[i])
	}
	for ; padding > 0; padding-- {
		dst = append(dst, pad)
	}
	return dst, nil
}

// FormatDecimal formats v in base 10 using the invariant '-' sign.
func FormatDecimal[T Integer](v T) string {
	return string(AppendDecimal(nil, v))
}

// AppendDecimal appends v in base 10 to dst.
func AppendDecimal[T Integer](dst []byte, v T) []byte {
	mag, neg := loadRaw(v).magnitude()
	if neg {
		dst = append(dst, '-')
	}
	return appendDecimalU128(dst, mag, 1)
}

// appendDecimalU128 writes u as decimal, zero padded to minDigits. Anything
// wider than 64 bits is split into 19-digit chunks.
func appendDecimalU128(dst []byte, u U128, minDigits int) []byte {
	if u.hi == 0 {
		return digits.AppendDigits(dst, u.lo, minDigits)
	}

	q, lo := u.QuoRem64(pow10To19)
	if q.hi == 0 {
		dst = digits.AppendDigits(dst, q.lo, minDigits-19)
		return digits.AppendDigits(dst, lo, 19)
	}
	top, mid := q.QuoRem64(pow10To19)
	dst = digits.AppendDigits(dst, top.lo, minDigits-38)
	dst = digits.AppendDigits(dst, mid, 19)
	return digits.AppendDigits(dst, lo, 19)
}

// Format formats v using a standard numeric format string:
//
//	"" or G[n]  general; n significant digits switches to E notation
//	D[n]        decimal, zero padded to n digits
//	X[n], x[n]  hex bit pattern, zero padded to n digits
//	B[n], b[n]  binary bit pattern, zero padded to n digits
//	N[n]        grouped, with n decimal places (default from the culture)
//
// Anything else fails with ErrBadFormat. A nil p means culture.Invariant.
func Format[T Integer](v T, format string, p culture.Provider) (string, error) {
	out, err := AppendFormat(nil, v, format, p)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// TryFormat formats v into dst and reports the number of bytes written. It
// never writes past len(dst); a short dst fails with
// ErrInsufficientDestination and nothing is written.
func TryFormat[T Integer](dst []byte, v T, format string, p culture.Provider) (int, error) {
	var scratch [radixBufferSize]byte
	out, err := AppendFormat(scratch[:0], v, format, p)
	if err != nil {
		return 0, err
	}
	if len(out) > len(dst) {
		return 0, numError("TryFormat", format, integerKind[T](), ErrInsufficientDestination)
	}
	return copy(dst, out), nil
}

// AppendFormat is Format appending to dst.
func AppendFormat[T Integer](dst []byte, v T, format string, p culture.Provider) ([]byte, error) {
	r := loadRaw(v)
	spec, prec, ok := parseStandardFormat(format)
	if !ok {
		return dst, numError("Format", format, r.kind, ErrBadFormat)
	}
	nf := culture.Number(p)

	switch spec {
	case 'G', 'g':
		return appendGeneral(dst, r, prec, spec == 'g', nf), nil

	case 'D', 'd':
		mag, neg := r.magnitude()
		if neg {
			dst = append(dst, nf.NegativeSign...)
		}
		return appendDecimalU128(dst, mag, prec), nil

	case 'X', 'x', 'B', 'b':
		table, shift := digits.UpperHex, uint(4)
		switch spec {
		case 'x':
			table = digits.LowerHex
		case 'B', 'b':
			shift = 1
		}
		return appendBitPattern(dst, r.width(), shift, prec, table), nil

	case 'N', 'n':
		if prec < 0 {
			prec = nf.DecimalDigits
		}
		mag, neg := r.magnitude()
		if neg {
			dst = append(dst, nf.NegativeSign...)
		}
		var scratch [40]byte
		dst = appendGrouped(dst, appendDecimalU128(scratch[:0], mag, 1), nf.GroupSizes, nf.GroupSeparator)
		if prec > 0 {
			dst = append(dst, nf.DecimalSeparator...)
			for i := 0; i < prec; i++ {
				dst = append(dst, '0')
			}
		}
		return dst, nil
	}

	return dst, numError("Format", format, r.kind, ErrBadFormat)
}

// parseStandardFormat splits a format like "X8" into its specifier and
// precision. prec is -1 when absent.
func parseStandardFormat(format string) (spec byte, prec int, ok bool) {
	if format == "" {
		return 'G', -1, true
	}
	spec, prec = format[0], -1
	if !(spec >= 'A' && spec <= 'Z' || spec >= 'a' && spec <= 'z') {
		return 0, 0, false
	}
	for i := 1; i < len(format); i++ {
		c := format[i]
		if c < '0' || c > '9' {
			return 0, 0, false
		}
		if prec < 0 {
			prec = 0
		}
		prec = prec*10 + int(c-'0')
		if prec > maxFormatPrecision {
			return 0, 0, false
		}
	}
	return spec, prec, true
}

func appendBitPattern(dst []byte, u U128, shift uint, minDigits int, table string) []byte {
	var buf [128]byte
	n := 0
	mask := uint64(1)<<shift - 1
	for n == 0 || !u.IsZero() {
		buf[n] = table[u.lo&mask]
		u = u.Rsh(shift)
		n++
	}
	for i := n; i < minDigits; i++ {
		dst = append(dst, '0')
	}
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, buf[i])
	}
	return dst
}

// appendGrouped inserts sep between groups of ds counted from the right.
// The last size repeats; a size of 0 leaves the remaining digits ungrouped.
func appendGrouped(dst []byte, ds []byte, sizes []int, sep string) []byte {
	if len(sizes) == 0 || sep == "" {
		return append(dst, ds...)
	}

	var cutBuf [40]int
	cuts := cutBuf[:0]
	pos, gi, size := len(ds), 0, sizes[0]
	for size > 0 && pos > size {
		pos -= size
		cuts = append(cuts, pos)
		if gi < len(sizes)-1 {
			gi++
			size = sizes[gi]
		}
	}

	prev := 0
	for i := len(cuts) - 1; i >= 0; i-- {
		dst = append(dst, ds[prev:cuts[i]]...)
		dst = append(dst, sep...)
		prev = cuts[i]
	}
	return append(dst, ds[prev:]...)
}

// appendGeneral renders G[n]. Without a precision, or with one at least as
// large as the digit count, it is plain decimal. Otherwise the digits are
// rounded half away from zero to n significant digits and shown in E
// notation with trailing zeros removed.
func appendGeneral(dst []byte, r raw, prec int, lower bool, nf *culture.NumberFormat) []byte {
	mag, neg := r.magnitude()
	if neg {
		dst = append(dst, nf.NegativeSign...)
	}
	var scratch [40]byte
	ds := appendDecimalU128(scratch[:0], mag, 1)
	if prec <= 0 || prec >= len(ds) {
		return append(dst, ds...)
	}

	exp := len(ds) - 1
	roundUp := ds[prec] >= '5'
	ds = ds[:prec]
	if roundUp {
		i := prec - 1
		for ; i >= 0; i-- {
			if ds[i] != '9' {
				ds[i]++
				break
			}
			ds[i] = '0'
		}
		if i < 0 {
			ds[0] = '1'
			exp++
		}
	}
	for len(ds) > 1 && ds[len(ds)-1] == '0' {
		ds = ds[:len(ds)-1]
	}

	dst = append(dst, ds[0])
	if len(ds) > 1 {
		dst = append(dst, nf.DecimalSeparator...)
		dst = append(dst, ds[1:]...)
	}
	if lower {
		dst = append(dst, 'e')
	} else {
		dst = append(dst, 'E')
	}
	dst = append(dst, nf.PositiveSign...)
	return digits.AppendDigits(dst, uint64(exp), 2)
}
