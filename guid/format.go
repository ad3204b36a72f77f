package guid

import (
	"fmt"

	"github.com/shabbyrobe/go-prim"
	"github.com/shabbyrobe/go-prim/internal/digits"
)

// Lengths of each text form.
const (
	LenN = 32
	LenD = 36
	LenB = 38
	LenP = 38
	LenX = 68
)

// formatLen returns the output length for a format specifier. An empty
// format is D.
func formatLen(format string) (spec byte, n int, err error) {
	if format == "" {
		return 'd', LenD, nil
	}
	if len(format) != 1 {
		return 0, 0, prim.ErrBadFormat
	}
	switch spec = format[0] | 0x20; spec {
	case 'n':
		n = LenN
	case 'd':
		n = LenD
	case 'b':
		n = LenB
	case 'p':
		n = LenP
	case 'x':
		n = LenX
	default:
		return 0, 0, prim.ErrBadFormat
	}
	return spec, n, nil
}

// String returns the D form.
func (g GUID) String() string {
	var buf [LenD]byte
	g.writeD(buf[:])
	return string(buf[:])
}

// Text returns g in one of the N, D, B, P or X forms. The specifier is
// case-insensitive and the hex digits are always lower case.
func (g GUID) Text(format string) (string, error) {
	out, err := g.AppendFormat(nil, format)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// AppendFormat appends the text form of g to dst.
func (g GUID) AppendFormat(dst []byte, format string) ([]byte, error) {
	_, n, err := formatLen(format)
	if err != nil {
		return dst, &FormatError{Format: format, Err: err}
	}
	ln := len(dst)
	if cap(dst)-ln < n {
		nd := make([]byte, ln, ln+n)
		copy(nd, dst)
		dst = nd
	}
	dst = dst[:ln+n]
	_, err = g.TryFormat(dst[ln:], format)
	return dst, err
}

// TryFormat writes g into dst and reports the number of bytes written. A dst
// shorter than the form's fixed length fails with
// prim.ErrInsufficientDestination and nothing is written.
func (g GUID) TryFormat(dst []byte, format string) (int, error) {
	spec, n, err := formatLen(format)
	if err != nil {
		return 0, &FormatError{Format: format, Err: err}
	}
	if len(dst) < n {
		return 0, &FormatError{Format: format, Err: prim.ErrInsufficientDestination}
	}

	switch spec {
	case 'n':
		g.writeN(dst)
	case 'd':
		g.writeD(dst)
	case 'b':
		dst[0] = '{'
		g.writeD(dst[1:])
		dst[37] = '}'
	case 'p':
		dst[0] = '('
		g.writeD(dst[1:])
		dst[37] = ')'
	case 'x':
		g.writeX(dst)
	}
	return n, nil
}

func hexPair(dst []byte, off int, b byte) {
	dst[off] = digits.LowerHex[b>>4]
	dst[off+1] = digits.LowerHex[b&0xf]
}

func (g GUID) writeN(dst []byte) {
	hexPair(dst, 0, g[3])
	hexPair(dst, 2, g[2])
	hexPair(dst, 4, g[1])
	hexPair(dst, 6, g[0])
	hexPair(dst, 8, g[5])
	hexPair(dst, 10, g[4])
	hexPair(dst, 12, g[7])
	hexPair(dst, 14, g[6])
	for i := 8; i < 16; i++ {
		hexPair(dst, i*2, g[i])
	}
}

func (g GUID) writeD(dst []byte) {
	hexPair(dst, 0, g[3])
	hexPair(dst, 2, g[2])
	hexPair(dst, 4, g[1])
	hexPair(dst, 6, g[0])
	dst[8] = '-'
	hexPair(dst, 9, g[5])
	hexPair(dst, 11, g[4])
	dst[13] = '-'
	hexPair(dst, 14, g[7])
	hexPair(dst, 16, g[6])
	dst[18] = '-'
	hexPair(dst, 19, g[8])
	hexPair(dst, 21, g[9])
	dst[23] = '-'
	for i := 10; i < 16; i++ {
		hexPair(dst, 24+(i-10)*2, g[i])
	}
}

// writeX fills dst[:LenX]. The appends stay within dst's backing array.
func (g GUID) writeX(dst []byte) {
	b := append(dst[:0], "{0x"...)
	b = digits.AppendHex(b, uint64(g.A()), 8, digits.LowerHex)
	b = append(b, ",0x"...)
	b = digits.AppendHex(b, uint64(g.B()), 4, digits.LowerHex)
	b = append(b, ",0x"...)
	b = digits.AppendHex(b, uint64(g.C()), 4, digits.LowerHex)
	b = append(b, ",{"...)
	for i := 8; i < 16; i++ {
		if i > 8 {
			b = append(b, ',')
		}
		b = append(b, '0', 'x', digits.LowerHex[g[i]>>4], digits.LowerHex[g[i]&0xf])
	}
	_ = append(b, "}}"...)
}

// Format implements fmt.Formatter: %v and %s print the D form, %x the N
// form and %q a quoted D form.
func (g GUID) Format(s fmt.State, c rune) {
	var buf [LenD + 2]byte
	var out []byte
	switch c {
	case 'x':
		g.writeN(buf[:])
		out = buf[:LenN]
	case 'q':
		buf[0] = '"'
		g.writeD(buf[1:])
		buf[LenD+1] = '"'
		out = buf[:]
	case 'v', 's':
		g.writeD(buf[:])
		out = buf[:LenD]
	default:
		fmt.Fprintf(s, "%%!%c(guid.GUID=%s)", c, g.String())
		return
	}
	s.Write(out)
}

// FormatError is returned by the formatting functions.
type FormatError struct {
	Format string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("guid: format %q: %v", e.Format, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
