package guid

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/shabbyrobe/go-prim"
	"github.com/shabbyrobe/go-prim/internal/digits"
)

var (
	ErrUnrecognized         = errors.New("unrecognized GUID format")
	ErrInvalidLength        = errors.New("GUID should contain 32 digits with 4 dashes (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx)")
	ErrDashes               = errors.New("dashes are in the wrong position for GUID parsing")
	ErrInvalidChar          = errors.New("GUID string contains invalid hex characters")
	ErrBrace                = errors.New("could not find a brace, or the length between the previous token and the brace was zero")
	ErrBraceAfterLastNumber = errors.New("could not find a brace after the last number")
	ErrEndBrace             = errors.New("could not find the ending brace")
	ErrComma                = errors.New("could not find a comma, or the length between the previous token and the comma was zero")
	ErrHexPrefix            = errors.New("expected 0x prefix")
)

// ParseError is returned by all parsing functions. Err is one of the
// sentinels above, prim.ErrTrailingJunk, prim.ErrBadFormat or
// prim.ErrOverflow; for overflow, Type is the width that overflowed.
type ParseError struct {
	Func  string
	Input string
	Type  prim.Kind
	Err   error
}

func (e *ParseError) Error() string {
	s := "guid: " + e.Func + " " + strconv.Quote(e.Input) + ": "
	if e.Type != prim.Invalid {
		s += e.Type.String() + " "
	}
	return s + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

func fail(err error) *ParseError { return &ParseError{Err: err} }

func overflow(kind prim.Kind) *ParseError {
	return &ParseError{Type: kind, Err: prim.ErrOverflow}
}

func (e *ParseError) at(fn, input string) *ParseError {
	e.Func, e.Input = fn, input
	return e
}

// Parse accepts any of the five forms, chosen by the first non-space byte
// and the presence of a dash:
//
//	'('          P
//	'{' with '-' B
//	'{'          X
//	'-' anywhere D
//	otherwise    N
//
// Leading and trailing whitespace is ignored.
func Parse(s string) (GUID, error) {
	g, err := parseAny(s)
	if err != nil {
		return Empty, err.at("Parse", s)
	}
	return g, nil
}

// TryParse is Parse without the error.
func TryParse(s string) (GUID, bool) {
	g, err := parseAny(s)
	if err != nil {
		return Empty, false
	}
	return g, true
}

// FromString is Parse, except that overflow in the X form is reported as
// ErrUnrecognized.
func FromString(s string) (GUID, error) {
	g, err := parseAny(s)
	if err != nil {
		if err.Err == prim.ErrOverflow {
			err = fail(ErrUnrecognized)
		}
		return Empty, err.at("FromString", s)
	}
	return g, nil
}

// ParseExact parses s in exactly one of the forms. format is a single
// specifier from "NDBPX" in either case.
func ParseExact(s string, format string) (GUID, error) {
	g, err := parseExact(s, format)
	if err != nil {
		return Empty, err.at("ParseExact", s)
	}
	return g, nil
}

func TryParseExact(s string, format string) (GUID, bool) {
	g, err := parseExact(s, format)
	if err != nil {
		return Empty, false
	}
	return g, true
}

func parseAny(s string) (GUID, *ParseError) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Empty, fail(ErrUnrecognized)
	}
	switch s[0] {
	case '(':
		return parseP(s)
	case '{':
		if strings.IndexByte(s, '-') >= 0 {
			return parseB(s)
		}
		return parseX(s)
	default:
		if strings.IndexByte(s, '-') >= 0 {
			return parseD(s)
		}
		return parseN(s)
	}
}

func parseExact(s string, format string) (GUID, *ParseError) {
	if len(format) != 1 {
		return Empty, fail(prim.ErrBadFormat)
	}
	s = strings.TrimSpace(s)
	switch format[0] | 0x20 {
	case 'd':
		return parseD(s)
	case 'n':
		return parseN(s)
	case 'b':
		return parseB(s)
	case 'p':
		return parseP(s)
	case 'x':
		return parseX(s)
	}
	return Empty, fail(prim.ErrBadFormat)
}

func parseN(s string) (g GUID, err *ParseError) {
	if len(s) != LenN {
		return Empty, fail(ErrInvalidLength)
	}
	invalid := 0
	g[0] = digits.DecodeByte(s[6], s[7], &invalid)
	g[1] = digits.DecodeByte(s[4], s[5], &invalid)
	g[2] = digits.DecodeByte(s[2], s[3], &invalid)
	g[3] = digits.DecodeByte(s[0], s[1], &invalid)
	g[4] = digits.DecodeByte(s[10], s[11], &invalid)
	g[5] = digits.DecodeByte(s[8], s[9], &invalid)
	g[6] = digits.DecodeByte(s[14], s[15], &invalid)
	g[7] = digits.DecodeByte(s[12], s[13], &invalid)
	for i := 8; i < 16; i++ {
		g[i] = digits.DecodeByte(s[i*2], s[i*2+1], &invalid)
	}
	if invalid < 0 {
		return Empty, fail(ErrInvalidChar)
	}
	return g, nil
}

func parseD(s string) (g GUID, err *ParseError) {
	if len(s) != LenD {
		return Empty, fail(ErrInvalidLength)
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return Empty, fail(ErrDashes)
	}

	invalid := 0
	g[0] = digits.DecodeByte(s[6], s[7], &invalid)
	g[1] = digits.DecodeByte(s[4], s[5], &invalid)
	g[2] = digits.DecodeByte(s[2], s[3], &invalid)
	g[3] = digits.DecodeByte(s[0], s[1], &invalid)
	g[4] = digits.DecodeByte(s[11], s[12], &invalid)
	g[5] = digits.DecodeByte(s[9], s[10], &invalid)
	g[6] = digits.DecodeByte(s[16], s[17], &invalid)
	g[7] = digits.DecodeByte(s[14], s[15], &invalid)
	g[8] = digits.DecodeByte(s[19], s[20], &invalid)
	g[9] = digits.DecodeByte(s[21], s[22], &invalid)
	for i := 10; i < 16; i++ {
		off := 24 + (i-10)*2
		g[i] = digits.DecodeByte(s[off], s[off+1], &invalid)
	}
	if invalid >= 0 {
		return g, nil
	}

	if strings.ContainsAny(s, "xX+") {
		if g, ok := parseDCompat(s); ok {
			return g, nil
		}
	}
	return Empty, fail(ErrInvalidChar)
}

// parseDCompat accepts a '+' sign and a 0x prefix inside the first four dash
// groups, as long as the dashes are still where D expects them. The final
// group is plain hex.
func parseDCompat(s string) (g GUID, ok bool) {
	a, ok, _ := parseHex(s[0:8])
	if !ok {
		return g, false
	}
	b, ok, _ := parseHex(s[9:13])
	if !ok {
		return g, false
	}
	c, ok, _ := parseHex(s[14:18])
	if !ok {
		return g, false
	}
	de, ok, _ := parseHex(s[19:23])
	if !ok {
		return g, false
	}
	fg, ok, _ := parseHex(s[24:28])
	if !ok {
		return g, false
	}

	var hk uint32
	for i := 28; i < 36; i++ {
		v := digits.FromHexChar(s[i])
		if v == 0xFF {
			return g, false
		}
		hk = hk<<4 | uint32(v)
	}

	return FromFields(a, uint16(b), uint16(c),
		byte(de>>8), byte(de), byte(fg>>8), byte(fg),
		byte(hk>>24), byte(hk>>16), byte(hk>>8), byte(hk)), true
}

// parseHex reads a variable-length hex number with an optional '+' and 0x
// prefix. Leading zeros are skipped and do not count towards overflow; more
// than eight significant digits sets overflow, and the low 32 bits are kept.
// An empty remainder parses as zero.
func parseHex(s string) (v uint32, ok, overflow bool) {
	if len(s) > 0 && s[0] == '+' {
		s = s[1:]
	}
	if len(s) > 1 && s[0] == '0' && s[1]|0x20 == 'x' {
		s = s[2:]
	}

	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	n := 0
	for ; i < len(s); i++ {
		d := digits.FromHexChar(s[i])
		if d == 0xFF {
			return 0, false, n > 8
		}
		v = v*16 + uint32(d)
		n++
	}
	return v, true, n > 8
}

func parseB(s string) (GUID, *ParseError) {
	if len(s) != LenB || s[0] != '{' || s[37] != '}' {
		return Empty, fail(ErrInvalidLength)
	}
	return parseD(s[1:37])
}

func parseP(s string) (GUID, *ParseError) {
	if len(s) != LenP || s[0] != '(' || s[37] != ')' {
		return Empty, fail(ErrInvalidLength)
	}
	return parseD(s[1:37])
}

func isHexPrefix(s string, i int) bool {
	return i+1 < len(s) && s[i] == '0' && s[i+1]|0x20 == 'x'
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// parseX reads {0xa,0xb,0xc,{0xd,0xe,0xf,0xg,0xh,0xi,0xj,0xk}}. Whitespace
// anywhere is ignored and each component may have any number of digits.
func parseX(s string) (GUID, *ParseError) {
	s = stripSpace(s)
	if len(s) == 0 || s[0] != '{' {
		return Empty, fail(ErrBrace)
	}
	if !isHexPrefix(s, 1) {
		return Empty, fail(ErrHexPrefix)
	}

	var fields [3]uint32
	numStart, numLen := 3, 0
	for i := range fields {
		if i > 0 {
			if !isHexPrefix(s, numStart+numLen+1) {
				return Empty, fail(ErrHexPrefix)
			}
			numStart += numLen + 3
		}
		numLen = strings.IndexByte(s[numStart:], ',')
		if numLen <= 0 {
			return Empty, fail(ErrComma)
		}
		v, ok, over := parseHex(s[numStart : numStart+numLen])
		if over {
			return Empty, overflow(prim.Uint32)
		} else if !ok {
			return Empty, fail(ErrInvalidChar)
		}
		fields[i] = v
	}

	if len(s) <= numStart+numLen+1 || s[numStart+numLen+1] != '{' {
		return Empty, fail(ErrBrace)
	}
	numLen++

	var tail [8]byte
	for i := range tail {
		if !isHexPrefix(s, numStart+numLen+1) {
			return Empty, fail(ErrHexPrefix)
		}
		numStart += numLen + 3

		if i < 7 {
			numLen = strings.IndexByte(s[numStart:], ',')
			if numLen <= 0 {
				return Empty, fail(ErrComma)
			}
		} else {
			numLen = strings.IndexByte(s[numStart:], '}')
			if numLen <= 0 {
				return Empty, fail(ErrBraceAfterLastNumber)
			}
		}

		// Bytes overflow as 32-bit numbers first, so 0xddd and 0xddddddddd
		// fail differently.
		v, ok, over := parseHex(s[numStart : numStart+numLen])
		switch {
		case over:
			return Empty, overflow(prim.Uint32)
		case !ok:
			return Empty, fail(ErrInvalidChar)
		case v > 0xFF:
			return Empty, overflow(prim.Uint8)
		}
		tail[i] = byte(v)
	}

	end := numStart + numLen + 1
	if end >= len(s) || s[end] != '}' {
		return Empty, fail(ErrEndBrace)
	}
	if end != len(s)-1 {
		return Empty, fail(prim.ErrTrailingJunk)
	}

	return FromFields(fields[0], uint16(fields[1]), uint16(fields[2]),
		tail[0], tail[1], tail[2], tail[3], tail[4], tail[5], tail[6], tail[7]), nil
}
