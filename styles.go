package prim

import (
	"strings"

	"github.com/shabbyrobe/go-prim/culture"
)

// NumberStyles controls which elements Parse accepts around the digits.
type NumberStyles uint16

const (
	AllowLeadingWhite NumberStyles = 1 << iota
	AllowTrailingWhite
	AllowLeadingSign
	AllowTrailingSign
	AllowParentheses
	AllowDecimalPoint
	AllowThousands
	AllowHexSpecifier
	AllowBinarySpecifier

	StyleNone         NumberStyles = 0
	StyleInteger                   = AllowLeadingWhite | AllowTrailingWhite | AllowLeadingSign
	StyleHexNumber                 = AllowLeadingWhite | AllowTrailingWhite | AllowHexSpecifier
	StyleBinaryNumber              = AllowLeadingWhite | AllowTrailingWhite | AllowBinarySpecifier
	StyleNumber                    = StyleInteger | AllowTrailingSign | AllowDecimalPoint | AllowThousands
	StyleAny                       = StyleNumber | AllowParentheses

	invalidStyleMask = ^(StyleAny | AllowHexSpecifier | AllowBinarySpecifier)
	whiteStyles      = AllowLeadingWhite | AllowTrailingWhite
)

func (ns NumberStyles) validate() error {
	if ns&invalidStyleMask != 0 {
		return ErrBadFormat
	}
	special := ns & (AllowHexSpecifier | AllowBinarySpecifier)
	if special == AllowHexSpecifier|AllowBinarySpecifier {
		return ErrBadFormat
	}
	if special != 0 && ns&^(special|whiteStyles) != 0 {
		return ErrBadFormat
	}
	return nil
}

// Parse parses s as a T, accepting the elements allowed by styles. Signs and
// separators come from p's NumberFormat; a nil p means culture.Invariant.
//
// A fractional part is accepted only if every digit in it is zero; anything
// else overflows the integer. With AllowHexSpecifier or AllowBinarySpecifier
// the digits are the bit pattern of T, without any prefix.
func Parse[T Integer](s string, styles NumberStyles, p culture.Provider) (T, error) {
	var zero T
	kind := integerKind[T]()
	u, err := parseStyle(s, styles, culture.Number(p), kind)
	if err != nil {
		return zero, numError("Parse", s, errKind(err, kind), unwrapKind(err))
	}
	return storeRaw[T](u), nil
}

// TryParse is Parse reporting failure with ok == false and a zero value.
func TryParse[T Integer](s string, styles NumberStyles, p culture.Provider) (v T, ok bool) {
	u, err := parseStyle(s, styles, culture.Number(p), integerKind[T]())
	if err != nil {
		return v, false
	}
	return storeRaw[T](u), true
}

// kindError tags a sentinel with the kind it applies to while it travels up
// to the exported function that wraps it in a NumError.
type kindError struct {
	kind Kind
	err  error
}

func (e *kindError) Error() string { return e.kind.String() + " " + e.err.Error() }
func (e *kindError) Unwrap() error { return e.err }

func errKind(err error, fallback Kind) Kind {
	if ke, ok := err.(*kindError); ok {
		return ke.kind
	}
	return fallback
}

func unwrapKind(err error) error {
	if ke, ok := err.(*kindError); ok {
		return ke.err
	}
	return err
}

func parseStyle(s string, styles NumberStyles, nf *culture.NumberFormat, kind Kind) (U128, error) {
	if err := styles.validate(); err != nil {
		return U128{}, &kindError{Invalid, err}
	}

	if len(trimWhite(s, true, true)) == 0 {
		return U128{}, ErrEmptyInput
	}
	s = trimWhite(s, styles&AllowLeadingWhite != 0, styles&AllowTrailingWhite != 0)

	switch {
	case styles&AllowHexSpecifier != 0:
		return parseBitPattern(s, 16, kind)
	case styles&AllowBinarySpecifier != 0:
		return parseBitPattern(s, 2, kind)
	}

	neg, signSeen, parens := false, false, false
	if styles&AllowParentheses != 0 && strings.HasPrefix(s, "(") {
		parens, neg, signSeen = true, true, true
		s = s[1:]
	}
	if !signSeen && styles&AllowLeadingSign != 0 {
		if n, ok := matchSign(s, nf); ok {
			neg, signSeen = n, true
			s = s[signLen(s, nf, n):]
		}
	}

	mag, overflow, rest, ok := scanDecimal(s, styles, nf, kind)
	if !ok {
		return U128{}, ErrBadFormat
	}
	s = rest

	if !signSeen && styles&AllowTrailingSign != 0 {
		if n, ok := matchSign(s, nf); ok {
			neg, signSeen = n, true
			s = s[signLen(s, nf, n):]
		}
	}
	if parens {
		if !strings.HasPrefix(s, ")") {
			return U128{}, ErrBadFormat
		}
		s = s[1:]
	}
	if styles&AllowTrailingWhite != 0 {
		s = trimWhite(s, true, false)
	}
	if s != "" {
		return U128{}, ErrBadFormat
	}

	if neg && !kind.Signed() {
		return U128{}, &kindError{kind, ErrNegativeUnsigned}
	}
	if overflow {
		return U128{}, &kindError{kind, ErrOverflow}
	}
	limit := kind.maxU128()
	if neg {
		limit = kind.minMagnitude()
	}
	if mag.GreaterThan(limit) {
		return U128{}, &kindError{kind, ErrOverflow}
	}
	if neg {
		return zeroU128.Sub(mag), nil
	}
	return mag, nil
}

// matchSign reports whether s starts with the negative or positive sign. The
// longer sign wins when one is a prefix of the other.
func matchSign(s string, nf *culture.NumberFormat) (neg, ok bool) {
	negOK := nf.NegativeSign != "" && strings.HasPrefix(s, nf.NegativeSign)
	posOK := nf.PositiveSign != "" && strings.HasPrefix(s, nf.PositiveSign)
	switch {
	case negOK && posOK:
		return len(nf.NegativeSign) >= len(nf.PositiveSign), true
	case negOK:
		return true, true
	case posOK:
		return false, true
	}
	return false, false
}

func signLen(s string, nf *culture.NumberFormat, neg bool) int {
	if neg {
		return len(nf.NegativeSign)
	}
	return len(nf.PositiveSign)
}

// scanDecimal consumes digits, group separators and an all-zero fraction.
// overflow is set once the magnitude can no longer fit kind; scanning
// continues so that syntax errors still take precedence.
func scanDecimal(s string, styles NumberStyles, nf *culture.NumberFormat, kind Kind) (mag U128, overflow bool, rest string, ok bool) {
	// The sign may still follow, so allow for the larger negative magnitude.
	limit := kind.maxU128()
	if kind.Signed() {
		limit = kind.minMagnitude()
	}

	digits := 0
	for len(s) > 0 {
		c := s[0]
		if c >= '0' && c <= '9' {
			if !overflow {
				next, wrapped := mag.MulAdd64(10, uint64(c-'0'))
				if wrapped || next.GreaterThan(limit) {
					overflow = true
				} else {
					mag = next
				}
			}
			digits++
			s = s[1:]
			continue
		}
		if digits > 0 && styles&AllowThousands != 0 && nf.GroupSeparator != "" && strings.HasPrefix(s, nf.GroupSeparator) {
			s = s[len(nf.GroupSeparator):]
			continue
		}
		break
	}

	if styles&AllowDecimalPoint != 0 && nf.DecimalSeparator != "" && strings.HasPrefix(s, nf.DecimalSeparator) {
		s = s[len(nf.DecimalSeparator):]
		for len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
			if s[0] != '0' {
				overflow = true
			}
			digits++
			s = s[1:]
		}
	}
	return mag, overflow, s, digits > 0
}

// parseBitPattern reads hex or binary digits as the two's complement bit
// pattern of kind. Leading zeros never overflow.
func parseBitPattern(s string, radix int, kind Kind) (U128, error) {
	var shift uint = 4
	if radix == 2 {
		shift = 1
	}
	width := kind.Bits()

	var result U128
	digits := 0
	for ; digits < len(s); digits++ {
		d, ok := digitValue(s[digits], radix)
		if !ok {
			return U128{}, ErrBadFormat
		}
		if result.BitLen()+shift > width {
			return U128{}, &kindError{kind, ErrOverflow}
		}
		result = result.Lsh(shift).Or(U128From64(d))
	}
	if digits == 0 {
		return U128{}, ErrBadFormat
	}
	if kind.Signed() {
		result = signExtend(result, width)
	}
	return result, nil
}
