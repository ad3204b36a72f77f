package prim

// ParseFlags adjust ParseNumbers.
type ParseFlags uint8

const (
	// ParseIsTight rejects input with characters left over after the digits.
	ParseIsTight ParseFlags = 1 << iota

	// ParseTreatAsUnsigned parses a signed kind with the unsigned range and
	// rejects a '-' sign.
	ParseTreatAsUnsigned

	ParseNoLeadingWhite
	ParseNoTrailingWhite
)

// ParseNumbers parses an integer of the given kind from s in radix 2, 8, 10
// or 16. Radix 0 means 10 unless s starts with a "0x" or "0X" prefix, in which
// case it is 16; radix 16 also skips the prefix. A '-' sign is only accepted
// in radix 10.
//
// The result is the two's complement bit pattern of the value, sign-extended
// to 128 bits. In radices other than 10 the digits are the bit pattern, so
// "ff" parsed as an Int8 is -1. pos is the index in s just past the last
// digit consumed.
func ParseNumbers(s string, radix int, kind Kind, flags ParseFlags) (bits U128, pos int, err error) {
	return parseNumbers("ParseNumbers", s, radix, kind, flags)
}

// ParseRadix parses s as a T in radix 2, 8, 10 or 16 (or 0 for automatic
// detection; see ParseNumbers). Surrounding whitespace is ignored, anything
// else after the digits is an error.
func ParseRadix[T Integer](s string, radix int) (T, error) {
	u, _, err := parseNumbers("ParseRadix", s, radix, integerKind[T](), ParseIsTight)
	if err != nil {
		var zero T
		return zero, err
	}
	return storeRaw[T](u), nil
}

// TryParseRadix is ParseRadix reporting failure with ok == false and a zero
// value.
func TryParseRadix[T Integer](s string, radix int) (v T, ok bool) {
	u, _, err := parseNumbers("ParseRadix", s, radix, integerKind[T](), ParseIsTight)
	if err != nil {
		return v, false
	}
	return storeRaw[T](u), true
}

// accumulatorKind is the kind the digits are accumulated in. Everything
// narrower than 32 bits shares the 32-bit routine and is re-checked after.
func accumulatorKind(bits uint, signed bool) Kind {
	switch {
	case bits <= 32 && signed:
		return Int32
	case bits <= 32:
		return Uint32
	case bits <= 64 && signed:
		return Int64
	case bits <= 64:
		return Uint64
	case signed:
		return Int128
	default:
		return Uint128
	}
}

func parseNumbers(fn, s string, radix int, kind Kind, flags ParseFlags) (out U128, pos int, err error) {
	if !kind.Integer() {
		panic("prim: ParseNumbers called with non-integer kind " + kind.String())
	}
	fail := func(k Kind, err error) (U128, int, error) {
		return U128{}, 0, numError(fn, s, k, err)
	}

	auto := radix == 0
	if auto {
		radix = 10
	}
	if radix != 2 && radix != 8 && radix != 10 && radix != 16 {
		return fail(Invalid, ErrInvalidBase)
	}

	unsigned := !kind.Signed() || flags&ParseTreatAsUnsigned != 0

	i, end := 0, len(s)
	if flags&ParseNoLeadingWhite == 0 {
		for i < end && isWhite(s[i]) {
			i++
		}
	}
	if flags&ParseNoTrailingWhite == 0 {
		for end > i && isWhite(s[end-1]) {
			end--
		}
	}
	if i == end {
		return fail(Invalid, ErrEmptyInput)
	}

	neg := false
	switch s[i] {
	case '-':
		if radix != 10 {
			return fail(kind, ErrNegativeNonDecimal)
		}
		if unsigned {
			return fail(kind, ErrNegativeUnsigned)
		}
		neg = true
		i++
	case '+':
		i++
	}

	if (auto || radix == 16) && i+1 < end && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		if neg {
			return fail(kind, ErrNegativeNonDecimal)
		}
		radix = 16
		i += 2
	}

	signedDecimal := radix == 10 && !unsigned
	acc := accumulatorKind(kind.Bits(), signedDecimal)
	accMax := MaxU128.Rsh(128 - acc.Bits())

	start := i
	var result U128

	if signedDecimal {
		half := accMax.Rsh(1)
		maxVal, _ := half.QuoRem64(10)
		for ; i < end; i++ {
			d, ok := digitValue(s[i], 10)
			if !ok {
				break
			}
			if result.GreaterThan(maxVal) {
				return fail(acc, ErrOverflow)
			}
			result, _ = result.MulAdd64(10, d)
		}

		// The magnitude of the minimum value is one more than the maximum.
		minMag := half.Add(U128From64(1))
		if result.GreaterThan(half) && (result != minMag || !neg) {
			return fail(acc, ErrOverflow)
		}

	} else {
		maxVal, _ := accMax.QuoRem64(uint64(radix))
		for ; i < end; i++ {
			d, ok := digitValue(s[i], radix)
			if !ok {
				break
			}
			if result.GreaterThan(maxVal) {
				return fail(acc, ErrOverflow)
			}
			temp, wrapped := result.MulAdd64(uint64(radix), d)
			if wrapped || temp.LessThan(result) || temp.GreaterThan(accMax) {
				return fail(acc, ErrOverflow)
			}
			result = temp
		}
	}

	if i == start {
		return fail(kind, ErrNoParsableDigits)
	}
	if flags&ParseIsTight != 0 && i < end {
		return fail(kind, ErrTrailingJunk)
	}

	if kind.Bits() < acc.Bits() {
		limit := MaxU128.Rsh(128 - kind.Bits())
		if signedDecimal {
			limit = kind.maxU128()
			if neg {
				limit = kind.minMagnitude()
			}
		}
		if result.GreaterThan(limit) {
			return fail(kind, ErrOverflow)
		}
	}

	if neg {
		return zeroU128.Sub(result), i, nil
	}
	if kind.Signed() && !signedDecimal {
		result = signExtend(result, kind.Bits())
	}
	return result, i, nil
}

func digitValue(c byte, radix int) (uint64, bool) {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'z':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		d = int(c-'A') + 10
	default:
		return 0, false
	}
	return uint64(d), d < radix
}

// signExtend copies bit n-1 of u into every bit above it.
func signExtend(u U128, n uint) U128 {
	if n >= 128 || u.Rsh(n-1).lo&1 == 0 {
		return u
	}
	return u.Or(MaxU128.Lsh(n))
}
