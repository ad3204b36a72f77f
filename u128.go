package prim

import (
	"fmt"
	"math/big"
	"math/bits"
)

// U128 is an unsigned 128-bit integer. It is a value type; all operations
// return new values.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }

var maxBigUint64 = new(big.Int).SetUint64(maxUint64)

// U128FromBigInt creates a U128 from a big.Int. Overflow clamps to MaxU128,
// negative values clamp to 0, and accurate is false in both cases.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 128 {
		return MaxU128, false
	}
	var lo, hi big.Int
	lo.And(v, maxBigUint64)
	hi.Rsh(v, 64)
	return U128{hi: hi.Uint64(), lo: lo.Uint64()}, true
}

// U128FromFloat64 creates a U128 from a float64, truncating toward zero.
// Floats outside the range of a U128 clamp and set inRange to false. NaN is
// 0 and not in range.
func U128FromFloat64(f float64) (out U128, inRange bool) {
	if f != f { // NaN
		return U128{}, false
	}
	if f > -1 && f < 1 {
		return U128{}, true
	} else if f < 0 {
		return U128{}, false
	} else if f <= maxUint64Float {
		if f == maxUint64Float { // rounds up to 1<<64
			return U128{hi: 1}, true
		}
		return U128{lo: uint64(f)}, true
	} else if f < maxU128Float {
		lo := modpos(f, wrapUint64Float)
		return U128{hi: uint64(f / wrapUint64Float), lo: uint64(lo)}, true
	}
	return MaxU128, false
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns the U128 as a pair of uint64s. See U128FromRaw() for the
// counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	if u.hi == 0 {
		return string(AppendDecimal(nil, u.lo))
	}
	return string(AppendDecimal(nil, u))
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u U128) AsBigInt() *big.Int {
	b := new(big.Int).SetUint64(u.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.lo))
}

// AsBigFloat returns u exactly; a 128-bit mantissa covers every value.
func (u U128) AsBigFloat() *big.Float {
	return new(big.Float).SetPrec(128).SetInt(u.AsBigInt())
}

// AsFloat64 returns the nearest float64 to u.
func (u U128) AsFloat64() float64 {
	if u.hi == 0 {
		return float64(u.lo)
	}
	f, _ := u.AsBigFloat().Float64()
	return f
}

// AsI128 reinterprets u as a two's complement I128.
func (u U128) AsI128() I128 { return I128{hi: u.hi, lo: u.lo} }

func (u U128) IsUint64() bool { return u.hi == 0 }

func (u U128) Add(n U128) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) And(v U128) U128 { return U128{hi: u.hi & v.hi, lo: u.lo & v.lo} }
func (u U128) Or(v U128) U128  { return U128{hi: u.hi | v.hi, lo: u.lo | v.lo} }
func (u U128) Not() U128       { return U128{hi: ^u.hi, lo: ^u.lo} }

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else {
		v.hi = u.lo
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else {
		v.lo = u.hi
	}
	return v
}

// Mask keeps the low n bits of u.
func (u U128) Mask(n uint) U128 {
	if n >= 128 {
		return u
	}
	return u.And(MaxU128.Rsh(128 - n))
}

// Mul returns u*n, wrapping on overflow.
func (u U128) Mul(n U128) (v U128) {
	v.hi, v.lo = bits.Mul64(u.lo, n.lo)
	v.hi += u.hi*n.lo + u.lo*n.hi
	return v
}

// MulAdd64 returns u*m + a and whether the result overflowed 128 bits.
func (u U128) MulAdd64(m, a uint64) (v U128, overflow bool) {
	hiHi, hiLo := bits.Mul64(u.hi, m)
	loHi, loLo := bits.Mul64(u.lo, m)

	var carry uint64
	v.lo, carry = bits.Add64(loLo, a, 0)
	v.hi, carry = bits.Add64(hiLo, loHi, carry)
	return v, hiHi != 0 || carry != 0
}

// QuoRem64 divides u by a 64-bit divisor. If by == 0, a division-by-zero
// run-time panic occurs.
func (u U128) QuoRem64(by uint64) (q U128, r uint64) {
	if by == 0 {
		panic("u128: division by zero")
	}
	q.hi, r = bits.Div64(0, u.hi, by)
	q.lo, r = bits.Div64(r, u.lo, by)
	return q, r
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

// BitLen is the number of bits required to represent u.
func (u U128) BitLen() uint { return 128 - u.LeadingZeros() }

func (u U128) MarshalText() ([]byte, error) {
	return AppendDecimal(nil, u), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, err := ParseRadix[U128](string(bts), 10)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	out := append([]byte{'"'}, AppendDecimal(nil, u)...)
	return append(out, '"'), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSONNumber(bts)
	if err != nil {
		return fmt.Errorf("prim: u128 invalid JSON: %w", err)
	}
	return u.UnmarshalText(bts)
}
