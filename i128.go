package prim

import (
	"fmt"
	"math/big"
)

// I128 is a signed 128-bit integer in two's complement form.
type I128 struct {
	hi uint64
	lo uint64
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

// I128FromBigInt creates an I128 from a big.Int. Values outside the range
// clamp to MaxI128/MinI128 and set accurate to false.
func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0
	u, accurate := U128FromBigInt(new(big.Int).Abs(v))

	if !neg {
		if u.GreaterThan(maxI128AsU128) {
			return MaxI128, false
		}
		return u.AsI128(), accurate
	}
	if u.GreaterThan(minI128AsAbsU128) {
		return MinI128, false
	}
	return u.AsI128().Neg(), accurate
}

// I128FromFloat64 creates an I128 from a float64, truncating toward zero.
// Floats outside the range clamp to MaxI128/MinI128 and set inRange to false.
// NaN is 0 and not in range.
func I128FromFloat64(f float64) (out I128, inRange bool) {
	if f != f { // NaN
		return out, false
	} else if f >= 0 {
		if f >= -minI128Float {
			return MaxI128, false
		}
		u, _ := U128FromFloat64(f)
		return u.AsI128(), true
	}
	if f < minI128Float {
		return MinI128, false
	}
	u, _ := U128FromFloat64(-f)
	return u.AsI128().Neg(), true
}

// RandI128 generates a signed 128-bit random integer from an external source.
func RandI128(source RandSource) (out I128) {
	return I128{hi: source.Uint64(), lo: source.Uint64()}
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns the I128 as a pair of uint64s. See I128FromRaw() for the
// counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

func (i I128) String() string {
	return string(AppendDecimal(nil, i))
}

func (i I128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

func (i I128) AsBigInt() *big.Int {
	b := i.Abs().AsBigInt()
	if i.Sign() < 0 {
		b.Neg(b)
	}
	return b
}

// AsU128 reinterprets i as a U128 bit pattern.
func (i I128) AsU128() U128 { return U128{hi: i.hi, lo: i.lo} }

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Add(n I128) I128 { return i.AsU128().Add(n.AsU128()).AsI128() }
func (i I128) Sub(n I128) I128 { return i.AsU128().Sub(n.AsU128()).AsI128() }

// Mul returns i*n, wrapping on overflow. Two's complement multiplication
// needs no sign handling.
func (i I128) Mul(n I128) I128 { return i.AsU128().Mul(n.AsU128()).AsI128() }

// AsFloat64 returns the nearest float64 to i.
func (i I128) AsFloat64() float64 {
	f := i.Abs().AsFloat64()
	if i.Sign() < 0 {
		return -f
	}
	return f
}

// Neg returns -i. -MinI128 overflows to MinI128.
func (i I128) Neg() I128 {
	return zeroU128.Sub(i.AsU128()).AsI128()
}

// Abs returns the magnitude of i. Unlike Neg, Abs(MinI128) is exact.
func (i I128) Abs() U128 {
	if i.hi&signBit != 0 {
		return zeroU128.Sub(i.AsU128())
	}
	return i.AsU128()
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
func (i I128) Cmp(n I128) int {
	if i == n {
		return 0
	}
	in, nn := i.hi&signBit != 0, n.hi&signBit != 0
	if in != nn {
		if in {
			return -1
		}
		return 1
	}
	return i.AsU128().Cmp(n.AsU128())
}

func (i I128) MarshalText() ([]byte, error) {
	return AppendDecimal(nil, i), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, err := ParseRadix[I128](string(bts), 10)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I128) MarshalJSON() ([]byte, error) {
	out := append([]byte{'"'}, AppendDecimal(nil, i)...)
	return append(out, '"'), nil
}

func (i *I128) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSONNumber(bts)
	if err != nil {
		return fmt.Errorf("prim: i128 invalid JSON: %w", err)
	}
	return i.UnmarshalText(bts)
}
