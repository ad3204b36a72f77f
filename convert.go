package prim

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"

	"github.com/govalues/decimal"
)

// Create converts v to a D, failing with ErrOverflow if v is outside D's
// range. Fractions are truncated toward zero. Conversions into a float
// never fail; values beyond the float's range become infinities.
func Create[D, S Number](v S) (D, error) {
	out, ok := convert[D](v, checked)
	if !ok {
		return out, numError("Create", fmt.Sprint(v), KindOf[D](), ErrOverflow)
	}
	return out, nil
}

// CreateSaturating converts v to a D, clamping values outside D's range to
// its minimum or maximum. NaN becomes 0.
func CreateSaturating[D, S Number](v S) D {
	out, _ := convert[D](v, saturating)
	return out
}

// CreateTruncating converts v to a D the way a native cast would. Integer
// sources keep the low bits of their two's complement pattern. Float and
// decimal sources saturate, with NaN becoming 0.
func CreateTruncating[D, S Number](v S) D {
	out, _ := convert[D](v, truncating)
	return out
}

// TryCreate is Create returning the zero value and false on overflow.
func TryCreate[D, S Number](v S) (D, bool) {
	out, ok := convert[D](v, checked)
	if !ok {
		var zero D
		return zero, false
	}
	return out, true
}

type policy uint8

const (
	checked policy = iota
	saturating
	truncating
)

type operandClass uint8

const (
	integerOperand operandClass = iota
	floatOperand
	decimalOperand
)

// operand is a source value loaded into one of three shapes. Integers are
// held as sign and magnitude plus the original bit pattern, floats widen to
// float64 exactly.
type operand struct {
	class operandClass
	kind  Kind
	raw   raw
	mag   U128
	neg   bool
	f     float64
	d     decimal.Decimal
}

var (
	maxDecimal = decimal.MustParse("9999999999999999999")
	minDecimal = decimal.MustParse("-9999999999999999999")

	// maxDecimalCoef is the largest magnitude a decimal can hold.
	maxDecimalCoef = U128From64(9999999999999999999)
)

func loadOperand(v any) operand {
	if r, ok := rawOf(v); ok {
		mag, neg := r.magnitude()
		return operand{class: integerOperand, kind: r.kind, raw: r, mag: mag, neg: neg}
	}
	switch v := v.(type) {
	case float32:
		return operand{class: floatOperand, kind: Float32, f: float64(v)}
	case float64:
		return operand{class: floatOperand, kind: Float64, f: v}
	case decimal.Decimal:
		return operand{class: decimalOperand, kind: Decimal, d: v}
	}

	rv := reflect.ValueOf(v)
	k := kindOfReflect(rv.Type())
	if !k.Float() {
		panic(fmt.Sprintf("prim: unsupported conversion source %T", v))
	}
	return operand{class: floatOperand, kind: k, f: rv.Float()}
}

func convert[D, S Number](v S, pol policy) (out D, ok bool) {
	src := loadOperand(v)
	dk := KindOf[D]()

	switch {
	case dk.Float():
		storeFloat(&out, toFloat(src, dk))
		return out, true

	case dk == Decimal:
		d, ok := toDecimal(src)
		storeDecimal(&out, d)
		return out, ok

	default:
		u, ok := toInteger(src, dk, pol)
		storeRawAny(&out, u)
		return out, ok
	}
}

// toInteger returns the bit pattern for dk. When src does not fit, ok is
// false and the pattern is whatever pol asks for.
func toInteger(src operand, dk Kind, pol policy) (u U128, ok bool) {
	switch src.class {
	case floatOperand:
		return floatToInteger(src.f, dk)

	case decimalOperand:
		t := src.d.Trunc(0)
		mag, neg := U128From64(t.Coef()), t.IsNeg()
		if bits, ok := fitInteger(mag, neg, dk); ok {
			return bits, true
		}
		return clampInteger(neg, dk), false
	}

	if bits, ok := fitInteger(src.mag, src.neg, dk); ok {
		return bits, true
	}
	if pol == truncating {
		return src.raw.bits, false
	}
	return clampInteger(src.neg, dk), false
}

// fitInteger returns the two's complement pattern of a signed magnitude if
// it is within dk's range.
func fitInteger(mag U128, neg bool, dk Kind) (U128, bool) {
	if mag.IsZero() {
		return U128{}, true
	}
	if neg {
		if !dk.Signed() || mag.GreaterThan(dk.minMagnitude()) {
			return U128{}, false
		}
		return zeroU128.Sub(mag), true
	}
	if mag.GreaterThan(dk.maxU128()) {
		return U128{}, false
	}
	return mag, true
}

func clampInteger(neg bool, dk Kind) U128 {
	if neg {
		if !dk.Signed() {
			return U128{}
		}
		return zeroU128.Sub(dk.minMagnitude())
	}
	return dk.maxU128()
}

// floatToInteger truncates f toward zero. Out of range values and
// infinities clamp, NaN is 0; none of them are ok.
func floatToInteger(f float64, dk Kind) (U128, bool) {
	if f != f {
		return U128{}, false
	}

	// The bounds are powers of two, so they are exact in a float64.
	bits := dk.Bits()
	lo, hiExcl := 0.0, math.Ldexp(1, int(bits))
	if dk.Signed() {
		lo, hiExcl = -math.Ldexp(1, int(bits)-1), math.Ldexp(1, int(bits)-1)
	}

	t := math.Trunc(f)
	switch {
	case t < lo:
		return clampInteger(true, dk), false
	case t >= hiExcl:
		return clampInteger(false, dk), false
	case t < 0:
		mag, _ := U128FromFloat64(-t)
		return zeroU128.Sub(mag), true
	default:
		mag, _ := U128FromFloat64(t)
		return mag, true
	}
}

func toFloat(src operand, dk Kind) float64 {
	switch src.class {
	case floatOperand:
		if dk == Float32 {
			return float64(narrowFloat32(src.f))
		}
		return src.f

	case decimalOperand:
		f, _ := strconv.ParseFloat(src.d.String(), int(dk.Bits()))
		return f
	}

	var f float64
	switch {
	case dk != Float32:
		f = src.mag.AsFloat64()
	case src.mag.IsUint64():
		f = float64(float32(src.mag.lo))
	default:
		f32, _ := src.mag.AsBigFloat().Float32()
		f = float64(f32)
	}
	if src.neg {
		f = -f
	}
	return f
}

// narrowFloat32 rounds f to the nearest float32, overflowing to an infinity
// rather than relying on an out-of-range conversion.
func narrowFloat32(f float64) float32 {
	if f != f || math.IsInf(f, 0) || math.Abs(f) <= math.MaxFloat32 {
		return float32(f)
	}
	f32, _ := new(big.Float).SetFloat64(f).Float32()
	return f32
}

// toDecimal converts to a decimal, clamping when out of range. Truncating
// behaves as saturating; there are no low bits to keep.
func toDecimal(src operand) (decimal.Decimal, bool) {
	switch src.class {
	case decimalOperand:
		return src.d, true

	case floatOperand:
		f := src.f
		switch {
		case f != f:
			return decimal.Decimal{}, false
		case math.IsInf(f, 1):
			return maxDecimal, false
		case math.IsInf(f, -1):
			return minDecimal, false
		case math.Abs(f) >= 1e19:
			return clampDecimal(f < 0), false
		case math.Abs(f) < 5e-20: // rounds to zero at the largest scale
			return decimal.Decimal{}, true
		}
		bits := 64
		if src.kind == Float32 {
			bits = 32
		}
		d, err := decimal.Parse(strconv.FormatFloat(f, 'e', -1, bits))
		if err != nil {
			return clampDecimal(f < 0), false
		}
		return d, true
	}

	if src.mag.GreaterThan(maxDecimalCoef) {
		return clampDecimal(src.neg), false
	}
	buf := make([]byte, 0, 24)
	if src.neg {
		buf = append(buf, '-')
	}
	d, err := decimal.Parse(string(appendDecimalU128(buf, src.mag, 1)))
	if err != nil {
		return clampDecimal(src.neg), false
	}
	return d, true
}

func clampDecimal(neg bool) decimal.Decimal {
	if neg {
		return minDecimal
	}
	return maxDecimal
}

func storeFloat(p any, f float64) {
	switch p := p.(type) {
	case *float32:
		*p = float32(f)
	case *float64:
		*p = f
	default:
		reflect.ValueOf(p).Elem().SetFloat(f)
	}
}

func storeDecimal(p any, d decimal.Decimal) {
	*p.(*decimal.Decimal) = d
}
