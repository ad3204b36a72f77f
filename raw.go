package prim

import (
	"reflect"
)

// raw is an integer's two's complement bit pattern, sign- or zero-extended
// to 128 bits, together with its kind.
type raw struct {
	bits U128
	kind Kind
}

func rawSigned(v int64, k Kind) raw    { return raw{I128From64(v).AsU128(), k} }
func rawUnsigned(v uint64, k Kind) raw { return raw{U128From64(v), k} }

func (r raw) negative() bool { return r.kind.Signed() && r.bits.hi&signBit != 0 }

// width is the bit pattern truncated to the kind's own width.
func (r raw) width() U128 { return r.bits.Mask(r.kind.Bits()) }

func (r raw) magnitude() (mag U128, neg bool) {
	if r.negative() {
		return r.bits.AsI128().Abs(), true
	}
	return r.bits, false
}

func loadRaw[T Integer](v T) raw {
	r, _ := rawOf(v)
	return r
}

// rawOf loads any integer member of the primitive set. ok is false for
// floats, decimals and anything else.
func rawOf(v any) (r raw, ok bool) {
	switch v := v.(type) {
	case int8:
		return rawSigned(int64(v), Int8), true
	case int16:
		return rawSigned(int64(v), Int16), true
	case int32:
		return rawSigned(int64(v), Int32), true
	case int64:
		return rawSigned(v, Int64), true
	case int:
		return rawSigned(int64(v), Int), true
	case uint8:
		return rawUnsigned(uint64(v), Uint8), true
	case uint16:
		return rawUnsigned(uint64(v), Uint16), true
	case Char:
		return rawUnsigned(uint64(v), CharKind), true
	case uint32:
		return rawUnsigned(uint64(v), Uint32), true
	case uint64:
		return rawUnsigned(v, Uint64), true
	case uint:
		return rawUnsigned(uint64(v), Uint), true
	case uintptr:
		return rawUnsigned(uint64(v), Uintptr), true
	case I128:
		return raw{v.AsU128(), Int128}, true
	case U128:
		return raw{v, Uint128}, true
	}

	rv := reflect.ValueOf(v)
	k := kindOfReflect(rv.Type())
	switch {
	case !k.Integer():
		return raw{}, false
	case k.Signed():
		return rawSigned(rv.Int(), k), true
	default:
		return rawUnsigned(rv.Uint(), k), true
	}
}

// storeRaw keeps the low bits of u that fit in T.
func storeRaw[T Integer](u U128) (out T) {
	storeRawAny(&out, u)
	return out
}

func storeRawAny(p any, u U128) {
	switch p := p.(type) {
	case *int8:
		*p = int8(u.lo)
	case *int16:
		*p = int16(u.lo)
	case *int32:
		*p = int32(u.lo)
	case *int64:
		*p = int64(u.lo)
	case *int:
		*p = int(u.lo)
	case *uint8:
		*p = uint8(u.lo)
	case *uint16:
		*p = uint16(u.lo)
	case *Char:
		*p = Char(u.lo)
	case *uint32:
		*p = uint32(u.lo)
	case *uint64:
		*p = u.lo
	case *uint:
		*p = uint(u.lo)
	case *uintptr:
		*p = uintptr(u.lo)
	case *I128:
		*p = u.AsI128()
	case *U128:
		*p = u
	default:
		rv := reflect.ValueOf(p).Elem()
		if rv.CanInt() {
			rv.SetInt(int64(u.lo))
		} else {
			rv.SetUint(u.lo)
		}
	}
}

func integerKind[T Integer]() Kind {
	var zero T
	return loadRaw(zero).kind
}
