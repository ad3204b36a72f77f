package prim

import (
	"reflect"

	"github.com/govalues/decimal"
	"golang.org/x/exp/constraints"
)

// Char is a UTF-16 code unit. It converts like uint16 but is tagged
// separately so diagnostics can name it.
type Char uint16

// Integer is the set of types the integer parse/format engine accepts.
type Integer interface {
	constraints.Integer | I128 | U128
}

// Number is the set of types the conversion family accepts.
type Number interface {
	constraints.Integer | constraints.Float | I128 | U128 | decimal.Decimal
}

// Kind tags a member of the primitive set.
type Kind uint8

const (
	Invalid Kind = iota
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Uintptr
	Int128
	Uint128
	Float32
	Float64
	Decimal
	CharKind
)

var kindInfo = [...]struct {
	name   string
	bits   uint
	signed bool
	float  bool
}{
	Invalid:  {"Invalid", 0, false, false},
	Int8:     {"SByte", 8, true, false},
	Int16:    {"Int16", 16, true, false},
	Int32:    {"Int32", 32, true, false},
	Int64:    {"Int64", 64, true, false},
	Int:      {"IntPtr", intSize, true, false},
	Uint8:    {"Byte", 8, false, false},
	Uint16:   {"UInt16", 16, false, false},
	Uint32:   {"UInt32", 32, false, false},
	Uint64:   {"UInt64", 64, false, false},
	Uint:     {"UIntPtr", intSize, false, false},
	Uintptr:  {"UIntPtr", intSize, false, false},
	Int128:   {"Int128", 128, true, false},
	Uint128:  {"UInt128", 128, false, false},
	Float32:  {"Single", 32, true, true},
	Float64:  {"Double", 64, true, true},
	Decimal:  {"Decimal", 0, true, false},
	CharKind: {"Char", 16, false, false},
}

func (k Kind) valid() bool { return k > Invalid && int(k) < len(kindInfo) }

// Bits is the storage width of an integer or float kind. Decimal reports 0.
func (k Kind) Bits() uint {
	if !k.valid() {
		return 0
	}
	return kindInfo[k].bits
}

func (k Kind) Signed() bool { return k.valid() && kindInfo[k].signed }
func (k Kind) Float() bool  { return k.valid() && kindInfo[k].float }

// Integer reports whether k is one of the integer kinds, Char included.
func (k Kind) Integer() bool {
	return k.valid() && k != Decimal && !kindInfo[k].float
}

func (k Kind) String() string {
	if !k.valid() {
		return kindInfo[Invalid].name
	}
	return kindInfo[k].name
}

// maxU128 is the largest value of an integer kind, as an unsigned magnitude.
func (k Kind) maxU128() U128 {
	bits := k.Bits()
	if k.Signed() {
		bits--
	}
	return MaxU128.Rsh(128 - bits)
}

// minMagnitude is the magnitude of the smallest value of an integer kind.
func (k Kind) minMagnitude() U128 {
	if !k.Signed() {
		return U128{}
	}
	return U128From64(1).Lsh(k.Bits() - 1)
}

// KindOf returns the tag for T. Named types resolve to the kind of their
// underlying type, except Char which has its own tag.
func KindOf[T Number]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case int:
		return Int
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case Char:
		return CharKind
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case uint:
		return Uint
	case uintptr:
		return Uintptr
	case I128:
		return Int128
	case U128:
		return Uint128
	case float32:
		return Float32
	case float64:
		return Float64
	case decimal.Decimal:
		return Decimal
	}
	return kindOfReflect(reflect.TypeOf(zero))
}

func kindOfReflect(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Int:
		return Int
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Uint:
		return Uint
	case reflect.Uintptr:
		return Uintptr
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	}
	return Invalid
}
