package prim

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var i64 = I128From64

func bigI64(i int64) *big.Int { return new(big.Int).SetInt64(i) }

func TestI128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a I128
		b *big.Int
	}{
		{i64(-1), bigI64(-1)},
		{I128{0, 2}, bigI64(2)},
		{I128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE}, bigI64(-2)},
		{I128{0x1, 0x0}, bigs("18446744073709551616")},
		{MaxI128, maxBigI128},
		{MinI128, bigs("-170141183460469231731687303715884105728")},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d=%s", idx, tc.a.hi, tc.a.lo, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
		})
	}
}

func TestI128AddSub(t *testing.T) {
	for _, tc := range []struct {
		a, b, sum, diff I128
	}{
		{i64(1), i64(2), i64(3), i64(-1)},
		{i64(-1), i64(-1), i64(-2), i64(0)},
		{MaxI128, i64(1), MinI128, i128s("170141183460469231731687303715884105726")},
		{MinI128, i64(1), i128s("-170141183460469231731687303715884105727"), MaxI128},
		{i64(minInt64), i64(-1), i128s("-9223372036854775809"), i64(minInt64 + 1)},
	} {
		t.Run(fmt.Sprintf("%s,%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.sum, tc.a.Add(tc.b))
			tt.MustEqual(tc.diff, tc.a.Sub(tc.b))
		})
	}
}

func TestI128NegAbs(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(i64(-5), i64(5).Neg())
	tt.MustEqual(u64(5), i64(-5).Abs())
	tt.MustEqual(MinI128, MinI128.Neg())
	tt.MustEqual(minI128AsAbsU128, MinI128.Abs())
	tt.MustEqual(maxI128AsU128, MaxI128.Abs())
}

func TestI128Cmp(t *testing.T) {
	for _, tc := range []struct {
		a, b I128
		out  int
	}{
		{i64(1), i64(1), 0},
		{i64(-1), i64(1), -1},
		{i64(1), i64(-1), 1},
		{i64(-2), i64(-1), -1},
		{MinI128, MaxI128, -1},
		{MaxI128, i64(maxInt64), 1},
	} {
		t.Run(fmt.Sprintf("%s<=>%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.Cmp(tc.b))
		})
	}
}

func TestI128Sign(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, i64(0).Sign())
	tt.MustEqual(1, MaxI128.Sign())
	tt.MustEqual(-1, MinI128.Sign())
}

func TestI128FromFloat64(t *testing.T) {
	for _, tc := range []struct {
		f       float64
		out     I128
		inRange bool
	}{
		{math.NaN(), i64(0), false},
		{-0.9, i64(0), true},
		{-1234.9, i64(-1234), true},
		{1234.9, i64(1234), true},
		{-wrapUint64Float, i128s("-18446744073709551616"), true},
		{maxI128Float, MaxI128, false},
		{minI128Float, MinI128, true},
		{math.Inf(-1), MinI128, false},
	} {
		t.Run(fmt.Sprintf("%g", tc.f), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, inRange := I128FromFloat64(tc.f)
			tt.MustEqual(tc.inRange, inRange)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestI128FromBigInt(t *testing.T) {
	tt := assert.WrapTB(t)

	i, acc := I128FromBigInt(new(big.Int).Add(maxBigI128, big.NewInt(1)))
	tt.MustAssert(!acc)
	tt.MustEqual(MaxI128, i)

	i, acc = I128FromBigInt(new(big.Int).Sub(minBigI128, big.NewInt(1)))
	tt.MustAssert(!acc)
	tt.MustEqual(MinI128, i)

	i, acc = I128FromBigInt(minBigI128)
	tt.MustAssert(acc)
	tt.MustEqual(MinI128, i)
}

func TestI128String(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("-1", i64(-1).String())
	tt.MustEqual("-170141183460469231731687303715884105728", MinI128.String())
	tt.MustEqual("170141183460469231731687303715884105727", MaxI128.String())
	tt.MustEqual("-ff", fmt.Sprintf("%x", i64(-255)))
}

func TestI128JSON(t *testing.T) {
	tt := assert.WrapTB(t)

	var out struct{ V I128 }
	tt.MustOK(json.Unmarshal([]byte(`{"V":"-170141183460469231731687303715884105728"}`), &out))
	tt.MustEqual(MinI128, out.V)

	tt.MustOK(json.Unmarshal([]byte(`{"V":-12}`), &out))
	tt.MustEqual(i64(-12), out.V)

	bts, err := json.Marshal(out)
	tt.MustOK(err)
	tt.MustEqual(`{"V":"-12"}`, string(bts))

	tt.MustAssert(json.Unmarshal([]byte(`{"V":"170141183460469231731687303715884105728"}`), &out) != nil)
	tt.MustAssert(json.Unmarshal([]byte(`{"V":""}`), &out) != nil)
}

func TestI128Mul(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(i64(-42), i64(6).Mul(i64(-7)))
	tt.MustEqual(i64(42), i64(-6).Mul(i64(-7)))
	tt.MustEqual(MinI128, MinI128.Mul(i64(-1)))
	tt.MustEqual(i128s("-18446744073709551616"), i64(minInt64).Mul(i64(2)))
}

func TestI128AsFloat64(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(float64(-1234), i64(-1234).AsFloat64())
	tt.MustEqual(-math.Ldexp(1, 127), MinI128.AsFloat64())
	tt.MustEqual(math.Ldexp(1, 127), MaxI128.AsFloat64())
}
