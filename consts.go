package prim

const (
	maxUint64 = 1<<64 - 1

	maxUint64Float  = float64(maxUint64)     // (1<<64) - 1
	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	maxU128Float = float64(340282366920938463463374607431768211455)  // (1<<128) - 1
	minI128Float = float64(-170141183460469231731687303715884105728) // -(1<<127)

	intSize = 32 << (^uint(0) >> 63)

	signBit = 0x8000000000000000

	// pow10To19 is the largest power of ten below 1<<64; 128-bit values are
	// formatted in 19-digit chunks.
	pow10To19 = 10_000_000_000_000_000_000

	// radixBufferSize fits 128 binary digits plus a prefix or sign.
	radixBufferSize = 131

	// maxFormatPrecision bounds the digit count in a format like "D8".
	maxFormatPrecision = 999
)

var (
	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroI128 I128
	zeroU128 U128

	minI128AsAbsU128 = U128{hi: 0x8000000000000000, lo: 0}
	maxI128AsU128    = U128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
)
