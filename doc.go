/*
Package prim converts the primitive numeric types to and from text, and
between each other.

The closed set of primitives is every Go integer type, float32, float64,
Char (a UTF-16 code unit), the 128-bit value types I128 and U128, and
decimal.Decimal from github.com/govalues/decimal. Kind tags each member.

Integers can be parsed in radix 2, 8, 10 or 16, or with culture-aware
NumberStyles:

	v, err := ParseRadix[int16]("7fff", 16)
	v, err := ParseRadix[uint32]("0x1F", 0)
	v, err := Parse[int64]("(1,234)", StyleNumber|AllowParentheses, culture.MustParse("en-US"))

and formatted the same way:

	s, err := FormatRadix(int8(-1), 16, 0, ' ', 0)    // "ff"
	s := FormatDecimal(MaxI128)
	s, err := Format(1234567, "N0", culture.MustParse("de-DE")) // "1.234.567"

Conversions between any two members come in four flavours:

	Create[D, S](v S) (D, error)    // fails when v is out of range for D
	CreateSaturating[D, S](v S) D   // clamps
	CreateTruncating[D, S](v S) D   // keeps the low bits, like a cast
	TryCreate[D, S](v S) (D, bool)

Nothing in this package reads ambient state. Every culture-sensitive call
takes a culture.Provider; nil means culture.Invariant.

U128 and I128 support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
*/
package prim
