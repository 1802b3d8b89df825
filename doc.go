/*
Package fixed implements immutable binary fixed-point numbers.
It is designed as a deterministic replacement for float32 and float64 in
code that must produce identical results on every platform, such as game
simulations, signal processing, and embedded control loops.

# Representation

[Fixed] is a struct with a single field, the raw value, an integer of the
base type B.
The numeric value of a fixed-point number is raw / 2^F, where F is the
number of fraction bits.
For example, a [Fixed16_16] with a raw value of 81920 represents 1.25.

A fixed-point type is selected by four type parameters:

  - B: the base type, one of int8, int16, int32, int64, uint8, uint16,
    uint32, uint64 or a type derived from them.
  - W: the intermediate type selector, [Int16], [Int32], [Int64], [Int128],
    [Uint16], [Uint32], [Uint64] or [Uint128].
    It must be wider than B and have the same signedness.
  - F: the fraction width selector, [F1] to [F64].
  - R: [Round] or [Trunc].

Invalid combinations, such as Fixed[int32, Int32[int32], F16[int32], Round]
or Fixed[int8, Int16[int8], F8[int8], Round], do not compile.

The package predefines several common layouts:

	| Type       | Base  | Minimum                | Maximum                        | Epsilon               |
	| ---------- | ----- | ---------------------- | ------------------------------ | --------------------- |
	| Fixed8_8   | int16 | -128                   | 127.99609375                   | 0.00390625            |
	| Fixed16_16 | int32 | -32768                 | 32767.9999847412109375         | 0.0000152587890625    |
	| Fixed24_8  | int32 | -8388608               | 8388607.99609375               | 0.00390625            |
	| Fixed8_24  | int32 | -128                   | 127.999999940395355224609375   | 0.000000059604644775… |
	| Fixed32_32 | int64 | -2147483648            | 2147483647.99999999976716935…  | 0.00000000023283064…  |

Special values such as NaN, Infinity, or negative zeros are not supported.
Two numbers of the same type are equal if and only if their raw values are
equal, so fixed-point numbers can be compared with == and used as map keys.

# Conversions

The package provides functions for converting fixed-point numbers:

  - from/to string:
    [Parse], [ParseNotation], [ParsePrefix], [Fixed.String], [Fixed.Format],
    [Fixed.FormatSpec], [Fixed.Scan].
  - from/to float:
    [FromFloat], [Fixed.Float64], [Fixed.Float32].
  - from/to integer:
    [FromInt], [FromRaw], [FromFixedPoint], [Fixed.Int64], [Fixed.Uint64],
    [Fixed.Raw].
  - between fixed-point types:
    [Convert].

Text conversions are exact: the decimal digits of a number are computed
from its raw value with [big.Int] arithmetic, and formatting a number with
enough precision and parsing it back always gives the same raw value.

# Operations

Addition, subtraction and integer multiplication are performed directly on
raw values of the base type.
Multiplication and division of two fixed-point numbers are performed in the
intermediate type, which holds the full product or the scaled dividend.
128-bit intermediate types are computed with [math/bits].

# Rounding

Types with [Round] round half away from zero in the following cases:

  - [Fixed.Mul] and [Fixed.Quo], on the last bit of the result.
  - [FromFloat], on the first bit below the fraction.
  - [FromFixedPoint] and [Convert], when fraction bits are dropped.
  - [Parse], on decimal digits beyond the precision of the type.

Types with [Trunc] round towards zero in all of these cases.
[Fixed.QuoInt] and [Fixed.Int64] always round towards zero, and
[Fixed.Rsh] rounds towards negative infinity.

Formatting with a given precision rounds half to even, like [strconv] does
for floats.

# Errors

Arithmetic follows the rules of native integers:

  - Overflow.
    Results that do not fit the base type wrap around silently.

  - Division by Zero.
    [Fixed.Quo], [Fixed.QuoInt], [Fixed.Rem] and [Fixed.RemInt] panic,
    like integer division does.

Parsing and formatting return errors of the class [Error], which wrap one of
[ErrInvalidArgument], [ErrOutOfRange] or [ErrBufferTooSmall] and can be
checked with [errors.Is].

[big.Int]: https://pkg.go.dev/math/big#Int
[math/bits]: https://pkg.go.dev/math/bits
[strconv]: https://pkg.go.dev/strconv
*/
package fixed
