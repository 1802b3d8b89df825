package fixed

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

//go:generate go run mkfrac.go

// Base is the constraint satisfied by base types,
// the integers that store raw values.
type Base interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the constraint satisfied by signed base types.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Frac is the constraint satisfied by fraction width selectors F1 to F64.
// Selector Fn[B] admits only base types that can hold n fraction bits
// and, for signed base types, at least one integral bit.
type Frac[B Base] interface {
	fraction(B) uint
}

// Rounding is the constraint satisfied by [Round] and [Trunc].
type Rounding interface {
	rounding() bool
}

// Round selects rounding half away from zero for multiplication, division,
// construction from floats, and conversions that drop fraction bits.
type Round struct{}

// Trunc selects truncation toward zero for multiplication, division,
// construction from floats, and conversions that drop fraction bits.
type Trunc struct{}

func (Round) rounding() bool { return true }
func (Trunc) rounding() bool { return false }

// Fixed type is a representation of a binary fixed-point number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A fixed-point type is parameterized by:
//
//   - B: the base integer type storing the raw value.
//   - W: the intermediate type, an integer strictly wider than B with the
//     same signedness, used by multiplication and division.
//   - F: the number of low bits of the raw value that hold the fraction.
//   - R: [Round] or [Trunc].
//
// The numeric value of a fixed-point number is raw / 2^F.
// For example, Fixed[int32, Int64[int32], F16[int32], Round] with a raw value
// of 81920 represents 1.25.
//
// Overflow wraps around silently, exactly like the native integer operations
// of B do. There are no special values such as NaN or Infinity.
// Two fixed-point numbers of the same type are equal, when compared with ==,
// if and only if their raw values are equal.
type Fixed[B Base, W Wide[B], F Frac[B], R Rounding] struct {
	raw B // the numeric value multiplied by 2^F
}

// Number is the constraint satisfied by every instantiation of [Fixed].
// It is used by the generic constructors, such as [FromInt] and [Parse],
// and allows writing code that works with any fixed-point type.
type Number[T any] interface {
	comparable
	fmt.Stringer
	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Quo(y T) T
	Rem(y T) T
	AddInt(n int64) T
	SubInt(n int64) T
	MulInt(n int64) T
	QuoInt(n int64) T
	Cmp(y T) int
	Sign() int
	IsZero() bool
	Int64() int64
	Float64() float64
	FractionBits() int
	IntegralBits() int
	Rounding() bool
	Signed() bool
	Hash() uint64
	FormatSpec(spec Spec) string
	AppendSpec(dst []byte, spec Spec) []byte

	withRaw(raw uint64) T
	withInt(v uint64) T
	withFloat(f float64) T
	convertFrom(s source) T
	source() source
	layout() layout
}

// layout describes the representation of a fixed-point type.
type layout struct {
	bits   uint // width of the base type
	frac   uint // number of fraction bits
	signed bool
	round  bool
}

// source is a raw value together with its layout.
// Raw values of signed types are sign-extended.
type source struct {
	layout
	raw uint64
}

// baseBits returns the width of B in bits.
func baseBits[B Base]() uint {
	var b B
	return uint(unsafe.Sizeof(b)) * 8
}

// baseSigned reports whether B is a signed integer type.
func baseSigned[B Base]() bool {
	var b B
	return ^b < 0
}

// baseMin returns the smallest value of B.
func baseMin[B Base]() B {
	if !baseSigned[B]() {
		return 0
	}
	return B(1) << (baseBits[B]() - 1)
}

// baseMax returns the largest value of B.
func baseMax[B Base]() B {
	return ^baseMin[B]()
}

func (x Fixed[B, W, F, R]) frac() uint {
	var f F
	var b B
	return f.fraction(b)
}

func (x Fixed[B, W, F, R]) round() bool {
	var r R
	return r.rounding()
}

func (x Fixed[B, W, F, R]) layout() layout {
	return layout{
		bits:   baseBits[B](),
		frac:   x.frac(),
		signed: baseSigned[B](),
		round:  x.round(),
	}
}

func (x Fixed[B, W, F, R]) source() source {
	return source{layout: x.layout(), raw: uint64(x.raw)}
}

// fixedPoint marks fixed-point types for [IsFixed].
func (x Fixed[B, W, F, R]) fixedPoint() {}

// withRaw returns a number with raw value B(raw).
func (x Fixed[B, W, F, R]) withRaw(raw uint64) Fixed[B, W, F, R] {
	return Fixed[B, W, F, R]{raw: B(raw)}
}

// withInt returns a number with raw value B(v) * 2^F, wrapping on overflow.
func (x Fixed[B, W, F, R]) withInt(v uint64) Fixed[B, W, F, R] {
	return Fixed[B, W, F, R]{raw: B(v) << x.frac()}
}

// withFloat returns a number with raw value B(f), truncated toward zero.
// If f does not fit the base type, the result is unspecified.
func (x Fixed[B, W, F, R]) withFloat(f float64) Fixed[B, W, F, R] {
	if f < 0 {
		return x.withRaw(uint64(int64(f)))
	}
	return x.withRaw(uint64(f))
}

// convertFrom rescales and resizes a raw value of another layout.
// If the base type grows, the value is widened first and rescaled in the
// new width, otherwise it is rescaled in the old width and narrowed after.
func (x Fixed[B, W, F, R]) convertFrom(s source) Fixed[B, W, F, R] {
	to, round := x.frac(), x.round()
	if baseBits[B]() > s.bits {
		v := B(s.raw)
		if baseSigned[B]() {
			return x.withRaw(uint64(rescaleInt(int64(v), s.frac, to, round)))
		}
		return x.withRaw(rescaleUint(uint64(v), s.frac, to, round))
	}
	if s.signed {
		return x.withRaw(uint64(rescaleInt(int64(s.raw), s.frac, to, round)))
	}
	return x.withRaw(rescaleUint(s.raw, s.frac, to, round))
}

// rescaleInt changes the number of fraction bits of v from "from" to "to".
// When bits are dropped with rounding, one extra bit is kept and
// the result is rounded half away from zero.
func rescaleInt(v int64, from, to uint, round bool) int64 {
	switch {
	case to > from:
		return v << (to - from)
	case to < from:
		d := from - to
		if round {
			w := quoPow2(v, d-1)
			return w/2 + w%2
		}
		return quoPow2(v, d)
	}
	return v
}

// rescaleUint is like rescaleInt but for unsigned values.
func rescaleUint(v uint64, from, to uint, round bool) uint64 {
	switch {
	case to > from:
		return v << (to - from)
	case to < from:
		d := from - to
		if round {
			w := v >> (d - 1)
			return w>>1 + w&1
		}
		return v >> d
	}
	return v
}

// quoPow2 calculates v / 2^n and rounds the result towards zero.
func quoPow2(v int64, n uint) int64 {
	if v < 0 {
		return -int64(-uint64(v) >> n)
	}
	return v >> n
}

// FromInt converts an integer to a fixed-point number of type T.
// Bits that do not fit the base type are discarded, like in a native
// integer conversion.
func FromInt[T Number[T], V constraints.Integer](v V) T {
	var z T
	return z.withInt(uint64(v))
}

// FromFloat converts a float to a fixed-point number of type T.
// The float is multiplied by 2^F in its own precision, then rounded half away
// from zero if T rounds, or truncated toward zero otherwise.
// If the result does not fit the base type, it is unspecified.
func FromFloat[T Number[T], V constraints.Float](v V) T {
	var z T
	f := v * V(math.Ldexp(1, z.FractionBits()))
	if z.Rounding() {
		if v >= 0 {
			f += 0.5
		} else {
			f -= 0.5
		}
	}
	return z.withFloat(float64(f))
}

// FromRaw returns a fixed-point number of type T with the given raw value.
// No scaling takes place: the numeric value of the result is raw / 2^F.
func FromRaw[T Number[T], V constraints.Integer](raw V) T {
	var z T
	return z.withRaw(uint64(raw))
}

// FromFixedPoint converts an integer holding a binary fixed-point value
// with frac fraction bits to a fixed-point number of type T.
// If T has fewer fraction bits, the dropped bits are rounded half away from
// zero if T rounds, or truncated toward zero otherwise.
//
// FromFixedPoint panics if frac exceeds the width of V.
func FromFixedPoint[T Number[T], V constraints.Integer](v V, frac uint) T {
	var z T
	s := sourceOf(v, frac)
	if frac > s.bits {
		panic(fmt.Sprintf("FromFixedPoint(%v, %v) failed: fraction bits out of range", v, frac))
	}
	return z.convertFrom(s)
}

func sourceOf[V constraints.Integer](v V, frac uint) source {
	var z V
	return source{
		layout: layout{
			bits:   uint(unsafe.Sizeof(z)) * 8,
			frac:   frac,
			signed: ^z < 0,
		},
		raw: uint64(v),
	}
}

// Convert converts a fixed-point number to another fixed-point type T,
// which may differ in base type, fraction bits, or both.
// Fraction bits are rescaled like in [FromFixedPoint].
// Bits that do not fit the new base type are discarded.
func Convert[T Number[T], S Number[S]](x S) T {
	var z T
	return z.convertFrom(x.source())
}

// Raw returns the raw value of x.
func (x Fixed[B, W, F, R]) Raw() B {
	return x.raw
}

// FractionBits returns the number of fraction bits.
func (x Fixed[B, W, F, R]) FractionBits() int {
	return int(x.frac())
}

// IntegralBits returns the number of bits of the base type that are
// not fraction bits, including the sign bit.
func (x Fixed[B, W, F, R]) IntegralBits() int {
	return int(baseBits[B]() - x.frac())
}

// BaseBits returns the width of the base type.
func (x Fixed[B, W, F, R]) BaseBits() int {
	return int(baseBits[B]())
}

// IntermediateBits returns the width of the intermediate type.
func (x Fixed[B, W, F, R]) IntermediateBits() int {
	var w W
	return w.width()
}

// Rounding reports whether the type rounds half away from zero.
func (x Fixed[B, W, F, R]) Rounding() bool {
	return x.round()
}

// Signed reports whether the base type is signed.
func (x Fixed[B, W, F, R]) Signed() bool {
	return baseSigned[B]()
}

// Add returns the (possibly wrapped) sum of x and y.
func (x Fixed[B, W, F, R]) Add(y Fixed[B, W, F, R]) Fixed[B, W, F, R] {
	return Fixed[B, W, F, R]{raw: x.raw + y.raw}
}

// AddInt returns the (possibly wrapped) sum of x and n.
// The integer is converted like in [FromInt].
func (x Fixed[B, W, F, R]) AddInt(n int64) Fixed[B, W, F, R] {
	return x.Add(x.withInt(uint64(n)))
}

// Sub returns the (possibly wrapped) difference between x and y.
func (x Fixed[B, W, F, R]) Sub(y Fixed[B, W, F, R]) Fixed[B, W, F, R] {
	return Fixed[B, W, F, R]{raw: x.raw - y.raw}
}

// SubInt returns the (possibly wrapped) difference between x and n.
// The integer is converted like in [FromInt].
func (x Fixed[B, W, F, R]) SubInt(n int64) Fixed[B, W, F, R] {
	return x.Sub(x.withInt(uint64(n)))
}

// Mul returns the product of x and y.
// The product is computed in the intermediate type and rescaled,
// rounding half away from zero if the type rounds.
// The result wraps around if it does not fit the base type.
func (x Fixed[B, W, F, R]) Mul(y Fixed[B, W, F, R]) Fixed[B, W, F, R] {
	var w W
	return Fixed[B, W, F, R]{raw: w.mul(x.raw, y.raw, x.frac(), x.round())}
}

// MulInt returns the (possibly wrapped) product of x and n.
// The raw value is multiplied directly, no rescaling takes place.
func (x Fixed[B, W, F, R]) MulInt(n int64) Fixed[B, W, F, R] {
	return Fixed[B, W, F, R]{raw: x.raw * B(n)}
}

// Quo returns the quotient of x and y.
// The dividend is scaled in the intermediate type, and the quotient is
// rounded half away from zero if the type rounds.
// The result wraps around if it does not fit the base type.
//
// Quo panics if:
//   - y is 0.
func (x Fixed[B, W, F, R]) Quo(y Fixed[B, W, F, R]) Fixed[B, W, F, R] {
	if y.raw == 0 {
		panic(fmt.Sprintf("%v.Quo(%v) failed: division by zero", x, y))
	}
	var w W
	return Fixed[B, W, F, R]{raw: w.quo(x.raw, y.raw, x.frac(), x.round())}
}

// QuoInt returns the quotient of x and n, rounded towards zero.
// The raw value is divided directly, no rescaling takes place.
// For unsigned base types n is converted to uint64.
//
// QuoInt panics if:
//   - n is 0.
func (x Fixed[B, W, F, R]) QuoInt(n int64) Fixed[B, W, F, R] {
	if n == 0 {
		panic(fmt.Sprintf("%v.QuoInt(%v) failed: division by zero", x, n))
	}
	if baseSigned[B]() {
		return x.withRaw(uint64(int64(x.raw) / n))
	}
	return x.withRaw(uint64(x.raw) / uint64(n))
}

// Rem returns the remainder of the raw values of x and y.
// The sign of the result follows the sign of x.
//
// Rem panics if:
//   - y is 0.
func (x Fixed[B, W, F, R]) Rem(y Fixed[B, W, F, R]) Fixed[B, W, F, R] {
	if y.raw == 0 {
		panic(fmt.Sprintf("%v.Rem(%v) failed: division by zero", x, y))
	}
	return Fixed[B, W, F, R]{raw: x.raw % y.raw}
}

// RemInt returns the remainder of x and n.
// The raw value is divided by n * 2^F.
//
// RemInt panics if:
//   - n * 2^F is 0.
func (x Fixed[B, W, F, R]) RemInt(n int64) Fixed[B, W, F, R] {
	if baseSigned[B]() {
		d := n << x.frac()
		if d == 0 {
			panic(fmt.Sprintf("%v.RemInt(%v) failed: division by zero", x, n))
		}
		return x.withRaw(uint64(int64(x.raw) % d))
	}
	d := uint64(n) << x.frac()
	if d == 0 {
		panic(fmt.Sprintf("%v.RemInt(%v) failed: division by zero", x, n))
	}
	return x.withRaw(uint64(x.raw) % d)
}

// Lsh returns x with the raw value shifted left by n bits,
// which multiplies x by 2^n.
func (x Fixed[B, W, F, R]) Lsh(n uint) Fixed[B, W, F, R] {
	return Fixed[B, W, F, R]{raw: x.raw << n}
}

// Rsh returns x with the raw value shifted right by n bits,
// which divides x by 2^n rounding towards negative infinity.
func (x Fixed[B, W, F, R]) Rsh(n uint) Fixed[B, W, F, R] {
	return Fixed[B, W, F, R]{raw: x.raw >> n}
}

// Neg returns a fixed-point number with the opposite sign.
// It is defined only for signed base types.
// Negating the minimum value wraps around to itself.
func Neg[B Signed, W Wide[B], F Frac[B], R Rounding](x Fixed[B, W, F, R]) Fixed[B, W, F, R] {
	return Fixed[B, W, F, R]{raw: -x.raw}
}

// Abs returns the absolute value of x.
// It is defined only for signed base types.
// The absolute value of the minimum value wraps around to itself.
func Abs[B Signed, W Wide[B], F Frac[B], R Rounding](x Fixed[B, W, F, R]) Fixed[B, W, F, R] {
	if x.raw < 0 {
		return Neg(x)
	}
	return x
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x = y
//	+1 if x > y
func (x Fixed[B, W, F, R]) Cmp(y Fixed[B, W, F, R]) int {
	switch {
	case x.raw < y.raw:
		return -1
	case x.raw > y.raw:
		return 1
	}
	return 0
}

// CmpInt compares x and n like [Fixed.Cmp].
// The integer is converted like in [FromInt] first.
func (x Fixed[B, W, F, R]) CmpInt(n int64) int {
	return x.Cmp(x.withInt(uint64(n)))
}

// Equal reports whether x and y are equal.
func (x Fixed[B, W, F, R]) Equal(y Fixed[B, W, F, R]) bool {
	return x.raw == y.raw
}

// EqualInt reports whether x and n are equal.
// The integer is converted like in [FromInt] first.
func (x Fixed[B, W, F, R]) EqualInt(n int64) bool {
	return x.CmpInt(n) == 0
}

// Less reports whether x is less than y.
func (x Fixed[B, W, F, R]) Less(y Fixed[B, W, F, R]) bool {
	return x.raw < y.raw
}

// Max returns the larger of x and y.
func (x Fixed[B, W, F, R]) Max(y Fixed[B, W, F, R]) Fixed[B, W, F, R] {
	if x.raw < y.raw {
		return y
	}
	return x
}

// Min returns the smaller of x and y.
func (x Fixed[B, W, F, R]) Min(y Fixed[B, W, F, R]) Fixed[B, W, F, R] {
	if x.raw > y.raw {
		return y
	}
	return x
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x = 0
//	+1 if x > 0
func (x Fixed[B, W, F, R]) Sign() int {
	switch {
	case x.raw < 0:
		return -1
	case x.raw > 0:
		return 1
	}
	return 0
}

// IsZero reports whether x is zero.
func (x Fixed[B, W, F, R]) IsZero() bool {
	return x.raw == 0
}

// scale returns 2^F as a float64.
func (x Fixed[B, W, F, R]) scale() float64 {
	return math.Ldexp(1, int(x.frac()))
}

// Float64 returns the nearest float64 to x.
func (x Fixed[B, W, F, R]) Float64() float64 {
	return float64(x.raw) / x.scale()
}

// Float32 returns the nearest float32 to x.
func (x Fixed[B, W, F, R]) Float32() float32 {
	return float32(x.raw) / float32(x.scale())
}

// Int64 returns the integer part of x, rounded towards zero.
// For unsigned base types the result wraps around if it exceeds
// [math.MaxInt64].
func (x Fixed[B, W, F, R]) Int64() int64 {
	if baseSigned[B]() {
		return quoPow2(int64(x.raw), x.frac())
	}
	return int64(uint64(x.raw) >> x.frac())
}

// Uint64 returns the integer part of x, rounded towards zero.
// Negative results wrap around like a native integer conversion.
func (x Fixed[B, W, F, R]) Uint64() uint64 {
	if baseSigned[B]() {
		return uint64(quoPow2(int64(x.raw), x.frac()))
	}
	return uint64(x.raw) >> x.frac()
}
