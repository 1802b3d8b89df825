package fixed

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Limits describes the numeric properties of a fixed-point type, in the
// vocabulary of C++ std::numeric_limits.
// The zero value describes no type.
type Limits struct {
	IsSpecialized   bool `yaml:"is_specialized"`
	IsSigned        bool `yaml:"is_signed"`
	IsInteger       bool `yaml:"is_integer"`
	IsExact         bool `yaml:"is_exact"`
	HasInfinity     bool `yaml:"has_infinity"`
	HasQuietNaN     bool `yaml:"has_quiet_nan"`
	HasSignalingNaN bool `yaml:"has_signaling_nan"`
	HasDenormLoss   bool `yaml:"has_denorm_loss"`
	IsIEC559        bool `yaml:"is_iec559"`
	IsBounded       bool `yaml:"is_bounded"`
	IsModulo        bool `yaml:"is_modulo"`
	Traps           bool `yaml:"traps"`
	TinynessBefore  bool `yaml:"tinyness_before"`
	RoundToNearest  bool `yaml:"round_to_nearest"`
	Digits          int  `yaml:"digits"`
	Digits10        int  `yaml:"digits10"`
	MaxDigits10     int  `yaml:"max_digits10"`
	Radix           int  `yaml:"radix"`
	MinExponent     int  `yaml:"min_exponent"`
	MinExponent10   int  `yaml:"min_exponent10"`
	MaxExponent     int  `yaml:"max_exponent"`
	MaxExponent10   int  `yaml:"max_exponent10"`
}

// digits10 returns the number of decimal digits that can be represented
// by b bits without change, ⌊b * log10(2)⌋.
// The constant 5050445 is ⌈2^24 * log10(2)⌉, which is exact for b < 2^16.
func digits10(b int) int {
	return (b * 5050445) >> 24
}

// maxDigits10 returns the number of decimal digits needed to represent
// any value of b bits uniquely, ⌈b * log10(2)⌉.
func maxDigits10(b int) int {
	return (b*5050445 + 1<<24 - 1) >> 24
}

// LimitsOf returns the numeric properties of the fixed-point type T.
//
// Digits counts the bits of the base type that hold the magnitude, that is
// all bits for unsigned base types and all but the sign bit for signed ones.
// Digits10 is always 1: a number with more significant decimal digits,
// such as 0.000001, may not survive a round trip through text.
// RoundToNearest follows the rounding parameter of T.
// Exponents describe the range of representable powers of 2 and 10:
// the smallest positive value is 2^(MinExponent-1) and the largest
// power of 2 below the maximum is 2^(MaxExponent-1).
func LimitsOf[T Number[T]]() Limits {
	var z T
	l := z.layout()
	digits := int(l.bits)
	if l.signed {
		digits--
	}
	frac := int(l.frac)
	return Limits{
		IsSpecialized:  true,
		IsSigned:       l.signed,
		IsExact:        true,
		IsBounded:      true,
		IsModulo:       !l.signed,
		Traps:          true,
		RoundToNearest: l.round,
		Digits:         digits,
		Digits10:       1,
		MaxDigits10:    maxDigits10(digits-frac) + maxDigits10(frac),
		Radix:          2,
		MinExponent:    1 - frac,
		MinExponent10:  -digits10(frac),
		MaxExponent:    digits - frac,
		MaxExponent10:  digits10(digits - frac),
	}
}

// Min returns the most negative value of T, the same as [Lowest].
// Unlike the smallest positive float, the smallest positive fixed-point
// number is [Epsilon].
func Min[T Number[T]]() T {
	return Lowest[T]()
}

// Lowest returns the most negative value of T, or 0 for unsigned base types.
func Lowest[T Number[T]]() T {
	var z T
	l := z.layout()
	if !l.signed {
		return z
	}
	return z.withRaw(1 << (l.bits - 1))
}

// Max returns the largest value of T.
func Max[T Number[T]]() T {
	var z T
	l := z.layout()
	if !l.signed {
		return z.withRaw(^uint64(0))
	}
	return z.withRaw(1<<(l.bits-1) - 1)
}

// Epsilon returns the difference between 1 and the next value of T,
// which has a raw value of 1.
func Epsilon[T Number[T]]() T {
	var z T
	return z.withRaw(1)
}

// RoundError returns the largest rounding error of T, which is 0.5.
// Unlike FromInt[T](1).QuoInt(2), it is exact for types without
// integral bits.
func RoundError[T Number[T]]() T {
	var z T
	return z.withRaw(1 << (z.layout().frac - 1))
}

// DenormMin is the same as [Min], fixed-point numbers have no denormalized
// values.
func DenormMin[T Number[T]]() T {
	return Min[T]()
}

// IsFixed reports whether v is a fixed-point number.
// It holds for every instantiation of [Fixed] and for nothing else,
// including the base integer types.
func IsFixed(v any) bool {
	_, ok := v.(interface{ fixedPoint() })
	return ok
}

// Hash returns a hash of the raw value of x.
// Equal numbers of the same type have equal hashes.
// The hash is the 64-bit xxHash of the raw value, sign-extended to 8 bytes
// in little-endian order, so it does not depend on the platform.
func (x Fixed[B, W, F, R]) Hash() uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(x.raw))
	return xxhash.Sum64(b[:])
}
