package fixed

import "math/bits"

// Wide is the constraint satisfied by intermediate type selectors.
// An intermediate type is an integer strictly wider than the base type B
// with the same signedness.
// It holds the full product of two raw values during multiplication and
// the scaled dividend during division.
//
// The type parameter list of each selector admits only the base types it is
// wider than, so a fixed-point type with an intermediate type that is too
// narrow, or of the wrong signedness, does not compile.
type Wide[B Base] interface {
	width() int
	mul(x, y B, frac uint, round bool) B
	quo(x, y B, frac uint, round bool) B
}

// Int16 selects int16 as the intermediate type.
type Int16[B ~int8] struct{}

// Int32 selects int32 as the intermediate type.
type Int32[B ~int8 | ~int16] struct{}

// Int64 selects int64 as the intermediate type.
type Int64[B ~int8 | ~int16 | ~int32] struct{}

// Int128 selects a signed 128-bit integer as the intermediate type.
// Go has no native 128-bit integer, so products and quotients are computed
// on pairs of uint64 words.
type Int128[B ~int8 | ~int16 | ~int32 | ~int64] struct{}

// Uint16 selects uint16 as the intermediate type.
type Uint16[B ~uint8] struct{}

// Uint32 selects uint32 as the intermediate type.
type Uint32[B ~uint8 | ~uint16] struct{}

// Uint64 selects uint64 as the intermediate type.
type Uint64[B ~uint8 | ~uint16 | ~uint32] struct{}

// Uint128 selects an unsigned 128-bit integer as the intermediate type.
type Uint128[B ~uint8 | ~uint16 | ~uint32 | ~uint64] struct{}

func (Int16[B]) width() int   { return 16 }
func (Int32[B]) width() int   { return 32 }
func (Int64[B]) width() int   { return 64 }
func (Int128[B]) width() int  { return 128 }
func (Uint16[B]) width() int  { return 16 }
func (Uint32[B]) width() int  { return 32 }
func (Uint64[B]) width() int  { return 64 }
func (Uint128[B]) width() int { return 128 }

func (Int16[B]) mul(x, y B, frac uint, round bool) B {
	return mulNative[B, int16](x, y, frac, round)
}

func (Int16[B]) quo(x, y B, frac uint, round bool) B {
	return quoNative[B, int16](x, y, frac, round)
}

func (Int32[B]) mul(x, y B, frac uint, round bool) B {
	return mulNative[B, int32](x, y, frac, round)
}

func (Int32[B]) quo(x, y B, frac uint, round bool) B {
	return quoNative[B, int32](x, y, frac, round)
}

func (Int64[B]) mul(x, y B, frac uint, round bool) B {
	return mulNative[B, int64](x, y, frac, round)
}

func (Int64[B]) quo(x, y B, frac uint, round bool) B {
	return quoNative[B, int64](x, y, frac, round)
}

func (Uint16[B]) mul(x, y B, frac uint, round bool) B {
	return mulNative[B, uint16](x, y, frac, round)
}

func (Uint16[B]) quo(x, y B, frac uint, round bool) B {
	return quoNative[B, uint16](x, y, frac, round)
}

func (Uint32[B]) mul(x, y B, frac uint, round bool) B {
	return mulNative[B, uint32](x, y, frac, round)
}

func (Uint32[B]) quo(x, y B, frac uint, round bool) B {
	return quoNative[B, uint32](x, y, frac, round)
}

func (Uint64[B]) mul(x, y B, frac uint, round bool) B {
	return mulNative[B, uint64](x, y, frac, round)
}

func (Uint64[B]) quo(x, y B, frac uint, round bool) B {
	return quoNative[B, uint64](x, y, frac, round)
}

func (Int128[B]) mul(x, y B, frac uint, round bool) B {
	ux, xneg := abs64(int64(x))
	uy, yneg := abs64(int64(y))
	z := mulWide(ux, uy, frac, round)
	if xneg != yneg {
		z = -z
	}
	return B(z)
}

func (Int128[B]) quo(x, y B, frac uint, round bool) B {
	ux, xneg := abs64(int64(x))
	uy, yneg := abs64(int64(y))
	z := quoWide(ux, uy, frac, round)
	if xneg != yneg {
		z = -z
	}
	return B(z)
}

func (Uint128[B]) mul(x, y B, frac uint, round bool) B {
	return B(mulWide(uint64(x), uint64(y), frac, round))
}

func (Uint128[B]) quo(x, y B, frac uint, round bool) B {
	return B(quoWide(uint64(x), uint64(y), frac, round))
}

// native is the set of intermediate types with a Go counterpart.
type native interface {
	~int16 | ~int32 | ~int64 | ~uint16 | ~uint32 | ~uint64
}

// mulNative calculates x * y / 2^frac in the intermediate type I.
// With rounding, the product is divided by 2^(frac-1) and the last bit
// is rounded half away from zero.
func mulNative[B Base, I native](x, y B, frac uint, round bool) B {
	v := I(x) * I(y)
	if round {
		v /= I(1) << (frac - 1)
		return B(v/2 + v%2)
	}
	return B(v / (I(1) << frac))
}

// quoNative calculates x * 2^frac / y in the intermediate type I.
// With rounding, the dividend carries one extra bit and the last bit
// is rounded half away from zero.
func quoNative[B Base, I native](x, y B, frac uint, round bool) B {
	if round {
		v := I(x) * (I(1) << frac) * 2 / I(y)
		return B(v/2 + v%2)
	}
	return B(I(x) * (I(1) << frac) / I(y))
}

// mulWide calculates the low 64 bits of x * y / 2^frac,
// where the product is kept in 128 bits.
func mulWide(x, y uint64, frac uint, round bool) uint64 {
	v := mul64(x, y)
	if round {
		v = v.rsh(frac - 1)
		return v.rsh(1).lo + v.lo&1
	}
	return v.rsh(frac).lo
}

// quoWide calculates the low 64 bits of x * 2^frac / y,
// where the dividend is kept in 128 bits.
// If y is 0, quoWide panics.
func quoWide(x, y uint64, frac uint, round bool) uint64 {
	if round {
		frac++
	}
	q, _ := u128{lo: x}.lsh(frac).quoRem64(y)
	if round {
		return q.rsh(1).lo + q.lo&1
	}
	return q.lo
}

// abs64 returns the magnitude of x and whether x is negative.
func abs64(x int64) (uint64, bool) {
	if x < 0 {
		return -uint64(x), true
	}
	return uint64(x), false
}

// u128 is an unsigned 128-bit integer.
type u128 struct {
	hi, lo uint64
}

// mul64 calculates the full product x * y.
func mul64(x, y uint64) u128 {
	hi, lo := bits.Mul64(x, y)
	return u128{hi: hi, lo: lo}
}

// lsh calculates u * 2^n modulo 2^128.
func (u u128) lsh(n uint) u128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return u128{}
	case n >= 64:
		return u128{hi: u.lo << (n - 64)}
	}
	return u128{hi: u.hi<<n | u.lo>>(64-n), lo: u.lo << n}
}

// rsh calculates ⌊u / 2^n⌋.
func (u u128) rsh(n uint) u128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return u128{}
	case n >= 64:
		return u128{lo: u.hi >> (n - 64)}
	}
	return u128{hi: u.hi >> n, lo: u.lo>>n | u.hi<<(64-n)}
}

// quoRem64 calculates q = ⌊u / y⌋ and r = u - y * q.
// If y is 0, quoRem64 panics.
func (u u128) quoRem64(y uint64) (q u128, r uint64) {
	q.hi = u.hi / y
	q.lo, r = bits.Div64(u.hi%y, u.lo, y)
	return q, r
}
