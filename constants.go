package fixed

// Mathematical constants are stored with as many fraction bits as a signed
// 64-bit integer allows and rounded to the fraction bits of T.

const (
	eRaw  int64 = 6267931151224907085 // e * 2^61
	piRaw int64 = 7244019458077122842 // π * 2^61
)

// E returns the base of natural logarithms, e ≈ 2.71828, in type T.
func E[T Number[T]]() T {
	return FromFixedPoint[T](eRaw, 61)
}

// Pi returns π ≈ 3.14159 in type T.
func Pi[T Number[T]]() T {
	return FromFixedPoint[T](piRaw, 61)
}

// HalfPi returns π/2 in type T.
func HalfPi[T Number[T]]() T {
	return FromFixedPoint[T](piRaw, 62)
}

// TwoPi returns 2π in type T.
// The result wraps around if 2π does not fit T.
func TwoPi[T Number[T]]() T {
	return FromFixedPoint[T](piRaw, 60)
}
