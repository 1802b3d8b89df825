// Package fixedimage converts between fixed-point numbers and the 26.6 and
// 52.12 fixed-point types of [golang.org/x/image/math/fixed], which are used
// by font rasterizers and vector graphics packages.
//
// Conversions rescale the raw value like [fixed.Convert] does: bits that
// are dropped are rounded half away from zero, and values that do not fit
// the target wrap around.
//
// [golang.org/x/image/math/fixed]: https://pkg.go.dev/golang.org/x/image/math/fixed
package fixedimage

import (
	"image"

	"github.com/govalues/fixed"
	imgfixed "golang.org/x/image/math/fixed"
)

// Unit26_6 is the fixed-point type with the layout of [imgfixed.Int26_6].
type Unit26_6 = fixed.Fixed[int32, fixed.Int64[int32], fixed.F6[int32], fixed.Round]

// Unit52_12 is the fixed-point type with the layout of [imgfixed.Int52_12].
type Unit52_12 = fixed.Fixed[int64, fixed.Int128[int64], fixed.F12[int64], fixed.Round]

// FromInt26_6 converts a 26.6 value to type T.
func FromInt26_6[T fixed.Number[T]](v imgfixed.Int26_6) T {
	return fixed.FromFixedPoint[T](int32(v), 6)
}

// ToInt26_6 converts x to a 26.6 value.
func ToInt26_6[T fixed.Number[T]](x T) imgfixed.Int26_6 {
	return imgfixed.Int26_6(fixed.Convert[Unit26_6](x).Raw())
}

// FromInt52_12 converts a 52.12 value to type T.
func FromInt52_12[T fixed.Number[T]](v imgfixed.Int52_12) T {
	return fixed.FromFixedPoint[T](int64(v), 12)
}

// ToInt52_12 converts x to a 52.12 value.
func ToInt52_12[T fixed.Number[T]](x T) imgfixed.Int52_12 {
	return imgfixed.Int52_12(fixed.Convert[Unit52_12](x).Raw())
}

// FromPoint26_6 returns the coordinates of p in type T.
func FromPoint26_6[T fixed.Number[T]](p imgfixed.Point26_6) (x, y T) {
	return FromInt26_6[T](p.X), FromInt26_6[T](p.Y)
}

// ToPoint26_6 returns the 26.6 point with coordinates x and y.
func ToPoint26_6[T fixed.Number[T]](x, y T) imgfixed.Point26_6 {
	return imgfixed.Point26_6{X: ToInt26_6(x), Y: ToInt26_6(y)}
}

// FromPoint52_12 returns the coordinates of p in type T.
func FromPoint52_12[T fixed.Number[T]](p imgfixed.Point52_12) (x, y T) {
	return FromInt52_12[T](p.X), FromInt52_12[T](p.Y)
}

// ToPoint52_12 returns the 52.12 point with coordinates x and y.
func ToPoint52_12[T fixed.Number[T]](x, y T) imgfixed.Point52_12 {
	return imgfixed.Point52_12{X: ToInt52_12(x), Y: ToInt52_12(y)}
}

// ToRectangle26_6 returns the 26.6 rectangle with the given corners.
func ToRectangle26_6[T fixed.Number[T]](minX, minY, maxX, maxY T) imgfixed.Rectangle26_6 {
	return imgfixed.Rectangle26_6{
		Min: ToPoint26_6(minX, minY),
		Max: ToPoint26_6(maxX, maxY),
	}
}

// ImagePoint returns the integer pixel that contains the point (x, y),
// rounding both coordinates towards negative infinity like
// [imgfixed.Int26_6.Floor] does.
func ImagePoint[T fixed.Number[T]](x, y T) image.Point {
	p := ToPoint26_6(x, y)
	return image.Pt(p.X.Floor(), p.Y.Floor())
}
