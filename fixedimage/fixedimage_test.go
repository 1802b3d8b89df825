package fixedimage

import (
	"image"
	"testing"

	"github.com/govalues/fixed"
	"github.com/stretchr/testify/require"
	imgfixed "golang.org/x/image/math/fixed"
)

func TestInt26_6(t *testing.T) {
	type TC struct {
		name string
		raw  int32 // raw value of fixed.Fixed16_16
		want imgfixed.Int26_6
	}

	tcs := []TC{
		{name: "zero", raw: 0, want: 0},
		{name: "one", raw: 1 << 16, want: 64},
		{name: "1.25", raw: 81920, want: 80},
		{name: "-1.25", raw: -81920, want: -80},
		{name: "half ulp rounds up", raw: 1 << 9, want: 1},
		{name: "half ulp rounds down", raw: -(1 << 9), want: -1},
		{name: "below half ulp", raw: 1<<9 - 1, want: 0},
		{name: "max", raw: 1<<31 - 1, want: 1 << 21},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			x := fixed.FromRaw[fixed.Fixed16_16](tc.raw)
			require.Equal(t, tc.want, ToInt26_6(x))
		})
	}
}

func TestFromInt26_6(t *testing.T) {
	for _, v := range []imgfixed.Int26_6{0, 1, -1, 80, -80, imgfixed.I(100), imgfixed.I(-32768)} {
		x := FromInt26_6[fixed.Fixed16_16](v)
		require.Equal(t, int32(v)<<10, x.Raw(), "value %v", v)
		require.Equal(t, v, ToInt26_6(x), "round trip of %v", v)
	}
}

func TestInt52_12(t *testing.T) {
	x := fixed.MustParse[fixed.Fixed32_32]("-2.5")
	v := ToInt52_12(x)
	require.Equal(t, imgfixed.Int52_12(-10240), v)
	require.Equal(t, "-2:2048", v.String())

	y := FromInt52_12[fixed.Fixed32_32](v)
	require.Equal(t, x, y)

	// 26.6 values widen to 52.12 without loss.
	w := FromInt26_6[Unit52_12](80)
	require.Equal(t, int64(5120), w.Raw())
}

func TestPoint(t *testing.T) {
	x := fixed.MustParse[fixed.Fixed16_16]("3.5")
	y := fixed.MustParse[fixed.Fixed16_16]("-0.25")

	p := ToPoint26_6(x, y)
	require.Equal(t, imgfixed.Point26_6{X: 224, Y: -16}, p)

	gx, gy := FromPoint26_6[fixed.Fixed16_16](p)
	require.Equal(t, x, gx)
	require.Equal(t, y, gy)

	q := ToPoint52_12(x, y)
	require.Equal(t, imgfixed.Point52_12{X: 14336, Y: -1024}, q)

	hx, hy := FromPoint52_12[fixed.Fixed16_16](q)
	require.Equal(t, x, hx)
	require.Equal(t, y, hy)
}

func TestRectangle26_6(t *testing.T) {
	r := ToRectangle26_6(
		fixed.FromInt[fixed.Fixed16_16](1),
		fixed.FromInt[fixed.Fixed16_16](2),
		fixed.FromInt[fixed.Fixed16_16](3),
		fixed.FromInt[fixed.Fixed16_16](4),
	)
	require.Equal(t, imgfixed.R(1, 2, 3, 4), r)
	require.False(t, r.Empty())
}

func TestImagePoint(t *testing.T) {
	x := fixed.MustParse[fixed.Fixed16_16]("-0.5")
	y := fixed.MustParse[fixed.Fixed16_16]("1.5")
	require.Equal(t, image.Pt(-1, 1), ImagePoint(x, y))
}

func TestMulMatchesInt26_6(t *testing.T) {
	vals := []int32{1, 7, 31, 32, 33, 63, 64, 65, 100, 1000, 4095, 12345, 65535}
	for _, a := range vals {
		for _, b := range vals {
			got := fixed.FromRaw[Unit26_6](a).Mul(fixed.FromRaw[Unit26_6](b))
			want := imgfixed.Int26_6(a).Mul(imgfixed.Int26_6(b))
			require.Equal(t, int32(want), got.Raw(), "%v * %v", a, b)
		}
	}
}
