package fixed

import (
	"math/big"
	"sync"
)

// bint (Big INTeger) is a wrapper around big.Int.
// The text codec uses it for exact digit arithmetic, since the decimal
// expansion of a 64-bit raw value with 64 fraction bits does not fit
// any native integer.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = func() [41]*bint {
	var t [41]*bint
	for i := range t {
		t[i] = (*bint)(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(i)), nil))
	}
	return t
}()

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

// appendText appends the decimal digits of z to dst.
func (z *bint) appendText(dst []byte) []byte {
	return (*big.Int)(z).Append(dst, 10)
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setUint64(x uint64) {
	(*big.Int)(z).SetUint64(x)
}

// uint64 converts z to uint64.
// If z cannot be represented as uint64, the result is undefined.
func (z *bint) uint64() uint64 {
	return (*big.Int)(z).Uint64()
}

// bitLen returns the length of |z| in bits.
func (z *bint) bitLen() int {
	return (*big.Int)(z).BitLen()
}

// bit returns the value of the i-th bit of |z|.
func (z *bint) bit(i int) uint {
	return (*big.Int)(z).Bit(i)
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// inc calculates z = x + 1.
func (z *bint) inc(x *bint) {
	z.add(x, bpow10[0])
}

// dbl (Double) calculates z = x * 2.
func (z *bint) dbl(x *bint) {
	(*big.Int)(z).Lsh((*big.Int)(x), 1)
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	// Copying x, y to prevent heap allocations.
	if z == x {
		b := getBint()
		defer putBint(b)
		b.setBint(x)
		x = b
	}
	if z == y {
		b := getBint()
		defer putBint(b)
		b.setBint(y)
		y = b
	}
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// pow calculates z = base^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow(base uint64, power int) {
	if base == 10 && power < len(bpow10) {
		z.setBint(bpow10[power])
		return
	}
	x := getBint()
	defer putBint(x)
	x.setUint64(base)
	y := getBint()
	defer putBint(y)
	y.setUint64(uint64(power))
	(*big.Int)(z).Exp((*big.Int)(x), (*big.Int)(y), nil)
}

// quoRem calculates z = ⌊x / y⌋, r = x - y * z.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

func (z *bint) isOdd() bool {
	return (*big.Int)(z).Bit(0) != 0
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	y := getBint()
	defer putBint(y)
	y.pow(10, shift)
	z.mul(x, y)
}

// lshBits calculates z = x * 2^shift.
func (z *bint) lshBits(x *bint, shift int) {
	(*big.Int)(z).Lsh((*big.Int)(x), uint(shift))
}

// rshBits calculates z = ⌊x / 2^shift⌋ for non-negative x.
func (z *bint) rshBits(x *bint, shift int) {
	(*big.Int)(z).Rsh((*big.Int)(x), uint(shift))
}

// fsa (Fused Shift and Addition) calculates z = x * base + d.
func (z *bint) fsa(x *bint, base, d uint64) {
	y := getBint()
	defer putBint(y)
	y.setUint64(base)
	z.mul(x, y)
	y.setUint64(d)
	z.add(z, y)
}

// quoHalfUp calculates z = round(x / y) and rounds the result using
// "half away from zero" rule if round is true, or towards zero otherwise.
// Both x and y must be non-negative.
func (z *bint) quoHalfUp(x, y *bint, round bool) {
	r := getBint()
	defer putBint(r)
	z.quoRem(x, y, r)
	if !round {
		return
	}
	r.dbl(r) // r = r * 2
	if y.cmp(r) <= 0 {
		z.inc(z) // z = z + 1
	}
}

// rshHalfEven (Right Shift) calculates z = round(x / 10^shift) and
// rounds result using "half to even" rule.
func (z *bint) rshHalfEven(x *bint, shift int) {
	// Special cases
	switch {
	case x.sign() == 0:
		z.setUint64(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	// General case
	y := getBint()
	defer putBint(y)
	y.pow(10, shift)
	r := getBint()
	defer putBint(r)
	z.quoRem(x, y, r)
	r.dbl(r) // r = r * 2
	switch y.cmp(r) {
	case -1:
		z.inc(z) // z = z + 1
	case 0:
		// half-to-even
		if z.isOdd() {
			z.inc(z) // z = z + 1
		}
	}
}

// prec returns length of z in decimal digits.
// prec assumes that 0 has no digits.
// If z is negative, the result is unpredictable.
func (z *bint) prec() int {
	// Special case
	if z.cmp(bpow10[len(bpow10)-1]) >= 0 {
		return len(z.appendText(nil))
	}
	// General case
	left, right := 0, len(bpow10)
	for left < right {
		mid := (left + right) / 2
		if z.cmp(bpow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
