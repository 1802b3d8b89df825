package fixed

import (
	"fmt"
)

// Notation is the textual form of a fixed-point number.
type Notation byte

const (
	// GeneralNotation accepts an optional decimal exponent when parsing.
	// When formatting, it picks fixed or scientific notation depending on
	// the exponent, like %g does.
	GeneralNotation Notation = 'g'
	// FixedNotation has no exponent: 123.45.
	FixedNotation Notation = 'f'
	// ScientificNotation requires a decimal exponent: 1.2345e+02.
	ScientificNotation Notation = 'e'
	// HexNotation has hexadecimal digits and an optional binary exponent,
	// without the "0x" prefix: 1.8p+1.
	HexNotation Notation = 'a'
)

const (
	maxExponent = 1_000_000 // exponents are saturated at this magnitude
	maxDecimal  = 40        // 10^40 exceeds any raw value times 2^64
)

// Parse converts a string to a fixed-point number of type T.
// The string must be in general notation and is formatted according
// to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') ['+' | '-'] digits
//	numeric-string ::= [sign] significand [exponent]
//
// A leading '+' is not accepted.
// Digits beyond the precision of T are rounded half away from zero if T
// rounds, or truncated otherwise.
// For unsigned types a '-' sign negates the result modulo 2^bits.
//
// Parse returns an error if:
//   - the string is not a valid number, the error wraps [ErrInvalidArgument];
//   - the number does not fit the base type, the error wraps [ErrOutOfRange].
func Parse[T Number[T]](s string) (T, error) {
	return ParseNotation[T](s, GeneralNotation)
}

// ParseNotation is like [Parse] but accepts the given notation.
// [FixedNotation] does not accept an exponent, [ScientificNotation] requires
// one, and [HexNotation] accepts hexadecimal digits followed by an
// optional binary exponent introduced by 'p' or 'P'.
func ParseNotation[T Number[T]](s string, n Notation) (T, error) {
	var z T
	x, pos, err := ParsePrefix[T](s, n)
	if err != nil {
		return z, err
	}
	if pos != len(s) {
		return z, Error.Wrap(fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidArgument))
	}
	return x, nil
}

// ParsePrefix is like [ParseNotation] but stops at the first byte that
// cannot continue the number and returns the number of bytes consumed.
// A malformed exponent is not consumed, unless the notation requires it.
//
// When the number does not fit the base type, ParsePrefix returns
// an error wrapping [ErrOutOfRange] together with the number of bytes
// that form the number.
func ParsePrefix[T Number[T]](s string, n Notation) (T, int, error) {
	var z T
	raw, pos, err := parseRaw(s, n, z.layout())
	if err != nil {
		return z, pos, err
	}
	return z.withRaw(raw), pos, nil
}

// parseRaw scans a number at the start of s and returns its raw value
// in the given layout, sign-extended to 64 bits.
func parseRaw(s string, n Notation, l layout) (uint64, int, error) {
	var (
		pos     int
		width   int
		neg     bool
		base    uint64
		scale   int
		hascoef bool
		exp     int
		hasexp  bool
	)

	width = len(s)
	base = 10
	if n == HexNotation {
		base = 16
	}
	coef := getBint()
	defer putBint(coef)
	coef.setUint64(0)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	// Integer
	for pos < width {
		d, ok := digitValue(s[pos], base)
		if !ok {
			break
		}
		hascoef = true
		coef.fsa(coef, base, d)
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		end := pos + 1
		for end < width {
			d, ok := digitValue(s[end], base)
			if !ok {
				break
			}
			hascoef = true
			coef.fsa(coef, base, d)
			scale++
			end++
		}
		if hascoef {
			pos = end
		}
	}

	if !hascoef {
		return 0, 0, Error.Wrap(fmt.Errorf("no digits: %w", ErrInvalidArgument))
	}

	// Exponential part
	if pos < width && isExponent(s[pos], n) {
		e, end, ok := parseExponent(s, pos+1)
		if ok {
			exp, hasexp, pos = e, true, end
		}
	}
	if n == ScientificNotation && !hasexp {
		return 0, 0, Error.Wrap(fmt.Errorf("no exponent: %w", ErrInvalidArgument))
	}

	// Scaling
	mag := getBint()
	defer putBint(mag)
	var ok bool
	if n == HexNotation {
		ok = scaleHex(mag, coef, exp-4*scale+int(l.frac), l.round)
	} else {
		ok = scaleDec(mag, coef, exp-scale, l.frac, l.round)
	}
	if !ok || !fits(mag, l, neg) {
		return 0, pos, Error.Wrap(fmt.Errorf("parsing %q: %w", s[:pos], ErrOutOfRange))
	}

	raw := mag.uint64()
	if neg {
		raw = -raw
	}
	return raw, pos, nil
}

// digitValue returns the value of the digit c in the given base.
func digitValue(c byte, base uint64) (uint64, bool) {
	var d uint64
	switch {
	case c >= '0' && c <= '9':
		d = uint64(c - '0')
	case c >= 'a' && c <= 'f':
		d = uint64(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = uint64(c-'A') + 10
	default:
		return 0, false
	}
	return d, d < base
}

// isExponent reports whether c introduces an exponent in notation n.
func isExponent(c byte, n Notation) bool {
	switch n {
	case FixedNotation:
		return false
	case HexNotation:
		return c == 'p' || c == 'P'
	}
	return c == 'e' || c == 'E'
}

// parseExponent scans a signed decimal exponent starting at s[pos].
// The magnitude of the exponent is saturated at maxExponent.
func parseExponent(s string, pos int) (exp, end int, ok bool) {
	var eneg bool
	width := len(s)

	// Sign
	switch {
	case pos == width:
		return 0, 0, false
	case s[pos] == '-':
		eneg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		if exp < maxExponent {
			exp = exp*10 + int(s[pos]-'0')
		}
		ok = true
		pos++
	}
	if eneg {
		exp = -exp
	}
	return exp, pos, ok
}

// scaleDec calculates z = coef * 10^exp * 2^frac, rounded half away from zero
// if round is true or truncated otherwise.
// It returns false if the result is certainly too large for any base type.
func scaleDec(z, coef *bint, exp int, frac uint, round bool) bool {
	if coef.sign() == 0 {
		z.setUint64(0)
		return true
	}
	prec := coef.prec()
	switch {
	case prec+exp > maxDecimal:
		return false
	case prec+exp < -maxDecimal:
		z.setUint64(0)
		return true
	}
	num := getBint()
	defer putBint(num)
	num.lshBits(coef, int(frac))
	if exp >= 0 {
		z.lsh(num, exp)
		return true
	}
	den := getBint()
	defer putBint(den)
	den.pow(10, -exp)
	z.quoHalfUp(num, den, round)
	return true
}

// scaleHex calculates z = coef * 2^shift, rounded half away from zero
// if round is true or truncated otherwise.
// It returns false if the result is certainly too large for any base type.
func scaleHex(z, coef *bint, shift int, round bool) bool {
	if coef.sign() == 0 {
		z.setUint64(0)
		return true
	}
	size := coef.bitLen() + shift
	switch {
	case size > 2*64:
		return false
	case size < 0:
		z.setUint64(0)
		return true
	case shift >= 0:
		z.lshBits(coef, shift)
		return true
	}
	z.rshBits(coef, -shift)
	if round && coef.bit(-shift-1) == 1 {
		z.inc(z)
	}
	return true
}

// fits reports whether the magnitude mag of a number with the given sign
// fits the layout.
// For unsigned layouts the sign is ignored, negative numbers wrap around.
func fits(mag *bint, l layout, neg bool) bool {
	if mag.bitLen() > 64 {
		return false
	}
	var limit uint64
	switch {
	case !l.signed:
		limit = 1<<(l.bits-1)<<1 - 1
	case neg:
		limit = 1 << (l.bits - 1)
	default:
		limit = 1<<(l.bits-1) - 1
	}
	return mag.uint64() <= limit
}

// Scan implements [fmt.Scanner] interface.
// It skips leading spaces and reads the longest run of runes that can
// form a number, like a C++ input stream does: "1 . 5" is scanned as 1
// and "--1.5" fails.
// Verbs %x and %X read hexadecimal notation, other verbs read general
// notation.
// If the run of runes is not a valid number, x is set to zero.
//
// [fmt.Scanner]: https://pkg.go.dev/fmt#Scanner
func (x *Fixed[B, W, F, R]) Scan(state fmt.ScanState, verb rune) error {
	var n Notation
	switch verb {
	case 'v', 's', 'f', 'F', 'e', 'E', 'g', 'G':
		n = GeneralNotation
	case 'x', 'X':
		n = HexNotation
	default:
		return Error.Wrap(fmt.Errorf("bad verb '%%%c': %w", verb, ErrInvalidArgument))
	}

	state.SkipSpace()
	sc := numberScanner{hex: n == HexNotation}
	tok, err := state.Token(false, sc.accept)
	if err != nil {
		*x = Fixed[B, W, F, R]{}
		return err
	}

	z, err := ParseNotation[Fixed[B, W, F, R]](string(tok), n)
	if err != nil {
		*x = Fixed[B, W, F, R]{}
		return err
	}
	*x = z
	return nil
}

// numberScanner accepts the runes of a number one at a time.
type numberScanner struct {
	hex   bool
	count int  // number of accepted runes
	dot   bool // whether the decimal point was accepted
	exp   int  // position after the exponent marker, 0 if there is none
}

func (s *numberScanner) accept(r rune) bool {
	var ok bool
	switch {
	case r == '-':
		ok = s.count == 0 || s.exp == s.count
	case r == '+':
		ok = s.exp > 0 && s.exp == s.count
	case r == '.':
		ok = !s.dot && s.exp == 0
		s.dot = s.dot || ok
	case r >= '0' && r <= '9':
		ok = true
	case s.exp == 0 && s.count > 0 && (s.hex && (r == 'p' || r == 'P') || !s.hex && (r == 'e' || r == 'E')):
		ok = true
		s.exp = s.count + 1
	case s.exp == 0 && s.hex && (r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'):
		ok = true
	}
	if ok {
		s.count++
	}
	return ok
}
