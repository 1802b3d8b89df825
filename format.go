package fixed

import (
	"bytes"
	"fmt"
	"math/bits"
	"strconv"
	"unicode/utf8"
)

// Align is the alignment of a formatted number within its field.
type Align byte

const (
	AlignNone   Align = 0   // right alignment, zero padding allowed
	AlignLeft   Align = '<' // '<'
	AlignRight  Align = '>' // '>'
	AlignCenter Align = '^' // '^', the smaller half of the padding goes left
)

// Sign selects how the sign of a formatted number is written.
type Sign byte

const (
	SignMinus Sign = '-' // only negative numbers have a sign, also the default
	SignPlus  Sign = '+' // both positive and negative numbers have a sign
	SignSpace Sign = ' ' // positive numbers have a leading space
)

// defaultPrec is the number of significant digits in general notation
// when no precision is given.
const defaultPrec = 6

const maxWidth = 1 << 20

// Spec is a format specification.
// The zero value formats a number in general notation with 6 significant
// digits, like "{}" does in C++ std::format.
type Spec struct {
	Fill     rune     // fill character, space if 0
	Align    Align    // alignment within Width
	Sign     Sign     // sign mode
	Alt      bool     // always write the decimal point, keep trailing zeros in general notation
	Zero     bool     // pad with zeros between the sign and the digits, ignored if Align is set
	Width    int      // minimum field width in runes
	Prec     int      // precision, used only if HasPrec is true
	HasPrec  bool     // whether Prec is set
	Notation Notation // presentation type, general notation if 0
	Upper    bool     // upper case exponent and hexadecimal digits
}

// ParseSpec parses a format specification.
// The specification is formatted according to the following grammar,
// which is the standard format specification of C++ std::format:
//
//	fill      ::= any character except '{' and '}'
//	align     ::= '<' | '>' | '^'
//	sign      ::= '+' | '-' | ' '
//	width     ::= digits
//	precision ::= '.' digits
//	type      ::= 'a' | 'A' | 'e' | 'E' | 'f' | 'F' | 'g' | 'G'
//	spec      ::= [[fill] align] [sign] ['#'] ['0'] [width] [precision] [type]
//
// For example, "*^+10.3f" centers a number with 3 fraction digits and
// a mandatory sign in a field of 10 asterisks.
//
// ParseSpec returns an error wrapping [ErrInvalidArgument] if the
// specification is malformed.
func ParseSpec(s string) (Spec, error) {
	var (
		sp    Spec
		pos   int
		width int
		ok    bool
	)

	width = len(s)

	// Fill and alignment
	if r, size := utf8.DecodeRuneInString(s); size < width && isAlign(s[size]) {
		if r == '{' || r == '}' || r == utf8.RuneError {
			return Spec{}, Error.Wrap(fmt.Errorf("invalid fill %q: %w", r, ErrInvalidArgument))
		}
		sp.Fill, sp.Align = r, Align(s[size])
		pos = size + 1
	} else if pos < width && isAlign(s[pos]) {
		sp.Align = Align(s[pos])
		pos++
	}

	// Sign
	if pos < width && (s[pos] == '+' || s[pos] == '-' || s[pos] == ' ') {
		sp.Sign = Sign(s[pos])
		pos++
	}

	// Alternate form
	if pos < width && s[pos] == '#' {
		sp.Alt = true
		pos++
	}

	// Zero padding
	if pos < width && s[pos] == '0' {
		sp.Zero = true
		pos++
	}

	// Width
	sp.Width, pos, ok = parseCount(s, pos)
	if !ok {
		return Spec{}, Error.Wrap(fmt.Errorf("width too large: %w", ErrInvalidArgument))
	}

	// Precision
	if pos < width && s[pos] == '.' {
		start := pos + 1
		sp.Prec, pos, ok = parseCount(s, start)
		if !ok {
			return Spec{}, Error.Wrap(fmt.Errorf("precision too large: %w", ErrInvalidArgument))
		}
		if pos == start {
			return Spec{}, Error.Wrap(fmt.Errorf("no precision: %w", ErrInvalidArgument))
		}
		sp.HasPrec = true
	}

	// Type
	if pos < width {
		switch c := s[pos]; c {
		case 'a', 'e', 'f', 'g':
			sp.Notation = Notation(c)
			pos++
		case 'A', 'E', 'F', 'G':
			sp.Notation = Notation(c - 'A' + 'a')
			sp.Upper = true
			pos++
		}
	}

	if pos != width {
		return Spec{}, Error.Wrap(fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidArgument))
	}
	return sp, nil
}

func isAlign(c byte) bool {
	return c == '<' || c == '>' || c == '^'
}

// parseCount scans a non-negative decimal integer starting at s[pos].
func parseCount(s string, pos int) (n, end int, ok bool) {
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		n = n*10 + int(s[pos]-'0')
		if n > maxWidth {
			return 0, pos, false
		}
		pos++
	}
	return n, pos, true
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a fixed-point number.
// The returned string has the fewest fraction digits that parse back
// to the same raw value, and is formatted according to the following
// formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Fixed[B, W, F, R]) String() string {
	var buf [48]byte
	return string(x.AppendSpec(buf[:0], Spec{Notation: FixedNotation}))
}

// FormatSpec returns x formatted according to the specification.
// Also see [ParseSpec].
func (x Fixed[B, W, F, R]) FormatSpec(spec Spec) string {
	var buf [48]byte
	return string(x.AppendSpec(buf[:0], spec))
}

// AppendSpec appends x formatted according to the specification to dst
// and returns the extended buffer.
//
// Digits are exact and rounded half to even at the requested precision.
// Without a precision, fixed and scientific notations write the fewest
// digits that parse back to the same raw value, general notation writes
// 6 significant digits, and hexadecimal notation writes the exact mantissa.
func (x Fixed[B, W, F, R]) AppendSpec(dst []byte, spec Spec) []byte {
	return appendNumber(dst, x.source(), spec)
}

// PutSpec writes x formatted according to the specification into buf
// and returns the number of bytes written.
// If buf is too small, nothing is written and PutSpec returns an error
// wrapping [ErrBufferTooSmall].
func (x Fixed[B, W, F, R]) PutSpec(buf []byte, spec Spec) (int, error) {
	var tmp [48]byte
	b := x.AppendSpec(tmp[:0], spec)
	if len(b) > len(buf) {
		return 0, Error.Wrap(fmt.Errorf("%v bytes needed, %v available: %w", len(b), len(buf), ErrBufferTooSmall))
	}
	return copy(buf, b), nil
}

// PutText is like [Fixed.PutSpec] but writes the representation
// returned by [Fixed.String].
func (x Fixed[B, W, F, R]) PutText(buf []byte) (int, error) {
	return x.PutSpec(buf, Spec{Notation: FixedNotation})
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Fixed.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Fixed[B, W, F, R]) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// AppendText implements [encoding.TextAppender] interface.
// Also see method [Fixed.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (x Fixed[B, W, F, R]) AppendText(b []byte) ([]byte, error) {
	return x.AppendSpec(b, Spec{Notation: FixedNotation}), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Fixed[B, W, F, R]) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse[Fixed[B, W, F, R]](string(text))
	return err
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -123.25
//	%q:    "-123.25"
//	%f:     -123.25
//	%.3f:   -123.250
//	%e:     -1.2325e+02
//	%g:     -123.25
//	%x:     -1.edp+6
//
// %E, %F, %G, %X are the upper case variants.
// The following format flags can be used with all verbs: '+', ' ', '0', '-', '#'.
//
// Without a precision, %s, %v, %q, %f and %e write the fewest digits that
// parse back to the same raw value, and %g writes 6 significant digits.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Fixed[B, W, F, R]) Format(state fmt.State, verb rune) {
	var sp Spec

	// Flags
	switch {
	case state.Flag('+'):
		sp.Sign = SignPlus
	case state.Flag(' '):
		sp.Sign = SignSpace
	}
	if state.Flag('-') {
		sp.Align = AlignLeft
	}
	sp.Zero = state.Flag('0')
	sp.Alt = state.Flag('#')
	sp.Width, _ = state.Width()
	sp.Prec, sp.HasPrec = state.Precision()

	// Presentation
	switch verb {
	case 'v', 's', 'q', 'f', 'F':
		sp.Notation = FixedNotation
	case 'e', 'E':
		sp.Notation = ScientificNotation
	case 'g', 'G':
		sp.Notation = GeneralNotation
	case 'x', 'X':
		sp.Notation = HexNotation
	}
	sp.Upper = verb == 'E' || verb == 'F' || verb == 'G' || verb == 'X'

	// Writing result
	switch verb {
	case 'v', 's', 'f', 'F', 'e', 'E', 'g', 'G', 'x', 'X':
		state.Write(x.AppendSpec(nil, sp))
	case 'q':
		inner := Spec{Sign: sp.Sign, Notation: sp.Notation, Prec: sp.Prec, HasPrec: sp.HasPrec}
		buf := []byte{'"'}
		buf = x.AppendSpec(buf, inner)
		buf = append(buf, '"')
		sp.Zero = false
		state.Write(pad(nil, 0, buf, sp))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(fixed.Fixed="))
		state.Write([]byte(x.String()))
		state.Write([]byte(")"))
	}
}

// appendNumber appends the raw value s formatted according to sp.
func appendNumber(dst []byte, s source, sp Spec) []byte {
	neg, mag := magnitude(s)

	// Arithmetic sign
	var sign byte
	switch {
	case neg:
		sign = '-'
	case sp.Sign == SignPlus:
		sign = '+'
	case sp.Sign == SignSpace:
		sign = ' '
	}

	// Digits
	var buf [48]byte
	digits := buf[:0]
	if sp.Notation == HexNotation {
		digits = appendHex(digits, mag, s.frac, sp)
	} else {
		d := getBint()
		defer putBint(d)
		expand(d, mag, s.frac)
		digits = appendDecimal(digits, d, mag, s.layout, sp)
	}

	return pad(dst, sign, digits, sp)
}

// magnitude returns the sign and the absolute value of a raw value.
func magnitude(s source) (bool, uint64) {
	if s.signed && int64(s.raw) < 0 {
		return true, -s.raw
	}
	return false, s.raw
}

// expand calculates d = mag * 5^frac, the decimal digits of mag / 2^frac
// without the decimal point, which sits frac digits from the right.
func expand(d *bint, mag uint64, frac uint) {
	p := getBint()
	defer putBint(p)
	p.pow(5, int(frac))
	d.setUint64(mag)
	d.mul(d, p)
}

// pad writes the sign and the digits, filling the field up to sp.Width.
func pad(dst []byte, sign byte, digits []byte, sp Spec) []byte {
	width := len(digits)
	if sign != 0 {
		width++
	}
	fill := sp.Width - width
	if fill <= 0 {
		if sign != 0 {
			dst = append(dst, sign)
		}
		return append(dst, digits...)
	}

	// Zero padding
	if sp.Align == AlignNone && sp.Zero {
		if sign != 0 {
			dst = append(dst, sign)
		}
		for i := 0; i < fill; i++ {
			dst = append(dst, '0')
		}
		return append(dst, digits...)
	}

	// Fill character
	r := sp.Fill
	if r == 0 {
		r = ' '
	}
	lfill, tfill := fill, 0
	switch sp.Align {
	case AlignLeft:
		lfill, tfill = 0, fill
	case AlignCenter:
		lfill = fill / 2
		tfill = fill - lfill
	}
	for i := 0; i < lfill; i++ {
		dst = utf8.AppendRune(dst, r)
	}
	if sign != 0 {
		dst = append(dst, sign)
	}
	dst = append(dst, digits...)
	for i := 0; i < tfill; i++ {
		dst = utf8.AppendRune(dst, r)
	}
	return dst
}

// appendDecimal appends the digits of d / 10^frac in fixed, scientific
// or general notation.
func appendDecimal(dst []byte, d *bint, mag uint64, l layout, sp Spec) []byte {
	frac := int(l.frac)
	switch sp.Notation {
	case FixedNotation:
		prec := sp.Prec
		if !sp.HasPrec {
			prec = shortestFixed(d, mag, l)
		}
		return appendFixed(dst, d, frac, prec, sp.Alt)
	case ScientificNotation:
		prec := sp.Prec
		if !sp.HasPrec {
			prec = shortestScientific(d, mag, l)
		}
		digits, exp := scientificDigits(d, frac, prec)
		return appendScientific(dst, digits, exp, sp.Alt, sp.Upper)
	}

	// General notation
	prec := defaultPrec
	if sp.HasPrec {
		prec = sp.Prec
	}
	if prec == 0 {
		prec = 1
	}
	digits, exp := scientificDigits(d, frac, prec-1)
	if exp < prec && exp >= -4 {
		start := len(dst)
		dst = appendFixed(dst, d, frac, prec-1-exp, sp.Alt)
		if !sp.Alt {
			dst = append(dst[:start], trimFraction(dst[start:])...)
		}
		return dst
	}
	if !sp.Alt {
		digits = bytes.TrimRight(digits, "0")
		if len(digits) == 0 {
			digits = append(digits, '0')
		}
	}
	return appendScientific(dst, digits, exp, sp.Alt, sp.Upper)
}

// trimFraction removes trailing zeros of the fraction and a trailing
// decimal point.
func trimFraction(b []byte) []byte {
	if bytes.IndexByte(b, '.') < 0 {
		return b
	}
	b = bytes.TrimRight(b, "0")
	return bytes.TrimSuffix(b, []byte{'.'})
}

// appendFixed appends d / 10^frac rounded to prec fraction digits.
func appendFixed(dst []byte, d *bint, frac, prec int, alt bool) []byte {
	r := getBint()
	defer putBint(r)
	if prec < frac {
		r.rshHalfEven(d, frac-prec)
	} else {
		r.lsh(d, prec-frac)
	}
	digits := r.appendText(nil)
	if n := prec + 1 - len(digits); n > 0 {
		digits = append(bytes.Repeat([]byte{'0'}, n), digits...)
	}
	pos := len(digits) - prec

	// Integer
	dst = append(dst, digits[:pos]...)

	// Decimal point
	if prec > 0 || alt {
		dst = append(dst, '.')
	}

	// Fraction
	return append(dst, digits[pos:]...)
}

// scientificDigits returns the prec+1 significant digits of d / 10^frac,
// rounded half to even, and the decimal exponent of the first digit.
func scientificDigits(d *bint, frac, prec int) ([]byte, int) {
	if d.sign() == 0 {
		return bytes.Repeat([]byte{'0'}, prec+1), 0
	}
	n := d.prec()
	exp := n - 1 - frac
	r := getBint()
	defer putBint(r)
	if shift := n - (prec + 1); shift > 0 {
		r.rshHalfEven(d, shift)
		if r.prec() > prec+1 {
			// 9.96 -> 10.0
			r.rshHalfEven(r, 1)
			exp++
		}
	} else {
		r.lsh(d, -shift)
	}
	return r.appendText(nil), exp
}

// appendScientific appends digits as d.ddde±xx.
func appendScientific(dst, digits []byte, exp int, alt, upper bool) []byte {
	// Significand
	dst = append(dst, digits[0])
	if len(digits) > 1 || alt {
		dst = append(dst, '.')
	}
	dst = append(dst, digits[1:]...)

	// Exponent
	if upper {
		dst = append(dst, 'E')
	} else {
		dst = append(dst, 'e')
	}
	if exp < 0 {
		dst = append(dst, '-')
		exp = -exp
	} else {
		dst = append(dst, '+')
	}
	if exp < 10 {
		dst = append(dst, '0')
	}
	return strconv.AppendInt(dst, int64(exp), 10)
}

// shortestFixed returns the fewest fraction digits of d / 10^frac
// that parse back to mag.
func shortestFixed(d *bint, mag uint64, l layout) int {
	frac := int(l.frac)
	r := getBint()
	defer putBint(r)
	for prec := 0; prec < frac; prec++ {
		r.rshHalfEven(d, frac-prec)
		if roundTrips(r, prec, mag, l) {
			return prec
		}
	}
	return frac
}

// shortestScientific returns the fewest digits after the first significant
// digit of d / 10^frac that parse back to mag.
func shortestScientific(d *bint, mag uint64, l layout) int {
	if d.sign() == 0 {
		return 0
	}
	frac := int(l.frac)
	n := d.prec()
	r := getBint()
	defer putBint(r)
	for prec := 0; prec < n-1; prec++ {
		shift := n - (prec + 1)
		r.rshHalfEven(d, shift)
		if roundTrips(r, frac-shift, mag, l) {
			return prec
		}
	}
	return n - 1
}

// roundTrips reports whether r / 10^scale parses back to mag in layout l.
func roundTrips(r *bint, scale int, mag uint64, l layout) bool {
	q := getBint()
	defer putBint(q)
	if !scaleDec(q, r, -scale, l.frac, l.round) {
		return false
	}
	return q.bitLen() <= 64 && q.uint64() == mag
}

const (
	lowerhex = "0123456789abcdef"
	upperhex = "0123456789ABCDEF"
)

// appendHex appends mag / 2^frac as h.hhhp±d,
// where the leading hex digit is 1 unless the value is zero.
func appendHex(dst []byte, mag uint64, frac uint, sp Spec) []byte {
	hex := lowerhex
	if sp.Upper {
		hex = upperhex
	}

	// Normalization
	var lead, mant uint64
	var mbits, exp int
	if mag != 0 {
		n := bits.Len64(mag)
		lead = 1
		mbits = n - 1
		mant = mag &^ (1 << mbits)
		exp = mbits - int(frac)
	}
	ndigs := (mbits + 3) / 4
	mant <<= uint(4*ndigs - mbits)

	// Rounding
	if sp.HasPrec && sp.Prec < ndigs {
		shift := uint(4 * (ndigs - sp.Prec))
		q := mant >> shift
		rem := mant - q<<shift
		half := uint64(1) << (shift - 1)
		odd := q&1 == 1
		if sp.Prec == 0 {
			odd = lead&1 == 1
		}
		if rem > half || rem == half && odd {
			q++
			if q>>(4*sp.Prec) != 0 {
				lead++
				q = 0
			}
		}
		mant, ndigs = q, sp.Prec
	}
	if !sp.HasPrec {
		for ndigs > 0 && mant&0xf == 0 {
			mant >>= 4
			ndigs--
		}
	}
	tzeros := 0
	if sp.HasPrec && sp.Prec > ndigs {
		tzeros = sp.Prec - ndigs
	}

	// Significand
	dst = append(dst, hex[lead])
	if ndigs+tzeros > 0 || sp.Alt {
		dst = append(dst, '.')
	}
	for i := ndigs - 1; i >= 0; i-- {
		dst = append(dst, hex[mant>>(4*uint(i))&0xf])
	}
	for i := 0; i < tzeros; i++ {
		dst = append(dst, '0')
	}

	// Exponent
	if sp.Upper {
		dst = append(dst, 'P')
	} else {
		dst = append(dst, 'p')
	}
	if exp < 0 {
		dst = append(dst, '-')
		exp = -exp
	} else {
		dst = append(dst, '+')
	}
	return strconv.AppendInt(dst, int64(exp), 10)
}
