package fixed

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestParseSpec(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want Spec
		}{
			{"", Spec{}},
			{"+", Spec{Sign: SignPlus}},
			{"-", Spec{Sign: SignMinus}},
			{" ", Spec{Sign: SignSpace}},
			{"<", Spec{Align: AlignLeft}},
			{"<<", Spec{Fill: '<', Align: AlignLeft}},
			{"*>6", Spec{Fill: '*', Align: AlignRight, Width: 6}},
			{"é^7", Spec{Fill: 'é', Align: AlignCenter, Width: 7}},
			{"0", Spec{Zero: true}},
			{"06", Spec{Zero: true, Width: 6}},
			{"0>6", Spec{Fill: '0', Align: AlignRight, Width: 6}},
			{".0", Spec{HasPrec: true}},
			{".3f", Spec{Prec: 3, HasPrec: true, Notation: FixedNotation}},
			{"E", Spec{Notation: ScientificNotation, Upper: true}},
			{"#A", Spec{Alt: true, Notation: HexNotation, Upper: true}},
			{"g", Spec{Notation: GeneralNotation}},
			{"*^+#010.3f", Spec{Fill: '*', Align: AlignCenter, Sign: SignPlus, Alt: true, Zero: true, Width: 10, Prec: 3, HasPrec: true, Notation: FixedNotation}},
		}
		for _, tt := range tests {
			got, err := ParseSpec(tt.s)
			if err != nil {
				t.Errorf("ParseSpec(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseSpec(%q) = %+v, want %+v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"no precision":   ".",
			"bad type":       "d",
			"two types":      "ff",
			"brace fill":     "{<5",
			"brace fill 2":   "}>5",
			"width":          "10000000",
			"precision":      ".10000000",
			"type first":     "f.2",
			"two precisions": "5.5.5",
			"bad fill":       "\xff<5",
		}
		for name, s := range tests {
			_, err := ParseSpec(s)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("%v: ParseSpec(%q) did not fail with %v: %v", name, s, ErrInvalidArgument, err)
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseSpec(\".\") did not panic")
			}
		}()
		MustParseSpec(".")
	})
}

func TestFixed_String(t *testing.T) {
	t.Run("fixed16_16", func(t *testing.T) {
		tests := []struct {
			raw  int32
			want string
		}{
			{0, "0"},
			{1, "0.00002"},
			{-1, "-0.00002"},
			{65536, "1"},
			{6554, "0.1"},
			{21845, "0.33333"},
			{205887, "3.14159"},
			{8065024, "123.0625"},
			{math.MaxInt32, "32767.99998"},
			{math.MinInt32, "-32768"},
		}
		for _, tt := range tests {
			x := FromRaw[Fixed16_16](tt.raw)
			got := x.String()
			if got != tt.want {
				t.Errorf("FromRaw(%v).String() = %q, want %q", tt.raw, got, tt.want)
			}
		}
	})

	t.Run("other layouts", func(t *testing.T) {
		tests := []struct {
			got, want string
		}{
			{Max[Fixed8_8]().String(), "127.996"},
			{Min[Fixed8_8]().String(), "-128"},
			{Epsilon[Fixed8_8]().String(), "0.004"},
			{Epsilon[Fixed8_24]().String(), "0.00000006"},
			{Max[Fixed8_24]().String(), "127.99999994"},
			{Epsilon[Fixed32_32]().String(), "0.0000000002"},
			{Max[Fixed32_32]().String(), "2147483647.9999999998"},
			{Min[Fixed32_32]().String(), "-2147483648"},
			{Epsilon[Fixed8_56]().String(), "0.00000000000000001"},
			{Pi[Fixed8_56]().String(), "3.14159265358979324"},
			{Max[sfrac7]().String(), "0.99"},
			{Min[sfrac7]().String(), "-1"},
			{Max[ufrac8]().String(), "0.996"},
		}
		for _, tt := range tests {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		}
	})
}

func TestFixed_FormatSpec(t *testing.T) {
	tests := []struct {
		x, spec, want string
	}{
		// Basic
		{"0", "", "0"},
		{"0", "+", "+0"},
		{"1", "", "1"},
		{"1", "+", "+1"},
		{"42", "", "42"},
		{"42", "+", "+42"},
		{"123", "", "123"},
		{"123", "+", "+123"},
		{"123.25", "", "123.25"},
		{"123.25", "+", "+123.25"},
		{"123.125", "", "123.125"},
		{"123.125", "+", "+123.125"},
		{"123.0625", "", "123.062"},
		{"123.0625", "+", "+123.062"},

		// Width
		{"0", "0", "0"},
		{"0", "1", "0"},
		{"0", "2", " 0"},
		{"0", "3", "  0"},
		{"0", "4", "   0"},
		{"0", "5", "    0"},
		{"0", "6", "     0"},

		// Fill and alignment
		{"0", "6", "     0"},
		{"1", "6", "     1"},
		{"42", "6", "    42"},
		{"123", "6", "   123"},
		{"-1", "6", "    -1"},
		{"-42", "6", "   -42"},
		{"0", "*>6", "*****0"},
		{"1", "*>6", "*****1"},
		{"42", "*>6", "****42"},
		{"123", "*>6", "***123"},
		{"-1", "*>6", "****-1"},
		{"-42", "*>6", "***-42"},
		{"0", "x>6", "xxxxx0"},
		{"-42", "x>6", "xxx-42"},
		{"0", "+>6", "+++++0"},
		{"-1", "+>6", "++++-1"},
		{"0", ">>6", ">>>>>0"},
		{"-42", ">>6", ">>>-42"},
		{"0", "0>6", "000000"},
		{"1", "0>6", "000001"},
		{"42", "0>6", "000042"},
		{"123", "0>6", "000123"},
		{"-1", "0>6", "0000-1"},
		{"-42", "0>6", "000-42"},
		{"0", "<6", "0     "},
		{"1", "<6", "1     "},
		{"42", "<6", "42    "},
		{"123", "<6", "123   "},
		{"-1", "<6", "-1    "},
		{"-42", "<6", "-42   "},
		{"0", "^6", "  0   "},
		{"1", "^6", "  1   "},
		{"42", "^6", "  42  "},
		{"123", "^6", " 123  "},
		{"-1", "^6", "  -1  "},
		{"-42", "^6", " -42  "},
		{"123", "^2", "123"},
		{"12345", "^2", "12345"},
		{"12345", "^4", "12345"},
		{"1.5", "é^7", "éé1.5éé"},
		{"1.5", "=^9.2f", "==1.50==="},

		// Sign
		{"1", "", "1"},
		{"1", "+", "+1"},
		{"1", "-", "1"},
		{"1", " ", " 1"},
		{"-1", "", "-1"},
		{"-1", "+", "-1"},
		{"-1", "-", "-1"},
		{"-1", " ", "-1"},

		// Zero padding
		{"1", "02", "01"},
		{"-1", "02", "-1"},
		{"1", "03", "001"},
		{"-1", "03", "-01"},
		{"1", "04", "0001"},
		{"-1", "04", "-001"},
		{"1", "06", "000001"},
		{"-1", "06", "-00001"},
		{"1", "<02", "1 "},
		{"-1", "<02", "-1"},
		{"1", "<06", "1     "},
		{"-1", "<06", "-1    "},
		{"1.5", "+08.3f", "+001.500"},

		// Fixed notation
		{"123.0625", "f", "123.0625"},
		{"123.0625", ".2f", "123.06"},
		{"123.0625", ".3f", "123.062"},
		{"123.1875", ".3f", "123.188"},
		{"0.25", ".1f", "0.2"},
		{"0.75", ".1f", "0.8"},
		{"2.5", ".0f", "2"},
		{"3.5", ".0f", "4"},
		{"2", "#.0f", "2."},
		{"-0.25", ".1f", "-0.2"},
		{"0.1", ".20f", "0.10000610351562500000"},
		{"1.5", " f", " 1.5"},

		// Scientific notation
		{"123.25", "e", "1.2325e+02"},
		{"123.25", "E", "1.2325E+02"},
		{"-123.25", "e", "-1.2325e+02"},
		{"123.25", ".2e", "1.23e+02"},
		{"123.25", ".6e", "1.232500e+02"},
		{"0", "e", "0e+00"},
		{"0", ".3e", "0.000e+00"},
		{"0.1", "e", "1e-01"},
		{"0.00002", "e", "2e-05"},
		{"9.96", ".1e", "1.0e+01"},
		{"2", "#e", "2.e+00"},

		// General notation
		{"0.00002", "g", "1.52588e-05"},
		{"0.00002", "G", "1.52588E-05"},
		{"0.0001", "g", "0.000106812"},
		{"123.25", ".3g", "123"},
		{"123.25", ".2g", "1.2e+02"},
		{"123.25", ".0g", "1e+02"},
		{"1", "#g", "1.00000"},
		{"2", "#.3g", "2.00"},
		{"0.1", ".20g", "0.100006103515625"},
		{"32767.99998", "", "32768"},
		{"-32768", "", "-32768"},

		// Hexadecimal notation
		{"1.5", "a", "1.8p+0"},
		{"1.5", "A", "1.8P+0"},
		{"1.5", ".3a", "1.800p+0"},
		{"1.96875", ".1a", "2.0p+0"},
		{"1.96875", "a", "1.f8p+0"},
		{"0", "a", "0p+0"},
		{"1", "a", "1p+0"},
		{"1", "#a", "1.p+0"},
		{"-123.25", "a", "-1.edp+6"},
		{"0.00002", "a", "1p-16"},
		{"0.5", "a", "1p-1"},
		{"1.5", "+10a", "   +1.8p+0"},
	}
	for _, tt := range tests {
		x := MustParse[Fixed16_16](tt.x)
		spec := MustParseSpec(tt.spec)
		got := x.FormatSpec(spec)
		if got != tt.want {
			t.Errorf("%q.FormatSpec(%q) = %q, want %q", x, tt.spec, got, tt.want)
		}
		if got := string(x.AppendSpec([]byte("x"), spec)); got != "x"+tt.want {
			t.Errorf("%q.AppendSpec(x, %q) = %q, want %q", x, tt.spec, got, "x"+tt.want)
		}
	}

	t.Run("wide", func(t *testing.T) {
		tests := []struct {
			x, spec, want string
		}{
			{"1234567", "", "1.23457e+06"},
			{"2147483647.9999999998", ".32f", "2147483647.99999999976716935634613037109375"},
			{"2147483647.9999999998", "e", "2.1474836479999999998e+09"},
			{"-2147483648", "a", "-1p+31"},
		}
		for _, tt := range tests {
			x := MustParse[Fixed32_32](tt.x)
			got := x.FormatSpec(MustParseSpec(tt.spec))
			if got != tt.want {
				t.Errorf("%q.FormatSpec(%q) = %q, want %q", x, tt.spec, got, tt.want)
			}
		}
		x := Epsilon[Fixed8_24]()
		if got, want := x.FormatSpec(Spec{}), "5.96046e-08"; got != want {
			t.Errorf("%q.FormatSpec({}) = %q, want %q", x, got, want)
		}
	})
}

func TestFixed_PutSpec(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, want string
		}{
			{"0", "0"},
			{"1", "1"},
			{"-1.25", "-1.25"},
		}
		for _, tt := range tests {
			x := MustParse[Fixed16_16](tt.x)
			var buf [20]byte
			n, err := x.PutText(buf[:])
			if err != nil {
				t.Errorf("%q.PutText() failed: %v", x, err)
				continue
			}
			if got := string(buf[:n]); got != tt.want {
				t.Errorf("%q.PutText() = %q, want %q", x, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		x := MustParse[Fixed16_16]("1.25")
		var buf [1]byte
		n, err := x.PutText(buf[:])
		if !errors.Is(err, ErrBufferTooSmall) {
			t.Errorf("%q.PutText() did not fail with %v: %v", x, ErrBufferTooSmall, err)
		}
		if n != 0 || buf[0] != 0 {
			t.Errorf("%q.PutText() wrote %v bytes", x, n)
		}
		_, err = x.PutSpec(make([]byte, 5), MustParseSpec(".4f"))
		if !errors.Is(err, ErrBufferTooSmall) {
			t.Errorf("%q.PutSpec(.4f) did not fail with %v: %v", x, ErrBufferTooSmall, err)
		}
	})
}

func TestFixed_MarshalText(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"0", "0"},
		{"-1.25", "-1.25"},
		{"0.1", "0.1"},
	}
	for _, tt := range tests {
		x := MustParse[Fixed16_16](tt.x)
		got, err := x.MarshalText()
		if err != nil {
			t.Errorf("%q.MarshalText() failed: %v", x, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("%q.MarshalText() = %q, want %q", x, got, tt.want)
		}
		got, err = x.AppendText([]byte("n="))
		if err != nil {
			t.Errorf("%q.AppendText() failed: %v", x, err)
			continue
		}
		if string(got) != "n="+tt.want {
			t.Errorf("%q.AppendText() = %q, want %q", x, got, "n="+tt.want)
		}
	}
}

func TestFixed_Format(t *testing.T) {
	tests := []struct {
		x, format, want string
	}{
		// %v verb
		{"-123.25", "%v", "-123.25"},
		{"1.5", "%+v", "+1.5"},
		{"1.5", "% v", " 1.5"},
		{"123.0625", "%v", "123.0625"},
		{"1.5", "%6v", "   1.5"},
		{"1.5", "%-6v|", "1.5   |"},
		{"-1.5", "%07v", "-0001.5"},

		// %s verb
		{"-123.25", "%s", "-123.25"},
		{"0.1", "%s", "0.1"},

		// %q verb
		{"-123.25", "%q", "\"-123.25\""},
		{"1.5", "%+q", "\"+1.5\""},
		{"1.5", "%7q", "  \"1.5\""},
		{"1.5", "%-7q|", "\"1.5\"  |"},
		{"1.5", "%07q", "  \"1.5\""},

		// %f verb
		{"-123.25", "%f", "-123.25"},
		{"-123.25", "%.3f", "-123.250"},
		{"-123.25", "%F", "-123.25"},
		{"123.25", "%8.2f", "  123.25"},
		{"123.25", "%-8.1f|", "123.2   |"},
		{"-1.5", "%08.2f", "-0001.50"},
		{"0.5", "%.0f", "0"},
		{"2", "%#.0f", "2."},

		// %e verb
		{"-123.25", "%e", "-1.2325e+02"},
		{"-123.25", "%E", "-1.2325E+02"},
		{"123.25", "%.2e", "1.23e+02"},
		{"0", "%e", "0e+00"},

		// %g verb
		{"-123.25", "%g", "-123.25"},
		{"-123.25", "%G", "-123.25"},
		{"123.0625", "%g", "123.062"},
		{"0.00002", "%g", "1.52588e-05"},
		{"0.00002", "%G", "1.52588E-05"},
		{"1", "%#g", "1.00000"},

		// %x verb
		{"-123.25", "%x", "-1.edp+6"},
		{"-123.25", "%X", "-1.EDP+6"},
		{"0", "%x", "0p+0"},
		{"1.96875", "%.1x", "2.0p+0"},

		// Bad verb
		{"1.5", "%d", "%!d(fixed.Fixed=1.5)"},
		{"-1.5", "%c", "%!c(fixed.Fixed=-1.5)"},
	}
	for _, tt := range tests {
		x := MustParse[Fixed16_16](tt.x)
		got := fmt.Sprintf(tt.format, x)
		if got != tt.want {
			t.Errorf("Sprintf(%q, %q) = %q, want %q", tt.format, tt.x, got, tt.want)
		}
	}
}

func FuzzFixed_FormatSpec(f *testing.F) {
	specs := []string{"", "f", ".3f", "e", ".2e", "g", ".10g", "a", ".2a", "+010.4f", "*^12e"}
	for _, x := range corpus {
		for _, s := range specs {
			f.Add(int32(x), s)
		}
	}

	f.Fuzz(
		func(t *testing.T, raw int32, s string) {
			spec, err := ParseSpec(s)
			if err != nil {
				t.Skip()
				return
			}
			if spec.Width > 1000 || spec.Prec > 1000 {
				t.Skip()
				return
			}
			x := FromRaw[Fixed16_16](raw)
			got := x.FormatSpec(spec)

			// Formatting does not depend on the destination buffer.
			if want := string(x.AppendSpec(make([]byte, 0, 1), spec)); got != want {
				t.Errorf("%q.FormatSpec(%q) = %q, whereas AppendSpec = %q", x, s, got, want)
			}
			if len([]rune(got)) < spec.Width {
				t.Errorf("%q.FormatSpec(%q) = %q, shorter than %v", x, s, got, spec.Width)
			}
		},
	)
}
