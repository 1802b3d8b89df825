package calc

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/govalues/fixed"
)

// ErrUnknownLayout is returned when a layout name is not registered.
var ErrUnknownLayout = errors.New("unknown layout")

// Value is a number in one of the registered layouts.
type Value interface {
	fmt.Stringer
	FormatSpec(spec fixed.Spec) string
	// FixedPoint returns the raw value and the number of fraction bits.
	FixedPoint() (raw int64, frac uint)
}

// Layout is a fixed-point type that can be selected at run time.
type Layout interface {
	// Name returns the layout name, such as "16.16".
	Name() string
	// Parse converts a string in general notation to a value.
	Parse(s string) (Value, error)
	// Eval evaluates an expression, see [Evaluate].
	Eval(expr string) (Value, error)
	// Convert rescales a value of any layout to this layout.
	Convert(v Value) Value
	// Report describes the numeric limits of the layout.
	Report() Report
}

// Report is the numeric profile of a layout.
type Report struct {
	Layout       string `yaml:"layout"`
	Lowest       string `yaml:"lowest"`
	Max          string `yaml:"max"`
	Epsilon      string `yaml:"epsilon"`
	RoundError   string `yaml:"round_error"`
	Pi           string `yaml:"pi"`
	E            string `yaml:"e"`
	fixed.Limits `yaml:",inline"`
}

// value wraps a fixed-point number with a signed base type.
type value[B fixed.Signed, W fixed.Wide[B], F fixed.Frac[B]] struct {
	x fixed.Fixed[B, W, F, fixed.Round]
}

func (v value[B, W, F]) String() string {
	return v.x.String()
}

func (v value[B, W, F]) FormatSpec(spec fixed.Spec) string {
	return v.x.FormatSpec(spec)
}

func (v value[B, W, F]) FixedPoint() (int64, uint) {
	return int64(v.x.Raw()), uint(v.x.FractionBits())
}

// layout implements Layout for fixed.Fixed[B, W, F, fixed.Round].
type layout[B fixed.Signed, W fixed.Wide[B], F fixed.Frac[B]] struct {
	name string
}

func (l layout[B, W, F]) Name() string {
	return l.name
}

func (l layout[B, W, F]) Parse(s string) (Value, error) {
	x, err := fixed.Parse[fixed.Fixed[B, W, F, fixed.Round]](s)
	if err != nil {
		return nil, err
	}
	return value[B, W, F]{x: x}, nil
}

func (l layout[B, W, F]) Eval(expr string) (Value, error) {
	x, err := Evaluate[fixed.Fixed[B, W, F, fixed.Round]](expr)
	if err != nil {
		return nil, err
	}
	return value[B, W, F]{x: x}, nil
}

func (l layout[B, W, F]) Convert(v Value) Value {
	raw, frac := v.FixedPoint()
	return value[B, W, F]{x: fixed.FromFixedPoint[fixed.Fixed[B, W, F, fixed.Round]](raw, frac)}
}

func (l layout[B, W, F]) Report() Report {
	return report[fixed.Fixed[B, W, F, fixed.Round]](l.name)
}

func report[T fixed.Number[T]](name string) Report {
	return Report{
		Layout:     name,
		Lowest:     fixed.Lowest[T]().String(),
		Max:        fixed.Max[T]().String(),
		Epsilon:    fixed.Epsilon[T]().String(),
		RoundError: fixed.RoundError[T]().String(),
		Pi:         fixed.Pi[T]().String(),
		E:          fixed.E[T]().String(),
		Limits:     fixed.LimitsOf[T](),
	}
}

var layouts = map[string]Layout{
	"8.8":   layout[int16, fixed.Int32[int16], fixed.F8[int16]]{name: "8.8"},
	"16.16": layout[int32, fixed.Int64[int32], fixed.F16[int32]]{name: "16.16"},
	"24.8":  layout[int32, fixed.Int64[int32], fixed.F8[int32]]{name: "24.8"},
	"8.24":  layout[int32, fixed.Int64[int32], fixed.F24[int32]]{name: "8.24"},
	"56.8":  layout[int64, fixed.Int128[int64], fixed.F8[int64]]{name: "56.8"},
	"48.16": layout[int64, fixed.Int128[int64], fixed.F16[int64]]{name: "48.16"},
	"32.32": layout[int64, fixed.Int128[int64], fixed.F32[int64]]{name: "32.32"},
	"16.48": layout[int64, fixed.Int128[int64], fixed.F48[int64]]{name: "16.48"},
	"8.56":  layout[int64, fixed.Int128[int64], fixed.F56[int64]]{name: "8.56"},
}

// Lookup returns the layout with the given name.
func Lookup(name string) (Layout, error) {
	l, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of %s", ErrUnknownLayout, name, strings.Join(Names(), ", "))
	}
	return l, nil
}

// Names returns the names of all layouts, narrowest base type first.
func Names() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		bi, fi := split(names[i])
		bj, fj := split(names[j])
		if bi+fi != bj+fj {
			return bi+fi < bj+fj
		}
		return fi < fj
	})
	return names
}

// split returns the integral and fraction bits of a layout name.
func split(name string) (int, int) {
	var i, f int
	fmt.Sscanf(name, "%d.%d", &i, &f)
	return i, f
}
