package calc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/govalues/fixed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"1", "1"},
		{"+ 1 2", "3"},
		{"- 1.5 2", "-0.5"},
		{"* 10 + 1.25 4.5", "57.5"},
		{"/ 1 4", "0.25"},
		{"% 7.5 2", "1.5"},
		{"* 2 pi", "6.28317"},
		{"e", "2.71828"},
		{"/ 1 3", "0.33333"},
	}
	for _, tt := range tests {
		got, err := Evaluate[fixed.Fixed16_16](tt.expr)
		require.NoError(t, err, "Evaluate(%q)", tt.expr)
		assert.Equal(t, tt.want, got.String(), "Evaluate(%q)", tt.expr)
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := map[string]error{
		"":        nil,
		"+ 1":     nil,
		"1 2":     nil,
		"+ 1 x":   fixed.ErrInvalidArgument,
		"/ 1 0":   ErrDivisionByZero,
		"% 1 0.0": ErrDivisionByZero,
		"40000":   fixed.ErrOutOfRange,
	}
	for expr, target := range tests {
		_, err := Evaluate[fixed.Fixed16_16](expr)
		require.Error(t, err, "Evaluate(%q)", expr)
		if target != nil {
			assert.True(t, errors.Is(err, target), "Evaluate(%q) = %v, want %v", expr, err, target)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		l, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, l.Name())
	}

	_, err := Lookup("12.4")
	require.ErrorIs(t, err, ErrUnknownLayout)
}

func TestNames(t *testing.T) {
	want := []string{"8.8", "8.24", "24.8", "16.16", "8.56", "16.48", "32.32", "48.16", "56.8"}
	assert.Equal(t, want, Names())
}

func TestLayout_Convert(t *testing.T) {
	from, err := Lookup("16.16")
	require.NoError(t, err)
	to, err := Lookup("24.8")
	require.NoError(t, err)

	tests := []struct {
		in, want string
	}{
		{"1.25", "1.25"},
		{"-1.25", "-1.25"},
		{"0.001953125", "0.004"},   // half of 2^-8 rounds away from zero
		{"-0.001953125", "-0.004"}, // and symmetrically for negatives
		{"0.0019", "0"},
	}
	for _, tt := range tests {
		v, err := from.Parse(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, to.Convert(v).String(), "Convert(%q)", tt.in)
	}
}

func TestLayout_Report(t *testing.T) {
	l, err := Lookup("8.8")
	require.NoError(t, err)

	r := l.Report()
	assert.Equal(t, "8.8", r.Layout)
	assert.Equal(t, "-128", r.Lowest)
	assert.Equal(t, "127.996", r.Max)
	assert.Equal(t, "0.004", r.Epsilon)
	assert.Equal(t, "0.5", r.RoundError)
	assert.Equal(t, "3.14", r.Pi)
	assert.Equal(t, "2.72", r.E)
	assert.Equal(t, 15, r.Digits)
	assert.Equal(t, 2, r.Radix)
	assert.True(t, r.IsSigned)
}

func TestEvalAll(t *testing.T) {
	l, err := Lookup("32.32")
	require.NoError(t, err)

	exprs := make([]string, 100)
	for i := range exprs {
		exprs[i] = fmt.Sprintf("* %d 0.5", i)
	}
	exprs[50] = "/ 1 0"

	results, err := EvalAll(context.Background(), l, exprs, 4)
	require.NoError(t, err)
	require.Len(t, results, len(exprs))
	for i, r := range results {
		assert.Equal(t, exprs[i], r.Expr)
		if i == 50 {
			assert.ErrorIs(t, r.Err, ErrDivisionByZero)
			assert.Nil(t, r.Value)
			continue
		}
		require.NoError(t, r.Err)
		want, err := l.Parse(fmt.Sprintf("%v", float64(i)/2))
		require.NoError(t, err)
		assert.Equal(t, want.String(), r.Value.String())
	}
}

func TestEvalAll_Canceled(t *testing.T) {
	l, err := Lookup("16.16")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = EvalAll(ctx, l, []string{"1", "2"}, 1)
	require.ErrorIs(t, err, context.Canceled)
}
