package fixed

import (
	"math/big"
	"testing"
)

func mustBint(s string) *bint {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid integer " + s)
	}
	return (*bint)(z)
}

func TestBint_RshHalfEven(t *testing.T) {
	tests := []struct {
		x     string
		shift int
		want  string
	}{
		{"0", 3, "0"},
		{"12345", 0, "12345"},
		{"12345", -1, "12345"},
		{"12345", 1, "1234"},
		{"12355", 1, "1236"},
		{"12346", 1, "1235"},
		{"15", 1, "2"},
		{"25", 1, "2"},
		{"250001", 5, "3"},
		{"4", 1, "0"},
		{"5", 1, "0"},
		{"6", 1, "1"},
		{"99999999999999999999999999999999999999999999", 44, "1"},
		{"50000000000000000000000000000000000000000000", 44, "0"},
	}
	for _, tt := range tests {
		z := getBint()
		z.rshHalfEven(mustBint(tt.x), tt.shift)
		if got := string(z.appendText(nil)); got != tt.want {
			t.Errorf("rshHalfEven(%v, %v) = %v, want %v", tt.x, tt.shift, got, tt.want)
		}
		putBint(z)
	}
}

func TestBint_QuoHalfUp(t *testing.T) {
	tests := []struct {
		x, y  string
		round bool
		want  string
	}{
		{"7", "2", true, "4"},
		{"7", "2", false, "3"},
		{"5", "4", true, "1"},
		{"6", "4", true, "2"},
		{"1", "3", true, "0"},
		{"2", "3", true, "1"},
		{"2", "3", false, "0"},
		{"0", "3", true, "0"},
	}
	for _, tt := range tests {
		var z bint
		z.quoHalfUp(mustBint(tt.x), mustBint(tt.y), tt.round)
		if got := string(z.appendText(nil)); got != tt.want {
			t.Errorf("quoHalfUp(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.round, got, tt.want)
		}
	}
}

func TestBint_Prec(t *testing.T) {
	tests := []struct {
		x    string
		want int
	}{
		{"0", 0},
		{"1", 1},
		{"9", 1},
		{"10", 2},
		{"99999", 5},
		{"100000", 6},
		{"10000000000000000000000000000000000000000", 41},
		{"123456789012345678901234567890123456789012345", 45},
	}
	for _, tt := range tests {
		if got := mustBint(tt.x).prec(); got != tt.want {
			t.Errorf("prec(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestBint_Lsh(t *testing.T) {
	tests := []struct {
		x     string
		shift int
		want  string
	}{
		{"0", 5, "0"},
		{"1", 0, "1"},
		{"125", 3, "125000"},
		{"7", 45, "7000000000000000000000000000000000000000000000"},
	}
	for _, tt := range tests {
		var z bint
		z.lsh(mustBint(tt.x), tt.shift)
		if got := string(z.appendText(nil)); got != tt.want {
			t.Errorf("lsh(%v, %v) = %v, want %v", tt.x, tt.shift, got, tt.want)
		}
	}

	// Aliased operands.
	z := mustBint("12")
	z.mul(z, z)
	if got := string(z.appendText(nil)); got != "144" {
		t.Errorf("mul(z, z) = %v, want 144", got)
	}
	z.fsa(z, 10, 5)
	if got := string(z.appendText(nil)); got != "1445" {
		t.Errorf("fsa(z, 10, 5) = %v, want 1445", got)
	}
}
