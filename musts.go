package fixed

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding
// fixed-point numbers.
func MustParse[T Number[T]](s string) T {
	x, err := Parse[T](s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// MustParseNotation is like [ParseNotation] but panics if the string cannot
// be parsed.
func MustParseNotation[T Number[T]](s string, n Notation) T {
	x, err := ParseNotation[T](s, n)
	if err != nil {
		panic(fmt.Sprintf("MustParseNotation(%q, %c) failed: %v", s, n, err))
	}
	return x
}

// MustParseSpec is like [ParseSpec] but panics if the specification is
// malformed.
func MustParseSpec(s string) Spec {
	sp, err := ParseSpec(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseSpec(%q) failed: %v", s, err))
	}
	return sp
}
