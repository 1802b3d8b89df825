// Package calc evaluates arithmetic expressions over fixed-point layouts.
package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/fixed"
)

// ErrDivisionByZero is returned when an expression divides by zero.
var ErrDivisionByZero = errors.New("division by zero")

// Evaluate evaluates an expression written in prefix (Polish) notation,
// such as "* 10 + 1.25 4.5".
// Operands are parsed with [fixed.Parse], and the names "pi" and "e"
// stand for the mathematical constants.
// Supported operators are +, -, *, / and %.
func Evaluate[T fixed.Number[T]](input string) (T, error) {
	var z T
	tokens, err := parseTokens(input)
	if err != nil {
		return z, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens[T](tokens)
	if err != nil {
		return z, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return z, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

func processTokens[T fixed.Number[T]](tokens []string) ([]T, error) {
	stack := make([]T, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/", "%":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator[T fixed.Number[T]](stack []T, token string) ([]T, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result T
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/", "%":
		if right.IsZero() {
			return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, ErrDivisionByZero)
		}
		if token == "/" {
			result = left.Quo(right)
		} else {
			result = left.Rem(right)
		}
	}
	return append(stack, result), nil
}

func processOperand[T fixed.Number[T]](stack []T, token string) ([]T, error) {
	var x T
	switch token {
	case "pi":
		x = fixed.Pi[T]()
	case "e":
		x = fixed.E[T]()
	default:
		var err error
		x, err = fixed.Parse[T](token)
		if err != nil {
			return nil, err
		}
	}
	return append(stack, x), nil
}
