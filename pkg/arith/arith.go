// Package arith provides the integer operators exercised by the test suite,
// along with overflow-checked variants and a lookup table used by the CLI.
package arith

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned by the checked operators when the result does not fit in an int.
var ErrOverflow = errors.New("integer overflow")

// Add returns the sum of two integers.
func Add(a, b int) int {
	return a + b
}

// Subtract returns the difference of two integers.
func Subtract(a, b int) int {
	return a - b
}

// Multiply returns the product of two integers.
func Multiply(a, b int) int {
	return a * b
}

// AddChecked returns a + b, or ErrOverflow if the sum wraps.
func AddChecked(a, b int) (int, error) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, fmt.Errorf("add %d %d: %w", a, b, ErrOverflow)
	}
	return c, nil
}

// SubtractChecked returns a - b, or ErrOverflow if the difference wraps.
func SubtractChecked(a, b int) (int, error) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, fmt.Errorf("subtract %d %d: %w", a, b, ErrOverflow)
	}
	return c, nil
}

// MultiplyChecked returns a * b, or ErrOverflow if the product wraps.
func MultiplyChecked(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	// MinInt * -1 wraps back to MinInt, so the division check below misses it.
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, fmt.Errorf("multiply %d %d: %w", a, b, ErrOverflow)
	}
	c := a * b
	if c/b != a {
		return 0, fmt.Errorf("multiply %d %d: %w", a, b, ErrOverflow)
	}
	return c, nil
}
