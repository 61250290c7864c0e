// Package saturate implements int32 arithmetic that clamps at the range
// limits instead of wrapping.
package saturate

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrDivideByZero is returned by Div and Mod for a zero divisor.
var ErrDivideByZero = errors.New("divide by zero")

func between[T constraints.Ordered](v, lo, hi T) T {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return v
}

// Clamp narrows a 64-bit intermediate to the int32 range.
func Clamp(v int64) int32 {
	return int32(between(v, math.MinInt32, math.MaxInt32))
}

// ClampFloat truncates f toward zero and narrows it to the int32 range.
// NaN maps to 0.
func ClampFloat(f float64) int32 {
	if math.IsNaN(f) {
		return 0
	}
	return int32(between(f, math.MinInt32, math.MaxInt32))
}

func Add(a, b int32) int32 { return Clamp(int64(a) + int64(b)) }
func Sub(a, b int32) int32 { return Clamp(int64(a) - int64(b)) }
func Mul(a, b int32) int32 { return Clamp(int64(a) * int64(b)) }

// Div truncates toward zero.
func Div(a, b int32) (int32, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return Clamp(int64(a) / int64(b)), nil
}

// Mod takes the sign of the dividend, matching Div.
func Mod(a, b int32) (int32, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return Clamp(int64(a) % int64(b)), nil
}

// Pow raises a to the power b. A negative exponent gives the real result
// truncated toward zero, so only bases 1, -1 and 0 produce non-zero values
// (0 to a negative power saturates to the maximum).
func Pow(a, b int32) int32 {
	if b < 0 {
		switch a {
		case 1:
			return 1
		case -1:
			if b%2 == 0 {
				return 1
			}
			return -1
		case 0:
			return math.MaxInt32
		}
		return 0
	}

	base := int64(a)
	if base < 0 {
		base = -base
	}
	var result int64
	switch base {
	case 0:
		if b == 0 {
			return 1
		}
		return 0
	case 1:
		result = 1
	default:
		result = 1
		for i := int32(0); i < b; i++ {
			result *= base
			if result > math.MaxInt32 {
				break
			}
		}
	}
	if a < 0 && b%2 == 1 {
		result = -result
	}
	return Clamp(result)
}
