package util

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsIntegral reports whether T is an integer type.
func IsIntegral[T Number]() bool {
	one, two := T(1), T(2)
	return one/two == 0
}

// Mod returns x modulo length with floored semantics: the result r satisfies
// x = k*length + r for some integer k and 0 <= r < length, for either sign of x.
// Go's % (and math.Mod) keep the sign of x instead, so -1 % 12 is -1 while Mod(-1, 12) is 11.
//
// Mod panics if length <= 0.
func Mod[T Number](x, length T) T {
	if length <= 0 {
		panic("util.Mod: non-positive length")
	}

	var r T
	if IsIntegral[T]() {
		// integer division truncates toward zero
		r = x - (x/length)*length
	} else {
		r = T(math.Mod(float64(x), float64(length)))
	}

	if r < 0 {
		r += length
	}
	// -tiny + length can round up to length for floats
	if r >= length {
		r = 0
	}
	return r
}
