// Package bounded provides numeric values whose writes are forced back into a
// declared range, by clamping to the nearest bound or by wrapping cyclically.
//
// Reads and arithmetic behave like the underlying numeric type; only Assign
// and the compound mutators built on it (Add, Sub, Mul, Div, Increment,
// Decrement) apply the range. Two variants are provided:
//
//   - Static carries its range in a Bounds policy type, so values with
//     different ranges are different types and cannot be compared.
//   - Dynamic carries its range in fields that may be changed after construction.
//
// Construction always clamps, even for wrapping values. Out-of-range writes are
// never rejected and no operation returns an error.
//
// Neither type is safe for concurrent writes; synchronize externally.
package bounded

import (
	"math"

	"gitlab.com/navyx/nexus/bounded/pkg/util"
)

// Number is any integer or floating-point type.
type Number = util.Number

// fit is the single normalization step every write goes through. lo <= hi must hold.
// A NaN lands on lo.
func fit[T Number](v, lo, hi T, wrap bool) T {
	if math.IsNaN(float64(v)) {
		return lo
	}
	if !wrap {
		return util.Clamp(v, lo, hi)
	}
	if v >= lo && v <= hi {
		return v
	}
	if util.IsIntegral[T]() {
		return wrapIntegral(v, lo, hi)
	}
	return wrapContinuous(v, lo, hi)
}

// wrapIntegral wraps with period hi-lo+1. The arithmetic runs on the two's
// complement bit patterns in uint64, so neither the distance from lo nor the
// period can overflow T (e.g. int8 in [-100, 100] has period 201).
func wrapIntegral[T Number](v, lo, hi T) T {
	period := uint64(hi) - uint64(lo) + 1

	var offset uint64
	if v > hi {
		offset = util.Mod(uint64(v)-uint64(lo), period)
	} else {
		// measure down from lo so unsigned types never go negative
		offset = (period - util.Mod(uint64(lo)-uint64(v), period)) % period
	}

	return T(uint64(lo) + offset)
}

// wrapContinuous wraps with period hi-lo. A zero-width range or an infinite
// input has no meaningful residue and lands on lo.
func wrapContinuous[T Number](v, lo, hi T) T {
	length := hi - lo
	if length == 0 {
		return lo
	}

	w := lo + util.Mod(v-lo, length)
	if math.IsNaN(float64(w)) {
		return lo
	}
	return util.Clamp(w, lo, hi)
}

// normalize maps v linearly onto [0, 1] relative to [lo, hi]. It is computed in
// float64, so a stale value below lo yields a negative fraction even for
// unsigned types. lo == hi gives NaN or ±Inf.
func normalize[T Number](v, lo, hi T) float64 {
	return (float64(v) - float64(lo)) / (float64(hi) - float64(lo))
}
