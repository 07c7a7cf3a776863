package bounded

import "fmt"

// Dynamic is a numeric value of type T whose writes are kept inside a range
// chosen at construction and adjustable later with SetMin and SetMax.
// Whether it clamps or wraps is fixed by NewDynamic.
//
// Changing a bound does not touch the held value: a value left outside the new
// range stays there until the next write. Normalize may then return a fraction
// outside [0, 1].
//
// The zero value is the single point [0, 0] holding 0; build values with NewDynamic.
type Dynamic[T Number] struct {
	value T
	min   T
	max   T
	wrap  bool
}

type dynamicOptions struct {
	wrap bool
}

// DynamicOption configures a Dynamic in NewDynamic.
type DynamicOption func(*dynamicOptions)

// WithWrap makes out-of-range writes wrap cyclically through the range instead of clamping.
func WithWrap() DynamicOption {
	return func(o *dynamicOptions) {
		o.wrap = true
	}
}

// NewDynamic returns a Dynamic over [min, max] holding initial clamped into
// that range, even when WithWrap is given. If min > max, max is raised to min.
func NewDynamic[T Number](initial, min, max T, opts ...DynamicOption) Dynamic[T] {
	options := dynamicOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if min > max {
		max = min
	}

	return Dynamic[T]{
		value: fit(initial, min, max, false),
		min:   min,
		max:   max,
		wrap:  options.wrap,
	}
}

// Min returns the current lower bound.
func (d Dynamic[T]) Min() T {
	return d.min
}

// Max returns the current upper bound.
func (d Dynamic[T]) Max() T {
	return d.max
}

// Wrap reports whether the value was built WithWrap.
func (d Dynamic[T]) Wrap() bool {
	return d.wrap
}

// SetMin changes the lower bound if newMin <= Max(); otherwise it does nothing.
//
// To move both bounds, call the setter that keeps min <= max first. Narrowing
// [0, 10] to [20, 30] needs SetMax(30) then SetMin(20); in the other order
// SetMin(20) is dropped silently.
func (d *Dynamic[T]) SetMin(newMin T) {
	if newMin <= d.max {
		d.min = newMin
	}
}

// SetMax changes the upper bound if Min() <= newMax; otherwise it does nothing.
// See SetMin for ordering.
func (d *Dynamic[T]) SetMax(newMax T) {
	if d.min <= newMax {
		d.max = newMax
	}
}

// Value returns the held value. It is within [Min, Max] unless a bound moved
// past it since the last write.
func (d Dynamic[T]) Value() T {
	return d.value
}

// Assign stores v, clamped into the current range, or wrapped if built WithWrap.
// An in-range v is stored unchanged in either mode.
func (d *Dynamic[T]) Assign(v T) {
	d.value = fit(v, d.min, d.max, d.wrap)
}

// Add assigns d+delta computed in T. Unsigned and fixed-width types overflow
// the way T does before the range is applied.
func (d *Dynamic[T]) Add(delta T) *Dynamic[T] {
	d.Assign(d.value + delta)
	return d
}

// Sub assigns d-delta computed in T and returns the receiver.
func (d *Dynamic[T]) Sub(delta T) *Dynamic[T] {
	d.Assign(d.value - delta)
	return d
}

// Mul assigns d*factor computed in T and returns the receiver.
func (d *Dynamic[T]) Mul(factor T) *Dynamic[T] {
	d.Assign(d.value * factor)
	return d
}

// Div assigns d/divisor. Integer division by zero panics as it does for T.
func (d *Dynamic[T]) Div(divisor T) *Dynamic[T] {
	d.Assign(d.value / divisor)
	return d
}

// Increment adds one and returns the receiver.
func (d *Dynamic[T]) Increment() *Dynamic[T] {
	return d.Add(1)
}

// Decrement subtracts one and returns the receiver.
func (d *Dynamic[T]) Decrement() *Dynamic[T] {
	return d.Sub(1)
}

// IncrementReturningOld adds one and returns a copy taken before the change.
func (d *Dynamic[T]) IncrementReturningOld() Dynamic[T] {
	old := *d
	d.Add(1)
	return old
}

// DecrementReturningOld subtracts one and returns a copy taken before the change.
func (d *Dynamic[T]) DecrementReturningOld() Dynamic[T] {
	old := *d
	d.Sub(1)
	return old
}

// Normalize returns (value-Min)/(Max-Min) against the current bounds.
// Min must differ from Max.
func (d Dynamic[T]) Normalize() float64 {
	return normalize(d.value, d.min, d.max)
}

// Equal reports whether both hold the same value and the same bounds.
// The wrap policy is not compared.
func (d Dynamic[T]) Equal(other Dynamic[T]) bool {
	return d.value == other.value && d.min == other.min && d.max == other.max
}

// String formats the value and its bounds as "value [min, max]".
func (d Dynamic[T]) String() string {
	return fmt.Sprintf("%v [%v, %v]", d.value, d.min, d.max)
}
