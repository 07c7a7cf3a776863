package bounded

import "fmt"

// Bounds fixes the range and wrap policy of a Static value at compile time.
// Implementations are zero-size types whose methods return constants:
//
//	type Percent struct{}
//
//	func (Percent) Min() int   { return 0 }
//	func (Percent) Max() int   { return 100 }
//	func (Percent) Wrap() bool { return false }
//
// Min and Max must be representable in the value type. A policy with
// Max() < Min() is treated as the single point [Min(), Min()].
type Bounds interface {
	Min() int
	Max() int
	Wrap() bool
}

// Static is a numeric value of type T whose writes are kept inside the range of B.
//
// B is part of the type, so Static[int, Percent] and Static[int, Semitone] are
// distinct types and cannot be compared or assigned to each other. Go's ==
// compares the held values.
//
// The zero value holds 0, which may lie outside B; build values with NewStatic.
type Static[T Number, B Bounds] struct {
	value T
}

// NewStatic returns a Static holding initial clamped into B, regardless of B.Wrap().
func NewStatic[T Number, B Bounds](initial T) Static[T, B] {
	lo, hi := staticRange[T, B]()
	return Static[T, B]{value: fit(initial, lo, hi, false)}
}

func staticRange[T Number, B Bounds]() (T, T) {
	var b B
	return T(b.Min()), T(max(b.Min(), b.Max()))
}

// Min returns the lower bound of B converted to T.
func (s Static[T, B]) Min() T {
	lo, _ := staticRange[T, B]()
	return lo
}

// Max returns the upper bound of B converted to T.
func (s Static[T, B]) Max() T {
	_, hi := staticRange[T, B]()
	return hi
}

// Wrap reports whether out-of-range writes wrap instead of clamping.
func (s Static[T, B]) Wrap() bool {
	var b B
	return b.Wrap()
}

// Value returns the held value. It is always within [Min, Max].
func (s Static[T, B]) Value() T {
	return s.value
}

// Assign stores v, clamped into range, or wrapped if B.Wrap() is set.
// An in-range v is stored unchanged in either mode.
func (s *Static[T, B]) Assign(v T) {
	lo, hi := staticRange[T, B]()
	s.value = fit(v, lo, hi, s.Wrap())
}

// Add assigns s+delta computed in T. Unsigned and fixed-width types overflow
// the way T does before the range is applied.
func (s *Static[T, B]) Add(delta T) *Static[T, B] {
	s.Assign(s.value + delta)
	return s
}

// Sub assigns s-delta computed in T and returns the receiver.
func (s *Static[T, B]) Sub(delta T) *Static[T, B] {
	s.Assign(s.value - delta)
	return s
}

// Mul assigns s*factor computed in T and returns the receiver.
func (s *Static[T, B]) Mul(factor T) *Static[T, B] {
	s.Assign(s.value * factor)
	return s
}

// Div assigns s/divisor. Integer division by zero panics as it does for T.
func (s *Static[T, B]) Div(divisor T) *Static[T, B] {
	s.Assign(s.value / divisor)
	return s
}

// Increment adds one and returns the receiver.
func (s *Static[T, B]) Increment() *Static[T, B] {
	return s.Add(1)
}

// Decrement subtracts one and returns the receiver.
func (s *Static[T, B]) Decrement() *Static[T, B] {
	return s.Sub(1)
}

// IncrementReturningOld adds one and returns a copy taken before the change.
func (s *Static[T, B]) IncrementReturningOld() Static[T, B] {
	old := *s
	s.Add(1)
	return old
}

// DecrementReturningOld subtracts one and returns a copy taken before the change.
func (s *Static[T, B]) DecrementReturningOld() Static[T, B] {
	old := *s
	s.Sub(1)
	return old
}

// Normalize returns (value-Min)/(Max-Min). Min must differ from Max.
func (s Static[T, B]) Normalize() float64 {
	lo, hi := staticRange[T, B]()
	return normalize(s.value, lo, hi)
}

// Equal reports whether both hold the same value.
func (s Static[T, B]) Equal(other Static[T, B]) bool {
	return s.value == other.value
}

// String formats the held value.
func (s Static[T, B]) String() string {
	return fmt.Sprint(s.value)
}
