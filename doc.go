// Package vector provides an immutable, fixed-length numeric vector value type.
//
// A Vector is built once and never modified. Every arithmetic operation
// returns a new Vector (or a scalar for Dot), so values can be shared
// freely between goroutines without synchronization.
//
// # Construction
//
//	v := vector.New(1, 2, 3)
//	w := vector.Collect(slices.Values([]float64{0.5, 1.5}))
//
// Collect drains a lazily produced sequence exactly once. Passing a
// single-use sequence twice is the caller's mistake.
//
// # Arithmetic
//
//	sum, err := v.Add(vector.New(4, 5, 6))      // Vector(5, 7, 9)
//	scaled := v.Scale(2)                       // Vector(2, 4, 6)
//	prod, err := v.MulElem(vector.New(4, 5, 6)) // Vector(4, 10, 18)
//	dot, err := v.Dot(vector.New(4, 5, 6))      // 32
//	norm := vector.New(3, 4).Magnitude()        // 5
//
// Operations that combine two vectors return *ErrDimensionMismatch when
// the lengths differ.
//
// # Indexing and Slicing
//
// At returns a raw component; negative indices count from the end.
// Slice takes a Range and follows extended slice semantics: bounds are
// clamped, and steps may be negative.
//
//	v.At(-1)                             // 3
//	v.Slice(vector.Span(0, 2))           // Vector(1, 2)
//	v.Slice(vector.Full().WithStep(-1))  // Vector(3, 2, 1)
//
// # Truthiness
//
// Truthy reports whether any component is non-zero. The empty vector and
// all-zero vectors are not truthy.
package vector
