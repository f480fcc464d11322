package vector

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/hupe1980/vector/internal/kernel"
)

// Number is the constraint satisfied by vector component types.
type Number = kernel.Number

// Vector is an immutable, fixed-length sequence of numeric components.
//
// The zero value is an empty vector.
type Vector[T Number] struct {
	components []T
}

// New creates a Vector holding a copy of components.
func New[T Number](components ...T) Vector[T] {
	return Vector[T]{components: slices.Clone(components)}
}

// Collect creates a Vector by draining seq. The sequence must be finite.
func Collect[T Number](seq iter.Seq[T]) Vector[T] {
	return Vector[T]{components: slices.Collect(seq)}
}

// Len returns the number of components.
func (v Vector[T]) Len() int {
	return len(v.components)
}

// Components returns a copy of the components.
func (v Vector[T]) Components() []T {
	return slices.Clone(v.components)
}

// Values returns an iterator over the components in order.
// Each call to the returned sequence starts a fresh traversal.
func (v Vector[T]) Values() iter.Seq[T] {
	return slices.Values(v.components)
}

// All returns an iterator over index/component pairs in order.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(v.components)
}

// At returns the component at index i. Negative indices count from the end.
// At panics if i is out of range.
func (v Vector[T]) At(i int) T {
	n := len(v.components)
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		panic(fmt.Sprintf("vector: index out of range [%d] with length %d", i, n))
	}
	return v.components[j]
}

// Slice returns a new Vector holding the components selected by r.
func (v Vector[T]) Slice(r Range) Vector[T] {
	start, stop, step := r.Indices(len(v.components))
	if step == 1 {
		if start >= stop {
			return Vector[T]{}
		}
		return New(v.components[start:stop]...)
	}

	out := make([]T, r.Len(len(v.components)))
	for k := range out {
		out[k] = v.components[start+k*step]
	}
	return Vector[T]{components: out}
}

// Equal reports whether v and w have the same length and pairwise equal
// components. NaN components are never equal.
func (v Vector[T]) Equal(w Vector[T]) bool {
	return slices.Equal(v.components, w.components)
}

// IsZero reports whether every component is zero. The empty vector is zero.
func (v Vector[T]) IsZero() bool {
	for _, c := range v.components {
		if c != 0 {
			return false
		}
	}
	return true
}

// Truthy reports whether at least one component is non-zero.
func (v Vector[T]) Truthy() bool {
	return !v.IsZero()
}

// Magnitude returns the Euclidean norm of v.
func (v Vector[T]) Magnitude() float64 {
	return math.Sqrt(kernel.SumSquares(v.components))
}

// Add returns the componentwise sum of v and w.
func (v Vector[T]) Add(w Vector[T]) (Vector[T], error) {
	if err := checkDimensions(OpAddition, v.Len(), w.Len()); err != nil {
		return Vector[T]{}, err
	}
	out := make([]T, len(v.components))
	kernel.Add(out, v.components, w.components)
	return Vector[T]{components: out}, nil
}

// Scale returns v with every component multiplied by s.
func (v Vector[T]) Scale(s T) Vector[T] {
	out := make([]T, len(v.components))
	kernel.Scale(out, v.components, s)
	return Vector[T]{components: out}
}

// MulElem returns the componentwise product of v and w.
func (v Vector[T]) MulElem(w Vector[T]) (Vector[T], error) {
	if err := checkDimensions(OpElementwiseMultiplication, v.Len(), w.Len()); err != nil {
		return Vector[T]{}, err
	}
	out := make([]T, len(v.components))
	kernel.Mul(out, v.components, w.components)
	return Vector[T]{components: out}, nil
}

// Dot returns the dot product of v and w.
func (v Vector[T]) Dot(w Vector[T]) (T, error) {
	if err := checkDimensions(OpDotProduct, v.Len(), w.Len()); err != nil {
		return 0, err
	}
	return kernel.Dot(v.components, w.components), nil
}
