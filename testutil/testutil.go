package testutil

import (
	"math"
	"math/rand"
	"sync"

	"pgregory.net/rapid"

	"github.com/hupe1980/vector"
)

// Pair holds two equal-length component lists.
type Pair[T any] struct {
	Left  []T
	Right []T
}

// Sliced holds components together with a Range to apply to them.
type Sliced struct {
	Components []int
	Range      vector.Range
}

// Indexed holds components together with a valid index into them.
type Indexed struct {
	Components []int
	Index      int
}

// Ints generates arbitrary, possibly empty, int component lists.
func Ints() *rapid.Generator[[]int] {
	return rapid.SliceOf(rapid.Int())
}

// SpecialFloats are the float64 values generators mix in explicitly.
var SpecialFloats = []float64{
	0,
	math.Copysign(0, -1),
	1,
	-1,
	math.Inf(1),
	math.Inf(-1),
	math.NaN(),
	math.MaxFloat64,
	-math.MaxFloat64,
	math.SmallestNonzeroFloat64,
}

// Float is a float64 generator that includes zeros of both signs,
// infinities, NaN and extreme magnitudes.
func Float() *rapid.Generator[float64] {
	return rapid.OneOf(rapid.Float64(), rapid.SampledFrom(SpecialFloats))
}

// Floats generates possibly empty float64 component lists, NaN included.
func Floats() *rapid.Generator[[]float64] {
	return rapid.SliceOf(Float())
}

// NonNaNFloats generates float64 component lists without NaN components.
func NonNaNFloats() *rapid.Generator[[]float64] {
	return rapid.SliceOf(Float().Filter(func(x float64) bool {
		return !math.IsNaN(x)
	}))
}

// Zeros generates all-zero int component lists of any length, including 0.
func Zeros() *rapid.Generator[[]int] {
	return rapid.SliceOf(rapid.Just(0))
}

// NonZeroInts generates int component lists with at least one non-zero component.
func NonZeroInts() *rapid.Generator[[]int] {
	return rapid.SliceOfN(rapid.Int(), 1, -1).Filter(func(xs []int) bool {
		for _, x := range xs {
			if x != 0 {
				return true
			}
		}
		return false
	})
}

// UnitInts generates lists of zeros with exactly one component set to 1.
func UnitInts() *rapid.Generator[[]int] {
	return rapid.Custom(func(t *rapid.T) []int {
		xs := rapid.SliceOfN(rapid.Just(0), 1, -1).Draw(t, "zeros")
		i := rapid.IntRange(0, len(xs)-1).Draw(t, "one")
		xs[i] = 1
		return xs
	})
}

// SameLenInts generates two int component lists of a shared length in
// [minLen, maxLen].
func SameLenInts(minLen, maxLen int) *rapid.Generator[Pair[int]] {
	return SameLen(rapid.Int(), minLen, maxLen)
}

// SameLen generates two component lists of a shared length in [minLen, maxLen].
func SameLen[T any](elem *rapid.Generator[T], minLen, maxLen int) *rapid.Generator[Pair[T]] {
	return rapid.Custom(func(t *rapid.T) Pair[T] {
		n := rapid.IntRange(minLen, maxLen).Draw(t, "n")
		return Pair[T]{
			Left:  rapid.SliceOfN(elem, n, n).Draw(t, "left"),
			Right: rapid.SliceOfN(elem, n, n).Draw(t, "right"),
		}
	})
}

// Ranges generates Ranges suited to a sequence of length size. Bounds may be
// omitted, negative, or fall outside the sequence.
func Ranges(size int) *rapid.Generator[vector.Range] {
	return rapid.Custom(func(t *rapid.T) vector.Range {
		bound := rapid.IntRange(-size-2, size+2)

		var r vector.Range
		hasStart := rapid.Bool().Draw(t, "hasStart")
		hasStop := rapid.Bool().Draw(t, "hasStop")
		switch {
		case hasStart && hasStop:
			r = vector.Span(bound.Draw(t, "start"), bound.Draw(t, "stop"))
		case hasStart:
			r = vector.From(bound.Draw(t, "start"))
		case hasStop:
			r = vector.Until(bound.Draw(t, "stop"))
		default:
			r = vector.Full()
		}

		if rapid.Bool().Draw(t, "hasStep") {
			step := rapid.IntRange(-size-1, size+1).Filter(func(s int) bool {
				return s != 0
			}).Draw(t, "step")
			r = r.WithStep(step)
		}
		return r
	})
}

// SlicedInts generates int components of length n+1 (n in [0, 100]) and a
// Range drawn for length n.
func SlicedInts() *rapid.Generator[Sliced] {
	return rapid.Custom(func(t *rapid.T) Sliced {
		n := rapid.IntRange(0, 100).Draw(t, "length")
		return Sliced{
			Range:      Ranges(n).Draw(t, "range"),
			Components: rapid.SliceOfN(rapid.Int(), n+1, n+1).Draw(t, "components"),
		}
	})
}

// IndexedInts generates int components of length n+1 (n in [0, 100]) and an
// index in [0, n].
func IndexedInts() *rapid.Generator[Indexed] {
	return rapid.Custom(func(t *rapid.T) Indexed {
		n := rapid.IntRange(0, 100).Draw(t, "length")
		return Indexed{
			Index:      rapid.IntRange(0, n).Draw(t, "index"),
			Components: rapid.SliceOfN(rapid.Int(), n+1, n+1).Draw(t, "components"),
		}
	})
}

// SliceRef selects xs[r] using extended slice semantics. It is a reference
// model and deliberately avoids vector.Range.Indices.
func SliceRef[T any](xs []T, r vector.Range) []T {
	n := len(xs)
	step := r.Step()
	norm := func(i int, ok bool, def int) int {
		if !ok {
			return def
		}
		if i < 0 {
			i += n
		}
		if step > 0 {
			return min(max(i, 0), n)
		}
		return min(max(i, -1), n-1)
	}

	start, hasStart := r.Start()
	stop, hasStop := r.Stop()

	out := []T{}
	if step > 0 {
		for i := norm(start, hasStart, 0); i < norm(stop, hasStop, n); i += step {
			out = append(out, xs[i])
		}
		return out
	}
	for i := norm(start, hasStart, n-1); i > norm(stop, hasStop, -1); i += step {
		out = append(out, xs[i])
	}
	return out
}

// RNG wraps a seeded math/rand source for benchmark data.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64s returns n values uniformly drawn from [-1, 1).
func (r *RNG) Float64s(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, n)
	for i := range out {
		out[i] = r.rand.Float64()*2 - 1
	}
	return out
}

// Ints returns n values uniformly drawn from [-limit, limit].
func (r *RNG) Ints(n, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(2*limit+1) - limit
	}
	return out
}
