package vector

import (
	"errors"
	"iter"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		got, err := New(1, 2, 3).Add(New(4, 5, 6))
		require.NoError(t, err)
		assert.True(t, got.Equal(New(5, 7, 9)))
	})

	t.Run("Magnitude", func(t *testing.T) {
		assert.Equal(t, 5.0, New(3, 4).Magnitude())
	})

	t.Run("Scale", func(t *testing.T) {
		assert.True(t, New(1, 2, 3).Scale(2).Equal(New(2, 4, 6)))
	})

	t.Run("Dot", func(t *testing.T) {
		got, err := New(1, 2, 3).Dot(New(4, 5, 6))
		require.NoError(t, err)
		assert.Equal(t, 32, got)
	})

	t.Run("IndexAndSlice", func(t *testing.T) {
		v := New(0, 1, 0)
		assert.Equal(t, 1, v.At(1))
		assert.True(t, v.Slice(Span(0, 2)).Equal(New(0, 1)))
	})

	t.Run("AddDimensionMismatch", func(t *testing.T) {
		_, err := New(1, 2).Add(New(1, 2, 3))
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, OpAddition, dm.Op)
		assert.Equal(t, 2, dm.Left)
		assert.Equal(t, 3, dm.Right)
		assert.Contains(t, err.Error(), "Addition")
	})
}

func TestDimensionMismatch(t *testing.T) {
	a, b := New(1.0, 2.0), New(1.0)

	tests := []struct {
		name string
		op   string
		call func() error
	}{
		{"Add", OpAddition, func() error { _, err := a.Add(b); return err }},
		{"MulElem", OpElementwiseMultiplication, func() error { _, err := a.MulElem(b); return err }},
		{"Dot", OpDotProduct, func() error { _, err := a.Dot(b); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var dm *ErrDimensionMismatch
			require.True(t, errors.As(err, &dm))
			assert.Equal(t, tt.op, dm.Op)
			assert.Contains(t, err.Error(), tt.op)
		})
	}
}

func TestArithmetic(t *testing.T) {
	t.Run("MulElem", func(t *testing.T) {
		got, err := New(1, 2, 3).MulElem(New(4, 5, 6))
		require.NoError(t, err)
		assert.Equal(t, []int{4, 10, 18}, got.Components())
	})

	t.Run("Float64", func(t *testing.T) {
		a := New(1.5, -2.0, 0.25)
		b := New(2.0, 0.5, 4.0)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, []float64{3.5, -1.5, 4.25}, sum.Components())

		prod, err := a.MulElem(b)
		require.NoError(t, err)
		assert.Equal(t, []float64{3, -1, 1}, prod.Components())

		dot, err := a.Dot(b)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, dot, 1e-12)

		assert.Equal(t, []float64{-3, 4, -0.5}, a.Scale(-2).Components())
	})

	t.Run("Float32", func(t *testing.T) {
		dot, err := New[float32](1, 2, 3).Dot(New[float32](4, 5, 6))
		require.NoError(t, err)
		assert.Equal(t, float32(32), dot)
	})

	t.Run("Empty", func(t *testing.T) {
		var v Vector[int]
		sum, err := v.Add(New[int]())
		require.NoError(t, err)
		assert.Equal(t, 0, sum.Len())

		dot, err := v.Dot(v)
		require.NoError(t, err)
		assert.Equal(t, 0, dot)
		assert.Equal(t, 0.0, v.Magnitude())
	})

	t.Run("NamedType", func(t *testing.T) {
		type meters float64
		got, err := New[meters](1, 2).Add(New[meters](3, 4))
		require.NoError(t, err)
		assert.Equal(t, []meters{4, 6}, got.Components())
	})
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector[int]
		expected float64
	}{
		{"Zero", New(0, 0, 0), 0},
		{"Empty", New[int](), 0},
		{"Unit", New(0, 0, 1, 0), 1},
		{"Pythagorean", New(3, 4), 5},
		{"Negative", New(-3, -4), 5},
		{"NoOverflow", New(math.MaxInt64, 0), float64(math.MaxInt64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.v.Magnitude())
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, New(1, 2).Equal(New(1, 2)))
	assert.False(t, New(1, 2).Equal(New(1, 2, 3)))
	assert.False(t, New(1, 2).Equal(New(2, 1)))
	assert.True(t, Vector[int]{}.Equal(New[int]()))
	assert.True(t, New(0.0).Equal(New(math.Copysign(0, -1))))
	assert.False(t, New(math.NaN()).Equal(New(math.NaN())))
}

func TestTruthiness(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector[float64]
		truthy bool
	}{
		{"Empty", New[float64](), false},
		{"Zeros", New(0.0, 0.0), false},
		{"NegativeZero", New(math.Copysign(0, -1)), false},
		{"NonZero", New(0.0, 0.5), true},
		{"NaN", New(math.NaN()), true},
		{"Inf", New(math.Inf(-1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.truthy, tt.v.Truthy())
			assert.Equal(t, !tt.truthy, tt.v.IsZero())
		})
	}
}

func TestImmutability(t *testing.T) {
	src := []int{1, 2, 3}
	v := New(src...)
	src[0] = 100
	assert.Equal(t, 1, v.At(0))

	out := v.Components()
	out[1] = 100
	assert.Equal(t, 2, v.At(1))

	sub := v.Slice(Full())
	_, _ = sub.Add(v)
	_ = v.Scale(10)
	assert.Equal(t, []int{1, 2, 3}, v.Components())
}

func TestCollect(t *testing.T) {
	t.Run("DrainsOnce", func(t *testing.T) {
		calls := 0
		seq := iter.Seq[int](func(yield func(int) bool) {
			calls++
			for _, x := range []int{3, 1, 2} {
				if !yield(x) {
					return
				}
			}
		})

		v := Collect(seq)
		assert.Equal(t, 1, calls)
		assert.Equal(t, []int{3, 1, 2}, v.Components())
	})

	t.Run("Empty", func(t *testing.T) {
		v := Collect(slices.Values([]float64(nil)))
		assert.Equal(t, 0, v.Len())
		assert.False(t, v.Truthy())
	})
}

func TestIteration(t *testing.T) {
	v := New(4, 5, 6)

	first := slices.Collect(v.Values())
	second := slices.Collect(v.Values())
	assert.Equal(t, []int{4, 5, 6}, first)
	assert.Equal(t, first, second)

	var idx []int
	for i, c := range v.All() {
		idx = append(idx, i)
		assert.Equal(t, v.At(i), c)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)

	for c := range v.Values() {
		assert.Equal(t, 4, c)
		break
	}
}

func TestAt(t *testing.T) {
	v := New(10, 20, 30)

	assert.Equal(t, 10, v.At(0))
	assert.Equal(t, 30, v.At(2))
	assert.Equal(t, 30, v.At(-1))
	assert.Equal(t, 10, v.At(-3))

	assert.PanicsWithValue(t, "vector: index out of range [3] with length 3", func() { v.At(3) })
	assert.Panics(t, func() { v.At(-4) })
	assert.Panics(t, func() { Vector[int]{}.At(0) })
}

func TestSlice(t *testing.T) {
	v := New(0, 1, 2, 3, 4, 5)

	tests := []struct {
		name     string
		r        Range
		expected []int
	}{
		{"Full", Full(), []int{0, 1, 2, 3, 4, 5}},
		{"ZeroRange", Range{}, []int{0, 1, 2, 3, 4, 5}},
		{"Span", Span(1, 3), []int{1, 2}},
		{"From", From(4), []int{4, 5}},
		{"Until", Until(2), []int{0, 1}},
		{"NegativeBounds", Span(-3, -1), []int{3, 4}},
		{"Clamped", Span(-100, 100), []int{0, 1, 2, 3, 4, 5}},
		{"Inverted", Span(4, 2), nil},
		{"Stepped", Span(1, 6).WithStep(2), []int{1, 3, 5}},
		{"Reversed", Full().WithStep(-1), []int{5, 4, 3, 2, 1, 0}},
		{"ReversedStepped", From(4).WithStep(-3), []int{4, 1}},
		{"StepPastEnd", Full().WithStep(10), []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Slice(tt.r)
			assert.Equal(t, len(tt.expected), got.Len())
			assert.True(t, got.Equal(New(tt.expected...)), "got %+v", got)
			assert.Equal(t, got.Len(), tt.r.Len(v.Len()))
		})
	}
}
