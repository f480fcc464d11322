package vector_test

import (
	"strconv"
	"testing"

	"github.com/hupe1980/vector"
	"github.com/hupe1980/vector/testutil"
)

func BenchmarkVector(b *testing.B) {
	rng := testutil.NewRNG(4711)

	for _, dim := range []int{16, 128, 1024} {
		f1, f2 := vector.New(rng.Float64s(dim)...), vector.New(rng.Float64s(dim)...)
		i1, i2 := vector.New(rng.Ints(dim, 1000)...), vector.New(rng.Ints(dim, 1000)...)

		b.Run("Dot/float64/"+strconv.Itoa(dim), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = f1.Dot(f2)
			}
		})

		b.Run("Dot/int/"+strconv.Itoa(dim), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = i1.Dot(i2)
			}
		})

		b.Run("Add/float64/"+strconv.Itoa(dim), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = f1.Add(f2)
			}
		})

		b.Run("Magnitude/float64/"+strconv.Itoa(dim), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = f1.Magnitude()
			}
		})
	}
}
