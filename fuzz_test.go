package vector

import (
	"testing"
)

func FuzzParseRange(f *testing.F) {
	for _, seed := range []string{":", "1:3", "::-1", "-2:", "5:1:-2", "x", "1:2:0"} {
		f.Add(seed)
	}

	v := New(0, 1, 2, 3, 4, 5, 6, 7)

	f.Fuzz(func(t *testing.T, s string) {
		// Parsing must fail cleanly or yield a Range that slices without panicking.
		r, err := ParseRange(s)
		if err != nil {
			return
		}
		got := v.Slice(r)
		if got.Len() != r.Len(v.Len()) {
			t.Fatalf("Slice(%s) has %d components, Len reports %d", r, got.Len(), r.Len(v.Len()))
		}
	})
}

func FuzzSliceBounds(f *testing.F) {
	f.Add(0, 0, 1, 4)
	f.Add(-3, 100, -1, 10)
	f.Add(7, -7, 3, 0)

	f.Fuzz(func(t *testing.T, start, stop, step, n int) {
		if step == 0 || n < 0 || n > 1024 {
			return
		}
		xs := make([]int, n)
		for i := range xs {
			xs[i] = i
		}
		r := Span(start, stop).WithStep(step)
		got := New(xs...).Slice(r)
		if got.Len() != r.Len(n) {
			t.Fatalf("Slice(%s) over %d has %d components, Len reports %d", r, n, got.Len(), r.Len(n))
		}
	})
}
