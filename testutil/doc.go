// Package testutil provides property-test generators and seeded data for
// the vector packages.
//
// This package is intended for use in tests and benchmarks only.
//
// # Property Generators
//
// Generators plug into pgregory.net/rapid and shrink on failure:
//
//	rapid.Check(t, func(t *rapid.T) {
//	    p := testutil.SameLenInts(1, 100).Draw(t, "pair")
//	    sum, err := vector.New(p.Left...).Add(vector.New(p.Right...))
//	    ...
//	})
//
// # Reference Models
//
// SliceRef reproduces extended slice selection on plain slices so properties
// can compare Vector.Slice against an independent model.
//
// # Seeded Data
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.Float64s(1024)
package testutil
