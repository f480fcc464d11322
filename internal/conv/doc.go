// Package conv provides checked integer conversions for encoded headers.
//
// Lengths read from untrusted bytes pass through these helpers before they
// are used to size allocations.
package conv
