// Package kernel implements the element loops behind vector arithmetic.
//
// float64 operands are delegated to gonum's floats package; all other
// component types use plain generic loops. Callers guarantee that paired
// slices have equal length.
package kernel
