package kernel

import (
	"gonum.org/v1/gonum/floats"
)

// Number is the set of component types the kernels operate on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Add stores a[i] + b[i] into dst.
func Add[T Number](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.AddTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	addGeneric(dst, a, b)
}

// Mul stores a[i] * b[i] into dst.
func Mul[T Number](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.MulTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	mulGeneric(dst, a, b)
}

// Scale stores a[i] * s into dst.
func Scale[T Number](dst, a []T, s T) {
	if d, ok := any(dst).([]float64); ok {
		floats.ScaleTo(d, any(s).(float64), any(a).([]float64))
		return
	}
	scaleGeneric(dst, a, s)
}

// Dot returns the sum of a[i] * b[i] in the component type.
func Dot[T Number](a, b []T) T {
	if x, ok := any(a).([]float64); ok {
		return any(floats.Dot(x, any(b).([]float64))).(T)
	}
	return dotGeneric(a, b)
}

// SumSquares returns the sum of squared components computed in float64,
// so integer components cannot overflow before the square root is taken.
func SumSquares[T Number](a []T) float64 {
	if x, ok := any(a).([]float64); ok {
		return floats.Dot(x, x)
	}
	var sum float64
	for _, c := range a {
		f := float64(c)
		sum += f * f
	}
	return sum
}

func addGeneric[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func mulGeneric[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func scaleGeneric[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func dotGeneric[T Number](a, b []T) T {
	var ret T
	for i := range a {
		ret += a[i] * b[i]
	}
	return ret
}
