package conv

import (
	"fmt"
	"math"
)

// LenToUint32 converts a slice length to uint32, rejecting negative or too
// large values.
func LenToUint32(n int) (uint32, error) {
	if n < 0 {
		return 0, fmt.Errorf("length %d cannot be encoded as uint32 (negative)", n)
	}
	if uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("length %d cannot be encoded as uint32 (too large)", n)
	}
	return uint32(n), nil
}

// Uint32ToLen converts a decoded uint32 length to int, bounded by limit.
// A negative limit disables the bound.
func Uint32ToLen(v uint32, limit int) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("length %d cannot be converted to int (too large)", v)
	}
	n := int(v)
	if limit >= 0 && n > limit {
		return 0, fmt.Errorf("length %d exceeds limit %d", n, limit)
	}
	return n, nil
}
