package vector

import (
	"fmt"
	"strings"
)

// maxRendered is the number of components String shows before abbreviating.
const maxRendered = 6

// String returns an abbreviated representation such as
// "Vector(1, 2, 3, 4, 5, 6, ...)".
func (v Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Vector(")
	writeComponents(&sb, v.components, "%v", maxRendered)
	sb.WriteByte(')')
	return sb.String()
}

// Format implements fmt.Formatter.
//
// %v and %s render like String. %+v lists every component as a tuple,
// e.g. "(1, 2, 3)". Any other verb is applied to each component, so
// %.2f prints "Vector(1.00, 2.00)".
func (v Vector[T]) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('+'):
		var sb strings.Builder
		sb.WriteByte('(')
		writeComponents(&sb, v.components, "%v", -1)
		sb.WriteByte(')')
		_, _ = fmt.Fprint(f, sb.String())
	case verb == 'v' || verb == 's':
		_, _ = fmt.Fprint(f, v.String())
	default:
		var sb strings.Builder
		sb.WriteString("Vector(")
		writeComponents(&sb, v.components, fmt.FormatString(f, verb), maxRendered)
		sb.WriteByte(')')
		_, _ = fmt.Fprint(f, sb.String())
	}
}

func writeComponents[T Number](sb *strings.Builder, components []T, format string, limit int) {
	for i, c := range components {
		if i > 0 {
			sb.WriteString(", ")
		}
		if limit >= 0 && i == limit {
			sb.WriteString("...")
			return
		}
		fmt.Fprintf(sb, format, c)
	}
}
