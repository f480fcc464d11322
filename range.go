package vector

import (
	"strconv"
	"strings"
)

// Range selects a sub-sequence of components. Bounds are clamped and may be
// negative; the step may be negative too.
//
// Start and stop are optional; negative bounds count from the end. The zero
// Range selects every component with step 1.
type Range struct {
	start, stop       int
	hasStart, hasStop bool
	step              int // 0 means 1
}

// Full returns the Range selecting every component ([:]).
func Full() Range {
	return Range{}
}

// Span returns the Range [start:stop].
func Span(start, stop int) Range {
	return Range{start: start, stop: stop, hasStart: true, hasStop: true}
}

// From returns the Range [start:].
func From(start int) Range {
	return Range{start: start, hasStart: true}
}

// Until returns the Range [:stop].
func Until(stop int) Range {
	return Range{stop: stop, hasStop: true}
}

// WithStep returns a copy of r that advances by step. A negative step
// walks backwards. WithStep panics if step is zero.
func (r Range) WithStep(step int) Range {
	if step == 0 {
		panic("vector: " + ErrZeroStep.Error())
	}
	r.step = step
	return r
}

// Start returns the start bound and whether it is set.
func (r Range) Start() (int, bool) {
	return r.start, r.hasStart
}

// Stop returns the stop bound and whether it is set.
func (r Range) Stop() (int, bool) {
	return r.stop, r.hasStop
}

// Step returns the step of r.
func (r Range) Step() int {
	if r.step == 0 {
		return 1
	}
	return r.step
}

// Indices resolves r against a sequence of length n and returns concrete
// start, stop and step values. Bounds are clamped, never rejected.
func (r Range) Indices(n int) (start, stop, step int) {
	step = r.Step()

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}

	clamp := func(i int) int {
		if i < 0 {
			i += n
			if i < lower {
				return lower
			}
			return i
		}
		if i > upper {
			return upper
		}
		return i
	}

	switch {
	case r.hasStart:
		start = clamp(r.start)
	case step < 0:
		start = upper
	default:
		start = lower
	}

	switch {
	case r.hasStop:
		stop = clamp(r.stop)
	case step < 0:
		stop = lower
	default:
		stop = upper
	}

	return start, stop, step
}

// Len returns the number of components r selects from a sequence of length n.
func (r Range) Len(n int) int {
	start, stop, step := r.Indices(n)
	if step > 0 {
		if start < stop {
			return (stop-start-1)/step + 1
		}
		return 0
	}
	if stop < start {
		return (start-stop-1)/(-step) + 1
	}
	return 0
}

// String renders r in start:stop:step notation, leaving omitted bounds empty.
func (r Range) String() string {
	var sb strings.Builder
	if r.hasStart {
		sb.WriteString(strconv.Itoa(r.start))
	}
	sb.WriteByte(':')
	if r.hasStop {
		sb.WriteString(strconv.Itoa(r.stop))
	}
	if r.step != 0 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(r.step))
	}
	return sb.String()
}

// ParseRange parses slice notation such as "1:4", ":-1", "::2" or "5::-1".
// Text that is not slice notation yields *ErrInvalidIndexType; a zero step
// yields ErrZeroStep.
func ParseRange(s string) (Range, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Range{}, &ErrInvalidIndexType{Input: s}
	}

	var r Range
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Range{}, &ErrInvalidIndexType{Input: s, cause: err}
		}
		switch i {
		case 0:
			r.start, r.hasStart = n, true
		case 1:
			r.stop, r.hasStop = n, true
		case 2:
			if n == 0 {
				return Range{}, ErrZeroStep
			}
			r.step = n
		}
	}
	return r, nil
}

// ParseIndex parses a signed integer index.
func ParseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ErrInvalidIndexType{Input: s, cause: err}
	}
	return n, nil
}
