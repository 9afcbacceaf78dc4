package dstarlite

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Key is the two-component frontier priority of a vertex:
//
//	K1 = min(g, rhs) + h(vertex, start) + km
//	K2 = min(g, rhs)
//
// Keys are ordered lexicographically; see Less.
type Key struct {
	K1, K2 float64
}

// Less reports whether k orders strictly before other. Components that are
// equal within eps are treated as equal, so accumulated rounding error never
// reorders two keys that describe the same priority.
func (k Key) Less(other Key, eps float64) bool {
	if !approxEqual(k.K1, other.K1, eps) {
		return k.K1 < other.K1
	}
	if !approxEqual(k.K2, other.K2, eps) {
		return k.K2 < other.K2
	}

	return false
}

// Equal reports whether both components are equal within eps.
func (k Key) Equal(other Key, eps float64) bool {
	return approxEqual(k.K1, other.K1, eps) && approxEqual(k.K2, other.K2, eps)
}

func (k Key) String() string {
	return fmt.Sprintf("[%g, %g]", k.K1, k.K2)
}

// approxEqual compares two costs within an absolute-or-relative tolerance.
// Infinities of the same sign compare equal; an infinity never equals a
// finite value.
func approxEqual(a, b, eps float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return scalar.EqualWithinAbsOrRel(a, b, eps, eps)
}
