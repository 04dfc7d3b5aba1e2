package lenvec

import (
	"fmt"
	"strings"

	"github.com/roach88/lenvec/nat"
)

// Vector is a fixed-length sequence of T. The length marker L pins the
// element count in the type: a Vector[int, nat.Len3] holds exactly three
// ints, and only the tokens nat.I0, nat.I1 and nat.I2 are accepted by At.
//
// Build vectors with the generated Of or Filled constructors; they are the
// only paths that establish the length invariant. Vector values may be
// copied freely and shared between goroutines for reading.
type Vector[T any, L nat.Length] struct {
	elems []T
}

// Len reports the number of elements, which is always the integer denoted
// by the vector's length marker.
func (v Vector[T, L]) Len() int {
	return len(v.elems)
}

// At returns the element at the position denoted by the token i.
//
// The parameter type is the vector's own length marker, so the call only
// type-checks for tokens denoting a position strictly below the length.
// There is no runtime range check and no error return; the out-of-range
// case is rejected during compilation.
func (v Vector[T, L]) At(i L) T {
	return v.elems[i.Value()]
}

// String renders the elements and the length, e.g. "[1 3 4]#3".
func (v Vector[T, L]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range v.elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte(']')
	fmt.Fprintf(&b, "#%d", len(v.elems))
	return b.String()
}

// repeat builds the backing storage for the Filled constructors.
func repeat[T any](elem T, n int) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = elem
	}
	return s
}
