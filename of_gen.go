// Code generated by "lenvec gen"; DO NOT EDIT.
//
// Arity-inferring constructors for ceiling 16.

package lenvec

import "github.com/roach88/lenvec/nat"

// Of0 builds an empty Vector.
func Of0[T any]() Vector[T, nat.Len0] {
	return Vector[T, nat.Len0]{}
}

// Of1 builds a Vector of length 1 holding the single value v0.
func Of1[T any](v0 T) Vector[T, nat.Len1] {
	return Vector[T, nat.Len1]{elems: []T{v0}}
}

// Of2 builds a Vector of length 2 from exactly 2 values, in order.
func Of2[T any](v0, v1 T) Vector[T, nat.Len2] {
	return Vector[T, nat.Len2]{elems: []T{v0, v1}}
}

// Of3 builds a Vector of length 3 from exactly 3 values, in order.
func Of3[T any](v0, v1, v2 T) Vector[T, nat.Len3] {
	return Vector[T, nat.Len3]{elems: []T{v0, v1, v2}}
}

// Of4 builds a Vector of length 4 from exactly 4 values, in order.
func Of4[T any](v0, v1, v2, v3 T) Vector[T, nat.Len4] {
	return Vector[T, nat.Len4]{elems: []T{v0, v1, v2, v3}}
}

// Of5 builds a Vector of length 5 from exactly 5 values, in order.
func Of5[T any](v0, v1, v2, v3, v4 T) Vector[T, nat.Len5] {
	return Vector[T, nat.Len5]{elems: []T{v0, v1, v2, v3, v4}}
}

// Of6 builds a Vector of length 6 from exactly 6 values, in order.
func Of6[T any](v0, v1, v2, v3, v4, v5 T) Vector[T, nat.Len6] {
	return Vector[T, nat.Len6]{elems: []T{v0, v1, v2, v3, v4, v5}}
}

// Of7 builds a Vector of length 7 from exactly 7 values, in order.
func Of7[T any](v0, v1, v2, v3, v4, v5, v6 T) Vector[T, nat.Len7] {
	return Vector[T, nat.Len7]{elems: []T{v0, v1, v2, v3, v4, v5, v6}}
}

// Of8 builds a Vector of length 8 from exactly 8 values, in order.
func Of8[T any](v0, v1, v2, v3, v4, v5, v6, v7 T) Vector[T, nat.Len8] {
	return Vector[T, nat.Len8]{elems: []T{v0, v1, v2, v3, v4, v5, v6, v7}}
}

// Of9 builds a Vector of length 9 from exactly 9 values, in order.
func Of9[T any](v0, v1, v2, v3, v4, v5, v6, v7, v8 T) Vector[T, nat.Len9] {
	return Vector[T, nat.Len9]{elems: []T{v0, v1, v2, v3, v4, v5, v6, v7, v8}}
}

// Of10 builds a Vector of length 10 from exactly 10 values, in order.
func Of10[T any](v0, v1, v2, v3, v4, v5, v6, v7, v8, v9 T) Vector[T, nat.Len10] {
	return Vector[T, nat.Len10]{elems: []T{v0, v1, v2, v3, v4, v5, v6, v7, v8, v9}}
}

// Of11 builds a Vector of length 11 from exactly 11 values, in order.
func Of11[T any](v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10 T) Vector[T, nat.Len11] {
	return Vector[T, nat.Len11]{elems: []T{v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10}}
}

// Of12 builds a Vector of length 12 from exactly 12 values, in order.
func Of12[T any](v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11 T) Vector[T, nat.Len12] {
	return Vector[T, nat.Len12]{elems: []T{v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11}}
}

// Of13 builds a Vector of length 13 from exactly 13 values, in order.
func Of13[T any](v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12 T) Vector[T, nat.Len13] {
	return Vector[T, nat.Len13]{elems: []T{v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12}}
}

// Of14 builds a Vector of length 14 from exactly 14 values, in order.
func Of14[T any](v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13 T) Vector[T, nat.Len14] {
	return Vector[T, nat.Len14]{elems: []T{v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13}}
}

// Of15 builds a Vector of length 15 from exactly 15 values, in order.
func Of15[T any](v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13, v14 T) Vector[T, nat.Len15] {
	return Vector[T, nat.Len15]{elems: []T{v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13, v14}}
}

// Of16 builds a Vector of length 16 from exactly 16 values, in order.
func Of16[T any](v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13, v14, v15 T) Vector[T, nat.Len16] {
	return Vector[T, nat.Len16]{elems: []T{v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13, v14, v15}}
}

// Filled0 builds an empty Vector; there are no elements to fill.
func Filled0[T any](elem T) Vector[T, nat.Len0] {
	return Vector[T, nat.Len0]{}
}

// Filled1 builds a Vector of length 1 with every element set to elem.
func Filled1[T any](elem T) Vector[T, nat.Len1] {
	return Vector[T, nat.Len1]{elems: repeat(elem, 1)}
}

// Filled2 builds a Vector of length 2 with every element set to elem.
func Filled2[T any](elem T) Vector[T, nat.Len2] {
	return Vector[T, nat.Len2]{elems: repeat(elem, 2)}
}

// Filled3 builds a Vector of length 3 with every element set to elem.
func Filled3[T any](elem T) Vector[T, nat.Len3] {
	return Vector[T, nat.Len3]{elems: repeat(elem, 3)}
}

// Filled4 builds a Vector of length 4 with every element set to elem.
func Filled4[T any](elem T) Vector[T, nat.Len4] {
	return Vector[T, nat.Len4]{elems: repeat(elem, 4)}
}

// Filled5 builds a Vector of length 5 with every element set to elem.
func Filled5[T any](elem T) Vector[T, nat.Len5] {
	return Vector[T, nat.Len5]{elems: repeat(elem, 5)}
}

// Filled6 builds a Vector of length 6 with every element set to elem.
func Filled6[T any](elem T) Vector[T, nat.Len6] {
	return Vector[T, nat.Len6]{elems: repeat(elem, 6)}
}

// Filled7 builds a Vector of length 7 with every element set to elem.
func Filled7[T any](elem T) Vector[T, nat.Len7] {
	return Vector[T, nat.Len7]{elems: repeat(elem, 7)}
}

// Filled8 builds a Vector of length 8 with every element set to elem.
func Filled8[T any](elem T) Vector[T, nat.Len8] {
	return Vector[T, nat.Len8]{elems: repeat(elem, 8)}
}

// Filled9 builds a Vector of length 9 with every element set to elem.
func Filled9[T any](elem T) Vector[T, nat.Len9] {
	return Vector[T, nat.Len9]{elems: repeat(elem, 9)}
}

// Filled10 builds a Vector of length 10 with every element set to elem.
func Filled10[T any](elem T) Vector[T, nat.Len10] {
	return Vector[T, nat.Len10]{elems: repeat(elem, 10)}
}

// Filled11 builds a Vector of length 11 with every element set to elem.
func Filled11[T any](elem T) Vector[T, nat.Len11] {
	return Vector[T, nat.Len11]{elems: repeat(elem, 11)}
}

// Filled12 builds a Vector of length 12 with every element set to elem.
func Filled12[T any](elem T) Vector[T, nat.Len12] {
	return Vector[T, nat.Len12]{elems: repeat(elem, 12)}
}

// Filled13 builds a Vector of length 13 with every element set to elem.
func Filled13[T any](elem T) Vector[T, nat.Len13] {
	return Vector[T, nat.Len13]{elems: repeat(elem, 13)}
}

// Filled14 builds a Vector of length 14 with every element set to elem.
func Filled14[T any](elem T) Vector[T, nat.Len14] {
	return Vector[T, nat.Len14]{elems: repeat(elem, 14)}
}

// Filled15 builds a Vector of length 15 with every element set to elem.
func Filled15[T any](elem T) Vector[T, nat.Len15] {
	return Vector[T, nat.Len15]{elems: repeat(elem, 15)}
}

// Filled16 builds a Vector of length 16 with every element set to elem.
func Filled16[T any](elem T) Vector[T, nat.Len16] {
	return Vector[T, nat.Len16]{elems: repeat(elem, 16)}
}
