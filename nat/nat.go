// Package nat encodes small natural numbers in the type system.
//
// Two closed families are defined here, both generated by "lenvec gen":
//
//   - Index token types Idx0, Idx1, ... with ready-made values I0, I1, ....
//     Each token denotes one position and carries no other state.
//   - Length marker interfaces Len0, Len1, .... LenN is satisfied by exactly
//     the tokens denoting positions strictly below N.
//
// The "index < length" relation is therefore ordinary interface
// satisfaction: IdxK implements LenN if and only if K < N. The Go type
// checker decides the relation for every supported pair during compilation;
// no runtime comparison is emitted and no pair has an "unknown" outcome.
//
// The family ceiling defaults to 16 and is configurable. Regenerate with:
//
//	lenvec gen --config lenvec.yaml
package nat

//go:generate go run github.com/roach88/lenvec/cmd/lenvec gen --dir ..

// Index is implemented by every index token.
type Index interface {
	// Value reports the position the token denotes.
	Value() int
}

// Length constrains the length marker parameter of a vector type.
// The LenN interfaces in this package are the only intended arguments.
type Length interface {
	Index
}
