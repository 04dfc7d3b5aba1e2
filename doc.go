// Package lenvec provides a fixed-length vector whose length is part of its
// static type and whose indexing operation is bounds-checked by the Go type
// checker rather than at runtime.
//
// A Vector is built from a fixed-arity constructor; the length marker is
// inferred from the constructor's arity and can never disagree with the
// element count:
//
//	v := lenvec.Of3(1, 3, 4) // Vector[int, nat.Len3]
//	v.Len()                  // 3
//	v.At(nat.I0)             // 1
//	v.At(nat.I2)             // 4
//
// Indexing takes an index token from package nat. A token is accepted only
// when the position it denotes is strictly below the vector's length; an
// out-of-range token is a compile error, not a panic:
//
//	v.At(nat.I3) // does not compile: nat.Idx3 does not implement nat.Len3
//
// # Guarantees
//
// Out-of-range access through the token API cannot exist as compiled code.
// The relation "index < length" is decided entirely during type checking
// (see package nat), so At performs no range comparison of its own and has
// no error return.
//
// A Vector never changes after construction. There is no grow, shrink, or
// write operation; concurrent readers need no synchronization.
//
// # Caveats
//
// Two Go-specific escape hatches weaken the guarantee at its edges, and are
// deliberately documented rather than papered over:
//
//   - At's parameter is interface-typed, so a nil token compiles; calling At
//     with nil panics. The named tokens nat.I0, nat.I1, ... are the only
//     intended arguments.
//   - The zero Vector value has no elements regardless of its length marker.
//     Indexing a zero Vector with a marker above Len0 panics. Always build
//     vectors with the Of or Filled constructors.
//
// Neither hatch permits an out-of-range read of stored elements; both fail
// before any element access. The bounds check Go emits on the internal slice
// access is unreachable through the token API.
package lenvec
