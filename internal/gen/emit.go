package gen

import (
	"bytes"
	"fmt"

	"golang.org/x/tools/imports"
)

// File is one generated source file, with its path relative to the
// repository root.
type File struct {
	Path    string
	Content []byte
}

// Emit renders both generated files for the given config. The output is
// passed through golang.org/x/tools/imports so that checked-in files are
// byte-stable across regenerations.
func Emit(cfg *Config) ([]File, error) {
	natSrc, err := imports.Process(cfg.Nat.Output, emitNat(cfg), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", cfg.Nat.Output, err)
	}

	ofSrc, err := imports.Process(cfg.Vector.Output, emitConstructors(cfg), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", cfg.Vector.Output, err)
	}

	return []File{
		{Path: cfg.Nat.Output, Content: natSrc},
		{Path: cfg.Vector.Output, Content: ofSrc},
	}, nil
}

// emitNat renders the index token and length marker families.
//
// Token IdxK carries one isBelowM method for every M in (K, ceiling], and
// marker LenN requires isBelowN. Interface satisfaction therefore encodes
// exactly K < N.
func emitNat(cfg *Config) []byte {
	c := cfg.Ceiling
	var b bytes.Buffer

	fmt.Fprintf(&b, "// Code generated by \"lenvec gen\"; DO NOT EDIT.\n")
	fmt.Fprintf(&b, "//\n")
	fmt.Fprintf(&b, "// Index token and length marker families for ceiling %d.\n", c)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "package %s\n", cfg.Nat.Package)

	for k := 0; k < c; k++ {
		fmt.Fprintf(&b, "\n")
		fmt.Fprintf(&b, "// I%d is the token denoting position %d.\n", k, k)
		fmt.Fprintf(&b, "var I%d Idx%d\n", k, k)
		fmt.Fprintf(&b, "\n")
		fmt.Fprintf(&b, "// Idx%d is the index token type for position %d. It satisfies Len%d\n", k, k, k+1)
		fmt.Fprintf(&b, "// through Len%d.\n", c)
		fmt.Fprintf(&b, "type Idx%d struct{}\n", k)
		fmt.Fprintf(&b, "\n")
		fmt.Fprintf(&b, "// Value reports the position Idx%d denotes.\n", k)
		fmt.Fprintf(&b, "func (Idx%d) Value() int { return %d }\n", k, k)
		fmt.Fprintf(&b, "\n")
		for m := k + 1; m <= c; m++ {
			fmt.Fprintf(&b, "func (Idx%d) isBelow%d() {}\n", k, m)
		}
	}

	for n := 0; n <= c; n++ {
		fmt.Fprintf(&b, "\n")
		switch n {
		case 0:
			fmt.Fprintf(&b, "// Len0 is the length marker for 0. No index token satisfies it, so every\n")
			fmt.Fprintf(&b, "// indexing expression against an empty vector is rejected.\n")
		case 1:
			fmt.Fprintf(&b, "// Len1 is the length marker for 1: only the token denoting position 0\n")
			fmt.Fprintf(&b, "// satisfies it.\n")
		default:
			fmt.Fprintf(&b, "// Len%d is the length marker for %d: exactly the tokens denoting positions\n", n, n)
			fmt.Fprintf(&b, "// 0 through %d satisfy it.\n", n-1)
		}
		fmt.Fprintf(&b, "type Len%d interface {\n", n)
		fmt.Fprintf(&b, "\tIndex\n")
		fmt.Fprintf(&b, "\tisBelow%d()\n", n)
		fmt.Fprintf(&b, "}\n")
	}

	return b.Bytes()
}

// emitConstructors renders the arity-inferring Of and Filled constructors.
// Each OfN takes exactly N parameters, so the length marker in the result
// type is derived from the call site's arity, never supplied and checked.
func emitConstructors(cfg *Config) []byte {
	c := cfg.Ceiling
	var b bytes.Buffer

	fmt.Fprintf(&b, "// Code generated by \"lenvec gen\"; DO NOT EDIT.\n")
	fmt.Fprintf(&b, "//\n")
	fmt.Fprintf(&b, "// Arity-inferring constructors for ceiling %d.\n", c)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "package %s\n", cfg.Vector.Package)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "import %q\n", cfg.Vector.NatImport)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "// Of0 builds an empty Vector.\n")
	fmt.Fprintf(&b, "func Of0[T any]() Vector[T, nat.Len0] {\n")
	fmt.Fprintf(&b, "\treturn Vector[T, nat.Len0]{}\n")
	fmt.Fprintf(&b, "}\n")

	for n := 1; n <= c; n++ {
		args := argList(n)
		fmt.Fprintf(&b, "\n")
		if n == 1 {
			fmt.Fprintf(&b, "// Of1 builds a Vector of length 1 holding the single value v0.\n")
		} else {
			fmt.Fprintf(&b, "// Of%d builds a Vector of length %d from exactly %d values, in order.\n", n, n, n)
		}
		fmt.Fprintf(&b, "func Of%d[T any](%s T) Vector[T, nat.Len%d] {\n", n, args, n)
		fmt.Fprintf(&b, "\treturn Vector[T, nat.Len%d]{elems: []T{%s}}\n", n, args)
		fmt.Fprintf(&b, "}\n")
	}

	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "// Filled0 builds an empty Vector; there are no elements to fill.\n")
	fmt.Fprintf(&b, "func Filled0[T any](elem T) Vector[T, nat.Len0] {\n")
	fmt.Fprintf(&b, "\treturn Vector[T, nat.Len0]{}\n")
	fmt.Fprintf(&b, "}\n")

	for n := 1; n <= c; n++ {
		fmt.Fprintf(&b, "\n")
		fmt.Fprintf(&b, "// Filled%d builds a Vector of length %d with every element set to elem.\n", n, n)
		fmt.Fprintf(&b, "func Filled%d[T any](elem T) Vector[T, nat.Len%d] {\n", n, n)
		fmt.Fprintf(&b, "\treturn Vector[T, nat.Len%d]{elems: repeat(elem, %d)}\n", n, n)
		fmt.Fprintf(&b, "}\n")
	}

	return b.Bytes()
}

// argList renders "v0, v1, ..., v{n-1}".
func argList(n int) string {
	var b bytes.Buffer
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "v%d", i)
	}
	return b.String()
}
