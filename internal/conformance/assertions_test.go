package conformance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertCompiledClean(t *testing.T) {
	assert.NoError(t, assertCompiled(nil))
}

func TestAssertCompiledWithDiagnostics(t *testing.T) {
	err := assertCompiled([]string{"main.go:3:2: undefined: nope"})
	require.Error(t, err)

	aerr, ok := err.(*AssertionError)
	require.True(t, ok)
	assert.Equal(t, ExpectCompile, aerr.Type)
	assert.Contains(t, aerr.Error(), "undefined: nope")
}

func TestAssertRejectedMatches(t *testing.T) {
	diags := []string{
		"main.go:12:16: cannot use nat.I3 (variable of struct type nat.Idx3) as nat.Len3 value " +
			"in argument to v.At: nat.Idx3 does not implement nat.Len3 (missing method isBelow3)",
	}

	err := assertRejected(diags, []string{"missing method isBelow3", "does not implement"})
	assert.NoError(t, err)
}

func TestAssertRejectedCompiledCleanly(t *testing.T) {
	err := assertRejected(nil, []string{"missing method isBelow3"})
	require.Error(t, err)

	aerr, ok := err.(*AssertionError)
	require.True(t, ok)
	assert.Equal(t, "program type-checked cleanly", aerr.Actual)
}

func TestAssertRejectedUnmatchedPattern(t *testing.T) {
	diags := []string{"main.go:3:2: some unrelated failure"}

	err := assertRejected(diags, []string{"missing method isBelow3"})
	require.Error(t, err)

	aerr, ok := err.(*AssertionError)
	require.True(t, ok)
	assert.Contains(t, aerr.Expected, "missing method isBelow3")
	assert.Contains(t, aerr.Error(), "some unrelated failure")
}

func TestAssertRejectedInvalidPattern(t *testing.T) {
	err := assertRejected([]string{"diag"}, []string{"("})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid diagnostic pattern")
}
