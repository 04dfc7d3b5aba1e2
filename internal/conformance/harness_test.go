package conformance

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHarness builds a harness with deterministic run IDs, skipping when
// the Go toolchain is unavailable (the harness shells out via go/packages).
func newTestHarness(t *testing.T, ids ...string) *Harness {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping type-check harness in short mode")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}

	h, err := New()
	require.NoError(t, err)
	h.RunIDs = NewFixedGenerator(ids...)
	return h
}

func TestFindModuleRoot(t *testing.T) {
	root, err := FindModuleRoot("")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "go.mod"))
}

func TestFindModuleRootNotFound(t *testing.T) {
	_, err := FindModuleRoot(t.TempDir())
	require.Error(t, err)
}

func TestRunAcceptsInRangeProgram(t *testing.T) {
	h := newTestHarness(t, "run-1")

	sc, err := LoadScenario("testdata/scenarios/index_in_range.yaml")
	require.NoError(t, err)

	result, err := h.Run(sc)
	require.NoError(t, err)
	assert.True(t, result.Pass, "diagnostics: %v", result.Diagnostics)
	assert.Equal(t, "run-1", result.RunID)
	assert.Empty(t, result.Errors)
}

func TestRunRejectsOutOfRangeProgram(t *testing.T) {
	h := newTestHarness(t, "run-1")

	sc, err := LoadScenario("testdata/scenarios/reject_index_3_of_3.yaml")
	require.NoError(t, err)

	result, err := h.Run(sc)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.NotEmpty(t, result.Diagnostics, "rejection scenarios keep their diagnostics")
}

func TestRunFlagsUnexpectedCompileSuccess(t *testing.T) {
	h := newTestHarness(t, "run-1")

	// In-range program declared as a rejection: the harness must fail it.
	sc := &Scenario{
		Name:        "bogus_reject",
		Expect:      ExpectReject,
		Diagnostics: []string{"missing method isBelow3"},
		Source: `package main

import (
	"fmt"

	"github.com/roach88/lenvec"
	"github.com/roach88/lenvec/nat"
)

func main() {
	v := lenvec.Of3(1, 3, 4)
	fmt.Println(v.At(nat.I2))
}
`,
	}

	result, err := h.Run(sc)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "type-checked cleanly")
}

func TestRunAllCheckedInScenarios(t *testing.T) {
	h := newTestHarness(t)

	files, err := FindScenarioFiles("testdata/scenarios", "")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	var results []*Result
	for _, f := range files {
		sc, err := LoadScenario(f)
		require.NoError(t, err)

		result, err := h.Run(sc)
		require.NoError(t, err)
		assert.True(t, result.Pass, "%s failed: %v", sc.Name, result.Errors)
		results = append(results, result)
	}

	rep := BuildReport(results)
	assert.Equal(t, rep.Total, rep.Passed)
	assert.Zero(t, rep.Failed)
}

func TestRunValidatesScenarioFirst(t *testing.T) {
	h := &Harness{ModuleRoot: ".", RunIDs: NewFixedGenerator()}

	_, err := h.Run(&Scenario{Name: "", Expect: ExpectCompile, Source: "package main"})
	require.Error(t, err)
}
