package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallConfigYAML = "ceiling: 3\n"

func writeSmallConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "lenvec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallConfigYAML), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestGenWritesFiles(t *testing.T) {
	dir := t.TempDir()
	writeSmallConfig(t, dir)

	out, _, err := execute(t, "gen", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "ceiling 3")

	natSrc, err := os.ReadFile(filepath.Join(dir, "nat", "nat_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(natSrc), "type Idx2 struct{}")
	assert.NotContains(t, string(natSrc), "type Idx3 struct{}")

	ofSrc, err := os.ReadFile(filepath.Join(dir, "of_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(ofSrc), "func Of3[T any](v0, v1, v2 T)")
}

func TestGenExplicitConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("ceiling: 2\n"), 0o644))

	_, _, err := execute(t, "gen", "-c", cfgPath, "--dir", dir)
	require.NoError(t, err)

	natSrc, err := os.ReadFile(filepath.Join(dir, "nat", "nat_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(natSrc), "type Len2 interface")
	assert.NotContains(t, string(natSrc), "type Len3 interface")
}

func TestGenRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lenvec.yaml"), []byte("ceiling: 0\n"), 0o644))

	out, _, err := execute(t, "gen", "--dir", dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "invalid configuration")
}

func TestGenJSONOutput(t *testing.T) {
	dir := t.TempDir()
	writeSmallConfig(t, dir)

	out, _, err := execute(t, "gen", "--dir", dir, "--format", "json")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCheckFreshAfterGen(t *testing.T) {
	dir := t.TempDir()
	writeSmallConfig(t, dir)

	_, _, err := execute(t, "gen", "--dir", dir)
	require.NoError(t, err)

	out, _, err := execute(t, "check", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")
}

func TestCheckDetectsStaleFiles(t *testing.T) {
	dir := t.TempDir()
	writeSmallConfig(t, dir)

	_, _, err := execute(t, "gen", "--dir", dir)
	require.NoError(t, err)

	// Hand-edit a generated file; check must flag it.
	path := filepath.Join(dir, "of_gen.go")
	require.NoError(t, os.WriteFile(path, []byte("package lenvec\n"), 0o644))

	out, _, err := execute(t, "check", "--dir", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "of_gen.go")
}

func TestCheckMissingGeneratedFile(t *testing.T) {
	dir := t.TempDir()
	writeSmallConfig(t, dir)

	_, _, err := execute(t, "check", "--dir", dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
