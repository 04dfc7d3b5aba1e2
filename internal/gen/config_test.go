package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	errs := Validate(DefaultConfig())
	assert.Empty(t, errs)
}

func TestValidateCeilingTooLow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ceiling = 0

	errs := Validate(cfg)
	require.NotEmpty(t, errs)

	verr, ok := errs[0].(ValidationError)
	require.True(t, ok)
	assert.Equal(t, ErrConfigSchema, verr.Code)
	assert.Contains(t, verr.Field, "ceiling")
}

func TestValidateCeilingTooHigh(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ceiling = 1000

	errs := Validate(cfg)
	require.NotEmpty(t, errs)
}

func TestValidateBadPackageName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Nat.Package = "Not-A-Package"

	errs := Validate(cfg)
	require.NotEmpty(t, errs)

	verr, ok := errs[0].(ValidationError)
	require.True(t, ok)
	assert.Equal(t, ErrConfigSchema, verr.Code)
}

func TestValidateEmptyOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Vector.Output = ""

	errs := Validate(cfg)
	require.NotEmpty(t, errs)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, errs := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Len(t, errs, 1)

	verr, ok := errs[0].(ValidationError)
	require.True(t, ok)
	assert.Equal(t, ErrConfigRead, verr.Code)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lenvec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ceiling: [not an int"), 0o644))

	_, errs := LoadConfig(path)
	require.Len(t, errs, 1)

	verr, ok := errs[0].(ValidationError)
	require.True(t, ok)
	assert.Equal(t, ErrConfigParse, verr.Code)
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lenvec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ceiling: 4\n"), 0o644))

	cfg, errs := LoadConfig(path)
	require.Empty(t, errs)
	assert.Equal(t, 4, cfg.Ceiling)
	assert.Equal(t, "nat", cfg.Nat.Package)
	assert.Equal(t, "of_gen.go", cfg.Vector.Output)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lenvec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ceiling: -3\n"), 0o644))

	_, errs := LoadConfig(path)
	require.NotEmpty(t, errs)

	verr, ok := errs[0].(ValidationError)
	require.True(t, ok)
	assert.Equal(t, ErrConfigSchema, verr.Code)
}
