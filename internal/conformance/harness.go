package conformance

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// scratchGoMod is the module manifest written around each scenario program.
// The replace directive points the lenvec import at the repository under
// test, so scenarios exercise the working tree, not a released version.
const scratchGoMod = `module lenvec.conformance/scratch

go 1.25

require github.com/roach88/lenvec v0.0.0

replace github.com/roach88/lenvec => %s
`

// Harness type-checks scenario programs against the repository under test.
type Harness struct {
	// ModuleRoot is the directory containing the lenvec go.mod.
	ModuleRoot string

	// RunIDs issues an identifier per execution. Defaults to UUIDv7;
	// tests substitute a FixedGenerator for stable reports.
	RunIDs RunIDGenerator

	// Logger receives per-step diagnostics. Defaults to a discard logger.
	Logger *slog.Logger
}

// New builds a harness rooted at the enclosing lenvec repository,
// discovered by walking up from the working directory.
func New() (*Harness, error) {
	root, err := FindModuleRoot("")
	if err != nil {
		return nil, err
	}
	return &Harness{
		ModuleRoot: root,
		RunIDs:     UUIDv7Generator{},
		Logger:     slog.New(slog.DiscardHandler),
	}, nil
}

// Run type-checks one scenario and evaluates its expectation.
//
// Execution flow:
//  1. Write the scenario program into a fresh scratch module.
//  2. Load it through the go/packages type-check driver.
//  3. Collect diagnostics and evaluate the expectation against them.
//
// The returned error covers harness-level failures (scratch module setup,
// loader breakage); expectation mismatches are reported via Result, not as
// an error.
func (h *Harness) Run(sc *Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Scenario: sc.Name,
		RunID:    h.RunIDs.Generate(),
		Pass:     true,
	}
	h.logger().Info("running scenario", "name", sc.Name, "expect", sc.Expect, "run_id", result.RunID)

	dir, err := os.MkdirTemp("", "lenvec-conformance-*")
	if err != nil {
		return nil, fmt.Errorf("creating scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	gomod := fmt.Sprintf(scratchGoMod, h.ModuleRoot)
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644); err != nil {
		return nil, fmt.Errorf("writing scratch go.mod: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte(sc.Source), 0o644); err != nil {
		return nil, fmt.Errorf("writing scratch program: %w", err)
	}

	diags, err := h.typeCheck(dir)
	if err != nil {
		return nil, err
	}
	result.Diagnostics = diags
	h.logger().Info("type check finished", "name", sc.Name, "diagnostics", len(diags))

	var verdict error
	switch sc.Expect {
	case ExpectCompile:
		verdict = assertCompiled(diags)
	case ExpectReject:
		verdict = assertRejected(diags, sc.Diagnostics)
	}
	if verdict != nil {
		result.AddError(verdict.Error())
	}
	return result, nil
}

// logger tolerates a zero-valued Harness.
func (h *Harness) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return h.Logger
}

// typeCheck loads the scratch module and returns all reported diagnostics.
func (h *Harness) typeCheck(dir string) ([]string, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedDeps | packages.NeedSyntax | packages.NeedTypes |
			packages.NeedTypesInfo,
		Dir: dir,
		Env: append(os.Environ(), "GOFLAGS=-mod=mod"),
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("loading scratch module: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, errors.New("loader returned no packages for scratch module")
	}

	var diags []string
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			diags = append(diags, e.Error())
		}
	})
	return diags, nil
}

// FindModuleRoot walks up from start (or the working directory when empty)
// to the nearest directory containing a go.mod.
func FindModuleRoot(start string) (string, error) {
	dir := start
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod found above %s", start)
		}
		dir = parent
	}
}
