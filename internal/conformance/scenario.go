package conformance

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Expectation values for Scenario.Expect.
const (
	// ExpectCompile requires the program to type-check cleanly.
	ExpectCompile = "compile"
	// ExpectReject requires the program to fail type checking with
	// diagnostics matching every pattern in Scenario.Diagnostics.
	ExpectReject = "reject"
)

// Scenario is one conformance case: a program plus the expected
// type-checker verdict.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what contract property the scenario exercises.
	Description string `yaml:"description"`

	// Expect is "compile" or "reject".
	Expect string `yaml:"expect"`

	// Diagnostics holds regular expressions; with expect "reject", each
	// must match at least one reported diagnostic. Ignored for "compile".
	Diagnostics []string `yaml:"diagnostics,omitempty"`

	// Source is the complete program, a single main package file.
	Source string `yaml:"source"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks structural requirements before a scenario runs.
func (s *Scenario) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !strings.Contains(s.Source, "package ") {
		return fmt.Errorf("source must be a complete Go file with a package clause")
	}

	switch s.Expect {
	case ExpectCompile:
		if len(s.Diagnostics) > 0 {
			return fmt.Errorf("expect %q does not take diagnostics", ExpectCompile)
		}
	case ExpectReject:
		if len(s.Diagnostics) == 0 {
			return fmt.Errorf("expect %q requires at least one diagnostic pattern", ExpectReject)
		}
	default:
		return fmt.Errorf("expect must be %q or %q, got %q", ExpectCompile, ExpectReject, s.Expect)
	}
	return nil
}

// FindScenarioFiles walks dir and returns all YAML scenario files, sorted.
// An optional glob filter matches against the base file name.
func FindScenarioFiles(dir, filter string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		if filter != "" {
			ok, err := filepath.Match(filter, filepath.Base(path))
			if err != nil {
				return fmt.Errorf("invalid filter %q: %w", filter, err)
			}
			if !ok {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
