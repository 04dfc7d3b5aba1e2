package gen

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

// Configuration error codes (E200-E299).
const (
	ErrConfigRead   = "E201" // config file unreadable
	ErrConfigParse  = "E202" // config file is not valid YAML
	ErrConfigSchema = "E203" // config violates the schema
)

//go:embed schema.cue
var schemaSource []byte

// Config drives family generation. The ceiling is the number of index
// tokens; length markers run from zero to the ceiling inclusive, so a
// ceiling of 16 supports vectors up to length 16.
type Config struct {
	Ceiling int        `yaml:"ceiling" json:"ceiling"`
	Nat     NatSpec    `yaml:"nat" json:"nat"`
	Vector  VectorSpec `yaml:"vector" json:"vector"`
}

// NatSpec locates the generated token and marker family.
type NatSpec struct {
	Package string `yaml:"package" json:"package"`
	Output  string `yaml:"output" json:"output"`
}

// VectorSpec locates the generated constructor set.
type VectorSpec struct {
	Package   string `yaml:"package" json:"package"`
	Output    string `yaml:"output" json:"output"`
	NatImport string `yaml:"nat_import" json:"nat_import"`
}

// ValidationError describes one schema violation in a config file.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// DefaultConfig returns the configuration used when no lenvec.yaml exists:
// ceiling 16, families written to nat/nat_gen.go and of_gen.go.
func DefaultConfig() *Config {
	return &Config{
		Ceiling: 16,
		Nat: NatSpec{
			Package: "nat",
			Output:  "nat/nat_gen.go",
		},
		Vector: VectorSpec{
			Package:   "lenvec",
			Output:    "of_gen.go",
			NatImport: "github.com/roach88/lenvec/nat",
		},
	}
}

// LoadConfig reads and validates a YAML config file. Omitted fields keep
// their defaults. Returns all schema violations, not just the first.
func LoadConfig(path string) (*Config, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{ValidationError{
			Field:   "config",
			Message: fmt.Sprintf("reading %s: %v", path, err),
			Code:    ErrConfigRead,
		}}
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, []error{ValidationError{
			Field:   "config",
			Message: fmt.Sprintf("parsing %s: %v", path, err),
			Code:    ErrConfigParse,
		}}
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, errs
	}
	return cfg, nil
}

// Validate checks a config against the embedded CUE schema.
// Returns all violations found (does not fail-fast).
func Validate(cfg *Config) []error {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaSource)
	if err := schema.Err(); err != nil {
		// The schema is embedded; a compile failure is a programming error.
		panic(fmt.Sprintf("gen: embedded schema is invalid: %v", err))
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	unified := def.Unify(ctx.Encode(cfg))
	err := unified.Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var errs []error
	for _, e := range cueerrors.Errors(err) {
		errs = append(errs, ValidationError{
			Field:   strings.Join(e.Path(), "."),
			Message: e.Error(),
			Code:    ErrConfigSchema,
		})
	}
	return errs
}
