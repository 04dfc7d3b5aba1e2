package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/lenvec/internal/gen"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	*RootOptions
	Config string // config file path; empty means <dir>/lenvec.yaml or defaults
	Dir    string // repository root the output paths are relative to
}

// GenResult holds the outcome of a generation run.
type GenResult struct {
	Ceiling int      `json:"ceiling"`
	Files   []string `json:"files"`
}

// String renders the text-format output.
func (r GenResult) String() string {
	return fmt.Sprintf("Generated %d file(s) for ceiling %d: %v", len(r.Files), r.Ceiling, r.Files)
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the token and marker families",
		Long: `Generate the index token and length marker families plus the
arity-inferring constructors, at the ceiling set in lenvec.yaml.

Without --config, <dir>/lenvec.yaml is used when present; otherwise the
built-in defaults apply (ceiling 16).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "config file path")
	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "repository root for output paths")

	return cmd
}

func runGen(opts *GenOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, errs := resolveConfig(opts.Config, opts.Dir)
	if len(errs) > 0 {
		if err := formatter.Error(ErrCodeConfig, "invalid configuration", errorStrings(errs)); err != nil {
			return err
		}
		return NewExitError(ExitCommandError, "invalid configuration")
	}
	formatter.VerboseLog("Emitting families for ceiling %d", cfg.Ceiling)

	files, err := gen.Emit(cfg)
	if err != nil {
		if ferr := formatter.Error(ErrCodeGeneric, err.Error(), nil); ferr != nil {
			return ferr
		}
		return NewExitError(ExitCommandError, "generation failed")
	}

	result := GenResult{Ceiling: cfg.Ceiling}
	for _, f := range files {
		path := filepath.Join(opts.Dir, f.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return NewExitError(ExitCommandError, fmt.Sprintf("creating %s: %v", filepath.Dir(path), err))
		}
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			if ferr := formatter.Error(ErrCodeWrite, fmt.Sprintf("writing %s: %v", path, err), nil); ferr != nil {
				return ferr
			}
			return NewExitError(ExitCommandError, "write failed")
		}
		formatter.VerboseLog("Wrote %s", path)
		result.Files = append(result.Files, f.Path)
	}

	return formatter.Success(result)
}

// resolveConfig picks the effective generator config: an explicit --config
// path, else <dir>/lenvec.yaml when present, else the built-in defaults.
func resolveConfig(configPath, dir string) (*gen.Config, []error) {
	if configPath != "" {
		return gen.LoadConfig(configPath)
	}

	implicit := filepath.Join(dir, "lenvec.yaml")
	if _, err := os.Stat(implicit); err == nil {
		return gen.LoadConfig(implicit)
	}
	return gen.DefaultConfig(), nil
}

func errorStrings(errs []error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}
