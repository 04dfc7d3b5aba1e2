package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/lenvec/internal/gen"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Config string
	Dir    string
}

// CheckResult reports generated-file freshness.
type CheckResult struct {
	Fresh bool     `json:"fresh"`
	Stale []string `json:"stale,omitempty"`
}

// String renders the text-format output.
func (r CheckResult) String() string {
	if r.Fresh {
		return "Generated files are up to date."
	}
	return fmt.Sprintf("Stale generated files: %s (run \"lenvec gen\")", strings.Join(r.Stale, ", "))
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that generated files are fresh",
		Long: `Regenerate the families in memory and compare against the checked-in
files without writing anything.

Exit codes:
  0 - Generated files match
  1 - One or more files are stale
  2 - Command error (bad config, unreadable files)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "config file path")
	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "repository root for output paths")

	return cmd
}

func runCheck(opts *CheckOptions, cmd *cobra.Command) error {
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

	files, err := gen.Emit(cfg)
	if err != nil {
		return NewExitError(ExitCommandError, err.Error())
	}

	result := CheckResult{Fresh: true}
	for _, f := range files {
		path := filepath.Join(opts.Dir, f.Path)
		onDisk, err := os.ReadFile(path)
		if err != nil {
			if ferr := formatter.Error(ErrCodeNotFound, fmt.Sprintf("reading %s: %v", path, err), nil); ferr != nil {
				return ferr
			}
			return NewExitError(ExitCommandError, "generated file missing")
		}
		if !bytes.Equal(onDisk, f.Content) {
			result.Fresh = false
			result.Stale = append(result.Stale, f.Path)
		}
		formatter.VerboseLog("Compared %s", path)
	}

	if err := formatter.Success(result); err != nil {
		return err
	}
	if !result.Fresh {
		return NewExitError(ExitFailure, "generated files are stale")
	}
	return nil
}
