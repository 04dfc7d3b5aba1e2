package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/lenvec/internal/conformance"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Filter string // scenario filter (glob pattern against base names)
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify <scenarios-dir>",
		Short: "Run the conformance scenarios",
		Long: `Type-check each scenario program against the working tree and compare
the verdict with the scenario's expectation. Rejection scenarios pass
only when the type checker refuses the program with the expected
diagnostics; nothing is ever executed.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, etc.)

Examples:
  lenvec verify internal/conformance/testdata/scenarios
  lenvec verify internal/conformance/testdata/scenarios --filter "reject_*"
  lenvec verify internal/conformance/testdata/scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")

	return cmd
}

func runVerify(opts *VerifyOptions, scenariosDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if _, err := os.Stat(scenariosDir); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("scenarios directory not found: %s", scenariosDir))
	}

	files, err := conformance.FindScenarioFiles(scenariosDir, opts.Filter)
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("finding scenarios: %v", err))
	}
	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No scenarios found.")
		return nil
	}

	h, err := conformance.New()
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("initializing harness: %v", err))
	}

	var results []*conformance.Result
	for _, f := range files {
		sc, err := conformance.LoadScenario(f)
		if err != nil {
			return NewExitError(ExitCommandError, err.Error())
		}
		formatter.VerboseLog("Running %s", sc.Name)

		result, err := h.Run(sc)
		if err != nil {
			return NewExitError(ExitCommandError, fmt.Sprintf("scenario %s: %v", sc.Name, err))
		}
		results = append(results, result)
	}

	report := conformance.BuildReport(results)
	if opts.Format == "json" {
		out, err := report.MarshalCanonical()
		if err != nil {
			return NewExitError(ExitCommandError, fmt.Sprintf("marshaling report: %v", err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		outputVerifyText(formatter, report)
	}

	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", report.Failed))
	}
	return nil
}

func outputVerifyText(f *OutputFormatter, report *conformance.Report) {
	for _, s := range report.Scenarios {
		if s.Pass {
			fmt.Fprintf(f.Writer, "PASS %s\n", s.Scenario)
			continue
		}
		fmt.Fprintf(f.Writer, "FAIL %s\n", s.Scenario)
		for _, e := range s.Errors {
			fmt.Fprintf(f.Writer, "     %s\n", e)
		}
	}
	fmt.Fprintf(f.Writer, "\n%d passed, %d failed, %d total\n", report.Passed, report.Failed, report.Total)
}
