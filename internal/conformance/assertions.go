package conformance

import (
	"fmt"
	"regexp"
	"strings"
)

// AssertionError is returned when the type-checker verdict does not match
// a scenario's expectation. It carries the full diagnostic list so a
// failure is debuggable from the message alone.
type AssertionError struct {
	Type        string   // "compile" or "reject"
	Expected    string   // human-readable expected outcome
	Actual      string   // human-readable actual outcome
	Diagnostics []string // everything the type checker reported
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Diagnostics) > 0 {
		fmt.Fprintf(&buf, "\nDiagnostics:\n")
		for i, d := range e.Diagnostics {
			fmt.Fprintf(&buf, "  [%d] %s\n", i+1, d)
		}
	}
	return buf.String()
}

// assertCompiled verifies that no diagnostics were reported.
func assertCompiled(diags []string) error {
	if len(diags) == 0 {
		return nil
	}
	return &AssertionError{
		Type:        ExpectCompile,
		Expected:    "program type-checks with no diagnostics",
		Actual:      fmt.Sprintf("%d diagnostic(s) reported", len(diags)),
		Diagnostics: diags,
	}
}

// assertRejected verifies that the program failed to type-check and that
// every pattern matches at least one diagnostic.
func assertRejected(diags []string, patterns []string) error {
	if len(diags) == 0 {
		return &AssertionError{
			Type:     ExpectReject,
			Expected: "program fails type checking",
			Actual:   "program type-checked cleanly",
		}
	}

	for _, pat := range patterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return fmt.Errorf("invalid diagnostic pattern %q: %w", pat, err)
		}
		if !matchAny(re, diags) {
			return &AssertionError{
				Type:        ExpectReject,
				Expected:    fmt.Sprintf("a diagnostic matching %q", pat),
				Actual:      "no diagnostic matched",
				Diagnostics: diags,
			}
		}
	}
	return nil
}

func matchAny(re *regexp.Regexp, diags []string) bool {
	for _, d := range diags {
		if re.MatchString(d) {
			return true
		}
	}
	return false
}
