package conformance

// Result is the outcome of one scenario execution.
type Result struct {
	// Scenario is the name of the executed scenario.
	Scenario string `json:"scenario"`

	// RunID correlates this execution with report entries and logs.
	RunID string `json:"run_id"`

	// Pass is true when the type-checker verdict matched the expectation.
	Pass bool `json:"pass"`

	// Diagnostics are the raw type-checker messages, in reported order.
	// Present for both verdicts; a passing "reject" scenario keeps its
	// diagnostics so reviewers can see what the compiler said.
	Diagnostics []string `json:"diagnostics,omitempty"`

	// Errors holds expectation mismatches. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// AddError records an expectation mismatch and marks the result failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}
