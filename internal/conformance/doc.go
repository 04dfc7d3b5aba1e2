// Package conformance mechanizes the negative half of the lenvec contract:
// programs that index a vector out of range must fail to type-check.
//
// A scenario is a YAML file pairing a small Go program with an expectation.
// The harness writes the program into a scratch module whose go.mod replaces
// github.com/roach88/lenvec with this repository, runs the Go type checker
// over it via golang.org/x/tools/go/packages, and evaluates the expectation
// against the reported diagnostics. Nothing is ever executed; the behavior
// under test is a property of compilation, not of running code.
//
// # Scenario Format
//
//	name: reject_index_3_of_3
//	description: "Token 3 against a length-3 vector is out of range"
//	expect: reject
//	diagnostics:
//	  - "missing method isBelow3"
//	source: |
//	  package main
//	  ...
//
// Expectations:
//
//   - compile: the program must type-check with no diagnostics.
//   - reject: the program must produce at least one diagnostic, and every
//     entry under "diagnostics" is a regular expression that must match at
//     least one of them.
//
// # Determinism
//
// Each execution gets a run ID for report correlation; tests inject a
// FixedGenerator so reports compare stably. Reports serialize to canonical
// JSON (sorted keys, NFC-normalized strings, no floats) so that two runs
// over the same tree produce byte-identical output apart from run IDs.
//
// # Usage
//
//	h, err := conformance.New()
//	sc, err := conformance.LoadScenario("testdata/scenarios/reject_index_3_of_3.yaml")
//	result, err := h.Run(sc)
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package conformance
