// Package harness runs feature probe scenarios.
//
// A scenario is a named list of checks against a freshly constructed probe.
// Each check produces one trace event. The full trace can be compared
// against a golden file (testdata/golden/<name>.golden) written as canonical
// JSON, so repeated runs are byte-identical.
//
// Scenarios are loaded from YAML (strict: unknown fields are rejected) or
// from CUE. Float operands are written as text because neither format has a
// portable NaN literal:
//
//	checks:
//	  - op: combine
//	    a: 1
//	    b: "NaN"
//	    want: 11
//
// After the checks, the probe demo is run once and recorded to an in-memory
// store. The stored snapshot must read back unchanged.
package harness
