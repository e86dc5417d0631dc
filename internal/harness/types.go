package harness

import (
	"github.com/roach88/featureprobe/internal/ir"
)

// Result holds the outcome of one scenario run.
type Result struct {
	// Pass is true when every check met its expectation.
	Pass bool `json:"pass"`

	// Trace has one event per check, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors holds failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// RunID is the ID of the recorded probe run.
	RunID string `json:"run_id,omitempty"`
}

// TraceEvent records one check.
type TraceEvent struct {
	Seq    int64      `json:"seq"`
	Op     string     `json:"op"`
	Got    ir.IRValue `json:"got"`
	Passed bool       `json:"passed"`
}

// NewResult creates a passing result with an empty trace.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a trace event.
func (r *Result) AddTrace(seq int64, op string, got ir.IRValue, passed bool) {
	r.Trace = append(r.Trace, TraceEvent{Seq: seq, Op: op, Got: got, Passed: passed})
}
