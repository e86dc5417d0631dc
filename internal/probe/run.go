package probe

import (
	"fmt"
	"io"
)

// Report summarizes one Run.
type Report struct {
	SnapshotID       string `json:"snapshot_id"`
	Combined         int64  `json:"combined"`
	Length           int32  `json:"length"`
	DivideSuppressed bool   `json:"divide_suppressed"`
}

// Print writes i on its own line.
func Print(w io.Writer, i int32) error {
	_, err := fmt.Fprintln(w, i)
	return err
}

// Run is the demo harness. It prints the greeting and the fixture values,
// performs one Combine and one QueryLength, and runs DiagnosticDivide.
// Only write errors are returned.
func (p *FeatureProbe) Run(w io.Writer) (Report, error) {
	var report Report

	if _, err := fmt.Fprintln(w, p.scalars.Greeting); err != nil {
		return report, err
	}
	for _, v := range p.values {
		if err := Print(w, v); err != nil {
			return report, err
		}
	}

	last := p.values[len(p.values)-1]
	report.Combined = p.Combine(last, p.scalars.Scale)
	report.Length = p.QueryLength(p.values[:])
	report.DivideSuppressed = p.DiagnosticDivide()

	id, err := p.SnapshotID()
	if err != nil {
		return report, err
	}
	report.SnapshotID = id

	if _, err := fmt.Fprintf(w, "combine(%d, %g) = %d\n", last, p.scalars.Scale, report.Combined); err != nil {
		return report, err
	}
	if _, err := fmt.Fprintf(w, "length = %d\n", report.Length); err != nil {
		return report, err
	}
	return report, nil
}
