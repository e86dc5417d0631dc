package ir

// RunRecord is one recorded execution of the probe demo.
type RunRecord struct {
	// ID is the content-addressed run ID (see RunID).
	ID string `json:"id"`

	// RunToken groups the record with the CLI invocation that produced it.
	RunToken string `json:"run_token"`

	// Seq is the logical clock value. Never a timestamp.
	Seq int64 `json:"seq"`

	// SnapshotID is the content-addressed ID of Snapshot.
	SnapshotID string `json:"snapshot_id"`

	// Snapshot is the canonical probe state at the time of the run.
	Snapshot IRObject `json:"snapshot"`

	// DivideSuppressed records whether the guarded division failed and was
	// discarded.
	DivideSuppressed bool `json:"divide_suppressed"`

	// ProbeVersion and IRVersion stamp the producing build.
	ProbeVersion string `json:"probe_version"`
	IRVersion    string `json:"ir_version"`
}
