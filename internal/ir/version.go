package ir

// Version constants stamped on stored runs.
const (
	// IRVersion is the snapshot schema version.
	IRVersion = "1"

	// ProbeVersion is the feature probe version.
	ProbeVersion = "0.1.0"
)
