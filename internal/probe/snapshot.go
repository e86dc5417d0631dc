package probe

import (
	"fmt"
	"math"

	"github.com/roach88/featureprobe/internal/codec"
	"github.com/roach88/featureprobe/internal/ir"
)

// Snapshot returns the canonical view of the probe state.
// Floats are carried as hex bit patterns.
func (p *FeatureProbe) Snapshot() (ir.IRObject, error) {
	matrix, err := codec.EncodeMatrix2D(p.matrix.Rows())
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	return ir.IRObject{
		"scalars": ir.IRObject{
			"long_value":        ir.IRInt(p.scalars.LongValue),
			"long_value_static": ir.IRInt(p.scalars.LongValueStatic),
			"scale":             ir.Bits32(math.Float32bits(p.scalars.Scale)),
			"enabled":           ir.IRBool(p.scalars.Enabled),
			"greeting":          ir.IRString(p.scalars.Greeting),
		},
		"values":   ir.Int32s(p.values[:]),
		"matrix2d": matrix,
		"matrix3d": codec.EncodeMatrix3D(p.cube.Nested()),
	}, nil
}

// SnapshotID returns the content-addressed ID of Snapshot.
func (p *FeatureProbe) SnapshotID() (string, error) {
	snap, err := p.Snapshot()
	if err != nil {
		return "", err
	}
	return ir.SnapshotID(snap)
}

// Record builds the stored form of a Run.
func (p *FeatureProbe) Record(runToken string, seq int64, report Report) (ir.RunRecord, error) {
	snap, err := p.Snapshot()
	if err != nil {
		return ir.RunRecord{}, err
	}
	snapshotID, err := ir.SnapshotID(snap)
	if err != nil {
		return ir.RunRecord{}, err
	}
	id, err := ir.RunID(runToken, snapshotID, seq)
	if err != nil {
		return ir.RunRecord{}, err
	}

	return ir.RunRecord{
		ID:               id,
		RunToken:         runToken,
		Seq:              seq,
		SnapshotID:       snapshotID,
		Snapshot:         snap,
		DivideSuppressed: report.DivideSuppressed,
		ProbeVersion:     ir.ProbeVersion,
		IRVersion:        ir.IRVersion,
	}, nil
}
