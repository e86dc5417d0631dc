package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/featureprobe/internal/ir"
)

// WriteRun inserts a run record.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate IDs are
// silently ignored.
func (s *Store) WriteRun(ctx context.Context, run ir.RunRecord) error {
	snapshot, err := ir.MarshalCanonical(run.Snapshot)
	if err != nil {
		return fmt.Errorf("write run: marshal snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, run_token, seq, snapshot_id, snapshot, divide_suppressed, probe_version, ir_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.RunToken,
		run.Seq,
		run.SnapshotID,
		string(snapshot),
		run.DivideSuppressed,
		run.ProbeVersion,
		run.IRVersion,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

const selectRun = `
	SELECT id, run_token, seq, snapshot_id, snapshot, divide_suppressed, probe_version, ir_version
	FROM runs`

// ReadRun returns the run with the given ID, or ErrNotFound.
func (s *Store) ReadRun(ctx context.Context, id string) (ir.RunRecord, error) {
	row := s.db.QueryRowContext(ctx, selectRun+` WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.RunRecord{}, fmt.Errorf("read run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return ir.RunRecord{}, fmt.Errorf("read run %s: %w", id, err)
	}
	return run, nil
}

// ListRuns returns all runs in deterministic order.
func (s *Store) ListRuns(ctx context.Context) ([]ir.RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectRun+` ORDER BY seq ASC, id COLLATE BINARY ASC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []ir.RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// NextSeq returns one past the highest stored seq (1 for an empty store).
func (s *Store) NextSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next seq: %w", err)
	}
	return seq, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (ir.RunRecord, error) {
	var (
		run      ir.RunRecord
		snapshot string
	)
	err := row.Scan(
		&run.ID,
		&run.RunToken,
		&run.Seq,
		&run.SnapshotID,
		&snapshot,
		&run.DivideSuppressed,
		&run.ProbeVersion,
		&run.IRVersion,
	)
	if err != nil {
		return ir.RunRecord{}, err
	}

	run.Snapshot, err = ir.UnmarshalIRObject([]byte(snapshot))
	if err != nil {
		return ir.RunRecord{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return run, nil
}
