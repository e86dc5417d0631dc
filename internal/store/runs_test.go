package store

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/featureprobe/internal/ir"
	"github.com/roach88/featureprobe/internal/testutil"
)

func testRun(t *testing.T, token string, seq int64) ir.RunRecord {
	t.Helper()

	snap := ir.IRObject{
		"values": ir.Int32s([]int32{1, 2, 3, 4, 5}),
		"nan":    ir.Bits64(0x7ff8000000000000),
	}
	snapID, err := ir.SnapshotID(snap)
	require.NoError(t, err)
	id, err := ir.RunID(token, snapID, seq)
	require.NoError(t, err)

	return ir.RunRecord{
		ID:               id,
		RunToken:         token,
		Seq:              seq,
		SnapshotID:       snapID,
		Snapshot:         snap,
		DivideSuppressed: true,
		ProbeVersion:     ir.ProbeVersion,
		IRVersion:        ir.IRVersion,
	}
}

func TestWriteAndReadRun(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	run := testRun(t, "run-1", 1)

	require.NoError(t, s.WriteRun(ctx, run))

	got, err := s.ReadRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run, got)
}

func TestWriteRun_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	run := testRun(t, "run-1", 1)

	require.NoError(t, s.WriteRun(ctx, run))
	require.NoError(t, s.WriteRun(ctx, run))

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestWriteRun_RejectsNullSnapshotValue(t *testing.T) {
	s := createTestStore(t)
	run := testRun(t, "run-1", 1)
	run.Snapshot = ir.IRObject{"bad": nil}

	assert.Error(t, s.WriteRun(context.Background(), run))
}

func TestReadRun_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadRun(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListRuns_DeterministicOrder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	clock := testutil.NewDeterministicClock()

	var written []ir.RunRecord
	for _, tok := range []string{"c", "a", "b"} {
		run := testRun(t, tok, clock.Next())
		written = append(written, run)
	}
	// Insert out of order; listing must still follow seq.
	for _, i := range []int{2, 0, 1} {
		require.NoError(t, s.WriteRun(ctx, written[i]))
	}

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	for i, run := range runs {
		assert.Equal(t, int64(i+1), run.Seq)
		assert.Equal(t, written[i].ID, run.ID)
	}
}

func TestListRuns_SameSeqOrdersByID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	a := testRun(t, "token-a", 1)
	b := testRun(t, "token-b", 1)
	require.NoError(t, s.WriteRun(ctx, a))
	require.NoError(t, s.WriteRun(ctx, b))

	want := []string{a.ID, b.ID}
	slices.Sort(want)

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, want, []string{runs[0].ID, runs[1].ID})
}

func TestListRuns_Empty(t *testing.T) {
	s := createTestStore(t)

	runs, err := s.ListRuns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestNextSeq(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	seq, err := s.NextSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)

	require.NoError(t, s.WriteRun(ctx, testRun(t, "run-1", 7)))

	seq, err = s.NextSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), seq)
}

func TestRunsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	ctx := context.Background()
	run := testRun(t, "run-1", 1)

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.WriteRun(ctx, run))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.ReadRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Snapshot, got.Snapshot)
}
