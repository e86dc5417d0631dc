package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"

	"github.com/roach88/featureprobe/internal/codec"
	"github.com/roach88/featureprobe/internal/ir"
	"github.com/roach88/featureprobe/internal/numeric"
	"github.com/roach88/featureprobe/internal/probe"
	"github.com/roach88/featureprobe/internal/store"
	"github.com/roach88/featureprobe/internal/testutil"
	"github.com/roach88/featureprobe/internal/token"
)

// Harness executes checks against one probe with deterministic helpers.
type Harness struct {
	probe    *probe.FeatureProbe
	store    *store.Store
	clock    *testutil.DeterministicClock
	tokenGen token.Generator
	logger   *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Each scenario runs against a new probe and a fresh in-memory database.
// The returned error covers infrastructure failures only; failed checks are
// reported in Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// RunWithLogger is Run with a caller-supplied logger for check diagnostics.
func RunWithLogger(scenario *Scenario, logger *slog.Logger) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	h := &Harness{
		probe:    probe.New(),
		store:    st,
		clock:    testutil.NewDeterministicClock(),
		tokenGen: testutil.NewFixedTokenGenerator(scenario.RunToken),
		logger:   logger.With("scenario", scenario.Name),
	}

	result := NewResult()
	for i, check := range scenario.Checks {
		if err := h.runCheck(i, check, result); err != nil {
			return nil, fmt.Errorf("checks[%d] (%s): %w", i, check.Op, err)
		}
	}

	if err := h.recordRun(context.Background(), result); err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}
	return result, nil
}

func (h *Harness) runCheck(i int, c Check, result *Result) error {
	seq := h.clock.Next()

	var (
		got    ir.IRValue
		passed = true
	)

	switch c.Op {
	case OpCombine:
		b, err := numeric.ParseFloat32(c.B)
		if err != nil {
			return err
		}
		n := h.probe.Combine(c.A, b)
		got = ir.IRInt(n)
		if c.Want != nil && *c.Want != n {
			passed = false
			result.AddError(fmt.Sprintf("checks[%d]: combine(%d, %s) = %d, want %d", i, c.A, c.B, n, *c.Want))
		}

	case OpLength:
		n := int64(h.probe.QueryLength(c.Values))
		got = ir.IRInt(n)
		if c.Want != nil && *c.Want != n {
			passed = false
			result.AddError(fmt.Sprintf("checks[%d]: length = %d, want %d", i, n, *c.Want))
		}

	case OpDivide:
		suppressed := h.probe.DiagnosticDivide()
		got = ir.IRBool(suppressed)
		if !suppressed {
			passed = false
			result.AddError(fmt.Sprintf("checks[%d]: division by zero was not reported", i))
		}

	case OpFlatten3D:
		flat := h.probe.Flatten3D()
		got = ir.Int32s(flat)
		if c.WantSequence != nil && !slices.Equal(c.WantSequence, flat) {
			passed = false
			result.AddError(fmt.Sprintf("checks[%d]: flatten3d = %v, want %v", i, flat, c.WantSequence))
		}

	case OpMatrixRoundTrip:
		ok, err := h.matrixRoundTrip()
		if err != nil {
			return err
		}
		got = ir.IRBool(ok)
		if !ok {
			passed = false
			result.AddError(fmt.Sprintf("checks[%d]: matrix round trip changed bit patterns", i))
		}

	case OpConstRoundTrip:
		ok, err := h.constantsRoundTrip()
		if err != nil {
			return err
		}
		got = ir.IRBool(ok)
		if !ok {
			passed = false
			result.AddError(fmt.Sprintf("checks[%d]: scalar constants round trip changed values", i))
		}

	default:
		return fmt.Errorf("unknown op %q", c.Op)
	}

	h.logger.Debug("check", "seq", seq, "op", c.Op, "passed", passed)
	result.AddTrace(seq, c.Op, got, passed)
	return nil
}

// matrixRoundTrip pushes Matrix2D through both encodings and compares bits.
func (h *Harness) matrixRoundTrip() (bool, error) {
	rows := h.probe.Matrix2D().Rows()

	data, err := codec.MarshalMatrix2D(rows)
	if err != nil {
		return false, err
	}
	fromJSON, err := codec.UnmarshalMatrix2D(data)
	if err != nil {
		return false, err
	}

	constants, err := codec.EncodeMatrixConstants(rows)
	if err != nil {
		return false, err
	}
	fromConstants, err := codec.DecodeMatrixConstants(constants)
	if err != nil {
		return false, err
	}

	return sameBits(rows, fromJSON) && sameBits(rows, fromConstants), nil
}

// constantsRoundTrip decodes the scalar constant pool and compares it with
// the probe state. Scale is compared by bits.
func (h *Harness) constantsRoundTrip() (bool, error) {
	s, values, err := probe.DecodeScalarConstants(h.probe.ScalarConstants())
	if err != nil {
		return false, err
	}

	want := h.probe.Scalars()
	return s.LongValue == want.LongValue &&
		s.LongValueStatic == want.LongValueStatic &&
		math.Float32bits(s.Scale) == math.Float32bits(want.Scale) &&
		s.Enabled == want.Enabled &&
		slices.Equal(values, h.probe.Values()), nil
}

func sameBits(a, b [][]float64) bool {
	return slices.EqualFunc(a, b, func(x, y []float64) bool {
		return slices.EqualFunc(x, y, func(p, q float64) bool {
			return math.Float64bits(p) == math.Float64bits(q)
		})
	})
}

// recordRun runs the probe demo, stores it, and reads it back.
func (h *Harness) recordRun(ctx context.Context, result *Result) error {
	report, err := h.probe.Run(io.Discard)
	if err != nil {
		return err
	}

	rec, err := h.probe.Record(h.tokenGen.Generate(), h.clock.Next(), report)
	if err != nil {
		return err
	}
	if err := h.store.WriteRun(ctx, rec); err != nil {
		return err
	}

	stored, err := h.store.ReadRun(ctx, rec.ID)
	if err != nil {
		return err
	}
	if id, err := ir.SnapshotID(stored.Snapshot); err != nil || id != rec.SnapshotID {
		result.AddError(fmt.Sprintf("stored snapshot does not match run %s", rec.ID))
	}

	result.RunID = rec.ID
	return nil
}
