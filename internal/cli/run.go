package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/featureprobe/internal/probe"
	"github.com/roach88/featureprobe/internal/store"
	"github.com/roach88/featureprobe/internal/token"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	*RootOptions
	DBPath string
	Tokens token.Generator
}

// RunResult is the JSON payload of the run command.
type RunResult struct {
	probe.Report
	RunID    string `json:"run_id,omitempty"`
	RunToken string `json:"run_token,omitempty"`
	Seq      int64  `json:"seq,omitempty"`
}

// NewRunCommand creates the run command. Recorded runs get UUIDv7 tokens.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(rootOpts, token.UUIDv7Generator{})
}

func newRunCommand(rootOpts *RootOptions, tokens token.Generator) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts, Tokens: tokens}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the probe demo",
		Long: `Build the probe, print the greeting and fixture values, combine the last
value with the scale, and exercise the suppressed division by zero.

With --db the run is recorded to a SQLite database under a fresh run token.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "record the run to this SQLite database")

	return cmd
}

func runRun(cmd *cobra.Command, opts *RunOptions) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	p := probe.New()

	// The demo output is the text rendering; JSON mode reports only the summary.
	demoOut := cmd.OutOrStdout()
	if opts.Format == "json" {
		demoOut = io.Discard
	}

	report, err := p.Run(demoOut)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, "failed to write demo output", err)
	}
	slog.Debug("probe run complete",
		"snapshot_id", report.SnapshotID,
		"divide_suppressed", report.DivideSuppressed)

	result := RunResult{Report: report}
	if opts.DBPath != "" {
		if err := recordRun(cmd.Context(), opts, p, &result); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStore, "failed to record run", err)
		}
		formatter.VerboseLog("Recorded run %s (seq %d) to %s", result.RunID, result.Seq, opts.DBPath)
	}

	if opts.Format == "json" {
		return formatter.Success(result, nil)
	}
	return nil
}

func recordRun(ctx context.Context, opts *RunOptions, p *probe.FeatureProbe, result *RunResult) error {
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	seq, err := st.NextSeq(ctx)
	if err != nil {
		return err
	}

	runToken := opts.Tokens.Generate()
	rec, err := p.Record(runToken, seq, result.Report)
	if err != nil {
		return err
	}
	if err := st.WriteRun(ctx, rec); err != nil {
		return err
	}

	result.RunID = rec.ID
	result.RunToken = runToken
	result.Seq = seq
	return nil
}
