package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/featureprobe/internal/store"
)

// HistoryEntry is one recorded run as shown by the history command.
type HistoryEntry struct {
	Seq              int64  `json:"seq"`
	ID               string `json:"id"`
	RunToken         string `json:"run_token"`
	SnapshotID       string `json:"snapshot_id"`
	DivideSuppressed bool   `json:"divide_suppressed"`
	ProbeVersion     string `json:"probe_version"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:           "history",
		Short:         "List probe runs recorded with run --db",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, rootOpts, dbPath)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to read")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *RootOptions, dbPath string) error {
	formatter := newFormatter(opts, cmd)

	// Opening would create an empty database; a missing file is a usage error.
	if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("database not found: %s", dbPath), err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, "failed to open database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	runs, err := st.ListRuns(ctx)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, "failed to list runs", err)
	}

	entries := make([]HistoryEntry, 0, len(runs))
	for _, r := range runs {
		entries = append(entries, HistoryEntry{
			Seq:              r.Seq,
			ID:               r.ID,
			RunToken:         r.RunToken,
			SnapshotID:       r.SnapshotID,
			DivideSuppressed: r.DivideSuppressed,
			ProbeVersion:     r.ProbeVersion,
		})
	}

	return formatter.Success(entries, func(w io.Writer) error {
		if len(entries) == 0 {
			_, err := fmt.Fprintln(w, "no runs recorded")
			return err
		}
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%d\t%s\t%s\tsnapshot=%s\tdivide_suppressed=%t\n",
				e.Seq, e.ID, e.RunToken, e.SnapshotID, e.DivideSuppressed); err != nil {
				return err
			}
		}
		return nil
	})
}
