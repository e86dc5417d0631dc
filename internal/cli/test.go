package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/featureprobe/internal/harness"
)

// ScenarioResult is the result of running a single scenario file.
type ScenarioResult struct {
	Name   string   `json:"name"`
	File   string   `json:"file"`
	Pass   bool     `json:"pass"`
	Checks int      `json:"checks"`
	RunID  string   `json:"run_id,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult is the aggregate result of the test command.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test <scenario files...>",
		Short: "Run probe scenarios",
		Long: `Run YAML (.yaml, .yml) or CUE (.cue) scenario files against a fresh probe.

Exits 1 if any scenario fails and 2 if a file cannot be loaded.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(cmd, rootOpts, args)
		},
	}
	return cmd
}

func runTest(cmd *cobra.Command, opts *RootOptions, paths []string) error {
	formatter := newFormatter(opts, cmd)

	var result TestResult
	for _, path := range paths {
		scenario, err := harness.LoadScenario(path)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("failed to load scenario %s", path), err)
		}
		formatter.VerboseLog("Running scenario %s (%d checks)", scenario.Name, len(scenario.Checks))

		res, err := harness.RunWithLogger(scenario, slog.Default())
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, fmt.Sprintf("scenario %s could not run", scenario.Name), err)
		}

		result.Scenarios = append(result.Scenarios, ScenarioResult{
			Name:   scenario.Name,
			File:   path,
			Pass:   res.Pass,
			Checks: len(scenario.Checks),
			RunID:  res.RunID,
			Errors: res.Errors,
		})
		if res.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}
	result.Total = len(result.Scenarios)

	if err := formatter.Success(result, func(w io.Writer) error {
		return writeTestText(w, result)
	}); err != nil {
		return err
	}

	if result.Failed > 0 {
		exitErr := NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenarios failed", result.Failed, result.Total))
		exitErr.reported = true
		return exitErr
	}
	return nil
}

func writeTestText(w io.Writer, result TestResult) error {
	for _, s := range result.Scenarios {
		status := "PASS"
		if !s.Pass {
			status = "FAIL"
		}
		if _, err := fmt.Fprintf(w, "%s  %s (%s, %d checks)\n", status, s.Name, s.File, s.Checks); err != nil {
			return err
		}
		for _, e := range s.Errors {
			if _, err := fmt.Fprintf(w, "      %s\n", e); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "\n%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	return err
}
