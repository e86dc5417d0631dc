package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/featureprobe/internal/numeric"
)

// CombineResult is the JSON payload of the combine command.
type CombineResult struct {
	A      int32  `json:"a"`
	B      string `json:"b"`
	Result int64  `json:"result"`
}

// NewCombineCommand creates the combine command.
func NewCombineCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine <a> <b>",
		Short: "Compute 5 + a + trunc(b) + 5 with 64-bit wraparound",
		Long: `Combine widens the 32-bit integer a, truncates the 32-bit float b toward
zero (NaN becomes 0, out-of-range values saturate), and adds both to the
constant offsets with two's-complement wraparound.

b accepts decimal or hex-float text (0x1p-2), NaN, +Inf, -Inf, or raw float32
bits as 0x7fc00000.
Pass negative operands after "--".`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(cmd, rootOpts, args[0], args[1])
		},
	}
	return cmd
}

func runCombine(cmd *cobra.Command, opts *RootOptions, rawA, rawB string) error {
	formatter := newFormatter(opts, cmd)

	a, err := strconv.ParseInt(rawA, 10, 32)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBadArgument, fmt.Sprintf("invalid int32 operand %q", rawA), err)
	}
	b, err := numeric.ParseFloat32(rawB)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBadArgument, fmt.Sprintf("invalid float32 operand %q", rawB), err)
	}

	p := newProbe()
	result := CombineResult{A: int32(a), B: rawB, Result: p.Combine(int32(a), b)}

	return formatter.Success(result, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, result.Result)
		return err
	})
}
