package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/featureprobe/internal/probe"
)

// LengthResult is the JSON payload of the length command.
type LengthResult struct {
	Values []int32 `json:"values"`
	Length int32   `json:"length"`
}

// newProbe is the probe constructor used by the query commands.
var newProbe = probe.New

// NewLengthCommand creates the length command.
func NewLengthCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "length [ints...]",
		Short: "Query the length of a sequence through the probe's LengthQuery",
		Long: `Dispatch the given 32-bit integers through the probe's registered
LengthQuery implementation and print the element count.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLength(cmd, rootOpts, args)
		},
	}
	return cmd
}

func runLength(cmd *cobra.Command, opts *RootOptions, args []string) error {
	formatter := newFormatter(opts, cmd)

	values := make([]int32, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeBadArgument, fmt.Sprintf("invalid int32 value %q", arg), err)
		}
		values = append(values, int32(v))
	}

	result := LengthResult{Values: values, Length: newProbe().QueryLength(values)}

	return formatter.Success(result, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, result.Length)
		return err
	})
}
