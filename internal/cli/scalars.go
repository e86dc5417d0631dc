package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/featureprobe/internal/ir"
)

// ScalarsResult is the JSON payload of the scalars command.
type ScalarsResult struct {
	Encoding string `json:"encoding"`
	Data     string `json:"data"`
}

// NewScalarsCommand creates the scalars command.
func NewScalarsCommand(rootOpts *RootOptions) *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "scalars",
		Short: "Print the probe's scalar fields and values",
		Long: `Print the scalar bundle.

  json       canonical JSON object, scale as float32 bits
  constants  hex dump of the class-file constants: Long long_value,
             Long long_value_static, Float scale, Integer enabled, then
             one Integer per fixture value`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScalars(cmd, rootOpts, encoding)
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", EncodingJSON, "scalar encoding (json|constants)")

	return cmd
}

func runScalars(cmd *cobra.Command, opts *RootOptions, encoding string) error {
	formatter := newFormatter(opts, cmd)

	if !slices.Contains(ValidEncodings, encoding) {
		return formatter.Fail(ExitCommandError, ErrCodeBadArgument,
			fmt.Sprintf("invalid encoding %q: must be one of %v", encoding, ValidEncodings), nil)
	}

	p := newProbe()

	var data string
	switch encoding {
	case EncodingJSON:
		snap, err := p.Snapshot()
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, "failed to build snapshot", err)
		}
		b, err := ir.MarshalCanonical(snap["scalars"])
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, "failed to encode scalars", err)
		}
		data = string(b)
	case EncodingConstants:
		data = hex.EncodeToString(p.ScalarConstants())
	}

	result := ScalarsResult{Encoding: encoding, Data: data}
	return formatter.Success(result, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, result.Data)
		return err
	})
}
