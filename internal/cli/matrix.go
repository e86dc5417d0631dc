package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/featureprobe/internal/codec"
)

// Matrix encodings.
const (
	EncodingJSON      = "json"
	EncodingConstants = "constants"
)

// ValidEncodings defines the allowed matrix encodings.
var ValidEncodings = []string{EncodingJSON, EncodingConstants}

// MatrixResult is the JSON payload of the matrix command.
type MatrixResult struct {
	Encoding string `json:"encoding"`
	Data     string `json:"data"`
}

// NewMatrixCommand creates the matrix command.
func NewMatrixCommand(rootOpts *RootOptions) *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the probe's 2D float matrix",
		Long: `Print the 3x3 float matrix with every entry as its exact bit pattern.

  json       canonical JSON rows of hex strings
  constants  hex dump of the class-file Double constant encoding`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrix(cmd, rootOpts, encoding)
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", EncodingJSON, "matrix encoding (json|constants)")

	return cmd
}

func runMatrix(cmd *cobra.Command, opts *RootOptions, encoding string) error {
	formatter := newFormatter(opts, cmd)

	if !slices.Contains(ValidEncodings, encoding) {
		return formatter.Fail(ExitCommandError, ErrCodeBadArgument,
			fmt.Sprintf("invalid encoding %q: must be one of %v", encoding, ValidEncodings), nil)
	}

	rows := newProbe().Matrix2D().Rows()

	var data string
	switch encoding {
	case EncodingJSON:
		b, err := codec.MarshalMatrix2D(rows)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, "failed to encode matrix", err)
		}
		data = string(b)
	case EncodingConstants:
		b, err := codec.EncodeMatrixConstants(rows)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, "failed to encode matrix", err)
		}
		data = hex.EncodeToString(b)
	}

	result := MatrixResult{Encoding: encoding, Data: data}
	return formatter.Success(result, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, result.Data)
		return err
	})
}
