package codec

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by CodecError.
var (
	ErrTruncated = errors.New("input truncated")
	ErrBadTag    = errors.New("unexpected constant tag")
	ErrShape     = errors.New("matrix is not rectangular")
	ErrTrailing  = errors.New("trailing bytes after matrix")
	ErrBitWidth  = errors.New("malformed bit pattern")
)

// CodecError reports where encoding or decoding failed.
type CodecError struct {
	// Op names the failing operation ("read double", "decode matrix2d", ...).
	Op string

	// Offset is the byte offset for binary input, or -1 when not applicable.
	Offset int

	Err error
}

func (e *CodecError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %v", e.Op, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

func newError(op string, offset int, err error) *CodecError {
	return &CodecError{Op: op, Offset: offset, Err: err}
}
