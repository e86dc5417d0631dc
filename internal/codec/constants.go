package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Constant-pool tags.
const (
	TagInteger byte = 3
	TagFloat   byte = 4
	TagLong    byte = 5
	TagDouble  byte = 6
)

// AppendIntegerConstant appends an Integer constant (tag + u4).
func AppendIntegerConstant(dst []byte, v int32) []byte {
	dst = append(dst, TagInteger)
	return binary.BigEndian.AppendUint32(dst, uint32(v))
}

// AppendFloatConstant appends a Float constant (tag + u4 bits).
func AppendFloatConstant(dst []byte, f float32) []byte {
	dst = append(dst, TagFloat)
	return binary.BigEndian.AppendUint32(dst, math.Float32bits(f))
}

// AppendLongConstant appends a Long constant (tag + u8).
func AppendLongConstant(dst []byte, v int64) []byte {
	dst = append(dst, TagLong)
	return binary.BigEndian.AppendUint64(dst, uint64(v))
}

// AppendDoubleConstant appends a Double constant (tag + u8 bits).
func AppendDoubleConstant(dst []byte, f float64) []byte {
	dst = append(dst, TagDouble)
	return binary.BigEndian.AppendUint64(dst, math.Float64bits(f))
}

// ReadIntegerConstant reads an Integer constant and returns the rest.
func ReadIntegerConstant(src []byte) (int32, []byte, error) {
	body, rest, err := readConstant(src, TagInteger, 4)
	if err != nil {
		return 0, src, err
	}
	return int32(binary.BigEndian.Uint32(body)), rest, nil
}

// ReadFloatConstant reads a Float constant and returns the rest.
func ReadFloatConstant(src []byte) (float32, []byte, error) {
	body, rest, err := readConstant(src, TagFloat, 4)
	if err != nil {
		return 0, src, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(body)), rest, nil
}

// ReadLongConstant reads a Long constant and returns the rest.
func ReadLongConstant(src []byte) (int64, []byte, error) {
	body, rest, err := readConstant(src, TagLong, 8)
	if err != nil {
		return 0, src, err
	}
	return int64(binary.BigEndian.Uint64(body)), rest, nil
}

// ReadDoubleConstant reads a Double constant and returns the rest.
func ReadDoubleConstant(src []byte) (float64, []byte, error) {
	body, rest, err := readConstant(src, TagDouble, 8)
	if err != nil {
		return 0, src, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(body)), rest, nil
}

func readConstant(src []byte, tag byte, size int) (body, rest []byte, err error) {
	op := fmt.Sprintf("read constant tag %d", tag)
	if len(src) < 1+size {
		return nil, nil, newError(op, 0, ErrTruncated)
	}
	if src[0] != tag {
		return nil, nil, newError(op, 0, fmt.Errorf("%w: got %d", ErrBadTag, src[0]))
	}
	return src[1 : 1+size], src[1+size:], nil
}

// EncodeMatrixConstants writes u2 rows, u2 cols, then one Double constant
// per entry in row-major order.
func EncodeMatrixConstants(rows [][]float64) ([]byte, error) {
	cols, err := shape(rows)
	if err != nil {
		return nil, err
	}
	if len(rows) > math.MaxUint16 || cols > math.MaxUint16 {
		return nil, newError("encode matrix constants", -1, fmt.Errorf("%w: %dx%d exceeds u2", ErrShape, len(rows), cols))
	}

	out := make([]byte, 0, 4+len(rows)*cols*9)
	out = binary.BigEndian.AppendUint16(out, uint16(len(rows)))
	out = binary.BigEndian.AppendUint16(out, uint16(cols))
	for _, row := range rows {
		for _, f := range row {
			out = AppendDoubleConstant(out, f)
		}
	}
	return out, nil
}

// DecodeMatrixConstants reverses EncodeMatrixConstants.
func DecodeMatrixConstants(data []byte) ([][]float64, error) {
	const op = "decode matrix constants"
	if len(data) < 4 {
		return nil, newError(op, 0, ErrTruncated)
	}
	nrows := int(binary.BigEndian.Uint16(data[0:2]))
	ncols := int(binary.BigEndian.Uint16(data[2:4]))

	rest := data[4:]
	rows := make([][]float64, nrows)
	for i := range rows {
		rows[i] = make([]float64, ncols)
		for j := range rows[i] {
			offset := len(data) - len(rest)
			f, next, err := ReadDoubleConstant(rest)
			if err != nil {
				return nil, newError(op, offset, err)
			}
			rows[i][j] = f
			rest = next
		}
	}
	if len(rest) > 0 {
		return nil, newError(op, len(data)-len(rest), ErrTrailing)
	}
	return rows, nil
}
