package codec

import (
	"fmt"
	"math"

	"github.com/roach88/featureprobe/internal/ir"
)

// shape returns the column count, or ErrShape for ragged input.
func shape(rows [][]float64) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return 0, newError("matrix shape", -1, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(row), cols))
		}
	}
	return cols, nil
}

// EncodeMatrix2D converts rows of floats to nested arrays of 64-bit hex
// bit patterns.
func EncodeMatrix2D(rows [][]float64) (ir.IRArray, error) {
	if _, err := shape(rows); err != nil {
		return nil, err
	}

	out := make(ir.IRArray, len(rows))
	for i, row := range rows {
		cells := make(ir.IRArray, len(row))
		for j, f := range row {
			cells[j] = ir.Bits64(math.Float64bits(f))
		}
		out[i] = cells
	}
	return out, nil
}

// DecodeMatrix2D reverses EncodeMatrix2D.
func DecodeMatrix2D(v ir.IRValue) ([][]float64, error) {
	const op = "decode matrix2d"

	arr, ok := v.(ir.IRArray)
	if !ok {
		return nil, newError(op, -1, fmt.Errorf("expected array, got %T", v))
	}

	rows := make([][]float64, len(arr))
	for i, rowVal := range arr {
		cells, ok := rowVal.(ir.IRArray)
		if !ok {
			return nil, newError(op, -1, fmt.Errorf("row %d: expected array, got %T", i, rowVal))
		}
		rows[i] = make([]float64, len(cells))
		for j, cell := range cells {
			bits, err := ir.ParseBits(cell, 64)
			if err != nil {
				return nil, newError(op, -1, fmt.Errorf("%w: [%d][%d]: %v", ErrBitWidth, i, j, err))
			}
			rows[i][j] = math.Float64frombits(bits)
		}
	}

	if _, err := shape(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MarshalMatrix2D encodes rows as canonical JSON.
func MarshalMatrix2D(rows [][]float64) ([]byte, error) {
	arr, err := EncodeMatrix2D(rows)
	if err != nil {
		return nil, err
	}
	return ir.MarshalCanonical(arr)
}

// UnmarshalMatrix2D decodes canonical JSON produced by MarshalMatrix2D.
func UnmarshalMatrix2D(data []byte) ([][]float64, error) {
	v, err := ir.UnmarshalIRValue(data)
	if err != nil {
		return nil, newError("unmarshal matrix2d", -1, err)
	}
	return DecodeMatrix2D(v)
}

// EncodeMatrix3D converts a nested integer block to nested arrays.
func EncodeMatrix3D(planes [][][]int32) ir.IRArray {
	out := make(ir.IRArray, len(planes))
	for i, plane := range planes {
		rows := make(ir.IRArray, len(plane))
		for j, row := range plane {
			rows[j] = ir.Int32s(row)
		}
		out[i] = rows
	}
	return out
}

// DecodeMatrix3D reverses EncodeMatrix3D. Values outside int32 are rejected.
func DecodeMatrix3D(v ir.IRValue) ([][][]int32, error) {
	const op = "decode matrix3d"

	planes, ok := v.(ir.IRArray)
	if !ok {
		return nil, newError(op, -1, fmt.Errorf("expected array, got %T", v))
	}

	out := make([][][]int32, len(planes))
	for i, planeVal := range planes {
		plane, ok := planeVal.(ir.IRArray)
		if !ok {
			return nil, newError(op, -1, fmt.Errorf("plane %d: expected array, got %T", i, planeVal))
		}
		out[i] = make([][]int32, len(plane))
		for j, rowVal := range plane {
			row, ok := rowVal.(ir.IRArray)
			if !ok {
				return nil, newError(op, -1, fmt.Errorf("row [%d][%d]: expected array, got %T", i, j, rowVal))
			}
			out[i][j] = make([]int32, len(row))
			for k, cell := range row {
				n, ok := cell.(ir.IRInt)
				if !ok || n < math.MinInt32 || n > math.MaxInt32 {
					return nil, newError(op, -1, fmt.Errorf("cell [%d][%d][%d]: not an int32: %v", i, j, k, cell))
				}
				out[i][j][k] = int32(n)
			}
		}
	}
	return out, nil
}
