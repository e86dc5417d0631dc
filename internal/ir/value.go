package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"
)

// IRValue is a sealed interface over the allowed value kinds:
// IRString, IRInt, IRBool, IRArray and IRObject.
type IRValue interface {
	irValue()
}

// IRString is a string value.
type IRString string

func (IRString) irValue() {}

// IRInt is an integer value. Always 64-bit.
type IRInt int64

func (IRInt) irValue() {}

// IRBool is a boolean value.
type IRBool bool

func (IRBool) irValue() {}

// IRArray is an ordered list of values.
type IRArray []IRValue

func (IRArray) irValue() {}

// IRObject maps string keys to values.
// Use SortedKeys() for deterministic iteration.
type IRObject map[string]IRValue

func (IRObject) irValue() {}

// Bits64 renders a 64-bit pattern as a fixed-width hex IRString.
func Bits64(bits uint64) IRString {
	return IRString(fmt.Sprintf("0x%016x", bits))
}

// Bits32 renders a 32-bit pattern as a fixed-width hex IRString.
func Bits32(bits uint32) IRString {
	return IRString(fmt.Sprintf("0x%08x", bits))
}

// ParseBits parses a hex bit pattern produced by Bits64 or Bits32.
// bitSize is 32 or 64.
func ParseBits(v IRValue, bitSize int) (uint64, error) {
	s, ok := v.(IRString)
	if !ok {
		return 0, fmt.Errorf("bit pattern must be a string, got %T", v)
	}
	digits, found := strings.CutPrefix(string(s), "0x")
	if !found || len(digits) != bitSize/4 {
		return 0, fmt.Errorf("malformed %d-bit pattern %q", bitSize, s)
	}
	return strconv.ParseUint(digits, 16, bitSize)
}

// Int32s converts a slice of 32-bit integers to an IRArray.
func Int32s(vals []int32) IRArray {
	arr := make(IRArray, len(vals))
	for i, v := range vals {
		arr[i] = IRInt(v)
	}
	return arr
}

// SortedKeys returns keys in RFC 8785 order (UTF-16 code units).
// Go's string comparison is UTF-8 byte order, which differs above U+FFFF.
func (obj IRObject) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysRFC8785)
	return keys
}

func compareKeysRFC8785(a, b string) int {
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}

// ErrTrailingData is returned when input holds more than one JSON value.
var ErrTrailingData = errors.New("trailing data after JSON value")

// UnmarshalIRValue decodes exactly one JSON value into an IRValue.
// Floats, null and trailing data are rejected.
func UnmarshalIRValue(data []byte) (IRValue, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w at offset %d", ErrTrailingData, dec.InputOffset())
	}
	return convertToIRValue(raw)
}

// UnmarshalIRObject decodes a JSON object into an IRObject.
func UnmarshalIRObject(data []byte) (IRObject, error) {
	v, err := UnmarshalIRValue(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(IRObject)
	if !ok {
		return nil, fmt.Errorf("expected object, got %T", v)
	}
	return obj, nil
}

func convertToIRValue(v any) (IRValue, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("null is forbidden in IR")
	case bool:
		return IRBool(val), nil
	case string:
		return IRString(val), nil
	case json.Number:
		if strings.ContainsAny(string(val), ".eE") {
			return nil, fmt.Errorf("floats are forbidden in IR: %s", val)
		}
		n, err := val.Int64()
		if err != nil {
			return nil, fmt.Errorf("number out of int64 range: %s", val)
		}
		return IRInt(n), nil
	case []any:
		arr := make(IRArray, len(val))
		for i, elem := range val {
			irElem, err := convertToIRValue(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			arr[i] = irElem
		}
		return arr, nil
	case map[string]any:
		obj := make(IRObject, len(val))
		for k, elem := range val {
			irElem, err := convertToIRValue(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			obj[k] = irElem
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}
