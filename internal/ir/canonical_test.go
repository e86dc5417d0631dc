package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", IRString("hello"), `"hello"`},
		{"empty string", IRString(""), `""`},
		{"int", IRInt(42), "42"},
		{"negative int", IRInt(-100), "-100"},
		{"max int64", IRInt(9223372036854775807), "9223372036854775807"},
		{"min int64", IRInt(-9223372036854775808), "-9223372036854775808"},
		{"bool true", IRBool(true), "true"},
		{"bool false", IRBool(false), "false"},
		{"empty array", IRArray{}, "[]"},
		{"empty object", IRObject{}, "{}"},
		{"array of ints", IRArray{IRInt(1), IRInt(2), IRInt(3)}, "[1,2,3]"},
		{"go int32", int32(-7), "-7"},
		{"go slice", []any{"a", int64(1), true}, `["a",1,true]`},
		{"go map", map[string]any{"b": 1, "a": "x"}, `{"a":"x","b":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MarshalCanonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalCanonicalNestedSortedKeys(t *testing.T) {
	obj := IRObject{
		"z": IRObject{"b": IRInt(1), "a": IRInt(2)},
		"a": IRInt(3),
	}

	result, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"a":3,"z":{"a":2,"b":1}}`, string(result))
}

func TestMarshalCanonicalStringEscaping(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"quote", `a"b`, `"a\"b"`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"control", "\x01", `"\u0001"`},
		{"unit separator", "\x1f", `"\u001f"`},
		{"html", "<a&b>", `"<a&b>"`},
		{"line separator", "\u2028", "\"\u2028\""},
		{"literal backslash u2028", `\u2028`, `"\\u2028"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MarshalCanonical(IRString(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalCanonicalNFCNormalization(t *testing.T) {
	// "e" + combining acute accent normalizes to U+00E9.
	decomposed := "e\u0301"
	result, err := MarshalCanonical(IRObject{decomposed: IRString(decomposed)})
	require.NoError(t, err)
	assert.Equal(t, "{\"\u00e9\":\"\u00e9\"}", string(result))
}

func TestMarshalCanonicalRejects(t *testing.T) {
	cases := map[string]any{
		"nil":           nil,
		"float64":       1.5,
		"float32":       float32(1.5),
		"nested float":  map[string]any{"a": []any{1.0}},
		"unsupported":   struct{}{},
		"nil in object": IRObject{"a": nil},
	}

	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := MarshalCanonical(v)
			assert.Error(t, err)
		})
	}
}

func TestMarshalCanonicalRoundTrip(t *testing.T) {
	obj := IRObject{
		"scalars": IRObject{"scale": Bits32(0x40200000), "enabled": IRBool(true)},
		"values":  Int32s([]int32{1, 2, 3}),
	}

	data, err := MarshalCanonical(obj)
	require.NoError(t, err)

	back, err := UnmarshalIRObject(data)
	require.NoError(t, err)
	assert.Equal(t, obj, back)

	again, err := MarshalCanonical(back)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}
