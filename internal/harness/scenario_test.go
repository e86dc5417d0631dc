package harness

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_YAML(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/basic.yaml")
	require.NoError(t, err)

	assert.Equal(t, "probe_basics", s.Name)
	assert.Equal(t, "test-run-basic", s.RunToken)
	require.Len(t, s.Checks, 8)

	assert.Equal(t, OpCombine, s.Checks[0].Op)
	assert.Equal(t, int32(7), s.Checks[0].A)
	assert.Equal(t, "2.9", s.Checks[0].B)
	require.NotNil(t, s.Checks[0].Want)
	assert.Equal(t, int64(19), *s.Checks[0].Want)

	assert.Equal(t, []int32{7, 7, 7}, s.Checks[4].Values)
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6, 7, 8}, s.Checks[5].WantSequence)
	assert.Nil(t, s.Checks[6].Want)
}

func TestLoadScenario_CUE(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/edges.cue")
	require.NoError(t, err)

	assert.Equal(t, "probe_edges", s.Name)
	require.Len(t, s.Checks, 6)
	assert.Equal(t, int32(math.MaxInt32), s.Checks[0].A)
	assert.Equal(t, "-Inf", s.Checks[1].B)
	require.NotNil(t, s.Checks[1].Want)
	assert.Equal(t, int64(math.MinInt64+9), *s.Checks[1].Want)
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, s.Checks[3].Values)
	assert.Equal(t, "0x1p-2", s.Checks[4].B)
	assert.Equal(t, OpConstRoundTrip, s.Checks[5].Op)
}

func TestLoadScenario_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"bad extension", write("s.json", "{}"), "unsupported scenario extension"},
		{"unknown field", write("typo.yaml", "name: x\ndescription: y\ncheck: []\n"), "failed to parse YAML"},
		{"missing name", write("noname.yaml", "description: y\nchecks: [{op: divide}]\n"), "name is required"},
		{"missing description", write("nodesc.yaml", "name: x\nchecks: [{op: divide}]\n"), "description is required"},
		{"no checks", write("nochecks.yaml", "name: x\ndescription: y\nchecks: []\n"), "checks list is required"},
		{"unknown op", write("op.yaml", "name: x\ndescription: y\nchecks: [{op: explode}]\n"), `unknown op "explode"`},
		{"bad operand", write("operand.yaml", "name: x\ndescription: y\nchecks: [{op: combine, b: \"pi\"}]\n"), "invalid float operand"},
		{"bad cue", write("bad.cue", "name: \n"), "failed to compile CUE"},
		{"cue wrong type", write("type.cue", "name: 1\ndescription: \"y\"\nchecks: []\n"), "failed to decode CUE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

