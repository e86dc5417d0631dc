package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/featureprobe/internal/numeric"
)

// Scenario defines a probe scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names the golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description" json:"description"`

	// RunToken is an optional fixed token for the recorded run.
	// If empty, defaults to testutil.DefaultRunToken.
	RunToken string `yaml:"run_token,omitempty" json:"run_token,omitempty"`

	// Checks run in order against one probe.
	Checks []Check `yaml:"checks" json:"checks"`
}

// Check is one probe operation with an optional expectation.
type Check struct {
	// Op is one of the Op* constants.
	Op string `yaml:"op" json:"op"`

	// A is the integer operand of combine.
	A int32 `yaml:"a,omitempty" json:"a,omitempty"`

	// B is the float operand of combine, as text: "1.5", "0x1p-2", "NaN",
	// "+Inf", "-Inf", or a 32-bit pattern such as "0x7fc00000".
	B string `yaml:"b,omitempty" json:"b,omitempty"`

	// Values is the input sequence of length.
	Values []int32 `yaml:"values,omitempty" json:"values,omitempty"`

	// Want is the expected integer result of combine or length.
	// If nil, the result is traced but not checked.
	Want *int64 `yaml:"want,omitempty" json:"want,omitempty"`

	// WantSequence is the expected result of flatten3d.
	WantSequence []int32 `yaml:"want_sequence,omitempty" json:"want_sequence,omitempty"`
}

// Check operations.
const (
	OpCombine         = "combine"
	OpLength          = "length"
	OpDivide          = "divide"
	OpFlatten3D       = "flatten3d"
	OpMatrixRoundTrip = "matrix_roundtrip"
	OpConstRoundTrip  = "constants_roundtrip"
)

var knownOps = map[string]bool{
	OpCombine:         true,
	OpLength:          true,
	OpDivide:          true,
	OpFlatten3D:       true,
	OpMatrixRoundTrip: true,
	OpConstRoundTrip:  true,
}

// LoadScenario reads a scenario file. The format is chosen by extension:
// .yaml/.yml or .cue.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario *Scenario
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		scenario, err = ParseYAML(data)
	case ".cue":
		scenario, err = ParseCUE(data, path)
	default:
		return nil, fmt.Errorf("unsupported scenario extension %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return scenario, nil
}

// ParseYAML decodes and validates a YAML scenario.
// Unknown fields are rejected to catch typos.
func ParseYAML(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// ParseCUE compiles and validates a CUE scenario. The whole file is the
// scenario value. filename is used in error positions only.
func ParseCUE(data []byte, filename string) (*Scenario, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile CUE: %w", err)
	}

	var scenario Scenario
	if err := v.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to decode CUE: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks required fields and operand syntax.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Checks) == 0 {
		return fmt.Errorf("checks list is required and must be non-empty")
	}

	for i, c := range s.Checks {
		if !knownOps[c.Op] {
			return fmt.Errorf("checks[%d]: unknown op %q", i, c.Op)
		}
		if c.Op == OpCombine {
			if _, err := numeric.ParseFloat32(c.B); err != nil {
				return fmt.Errorf("checks[%d]: %w", i, err)
			}
		}
	}
	return nil
}
