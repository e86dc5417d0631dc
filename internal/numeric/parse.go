package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseFloat32 parses float operand text. It accepts decimal and hex-float
// literals ("1.5", "-0x1p-2"), NaN and ±Inf, and raw IEEE 754 bits written
// as 0x followed by up to eight hex digits with no exponent ("0x7fc00001").
// Raw bits keep NaN payloads that no literal can spell. Empty text is 0.
func ParseFloat32(s string) (float32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if digits, ok := cutHexPrefix(s); ok && !strings.ContainsAny(digits, "pP") {
		bits, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid float bits %q: %w", s, err)
		}
		return math.Float32frombits(uint32(bits)), nil
	}

	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid float operand %q: %w", s, err)
	}
	return float32(f), nil
}

func cutHexPrefix(s string) (string, bool) {
	if digits, ok := strings.CutPrefix(s, "0x"); ok {
		return digits, true
	}
	return strings.CutPrefix(s, "0X")
}
