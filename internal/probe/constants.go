package probe

import (
	"fmt"

	"github.com/roach88/featureprobe/internal/codec"
)

// ScalarConstants encodes the numeric scalars and the fixture values as
// class-file constants, in order: Long long_value, Long long_value_static,
// Float scale, Integer enabled (0 or 1), then one Integer per value.
// The greeting is not encoded.
func (p *FeatureProbe) ScalarConstants() []byte {
	out := make([]byte, 0, 2*9+5+5+len(p.values)*5)
	out = codec.AppendLongConstant(out, p.scalars.LongValue)
	out = codec.AppendLongConstant(out, p.scalars.LongValueStatic)
	out = codec.AppendFloatConstant(out, p.scalars.Scale)

	var enabled int32
	if p.scalars.Enabled {
		enabled = 1
	}
	out = codec.AppendIntegerConstant(out, enabled)

	for _, v := range p.values {
		out = codec.AppendIntegerConstant(out, v)
	}
	return out
}

// DecodeScalarConstants reverses ScalarConstants. The returned bundle has an
// empty Greeting. Every Integer after the enabled flag is a value.
func DecodeScalarConstants(data []byte) (ScalarBundle, []int32, error) {
	var (
		s   ScalarBundle
		err error
	)

	rest := data
	if s.LongValue, rest, err = codec.ReadLongConstant(rest); err != nil {
		return ScalarBundle{}, nil, fmt.Errorf("long_value: %w", err)
	}
	if s.LongValueStatic, rest, err = codec.ReadLongConstant(rest); err != nil {
		return ScalarBundle{}, nil, fmt.Errorf("long_value_static: %w", err)
	}
	if s.Scale, rest, err = codec.ReadFloatConstant(rest); err != nil {
		return ScalarBundle{}, nil, fmt.Errorf("scale: %w", err)
	}

	var enabled int32
	if enabled, rest, err = codec.ReadIntegerConstant(rest); err != nil {
		return ScalarBundle{}, nil, fmt.Errorf("enabled: %w", err)
	}
	s.Enabled = enabled != 0

	values := []int32{}
	for len(rest) > 0 {
		var v int32
		if v, rest, err = codec.ReadIntegerConstant(rest); err != nil {
			return ScalarBundle{}, nil, fmt.Errorf("values[%d]: %w", len(values), err)
		}
		values = append(values, v)
	}
	return s, values, nil
}
