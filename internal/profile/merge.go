package profile

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Clone returns a deep copy of v. Nested maps and slices are copied so the
// result shares no mutable state with v.
func (v Values) Clone() Values {
	if v == nil {
		return Values{}
	}
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case Values:
		return typed.Clone()
	case map[string]any:
		return map[string]any(Values(typed).Clone())
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), typed...)
	default:
		return value
	}
}

// Merge returns a copy of base with every top-level key of override replacing
// the same key in base. Nested values are replaced whole, never merged, so an
// override list fully supersedes the profile list.
func Merge(base, override Values) Values {
	merged := base.Clone()
	for key, value := range override {
		merged[key] = cloneValue(value)
	}
	return merged
}

// Decode converts merged values into a typed Spec.
func Decode(values Values) (Spec, error) {
	var spec Spec
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &spec,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Spec{}, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(map[string]any(values)); err != nil {
		return Spec{}, fmt.Errorf("decode config: %w", err)
	}
	return spec, nil
}
