package maybe

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes Nothing as null and a Just as its value.
func (m Maybe) MarshalJSON() ([]byte, error) {
	if !m.just {
		return []byte("null"), nil
	}

	return json.Marshal(m.value)
}

// UnmarshalJSON decodes null into Nothing and any other value into a Just
// holding the generic decoded form (float64, string, bool, []any, map[string]any).
func (m *Maybe) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("decode Maybe: %w", err)
	}

	*m = SafeOf(value)
	return nil
}
