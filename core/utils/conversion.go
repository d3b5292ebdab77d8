package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ToString converts a decoded document value to its display string.
// Whole floats render without a fraction so 101 stays "101".
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToFloat converts numeric values and numeric strings to float64.
// The boolean is false when the value is not a number.
func ToFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case []byte:
		return ToFloat(string(v))
	case fmt.Stringer:
		return ToFloat(v.String())
	default:
		return 0, false
	}
}

// ToSlice converts list-shaped values to []any.
// The boolean is false when the value is not a list.
func ToSlice(val any) ([]any, bool) {
	switch v := val.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}
