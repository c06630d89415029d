package builder

import (
	"math"
	"strings"
)

type ValidationResult struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing"`
	Message string   `json:"message"`
}

// ValidateContext reports which required keys are absent or empty in ctx.
func ValidateContext(ctx Context, required ...string) ValidationResult {
	missing := []string{}
	for _, field := range required {
		if isEmptyValue(ctx[field]) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return ValidationResult{
			Valid:   false,
			Missing: missing,
			Message: "Missing required fields: " + strings.Join(missing, ", "),
		}
	}
	return ValidationResult{
		Valid:   true,
		Missing: missing,
		Message: "All required fields present",
	}
}

// isEmptyValue treats nil, false, "" and numeric zero (or NaN) as absent.
// Collections count as present even when empty.
func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case int:
		return t == 0
	case int8:
		return t == 0
	case int16:
		return t == 0
	case int32:
		return t == 0
	case int64:
		return t == 0
	case uint:
		return t == 0
	case uint8:
		return t == 0
	case uint16:
		return t == 0
	case uint32:
		return t == 0
	case uint64:
		return t == 0
	case float32:
		return t == 0 || math.IsNaN(float64(t))
	case float64:
		return t == 0 || math.IsNaN(t)
	default:
		return false
	}
}
