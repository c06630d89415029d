package builder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateContext(t *testing.T) {
	got := ValidateContext(Context{"a": 1}, "a", "b")
	assert.Equal(t, ValidationResult{
		Valid:   false,
		Missing: []string{"b"},
		Message: "Missing required fields: b",
	}, got)
}

func TestValidateContextFalsyValues(t *testing.T) {
	ctx := Context{
		"nil":        nil,
		"false":      false,
		"empty":      "",
		"zero":       0,
		"zero_float": 0.0,
		"nan":        math.NaN(),
		"true":       true,
		"text":       "x",
		"empty_list": []string{},
		"empty_map":  map[string]any{},
	}
	got := ValidateContext(ctx, "nil", "false", "empty", "zero", "zero_float", "nan", "true", "text", "empty_list", "empty_map", "absent")

	assert.False(t, got.Valid)
	assert.Equal(t, []string{"nil", "false", "empty", "zero", "zero_float", "nan", "absent"}, got.Missing)
	assert.Equal(t, "Missing required fields: nil, false, empty, zero, zero_float, nan, absent", got.Message)
}

func TestValidateContextValid(t *testing.T) {
	got := ValidateContext(Context{"a": "x"}, "a")
	assert.True(t, got.Valid)
	assert.Empty(t, got.Missing)
	assert.NotNil(t, got.Missing)

	none := ValidateContext(nil)
	assert.True(t, none.Valid)
}

func TestContextAccessors(t *testing.T) {
	ctx := Context{
		"name":  "  Riyadh  ",
		"count": 3,
		"tags":  []string{"a", "b"},
		"mixed": []any{"x", 2},
		"obj":   map[string]any{"k": "v"},
	}
	assert.Equal(t, "Riyadh", ctx.String("name"))
	assert.Equal(t, "3", ctx.String("count"))
	assert.Equal(t, "", ctx.String("missing"))
	assert.Equal(t, "def", ctx.StringOr("missing", "def"))
	assert.Equal(t, "a, b", ctx.List("tags"))
	assert.Equal(t, "x, 2", ctx.List("mixed"))
	assert.JSONEq(t, `{"k":"v"}`, ctx.JSON("obj"))
	assert.Equal(t, "", ctx.JSON("missing"))
}
