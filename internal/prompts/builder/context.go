package builder

import (
	"encoding/json"
	"fmt"
	"strings"
)

// String renders ctx[key] as text. Missing keys render empty, the same way
// templates with missingkey=zero do.
func (c Context) String(key string) string {
	switch v := c[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// StringOr is String with a default for empty values.
func (c Context) StringOr(key, def string) string {
	if s := c.String(key); s != "" {
		return s
	}
	return def
}

// List renders a []string / []any value as a comma-separated list.
func (c Context) List(key string) string {
	switch v := c[key].(type) {
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, strings.TrimSpace(fmt.Sprint(item)))
		}
		return strings.Join(parts, ", ")
	default:
		return c.String(key)
	}
}

// JSON renders ctx[key] as indented JSON, or "" when absent.
func (c Context) JSON(key string) string {
	v, ok := c[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}
