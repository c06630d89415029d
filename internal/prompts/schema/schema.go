// Package schema builds the JSON-Schema fragments that describe structured
// model output, including the bilingual (English/Arabic) conventions.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
)

// Schema is the subset of JSON Schema used for structured model output.
//
// A Schema with Literal set is a boolean schema and marshals to a bare
// true/false; all other fields are ignored in that form.
type Schema struct {
	Type                 string             `json:"type,omitempty"`
	Title                string             `json:"title,omitempty"`
	Description          string             `json:"description,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	Enum                 []string           `json:"enum,omitempty"`
	Required             []string           `json:"required,omitempty"`
	Minimum              *float64           `json:"minimum,omitempty"`
	Maximum              *float64           `json:"maximum,omitempty"`
	AdditionalProperties *bool              `json:"additionalProperties,omitempty"`

	Literal *bool `json:"-"`
}

// schemaFields breaks the MarshalJSON recursion.
type schemaFields Schema

func (s *Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	if s.Literal != nil {
		return json.Marshal(*s.Literal)
	}
	return json.Marshal((*schemaFields)(s))
}

func (s *Schema) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch string(trimmed) {
	case "true", "false":
		v := string(trimmed) == "true"
		*s = Schema{Literal: &v}
		return nil
	}
	var f schemaFields
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return err
	}
	*s = Schema(f)
	return nil
}

// Object returns an object fragment over props with the given required keys.
func Object(props map[string]*Schema, required ...string) *Schema {
	if props == nil {
		props = map[string]*Schema{}
	}
	return &Schema{Type: TypeObject, Properties: props, Required: required}
}

// ArrayOf returns an array fragment whose elements match items.
func ArrayOf(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

func String(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}

func Number(description string) *Schema {
	return &Schema{Type: TypeNumber, Description: description}
}

func Integer(description string) *Schema {
	return &Schema{Type: TypeInteger, Description: description}
}

func Boolean(description string) *Schema {
	return &Schema{Type: TypeBoolean, Description: description}
}

// Enum returns a string fragment restricted to values.
func Enum(description string, values ...string) *Schema {
	return &Schema{Type: TypeString, Description: description, Enum: append([]string(nil), values...)}
}

// True returns the boolean schema `true`.
func True() *Schema {
	v := true
	return &Schema{Literal: &v}
}

// Bool returns a pointer to v, for AdditionalProperties.
func Bool(v bool) *bool { return &v }

func float64Ptr(v float64) *float64 { return &v }

// IsLiteral reports whether s is a boolean schema.
func (s *Schema) IsLiteral() bool {
	return s != nil && s.Literal != nil
}

// PropertyNames returns the property keys in sorted order.
func (s *Schema) PropertyNames() []string {
	if s == nil || len(s.Properties) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of s.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := *s
	if s.Literal != nil {
		v := *s.Literal
		out.Literal = &v
	}
	if s.Properties != nil {
		out.Properties = make(map[string]*Schema, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = v.Clone()
		}
	}
	out.Items = s.Items.Clone()
	if s.Enum != nil {
		out.Enum = append([]string(nil), s.Enum...)
	}
	if s.Required != nil {
		out.Required = append([]string(nil), s.Required...)
	}
	if s.Minimum != nil {
		out.Minimum = float64Ptr(*s.Minimum)
	}
	if s.Maximum != nil {
		out.Maximum = float64Ptr(*s.Maximum)
	}
	if s.AdditionalProperties != nil {
		out.AdditionalProperties = Bool(*s.AdditionalProperties)
	}
	return &out
}

// Validate checks that every object fragment only requires keys it declares.
func (s *Schema) Validate() error {
	return s.validate("$")
}

func (s *Schema) validate(path string) error {
	if s == nil || s.Literal != nil {
		return nil
	}
	for _, req := range s.Required {
		if _, ok := s.Properties[req]; !ok {
			return fmt.Errorf("%s: required key %q is not a declared property", path, req)
		}
	}
	for _, name := range s.PropertyNames() {
		if err := s.Properties[name].validate(path + ".properties." + name); err != nil {
			return err
		}
	}
	if s.Items != nil {
		if err := s.Items.validate(path + ".items"); err != nil {
			return err
		}
	}
	return nil
}

// Map converts s to the untyped form accepted by JSON-schema based clients.
func (s *Schema) Map() (map[string]any, error) {
	if s == nil {
		return nil, nil
	}
	if s.Literal != nil {
		return nil, fmt.Errorf("boolean schema has no object form")
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	return out, nil
}
