package schema

// PropDef is a property definition accepted by BuildBilingualResponseSchema.
// The set of implementations is closed: PlainField, BilingualField and
// BilingualArrayField.
type PropDef interface {
	propDef()
}

// PlainField is passed through untouched.
type PlainField struct {
	Schema *Schema
}

// BilingualField becomes a nested {en, ar} object with both keys required.
type BilingualField struct {
	Description string
}

// BilingualArrayField becomes an array of {en, ar, ...AdditionalProperties}
// objects. Items carry no required list.
type BilingualArrayField struct {
	Description          string
	AdditionalProperties map[string]*Schema
}

func (PlainField) propDef()          {}
func (BilingualField) propDef()      {}
func (BilingualArrayField) propDef() {}

// ResponseConfig is the input of BuildBilingualResponseSchema.
type ResponseConfig struct {
	Properties map[string]PropDef
	Required   []string
}

// BuildBilingualResponseSchema rewrites every bilingual property into the
// nested {en, ar} convention. The required list is copied verbatim; nil
// definitions are dropped.
func BuildBilingualResponseSchema(cfg ResponseConfig) *Schema {
	props := make(map[string]*Schema, len(cfg.Properties))
	for name, def := range cfg.Properties {
		switch d := def.(type) {
		case PlainField:
			props[name] = d.Schema
		case BilingualField:
			props[name] = bilingualObject(d.Description)
		case BilingualArrayField:
			props[name] = bilingualArray(d)
		}
	}
	var required []string
	if cfg.Required != nil {
		required = append([]string{}, cfg.Required...)
	}
	return &Schema{
		Type:       TypeObject,
		Properties: props,
		Required:   required,
	}
}

func bilingualObject(description string) *Schema {
	return &Schema{
		Type:        TypeObject,
		Description: description,
		Properties: map[string]*Schema{
			KeyEnglish: String("English text"),
			KeyArabic:  String("Arabic text"),
		},
		Required: []string{KeyEnglish, KeyArabic},
	}
}

func bilingualArray(d BilingualArrayField) *Schema {
	itemProps := map[string]*Schema{
		KeyEnglish: String("English text"),
		KeyArabic:  String("Arabic text"),
	}
	for k, v := range d.AdditionalProperties {
		itemProps[k] = v
	}
	return &Schema{
		Type:        TypeArray,
		Description: d.Description,
		Items: &Schema{
			Type:       TypeObject,
			Properties: itemProps,
		},
	}
}
