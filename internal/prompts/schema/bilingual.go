package schema

import "fmt"

const (
	KeyEnglish = "en"
	KeyArabic  = "ar"

	KeyTextEnglish = "text_en"
	KeyTextArabic  = "text_ar"

	KeyPriority = "priority"
)

var defaultPriorityLevels = []string{"high", "medium", "low"}

// Extra is an additional property merged into a bilingual array item.
// It is only listed in the item's required keys when Required is set.
type Extra struct {
	Name     string
	Schema   *Schema
	Required bool
}

// Config is the top-level object assembled by CreateBilingualSchema.
type Config struct {
	Title                string
	Description          string
	Properties           map[string]*Schema
	Required             []string
	AdditionalProperties *bool
}

// BilingualTextField is a nested {en, ar} object with both keys required.
func BilingualTextField(description string) *Schema {
	return &Schema{
		Type:        TypeObject,
		Description: description,
		Properties: map[string]*Schema{
			KeyEnglish: String(description + " (English)"),
			KeyArabic:  String(description + " (Arabic - formal MSA)"),
		},
		Required: []string{KeyEnglish, KeyArabic},
	}
}

// FlatBilingualFields returns <baseName>_en / <baseName>_ar sibling
// properties for embedding directly into a parent's Properties.
func FlatBilingualFields(baseName, description string) map[string]*Schema {
	return map[string]*Schema{
		baseName + "_en": String(description + " (English)"),
		baseName + "_ar": String(description + " (Arabic - formal MSA)"),
	}
}

// FlatBilingualKeys returns the two property names produced by
// FlatBilingualFields, English first.
func FlatBilingualKeys(baseName string) []string {
	return []string{baseName + "_en", baseName + "_ar"}
}

// BilingualArrayItem is an item object with required text_en / text_ar.
func BilingualArrayItem(extra ...Extra) *Schema {
	item := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			KeyTextEnglish: String("Item text (English)"),
			KeyTextArabic:  String("Item text (Arabic - formal MSA)"),
		},
		Required: []string{KeyTextEnglish, KeyTextArabic},
	}
	for _, e := range extra {
		if e.Name == "" {
			continue
		}
		item.Properties[e.Name] = e.Schema
		if e.Required {
			item.Required = append(item.Required, e.Name)
		}
	}
	return item
}

// PriorityField is a string enum; it defaults to high/medium/low.
func PriorityField(levels ...string) *Schema {
	if len(levels) == 0 {
		levels = defaultPriorityLevels
	}
	return Enum("Priority level", levels...)
}

// ScoreField is a 0-100 numeric score.
func ScoreField() *Schema {
	return ScoreFieldBetween(0, 100)
}

func ScoreFieldBetween(min, max float64) *Schema {
	return &Schema{
		Type:        TypeNumber,
		Description: fmt.Sprintf("Score from %g to %g", min, max),
		Minimum:     float64Ptr(min),
		Maximum:     float64Ptr(max),
	}
}

// BilingualListSchema is an array of bilingual items that carry an optional
// priority next to any caller-supplied extras.
func BilingualListSchema(itemDescription string, extra ...Extra) *Schema {
	all := make([]Extra, 0, len(extra)+1)
	all = append(all, Extra{Name: KeyPriority, Schema: PriorityField()})
	all = append(all, extra...)
	return &Schema{
		Type:        TypeArray,
		Description: itemDescription,
		Items:       BilingualArrayItem(all...),
	}
}

// CreateBilingualSchema assembles cfg into a top-level object schema as is.
func CreateBilingualSchema(cfg Config) *Schema {
	return &Schema{
		Type:                 TypeObject,
		Title:                cfg.Title,
		Description:          cfg.Description,
		Properties:           cfg.Properties,
		Required:             cfg.Required,
		AdditionalProperties: cfg.AdditionalProperties,
	}
}

// WrapForInvocation nests s under a single required "response" key.
func WrapForInvocation(s *Schema) *Schema {
	return &Schema{
		Type:       TypeObject,
		Properties: map[string]*Schema{"response": s},
		Required:   []string{"response"},
	}
}
