package builder

import "github.com/yungbote/civic-innovation-backend/internal/prompts/schema"

const BilingualMarker = "_bilingual"

const bilingualInstruction = `

IMPORTANT: Provide all text content in both English and Arabic (formal MSA).
Format every text value as: {"en": "English text", "ar": "النص العربي"}`

// BuildBilingual builds cfg, asks for bilingual output and marks the schema
// with the _bilingual sentinel.
func (b *Builder) BuildBilingual(cfg *Config, ctx Context) (Payload, error) {
	p, err := b.Build(cfg, ctx)
	if err != nil {
		return Payload{}, err
	}
	p.Prompt += bilingualInstruction
	p.ResponseJSONSchema = AddBilingualSchema(p.ResponseJSONSchema)
	return p, nil
}

// AddBilingualSchema returns a copy of s whose top-level properties gain the
// boolean `_bilingual: true` marker. Existing properties are left as they are.
func AddBilingualSchema(s *schema.Schema) *schema.Schema {
	if s == nil {
		return nil
	}
	out := *s
	out.Properties = make(map[string]*schema.Schema, len(s.Properties)+1)
	for k, v := range s.Properties {
		out.Properties[k] = v
	}
	out.Properties[BilingualMarker] = schema.True()
	return &out
}
