package modules

import (
	"fmt"
	"strings"

	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/localization"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/schema"
)

const (
	CategoryProfiles  = "profiles"
	ProfileEnrichment = "profileEnrichment"
)

func profileEnrichment(p localization.Provider, patterns *schema.Patterns) *builder.Config {
	return &builder.Config{
		Name:            ProfileEnrichment,
		System:          systemFor(p, CategoryProfiles),
		RequiredContext: []string{"profile"},
		BuildPrompt: func(ctx builder.Context) string {
			var sb strings.Builder
			sb.WriteString("Enrich this expert profile for the innovation ecosystem directory.\n\n")
			fmt.Fprintf(&sb, "PROFILE:\n%s\n", ctx.JSON("profile"))
			if cv := ctx.String("cv_text"); cv != "" {
				fmt.Fprintf(&sb, "\nCV TEXT:\n%s\n", cv)
			}
			sb.WriteString("\nWrite a short bio, extract expertise areas and suggest directory keywords.")
			return sb.String()
		},
		Schema: schema.BuildBilingualResponseSchema(schema.ResponseConfig{
			Properties: map[string]schema.PropDef{
				"bio":      schema.BilingualField{Description: "Professional bio"},
				"headline": schema.BilingualField{Description: "One-line headline"},
				"expertise_areas": schema.BilingualArrayField{
					Description: "Expertise areas",
					AdditionalProperties: map[string]*schema.Schema{
						"years": schema.Integer("Years of experience in the area"),
					},
				},
				"keywords": schema.PlainField{Schema: patterns.MustGet(schema.PatternKeywords)},
			},
			Required: []string{"bio", "expertise_areas"},
		}),
	}
}
