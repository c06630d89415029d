package modules

import (
	"fmt"
	"strings"

	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/localization"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/schema"
)

const (
	CategoryMatchmaker = "matchmaker"
	PartnerMatch       = "partnerMatch"
)

func partnerMatch(p localization.Provider, patterns *schema.Patterns) *builder.Config {
	return &builder.Config{
		Name:            PartnerMatch,
		System:          systemFor(p, CategoryMatchmaker),
		RequiredContext: []string{"challenge", "partner"},
		BuildPrompt: func(ctx builder.Context) string {
			var sb strings.Builder
			sb.WriteString("Evaluate how well the partner below fits the municipal challenge.\n\n")
			fmt.Fprintf(&sb, "CHALLENGE:\n%s\n\n", ctx.JSON("challenge"))
			fmt.Fprintf(&sb, "PARTNER:\n%s\n", ctx.JSON("partner"))
			if criteria := ctx.List("criteria"); criteria != "" {
				fmt.Fprintf(&sb, "\nWEIGHT THESE CRITERIA: %s\n", criteria)
			}
			sb.WriteString("\nScore the fit, explain it, and list strengths and gaps with their relative weight.")
			return sb.String()
		},
		Schema: schema.BuildBilingualResponseSchema(schema.ResponseConfig{
			Properties: map[string]schema.PropDef{
				"match_score": schema.PlainField{Schema: patterns.MustGet(schema.PatternScore)},
				"confidence":  schema.PlainField{Schema: patterns.MustGet(schema.PatternConfidence)},
				"summary":     schema.BilingualField{Description: "Why the partner fits the challenge"},
				"strengths": schema.BilingualArrayField{
					Description: "Fit strengths",
					AdditionalProperties: map[string]*schema.Schema{
						"weight": schema.ScoreFieldBetween(0, 1),
					},
				},
				"gaps": schema.BilingualArrayField{Description: "Capability gaps to close"},
				"engagement_model": schema.PlainField{Schema: schema.Enum("Recommended engagement model",
					"pilot", "co-development", "procurement", "research")},
			},
			Required: []string{"match_score", "summary", "strengths", "engagement_model"},
		}),
	}
}
