package modules

import (
	"fmt"
	"strings"

	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/localization"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/schema"
)

const (
	CategoryPilots    = "pilots"
	SuccessPrediction = "successPrediction"
)

func successPrediction(p localization.Provider, patterns *schema.Patterns) *builder.Config {
	return &builder.Config{
		Name:            SuccessPrediction,
		System:          systemFor(p, CategoryPilots),
		RequiredContext: []string{"pilot"},
		BuildPrompt: func(ctx builder.Context) string {
			var sb strings.Builder
			sb.WriteString("Predict the success of this pilot before launch.\n\n")
			fmt.Fprintf(&sb, "PILOT:\n%s\n", ctx.JSON("pilot"))
			if kpis := ctx.List("kpis"); kpis != "" {
				fmt.Fprintf(&sb, "\nKPIS: %s\n", kpis)
			}
			if budget := ctx.String("budget"); budget != "" {
				fmt.Fprintf(&sb, "BUDGET (SAR): %s\n", budget)
			}
			if history := ctx.JSON("similar_pilots"); history != "" {
				fmt.Fprintf(&sb, "\nSIMILAR PAST PILOTS:\n%s\n", history)
			}
			sb.WriteString("\nEstimate the probability of success, the main risks and what would raise the odds.")
			return sb.String()
		},
		Schema: schema.CreateBilingualSchema(schema.Config{
			Title: "PilotSuccessPrediction",
			Properties: map[string]*schema.Schema{
				"success_probability": patterns.MustGet(schema.PatternScore),
				"confidence":          patterns.MustGet(schema.PatternConfidence),
				"risks": schema.BilingualListSchema("Risks to the pilot",
					schema.Extra{Name: "likelihood", Schema: schema.Enum("Likelihood", "low", "medium", "high"), Required: true},
					schema.Extra{Name: "mitigation_en", Schema: schema.String("Mitigation (English)")},
					schema.Extra{Name: "mitigation_ar", Schema: schema.String("Mitigation (Arabic - formal MSA)")},
				),
				"success_factors": schema.BilingualListSchema("Factors that support success"),
				"recommendations": patterns.MustGet(schema.PatternRecommendations),
			},
			Required: []string{"success_probability", "risks", "recommendations"},
		}),
	}
}
