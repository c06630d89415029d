package modules

import (
	"fmt"
	"strings"

	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/localization"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/schema"
)

const (
	CategoryStrategy = "strategy"
	GapAnalysis      = "gapAnalysis"
)

// gapAnalysis is the one module whose response is nested under "response" for
// invocation clients that require a single top-level key.
func gapAnalysis(p localization.Provider, patterns *schema.Patterns) *builder.Config {
	analysis := schema.BuildBilingualResponseSchema(schema.ResponseConfig{
		Properties: map[string]schema.PropDef{
			"overview": schema.BilingualField{Description: "Portfolio overview"},
			"gaps": schema.BilingualArrayField{
				Description: "Gaps between objectives and current portfolio",
				AdditionalProperties: map[string]*schema.Schema{
					"objective": schema.String("Strategic objective the gap belongs to"),
					"severity":  schema.PriorityField(),
				},
			},
			"coverage_score": schema.PlainField{Schema: patterns.MustGet(schema.PatternScore)},
			"next_steps":     schema.PlainField{Schema: patterns.MustGet(schema.PatternNextSteps)},
		},
		Required: []string{"overview", "gaps", "coverage_score"},
	})

	return &builder.Config{
		Name: GapAnalysis,
		SystemFunc: func(ctx builder.Context) string {
			s := systemFor(p, CategoryStrategy)
			if plan := ctx.String("plan_name"); plan != "" {
				s += "\n\nAnchor every finding to the strategic plan \"" + plan + "\"."
			}
			return s
		},
		RequiredContext: []string{"objectives", "portfolio"},
		BuildPrompt: func(ctx builder.Context) string {
			var sb strings.Builder
			sb.WriteString("Run a strategic gap analysis of the innovation portfolio.\n\n")
			fmt.Fprintf(&sb, "STRATEGIC OBJECTIVES:\n%s\n\n", ctx.JSON("objectives"))
			fmt.Fprintf(&sb, "CURRENT PORTFOLIO:\n%s\n", ctx.JSON("portfolio"))
			sb.WriteString("\nIdentify uncovered objectives, rate their severity and propose next steps.")
			return sb.String()
		},
		Schema: schema.WrapForInvocation(analysis),
	}
}
