package modules

import (
	"fmt"
	"strings"

	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/localization"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/schema"
)

const (
	CategorySandbox       = "sandbox"
	ApplicationEvaluation = "applicationEvaluation"
)

func applicationEvaluation(p localization.Provider, patterns *schema.Patterns) *builder.Config {
	props := map[string]*schema.Schema{
		"readiness_score": patterns.MustGet(schema.PatternScore),
		"risk_level":      schema.PriorityField("low", "medium", "high", "critical"),
		"decision":        schema.Enum("Recommended decision", "approve", "approve_with_conditions", "reject"),
		"conditions":      schema.BilingualListSchema("Conditions attached to approval"),
	}
	for k, v := range schema.FlatBilingualFields("summary", "Evaluation summary") {
		props[k] = v
	}
	for k, v := range schema.FlatBilingualFields("rationale", "Decision rationale") {
		props[k] = v
	}
	required := []string{"readiness_score", "risk_level", "decision"}
	required = append(required, schema.FlatBilingualKeys("summary")...)
	required = append(required, schema.FlatBilingualKeys("rationale")...)

	return &builder.Config{
		Name:            ApplicationEvaluation,
		System:          systemFor(p, CategorySandbox),
		RequiredContext: []string{"application"},
		BuildPrompt: func(ctx builder.Context) string {
			var sb strings.Builder
			sb.WriteString("Evaluate this regulatory sandbox application.\n\n")
			fmt.Fprintf(&sb, "APPLICATION:\n%s\n", ctx.JSON("application"))
			fmt.Fprintf(&sb, "\nSANDBOX: %s\n", ctx.StringOr("sandbox_name", "general municipal sandbox"))
			if regs := ctx.List("regulations"); regs != "" {
				fmt.Fprintf(&sb, "APPLICABLE REGULATIONS: %s\n", regs)
			}
			sb.WriteString("\nAssess readiness, risk and compliance, then recommend a decision with any conditions.")
			return sb.String()
		},
		Schema: schema.CreateBilingualSchema(schema.Config{
			Title:                "SandboxApplicationEvaluation",
			Properties:           props,
			Required:             required,
			AdditionalProperties: schema.Bool(false),
		}),
	}
}
