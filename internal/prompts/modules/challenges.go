package modules

import (
	"fmt"
	"strings"

	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/localization"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/schema"
)

const (
	CategoryChallenges   = "challenges"
	ChallengeDescription = "challengeDescription"
)

func challengeDescription(p localization.Provider, patterns *schema.Patterns) *builder.Config {
	return &builder.Config{
		Name:            ChallengeDescription,
		System:          systemFor(p, CategoryChallenges),
		RequiredContext: []string{"title", "municipality"},
		BuildPrompt: func(ctx builder.Context) string {
			var sb strings.Builder
			sb.WriteString("Write a complete innovation challenge description.\n\n")
			fmt.Fprintf(&sb, "TITLE: %s\n", ctx.String("title"))
			fmt.Fprintf(&sb, "MUNICIPALITY: %s\n", ctx.String("municipality"))
			fmt.Fprintf(&sb, "SECTOR: %s\n", ctx.StringOr("sector", "not specified"))
			if notes := ctx.String("notes"); notes != "" {
				fmt.Fprintf(&sb, "\nNOTES FROM THE CHALLENGE OWNER:\n%s\n", notes)
			}
			sb.WriteString("\nInclude a problem statement, expected outcomes and measurable KPIs.")
			return sb.String()
		},
		Schema: schema.CreateBilingualSchema(schema.Config{
			Title: "ChallengeDescription",
			Properties: map[string]*schema.Schema{
				"title":             patterns.MustGet(schema.PatternBilingualTitle),
				"description":       patterns.MustGet(schema.PatternBilingualDescription),
				"problem_statement": schema.BilingualTextField("Problem statement"),
				"expected_outcomes": schema.BilingualListSchema("Expected outcomes"),
				"kpis": schema.BilingualListSchema("Measurable KPIs",
					schema.Extra{Name: "target", Schema: schema.String("Target value"), Required: true},
					schema.Extra{Name: "unit", Schema: schema.String("Unit of measure")},
				),
				"keywords": patterns.MustGet(schema.PatternKeywords),
				"priority": patterns.MustGet(schema.PatternPriority),
			},
			Required: []string{"title", "description", "problem_statement", "kpis"},
		}),
	}
}
