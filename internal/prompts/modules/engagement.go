package modules

import (
	"fmt"
	"strings"

	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/localization"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/schema"
)

const (
	CategoryEngagementHub = "engagementHub"
	CampaignSubjectLines  = "campaignSubjectLines"

	defaultSubjectLineCount = 5
)

func campaignSubjectLines(p localization.Provider, _ *schema.Patterns) *builder.Config {
	item := &schema.Schema{
		Type: schema.TypeObject,
		Properties: map[string]*schema.Schema{
			"tone": schema.Enum("Tone of the subject line", "formal", "friendly", "urgent", "celebratory"),
		},
		Required: []string{"tone"},
	}
	for k, v := range schema.FlatBilingualFields("subject", "Subject line") {
		item.Properties[k] = v
	}
	item.Required = append(item.Required, schema.FlatBilingualKeys("subject")...)

	return &builder.Config{
		Name:            CampaignSubjectLines,
		System:          systemFor(p, CategoryEngagementHub),
		RequiredContext: []string{"campaign_goal"},
		BuildPrompt: func(ctx builder.Context) string {
			var sb strings.Builder
			fmt.Fprintf(&sb, "Write %s subject lines for a citizen engagement campaign.\n\n",
				ctx.StringOr("count", fmt.Sprint(defaultSubjectLineCount)))
			fmt.Fprintf(&sb, "CAMPAIGN GOAL: %s\n", ctx.String("campaign_goal"))
			fmt.Fprintf(&sb, "AUDIENCE: %s\n", ctx.StringOr("audience", "residents"))
			if channel := ctx.String("channel"); channel != "" {
				fmt.Fprintf(&sb, "CHANNEL: %s\n", channel)
			}
			sb.WriteString("\nKeep each line short and respectful. Vary the tone across lines.")
			return sb.String()
		},
		Schema: schema.CreateBilingualSchema(schema.Config{
			Properties: map[string]*schema.Schema{
				"subject_lines": schema.ArrayOf(item),
			},
			Required: []string{"subject_lines"},
		}),
	}
}
