package modules

import (
	"fmt"
	"strings"

	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/localization"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/schema"
)

const (
	CategoryEvents       = "events"
	EventRecommendations = "eventRecommendations"
)

// eventRecommendations returns free text; it has no response schema.
func eventRecommendations(p localization.Provider, _ *schema.Patterns) *builder.Config {
	return &builder.Config{
		Name:            EventRecommendations,
		System:          systemFor(p, CategoryEvents),
		RequiredContext: []string{"interests"},
		BuildPrompt: func(ctx builder.Context) string {
			var sb strings.Builder
			sb.WriteString("Recommend upcoming ecosystem events for this member.\n\n")
			fmt.Fprintf(&sb, "INTERESTS: %s\n", ctx.List("interests"))
			fmt.Fprintf(&sb, "CITY: %s\n", ctx.StringOr("city", "any"))
			if events := ctx.JSON("events"); events != "" {
				fmt.Fprintf(&sb, "\nAVAILABLE EVENTS:\n%s\n", events)
			}
			sb.WriteString("\nReturn up to five events as a short list, each with one sentence on why it fits.")
			return sb.String()
		},
	}
}
