// Package promptstyle prepends a short output-discipline preamble to system
// prompts before they are sent to a model.
package promptstyle

import "strings"

const marker = "CIVIC_PROMPT_STYLE_V1"

// ModeJSON is the mode for payloads that carry a response schema.
const ModeJSON = "json"

// ApplySystem returns system with the preamble in front. Empty prompts and
// prompts that already carry the preamble come back unchanged.
func ApplySystem(system string, mode string) string {
	base := strings.TrimSpace(system)
	if base == "" || strings.Contains(base, marker) {
		return base
	}

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString("\nYou support municipal innovation teams in Saudi Arabia.")
	if first := firstLine(base); first != "" {
		b.WriteString("\nRole: " + first)
	}
	b.WriteString("\nUse only the facts given in the request; mark anything you could not verify.")
	b.WriteString("\nKeep English and Arabic fields equivalent in meaning.")
	if strings.EqualFold(strings.TrimSpace(mode), ModeJSON) {
		b.WriteString("\nReturn one JSON object that matches the schema with no extra keys.")
	} else {
		b.WriteString("\nBe concise and structured.")
	}
	b.WriteString("\n---\n")
	b.WriteString(base)
	return b.String()
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}
