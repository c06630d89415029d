package localization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticSystemPrompt(t *testing.T) {
	p := NewStatic(map[string]string{
		DefaultKey: "default prompt",
		"sandbox":  "sandbox prompt",
	}, SaudiContext{}, "")

	assert.Equal(t, "sandbox prompt", p.SystemPrompt("sandbox", "fb"))
	assert.Equal(t, "fb", p.SystemPrompt("unknown", "fb"))
	assert.Equal(t, "default prompt", p.SystemPrompt("unknown", ""))
	assert.Equal(t, "default prompt", p.SystemPrompt("", ""))
}

func TestSaudiContextIsCopied(t *testing.T) {
	p := Default()
	c := p.SaudiContext()
	c.CulturalConsiderations[0] = "mutated"
	c.Languages["en"] = "mutated"

	again := p.SaudiContext()
	assert.Equal(t, "Islamic values and customs", again.CulturalConsiderations[0])
	assert.Equal(t, "English", again.Languages["en"])
}

func TestLanguageLabel(t *testing.T) {
	c := Default().SaudiContext()
	assert.Equal(t, "English", c.LanguageLabel("EN"))
	assert.Equal(t, "Arabic (formal MSA)", c.LanguageLabel(" ar "))
	assert.Equal(t, "fr", c.LanguageLabel("fr"))
}

func TestDefaultLanguageRequirements(t *testing.T) {
	assert.Contains(t, Default().LanguageRequirements(), "Modern Standard Arabic")
}
