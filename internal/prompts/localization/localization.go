package localization

import "strings"

const (
	LangEnglish = "en"
	LangArabic  = "ar"

	DefaultKey = "default"
)

// Provider supplies the localized strings prompts are composed from.
type Provider interface {
	// SystemPrompt returns the system prompt registered under key. An unknown
	// or empty key yields fallback, or the default prompt when fallback is empty.
	SystemPrompt(key, fallback string) string
	SaudiContext() SaudiContext
	LanguageRequirements() string
}

type SaudiContext struct {
	Country                string
	Vision                 string
	Languages              map[string]string
	CulturalConsiderations []string
	RegulatoryFramework    string
}

// LanguageLabel maps a language code to its display label. Unknown codes are
// returned unchanged.
func (c SaudiContext) LanguageLabel(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if label, ok := c.Languages[code]; ok {
		return label
	}
	return code
}

// Static is a Provider backed by literal tables.
type Static struct {
	systemPrompts        map[string]string
	saudi                SaudiContext
	languageRequirements string
}

// NewStatic builds a provider from explicit tables. systemPrompts must carry a
// DefaultKey entry for SystemPrompt to have a last resort.
func NewStatic(systemPrompts map[string]string, saudi SaudiContext, languageRequirements string) *Static {
	prompts := make(map[string]string, len(systemPrompts))
	for k, v := range systemPrompts {
		prompts[k] = v
	}
	return &Static{
		systemPrompts:        prompts,
		saudi:                saudi,
		languageRequirements: languageRequirements,
	}
}

// Default returns the platform provider.
func Default() *Static {
	return NewStatic(defaultSystemPrompts(), defaultSaudiContext(), defaultLanguageRequirements)
}

func (s *Static) SystemPrompt(key, fallback string) string {
	if p, ok := s.systemPrompts[strings.TrimSpace(key)]; ok && p != "" {
		return p
	}
	if fallback != "" {
		return fallback
	}
	return s.systemPrompts[DefaultKey]
}

func (s *Static) SaudiContext() SaudiContext {
	c := s.saudi
	c.Languages = make(map[string]string, len(s.saudi.Languages))
	for k, v := range s.saudi.Languages {
		c.Languages[k] = v
	}
	c.CulturalConsiderations = append([]string(nil), s.saudi.CulturalConsiderations...)
	return c
}

func (s *Static) LanguageRequirements() string {
	return s.languageRequirements
}
