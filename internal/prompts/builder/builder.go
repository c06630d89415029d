package builder

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yungbote/civic-innovation-backend/internal/pkg/errors"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/localization"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/schema"
)

var (
	// ErrNilConfig means a prompt module was wired without a config. It is a
	// programming error, not a runtime condition.
	ErrNilConfig = fmt.Errorf("%w: prompt config is nil", errors.ErrInvalidArgument)
	ErrNoPrompts = fmt.Errorf("%w: no prompt configs to combine", errors.ErrInvalidArgument)
)

// Context carries the run-time values a prompt module renders from.
type Context map[string]any

// Config is the contract every domain prompt module implements.
type Config struct {
	Name string

	// System wins over SystemFunc; with neither set the provider default is used.
	System     string
	SystemFunc func(Context) string

	// BuildPrompt wins over the static Prompt.
	Prompt      string
	BuildPrompt func(Context) string

	Schema *schema.Schema

	// RequiredContext lists the context keys the module cannot render without.
	RequiredContext []string
}

// Payload is handed to the AI invocation layer as is.
type Payload struct {
	SystemPrompt       string         `json:"system_prompt"`
	Prompt             string         `json:"prompt"`
	ResponseJSONSchema *schema.Schema `json:"response_json_schema,omitempty"`
}

// Fingerprint identifies the payload content for log correlation.
func (p Payload) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte(strings.TrimSpace(p.SystemPrompt)))
	h.Write([]byte{'|'})
	h.Write([]byte(strings.TrimSpace(p.Prompt)))
	if p.ResponseJSONSchema != nil {
		if raw, err := json.Marshal(p.ResponseJSONSchema); err == nil {
			h.Write([]byte{'|'})
			h.Write(raw)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

type Builder struct {
	provider localization.Provider
}

func New(provider localization.Provider) *Builder {
	if provider == nil {
		provider = localization.Default()
	}
	return &Builder{provider: provider}
}

// Build resolves cfg against ctx into a payload.
func (b *Builder) Build(cfg *Config, ctx Context) (Payload, error) {
	if cfg == nil {
		return Payload{}, ErrNilConfig
	}
	p := Payload{
		SystemPrompt: b.resolveSystem(cfg, ctx),
		Prompt:       resolvePrompt(cfg, ctx),
	}
	if cfg.Schema != nil {
		p.ResponseJSONSchema = cfg.Schema
	}
	return p, nil
}

// MustBuild is Build for configs known to be non-nil.
func (b *Builder) MustBuild(cfg *Config, ctx Context) Payload {
	p, err := b.Build(cfg, ctx)
	if err != nil {
		panic(err)
	}
	return p
}

func (b *Builder) resolveSystem(cfg *Config, ctx Context) string {
	switch {
	case cfg.System != "":
		return cfg.System
	case cfg.SystemFunc != nil:
		return cfg.SystemFunc(ctx)
	default:
		return b.provider.SystemPrompt("", "")
	}
}

func resolvePrompt(cfg *Config, ctx Context) string {
	switch {
	case cfg.BuildPrompt != nil:
		return cfg.BuildPrompt(ctx)
	case cfg.Prompt != "":
		return cfg.Prompt
	default:
		return ""
	}
}

// BuildWithSaudiContext builds cfg and puts the localized context block in
// front of the prompt body.
func (b *Builder) BuildWithSaudiContext(cfg *Config, ctx Context, language string) (Payload, error) {
	p, err := b.Build(cfg, ctx)
	if err != nil {
		return Payload{}, err
	}
	if strings.TrimSpace(language) == "" {
		language = localization.LangEnglish
	}
	p.Prompt = b.saudiContextBlock(language) + "\n\n" + p.Prompt
	return p, nil
}

func (b *Builder) saudiContextBlock(language string) string {
	sc := b.provider.SaudiContext()
	var sb strings.Builder
	sb.WriteString("SAUDI CONTEXT:\n")
	fmt.Fprintf(&sb, "- Language: %s\n", sc.LanguageLabel(language))
	fmt.Fprintf(&sb, "- Cultural considerations: %s\n", strings.Join(sc.CulturalConsiderations, ", "))
	fmt.Fprintf(&sb, "- Regulatory framework: %s", sc.RegulatoryFramework)
	return sb.String()
}

// ResultsWrapperSchema is the fixed response schema of a combined payload.
func ResultsWrapperSchema() *schema.Schema {
	return &schema.Schema{
		Type: schema.TypeObject,
		Properties: map[string]*schema.Schema{
			"results": {
				Type:  schema.TypeArray,
				Items: &schema.Schema{Type: schema.TypeObject},
			},
		},
		Required: []string{"results"},
	}
}

// Combine merges several prompts into one numbered multi-task payload. Only
// the first config's system prompt survives, and per-config schemas are
// replaced by ResultsWrapperSchema.
func (b *Builder) Combine(cfgs []*Config, ctx Context) (Payload, error) {
	if len(cfgs) == 0 {
		return Payload{}, ErrNoPrompts
	}
	var system string
	tasks := make([]string, 0, len(cfgs))
	for i, cfg := range cfgs {
		p, err := b.Build(cfg, ctx)
		if err != nil {
			return Payload{}, fmt.Errorf("task %d: %w", i+1, err)
		}
		if i == 0 {
			system = p.SystemPrompt
		}
		tasks = append(tasks, fmt.Sprintf("## Task %d\n%s", i+1, p.Prompt))
	}
	return Payload{
		SystemPrompt:       system,
		Prompt:             strings.Join(tasks, "\n\n"),
		ResponseJSONSchema: ResultsWrapperSchema(),
	}, nil
}
