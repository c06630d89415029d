// Package modules holds the platform's domain prompt modules. Each module is
// a builder.Config keyed by catalog category and prompt name.
package modules

import (
	"sort"
	"strings"

	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/localization"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/schema"
)

// Key addresses a module as category/name.
type Key struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

func (k Key) String() string { return k.Category + "/" + k.Name }

// ParseKey splits "category/name".
func ParseKey(s string) (Key, bool) {
	category, name, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || category == "" || name == "" {
		return Key{}, false
	}
	return Key{Category: category, Name: name}, true
}

// Library is the read-only set of configs the platform ships with.
type Library struct {
	keys  []Key
	byKey map[Key]*builder.Config
}

type factory func(localization.Provider, *schema.Patterns) *builder.Config

// NewLibrary renders every module against provider. A nil provider uses the
// platform defaults.
func NewLibrary(provider localization.Provider) *Library {
	if provider == nil {
		provider = localization.Default()
	}
	patterns := schema.StandardPatterns()

	l := &Library{byKey: map[Key]*builder.Config{}}
	for _, m := range []struct {
		category string
		build    factory
	}{
		{CategoryMatchmaker, partnerMatch},
		{CategorySandbox, applicationEvaluation},
		{CategoryChallenges, challengeDescription},
		{CategoryPilots, successPrediction},
		{CategoryEngagementHub, campaignSubjectLines},
		{CategoryStrategy, gapAnalysis},
		{CategoryProfiles, profileEnrichment},
		{CategoryEvents, eventRecommendations},
	} {
		cfg := m.build(provider, patterns)
		k := Key{Category: m.category, Name: cfg.Name}
		l.keys = append(l.keys, k)
		l.byKey[k] = cfg
	}
	sort.Slice(l.keys, func(i, j int) bool { return l.keys[i].String() < l.keys[j].String() })
	return l
}

// Get returns the config registered under category/name.
func (l *Library) Get(category, name string) (*builder.Config, bool) {
	cfg, ok := l.byKey[Key{Category: category, Name: name}]
	return cfg, ok
}

// Keys lists every module key, sorted.
func (l *Library) Keys() []Key {
	return append([]Key(nil), l.keys...)
}

// InCategory returns the configs of one category in key order.
func (l *Library) InCategory(category string) []*builder.Config {
	var out []*builder.Config
	for _, k := range l.keys {
		if k.Category == category {
			out = append(out, l.byKey[k])
		}
	}
	return out
}

func systemFor(p localization.Provider, category string) string {
	return p.SystemPrompt(category, "") + "\n\n" + p.LanguageRequirements()
}
