package schema

// Patterns is a read-only table of named fragments shared by prompt modules.
// Lookups hand out clones so callers cannot mutate the table.
type Patterns struct {
	names []string
	byKey map[string]*Schema
}

// Pattern names.
const (
	PatternBilingualTitle       = "bilingual_title"
	PatternBilingualDescription = "bilingual_description"
	PatternPriority             = "priority"
	PatternScore                = "score"
	PatternConfidence           = "confidence"
	PatternRecommendations      = "recommendations"
	PatternNextSteps            = "next_steps"
	PatternKeywords             = "keywords"
)

// StandardPatterns builds the platform's shared fragment table.
func StandardPatterns() *Patterns {
	p := &Patterns{byKey: map[string]*Schema{}}
	p.add(PatternBilingualTitle, BilingualTextField("Title"))
	p.add(PatternBilingualDescription, BilingualTextField("Description"))
	p.add(PatternPriority, PriorityField())
	p.add(PatternScore, ScoreField())
	p.add(PatternConfidence, ScoreFieldBetween(0, 1))
	p.add(PatternRecommendations, BilingualListSchema("Actionable recommendations"))
	p.add(PatternNextSteps, BilingualListSchema("Ordered next steps",
		Extra{Name: "owner", Schema: String("Responsible party")},
		Extra{Name: "timeline", Schema: String("Expected timeline")},
	))
	p.add(PatternKeywords, ArrayOf(String("Keyword")))
	return p
}

func (p *Patterns) add(name string, s *Schema) {
	p.names = append(p.names, name)
	p.byKey[name] = s
}

// Names returns the pattern names in definition order.
func (p *Patterns) Names() []string {
	return append([]string(nil), p.names...)
}

// Get returns a copy of the named fragment.
func (p *Patterns) Get(name string) (*Schema, bool) {
	s, ok := p.byKey[name]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// MustGet is Get for names known at compile time.
func (p *Patterns) MustGet(name string) *Schema {
	s, ok := p.Get(name)
	if !ok {
		panic("schema: unknown pattern " + name)
	}
	return s
}
