package registry

import (
	"sort"
	"strings"
)

const (
	largeMinPrompts  = 5
	mediumMinPrompts = 3

	topCategoriesLimit  = 10
	recommendationLimit = 5
)

// Registry answers discovery queries over a Catalog. It never mutates the
// catalog and never fails; misses come back as false or empty slices.
type Registry struct {
	catalog *Catalog
}

func New(catalog *Catalog) *Registry {
	if catalog == nil {
		catalog = MustCatalog(Progress{})
	}
	return &Registry{catalog: catalog}
}

type BySize struct {
	Large  []string `json:"large"`
	Medium []string `json:"medium"`
	Small  []string `json:"small"`
}

type Stats struct {
	Progress
	Categories    int      `json:"categories"`
	TotalPrompts  int      `json:"totalPrompts"`
	BySize        BySize   `json:"bySize"`
	TopCategories []Module `json:"topCategories"`
}

type Recommendation struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Entry
}

// Categories lists category names in table order.
func (r *Registry) Categories() []string {
	out := make([]string, 0, r.catalog.Len())
	for _, m := range r.catalog.modules {
		out = append(out, m.Name)
	}
	return out
}

// Category looks up an exact category name.
func (r *Registry) Category(name string) (Entry, bool) {
	m, ok := r.catalog.lookup(name)
	if !ok {
		return Entry{}, false
	}
	return m.Entry, true
}

// Search matches keyword case-insensitively against category names only.
func (r *Registry) Search(keyword string) []Module {
	kw := strings.ToLower(keyword)
	out := []Module{}
	for _, m := range r.catalog.modules {
		if strings.Contains(strings.ToLower(m.Name), kw) {
			out = append(out, cloneModule(m))
		}
	}
	return out
}

// Stats bins every category by prompt count and ranks the largest ones.
func (r *Registry) Stats() Stats {
	st := Stats{
		Progress:   r.catalog.Progress(),
		Categories: r.catalog.Len(),
		BySize: BySize{
			Large:  []string{},
			Medium: []string{},
			Small:  []string{},
		},
	}
	for _, m := range r.catalog.modules {
		st.TotalPrompts += m.PromptCount
		switch {
		case m.PromptCount >= largeMinPrompts:
			st.BySize.Large = append(st.BySize.Large, m.Name)
		case m.PromptCount >= mediumMinPrompts:
			st.BySize.Medium = append(st.BySize.Medium, m.Name)
		default:
			st.BySize.Small = append(st.BySize.Small, m.Name)
		}
	}

	ranked := r.catalog.Modules()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PromptCount > ranked[j].PromptCount
	})
	if len(ranked) > topCategoriesLimit {
		ranked = ranked[:topCategoriesLimit]
	}
	st.TopCategories = ranked
	return st
}

// Recommend scores categories against the words of useCase: +2 when the
// category name contains a word, +1 when a word contains the category name.
// Both can apply to the same word.
func (r *Registry) Recommend(useCase string) []Recommendation {
	tokens := strings.Fields(strings.ToLower(useCase))
	out := []Recommendation{}
	if len(tokens) == 0 {
		return out
	}
	for _, m := range r.catalog.modules {
		name := strings.ToLower(m.Name)
		score := 0
		for _, tok := range tokens {
			if strings.Contains(name, tok) {
				score += 2
			}
			if strings.Contains(tok, name) {
				score++
			}
		}
		if score == 0 {
			continue
		}
		out = append(out, Recommendation{Name: m.Name, Score: score, Entry: cloneModule(m).Entry})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > recommendationLimit {
		out = out[:recommendationLimit]
	}
	return out
}
