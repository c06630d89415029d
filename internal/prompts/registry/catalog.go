package registry

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is the metadata kept per prompt category.
type Entry struct {
	PromptCount int      `json:"promptCount" yaml:"prompt_count"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Module      string   `json:"module,omitempty" yaml:"module"`
	Status      string   `json:"status,omitempty" yaml:"status"`
	Prompts     []string `json:"prompts,omitempty" yaml:"prompts"`
}

// Module is a named catalog row.
type Module struct {
	Name string `json:"name" yaml:"name"`
	Entry `yaml:",inline"`
}

type Progress struct {
	Phase            string `json:"phase,omitempty" yaml:"phase"`
	CompletedModules int    `json:"completedModules" yaml:"completed_modules"`
	TotalModules     int    `json:"totalModules" yaml:"total_modules"`
	Percent          int    `json:"percent" yaml:"percent"`
}

// Catalog is an ordered, read-only category table. It is built once and
// shared by reference.
type Catalog struct {
	progress Progress
	modules  []Module
	index    map[string]int
}

// NewCatalog validates and freezes modules in the given order.
func NewCatalog(progress Progress, modules ...Module) (*Catalog, error) {
	c := &Catalog{
		progress: progress,
		modules:  make([]Module, 0, len(modules)),
		index:    make(map[string]int, len(modules)),
	}
	for i, m := range modules {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog row %d: empty category name", i)
		}
		if _, dup := c.index[name]; dup {
			return nil, fmt.Errorf("catalog row %d: duplicate category %q", i, name)
		}
		if m.PromptCount < 0 {
			return nil, fmt.Errorf("catalog row %d: category %q has negative prompt count", i, name)
		}
		m.Name = name
		m.Prompts = append([]string(nil), m.Prompts...)
		c.index[name] = len(c.modules)
		c.modules = append(c.modules, m)
	}
	return c, nil
}

// MustCatalog is NewCatalog for literal tables.
func MustCatalog(progress Progress, modules ...Module) *Catalog {
	c, err := NewCatalog(progress, modules...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int { return len(c.modules) }

func (c *Catalog) Progress() Progress { return c.progress }

// Modules returns a copy of the rows in table order.
func (c *Catalog) Modules() []Module {
	out := make([]Module, len(c.modules))
	for i, m := range c.modules {
		out[i] = cloneModule(m)
	}
	return out
}

func (c *Catalog) lookup(name string) (Module, bool) {
	i, ok := c.index[name]
	if !ok {
		return Module{}, false
	}
	return cloneModule(c.modules[i]), true
}

func cloneModule(m Module) Module {
	m.Prompts = append([]string(nil), m.Prompts...)
	return m
}

type catalogFile struct {
	Progress   Progress `yaml:"progress"`
	Categories []Module `yaml:"categories"`
}

// LoadCatalogYAML reads a catalog file of the form
//
//	progress: {phase: ..., completed_modules: 3, total_modules: 5, percent: 60}
//	categories:
//	  - name: matchmaker
//	    prompt_count: 7
func LoadCatalogYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalogYAML(data)
}

func ParseCatalogYAML(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("catalog has no categories")
	}
	return NewCatalog(f.Progress, f.Categories...)
}
