package presentation

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Style is how one group of content is labelled on the page.
type Style struct {
	Title  string `yaml:"title" json:"title"`
	Icon   string `yaml:"icon" json:"icon"`
	Accent string `yaml:"accent,omitempty" json:"accent,omitempty"`
}

type document struct {
	Categories map[string]Style `yaml:"categories"`
	Sections   map[string]Style `yaml:"sections"`
	Fallback   Style            `yaml:"fallback"`
}

// Registry resolves display styles for skill categories and about sections.
// It is read-only after construction.
type Registry struct {
	categories map[string]Style
	sections   map[string]Style
	fallback   Style
}

// NewRegistry loads the embedded presentation file.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/presentation.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read presentation config: %w", err)
	}
	return Parse(data)
}

// Parse builds a registry from YAML bytes.
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal presentation config: %w", err)
	}
	return &Registry{
		categories: doc.Categories,
		sections:   doc.Sections,
		fallback:   doc.Fallback,
	}, nil
}

// Category returns the style for a skill category. Unknown categories get
// the fallback icon and their raw name as title.
func (r *Registry) Category(name string) Style {
	return r.lookup(r.categories, name)
}

// Section returns the style for an about section.
func (r *Registry) Section(name string) Style {
	return r.lookup(r.sections, name)
}

func (r *Registry) lookup(styles map[string]Style, name string) Style {
	if s, ok := styles[name]; ok {
		return s
	}
	s := r.fallback
	s.Title = name
	return s
}
