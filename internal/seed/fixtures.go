package seed

import (
	"bytes"
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var fixtureFiles embed.FS

// Fixtures is a full set of portfolio content to load into an empty database.
type Fixtures struct {
	Projects []ProjectFixture `yaml:"projects"`
	Skills   []SkillFixture   `yaml:"skills"`
	About    []AboutFixture   `yaml:"about"`
	Contacts []ContactFixture `yaml:"contacts"`
}

type ProjectFixture struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	TechStack   []string `yaml:"tech_stack"`
	GithubURL   string   `yaml:"github_url"`
	LiveURL     string   `yaml:"live_url"`
	ImageURL    string   `yaml:"image_url"`
	Status      string   `yaml:"status"`
	Featured    bool     `yaml:"featured"`
}

type SkillFixture struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Proficiency int    `yaml:"proficiency"`
	Icon        string `yaml:"icon"`
}

type AboutFixture struct {
	Section    string `yaml:"section"`
	Title      string `yaml:"title"`
	Content    string `yaml:"content"`
	OrderIndex int    `yaml:"order_index"`
}

type ContactFixture struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Subject string `yaml:"subject"`
	Message string `yaml:"message"`
	Status  string `yaml:"status"`
}

// DefaultFixtures returns the embedded sample content.
func DefaultFixtures() (*Fixtures, error) {
	data, err := fixtureFiles.ReadFile("fixtures/portfolio.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded fixtures: %w", err)
	}
	return ParseFixtures(data)
}

// LoadFixtures reads fixtures from a YAML file on disk.
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures %s: %w", path, err)
	}
	return ParseFixtures(data)
}

// ParseFixtures decodes fixture YAML. Unknown keys are rejected so typos
// in hand-written files surface instead of silently seeding nothing.
func ParseFixtures(data []byte) (*Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fixtures: %w", err)
	}
	return &f, nil
}
