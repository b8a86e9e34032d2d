package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_LoadsEmbeddedConfig(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	assert.Equal(t, "DevOps & Tools", r.Category("devops").Title)
	assert.Equal(t, "Frontend", r.Category("frontend").Title)
	assert.Equal(t, "🎓", r.Section("education").Icon)
}

func TestRegistry_Fallback(t *testing.T) {
	r, err := Parse([]byte(`
categories:
  backend: {title: Backend, icon: "B"}
fallback:
  icon: "?"
  accent: grey
`))
	require.NoError(t, err)

	got := r.Category("mobile")
	assert.Equal(t, Style{Title: "mobile", Icon: "?", Accent: "grey"}, got)

	got = r.Section("hobbies")
	assert.Equal(t, "hobbies", got.Title)
	assert.Equal(t, "?", got.Icon)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("categories: [unclosed"))
	assert.Error(t, err)
}
