package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	for _, key := range []string{"summary", "bullets"} {
		prompt, err := Get("generation.json", key)
		require.NoError(t, err, "prompt %q", key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("generation.json", "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "summary")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	template := MustGet("generation.json", "summary")
	result := Format(template, map[string]string{
		"TargetRole":         "Systems Administrator",
		"MilitaryBackground": "25B (Information Technology Specialist), Army",
		"Years":              "6",
		"Skills":             "Network administration, Systems troubleshooting",
		"Clearance":          "Secret",
	})

	assert.Contains(t, result, "Systems Administrator")
	assert.Contains(t, result, "Network administration")
	assert.False(t, strings.Contains(result, "{{.TargetRole}}"), "all placeholders replaced")
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("Role: {{.Role}} Extra: {{.Extra}}", map[string]string{"Role": "Medic"})
	assert.Equal(t, "Role: Medic Extra: {{.Extra}}", result)
}
