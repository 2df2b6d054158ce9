package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/veteran-resume-builder/internal/config"
	"github.com/jonathan/veteran-resume-builder/internal/generation"
)

func TestBuildGeneratorDeterministic(t *testing.T) {
	gen, closer, err := buildGenerator(context.Background(), config.Config{AI: config.BackendDeterministic})
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.IsType(t, &generation.Deterministic{}, gen)
}

func TestBuildGeneratorGeminiRequiresKey(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")

	_, _, err := buildGenerator(context.Background(), config.Config{AI: config.BackendGemini})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires an API key")
}

func TestBuildGeneratorUnknownBackend(t *testing.T) {
	_, _, err := buildGenerator(context.Background(), config.Config{AI: "chatbot"})
	assert.Error(t, err)
}

func TestLoadTableDefault(t *testing.T) {
	table, err := loadTable("")
	require.NoError(t, err)
	assert.Greater(t, table.Len(), 0)
}

func TestLoadTableCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	csv := "MOS_CODE,BRANCH,TITLE,CIVILIAN_EQUIVALENT,SKILLS,KEYWORDS\n" +
		"99Z,Army,Test Specialist,Tester,\"Testing\",\"testing\"\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	table, err := loadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := loadTable(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestValidateCommandValidProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"contact": {"full_name": "Jane Doe", "email": "jane@example.com"},
		"target_role": "Systems Administrator"
	}`), 0o644))

	assert.NoError(t, runValidateCmd(nil, []string{path}))
}

func TestValidateCommandInvalidProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"contact": {"full_name": "Jane Doe"}}`), 0o644))

	assert.Error(t, runValidateCmd(nil, []string{path}))
}
