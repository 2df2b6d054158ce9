package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfileJSON = `{
	"contact": {
		"full_name": "Jane Doe",
		"email": "jane.doe@example.com",
		"branch": "Army"
	},
	"target_role": "Systems Administrator",
	"mos_entries": [{"code": "25B", "branch": "Army"}],
	"experience": [
		{
			"organization": "U.S. Army",
			"role": "IT Specialist",
			"start": "2016-05",
			"end": "2022-05",
			"bullets": ["Maintained network infrastructure"]
		}
	]
}`

func TestValidateProfileBytesValid(t *testing.T) {
	assert.NoError(t, ValidateProfileBytes([]byte(validProfileJSON)))
}

func TestValidateProfileBytesMissingRequired(t *testing.T) {
	err := ValidateProfileBytes([]byte(`{"contact": {"full_name": "Jane Doe"}}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "target_role")
}

func TestValidateProfileBytesBadDateFormat(t *testing.T) {
	err := ValidateProfileBytes([]byte(`{
		"contact": {"full_name": "Jane Doe"},
		"target_role": "Analyst",
		"experience": [{"organization": "Acme Corp", "role": "Analyst", "start": "May 2016"}]
	}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateProfileBytesUnknownField(t *testing.T) {
	err := ValidateProfileBytes([]byte(`{
		"contact": {"full_name": "Jane Doe"},
		"target_role": "Analyst",
		"favorite_color": "blue"
	}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateProfileBytesUnknownBranch(t *testing.T) {
	err := ValidateProfileBytes([]byte(`{
		"contact": {"full_name": "Jane Doe", "branch": "Starfleet"},
		"target_role": "Analyst"
	}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateProfileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(validProfileJSON), 0o644))

	assert.NoError(t, ValidateProfileFile(path))

	err := ValidateProfileFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidateJSONWithExternalSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	docPath := filepath.Join(dir, "doc.json")

	require.NoError(t, os.WriteFile(schemaPath, []byte(`{
		"type": "object",
		"required": ["code"],
		"properties": {"code": {"type": "string"}}
	}`), 0o644))
	require.NoError(t, os.WriteFile(docPath, []byte(`{"code": "25B"}`), 0o644))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))

	require.NoError(t, os.WriteFile(docPath, []byte(`{}`), 0o644))
	err := ValidateJSON(schemaPath, docPath)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONMissingFiles(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, ValidateJSON(filepath.Join(dir, "schema.json"), filepath.Join(dir, "doc.json")))
}
