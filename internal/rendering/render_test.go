package rendering

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyenthenguyen/docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/veteran-resume-builder/internal/types"
)

func renderProfile() *types.ResumeProfile {
	return &types.ResumeProfile{
		Contact: types.Contact{
			FullName:          "Jane Doe",
			Email:             "jane.doe@example.com",
			Phone:             "(555) 123-4567",
			City:              "Austin",
			State:             "TX",
			SecurityClearance: "Secret",
			Branch:            "Army",
		},
		TargetRole: "Systems Administrator",
		MOSEntries: []types.MOSEntry{
			{
				Code:           "25B",
				Branch:         "Army",
				Title:          "Information Technology Specialist",
				CivilianSkills: []string{"Network administration", "Systems troubleshooting"},
			},
		},
		Experience: []types.WorkHistory{
			{
				Organization: "U.S. Army",
				Role:         "Information Technology Specialist",
				Location:     "Fort Hood, TX",
				Start:        "2016-05",
				End:          "2022-05",
				Bullets:      []string{"Maintained network infrastructure for a 200-person battalion"},
			},
		},
		Education: []types.Education{
			{
				Institution:    "Austin Community College",
				Program:        "A.A.S. Network Administration",
				GraduationYear: 2023,
				GPA:            3.8,
			},
		},
		Skills: []string{"Windows Server", "network administration"},
		Certifications: []types.Certification{
			{Name: "CompTIA Security+", Issuer: "CompTIA", Year: 2022},
		},
		AdditionalInfo: &types.AdditionalInfo{
			Awards:            []string{"Army Commendation Medal"},
			VeteranExperience: []string{"Led a team of 8 junior soldiers"},
		},
	}
}

func TestRenderClassicTemplate(t *testing.T) {
	renderer := NewRenderer("")

	out, err := renderer.Render(renderProfile(), nil, "classic")
	require.NoError(t, err)

	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "jane.doe@example.com | (555) 123-4567 | Austin, TX | Clearance: Secret")
	assert.Contains(t, out, "UNITED STATES ARMY - INFORMATION TECHNOLOGY SPECIALIST")
	assert.Contains(t, out, "PROFESSIONAL EXPERIENCE")
	assert.Contains(t, out, "  - Maintained network infrastructure for a 200-person battalion")
	assert.Contains(t, out, "GPA: 3.80")
	assert.Contains(t, out, "AWARDS & HONORS")
	assert.Contains(t, out, "VETERAN EXPERIENCE")
}

func TestRenderDefaultsToClassic(t *testing.T) {
	renderer := NewRenderer("")

	named, err := renderer.Render(renderProfile(), nil, "classic")
	require.NoError(t, err)
	defaulted, err := renderer.Render(renderProfile(), nil, "")
	require.NoError(t, err)

	assert.Equal(t, named, defaulted)
}

func TestRenderIsDeterministic(t *testing.T) {
	renderer := NewRenderer("")
	profile := renderProfile()
	generated := &types.GeneratedContent{
		Summary:             "Results-driven candidate.",
		BulletsByExperience: map[int][]string{0: {"Did a thing", "Did another thing"}},
	}

	first, err := renderer.Render(profile, generated, "modern")
	require.NoError(t, err)
	second, err := renderer.Render(profile, generated, "modern")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderOmitsEmptySections(t *testing.T) {
	profile := &types.ResumeProfile{
		Contact:    types.Contact{FullName: "John Roe", Email: "john@example.com"},
		TargetRole: "Analyst",
		Experience: []types.WorkHistory{
			{Organization: "Acme Corp", Role: "Analyst", Start: "2020-01", End: "present"},
		},
	}

	out, err := NewRenderer("").Render(profile, nil, "classic")
	require.NoError(t, err)

	assert.NotContains(t, out, "EDUCATION")
	assert.NotContains(t, out, "CERTIFICATIONS")
	assert.NotContains(t, out, "PROFESSIONAL SUMMARY")
	assert.NotContains(t, out, "VETERAN EXPERIENCE")
	assert.Contains(t, out, "PROFESSIONAL EXPERIENCE")
}

func TestRenderPrefersGeneratedContent(t *testing.T) {
	profile := renderProfile()
	profile.Summary = "Profile summary."
	generated := &types.GeneratedContent{
		Summary:             "Generated summary.",
		BulletsByExperience: map[int][]string{0: {"Generated bullet"}},
	}

	out, err := NewRenderer("").Render(profile, generated, "classic")
	require.NoError(t, err)

	assert.Contains(t, out, "Generated summary.")
	assert.NotContains(t, out, "Profile summary.")
	assert.Contains(t, out, "Generated bullet")
	assert.NotContains(t, out, "200-person battalion")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := NewRenderer("").Render(renderProfile(), nil, "fancy")

	var notFound *TemplateNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "fancy", notFound.Name)
}

func TestRenderTemplateDirOverride(t *testing.T) {
	dir := t.TempDir()
	custom := "CUSTOM LAYOUT FOR {{.Name}}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "classic.tmpl"), []byte(custom), 0o644))

	out, err := NewRenderer(dir).Render(renderProfile(), nil, "classic")
	require.NoError(t, err)

	assert.Equal(t, "CUSTOM LAYOUT FOR Jane Doe\n", out)
}

func TestRenderRejectsDocxToString(t *testing.T) {
	_, err := NewRenderer("").Render(renderProfile(), nil, "classic.docx")

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
}

func TestRenderToFileWritesTextDocument(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out", "resume.txt")

	err := NewRenderer("").RenderToFile(renderProfile(), nil, "classic", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Jane Doe")
}

func TestRenderToFileDocx(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "resume.docx")
	renderer := NewRenderer(filepath.Join("..", "..", "templates"))

	err := renderer.RenderToFile(renderProfile(), nil, "classic.docx", outPath)
	require.NoError(t, err)

	reader, err := docx.ReadDocxFile(outPath)
	require.NoError(t, err)
	defer reader.Close()

	content := reader.Editable().GetContent()
	assert.Contains(t, content, "Jane Doe")
	assert.Contains(t, content, "CompTIA Security+")
	assert.NotContains(t, content, "{{FULL_NAME}}")
}

func TestRenderToFileDocxMissingTemplate(t *testing.T) {
	err := NewRenderer("").RenderToFile(renderProfile(), nil, "missing.docx", filepath.Join(t.TempDir(), "out.docx"))

	var notFound *TemplateNotFoundError
	require.ErrorAs(t, err, &notFound)
}
