package rendering

import (
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// Placeholders recognized inside .docx templates. Each is replaced with the
// corresponding block of the rendered resume; absent sections replace with
// an empty string.
const (
	placeholderName        = "{{FULL_NAME}}"
	placeholderContact     = "{{CONTACT_LINE}}"
	placeholderBranchTitle = "{{BRANCH_TITLE}}"
	placeholderSummary     = "{{SUMMARY}}"
	placeholderExperience  = "{{EXPERIENCE}}"
	placeholderSkills      = "{{SKILLS}}"
	placeholderEducation   = "{{EDUCATION}}"
	placeholderCerts       = "{{CERTIFICATIONS}}"
	placeholderAdditional  = "{{ADDITIONAL}}"
)

// Section headings that fold into the {{ADDITIONAL}} placeholder.
var additionalHeadings = map[string]bool{
	"AWARDS & HONORS":      true,
	"VOLUNTEER EXPERIENCE": true,
	"VETERAN EXPERIENCE":   true,
	"LANGUAGES":            true,
}

// renderDocx fills the placeholders of the .docx template at templatePath
// and writes the result to outputPath.
func renderDocx(templatePath string, data *TemplateData, outputPath string) error {
	reader, err := docx.ReadDocxFile(templatePath)
	if err != nil {
		return &RenderError{Template: templatePath, Message: "opening docx template", Cause: err}
	}
	defer reader.Close()

	doc := reader.Editable()
	for placeholder, value := range docxReplacements(data) {
		if err := doc.Replace(placeholder, value, -1); err != nil {
			return &RenderError{Template: templatePath, Message: "replacing " + placeholder, Cause: err}
		}
	}

	if err := doc.WriteToFile(outputPath); err != nil {
		return &RenderError{Template: templatePath, Message: "writing docx output", Cause: err}
	}

	return nil
}

// docxReplacements maps every known placeholder to its replacement text.
// Multi-line blocks use "\n", which the docx library turns into line breaks.
func docxReplacements(data *TemplateData) map[string]string {
	replacements := map[string]string{
		placeholderName:        data.Name,
		placeholderContact:     data.ContactLine,
		placeholderBranchTitle: data.BranchTitle,
		placeholderSummary:     "",
		placeholderExperience:  "",
		placeholderSkills:      "",
		placeholderEducation:   "",
		placeholderCerts:       "",
		placeholderAdditional:  "",
	}

	var additional []string
	for _, section := range data.Sections {
		block := docxSectionBlock(&section)
		switch section.Heading {
		case "PROFESSIONAL SUMMARY":
			replacements[placeholderSummary] = block
		case "PROFESSIONAL EXPERIENCE":
			replacements[placeholderExperience] = block
		case "SKILLS":
			replacements[placeholderSkills] = block
		case "EDUCATION":
			replacements[placeholderEducation] = block
		case "CERTIFICATIONS":
			replacements[placeholderCerts] = block
		default:
			if additionalHeadings[section.Heading] {
				additional = append(additional, section.Heading+"\n"+block)
			}
		}
	}
	replacements[placeholderAdditional] = strings.Join(additional, "\n\n")

	return replacements
}

// docxSectionBlock flattens a section's entries into one newline-joined
// block, without the heading.
func docxSectionBlock(section *Section) string {
	var lines []string
	for _, entry := range section.Entries {
		if entry.Title != "" {
			header := entry.Title
			if entry.Subtitle != "" {
				header += " | " + entry.Subtitle
			}
			if entry.Meta != "" {
				header += " | " + entry.Meta
			}
			lines = append(lines, header)
			for _, line := range entry.Lines {
				lines = append(lines, "- "+line)
			}
		} else {
			lines = append(lines, entry.Lines...)
		}
	}
	return strings.Join(lines, "\n")
}
