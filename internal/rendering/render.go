package rendering

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jonathan/veteran-resume-builder/internal/types"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// DefaultTemplate is used when no template is requested.
const DefaultTemplate = "classic"

// Renderer resolves templates and renders profiles into documents. An
// optional template directory takes precedence over the embedded set, so
// users can override the built-in layouts file by file.
type Renderer struct {
	templateDir string
}

// NewRenderer creates a Renderer. templateDir may be empty, in which case
// only the embedded templates are available.
func NewRenderer(templateDir string) *Renderer {
	return &Renderer{templateDir: templateDir}
}

// Render produces the document text for the profile using the named
// template. DOCX templates produce binary output and must go through
// RenderToFile instead.
func (r *Renderer) Render(profile *types.ResumeProfile, generated *types.GeneratedContent, templateName string) (string, error) {
	if templateName == "" {
		templateName = DefaultTemplate
	}
	if strings.HasSuffix(templateName, ".docx") {
		return "", &RenderError{
			Template: templateName,
			Message:  "docx templates produce binary output, use RenderToFile",
		}
	}

	source, err := r.loadTemplate(templateName)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(templateName).Parse(string(source))
	if err != nil {
		return "", &RenderError{Template: templateName, Message: "parsing template", Cause: err}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, buildTemplateData(profile, generated)); err != nil {
		return "", &RenderError{Template: templateName, Message: "executing template", Cause: err}
	}

	return buf.String(), nil
}

// RenderToFile renders the profile and writes the result to outputPath.
// Template names ending in .docx are resolved against the template directory
// and rendered through the DOCX path; everything else renders as text.
func (r *Renderer) RenderToFile(profile *types.ResumeProfile, generated *types.GeneratedContent, templateName, outputPath string) error {
	if strings.HasSuffix(templateName, ".docx") {
		path, err := r.resolveDocxTemplate(templateName)
		if err != nil {
			return err
		}
		return renderDocx(path, buildTemplateData(profile, generated), outputPath)
	}

	content, err := r.Render(profile, generated, templateName)
	if err != nil {
		return err
	}

	return WriteDocument(outputPath, content)
}

// WriteDocument writes rendered content to path, creating parent directories
// as needed.
func WriteDocument(path, content string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &RenderError{Template: path, Message: "creating output directory", Cause: err}
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &RenderError{Template: path, Message: "writing document", Cause: err}
	}

	return nil
}

// loadTemplate returns the template source for name. The configured template
// directory is checked first, then the embedded set.
func (r *Renderer) loadTemplate(name string) ([]byte, error) {
	base := strings.TrimSuffix(name, ".tmpl")

	if r.templateDir != "" {
		candidate := filepath.Join(r.templateDir, base+".tmpl")
		if data, err := os.ReadFile(candidate); err == nil {
			return data, nil
		}
	}

	data, err := embeddedTemplates.ReadFile("templates/" + base + ".tmpl")
	if err != nil {
		searched := "embedded templates"
		if r.templateDir != "" {
			searched = fmt.Sprintf("%s, embedded templates", r.templateDir)
		}
		return nil, &TemplateNotFoundError{Name: name, Searched: searched}
	}

	return data, nil
}

// resolveDocxTemplate locates a .docx template on disk. The name may be a
// path or a bare file name relative to the template directory.
func (r *Renderer) resolveDocxTemplate(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	if r.templateDir != "" {
		candidate := filepath.Join(r.templateDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	searched := "current directory"
	if r.templateDir != "" {
		searched = fmt.Sprintf("current directory, %s", r.templateDir)
	}
	return "", &TemplateNotFoundError{Name: name, Searched: searched}
}
