package rendering

import "fmt"

// TemplateNotFoundError is returned when the requested template cannot be
// resolved against the embedded set or the configured template directory.
type TemplateNotFoundError struct {
	Name     string
	Searched string
}

func (e *TemplateNotFoundError) Error() string {
	if e.Searched != "" {
		return fmt.Sprintf("template %q not found (searched %s)", e.Name, e.Searched)
	}

	return fmt.Sprintf("template %q not found", e.Name)
}

// RenderError wraps failures that happen while a resolved template is being
// parsed or executed.
type RenderError struct {
	Template string
	Message  string
	Cause    error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rendering %s: %s: %v", e.Template, e.Message, e.Cause)
	}

	return fmt.Sprintf("rendering %s: %s", e.Template, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
