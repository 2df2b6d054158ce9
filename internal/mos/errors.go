// Package mos provides the military occupational specialty lookup service:
// a read-only reference table loaded once at startup that maps occupational
// codes to civilian-equivalent titles, skills, and keywords.
package mos

import "fmt"

// NotFoundError indicates an occupational code has no entry in the table.
// Callers treat this as "no enrichment available", not as a fatal failure.
type NotFoundError struct {
	Code   string
	Branch string
}

func (e *NotFoundError) Error() string {
	if e.Branch != "" {
		return fmt.Sprintf("no mapping found for code %q in branch %q", e.Code, e.Branch)
	}
	return fmt.Sprintf("no mapping found for code %q", e.Code)
}

// TableLoadError represents a failure to load the reference table itself.
type TableLoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *TableLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load MOS table from %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load MOS table from %s: %s", e.Source, e.Message)
}

func (e *TableLoadError) Unwrap() error {
	return e.Cause
}
