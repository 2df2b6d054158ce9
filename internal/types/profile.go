// Package types provides type definitions for structured data used throughout the veteran-resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Branch names accepted for military service entries.
var validBranches = map[string]bool{
	"Army":        true,
	"Navy":        true,
	"Marines":     true,
	"Air Force":   true,
	"Space Force": true,
	"Coast Guard": true,
}

// Contact represents the candidate's contact information.
type Contact struct {
	FullName          string `json:"full_name" validate:"required,min=2,max=100"`
	Email             string `json:"email,omitempty" validate:"omitempty,email"`
	Phone             string `json:"phone,omitempty"`
	City              string `json:"city,omitempty" validate:"max=100"`
	State             string `json:"state,omitempty" validate:"max=50"`
	LinkedIn          string `json:"linkedin,omitempty"`
	SecurityClearance string `json:"security_clearance,omitempty" validate:"omitempty,oneof=None 'Public Trust' Secret TS 'TS/SCI'"`
	Branch            string `json:"branch,omitempty"`
}

// Location formats city and state for display. Empty parts are omitted.
func (c *Contact) Location() string {
	switch {
	case c.City != "" && c.State != "":
		return c.City + ", " + c.State
	case c.City != "":
		return c.City
	default:
		return c.State
	}
}

// MOSEntry represents a military occupational specialty held by the candidate.
// Title and CivilianSkills are filled by lookup enrichment when empty.
type MOSEntry struct {
	Code           string   `json:"code" validate:"required,min=2,max=10"`
	Branch         string   `json:"branch,omitempty"`
	Title          string   `json:"title,omitempty"`
	CivilianSkills []string `json:"civilian_skills,omitempty"`
}

// WorkHistory represents a single work experience entry.
// Start and End use YYYY-MM format; End may be "present" for a current role.
type WorkHistory struct {
	Organization string   `json:"organization" validate:"required,min=2,max=200"`
	Role         string   `json:"role" validate:"required,min=2,max=200"`
	Location     string   `json:"location,omitempty" validate:"max=100"`
	Start        string   `json:"start" validate:"required"`
	End          string   `json:"end,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
	ScopeMetrics string   `json:"scope_metrics,omitempty"`
}

// Current reports whether this entry is an ongoing role.
func (w *WorkHistory) Current() bool {
	return strings.EqualFold(w.End, "present")
}

// DateRange formats the entry dates for display, e.g. "January 2020 - Present".
func (w *WorkHistory) DateRange() string {
	start := formatMonth(w.Start)
	if w.Current() || w.End == "" {
		return start + " - Present"
	}
	return start + " - " + formatMonth(w.End)
}

// formatMonth converts YYYY-MM to "January 2006", leaving unparseable input as-is.
func formatMonth(s string) string {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return s
	}
	return t.Format("January 2006")
}

// Education represents a single education entry.
type Education struct {
	Institution    string   `json:"institution" validate:"required,min=2,max=200"`
	Program        string   `json:"program" validate:"required,min=2,max=200"`
	Overview       string   `json:"overview,omitempty" validate:"max=400"`
	GraduationYear int      `json:"graduation_year,omitempty" validate:"omitempty,min=1950,max=2050"`
	InProgress     bool     `json:"in_progress,omitempty"`
	GPA            float64  `json:"gpa,omitempty" validate:"omitempty,min=0,max=4"`
	Honors         []string `json:"honors,omitempty"`
}

// GraduationDisplay formats the graduation info for display.
func (e *Education) GraduationDisplay() string {
	if e.InProgress {
		return "In Progress"
	}
	if e.GraduationYear > 0 {
		return fmt.Sprintf("%d", e.GraduationYear)
	}
	return ""
}

// Certification represents a professional certification.
type Certification struct {
	Name         string `json:"name" validate:"required,min=2,max=200"`
	Issuer       string `json:"issuer" validate:"required,min=2,max=200"`
	Year         int    `json:"year,omitempty" validate:"omitempty,min=1950,max=2050"`
	CredentialID string `json:"credential_id,omitempty" validate:"max=100"`
}

// VolunteerEntry represents a volunteer experience entry.
type VolunteerEntry struct {
	Organization string `json:"organization" validate:"required,min=2,max=200"`
	Role         string `json:"role" validate:"required,min=2,max=200"`
	Description  string `json:"description,omitempty" validate:"max=500"`
	DateRange    string `json:"date_range,omitempty" validate:"max=50"`
}

// AdditionalInfo holds optional free-form resume sections.
type AdditionalInfo struct {
	Awards            []string         `json:"awards,omitempty"`
	Volunteer         []VolunteerEntry `json:"volunteer,omitempty"`
	VeteranExperience []string         `json:"veteran_experience,omitempty"`
	Languages         []string         `json:"languages,omitempty"`
}

// ResumeProfile is the root aggregate for one render request.
type ResumeProfile struct {
	Contact        Contact         `json:"contact"`
	TargetRole     string          `json:"target_role" validate:"required,min=2,max=200"`
	Summary        string          `json:"summary,omitempty" validate:"max=1000"`
	MOSEntries     []MOSEntry      `json:"mos_entries,omitempty"`
	Experience     []WorkHistory   `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         []string        `json:"skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	AdditionalInfo *AdditionalInfo `json:"additional_info,omitempty"`
}

var (
	nonDigitRe = regexp.MustCompile(`\D`)
	monthRe    = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

// NormalizePhone extracts digits from a US phone number and formats it as
// (XXX) XXX-XXXX. An optional leading 1 country code is stripped.
func NormalizePhone(raw string) (string, error) {
	digits := nonDigitRe.ReplaceAllString(strings.TrimSpace(raw), "")
	if digits == "" {
		return "", &ValidationError{Field: "contact.phone", Message: "phone number must contain digits"}
	}
	if len(digits) == 11 && strings.HasPrefix(digits, "1") {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return "", &ValidationError{
			Field:   "contact.phone",
			Message: fmt.Sprintf("phone number must be exactly 10 digits (US format), got %d", len(digits)),
		}
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:]), nil
}

// Validate checks the profile against all structural and semantic rules.
// It normalizes the phone number and LinkedIn URL in place, so a profile
// that passes validation is also canonical.
func (p *ResumeProfile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return &ValidationError{Message: err.Error()}
	}

	// A reachable contact method is required: email or phone.
	if p.Contact.Email == "" && p.Contact.Phone == "" {
		return &ValidationError{Field: "contact", Message: "either email or phone is required"}
	}

	if p.Contact.Phone != "" {
		normalized, err := NormalizePhone(p.Contact.Phone)
		if err != nil {
			return err
		}
		p.Contact.Phone = normalized
	}

	if p.Contact.LinkedIn != "" {
		url := p.Contact.LinkedIn
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			url = "https://" + url
		}
		if !strings.Contains(url, "linkedin.com") {
			return &ValidationError{Field: "contact.linkedin", Message: "LinkedIn URL must contain 'linkedin.com'"}
		}
		p.Contact.LinkedIn = url
	}

	if p.Contact.Branch != "" && !validBranches[p.Contact.Branch] {
		return &ValidationError{
			Field:   "contact.branch",
			Message: fmt.Sprintf("unknown branch %q", p.Contact.Branch),
		}
	}

	for i, mos := range p.MOSEntries {
		if mos.Branch != "" && !validBranches[mos.Branch] {
			return &ValidationError{
				Field:   fmt.Sprintf("mos_entries[%d].branch", i),
				Message: fmt.Sprintf("unknown branch %q", mos.Branch),
			}
		}
	}

	for i, exp := range p.Experience {
		if !monthRe.MatchString(exp.Start) {
			return &ValidationError{
				Field:   fmt.Sprintf("experience[%d].start", i),
				Message: fmt.Sprintf("start date %q must use YYYY-MM format", exp.Start),
			}
		}
		if exp.End != "" && !exp.Current() {
			if !monthRe.MatchString(exp.End) {
				return &ValidationError{
					Field:   fmt.Sprintf("experience[%d].end", i),
					Message: fmt.Sprintf("end date %q must use YYYY-MM format or \"present\"", exp.End),
				}
			}
			if exp.End < exp.Start {
				return &ValidationError{
					Field:   fmt.Sprintf("experience[%d].end", i),
					Message: "end date must be after start date",
				}
			}
		}
	}

	return nil
}
