package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/veteran-resume-builder/internal/types"
)

// TemplateData is the flattened, display-ready view handed to templates.
// All conditional logic lives in buildTemplateData: sections with no content
// never appear in Sections, so templates only lay out what they receive.
type TemplateData struct {
	Name        string
	ContactLine string
	BranchTitle string
	Sections    []Section
}

// Section is one titled block of the rendered document.
type Section struct {
	Heading string
	Entries []Entry
}

// Entry is a single item within a section. Title, Subtitle and Meta form the
// entry header; Lines are rendered beneath it as bullets or detail lines.
type Entry struct {
	Title    string
	Subtitle string
	Meta     string
	Lines    []string
}

// buildTemplateData flattens a profile and its generated content into
// display-ready sections. Empty optional fields are dropped here so the
// templates stay free of per-field conditionals.
func buildTemplateData(profile *types.ResumeProfile, generated *types.GeneratedContent) *TemplateData {
	data := &TemplateData{
		Name:        profile.Contact.FullName,
		ContactLine: buildContactLine(&profile.Contact),
		BranchTitle: buildBranchTitle(profile),
	}

	if summary := resolveSummary(profile, generated); summary != "" {
		data.Sections = append(data.Sections, Section{
			Heading: "PROFESSIONAL SUMMARY",
			Entries: []Entry{{Lines: []string{summary}}},
		})
	}

	if len(profile.Experience) > 0 {
		section := Section{Heading: "PROFESSIONAL EXPERIENCE"}
		for i := range profile.Experience {
			exp := &profile.Experience[i]
			section.Entries = append(section.Entries, Entry{
				Title:    exp.Role,
				Subtitle: joinNonEmpty(" - ", exp.Organization, exp.Location),
				Meta:     exp.DateRange(),
				Lines:    resolveBullets(exp, generated, i),
			})
		}
		data.Sections = append(data.Sections, section)
	}

	if skills := collectSkills(profile); len(skills) > 0 {
		data.Sections = append(data.Sections, Section{
			Heading: "SKILLS",
			Entries: []Entry{{Lines: []string{strings.Join(skills, ", ")}}},
		})
	}

	if len(profile.Education) > 0 {
		section := Section{Heading: "EDUCATION"}
		for i := range profile.Education {
			edu := &profile.Education[i]
			entry := Entry{
				Title:    edu.Program,
				Subtitle: edu.Institution,
				Meta:     edu.GraduationDisplay(),
			}
			if edu.Overview != "" {
				entry.Lines = append(entry.Lines, edu.Overview)
			}
			if edu.GPA > 0 {
				entry.Lines = append(entry.Lines, fmt.Sprintf("GPA: %.2f", edu.GPA))
			}
			if len(edu.Honors) > 0 {
				entry.Lines = append(entry.Lines, "Honors: "+strings.Join(edu.Honors, ", "))
			}
			section.Entries = append(section.Entries, entry)
		}
		data.Sections = append(data.Sections, section)
	}

	if len(profile.Certifications) > 0 {
		section := Section{Heading: "CERTIFICATIONS"}
		for _, cert := range profile.Certifications {
			meta := ""
			if cert.Year > 0 {
				meta = fmt.Sprintf("%d", cert.Year)
			}
			section.Entries = append(section.Entries, Entry{
				Title:    cert.Name,
				Subtitle: cert.Issuer,
				Meta:     meta,
			})
		}
		data.Sections = append(data.Sections, section)
	}

	if info := profile.AdditionalInfo; info != nil {
		if len(info.Awards) > 0 {
			data.Sections = append(data.Sections, Section{
				Heading: "AWARDS & HONORS",
				Entries: []Entry{{Lines: info.Awards}},
			})
		}
		if len(info.Volunteer) > 0 {
			section := Section{Heading: "VOLUNTEER EXPERIENCE"}
			for _, vol := range info.Volunteer {
				entry := Entry{
					Title:    vol.Role,
					Subtitle: vol.Organization,
					Meta:     vol.DateRange,
				}
				if vol.Description != "" {
					entry.Lines = append(entry.Lines, vol.Description)
				}
				section.Entries = append(section.Entries, entry)
			}
			data.Sections = append(data.Sections, section)
		}
		if len(info.VeteranExperience) > 0 {
			data.Sections = append(data.Sections, Section{
				Heading: "VETERAN EXPERIENCE",
				Entries: []Entry{{Lines: info.VeteranExperience}},
			})
		}
		if len(info.Languages) > 0 {
			data.Sections = append(data.Sections, Section{
				Heading: "LANGUAGES",
				Entries: []Entry{{Lines: []string{strings.Join(info.Languages, ", ")}}},
			})
		}
	}

	return data
}

// buildContactLine joins the available contact fields with " | ".
func buildContactLine(c *types.Contact) string {
	parts := []string{c.Email, c.Phone, c.Location(), c.LinkedIn}
	if c.SecurityClearance != "" && c.SecurityClearance != "None" {
		parts = append(parts, "Clearance: "+c.SecurityClearance)
	}
	return joinNonEmpty(" | ", parts...)
}

// buildBranchTitle formats the service line shown under the candidate name,
// e.g. "UNITED STATES ARMY - INFORMATION TECHNOLOGY SPECIALIST". It returns
// "" when the profile carries no military background.
func buildBranchTitle(profile *types.ResumeProfile) string {
	if len(profile.MOSEntries) == 0 {
		return ""
	}

	mos := profile.MOSEntries[0]
	branch := mos.Branch
	if branch == "" {
		branch = profile.Contact.Branch
	}

	var parts []string
	if branch != "" {
		parts = append(parts, "UNITED STATES "+strings.ToUpper(branch))
	}
	if mos.Title != "" {
		parts = append(parts, strings.ToUpper(mos.Title))
	} else {
		parts = append(parts, mos.Code)
	}
	return strings.Join(parts, " - ")
}

// resolveSummary prefers generated content, then the profile's own summary.
func resolveSummary(profile *types.ResumeProfile, generated *types.GeneratedContent) string {
	if generated != nil && generated.Summary != "" {
		return generated.Summary
	}
	return profile.Summary
}

// resolveBullets prefers generated bullets for the experience at index i,
// falling back to the bullets the profile supplied.
func resolveBullets(exp *types.WorkHistory, generated *types.GeneratedContent, i int) []string {
	if generated != nil {
		if bullets := generated.BulletsFor(i); len(bullets) > 0 {
			return bullets
		}
	}
	return exp.Bullets
}

// collectSkills merges civilian skill translations with the profile's own
// skills, translated skills first, deduplicated case-insensitively.
func collectSkills(profile *types.ResumeProfile) []string {
	var skills []string
	seen := make(map[string]bool)

	add := func(s string) {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		skills = append(skills, strings.TrimSpace(s))
	}

	for _, mos := range profile.MOSEntries {
		for _, s := range mos.CivilianSkills {
			add(s)
		}
	}
	for _, s := range profile.Skills {
		add(s)
	}
	return skills
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
