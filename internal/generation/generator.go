// Package generation produces professional summaries and STAR-style
// achievement bullets from profile data. Two backends implement the same
// capability interface: a deterministic offline generator and a remote
// Gemini-backed generator.
package generation

import (
	"context"
	"strings"
	"time"

	"github.com/jonathan/veteran-resume-builder/internal/types"
)

// DefaultBulletCount is the number of bullets generated per experience entry.
const DefaultBulletCount = 4

// Generator is the capability interface over content-generation backends.
type Generator interface {
	// GenerateSummary produces a 2-3 sentence professional summary.
	GenerateSummary(ctx context.Context, profile *types.ResumeProfile) (string, error)
	// GenerateBullets produces ordered STAR-style achievement bullets for an
	// experience entry, using the profile for context.
	GenerateBullets(ctx context.Context, experience *types.WorkHistory, profile *types.ResumeProfile) ([]string, error)
}

// yearsOfService estimates total years served from work-history date ranges.
// Defaults to 4 when the profile has no dated experience. Open-ended entries
// count up to the latest date appearing anywhere in the profile, never the
// wall clock, so identical input always yields identical text.
func yearsOfService(profile *types.ResumeProfile) int {
	if len(profile.Experience) == 0 {
		return 4
	}

	reference := latestProfileDate(profile)

	var totalMonths int
	for _, exp := range profile.Experience {
		start, err := time.Parse("2006-01", exp.Start)
		if err != nil {
			continue
		}
		var end time.Time
		if exp.Current() || exp.End == "" {
			end = reference
			if end.Before(start) {
				end = start
			}
		} else {
			end, err = time.Parse("2006-01", exp.End)
			if err != nil {
				continue
			}
		}
		months := int(end.Sub(start).Hours() / (24 * 30))
		if months > 0 {
			totalMonths += months
		}
	}

	if totalMonths < 12 {
		return 1
	}
	return totalMonths / 12
}

// latestProfileDate returns the most recent parseable date among the
// profile's experience entries. An entry still marked current contributes
// its start date.
func latestProfileDate(profile *types.ResumeProfile) time.Time {
	var latest time.Time
	for _, exp := range profile.Experience {
		for _, raw := range []string{exp.Start, exp.End} {
			if t, err := time.Parse("2006-01", raw); err == nil && t.After(latest) {
				latest = t
			}
		}
	}
	return latest
}

// topSkills returns up to n skills from the profile: manually entered skills
// first, then MOS civilian skills, padded with generic strengths when the
// profile has none.
func topSkills(profile *types.ResumeProfile, n int) []string {
	seen := make(map[string]bool)
	var skills []string

	add := func(skill string) {
		key := strings.ToLower(strings.TrimSpace(skill))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		skills = append(skills, strings.TrimSpace(skill))
	}

	for _, s := range profile.Skills {
		add(s)
	}
	for _, mos := range profile.MOSEntries {
		for _, s := range mos.CivilianSkills {
			add(s)
		}
	}
	for _, s := range []string{"leadership", "operations management", "team coordination"} {
		add(s)
	}

	if len(skills) > n {
		skills = skills[:n]
	}
	return skills
}

// branchName returns the candidate's branch of service for narrative text,
// preferring the contact's branch over MOS entries.
func branchName(profile *types.ResumeProfile) string {
	if profile.Contact.Branch != "" {
		return profile.Contact.Branch
	}
	for _, mos := range profile.MOSEntries {
		if mos.Branch != "" {
			return mos.Branch
		}
	}
	return "military"
}
