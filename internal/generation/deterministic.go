package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/veteran-resume-builder/internal/types"
)

// Deterministic is the offline generation backend. It fills fixed template
// strings from profile fields, makes no network calls, and produces
// byte-identical output for identical input.
type Deterministic struct{}

// NewDeterministic creates the offline backend.
func NewDeterministic() *Deterministic {
	return &Deterministic{}
}

// GenerateSummary builds a professional summary from the target role, years
// of service, branch, and top skills.
func (d *Deterministic) GenerateSummary(_ context.Context, profile *types.ResumeProfile) (string, error) {
	skills := topSkills(profile, 3)
	years := yearsOfService(profile)
	branch := branchName(profile)

	summary := fmt.Sprintf(
		"Results-driven %s with %d+ years of %s experience transitioning to the civilian sector. "+
			"Proven track record in %s. "+
			"Seeking to leverage leadership and technical expertise as a %s.",
		profile.TargetRole, years, branch, joinSkills(skills), profile.TargetRole)

	return summary, nil
}

// GenerateBullets builds achievement bullets from the experience entry and
// profile skills. Each bullet starts with an action verb and stays a single
// sentence.
func (d *Deterministic) GenerateBullets(_ context.Context, experience *types.WorkHistory, profile *types.ResumeProfile) ([]string, error) {
	activity := inferActivity(experience.Role)
	skills := topSkills(profile, 2)

	skill := "operations"
	if len(skills) > 0 {
		skill = skills[0]
	}

	bullets := []string{
		fmt.Sprintf("Led %s for %s, coordinating team tasking and meeting all operational deadlines", activity, experience.Organization),
		"Managed assigned equipment and supplies, maintaining full accountability with zero loss incidents",
		fmt.Sprintf("Trained and mentored junior personnel in %s, raising team proficiency and mission readiness", strings.ToLower(skill)),
		fmt.Sprintf("Streamlined %s procedures, reducing turnaround time and improving reporting accuracy", activity),
	}

	return bullets[:DefaultBulletCount], nil
}

// inferActivity maps a role title onto the operational activity used in
// bullet text.
func inferActivity(role string) string {
	lower := strings.ToLower(role)
	switch {
	case strings.Contains(lower, "engineer"):
		return "construction and maintenance operations"
	case strings.Contains(lower, "medic"), strings.Contains(lower, "medical"), strings.Contains(lower, "corpsman"):
		return "emergency medical response"
	case strings.Contains(lower, "intelligence"), strings.Contains(lower, "analyst"):
		return "intelligence gathering and analysis"
	case strings.Contains(lower, "supply"), strings.Contains(lower, "logistics"):
		return "supply chain operations"
	case strings.Contains(lower, "technology"), strings.Contains(lower, "systems"), strings.Contains(lower, "network"):
		return "network and systems operations"
	default:
		return "tactical operations"
	}
}

func joinSkills(skills []string) string {
	switch len(skills) {
	case 0:
		return "military operations"
	case 1:
		return skills[0]
	case 2:
		return skills[0] + " and " + skills[1]
	default:
		return strings.Join(skills[:len(skills)-1], ", ") + ", and " + skills[len(skills)-1]
	}
}
