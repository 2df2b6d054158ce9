package generation

import (
	"context"
	"strings"
	"testing"

	"github.com/jonathan/veteran-resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *types.ResumeProfile {
	return &types.ResumeProfile{
		Contact: types.Contact{
			FullName: "Jane Doe",
			Email:    "j@example.com",
			Branch:   "Army",
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
				Organization: "US Army",
				Role:         "Information Technology Specialist",
				Start:        "2016-05",
				End:          "2022-05",
			},
		},
	}
}

func TestDeterministic_SummaryMentionsTargetRole(t *testing.T) {
	gen := NewDeterministic()

	summary, err := gen.GenerateSummary(context.Background(), sampleProfile())
	require.NoError(t, err)
	assert.NotEmpty(t, summary)
	assert.Contains(t, summary, "Systems Administrator")
	assert.Contains(t, summary, "Army")
}

func TestDeterministic_SummaryIsReproducible(t *testing.T) {
	gen := NewDeterministic()
	profile := sampleProfile()

	first, err := gen.GenerateSummary(context.Background(), profile)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := gen.GenerateSummary(context.Background(), sampleProfile())
		require.NoError(t, err)
		assert.Equal(t, first, again, "identical input must yield byte-identical output")
	}
}

func TestDeterministic_BulletsShape(t *testing.T) {
	gen := NewDeterministic()
	profile := sampleProfile()

	bullets, err := gen.GenerateBullets(context.Background(), &profile.Experience[0], profile)
	require.NoError(t, err)
	require.Len(t, bullets, DefaultBulletCount)

	for _, bullet := range bullets {
		assert.NotEmpty(t, bullet)
		// Single sentence, starting with an action verb (uppercase letter).
		assert.False(t, strings.Contains(strings.TrimSuffix(bullet, "."), ". "), "bullet %q should be one sentence", bullet)
		first := bullet[0]
		assert.True(t, first >= 'A' && first <= 'Z', "bullet %q should start with an action verb", bullet)
	}
}

func TestDeterministic_BulletsAreReproducible(t *testing.T) {
	gen := NewDeterministic()
	profile := sampleProfile()

	first, err := gen.GenerateBullets(context.Background(), &profile.Experience[0], profile)
	require.NoError(t, err)

	again, err := gen.GenerateBullets(context.Background(), &profile.Experience[0], profile)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestInferActivity(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"Combat Engineer", "construction and maintenance operations"},
		{"Combat Medic Specialist", "emergency medical response"},
		{"Intelligence Analyst", "intelligence gathering and analysis"},
		{"Unit Supply Specialist", "supply chain operations"},
		{"Information Technology Specialist", "network and systems operations"},
		{"Rifleman", "tactical operations"},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, inferActivity(tt.role))
		})
	}
}

func TestYearsOfService(t *testing.T) {
	profile := sampleProfile()
	// 2016-05 to 2022-05 is six years.
	assert.Equal(t, 6, yearsOfService(profile))

	empty := &types.ResumeProfile{}
	assert.Equal(t, 4, yearsOfService(empty), "no experience defaults to 4")

	short := &types.ResumeProfile{
		Experience: []types.WorkHistory{{Start: "2023-01", End: "2023-06"}},
	}
	assert.Equal(t, 1, yearsOfService(short), "short service rounds up to 1")
}

func TestYearsOfService_CurrentRoleUsesProfileDates(t *testing.T) {
	// A current role counts up to the latest date in the profile itself,
	// so the result never moves with the wall clock.
	profile := &types.ResumeProfile{
		Experience: []types.WorkHistory{
			{Start: "2016-05", End: "2022-05"},
			{Start: "2022-05", End: "present"},
		},
	}
	assert.Equal(t, 6, yearsOfService(profile))

	onlyCurrent := &types.ResumeProfile{
		Experience: []types.WorkHistory{{Start: "2020-01", End: "present"}},
	}
	assert.Equal(t, 1, yearsOfService(onlyCurrent), "a lone open-ended entry contributes no elapsed time")
}

func TestDeterministic_SummaryStableWithCurrentRole(t *testing.T) {
	gen := NewDeterministic()
	profile := sampleProfile()
	profile.Experience = append(profile.Experience, types.WorkHistory{
		Organization: "Acme Corp",
		Role:         "Network Technician",
		Start:        "2022-05",
		End:          "present",
	})

	first, err := gen.GenerateSummary(context.Background(), profile)
	require.NoError(t, err)
	assert.Contains(t, first, "6+ years")

	again, err := gen.GenerateSummary(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestTopSkills(t *testing.T) {
	profile := sampleProfile()
	profile.Skills = []string{"Project management", "Network administration"}

	skills := topSkills(profile, 3)
	require.Len(t, skills, 3)
	assert.Equal(t, "Project management", skills[0])
	// Duplicate of a manual skill from MOS enrichment is not repeated.
	assert.Equal(t, "Network administration", skills[1])
	assert.Equal(t, "Systems troubleshooting", skills[2])
}

func TestTopSkills_DefaultsWhenEmpty(t *testing.T) {
	skills := topSkills(&types.ResumeProfile{}, 3)
	assert.Equal(t, []string{"leadership", "operations management", "team coordination"}, skills)
}
