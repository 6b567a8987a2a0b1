package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	role := NewRole("UX Designer", 50)

	assert.NotEmpty(t, role.ID)
	assert.Equal(t, "UX Designer", role.Name)
	assert.Equal(t, 50.0, role.HourlyRate)
	assert.Zero(t, role.Hours)

	other := NewRole("Developer", 60)
	assert.NotEqual(t, role.ID, other.ID)
}

func TestDefaultRoles(t *testing.T) {
	roles := DefaultRoles()

	require.Len(t, roles, 3)
	assert.Equal(t, "UX Designer", roles[0].Name)
	assert.Equal(t, "Developer", roles[1].Name)
	assert.Equal(t, "Project Manager", roles[2].Name)

	for _, role := range roles {
		assert.NotEmpty(t, role.ID)
		assert.Greater(t, role.HourlyRate, 0.0)
		assert.Zero(t, role.Hours)
	}
}

func TestProjectPlanTotals(t *testing.T) {
	plan := &ProjectPlan{
		ProjectName: "Internal Portal",
		Roles: []Role{
			{ID: "1", Name: "UX Designer", HourlyRate: 50, Hours: 10},
			{ID: "2", Name: "Developer", HourlyRate: 60, Hours: 20},
			{ID: "3", Name: "Project Manager", HourlyRate: 45, Hours: 0},
		},
	}

	assert.Equal(t, 1700.0, plan.TotalCost())
	assert.Equal(t, 30, plan.TotalHours())
}

func TestProjectPlanTotalsEmpty(t *testing.T) {
	plan := &ProjectPlan{}

	assert.Zero(t, plan.TotalCost())
	assert.Zero(t, plan.TotalHours())
}

func TestApplyRecommendation(t *testing.T) {
	plan := &ProjectPlan{
		Roles: []Role{
			{ID: "1", Name: "UX Designer", HourlyRate: 50},
			{ID: "2", Name: "Developer", HourlyRate: 60},
			{ID: "3", Name: "Project Manager", HourlyRate: 45},
		},
	}

	plan.ApplyRecommendation(&Recommendation{EstimatedHours: 200})

	require.Len(t, plan.Roles, 3)
	assert.Equal(t, 67, plan.Roles[0].Hours)
	assert.Equal(t, 67, plan.Roles[1].Hours)
	assert.Equal(t, 66, plan.Roles[2].Hours)
	assert.Equal(t, 200, plan.EstimatedHours)
	assert.Equal(t, 200, plan.TotalHours())
}

func TestApplyRecommendationNoRoles(t *testing.T) {
	plan := &ProjectPlan{}
	plan.ApplyRecommendation(&Recommendation{EstimatedHours: 120})

	assert.Equal(t, 120, plan.EstimatedHours)
	assert.Empty(t, plan.Roles)
}

func TestBreakdownCategories(t *testing.T) {
	categories := BreakdownCategories()

	require.Len(t, categories, 7)
	assert.Equal(t, CategoryDesign, categories[0])
	assert.Equal(t, CategoryDocumentation, categories[6])

	seen := make(map[string]bool)
	for _, category := range categories {
		assert.False(t, seen[category], "duplicate category %s", category)
		seen[category] = true
	}
}
