package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject_Defaults(t *testing.T) {
	draft := ProjectDraft{
		Title:       "Community Art Center",
		FundingGoal: 50000,
		Creator:     "You",
		CreatorID:   "current-user",
	}

	project, err := NewProject(draft)
	require.NoError(t, err)

	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "Community Art Center", project.Title)
	assert.Equal(t, CategoryCommunity, project.Category, "blank category defaults to Community")
	assert.Equal(t, "Project description coming soon", project.Description)
	assert.Equal(t, int64(0), project.Raised)
	assert.Equal(t, 0, project.Donors)
	assert.Equal(t, StatusAwaitingVerification, project.Status)
	assert.Equal(t, 30, project.DaysLeft)
	assert.Len(t, project.Milestones, 3)

	// 50/30/20 split of the goal
	require.Len(t, project.Budget, 3)
	assert.Equal(t, int64(25000), project.Budget[0].Amount)
	assert.Equal(t, int64(15000), project.Budget[1].Amount)
	assert.Equal(t, int64(10000), project.Budget[2].Amount)
}

func TestNewProject_Validation(t *testing.T) {
	tests := []struct {
		name  string
		draft ProjectDraft
	}{
		{"empty title", ProjectDraft{Title: "", FundingGoal: 1000}},
		{"zero goal", ProjectDraft{Title: "A", FundingGoal: 0}},
		{"negative goal", ProjectDraft{Title: "A", FundingGoal: -50}},
		{"unknown category", ProjectDraft{Title: "A", FundingGoal: 1000, Category: "Crypto"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProject(tt.draft)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestNewProject_UniqueIDs(t *testing.T) {
	draft := ProjectDraft{Title: "A", FundingGoal: 100}

	first, err := NewProject(draft)
	require.NoError(t, err)
	second, err := NewProject(draft)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestNewProject_KeepsProvidedFields(t *testing.T) {
	draft := ProjectDraft{
		Title:       "Clean Water Initiative",
		Category:    CategoryHealthcare,
		Description: "Wells for rural communities",
		Image:       "/water.jpg",
		FundingGoal: 50000,
	}

	project, err := NewProject(draft)
	require.NoError(t, err)

	assert.Equal(t, CategoryHealthcare, project.Category)
	assert.Equal(t, "Wells for rural communities", project.Description)
	assert.Equal(t, "/water.jpg", project.Image)
}
