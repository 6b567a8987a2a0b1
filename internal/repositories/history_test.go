package repositories

import (
	"testing"

	"proposalsmith/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpusInvariants(t *testing.T) {
	projects := NewHistoryRepository().All()
	require.Len(t, projects, 8)

	seen := make(map[string]bool)
	for _, project := range projects {
		assert.False(t, seen[project.ID], "duplicate project id %s", project.ID)
		seen[project.ID] = true

		assert.Greater(t, project.TotalHours, 0, "project %s", project.ID)
		assert.Greater(t, project.TotalCost, 0.0, "project %s", project.ID)
		assert.GreaterOrEqual(t, project.SuccessRate, 0, "project %s", project.ID)
		assert.LessOrEqual(t, project.SuccessRate, 100, "project %s", project.ID)
		assert.Greater(t, project.Duration, 0, "project %s", project.ID)
		assert.Greater(t, project.TeamSize, 0, "project %s", project.ID)
		assert.NotEmpty(t, project.Services, "project %s", project.ID)
		assert.NotEmpty(t, project.Template, "project %s", project.ID)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	repo := NewHistoryRepository()

	projects := repo.All()
	projects[0].ProjectName = "mutated"
	projects[0].TotalCost = -1

	fresh := repo.All()
	assert.Equal(t, "E-commerce Redesign", fresh[0].ProjectName)
	assert.Equal(t, 25000.0, fresh[0].TotalCost)
}

func TestByClientType(t *testing.T) {
	repo := NewHistoryRepository()

	startups := repo.ByClientType(models.ClientStartup)
	require.Len(t, startups, 2)
	assert.Equal(t, "E-commerce Redesign", startups[0].ProjectName)
	assert.Equal(t, "Startup MVP", startups[1].ProjectName)

	assert.Empty(t, repo.ByClientType("Agency"))
}

func TestSimilar(t *testing.T) {
	repo := NewHistoryRepositoryWith([]models.HistoricalProject{
		{ID: "1", ClientType: models.ClientStartup, Services: []string{"UX/UI Design"}},
		{ID: "2", ClientType: models.ClientCorporation, Services: []string{"DevOps"}},
		{ID: "3", ClientType: models.ClientGovernment, Services: []string{"UX/UI Design", "QA Testing"}},
	})

	tests := []struct {
		name       string
		clientType string
		services   []string
		wantIDs    []string
	}{
		{
			name:       "client type match only",
			clientType: models.ClientCorporation,
			wantIDs:    []string{"2"},
		},
		{
			name:     "service overlap only",
			services: []string{"UX/UI Design"},
			wantIDs:  []string{"1", "3"},
		},
		{
			name:       "client type or service overlap",
			clientType: models.ClientCorporation,
			services:   []string{"QA Testing"},
			wantIDs:    []string{"2", "3"},
		},
		{
			name:       "no match",
			clientType: "Agency",
			services:   []string{"Consulting"},
			wantIDs:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := repo.Similar(tt.clientType, tt.services)

			var ids []string
			for _, project := range matches {
				ids = append(ids, project.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSimilarPreservesCorpusOrder(t *testing.T) {
	repo := NewHistoryRepository()

	matches := repo.Similar(models.ClientStartup, []string{"UX/UI Design"})
	require.NotEmpty(t, matches)

	previous := -1
	for _, match := range matches {
		index := corpusIndex(t, repo, match.ID)
		assert.Greater(t, index, previous)
		previous = index
	}
}

func corpusIndex(t *testing.T, repo *HistoryRepository, id string) int {
	t.Helper()
	for i, project := range repo.All() {
		if project.ID == id {
			return i
		}
	}
	t.Fatalf("project %s not in corpus", id)
	return -1
}
