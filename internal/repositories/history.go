package repositories

import (
	"proposalsmith/internal/models"
)

// historicalProjects is the static corpus of delivered projects used as
// the comparison base for recommendations and statistics.
var historicalProjects = []models.HistoricalProject{
	{
		ID:          "1",
		ProjectName: "E-commerce Redesign",
		ClientType:  models.ClientStartup,
		Services:    []string{"UX/UI Design", "Frontend Development", "Backend Development"},
		TotalHours:  320,
		TotalCost:   25000,
		SuccessRate: 95,
		Template:    models.TemplateStartup,
		Duration:    8,
		TeamSize:    3,
		Complexity:  models.ComplexityMedium,
		Outcome:     models.OutcomeSuccess,
	},
	{
		ID:          "2",
		ProjectName: "Mobile App Development",
		ClientType:  models.ClientMidSize,
		Services:    []string{"UX/UI Design", "Frontend Development", "QA Testing"},
		TotalHours:  480,
		TotalCost:   35000,
		SuccessRate: 88,
		Template:    models.TemplateDetailed,
		Duration:    12,
		TeamSize:    4,
		Complexity:  models.ComplexityHigh,
		Outcome:     models.OutcomeSuccess,
	},
	{
		ID:          "3",
		ProjectName: "Corporate Website",
		ClientType:  models.ClientCorporation,
		Services:    []string{"UX/UI Design", "Frontend Development"},
		TotalHours:  160,
		TotalCost:   12000,
		SuccessRate: 92,
		Template:    models.TemplateBasic,
		Duration:    4,
		TeamSize:    2,
		Complexity:  models.ComplexityLow,
		Outcome:     models.OutcomeSuccess,
	},
	{
		ID:          "4",
		ProjectName: "ERP System",
		ClientType:  models.ClientCorporation,
		Services:    []string{"Backend Development", "Full Stack Development", "DevOps"},
		TotalHours:  800,
		TotalCost:   60000,
		SuccessRate: 75,
		Template:    models.TemplateDetailed,
		Duration:    20,
		TeamSize:    5,
		Complexity:  models.ComplexityHigh,
		Outcome:     models.OutcomePartial,
	},
	{
		ID:          "5",
		ProjectName: "Startup MVP",
		ClientType:  models.ClientStartup,
		Services:    []string{"UX/UI Design", "Full Stack Development"},
		TotalHours:  240,
		TotalCost:   18000,
		SuccessRate: 98,
		Template:    models.TemplateStartup,
		Duration:    6,
		TeamSize:    2,
		Complexity:  models.ComplexityMedium,
		Outcome:     models.OutcomeSuccess,
	},
	{
		ID:          "6",
		ProjectName: "Government Portal",
		ClientType:  models.ClientGovernment,
		Services:    []string{"Backend Development", "Data Analysis", "QA Testing"},
		TotalHours:  600,
		TotalCost:   45000,
		SuccessRate: 82,
		Template:    models.TemplateDetailed,
		Duration:    15,
		TeamSize:    4,
		Complexity:  models.ComplexityHigh,
		Outcome:     models.OutcomeSuccess,
	},
	{
		ID:          "7",
		ProjectName: "Non-profit Website",
		ClientType:  models.ClientNonProfit,
		Services:    []string{"UX/UI Design", "Frontend Development"},
		TotalHours:  120,
		TotalCost:   8000,
		SuccessRate: 90,
		Template:    models.TemplateBasic,
		Duration:    3,
		TeamSize:    2,
		Complexity:  models.ComplexityLow,
		Outcome:     models.OutcomeSuccess,
	},
	{
		ID:          "8",
		ProjectName: "SaaS Platform",
		ClientType:  models.ClientMidSize,
		Services:    []string{"Full Stack Development", "DevOps", "Data Analysis"},
		TotalHours:  720,
		TotalCost:   55000,
		SuccessRate: 85,
		Template:    models.TemplateDetailed,
		Duration:    18,
		TeamSize:    4,
		Complexity:  models.ComplexityHigh,
		Outcome:     models.OutcomeSuccess,
	},
}

// HistoryRepository serves the read-only corpus of historical projects
type HistoryRepository struct {
	projects []models.HistoricalProject
}

// NewHistoryRepository creates a repository over the built-in corpus
func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{projects: historicalProjects}
}

// NewHistoryRepositoryWith creates a repository over a caller-supplied
// corpus. Used by tests to substitute fixtures.
func NewHistoryRepositoryWith(projects []models.HistoricalProject) *HistoryRepository {
	return &HistoryRepository{projects: projects}
}

// All returns every project in corpus order
func (r *HistoryRepository) All() []models.HistoricalProject {
	out := make([]models.HistoricalProject, len(r.projects))
	copy(out, r.projects)
	return out
}

// ByClientType returns the projects delivered for the given client type,
// in corpus order
func (r *HistoryRepository) ByClientType(clientType string) []models.HistoricalProject {
	var matches []models.HistoricalProject
	for _, project := range r.projects {
		if project.ClientType == clientType {
			matches = append(matches, project)
		}
	}
	return matches
}

// Similar returns the projects matching either the client type or at
// least one of the requested services, in corpus order
func (r *HistoryRepository) Similar(clientType string, services []string) []models.HistoricalProject {
	var matches []models.HistoricalProject
	for _, project := range r.projects {
		if project.ClientType == clientType || overlaps(project.Services, services) {
			matches = append(matches, project)
		}
	}
	return matches
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
