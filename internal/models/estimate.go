package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Names of the fixed cost breakdown categories
const (
	CategoryDesign        = "UX/UI Design"
	CategoryFrontend      = "Frontend Development"
	CategoryBackend       = "Backend Development"
	CategoryIntegrations  = "Integrations"
	CategoryTesting       = "Testing & QA"
	CategoryDevOps        = "DevOps & Deployment"
	CategoryDocumentation = "Documentation"
)

// BreakdownCategories returns the cost categories in display order.
func BreakdownCategories() []string {
	return []string{
		CategoryDesign,
		CategoryFrontend,
		CategoryBackend,
		CategoryIntegrations,
		CategoryTesting,
		CategoryDevOps,
		CategoryDocumentation,
	}
}

// EstimationResult is the output of the hour/cost calculator
type EstimationResult struct {
	TotalHours    int            `json:"total_hours"`
	Breakdown     map[string]int `json:"breakdown"`
	EstimatedCost int            `json:"estimated_cost"`
	TimelineWeeks int            `json:"timeline_weeks"`
}

// Role is a billable team member on a project plan
type Role struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourly_rate"`
	Hours      int     `json:"hours"`
}

// NewRole creates a role with a generated id and no hours assigned
func NewRole(name string, hourlyRate float64) Role {
	return Role{
		ID:         uuid.New().String(),
		Name:       name,
		HourlyRate: hourlyRate,
	}
}

// DefaultRoles returns the starting role lineup for a new project plan
func DefaultRoles() []Role {
	return []Role{
		NewRole("UX Designer", 50),
		NewRole("Developer", 60),
		NewRole("Project Manager", 45),
	}
}

// ProjectPlan is a manually priced project: client parameters plus the
// roles that will staff it
type ProjectPlan struct {
	ProjectName    string   `json:"project_name"`
	ClientType     string   `json:"client_type"`
	Services       []string `json:"services"`
	EstimatedHours int      `json:"estimated_hours"`
	StartDate      string   `json:"start_date,omitempty"`
	Deadline       string   `json:"deadline,omitempty"`
	Roles          []Role   `json:"roles"`
}

// TotalCost sums hourly rate times hours over all roles
func (p *ProjectPlan) TotalCost() float64 {
	var total float64
	for _, role := range p.Roles {
		total += role.HourlyRate * float64(role.Hours)
	}
	return total
}

// TotalHours sums the hours assigned to all roles
func (p *ProjectPlan) TotalHours() int {
	total := 0
	for _, role := range p.Roles {
		total += role.Hours
	}
	return total
}

// ApplyRecommendation adopts a recommendation's hour estimate, spreading
// the hours evenly over the plan's roles. The last role takes the
// remainder so the role hours always sum to the estimate.
func (p *ProjectPlan) ApplyRecommendation(rec *Recommendation) {
	if len(p.Roles) == 0 {
		p.EstimatedHours = rec.EstimatedHours
		return
	}

	hoursPerRole := int(math.Round(float64(rec.EstimatedHours) / float64(len(p.Roles))))
	for i := range p.Roles {
		if i == len(p.Roles)-1 {
			p.Roles[i].Hours = rec.EstimatedHours - hoursPerRole*(len(p.Roles)-1)
		} else {
			p.Roles[i].Hours = hoursPerRole
		}
	}

	p.EstimatedHours = rec.EstimatedHours
}

// EstimateReport is the saved output of an estimation run
type EstimateReport struct {
	ProjectName    string           `json:"project_name"`
	Result         EstimationResult `json:"result"`
	Recommendation *Recommendation  `json:"recommendation,omitempty"`
	GeneratedAt    time.Time        `json:"generated_at"`
}
