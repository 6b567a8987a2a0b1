package services

import (
	"math"

	"proposalsmith/internal/catalog"
	"proposalsmith/internal/models"
)

// Estimation constants
const (
	// HourlyRate is the blended rate in dollars per hour
	HourlyRate = 60

	// WeeklyCapacity is the assumed delivery pace in hours per week
	WeeklyCapacity = 40

	// DefaultBaseHours is used when no project type was selected or the
	// selection does not match an archetype
	DefaultBaseHours = 240

	// MinimumTotalHours is the smallest estimate the calculator produces
	MinimumTotalHours = 40

	// hoursPerOption is the cost of each selected multi-select option,
	// scaled by the question weight
	hoursPerOption = 8

	// hoursPerSelection is the cost of a single-select or free-text
	// answer, scaled by the question weight
	hoursPerSelection = 16
)

// distribution defines the fixed output taxonomy: each cost category takes
// a fraction of the base hours plus, where set, the accumulated
// adjustments of one input question category. This mapping is the only
// coupling between question categories and cost categories.
var distribution = []struct {
	category         string
	baseShare        float64
	adjustmentSource string
}{
	{models.CategoryDesign, 0.25, catalog.CategoryCoreFeatures},
	{models.CategoryFrontend, 0.30, ""},
	{models.CategoryBackend, 0.25, ""},
	{models.CategoryIntegrations, 0, catalog.CategoryIntegrations},
	{models.CategoryTesting, 0.10, ""},
	{models.CategoryDevOps, 0.05, catalog.CategoryTechnology},
	{models.CategoryDocumentation, 0.05, ""},
}

// categoryMinimums are the per-category floors applied when the estimate
// falls under MinimumTotalHours. They sum to exactly MinimumTotalHours.
var categoryMinimums = map[string]int{
	models.CategoryFrontend:      12,
	models.CategoryBackend:       12,
	models.CategoryDesign:        8,
	models.CategoryTesting:       4,
	models.CategoryDevOps:        2,
	models.CategoryDocumentation: 2,
}

// EstimationService converts questionnaire answers into an hour and cost
// estimate
type EstimationService struct {
	questions    []models.Question
	projectTypes []models.ProjectType
}

// NewEstimationService creates an estimation service over the built-in
// question catalog and archetype table
func NewEstimationService() *EstimationService {
	return NewEstimationServiceWith(catalog.Questions(), catalog.ProjectTypes())
}

// NewEstimationServiceWith creates an estimation service over
// caller-supplied fixtures. Used by tests.
func NewEstimationServiceWith(questions []models.Question, projectTypes []models.ProjectType) *EstimationService {
	return &EstimationService{
		questions:    questions,
		projectTypes: projectTypes,
	}
}

// Estimate computes the categorized hour breakdown, total cost and
// timeline for a set of answers. It never fails: missing or malformed
// answers simply contribute nothing.
func (s *EstimationService) Estimate(answers models.AnswerSet) *models.EstimationResult {
	baseHours := float64(s.baseHours(answers))
	adjustments := s.categoryAdjustments(answers)

	breakdown := make(map[string]int, len(distribution))
	for _, d := range distribution {
		hours := int(math.Round(baseHours*d.baseShare + adjustments[d.adjustmentSource]))
		if hours < 0 {
			hours = 0
		}
		breakdown[d.category] = hours
	}

	totalHours := sumHours(breakdown)
	if totalHours < MinimumTotalHours {
		for category, minimum := range categoryMinimums {
			if breakdown[category] < minimum {
				breakdown[category] = minimum
			}
		}
		// The minimums sum to MinimumTotalHours, so the recomputed total
		// honors both the floor and the sum invariant.
		totalHours = sumHours(breakdown)
	}

	return &models.EstimationResult{
		TotalHours:    totalHours,
		Breakdown:     breakdown,
		EstimatedCost: totalHours * HourlyRate,
		TimelineWeeks: int(math.Ceil(float64(totalHours) / WeeklyCapacity)),
	}
}

// baseHours resolves the project-type answer against the archetype table
func (s *EstimationService) baseHours(answers models.AnswerSet) int {
	answer, ok := answers[catalog.ProjectTypeQuestionID]
	if !ok {
		return DefaultBaseHours
	}

	choice, ok := answer.(models.SingleChoice)
	if !ok {
		return DefaultBaseHours
	}

	for _, pt := range s.projectTypes {
		if pt.Name == string(choice) {
			return pt.BaseHours
		}
	}

	return DefaultBaseHours
}

// categoryAdjustments accumulates the per-question hour adjustments into
// their question categories. Empty answers contribute nothing.
func (s *EstimationService) categoryAdjustments(answers models.AnswerSet) map[string]float64 {
	adjustments := make(map[string]float64)

	for _, question := range s.questions {
		answer, ok := answers[question.ID]
		if !ok || answer.Empty() {
			continue
		}

		var adjustment float64
		switch a := answer.(type) {
		case models.MultiChoice:
			adjustment = float64(len(a)) * question.Weight * hoursPerOption
		case models.SingleChoice, models.Text:
			adjustment = question.Weight * hoursPerSelection
		case models.Numeric:
			adjustment = float64(a) * question.Weight
		}

		if adjustment > 0 {
			adjustments[question.Category] += adjustment
		}
	}

	return adjustments
}

func sumHours(breakdown map[string]int) int {
	total := 0
	for _, hours := range breakdown {
		total += hours
	}
	return total
}
