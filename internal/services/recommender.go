package services

import (
	"fmt"
	"math"

	"proposalsmith/internal/models"
	"proposalsmith/internal/repositories"
)

// Recommendation constants
const (
	// successBaseline is the success rate against which hours are scaled:
	// matches averaging above it shrink the estimate, below it grow it
	successBaseline = 90

	// maxConfidence caps the confidence score
	maxConfidence = 95

	// defaultConfidence is reported when no similar projects exist
	defaultConfidence = 50

	// maxSimilarProjects limits how many matches are surfaced
	maxSimilarProjects = 3
)

// RecommendationService suggests a proposal template and adjusted
// estimate by comparing a project against the historical corpus
type RecommendationService struct {
	repo *repositories.HistoryRepository
}

// NewRecommendationService creates a recommendation service over the
// given corpus repository
func NewRecommendationService(repo *repositories.HistoryRepository) *RecommendationService {
	return &RecommendationService{repo: repo}
}

// Recommend produces a recommendation for the given client type,
// requested services and hour estimate. It is a pure function of its
// inputs and the corpus; when nothing similar exists it falls back to a
// standard estimation instead of failing.
func (s *RecommendationService) Recommend(clientType string, services []string, estimatedHours int) *models.Recommendation {
	matches := s.repo.Similar(clientType, services)

	if len(matches) == 0 {
		return &models.Recommendation{
			RecommendedTemplate: models.TemplateDetailed,
			EstimatedHours:      estimatedHours,
			EstimatedCost:       estimatedHours * HourlyRate,
			Confidence:          defaultConfidence,
			SimilarProjects:     firstN(s.repo.All(), maxSimilarProjects),
			Reasoning:           "No similar projects found. Using standard estimation.",
		}
	}

	var successSum, costPerHourSum float64
	for _, project := range matches {
		successSum += float64(project.SuccessRate)
		costPerHourSum += project.TotalCost / float64(project.TotalHours)
	}
	avgSuccessRate := successSum / float64(len(matches))
	avgCostPerHour := costPerHourSum / float64(len(matches))

	adjustedHours := int(math.Round(float64(estimatedHours) * avgSuccessRate / successBaseline))
	estimatedCost := int(math.Round(float64(adjustedHours) * avgCostPerHour))

	confidence := int(math.Round(defaultConfidence + float64(len(matches))*10 + (avgSuccessRate - 80)))
	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	if confidence < 0 {
		confidence = 0
	}

	return &models.Recommendation{
		RecommendedTemplate: templateForClientType(clientType),
		EstimatedHours:      adjustedHours,
		EstimatedCost:       estimatedCost,
		Confidence:          confidence,
		SimilarProjects:     firstN(matches, maxSimilarProjects),
		Reasoning: fmt.Sprintf("Based on %d similar projects with %d%% average success rate.",
			len(matches), int(math.Round(avgSuccessRate))),
	}
}

// templateForClientType maps a client type to its proposal template
func templateForClientType(clientType string) string {
	switch clientType {
	case models.ClientStartup:
		return models.TemplateStartup
	case models.ClientCorporation, models.ClientGovernment:
		return models.TemplateDetailed
	default:
		return models.TemplateBasic
	}
}

func firstN(projects []models.HistoricalProject, n int) []models.HistoricalProject {
	if len(projects) > n {
		return projects[:n]
	}
	return projects
}
