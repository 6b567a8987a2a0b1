package services

import (
	"math"

	"proposalsmith/internal/models"
	"proposalsmith/internal/repositories"
)

// AnalyticsService derives summary statistics from the historical corpus
type AnalyticsService struct {
	repo *repositories.HistoryRepository
}

// NewAnalyticsService creates an analytics service over the given corpus
// repository
func NewAnalyticsService(repo *repositories.HistoryRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// StatsByClientType summarizes the projects delivered for one client
// type. Returns nil when no project matches.
func (s *AnalyticsService) StatsByClientType(clientType string) *models.ClientTypeStats {
	projects := s.repo.ByClientType(clientType)
	if len(projects) == 0 {
		return nil
	}

	var costSum, hoursSum, successSum float64
	for _, project := range projects {
		costSum += project.TotalCost
		hoursSum += float64(project.TotalHours)
		successSum += float64(project.SuccessRate)
	}

	count := float64(len(projects))
	return &models.ClientTypeStats{
		TotalProjects:    len(projects),
		AverageCost:      int(math.Round(costSum / count)),
		AverageHours:     int(math.Round(hoursSum / count)),
		SuccessRate:      int(math.Round(successSum / count)),
		MostUsedTemplate: mostUsedTemplate(projects),
	}
}

// StatsByComplexity summarizes the corpus per complexity bucket
func (s *AnalyticsService) StatsByComplexity() map[models.Complexity]models.ComplexityStats {
	type totals struct {
		count    int
		costSum  float64
		hoursSum float64
	}

	buckets := make(map[models.Complexity]*totals)
	for _, project := range s.repo.All() {
		bucket, ok := buckets[project.Complexity]
		if !ok {
			bucket = &totals{}
			buckets[project.Complexity] = bucket
		}
		bucket.count++
		bucket.costSum += project.TotalCost
		bucket.hoursSum += float64(project.TotalHours)
	}

	stats := make(map[models.Complexity]models.ComplexityStats, len(buckets))
	for complexity, bucket := range buckets {
		count := float64(bucket.count)
		stats[complexity] = models.ComplexityStats{
			Count:    bucket.count,
			AvgCost:  int(math.Round(bucket.costSum / count)),
			AvgHours: int(math.Round(bucket.hoursSum / count)),
		}
	}

	return stats
}

// Overview aggregates the whole corpus: totals plus one summary row per
// client type, in corpus-encounter order
func (s *AnalyticsService) Overview() *models.CorpusOverview {
	projects := s.repo.All()

	overview := &models.CorpusOverview{TotalProjects: len(projects)}
	if len(projects) == 0 {
		return overview
	}

	type totals struct {
		count      int
		revenue    float64
		successSum float64
	}

	var order []string
	byClientType := make(map[string]*totals)
	var successSum float64

	for _, project := range projects {
		overview.TotalRevenue += project.TotalCost
		successSum += float64(project.SuccessRate)

		bucket, ok := byClientType[project.ClientType]
		if !ok {
			bucket = &totals{}
			byClientType[project.ClientType] = bucket
			order = append(order, project.ClientType)
		}
		bucket.count++
		bucket.revenue += project.TotalCost
		bucket.successSum += float64(project.SuccessRate)
	}

	overview.AvgSuccessRate = int(math.Round(successSum / float64(len(projects))))
	for _, clientType := range order {
		bucket := byClientType[clientType]
		overview.ClientTypes = append(overview.ClientTypes, models.ClientTypeSummary{
			ClientType:     clientType,
			Count:          bucket.count,
			TotalRevenue:   bucket.revenue,
			AvgSuccessRate: int(math.Round(bucket.successSum / float64(bucket.count))),
		})
	}

	return overview
}

// mostUsedTemplate returns the template with the highest occurrence
// count, breaking ties by first-encountered order
func mostUsedTemplate(projects []models.HistoricalProject) string {
	counts := make(map[string]int)
	var order []string

	for _, project := range projects {
		if _, seen := counts[project.Template]; !seen {
			order = append(order, project.Template)
		}
		counts[project.Template]++
	}

	best := ""
	bestCount := 0
	for _, template := range order {
		if counts[template] > bestCount {
			best = template
			bestCount = counts[template]
		}
	}

	return best
}
