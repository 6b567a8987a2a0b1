package services

import (
	"fmt"
	"strings"
	"time"

	"proposalsmith/internal/catalog"
	"proposalsmith/internal/config"
	"proposalsmith/internal/helpers"
	"proposalsmith/internal/models"
)

// ProposalService renders estimation and recommendation results to the
// console and saves them as report files
type ProposalService struct {
	config *config.Config
}

// NewProposalService creates a new proposal service
func NewProposalService(cfg *config.Config) *ProposalService {
	return &ProposalService{config: cfg}
}

// DisplayEstimate displays an estimation result in a formatted way
func (s *ProposalService) DisplayEstimate(projectName string, result *models.EstimationResult) {
	title := "Project Estimate"
	if projectName != "" {
		title = fmt.Sprintf("Project Estimate: %s", projectName)
	}
	helpers.PrintTitle(title)
	helpers.PrintSeparator()

	for _, category := range models.BreakdownCategories() {
		helpers.PrintInfo("%-24s %4d hours", category, result.Breakdown[category])
	}
	helpers.PrintSeparator()

	helpers.PrintInfo("Total hours: %d", result.TotalHours)
	helpers.PrintInfo("Estimated cost: %s%d", s.config.Display.CurrencySymbol, result.EstimatedCost)
	helpers.PrintInfo("Timeline: %d weeks", result.TimelineWeeks)
}

// DisplayRecommendation displays a recommendation in a formatted way
func (s *ProposalService) DisplayRecommendation(rec *models.Recommendation) {
	helpers.PrintTitle("Recommendation")
	helpers.PrintInfo("Template: %s", rec.RecommendedTemplate)
	helpers.PrintInfo("Estimated hours: %d", rec.EstimatedHours)
	helpers.PrintInfo("Estimated cost: %s%d", s.config.Display.CurrencySymbol, rec.EstimatedCost)
	helpers.PrintInfo("Confidence: %d%%", rec.Confidence)
	helpers.PrintInfo("Reasoning: %s", rec.Reasoning)
	helpers.PrintSeparator()

	for i, project := range rec.SimilarProjects {
		helpers.PrintInfo("Similar project %d: %s (%s)", i+1, project.ProjectName, project.ClientType)
		helpers.PrintInfo("  %d hours | %s%.0f | %d%% success | %s",
			project.TotalHours, s.config.Display.CurrencySymbol, project.TotalCost,
			project.SuccessRate, project.Template)
	}
}

// DisplayPlan displays a project plan with its role totals
func (s *ProposalService) DisplayPlan(plan *models.ProjectPlan) {
	title := "Project Plan"
	if plan.ProjectName != "" {
		title = fmt.Sprintf("Project Plan: %s", plan.ProjectName)
	}
	helpers.PrintTitle(title)

	if plan.ClientType != "" {
		helpers.PrintInfo("Client type: %s", plan.ClientType)
	}
	if len(plan.Services) > 0 {
		helpers.PrintInfo("Services: %s", strings.Join(plan.Services, ", "))
	}
	helpers.PrintSeparator()

	for _, role := range plan.Roles {
		helpers.PrintInfo("%-20s %s%.0f/h × %4d hours = %s%.0f",
			role.Name, s.config.Display.CurrencySymbol, role.HourlyRate, role.Hours,
			s.config.Display.CurrencySymbol, role.HourlyRate*float64(role.Hours))
	}
	helpers.PrintSeparator()

	helpers.PrintInfo("Total hours: %d", plan.TotalHours())
	helpers.PrintInfo("Total cost: %s%.0f", s.config.Display.CurrencySymbol, plan.TotalCost())
}

// SavePlan saves a project plan to the output directory as JSON
func (s *ProposalService) SavePlan(plan *models.ProjectPlan) error {
	outputDir := s.config.Output.OutputDir
	if err := helpers.EnsureDir(outputDir); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := helpers.GenerateOutputFilename("plan", "json")
	path := helpers.GetOutputPath(outputDir, filename)

	if err := helpers.SaveJSON(plan, path); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	helpers.PrintSuccess("Saved plan to: %s", path)
	return nil
}

// DisplayClientTypeStats displays the statistics of one client type
func (s *ProposalService) DisplayClientTypeStats(clientType string, stats *models.ClientTypeStats) {
	helpers.PrintTitle("Client Type Statistics: %s", clientType)

	if stats == nil {
		helpers.PrintWarning("No historical projects for client type '%s'", clientType)
		return
	}

	helpers.PrintInfo("Projects: %d", stats.TotalProjects)
	helpers.PrintInfo("Average cost: %s%d", s.config.Display.CurrencySymbol, stats.AverageCost)
	helpers.PrintInfo("Average hours: %d", stats.AverageHours)
	helpers.PrintInfo("Success rate: %d%%", stats.SuccessRate)
	helpers.PrintInfo("Most used template: %s", stats.MostUsedTemplate)
}

// DisplayComplexityStats displays the per-complexity statistics
func (s *ProposalService) DisplayComplexityStats(stats map[models.Complexity]models.ComplexityStats) {
	helpers.PrintTitle("Complexity Statistics")

	for _, complexity := range []models.Complexity{models.ComplexityLow, models.ComplexityMedium, models.ComplexityHigh} {
		bucket, ok := stats[complexity]
		if !ok {
			continue
		}
		helpers.PrintInfo("%-8s %d projects | avg %s%d | avg %d hours",
			complexity, bucket.Count, s.config.Display.CurrencySymbol, bucket.AvgCost, bucket.AvgHours)
	}
}

// DisplayOverview displays the corpus overview
func (s *ProposalService) DisplayOverview(overview *models.CorpusOverview) {
	helpers.PrintTitle("Historical Project Overview")
	helpers.PrintInfo("Total projects: %d", overview.TotalProjects)
	helpers.PrintInfo("Total revenue: %s%.0f", s.config.Display.CurrencySymbol, overview.TotalRevenue)
	helpers.PrintInfo("Average success rate: %d%%", overview.AvgSuccessRate)
	helpers.PrintSeparator()

	for _, summary := range overview.ClientTypes {
		helpers.PrintInfo("%s: %d projects | %s%.0f revenue | %d%% success",
			summary.ClientType, summary.Count, s.config.Display.CurrencySymbol,
			summary.TotalRevenue, summary.AvgSuccessRate)
	}
}

// DisplayQuestionCatalog displays the questionnaire grouped by category
func (s *ProposalService) DisplayQuestionCatalog(groups []catalog.Group) {
	helpers.PrintTitle("Questionnaire Catalog")

	for _, group := range groups {
		helpers.PrintSeparator()
		helpers.PrintInfo("Category: %s", group.Category)

		for _, question := range group.Questions {
			helpers.PrintInfo("  [%s] %s (weight %.1f)", question.Type, question.Question, question.Weight)
			if len(question.Options) > 0 {
				helpers.PrintInfo("    Options: %s", strings.Join(question.Options, ", "))
			}
		}
	}
}

// SaveEstimateReport saves an estimation result to the output directory
// as JSON and, when enabled, a markdown summary
func (s *ProposalService) SaveEstimateReport(projectName string, result *models.EstimationResult, rec *models.Recommendation) error {
	outputDir := s.config.Output.OutputDir
	if err := helpers.EnsureDir(outputDir); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	report := &models.EstimateReport{
		ProjectName:    projectName,
		Result:         *result,
		Recommendation: rec,
		GeneratedAt:    time.Now(),
	}

	if s.config.Output.SaveJSON {
		filename := helpers.GenerateOutputFilename("estimate", "json")
		path := helpers.GetOutputPath(outputDir, filename)

		if err := helpers.SaveJSON(report, path); err != nil {
			return fmt.Errorf("failed to save estimate report: %w", err)
		}

		helpers.PrintSuccess("Saved estimate report to: %s", path)
	}

	if s.config.Output.SaveMarkdown {
		filename := helpers.GenerateOutputFilename("estimate-summary", "md")
		path := helpers.GetOutputPath(outputDir, filename)

		if err := helpers.SaveText(s.estimateSummary(report), path); err != nil {
			return fmt.Errorf("failed to save summary: %w", err)
		}

		helpers.PrintSuccess("Saved summary to: %s", path)
	}

	return nil
}

// SaveRecommendation saves a recommendation to the output directory as JSON
func (s *ProposalService) SaveRecommendation(rec *models.Recommendation) error {
	outputDir := s.config.Output.OutputDir
	if err := helpers.EnsureDir(outputDir); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := helpers.GenerateOutputFilename("recommendation", "json")
	path := helpers.GetOutputPath(outputDir, filename)

	if err := helpers.SaveJSON(rec, path); err != nil {
		return fmt.Errorf("failed to save recommendation: %w", err)
	}

	helpers.PrintSuccess("Saved recommendation to: %s", path)
	return nil
}

// estimateSummary builds a markdown summary of an estimate report
func (s *ProposalService) estimateSummary(report *models.EstimateReport) string {
	var summary strings.Builder

	name := report.ProjectName
	if name == "" {
		name = "Project Estimate"
	}

	summary.WriteString(fmt.Sprintf("# %s\n\n", name))
	summary.WriteString(fmt.Sprintf("**Total Hours:** %d\n", report.Result.TotalHours))
	summary.WriteString(fmt.Sprintf("**Estimated Cost:** %s%d\n", s.config.Display.CurrencySymbol, report.Result.EstimatedCost))
	summary.WriteString(fmt.Sprintf("**Timeline:** %d weeks\n\n", report.Result.TimelineWeeks))

	summary.WriteString("## Hour Breakdown\n\n")
	summary.WriteString("| Category | Hours |\n")
	summary.WriteString("| --- | --- |\n")
	for _, category := range models.BreakdownCategories() {
		summary.WriteString(fmt.Sprintf("| %s | %d |\n", category, report.Result.Breakdown[category]))
	}
	summary.WriteString("\n")

	if rec := report.Recommendation; rec != nil {
		summary.WriteString("## Recommendation\n\n")
		summary.WriteString(fmt.Sprintf("**Template:** %s\n", rec.RecommendedTemplate))
		summary.WriteString(fmt.Sprintf("**Estimated Hours:** %d\n", rec.EstimatedHours))
		summary.WriteString(fmt.Sprintf("**Estimated Cost:** %s%d\n", s.config.Display.CurrencySymbol, rec.EstimatedCost))
		summary.WriteString(fmt.Sprintf("**Confidence:** %d%%\n\n", rec.Confidence))
		summary.WriteString(fmt.Sprintf("%s\n\n", rec.Reasoning))

		for _, project := range rec.SimilarProjects {
			summary.WriteString(fmt.Sprintf("- %s (%s): %d hours, %s%.0f, %d%% success\n",
				project.ProjectName, project.ClientType, project.TotalHours,
				s.config.Display.CurrencySymbol, project.TotalCost, project.SuccessRate))
		}
	}

	return summary.String()
}
