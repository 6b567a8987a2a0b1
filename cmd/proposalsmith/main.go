package main

import (
	"fmt"
	"os"

	"proposalsmith/internal/catalog"
	"proposalsmith/internal/config"
	"proposalsmith/internal/helpers"
	"proposalsmith/internal/models"
	"proposalsmith/internal/repositories"
	"proposalsmith/internal/services"

	"github.com/spf13/cobra"
)

var configFile string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "proposalsmith",
		Short: "Proposalsmith - project proposal estimation and recommendation",
		Long: `Proposalsmith estimates project hours and costs from questionnaire
answers and recommends proposal templates based on historical projects.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "Configuration file path")

	// Estimate command
	var estimateCmd = &cobra.Command{
		Use:   "estimate <answers.json>",
		Short: "Estimate hours and cost from questionnaire answers",
		Long:  "Compute a categorized hour breakdown, total cost and timeline from a JSON answer file",
		Args:  cobra.ExactArgs(1),
		RunE:  runEstimate,
	}
	estimateCmd.Flags().StringP("project-name", "n", "", "Project name for the report")
	estimateCmd.Flags().String("client-type", "", "Client type, enables a recommendation alongside the estimate")
	estimateCmd.Flags().StringSlice("services", nil, "Requested services for the recommendation")
	rootCmd.AddCommand(estimateCmd)

	// Recommend command
	var recommendCmd = &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a proposal template from historical projects",
		Long:  "Compare client type, services and hours against past projects and suggest a template and adjusted estimate",
		RunE:  runRecommend,
	}
	recommendCmd.Flags().String("client-type", "", "Client type (e.g. Startup, Corporation)")
	recommendCmd.Flags().StringSlice("services", nil, "Requested services")
	recommendCmd.Flags().Int("hours", 0, "Current hour estimate")
	recommendCmd.Flags().BoolP("save", "s", false, "Save the recommendation to the output directory")
	_ = recommendCmd.MarkFlagRequired("hours")
	rootCmd.AddCommand(recommendCmd)

	// Plan command
	var planCmd = &cobra.Command{
		Use:   "plan <plan.json>",
		Short: "Price a project plan by roles and rates",
		Long:  "Load a project plan, show its role totals and optionally apply the historical recommendation to its hours",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlan,
	}
	planCmd.Flags().BoolP("apply", "a", false, "Apply the recommendation's hours to the plan roles")
	planCmd.Flags().BoolP("save", "s", false, "Save the resulting plan to the output directory")
	rootCmd.AddCommand(planCmd)

	// Stats command
	var statsCmd = &cobra.Command{
		Use:   "stats [client-type]",
		Short: "Show historical project statistics",
		Long:  "Summarize the historical corpus by client type, complexity or as an overview",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().Bool("complexity", false, "Group statistics by complexity")
	statsCmd.Flags().Bool("overview", false, "Show the corpus overview")
	rootCmd.AddCommand(statsCmd)

	// Questions command
	var questionsCmd = &cobra.Command{
		Use:   "questions",
		Short: "List the questionnaire catalog",
		Long:  "Print every catalog question grouped by category",
		RunE:  runQuestions,
	}
	rootCmd.AddCommand(questionsCmd)

	if err := rootCmd.Execute(); err != nil {
		helpers.PrintError("Error: %v", err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration file, falling back to the defaults
// when no file is present
func loadConfig() (*config.Config, error) {
	if !helpers.FileExists(configFile) {
		return config.Default(), nil
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func runEstimate(cmd *cobra.Command, args []string) error {
	answersFile := args[0]
	projectName, _ := cmd.Flags().GetString("project-name")
	clientType, _ := cmd.Flags().GetString("client-type")
	requestedServices, _ := cmd.Flags().GetStringSlice("services")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	helpers.PrintTitle("Estimating Project")
	helpers.PrintInfo("Answers file: %s", answersFile)

	var raw map[string]interface{}
	if err := helpers.LoadJSON(answersFile, &raw); err != nil {
		return fmt.Errorf("failed to load answers file: %w", err)
	}

	answers, dropped := catalog.DecodeAnswers(raw, catalog.Questions())
	for _, id := range dropped {
		helpers.PrintWarning("Ignoring answer '%s': unknown question or mismatched value", id)
	}
	helpers.PrintInfo("Loaded %d answers", len(answers))

	estimator := services.NewEstimationService()
	result := estimator.Estimate(answers)

	proposalService := services.NewProposalService(cfg)
	proposalService.DisplayEstimate(projectName, result)

	var rec *models.Recommendation
	if clientType != "" {
		recommender := services.NewRecommendationService(repositories.NewHistoryRepository())
		rec = recommender.Recommend(clientType, requestedServices, result.TotalHours)
		proposalService.DisplayRecommendation(rec)
	}

	if err := proposalService.SaveEstimateReport(projectName, result, rec); err != nil {
		return fmt.Errorf("failed to save estimate report: %w", err)
	}

	helpers.PrintSuccess("Estimation completed successfully!")
	return nil
}

func runRecommend(cmd *cobra.Command, args []string) error {
	clientType, _ := cmd.Flags().GetString("client-type")
	requestedServices, _ := cmd.Flags().GetStringSlice("services")
	hours, _ := cmd.Flags().GetInt("hours")
	save, _ := cmd.Flags().GetBool("save")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	helpers.PrintTitle("Generating Recommendation")
	helpers.PrintInfo("Client type: %s | Services: %d | Hours: %d", clientType, len(requestedServices), hours)

	recommender := services.NewRecommendationService(repositories.NewHistoryRepository())
	rec := recommender.Recommend(clientType, requestedServices, hours)

	proposalService := services.NewProposalService(cfg)
	proposalService.DisplayRecommendation(rec)

	if save {
		if err := proposalService.SaveRecommendation(rec); err != nil {
			return fmt.Errorf("failed to save recommendation: %w", err)
		}
	}

	return nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	planFile := args[0]
	apply, _ := cmd.Flags().GetBool("apply")
	save, _ := cmd.Flags().GetBool("save")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var plan models.ProjectPlan
	if err := helpers.LoadJSON(planFile, &plan); err != nil {
		return fmt.Errorf("failed to load plan file: %w", err)
	}

	if len(plan.Roles) == 0 {
		helpers.PrintInfo("Plan has no roles, using the default lineup")
		plan.Roles = models.DefaultRoles()
	}

	proposalService := services.NewProposalService(cfg)
	proposalService.DisplayPlan(&plan)

	if plan.ClientType != "" && plan.EstimatedHours > 0 {
		recommender := services.NewRecommendationService(repositories.NewHistoryRepository())
		rec := recommender.Recommend(plan.ClientType, plan.Services, plan.EstimatedHours)
		proposalService.DisplayRecommendation(rec)

		if apply {
			plan.ApplyRecommendation(rec)
			helpers.PrintSuccess("Applied recommendation: %d hours across %d roles", plan.EstimatedHours, len(plan.Roles))
			proposalService.DisplayPlan(&plan)
		}
	} else if apply {
		helpers.PrintWarning("Cannot apply a recommendation without client type and estimated hours")
	}

	if save {
		if err := proposalService.SavePlan(&plan); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}
	}

	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	byComplexity, _ := cmd.Flags().GetBool("complexity")
	overview, _ := cmd.Flags().GetBool("overview")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	analytics := services.NewAnalyticsService(repositories.NewHistoryRepository())
	proposalService := services.NewProposalService(cfg)

	switch {
	case byComplexity:
		proposalService.DisplayComplexityStats(analytics.StatsByComplexity())
	case overview || len(args) == 0:
		proposalService.DisplayOverview(analytics.Overview())
	default:
		clientType := args[0]
		proposalService.DisplayClientTypeStats(clientType, analytics.StatsByClientType(clientType))
	}

	return nil
}

func runQuestions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	proposalService := services.NewProposalService(cfg)
	proposalService.DisplayQuestionCatalog(catalog.GroupByCategory(catalog.Questions()))

	return nil
}
