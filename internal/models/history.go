package models

// Complexity buckets historical projects by implementation effort
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Outcome records how a historical project ended
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomePartial Outcome = "partial"
	OutcomeFailure Outcome = "failure"
)

// Client types known to the recommendation engine
const (
	ClientStartup     = "Startup"
	ClientMidSize     = "Mid-size Company"
	ClientCorporation = "Corporation"
	ClientNonProfit   = "Non-profit"
	ClientGovernment  = "Government"
)

// Proposal template names
const (
	TemplateStartup  = "Startup Proposal"
	TemplateDetailed = "Detailed Proposal"
	TemplateBasic    = "Basic Proposal"
)

// HistoricalProject is one record of the static past-project corpus. The
// corpus is read-only at runtime.
type HistoricalProject struct {
	ID          string     `json:"id"`
	ProjectName string     `json:"project_name"`
	ClientType  string     `json:"client_type"`
	Services    []string   `json:"services"`
	TotalHours  int        `json:"total_hours"`
	TotalCost   float64    `json:"total_cost"`
	SuccessRate int        `json:"success_rate"` // 0-100
	Template    string     `json:"template"`
	Duration    int        `json:"duration_weeks"`
	TeamSize    int        `json:"team_size"`
	Complexity  Complexity `json:"complexity"`
	Outcome     Outcome    `json:"outcome"`
}

// Recommendation is the synthesized suggestion produced by comparing a
// project against the historical corpus
type Recommendation struct {
	RecommendedTemplate string              `json:"recommended_template"`
	EstimatedHours      int                 `json:"estimated_hours"`
	EstimatedCost       int                 `json:"estimated_cost"`
	Confidence          int                 `json:"confidence"` // 0-95
	SimilarProjects     []HistoricalProject `json:"similar_projects"`
	Reasoning           string              `json:"reasoning"`
}

// ClientTypeStats summarizes the historical projects of one client type
type ClientTypeStats struct {
	TotalProjects    int    `json:"total_projects"`
	AverageCost      int    `json:"average_cost"`
	AverageHours     int    `json:"average_hours"`
	SuccessRate      int    `json:"success_rate"`
	MostUsedTemplate string `json:"most_used_template"`
}

// ComplexityStats summarizes the historical projects of one complexity bucket
type ComplexityStats struct {
	Count    int `json:"count"`
	AvgCost  int `json:"avg_cost"`
	AvgHours int `json:"avg_hours"`
}

// ClientTypeSummary is one per-client-type row of the corpus overview
type ClientTypeSummary struct {
	ClientType     string  `json:"client_type"`
	Count          int     `json:"count"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgSuccessRate int     `json:"avg_success_rate"`
}

// CorpusOverview aggregates the whole historical corpus
type CorpusOverview struct {
	TotalProjects  int                 `json:"total_projects"`
	TotalRevenue   float64             `json:"total_revenue"`
	AvgSuccessRate int                 `json:"avg_success_rate"`
	ClientTypes    []ClientTypeSummary `json:"client_types"`
}
