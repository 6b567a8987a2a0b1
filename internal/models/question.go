package models

// QuestionType identifies the answer shape a question expects
type QuestionType string

const (
	// SingleSelect questions take exactly one of the listed options
	SingleSelect QuestionType = "select"

	// MultiSelect questions take any subset of the listed options
	MultiSelect QuestionType = "checkbox"

	// NumberInput questions take a numeric value
	NumberInput QuestionType = "number"

	// FreeText questions take arbitrary text
	FreeText QuestionType = "text"
)

// Question is a single entry of the questionnaire catalog
type Question struct {
	ID          string       `json:"id"`
	Category    string       `json:"category"`
	Question    string       `json:"question"`
	Type        QuestionType `json:"type"`
	Options     []string     `json:"options,omitempty"`
	Weight      float64      `json:"weight"`
	Description string       `json:"description,omitempty"`
}

// ProjectType is a named project archetype providing the base hour figure
// for the estimation
type ProjectType struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	BaseHours     int        `json:"base_hours"`
	Complexity    Complexity `json:"complexity"`
	Features      []string   `json:"features"`
	EstimatedCost int        `json:"estimated_cost"`
}
