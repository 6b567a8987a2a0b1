package catalog

import (
	"testing"

	"proposalsmith/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAnswers(t *testing.T) {
	questions := []models.Question{
		{ID: "project-type", Type: models.SingleSelect, Options: []string{"MVP Web App"}},
		{ID: "authentication", Type: models.MultiSelect, Options: []string{"Basic signup/login", "SSO (Single Sign-On)"}},
		{ID: "team-size", Type: models.NumberInput},
		{ID: "notes", Type: models.FreeText},
	}

	tests := []struct {
		name        string
		raw         map[string]interface{}
		wantAnswers models.AnswerSet
		wantDropped []string
	}{
		{
			name: "single select",
			raw:  map[string]interface{}{"project-type": "MVP Web App"},
			wantAnswers: models.AnswerSet{
				"project-type": models.SingleChoice("MVP Web App"),
			},
		},
		{
			name: "multi select",
			raw:  map[string]interface{}{"authentication": []interface{}{"Basic signup/login", "SSO (Single Sign-On)"}},
			wantAnswers: models.AnswerSet{
				"authentication": models.MultiChoice{"Basic signup/login", "SSO (Single Sign-On)"},
			},
		},
		{
			name: "numeric",
			raw:  map[string]interface{}{"team-size": 4.0},
			wantAnswers: models.AnswerSet{
				"team-size": models.Numeric(4),
			},
		},
		{
			name: "free text",
			raw:  map[string]interface{}{"notes": "must integrate with the legacy ERP"},
			wantAnswers: models.AnswerSet{
				"notes": models.Text("must integrate with the legacy ERP"),
			},
		},
		{
			name:        "unknown question id",
			raw:         map[string]interface{}{"favorite-color": "blue"},
			wantAnswers: models.AnswerSet{},
			wantDropped: []string{"favorite-color"},
		},
		{
			name:        "string for multi select",
			raw:         map[string]interface{}{"authentication": "Basic signup/login"},
			wantAnswers: models.AnswerSet{},
			wantDropped: []string{"authentication"},
		},
		{
			name:        "array with non-string element",
			raw:         map[string]interface{}{"authentication": []interface{}{"Basic signup/login", 7.0}},
			wantAnswers: models.AnswerSet{},
			wantDropped: []string{"authentication"},
		},
		{
			name:        "string for numeric",
			raw:         map[string]interface{}{"team-size": "four"},
			wantAnswers: models.AnswerSet{},
			wantDropped: []string{"team-size"},
		},
		{
			name: "mixed valid and invalid",
			raw: map[string]interface{}{
				"project-type": "MVP Web App",
				"team-size":    true,
			},
			wantAnswers: models.AnswerSet{
				"project-type": models.SingleChoice("MVP Web App"),
			},
			wantDropped: []string{"team-size"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers, dropped := DecodeAnswers(tt.raw, questions)

			assert.Equal(t, tt.wantAnswers, answers)
			assert.ElementsMatch(t, tt.wantDropped, dropped)
		})
	}
}

func TestDecodeAnswersAgainstCatalog(t *testing.T) {
	raw := map[string]interface{}{
		"project-type":   "E-commerce Platform",
		"authentication": []interface{}{"Basic signup/login"},
	}

	answers, dropped := DecodeAnswers(raw, Questions())

	require.Empty(t, dropped)
	assert.Equal(t, models.SingleChoice("E-commerce Platform"), answers["project-type"])
	assert.Equal(t, models.MultiChoice{"Basic signup/login"}, answers["authentication"])
}
