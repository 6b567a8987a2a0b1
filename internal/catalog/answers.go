package catalog

import (
	"proposalsmith/internal/models"
)

// DecodeAnswers converts raw JSON-decoded answer values into a typed
// AnswerSet using the question catalog to determine the expected shape.
// Values for unknown question ids and values whose shape does not match
// the question type are dropped; their ids are returned so callers can
// warn about them.
func DecodeAnswers(raw map[string]interface{}, qs []models.Question) (models.AnswerSet, []string) {
	byID := make(map[string]models.Question, len(qs))
	for _, q := range qs {
		byID[q.ID] = q
	}

	answers := make(models.AnswerSet, len(raw))
	var dropped []string

	for id, value := range raw {
		question, ok := byID[id]
		if !ok {
			dropped = append(dropped, id)
			continue
		}

		answer, ok := decodeValue(question.Type, value)
		if !ok {
			dropped = append(dropped, id)
			continue
		}

		answers[id] = answer
	}

	return answers, dropped
}

func decodeValue(qt models.QuestionType, value interface{}) (models.Answer, bool) {
	switch qt {
	case models.SingleSelect:
		s, ok := value.(string)
		if !ok {
			return nil, false
		}
		return models.SingleChoice(s), true

	case models.MultiSelect:
		items, ok := value.([]interface{})
		if !ok {
			return nil, false
		}
		selected := make(models.MultiChoice, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			selected = append(selected, s)
		}
		return selected, true

	case models.NumberInput:
		n, ok := value.(float64)
		if !ok {
			return nil, false
		}
		return models.Numeric(n), true

	case models.FreeText:
		s, ok := value.(string)
		if !ok {
			return nil, false
		}
		return models.Text(s), true
	}

	return nil, false
}
