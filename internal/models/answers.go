package models

import "strings"

// Answer is a single response to a catalog question. The concrete type
// mirrors the question's declared type: select answers are SingleChoice,
// checkbox answers are MultiChoice, number answers are Numeric and
// free-form input is Text.
type Answer interface {
	// Empty reports whether the answer carries no usable value and should
	// contribute nothing to the hour calculation.
	Empty() bool

	isAnswer()
}

// SingleChoice is the selected option of a single-select question.
type SingleChoice string

// MultiChoice holds the selected options of a multi-select question.
type MultiChoice []string

// Numeric is the value of a numeric question.
type Numeric float64

// Text is the content of a free-text question.
type Text string

func (SingleChoice) isAnswer() {}
func (MultiChoice) isAnswer()  {}
func (Numeric) isAnswer()      {}
func (Text) isAnswer()         {}

// Empty reports whether the choice is blank.
func (a SingleChoice) Empty() bool {
	return strings.TrimSpace(string(a)) == ""
}

// Empty reports whether no options were selected.
func (a MultiChoice) Empty() bool {
	return len(a) == 0
}

// Empty reports whether the value is zero or negative.
func (a Numeric) Empty() bool {
	return a <= 0
}

// Empty reports whether the text is blank.
func (a Text) Empty() bool {
	return strings.TrimSpace(string(a)) == ""
}

// AnswerSet maps question ids to their answers for a single estimation
// session. It is owned by the caller and never persisted.
type AnswerSet map[string]Answer
