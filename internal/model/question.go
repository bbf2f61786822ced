package model

// QuestionType is the answer-entry variant of a question. Text questions
// carry no options and are answered free-form.
type QuestionType string

const (
	QuestionSingleChoice   QuestionType = "single_choice"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionText           QuestionType = "text"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionSingleChoice, QuestionMultipleChoice, QuestionText:
		return true
	}
	return false
}

type Question struct {
	ID           uint         `json:"id"`
	TestID       uint         `json:"test_id"`
	QuestionText string       `json:"question_text"`
	Description  string       `json:"description,omitempty"`
	QuestionType QuestionType `json:"question_type"`
	Points       int          `json:"points"`
	OrderIndex   int          `json:"order_index"`
	Options      []Option     `json:"options,omitempty"`
}

// CorrectOptionIDs returns the set of option ids flagged correct.
func (q Question) CorrectOptionIDs() map[uint]struct{} {
	correct := make(map[uint]struct{})
	for _, o := range q.Options {
		if o.IsCorrect {
			correct[o.ID] = struct{}{}
		}
	}
	return correct
}
