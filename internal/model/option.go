package model

// Option is one selectable answer. IsCorrect is only meaningful on the
// authoring and scoring side; the student UI must not reveal it before the
// answer is locked in.
type Option struct {
	ID          uint   `json:"id"`
	QuestionID  uint   `json:"question_id"`
	OptionText  string `json:"option_text"`
	Description string `json:"description,omitempty"`
	IsCorrect   bool   `json:"is_correct"`
}
