package dto

// Authoring payloads for questions and options. Update payloads use pointers
// so absent fields are left untouched by the server.

type QuestionCreateDTO struct {
	TestID       uint   `json:"test_id" binding:"required"`
	QuestionText string `json:"question_text" binding:"required"`
	Description  string `json:"description"`
	QuestionType string `json:"question_type" binding:"required,oneof=single_choice multiple_choice text"`
	Points       int    `json:"points" binding:"required,gt=0"`
	OrderIndex   int    `json:"order_index"`
}

type QuestionUpdateDTO struct {
	QuestionText *string `json:"question_text"`
	Description  *string `json:"description"`
	QuestionType *string `json:"question_type" binding:"omitempty,oneof=single_choice multiple_choice text"`
	Points       *int    `json:"points" binding:"omitempty,gt=0"`
	OrderIndex   *int    `json:"order_index"`
}

type OptionCreateDTO struct {
	QuestionID  uint   `json:"question_id" binding:"required"`
	OptionText  string `json:"option_text" binding:"required"`
	Description string `json:"description"`
	IsCorrect   bool   `json:"is_correct"`
}

type OptionUpdateDTO struct {
	OptionText  *string `json:"option_text"`
	Description *string `json:"description"`
	IsCorrect   *bool   `json:"is_correct"`
}
