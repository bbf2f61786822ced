package dto

// AnswerSubmissionDTO is one question's answer within a full-test submission.
// SelectedOptionIDs is an empty array (not null) for unanswered questions so
// the scorer sees every question of the test.
type AnswerSubmissionDTO struct {
	QuestionID        uint   `json:"question_id" binding:"required"`
	SelectedOptionIDs []uint `json:"selected_option_ids"`
}

// TestSubmissionDTO is the request body for submitting an entire attempt.
type TestSubmissionDTO struct {
	Answers []AnswerSubmissionDTO `json:"answers" binding:"required,dive"`
}

// TestResultDTO is the scorer's response. Passed is returned by the server
// but consumers recompute it locally from score/total/passing_score.
type TestResultDTO struct {
	AttemptID    uint   `json:"attempt_id"`
	TestID       uint   `json:"test_id"`
	TestTitle    string `json:"test_title,omitempty"`
	Score        int    `json:"score"`
	TotalPoints  int    `json:"total_points"`
	PassingScore int    `json:"passing_score"`
	Passed       bool   `json:"passed"`
}

// TestSummaryDTO is used for listing tests without their question bodies.
type TestSummaryDTO struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	TestType      string `json:"test_type"`
	PassingScore  int    `json:"passing_score"`
	QuestionCount int    `json:"question_count"`
}
