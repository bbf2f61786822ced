package model

import "time"

// TestAttempt is a submitted attempt as the server records it. Percentage and
// pass/fail are deliberately absent: clients recompute both from the raw
// score so rounding stays consistent across code paths.
type TestAttempt struct {
	ID          uint       `json:"id"`
	TestID      uint       `json:"test_id"`
	UserID      *uint      `json:"user_id,omitempty"`
	Score       int        `json:"score"`
	TotalPoints int        `json:"total_points"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
