package model

import "time"

// TestType controls where a test surfaces in the student portal.
type TestType string

const (
	TestTypeWeekly TestType = "weekly"
	TestTypeTopic  TestType = "topic"
	TestTypeCourse TestType = "course"
)

func (t TestType) Valid() bool {
	switch t {
	case TestTypeWeekly, TestTypeTopic, TestTypeCourse:
		return true
	}
	return false
}

// Test is immutable for the duration of an attempt. PassingScore is a
// percentage threshold in [0, 100].
type Test struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	PassingScore int        `json:"passing_score"`
	TestType     TestType   `json:"test_type"`
	CourseID     *uint      `json:"course_id,omitempty"`
	Questions    []Question `json:"questions,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
