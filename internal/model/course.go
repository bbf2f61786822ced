package model

import "time"

type CourseStatus string

const (
	CourseDraft     CourseStatus = "draft"
	CoursePublished CourseStatus = "published"
	CourseArchived  CourseStatus = "archived"
)

func (s CourseStatus) Valid() bool {
	switch s {
	case CourseDraft, CoursePublished, CourseArchived:
		return true
	}
	return false
}

type LessonType string

const (
	LessonTheory   LessonType = "theory"
	LessonTest     LessonType = "test"
	LessonPractice LessonType = "practice"
)

func (t LessonType) Valid() bool {
	switch t {
	case LessonTheory, LessonTest, LessonPractice:
		return true
	}
	return false
}

type MediaType string

const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaDocument MediaType = "document"
)

func (t MediaType) Valid() bool {
	switch t {
	case MediaImage, MediaVideo, MediaDocument:
		return true
	}
	return false
}

// Course owns an ordered list of modules. Ordering is by OrderIndex, which
// may be sparse after removals.
type Course struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	AuthorID    *uint        `json:"author_id,omitempty"`
	Status      CourseStatus `json:"status"`
	Price       float64      `json:"price"`
	Modules     []Module     `json:"modules,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type Module struct {
	ID         uint     `json:"id"`
	CourseID   uint     `json:"course_id"`
	Title      string   `json:"title"`
	OrderIndex int      `json:"order_index"`
	Lessons    []Lesson `json:"lessons,omitempty"`
}

type Lesson struct {
	ID         uint       `json:"id"`
	ModuleID   uint       `json:"module_id"`
	Title      string     `json:"title"`
	Content    string     `json:"content,omitempty"`
	LessonType LessonType `json:"lesson_type"`
	OrderIndex int        `json:"order_index"`
	Media      []Media    `json:"media,omitempty"`
}

type Media struct {
	ID         uint      `json:"id"`
	LessonID   uint      `json:"lesson_id"`
	MediaURL   string    `json:"media_url"`
	MediaType  MediaType `json:"media_type"`
	OrderIndex int       `json:"order_index"`
}
