package dto

// CourseCreateDTO carries an operator-chosen id: the create flow assigns the
// course id explicitly instead of delegating to the server.
type CourseCreateDTO struct {
	ID          uint    `json:"id" binding:"required,gt=0"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	AuthorID    *uint   `json:"author_id"`
	Status      string  `json:"status" binding:"omitempty,oneof=draft published archived"`
	Price       float64 `json:"price"`
}

type CourseUpdateDTO struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	AuthorID    *uint   `json:"author_id"`
	Status      string  `json:"status" binding:"omitempty,oneof=draft published archived"`
	Price       float64 `json:"price"`
}

type ModuleCreateDTO struct {
	CourseID   uint   `json:"course_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	OrderIndex int    `json:"order_index"`
}

type ModuleUpdateDTO struct {
	Title      string `json:"title" binding:"required"`
	OrderIndex int    `json:"order_index"`
}

type LessonCreateDTO struct {
	ModuleID   uint   `json:"module_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content"`
	LessonType string `json:"lesson_type" binding:"required,oneof=theory test practice"`
	OrderIndex int    `json:"order_index"`
}

type LessonUpdateDTO struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content"`
	LessonType string `json:"lesson_type" binding:"required,oneof=theory test practice"`
	OrderIndex int    `json:"order_index"`
}

type MediaCreateDTO struct {
	LessonID   uint   `json:"lesson_id" binding:"required"`
	MediaURL   string `json:"media_url" binding:"required"`
	MediaType  string `json:"media_type" binding:"required,oneof=image video document"`
	OrderIndex int    `json:"order_index"`
}

type MediaUpdateDTO struct {
	MediaURL   string `json:"media_url" binding:"required"`
	MediaType  string `json:"media_type" binding:"required,oneof=image video document"`
	OrderIndex int    `json:"order_index"`
}
