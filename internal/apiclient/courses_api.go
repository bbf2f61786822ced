package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hntran/Corella/internal/dto"
	"github.com/hntran/Corella/internal/model"
)

func (c *Client) GetCourse(ctx context.Context, courseID uint) (*model.Course, error) {
	var course model.Course
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/courses/%d", courseID), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// GetCourseWithModules returns the course with its module list (lessons not
// expanded; fetch those per module).
func (c *Client) GetCourseWithModules(ctx context.Context, courseID uint) (*model.Course, error) {
	var course model.Course
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/courses/%d/with-modules", courseID), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) CreateCourse(ctx context.Context, payload dto.CourseCreateDTO) (*model.Course, error) {
	var course model.Course
	if err := c.do(ctx, http.MethodPost, "/courses", payload, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) UpdateCourse(ctx context.Context, courseID uint, payload dto.CourseUpdateDTO) (*model.Course, error) {
	var course model.Course
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/courses/%d", courseID), payload, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) DeleteCourse(ctx context.Context, courseID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/courses/%d", courseID), nil, nil)
}

func (c *Client) ListModulesByCourse(ctx context.Context, courseID uint) ([]model.Module, error) {
	var modules []model.Module
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/modules/course/%d", courseID), nil, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

func (c *Client) GetModuleWithLessons(ctx context.Context, moduleID uint) (*model.Module, error) {
	var module model.Module
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/modules/%d/with-lessons", moduleID), nil, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (c *Client) CreateModule(ctx context.Context, payload dto.ModuleCreateDTO) (*model.Module, error) {
	var module model.Module
	if err := c.do(ctx, http.MethodPost, "/modules", payload, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (c *Client) UpdateModule(ctx context.Context, moduleID uint, payload dto.ModuleUpdateDTO) (*model.Module, error) {
	var module model.Module
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/modules/%d", moduleID), payload, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (c *Client) DeleteModule(ctx context.Context, moduleID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/modules/%d", moduleID), nil, nil)
}

func (c *Client) GetLessonWithMedia(ctx context.Context, lessonID uint) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/lessons/%d/with-media", lessonID), nil, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (c *Client) CreateLesson(ctx context.Context, payload dto.LessonCreateDTO) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := c.do(ctx, http.MethodPost, "/lessons", payload, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (c *Client) UpdateLesson(ctx context.Context, lessonID uint, payload dto.LessonUpdateDTO) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/lessons/%d", lessonID), payload, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (c *Client) DeleteLesson(ctx context.Context, lessonID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/lessons/%d", lessonID), nil, nil)
}

func (c *Client) ListMediaByLesson(ctx context.Context, lessonID uint) ([]model.Media, error) {
	var media []model.Media
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/media/lesson/%d", lessonID), nil, &media); err != nil {
		return nil, err
	}
	return media, nil
}

func (c *Client) CreateMedia(ctx context.Context, payload dto.MediaCreateDTO) (*model.Media, error) {
	var media model.Media
	if err := c.do(ctx, http.MethodPost, "/media", payload, &media); err != nil {
		return nil, err
	}
	return &media, nil
}

func (c *Client) UpdateMedia(ctx context.Context, mediaID uint, payload dto.MediaUpdateDTO) (*model.Media, error) {
	var media model.Media
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/media/%d", mediaID), payload, &media); err != nil {
		return nil, err
	}
	return &media, nil
}

func (c *Client) DeleteMedia(ctx context.Context, mediaID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/media/%d", mediaID), nil, nil)
}
