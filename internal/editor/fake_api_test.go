package editor

import (
	"context"
	"fmt"
	"sync"

	"github.com/hntran/Corella/internal/dto"
	"github.com/hntran/Corella/internal/model"
)

// fakeContentAPI records every call in order and can be told to fail
// specific operations, keyed by "Op:identifier". Load hits it from several
// goroutines, so the recorder takes a lock.
type fakeContentAPI struct {
	mu     sync.Mutex
	nextID uint
	calls  []string
	fail   map[string]error

	course  *model.Course
	modules map[uint]*model.Module
	lessons map[uint]*model.Lesson
}

func newFakeAPI() *fakeContentAPI {
	return &fakeContentAPI{
		nextID:  100,
		fail:    make(map[string]error),
		modules: make(map[uint]*model.Module),
		lessons: make(map[uint]*model.Lesson),
	}
}

func (f *fakeContentAPI) record(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op)
	return f.fail[op]
}

func (f *fakeContentAPI) alloc() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	return f.nextID
}

func (f *fakeContentAPI) countCalls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (f *fakeContentAPI) GetCourseWithModules(ctx context.Context, courseID uint) (*model.Course, error) {
	if err := f.record(fmt.Sprintf("GetCourseWithModules:%d", courseID)); err != nil {
		return nil, err
	}
	return f.course, nil
}

func (f *fakeContentAPI) CreateCourse(ctx context.Context, payload dto.CourseCreateDTO) (*model.Course, error) {
	if err := f.record("CreateCourse:" + payload.Title); err != nil {
		return nil, err
	}
	return &model.Course{ID: payload.ID, Title: payload.Title}, nil
}

func (f *fakeContentAPI) UpdateCourse(ctx context.Context, courseID uint, payload dto.CourseUpdateDTO) (*model.Course, error) {
	if err := f.record("UpdateCourse:" + payload.Title); err != nil {
		return nil, err
	}
	return &model.Course{ID: courseID, Title: payload.Title}, nil
}

func (f *fakeContentAPI) GetModuleWithLessons(ctx context.Context, moduleID uint) (*model.Module, error) {
	if err := f.record(fmt.Sprintf("GetModuleWithLessons:%d", moduleID)); err != nil {
		return nil, err
	}
	return f.modules[moduleID], nil
}

func (f *fakeContentAPI) CreateModule(ctx context.Context, payload dto.ModuleCreateDTO) (*model.Module, error) {
	if err := f.record("CreateModule:" + payload.Title); err != nil {
		return nil, err
	}
	return &model.Module{ID: f.alloc(), CourseID: payload.CourseID, Title: payload.Title, OrderIndex: payload.OrderIndex}, nil
}

func (f *fakeContentAPI) UpdateModule(ctx context.Context, moduleID uint, payload dto.ModuleUpdateDTO) (*model.Module, error) {
	if err := f.record("UpdateModule:" + payload.Title); err != nil {
		return nil, err
	}
	return &model.Module{ID: moduleID, Title: payload.Title, OrderIndex: payload.OrderIndex}, nil
}

func (f *fakeContentAPI) DeleteModule(ctx context.Context, moduleID uint) error {
	return f.record(fmt.Sprintf("DeleteModule:%d", moduleID))
}

func (f *fakeContentAPI) GetLessonWithMedia(ctx context.Context, lessonID uint) (*model.Lesson, error) {
	if err := f.record(fmt.Sprintf("GetLessonWithMedia:%d", lessonID)); err != nil {
		return nil, err
	}
	return f.lessons[lessonID], nil
}

func (f *fakeContentAPI) CreateLesson(ctx context.Context, payload dto.LessonCreateDTO) (*model.Lesson, error) {
	if err := f.record("CreateLesson:" + payload.Title); err != nil {
		return nil, err
	}
	return &model.Lesson{ID: f.alloc(), ModuleID: payload.ModuleID, Title: payload.Title}, nil
}

func (f *fakeContentAPI) UpdateLesson(ctx context.Context, lessonID uint, payload dto.LessonUpdateDTO) (*model.Lesson, error) {
	if err := f.record("UpdateLesson:" + payload.Title); err != nil {
		return nil, err
	}
	return &model.Lesson{ID: lessonID, Title: payload.Title}, nil
}

func (f *fakeContentAPI) DeleteLesson(ctx context.Context, lessonID uint) error {
	return f.record(fmt.Sprintf("DeleteLesson:%d", lessonID))
}

func (f *fakeContentAPI) CreateMedia(ctx context.Context, payload dto.MediaCreateDTO) (*model.Media, error) {
	if err := f.record("CreateMedia:" + payload.MediaURL); err != nil {
		return nil, err
	}
	return &model.Media{ID: f.alloc(), LessonID: payload.LessonID, MediaURL: payload.MediaURL}, nil
}

func (f *fakeContentAPI) UpdateMedia(ctx context.Context, mediaID uint, payload dto.MediaUpdateDTO) (*model.Media, error) {
	if err := f.record("UpdateMedia:" + payload.MediaURL); err != nil {
		return nil, err
	}
	return &model.Media{ID: mediaID, MediaURL: payload.MediaURL}, nil
}

func (f *fakeContentAPI) DeleteMedia(ctx context.Context, mediaID uint) error {
	return f.record(fmt.Sprintf("DeleteMedia:%d", mediaID))
}
