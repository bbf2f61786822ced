package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hntran/Corella/internal/dto"
	"github.com/hntran/Corella/internal/model"
)

var (
	ErrSaveInFlight = errors.New("a save is already in flight")
	ErrBadIndex     = errors.New("index out of range")
)

// ContentAPI is the slice of the remote API the editor reconciles against.
type ContentAPI interface {
	GetCourseWithModules(ctx context.Context, courseID uint) (*model.Course, error)
	CreateCourse(ctx context.Context, payload dto.CourseCreateDTO) (*model.Course, error)
	UpdateCourse(ctx context.Context, courseID uint, payload dto.CourseUpdateDTO) (*model.Course, error)

	GetModuleWithLessons(ctx context.Context, moduleID uint) (*model.Module, error)
	CreateModule(ctx context.Context, payload dto.ModuleCreateDTO) (*model.Module, error)
	UpdateModule(ctx context.Context, moduleID uint, payload dto.ModuleUpdateDTO) (*model.Module, error)
	DeleteModule(ctx context.Context, moduleID uint) error

	GetLessonWithMedia(ctx context.Context, lessonID uint) (*model.Lesson, error)
	CreateLesson(ctx context.Context, payload dto.LessonCreateDTO) (*model.Lesson, error)
	UpdateLesson(ctx context.Context, lessonID uint, payload dto.LessonUpdateDTO) (*model.Lesson, error)
	DeleteLesson(ctx context.Context, lessonID uint) error

	CreateMedia(ctx context.Context, payload dto.MediaCreateDTO) (*model.Media, error)
	UpdateMedia(ctx context.Context, mediaID uint, payload dto.MediaUpdateDTO) (*model.Media, error)
	DeleteMedia(ctx context.Context, mediaID uint) error
}

// Editor owns the draft tree for one authoring session. Every mutation swaps
// in a fresh snapshot, so copies handed out via Snapshot never alias the
// editor's state. It is driven from a single goroutine.
type Editor struct {
	api   ContentAPI
	draft Draft
	busy  bool
}

// NewCreate starts a create-mode session: the operator supplies the course
// id explicitly via SetCourseIDInput.
func NewCreate(api ContentAPI) *Editor {
	return &Editor{
		api:   api,
		draft: Draft{CreateMode: true, Status: model.CourseDraft},
	}
}

// NewEdit starts an edit-mode session over an existing draft (see Load).
func NewEdit(api ContentAPI, draft Draft) *Editor {
	draft.CreateMode = false
	return &Editor{api: api, draft: draft.clone()}
}

// Snapshot returns an independent copy of the current tree.
func (e *Editor) Snapshot() Draft { return e.draft.clone() }

func (e *Editor) SetTitle(title string)       { e.mutate(func(d *Draft) { d.Title = title }) }
func (e *Editor) SetDescription(desc string)  { e.mutate(func(d *Draft) { d.Description = desc }) }
func (e *Editor) SetPrice(price float64)      { e.mutate(func(d *Draft) { d.Price = price }) }
func (e *Editor) SetAuthorID(id *uint)        { e.mutate(func(d *Draft) { d.AuthorID = id }) }
func (e *Editor) SetCourseIDInput(raw string) { e.mutate(func(d *Draft) { d.CourseIDInput = raw }) }

func (e *Editor) SetStatus(status model.CourseStatus) {
	e.mutate(func(d *Draft) { d.Status = status })
}

// AddModule appends an empty module; its order index is its position at
// creation time.
func (e *Editor) AddModule() {
	e.mutate(func(d *Draft) {
		d.Modules = append(d.Modules, ModuleNode{
			Key:        newKey(),
			OrderIndex: len(d.Modules),
			Expanded:   true,
		})
	})
}

// RemoveModule drops a module from the tree. A module that already exists on
// the server is deleted remotely first; if that call fails the module stays
// in the tree and the error is returned, keeping local and server state
// consistent. Surviving siblings keep their order indexes.
func (e *Editor) RemoveModule(ctx context.Context, index int) error {
	if index < 0 || index >= len(e.draft.Modules) {
		return ErrBadIndex
	}
	if id := e.draft.Modules[index].ID; id != 0 {
		if err := e.api.DeleteModule(ctx, id); err != nil {
			log.Error().Err(err).Uint("moduleID", id).Msg("Failed to delete module, keeping it in the tree")
			return fmt.Errorf("deleting module %d: %w", id, err)
		}
	}
	e.mutate(func(d *Draft) {
		d.Modules = append(d.Modules[:index:index], d.Modules[index+1:]...)
	})
	return nil
}

func (e *Editor) SetModuleTitle(index int, title string) error {
	return e.withModule(index, func(m *ModuleNode) { m.Title = title })
}

func (e *Editor) ToggleModule(index int) error {
	return e.withModule(index, func(m *ModuleNode) { m.Expanded = !m.Expanded })
}

func (e *Editor) AddLesson(moduleIndex int) error {
	return e.withModule(moduleIndex, func(m *ModuleNode) {
		m.Lessons = append(m.Lessons, LessonNode{
			Key:        newKey(),
			LessonType: model.LessonTheory,
			OrderIndex: len(m.Lessons),
			Expanded:   true,
		})
	})
}

// RemoveLesson mirrors RemoveModule: server-persisted lessons are deleted
// remotely before leaving the tree.
func (e *Editor) RemoveLesson(ctx context.Context, moduleIndex, lessonIndex int) error {
	if moduleIndex < 0 || moduleIndex >= len(e.draft.Modules) {
		return ErrBadIndex
	}
	lessons := e.draft.Modules[moduleIndex].Lessons
	if lessonIndex < 0 || lessonIndex >= len(lessons) {
		return ErrBadIndex
	}
	if id := lessons[lessonIndex].ID; id != 0 {
		if err := e.api.DeleteLesson(ctx, id); err != nil {
			log.Error().Err(err).Uint("lessonID", id).Msg("Failed to delete lesson, keeping it in the tree")
			return fmt.Errorf("deleting lesson %d: %w", id, err)
		}
	}
	e.mutate(func(d *Draft) {
		m := &d.Modules[moduleIndex]
		m.Lessons = append(m.Lessons[:lessonIndex:lessonIndex], m.Lessons[lessonIndex+1:]...)
	})
	return nil
}

func (e *Editor) SetLessonTitle(moduleIndex, lessonIndex int, title string) error {
	return e.withLesson(moduleIndex, lessonIndex, func(l *LessonNode) { l.Title = title })
}

func (e *Editor) SetLessonContent(moduleIndex, lessonIndex int, content string) error {
	return e.withLesson(moduleIndex, lessonIndex, func(l *LessonNode) { l.Content = content })
}

func (e *Editor) SetLessonType(moduleIndex, lessonIndex int, lessonType model.LessonType) error {
	return e.withLesson(moduleIndex, lessonIndex, func(l *LessonNode) { l.LessonType = lessonType })
}

func (e *Editor) ToggleLesson(moduleIndex, lessonIndex int) error {
	return e.withLesson(moduleIndex, lessonIndex, func(l *LessonNode) { l.Expanded = !l.Expanded })
}

func (e *Editor) AddMedia(moduleIndex, lessonIndex int) error {
	return e.withLesson(moduleIndex, lessonIndex, func(l *LessonNode) {
		l.Media = append(l.Media, MediaNode{
			Key:        newKey(),
			MediaType:  model.MediaImage,
			OrderIndex: len(l.Media),
		})
	})
}

func (e *Editor) RemoveMedia(ctx context.Context, moduleIndex, lessonIndex, mediaIndex int) error {
	if moduleIndex < 0 || moduleIndex >= len(e.draft.Modules) {
		return ErrBadIndex
	}
	lessons := e.draft.Modules[moduleIndex].Lessons
	if lessonIndex < 0 || lessonIndex >= len(lessons) {
		return ErrBadIndex
	}
	media := lessons[lessonIndex].Media
	if mediaIndex < 0 || mediaIndex >= len(media) {
		return ErrBadIndex
	}
	if id := media[mediaIndex].ID; id != 0 {
		if err := e.api.DeleteMedia(ctx, id); err != nil {
			log.Error().Err(err).Uint("mediaID", id).Msg("Failed to delete media, keeping it in the tree")
			return fmt.Errorf("deleting media %d: %w", id, err)
		}
	}
	e.mutate(func(d *Draft) {
		l := &d.Modules[moduleIndex].Lessons[lessonIndex]
		l.Media = append(l.Media[:mediaIndex:mediaIndex], l.Media[mediaIndex+1:]...)
	})
	return nil
}

func (e *Editor) SetMediaURL(moduleIndex, lessonIndex, mediaIndex int, url string) error {
	return e.withMedia(moduleIndex, lessonIndex, mediaIndex, func(m *MediaNode) { m.MediaURL = url })
}

func (e *Editor) SetMediaType(moduleIndex, lessonIndex, mediaIndex int, mediaType model.MediaType) error {
	return e.withMedia(moduleIndex, lessonIndex, mediaIndex, func(m *MediaNode) { m.MediaType = mediaType })
}

func (e *Editor) mutate(fn func(*Draft)) {
	next := e.draft.clone()
	fn(&next)
	e.draft = next
}

func (e *Editor) withModule(index int, fn func(*ModuleNode)) error {
	if index < 0 || index >= len(e.draft.Modules) {
		return ErrBadIndex
	}
	e.mutate(func(d *Draft) { fn(&d.Modules[index]) })
	return nil
}

func (e *Editor) withLesson(moduleIndex, lessonIndex int, fn func(*LessonNode)) error {
	if moduleIndex < 0 || moduleIndex >= len(e.draft.Modules) {
		return ErrBadIndex
	}
	if lessonIndex < 0 || lessonIndex >= len(e.draft.Modules[moduleIndex].Lessons) {
		return ErrBadIndex
	}
	e.mutate(func(d *Draft) { fn(&d.Modules[moduleIndex].Lessons[lessonIndex]) })
	return nil
}

func (e *Editor) withMedia(moduleIndex, lessonIndex, mediaIndex int, fn func(*MediaNode)) error {
	if moduleIndex < 0 || moduleIndex >= len(e.draft.Modules) {
		return ErrBadIndex
	}
	if lessonIndex < 0 || lessonIndex >= len(e.draft.Modules[moduleIndex].Lessons) {
		return ErrBadIndex
	}
	if mediaIndex < 0 || mediaIndex >= len(e.draft.Modules[moduleIndex].Lessons[lessonIndex].Media) {
		return ErrBadIndex
	}
	e.mutate(func(d *Draft) { fn(&d.Modules[moduleIndex].Lessons[lessonIndex].Media[mediaIndex]) })
	return nil
}
