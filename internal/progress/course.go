package progress

import (
	"encoding/json"
	"fmt"

	"github.com/hntran/Corella/internal/storage"
)

// CourseProgress tracks lesson completion, the resume position, and the
// enrollment marker for a course, all keyed in the same store the test
// statuses live in.
type CourseProgress struct {
	store storage.Store
}

func NewCourseProgress(store storage.Store) *CourseProgress {
	return &CourseProgress{store: store}
}

type resumePoint struct {
	ModuleIndex int  `json:"module_index"`
	LessonID    uint `json:"lesson_id"`
}

func progressKey(courseID uint) string   { return fmt.Sprintf("course_%d_progress", courseID) }
func lastLessonKey(courseID uint) string { return fmt.Sprintf("course_%d_lastLesson", courseID) }
func lastModuleKey(courseID uint) string { return fmt.Sprintf("course_%d_lastModule", courseID) }
func paidKey(courseID uint) string       { return fmt.Sprintf("course_paid_%d", courseID) }

// CompletedLessons returns the ids of lessons the student has finished.
func (p *CourseProgress) CompletedLessons(courseID uint) ([]uint, error) {
	raw, ok, err := p.store.Get(progressKey(courseID))
	if err != nil || !ok {
		return nil, err
	}
	var ids []uint
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, nil
	}
	return ids, nil
}

// MarkLessonCompleted appends a lesson id to the completion list if absent.
func (p *CourseProgress) MarkLessonCompleted(courseID, lessonID uint) error {
	ids, err := p.CompletedLessons(courseID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == lessonID {
			return nil
		}
	}
	ids = append(ids, lessonID)
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return p.store.Set(progressKey(courseID), raw)
}

// SaveResume records the last viewed position for the course.
func (p *CourseProgress) SaveResume(courseID uint, moduleIndex int, lessonID uint) error {
	rawLesson, err := json.Marshal(lessonID)
	if err != nil {
		return err
	}
	if err := p.store.Set(lastLessonKey(courseID), rawLesson); err != nil {
		return err
	}
	rawModule, err := json.Marshal(moduleIndex)
	if err != nil {
		return err
	}
	return p.store.Set(lastModuleKey(courseID), rawModule)
}

// Resume returns the last viewed position; ok is false when either marker is
// missing.
func (p *CourseProgress) Resume(courseID uint) (moduleIndex int, lessonID uint, ok bool, err error) {
	rawLesson, okLesson, err := p.store.Get(lastLessonKey(courseID))
	if err != nil || !okLesson {
		return 0, 0, false, err
	}
	rawModule, okModule, err := p.store.Get(lastModuleKey(courseID))
	if err != nil || !okModule {
		return 0, 0, false, err
	}
	var point resumePoint
	if err := json.Unmarshal(rawLesson, &point.LessonID); err != nil {
		return 0, 0, false, nil
	}
	if err := json.Unmarshal(rawModule, &point.ModuleIndex); err != nil {
		return 0, 0, false, nil
	}
	return point.ModuleIndex, point.LessonID, true, nil
}

// MarkPaid sets the enrollment marker consumed by the access gate.
func (p *CourseProgress) MarkPaid(courseID uint) error {
	return p.store.Set(paidKey(courseID), []byte("true"))
}

func (p *CourseProgress) IsPaid(courseID uint) (bool, error) {
	raw, ok, err := p.store.Get(paidKey(courseID))
	if err != nil || !ok {
		return false, err
	}
	return string(raw) == "true", nil
}
