package stubserver

import (
	"sort"
	"sync"
	"time"

	"github.com/hntran/Corella/internal/model"
)

// Store is the in-memory backing state of the stub API. Collections are flat
// maps keyed by id; the nested read shapes (with-questions, with-modules,
// with-lessons, with-media) are assembled on demand.
type Store struct {
	mu     sync.RWMutex
	nextID uint

	tests     map[uint]*model.Test
	questions map[uint]*model.Question
	options   map[uint]*model.Option
	courses   map[uint]*model.Course
	modules   map[uint]*model.Module
	lessons   map[uint]*model.Lesson
	media     map[uint]*model.Media
	attempts  map[uint][]model.TestAttempt
}

func NewStore() *Store {
	return &Store{
		nextID:    1000,
		tests:     make(map[uint]*model.Test),
		questions: make(map[uint]*model.Question),
		options:   make(map[uint]*model.Option),
		courses:   make(map[uint]*model.Course),
		modules:   make(map[uint]*model.Module),
		lessons:   make(map[uint]*model.Lesson),
		media:     make(map[uint]*model.Media),
		attempts:  make(map[uint][]model.TestAttempt),
	}
}

// allocID assumes the caller holds the write lock.
func (s *Store) allocID() uint {
	s.nextID++
	return s.nextID
}

// SeedTest stores a test, assigning ids to the test, its questions and
// options wherever they are zero, and returns the stored copy.
func (s *Store) SeedTest(t model.Test) model.Test {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == 0 {
		t.ID = s.allocID()
	}
	t.CreatedAt = time.Now()
	stored := t
	stored.Questions = nil
	s.tests[t.ID] = &stored

	for qi := range t.Questions {
		q := t.Questions[qi]
		if q.ID == 0 {
			q.ID = s.allocID()
		}
		q.TestID = t.ID
		storedQ := q
		storedQ.Options = nil
		s.questions[q.ID] = &storedQ

		for oi := range q.Options {
			o := q.Options[oi]
			if o.ID == 0 {
				o.ID = s.allocID()
			}
			o.QuestionID = q.ID
			s.options[o.ID] = &o
		}
	}
	return s.assembleTestLocked(t.ID)
}

// SeedCourse stores a fully nested course, assigning missing ids at every
// level, and returns the stored copy.
func (s *Store) SeedCourse(c model.Course) model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == 0 {
		c.ID = s.allocID()
	}
	stored := c
	stored.Modules = nil
	s.courses[c.ID] = &stored

	for _, m := range c.Modules {
		if m.ID == 0 {
			m.ID = s.allocID()
		}
		m.CourseID = c.ID
		lessons := m.Lessons
		m.Lessons = nil
		storedM := m
		s.modules[m.ID] = &storedM

		for _, l := range lessons {
			if l.ID == 0 {
				l.ID = s.allocID()
			}
			l.ModuleID = m.ID
			media := l.Media
			l.Media = nil
			storedL := l
			s.lessons[l.ID] = &storedL

			for _, x := range media {
				if x.ID == 0 {
					x.ID = s.allocID()
				}
				x.LessonID = l.ID
				storedX := x
				s.media[x.ID] = &storedX
			}
		}
	}
	return s.assembleCourseLocked(c.ID)
}

func (s *Store) deleteModuleLocked(moduleID uint) {
	for _, l := range s.lessonsByModuleLocked(moduleID) {
		s.deleteLessonLocked(l.ID)
	}
	delete(s.modules, moduleID)
}

func (s *Store) deleteLessonLocked(lessonID uint) {
	for _, x := range s.mediaByLessonLocked(lessonID) {
		delete(s.media, x.ID)
	}
	delete(s.lessons, lessonID)
}

func (s *Store) assembleTestLocked(testID uint) model.Test {
	t := *s.tests[testID]
	for _, q := range s.questions {
		if q.TestID != testID {
			continue
		}
		qc := *q
		for _, o := range s.options {
			if o.QuestionID == qc.ID {
				qc.Options = append(qc.Options, *o)
			}
		}
		sort.Slice(qc.Options, func(i, j int) bool { return qc.Options[i].ID < qc.Options[j].ID })
		t.Questions = append(t.Questions, qc)
	}
	sort.Slice(t.Questions, func(i, j int) bool {
		if t.Questions[i].OrderIndex != t.Questions[j].OrderIndex {
			return t.Questions[i].OrderIndex < t.Questions[j].OrderIndex
		}
		return t.Questions[i].ID < t.Questions[j].ID
	})
	return t
}

func (s *Store) assembleCourseLocked(courseID uint) model.Course {
	c := *s.courses[courseID]
	c.Modules = s.modulesByCourseLocked(courseID)
	return c
}

func (s *Store) modulesByCourseLocked(courseID uint) []model.Module {
	var modules []model.Module
	for _, m := range s.modules {
		if m.CourseID == courseID {
			modules = append(modules, *m)
		}
	}
	sort.Slice(modules, func(i, j int) bool {
		if modules[i].OrderIndex != modules[j].OrderIndex {
			return modules[i].OrderIndex < modules[j].OrderIndex
		}
		return modules[i].ID < modules[j].ID
	})
	return modules
}

func (s *Store) lessonsByModuleLocked(moduleID uint) []model.Lesson {
	var lessons []model.Lesson
	for _, l := range s.lessons {
		if l.ModuleID == moduleID {
			lessons = append(lessons, *l)
		}
	}
	sort.Slice(lessons, func(i, j int) bool {
		if lessons[i].OrderIndex != lessons[j].OrderIndex {
			return lessons[i].OrderIndex < lessons[j].OrderIndex
		}
		return lessons[i].ID < lessons[j].ID
	})
	return lessons
}

func (s *Store) mediaByLessonLocked(lessonID uint) []model.Media {
	var media []model.Media
	for _, x := range s.media {
		if x.LessonID == lessonID {
			media = append(media, *x)
		}
	}
	sort.Slice(media, func(i, j int) bool {
		if media[i].OrderIndex != media[j].OrderIndex {
			return media[i].OrderIndex < media[j].OrderIndex
		}
		return media[i].ID < media[j].ID
	})
	return media
}
