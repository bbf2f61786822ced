package editor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/hntran/Corella/internal/dto"
)

// Save reconciles the draft against the server: the course is upserted
// first, then each node is created or updated depending on whether it
// already carries a server id, parents strictly before children so created
// ids can flow down. The walk is not transactional — a failed parent write
// skips that parent's subtree, siblings continue, and all node failures come
// back joined into one error. Ids returned by successful creates are written
// into the draft, so retrying a partially-failed save issues updates for the
// nodes that made it and creates for the ones that did not.
func (e *Editor) Save(ctx context.Context) error {
	if e.busy {
		return ErrSaveInFlight
	}
	e.busy = true
	defer func() { e.busy = false }()

	if errs := e.Validate(); len(errs) > 0 {
		return errs
	}

	d := e.draft.clone()
	courseID, err := e.upsertCourse(ctx, &d)
	if err != nil {
		// Without a course id nothing below can attach; abort the save.
		return err
	}

	var failures []error
	for mi := range d.Modules {
		m := &d.Modules[mi]
		if m.ID == 0 {
			payload := dto.ModuleCreateDTO{CourseID: courseID}
			copier.Copy(&payload, m)
			created, err := e.api.CreateModule(ctx, payload)
			if err != nil {
				failures = append(failures, fmt.Errorf("module %q: %w", m.Title, err))
				continue
			}
			m.ID = created.ID
		} else {
			var payload dto.ModuleUpdateDTO
			copier.Copy(&payload, m)
			if _, err := e.api.UpdateModule(ctx, m.ID, payload); err != nil {
				failures = append(failures, fmt.Errorf("module %q: %w", m.Title, err))
				continue
			}
		}
		failures = append(failures, e.saveLessons(ctx, m)...)
	}

	e.draft = d
	if len(failures) > 0 {
		log.Error().Int("failed_nodes", len(failures)).Uint("courseID", courseID).Msg("Course save completed with failures")
		return errors.Join(failures...)
	}
	return nil
}

func (e *Editor) upsertCourse(ctx context.Context, d *Draft) (uint, error) {
	if !d.CreateMode {
		payload := dto.CourseUpdateDTO{
			Title:       d.Title,
			Description: d.Description,
			AuthorID:    d.AuthorID,
			Status:      string(d.Status),
			Price:       d.Price,
		}
		if _, err := e.api.UpdateCourse(ctx, d.CourseID, payload); err != nil {
			return 0, fmt.Errorf("updating course %d: %w", d.CourseID, err)
		}
		return d.CourseID, nil
	}

	chosenID, _ := strconv.ParseUint(strings.TrimSpace(d.CourseIDInput), 10, 64)
	payload := dto.CourseCreateDTO{
		ID:          uint(chosenID),
		Title:       d.Title,
		Description: d.Description,
		AuthorID:    d.AuthorID,
		Status:      string(d.Status),
		Price:       d.Price,
	}
	created, err := e.api.CreateCourse(ctx, payload)
	if err != nil {
		return 0, fmt.Errorf("creating course: %w", err)
	}
	d.CourseID = created.ID
	d.CreateMode = false
	return created.ID, nil
}

func (e *Editor) saveLessons(ctx context.Context, m *ModuleNode) []error {
	var failures []error
	for li := range m.Lessons {
		l := &m.Lessons[li]
		if l.ID == 0 {
			payload := dto.LessonCreateDTO{ModuleID: m.ID, LessonType: string(l.LessonType)}
			copier.Copy(&payload, l)
			payload.LessonType = string(l.LessonType)
			created, err := e.api.CreateLesson(ctx, payload)
			if err != nil {
				failures = append(failures, fmt.Errorf("lesson %q: %w", l.Title, err))
				continue
			}
			l.ID = created.ID
		} else {
			payload := dto.LessonUpdateDTO{LessonType: string(l.LessonType)}
			copier.Copy(&payload, l)
			payload.LessonType = string(l.LessonType)
			if _, err := e.api.UpdateLesson(ctx, l.ID, payload); err != nil {
				failures = append(failures, fmt.Errorf("lesson %q: %w", l.Title, err))
				continue
			}
		}
		failures = append(failures, e.saveMedia(ctx, l)...)
	}
	return failures
}

func (e *Editor) saveMedia(ctx context.Context, l *LessonNode) []error {
	var failures []error
	for xi := range l.Media {
		x := &l.Media[xi]
		if x.ID == 0 {
			created, err := e.api.CreateMedia(ctx, dto.MediaCreateDTO{
				LessonID:   l.ID,
				MediaURL:   x.MediaURL,
				MediaType:  string(x.MediaType),
				OrderIndex: x.OrderIndex,
			})
			if err != nil {
				failures = append(failures, fmt.Errorf("media %q: %w", x.MediaURL, err))
				continue
			}
			x.ID = created.ID
		} else {
			_, err := e.api.UpdateMedia(ctx, x.ID, dto.MediaUpdateDTO{
				MediaURL:   x.MediaURL,
				MediaType:  string(x.MediaType),
				OrderIndex: x.OrderIndex,
			})
			if err != nil {
				failures = append(failures, fmt.Errorf("media %q: %w", x.MediaURL, err))
			}
		}
	}
	return failures
}
