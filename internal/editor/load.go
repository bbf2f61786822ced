package editor

import (
	"context"
	"fmt"
	"sync"

	"github.com/hntran/Corella/internal/model"
)

// Load hydrates an edit-mode editor from the server. The course-with-modules
// fetch comes first; module and lesson expansions have no cross-sibling
// dependency, so they fan out concurrently and join before the draft is
// assembled.
func Load(ctx context.Context, api ContentAPI, courseID uint) (*Editor, error) {
	course, err := api.GetCourseWithModules(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("fetching course %d: %w", courseID, err)
	}

	type moduleResult struct {
		index int
		node  ModuleNode
		err   error
	}

	results := make(chan moduleResult, len(course.Modules))
	var wg sync.WaitGroup
	for i, m := range course.Modules {
		wg.Add(1)
		go func(index int, mod model.Module) {
			defer wg.Done()
			node, err := hydrateModule(ctx, api, mod)
			results <- moduleResult{index: index, node: node, err: err}
		}(i, m)
	}
	wg.Wait()
	close(results)

	modules := make([]ModuleNode, len(course.Modules))
	for r := range results {
		if r.err != nil {
			return nil, r.err
		}
		modules[r.index] = r.node
	}

	return &Editor{api: api, draft: Draft{
		CourseID:    course.ID,
		Title:       course.Title,
		Description: course.Description,
		AuthorID:    course.AuthorID,
		Status:      course.Status,
		Price:       course.Price,
		Modules:     modules,
	}}, nil
}

func hydrateModule(ctx context.Context, api ContentAPI, mod model.Module) (ModuleNode, error) {
	full, err := api.GetModuleWithLessons(ctx, mod.ID)
	if err != nil {
		return ModuleNode{}, fmt.Errorf("fetching module %d: %w", mod.ID, err)
	}

	lessons := make([]LessonNode, len(full.Lessons))
	errs := make(chan error, len(full.Lessons))
	var wg sync.WaitGroup
	for i, l := range full.Lessons {
		wg.Add(1)
		go func(index int, les model.Lesson) {
			defer wg.Done()
			withMedia, err := api.GetLessonWithMedia(ctx, les.ID)
			if err != nil {
				errs <- fmt.Errorf("fetching lesson %d: %w", les.ID, err)
				return
			}
			lessons[index] = lessonNodeFromModel(*withMedia)
		}(i, l)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		return ModuleNode{}, err
	}

	node := moduleNodeFromModel(*full)
	node.Lessons = lessons
	return node, nil
}
