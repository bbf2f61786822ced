package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/hntran/Corella/internal/model"
)

func seededAPI() *fakeContentAPI {
	api := newFakeAPI()
	api.course = &model.Course{
		ID:    1,
		Title: "Loaded Course",
		Modules: []model.Module{
			{ID: 10, Title: "M1", OrderIndex: 0},
			{ID: 11, Title: "M2", OrderIndex: 1},
		},
	}
	api.modules[10] = &model.Module{ID: 10, Title: "M1", Lessons: []model.Lesson{{ID: 20, Title: "L1"}}}
	api.modules[11] = &model.Module{ID: 11, Title: "M2"}
	api.lessons[20] = &model.Lesson{
		ID: 20, Title: "L1", LessonType: model.LessonTheory,
		Media: []model.Media{{ID: 30, MediaURL: "https://cdn/x.png", MediaType: model.MediaImage}},
	}
	return api
}

func TestLoadHydratesFullTree(t *testing.T) {
	api := seededAPI()
	e, err := Load(context.Background(), api, 1)
	if err != nil {
		t.Fatal(err)
	}

	snap := e.Snapshot()
	if snap.CreateMode {
		t.Error("a loaded course is an edit-mode session")
	}
	if snap.CourseID != 1 || snap.Title != "Loaded Course" {
		t.Errorf("course fields: %+v", snap)
	}
	if len(snap.Modules) != 2 {
		t.Fatalf("got %d modules, want 2", len(snap.Modules))
	}
	// Fan-out must not scramble module order.
	if snap.Modules[0].ID != 10 || snap.Modules[1].ID != 11 {
		t.Errorf("module order: %d, %d, want 10, 11", snap.Modules[0].ID, snap.Modules[1].ID)
	}
	if len(snap.Modules[0].Lessons) != 1 || snap.Modules[0].Lessons[0].ID != 20 {
		t.Fatalf("lessons not hydrated: %+v", snap.Modules[0])
	}
	media := snap.Modules[0].Lessons[0].Media
	if len(media) != 1 || media[0].MediaURL != "https://cdn/x.png" {
		t.Errorf("media not hydrated: %+v", media)
	}
	if snap.Modules[0].Key == "" {
		t.Error("loaded nodes still need synthetic keys")
	}
}

func TestLoadCourseFetchFailure(t *testing.T) {
	api := seededAPI()
	api.fail["GetCourseWithModules:1"] = errors.New("not found")
	if _, err := Load(context.Background(), api, 1); err == nil {
		t.Error("expected the course fetch failure to surface")
	}
}

func TestLoadLessonFetchFailure(t *testing.T) {
	api := seededAPI()
	api.fail["GetLessonWithMedia:20"] = errors.New("server error")
	if _, err := Load(context.Background(), api, 1); err == nil {
		t.Error("expected the lesson fetch failure to surface")
	}
}
