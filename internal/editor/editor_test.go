package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/hntran/Corella/internal/model"
)

func TestSnapshotIsIsolated(t *testing.T) {
	e := NewCreate(newFakeAPI())
	e.SetTitle("Original")
	e.AddModule()
	e.SetModuleTitle(0, "Module A")

	snap := e.Snapshot()
	snap.Title = "Mutated"
	snap.Modules[0].Title = "Mutated module"

	current := e.Snapshot()
	if current.Title != "Original" || current.Modules[0].Title != "Module A" {
		t.Errorf("editor state leaked through a snapshot: %+v", current)
	}
}

func TestAddModuleAssignsOrderIndexByPosition(t *testing.T) {
	e := NewCreate(newFakeAPI())
	e.AddModule()
	e.AddModule()
	e.AddModule()

	snap := e.Snapshot()
	for i, m := range snap.Modules {
		if m.OrderIndex != i {
			t.Errorf("module %d has order index %d", i, m.OrderIndex)
		}
		if m.Key == "" {
			t.Errorf("module %d is missing a synthetic key", i)
		}
		if m.ID != 0 {
			t.Errorf("new module %d should have no server id", i)
		}
	}
}

func TestRemoveModuleKeepsSiblingOrderIndexes(t *testing.T) {
	e := NewCreate(newFakeAPI())
	e.AddModule()
	e.AddModule()
	e.AddModule()

	if err := e.RemoveModule(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	snap := e.Snapshot()
	if len(snap.Modules) != 2 {
		t.Fatalf("got %d modules, want 2", len(snap.Modules))
	}
	// Indexes stay sparse: 0 and 2 survive, nothing renumbers.
	if snap.Modules[0].OrderIndex != 0 || snap.Modules[1].OrderIndex != 2 {
		t.Errorf("order indexes = %d, %d, want 0, 2",
			snap.Modules[0].OrderIndex, snap.Modules[1].OrderIndex)
	}
}

func TestRemoveUnsavedModuleSkipsRemoteDelete(t *testing.T) {
	api := newFakeAPI()
	e := NewCreate(api)
	e.AddModule()

	if err := e.RemoveModule(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if len(api.calls) != 0 {
		t.Errorf("unexpected remote calls for an unsaved module: %v", api.calls)
	}
}

func TestRemovePersistedModuleDeletesRemotely(t *testing.T) {
	api := newFakeAPI()
	e := NewEdit(api, Draft{
		CourseID: 1,
		Title:    "Course",
		Modules:  []ModuleNode{{Key: "k1", ID: 55, Title: "Persisted"}},
	})

	if err := e.RemoveModule(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if api.countCalls("DeleteModule:55") != 1 {
		t.Errorf("expected one remote delete, calls: %v", api.calls)
	}
	if len(e.Snapshot().Modules) != 0 {
		t.Error("module should be gone from the tree")
	}
}

func TestRemoteDeleteFailureKeepsNode(t *testing.T) {
	api := newFakeAPI()
	api.fail["DeleteLesson:77"] = errors.New("server error")
	e := NewEdit(api, Draft{
		CourseID: 1,
		Title:    "Course",
		Modules: []ModuleNode{{
			Key: "k1", ID: 55, Title: "M",
			Lessons: []LessonNode{{Key: "k2", ID: 77, Title: "L"}},
		}},
	})

	err := e.RemoveLesson(context.Background(), 0, 0)
	if err == nil {
		t.Fatal("expected the delete failure to surface")
	}
	if len(e.Snapshot().Modules[0].Lessons) != 1 {
		t.Error("lesson must stay in the tree when the remote delete fails")
	}
}

func TestRemoveBadIndex(t *testing.T) {
	e := NewCreate(newFakeAPI())
	if err := e.RemoveModule(context.Background(), 0); !errors.Is(err, ErrBadIndex) {
		t.Errorf("got %v, want ErrBadIndex", err)
	}
	if err := e.SetLessonTitle(0, 0, "x"); !errors.Is(err, ErrBadIndex) {
		t.Errorf("got %v, want ErrBadIndex", err)
	}
	if err := e.SetMediaURL(-1, 0, 0, "x"); !errors.Is(err, ErrBadIndex) {
		t.Errorf("got %v, want ErrBadIndex", err)
	}
}

func TestToggleExpansion(t *testing.T) {
	e := NewCreate(newFakeAPI())
	e.AddModule()
	if !e.Snapshot().Modules[0].Expanded {
		t.Fatal("new modules start expanded")
	}
	e.ToggleModule(0)
	if e.Snapshot().Modules[0].Expanded {
		t.Error("toggle should collapse the module")
	}
	e.ToggleModule(0)
	if !e.Snapshot().Modules[0].Expanded {
		t.Error("toggle twice should restore expansion")
	}
}

func TestNestedNodeDefaults(t *testing.T) {
	e := NewCreate(newFakeAPI())
	e.AddModule()
	e.AddLesson(0)
	e.AddMedia(0, 0)

	snap := e.Snapshot()
	l := snap.Modules[0].Lessons[0]
	if l.LessonType != model.LessonTheory {
		t.Errorf("lesson type = %s, want theory default", l.LessonType)
	}
	if l.Media[0].MediaType != model.MediaImage {
		t.Errorf("media type = %s, want image default", l.Media[0].MediaType)
	}
}

func TestNewEditForcesEditMode(t *testing.T) {
	e := NewEdit(newFakeAPI(), Draft{CourseID: 9, Title: "T", CreateMode: true})
	if e.Snapshot().CreateMode {
		t.Error("NewEdit must clear create mode")
	}
}
