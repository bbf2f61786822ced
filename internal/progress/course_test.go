package progress

import (
	"testing"

	"github.com/hntran/Corella/internal/storage"
)

func TestMarkLessonCompletedIsIdempotent(t *testing.T) {
	p := NewCourseProgress(storage.NewMemoryStore())

	for i := 0; i < 3; i++ {
		if err := p.MarkLessonCompleted(1, 42); err != nil {
			t.Fatal(err)
		}
	}
	if err := p.MarkLessonCompleted(1, 43); err != nil {
		t.Fatal(err)
	}

	ids, err := p.CompletedLessons(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != 42 || ids[1] != 43 {
		t.Errorf("completed lessons = %v, want [42 43]", ids)
	}
}

func TestResumeRoundTrip(t *testing.T) {
	p := NewCourseProgress(storage.NewMemoryStore())

	if _, _, ok, err := p.Resume(1); err != nil || ok {
		t.Fatalf("fresh course: ok=%v err=%v, want no resume point", ok, err)
	}

	if err := p.SaveResume(1, 2, 77); err != nil {
		t.Fatal(err)
	}
	moduleIndex, lessonID, ok, err := p.Resume(1)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || moduleIndex != 2 || lessonID != 77 {
		t.Errorf("resume = (%d, %d, %v), want (2, 77, true)", moduleIndex, lessonID, ok)
	}
}

func TestPaidMarker(t *testing.T) {
	p := NewCourseProgress(storage.NewMemoryStore())

	paid, err := p.IsPaid(5)
	if err != nil {
		t.Fatal(err)
	}
	if paid {
		t.Error("course should not be paid before MarkPaid")
	}

	if err := p.MarkPaid(5); err != nil {
		t.Fatal(err)
	}
	paid, err = p.IsPaid(5)
	if err != nil {
		t.Fatal(err)
	}
	if !paid {
		t.Error("course should be paid after MarkPaid")
	}

	// Other courses are unaffected.
	if paid, _ := p.IsPaid(6); paid {
		t.Error("paid marker leaked across courses")
	}
}
