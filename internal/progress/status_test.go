package progress

import (
	"testing"

	"github.com/hntran/Corella/internal/storage"
)

func TestLoadMissingStatus(t *testing.T) {
	s := NewStatusStore(storage.NewMemoryStore())
	status, err := s.Load(1)
	if err != nil {
		t.Fatal(err)
	}
	if status != nil {
		t.Errorf("got %+v, want nil for an unattempted test", status)
	}
}

func TestRecordFirstAttempt(t *testing.T) {
	s := NewStatusStore(storage.NewMemoryStore())
	status, err := s.Record(1, 33, 5, false)
	if err != nil {
		t.Fatal(err)
	}
	if status.HasEverPassed {
		t.Error("failed first attempt must not mark the test passed")
	}
	if status.BestPercentage != 33 || status.LastPercentage != 33 || status.LastScore != 5 {
		t.Errorf("unexpected record: %+v", status)
	}
	if status.AttemptCount != 1 {
		t.Errorf("attempt count = %d, want 1", status.AttemptCount)
	}
}

func TestRecordPassIsSticky(t *testing.T) {
	s := NewStatusStore(storage.NewMemoryStore())
	if _, err := s.Record(1, 80, 12, true); err != nil {
		t.Fatal(err)
	}
	status, err := s.Record(1, 33, 5, false)
	if err != nil {
		t.Fatal(err)
	}
	if !status.HasEverPassed {
		t.Error("a pass must survive a later failing attempt")
	}
	if status.BestPercentage != 80 {
		t.Errorf("best percentage = %d, want the running maximum 80", status.BestPercentage)
	}
	if status.LastPercentage != 33 || status.LastScore != 5 {
		t.Errorf("last attempt fields should track the newest attempt: %+v", status)
	}
	if status.AttemptCount != 2 {
		t.Errorf("attempt count = %d, want 2", status.AttemptCount)
	}
}

func TestRecordBestOnlyImproves(t *testing.T) {
	s := NewStatusStore(storage.NewMemoryStore())
	s.Record(1, 40, 6, false)
	s.Record(1, 90, 14, true)
	status, err := s.Record(1, 10, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if status.BestPercentage != 90 {
		t.Errorf("best percentage = %d, want 90", status.BestPercentage)
	}
	if status.AttemptCount != 3 {
		t.Errorf("attempt count = %d, want 3", status.AttemptCount)
	}
}

func TestLoadCorruptRecordTreatedAsAbsent(t *testing.T) {
	mem := storage.NewMemoryStore()
	if err := mem.Set("test_result_7", []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	s := NewStatusStore(mem)
	status, err := s.Load(7)
	if err != nil {
		t.Fatal(err)
	}
	if status != nil {
		t.Errorf("corrupt record should read as absent, got %+v", status)
	}

	// The next attempt starts the history over instead of failing.
	status, err = s.Record(7, 50, 5, false)
	if err != nil {
		t.Fatal(err)
	}
	if status.AttemptCount != 1 {
		t.Errorf("attempt count = %d, want 1 after discarding corrupt record", status.AttemptCount)
	}
}

func TestStatusesAreIndependentPerTest(t *testing.T) {
	s := NewStatusStore(storage.NewMemoryStore())
	s.Record(1, 100, 15, true)
	status, err := s.Load(2)
	if err != nil {
		t.Fatal(err)
	}
	if status != nil {
		t.Errorf("test 2 should have no record, got %+v", status)
	}
}
