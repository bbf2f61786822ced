package engine

import (
	"testing"
	"time"

	"github.com/hntran/Corella/internal/model"
)

func attemptAt(score, total int, at time.Time) model.TestAttempt {
	return model.TestAttempt{Score: score, TotalPoints: total, CompletedAt: &at}
}

func TestAnalyzeAttemptsEmpty(t *testing.T) {
	status := AnalyzeAttempts(nil, 60)
	if status.HasEverPassed || status.AttemptCount != 0 {
		t.Errorf("empty history: %+v", status)
	}
	if status.PassingPercentage != 60 {
		t.Errorf("passing percentage = %d, want 60", status.PassingPercentage)
	}
}

func TestAnalyzeAttemptsPassIsSticky(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	attempts := []model.TestAttempt{
		attemptAt(12, 15, base),                  // 80%, passed
		attemptAt(5, 15, base.Add(time.Hour)),    // 33%, failed, most recent
		attemptAt(9, 15, base.Add(-2*time.Hour)), // 60%, passed, oldest
	}

	status := AnalyzeAttempts(attempts, 60)
	if !status.HasEverPassed {
		t.Error("an earlier pass must survive a later failure")
	}
	if status.CurrentAttemptPassed {
		t.Error("the most recent attempt failed")
	}
	if status.CurrentPercentage != 33 {
		t.Errorf("current percentage = %d, want 33", status.CurrentPercentage)
	}
	if status.BestPercentage != 80 {
		t.Errorf("best percentage = %d, want 80", status.BestPercentage)
	}
	if status.AttemptCount != 3 {
		t.Errorf("attempt count = %d, want 3", status.AttemptCount)
	}
}

func TestAnalyzeAttemptsNilCompletedAtSortsFirst(t *testing.T) {
	done := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	attempts := []model.TestAttempt{
		{Score: 15, TotalPoints: 15},
		attemptAt(5, 15, done),
	}

	status := AnalyzeAttempts(attempts, 60)
	if status.CurrentPercentage != 33 {
		t.Errorf("completed attempt should be current, got %d%%", status.CurrentPercentage)
	}
	if !status.HasEverPassed {
		t.Error("the unfinished perfect attempt still counts toward ever-passed")
	}
}
