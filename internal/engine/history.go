package engine

import (
	"sort"

	"github.com/hntran/Corella/internal/model"
)

// PassStatus summarizes a server-side attempt history for one test. The test
// counts as passed when any attempt passed; the most recent attempt supplies
// the "current" numbers.
type PassStatus struct {
	HasEverPassed        bool
	CurrentAttemptPassed bool
	CurrentPercentage    int
	CurrentScore         int
	TotalPoints          int
	PassingPercentage    int
	BestPercentage       int
	AttemptCount         int
}

// AnalyzeAttempts folds an attempt history into a PassStatus using the
// canonical percentage/pass rules.
func AnalyzeAttempts(attempts []model.TestAttempt, passingScore int) PassStatus {
	status := PassStatus{PassingPercentage: passingScore}
	if len(attempts) == 0 {
		return status
	}

	sorted := make([]model.TestAttempt, len(attempts))
	copy(sorted, attempts)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i].CompletedAt, sorted[j].CompletedAt
		if ti == nil || tj == nil {
			return tj != nil
		}
		return ti.Before(*tj)
	})

	for _, attempt := range sorted {
		pct := Percentage(attempt.Score, attempt.TotalPoints)
		if Passed(pct, passingScore) {
			status.HasEverPassed = true
		}
		if pct > status.BestPercentage {
			status.BestPercentage = pct
		}
	}

	last := sorted[len(sorted)-1]
	status.CurrentPercentage = Percentage(last.Score, last.TotalPoints)
	status.CurrentAttemptPassed = Passed(status.CurrentPercentage, passingScore)
	status.CurrentScore = last.Score
	status.TotalPoints = last.TotalPoints
	status.AttemptCount = len(attempts)
	return status
}
