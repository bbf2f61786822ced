package engine

import (
	"math"

	"github.com/hntran/Corella/internal/model"
)

// This file is the single source of truth for the scoring rule. The remote
// scorer and the local fallback must agree bit-for-bit, so both the stub
// server and the engine call into these functions.

// Percentage converts a raw score into an integer percentage. A zero (or
// negative) total yields 0 rather than a division error.
func Percentage(score, totalPoints int) int {
	if totalPoints <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(totalPoints) * 100))
}

// Passed applies the pass threshold to an already-computed percentage.
// Score must never be compared against PassingScore directly.
func Passed(percentage, passingScore int) bool {
	return percentage >= passingScore
}

// ScoreAttempt scores a full attempt. A question contributes its points only
// when the selected-option set is exactly the correct-option set: same size,
// same members. Supersets and subsets of the correct set earn nothing.
func ScoreAttempt(test *model.Test, answers map[uint][]uint) (score, totalPoints int) {
	for _, q := range test.Questions {
		totalPoints += q.Points
		if matchesCorrectSet(q, answers[q.ID]) {
			score += q.Points
		}
	}
	return score, totalPoints
}

func matchesCorrectSet(q model.Question, selected []uint) bool {
	correct := q.CorrectOptionIDs()
	if len(selected) != len(correct) {
		return false
	}
	for _, id := range selected {
		if _, ok := correct[id]; !ok {
			return false
		}
	}
	return true
}
