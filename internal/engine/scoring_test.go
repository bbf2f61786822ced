package engine

import (
	"testing"

	"github.com/hntran/Corella/internal/model"
)

func TestPercentageRounding(t *testing.T) {
	cases := []struct {
		score, total, want int
	}{
		{5, 15, 33},
		{10, 15, 67},
		{15, 15, 100},
		{0, 15, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{0, 0, 0},
		{5, 0, 0},
		{5, -1, 0},
	}
	for _, c := range cases {
		if got := Percentage(c.score, c.total); got != c.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", c.score, c.total, got, c.want)
		}
	}
}

func TestPassedThreshold(t *testing.T) {
	if !Passed(60, 60) {
		t.Error("percentage equal to passing score should pass")
	}
	if Passed(59, 60) {
		t.Error("percentage below passing score should not pass")
	}
	if !Passed(0, 0) {
		t.Error("zero threshold should pass any percentage")
	}
}

func scoringFixture() *model.Test {
	return &model.Test{
		ID:           1,
		PassingScore: 60,
		Questions: []model.Question{
			{
				ID: 10, QuestionType: model.QuestionSingleChoice, Points: 5,
				Options: []model.Option{
					{ID: 101, IsCorrect: true},
					{ID: 102},
					{ID: 103},
				},
			},
			{
				ID: 20, QuestionType: model.QuestionMultipleChoice, Points: 10,
				Options: []model.Option{
					{ID: 201, IsCorrect: true},
					{ID: 202, IsCorrect: true},
					{ID: 203},
				},
			},
		},
	}
}

func TestScoreAttemptExactSetMatch(t *testing.T) {
	test := scoringFixture()

	cases := []struct {
		name      string
		answers   map[uint][]uint
		wantScore int
	}{
		{"all correct", map[uint][]uint{10: {101}, 20: {201, 202}}, 15},
		{"order does not matter", map[uint][]uint{10: {101}, 20: {202, 201}}, 15},
		{"single wrong", map[uint][]uint{10: {102}, 20: {201, 202}}, 10},
		{"subset earns nothing", map[uint][]uint{10: {101}, 20: {201}}, 5},
		{"superset earns nothing", map[uint][]uint{10: {101}, 20: {201, 202, 203}}, 5},
		{"unanswered earns nothing", map[uint][]uint{10: {101}}, 5},
		{"nothing answered", map[uint][]uint{}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			score, total := ScoreAttempt(test, c.answers)
			if total != 15 {
				t.Fatalf("total = %d, want 15", total)
			}
			if score != c.wantScore {
				t.Errorf("score = %d, want %d", score, c.wantScore)
			}
		})
	}
}

func TestScoreAttemptEmptyCorrectSet(t *testing.T) {
	// A question with no correct options is matched by an empty selection.
	test := &model.Test{
		Questions: []model.Question{
			{ID: 10, QuestionType: model.QuestionMultipleChoice, Points: 5,
				Options: []model.Option{{ID: 101}, {ID: 102}}},
		},
	}

	score, _ := ScoreAttempt(test, map[uint][]uint{10: {}})
	if score != 5 {
		t.Errorf("empty selection against empty correct set: score = %d, want 5", score)
	}
	score, _ = ScoreAttempt(test, map[uint][]uint{10: {101}})
	if score != 0 {
		t.Errorf("non-empty selection against empty correct set: score = %d, want 0", score)
	}
}

func TestScoreAttemptNoQuestions(t *testing.T) {
	score, total := ScoreAttempt(&model.Test{}, nil)
	if score != 0 || total != 0 {
		t.Errorf("got score=%d total=%d, want 0 0", score, total)
	}
}
