package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hntran/Corella/internal/dto"
	"github.com/hntran/Corella/internal/model"
	"github.com/hntran/Corella/internal/progress"
)

// State is the attempt lifecycle. Error is terminal and only reachable from
// the initial load; submission failures never land here because local
// fallback scoring absorbs them.
type State string

const (
	StateLoading    State = "loading"
	StateInProgress State = "in_progress"
	StateSubmitting State = "submitting"
	StateFinished   State = "finished"
	StateError      State = "error"
)

var (
	ErrNotInProgress   = errors.New("attempt is not in progress")
	ErrUnknownQuestion = errors.New("question is not part of this test")
	ErrTextQuestion    = errors.New("text questions have no selectable options")
)

// TestLoader fetches a test with its full question/option bodies.
type TestLoader interface {
	GetTestWithQuestions(ctx context.Context, testID uint) (*model.Test, error)
}

// Scorer submits a finished attempt to the remote scorer.
type Scorer interface {
	SubmitAttempt(ctx context.Context, testID uint, submission dto.TestSubmissionDTO) (*dto.TestResultDTO, error)
}

// Result is what the presentation layer shows after an attempt. Percentage
// and Passed are always computed locally, regardless of which scoring path
// produced Score/TotalPoints.
type Result struct {
	Score        int
	TotalPoints  int
	Percentage   int
	PassingScore int
	Passed       bool
	// Fallback reports that the remote scorer was unreachable and the
	// attempt was scored locally.
	Fallback bool
}

// Engine owns the in-memory state of a single test attempt: the current
// question index and the map of selected option ids per question. It is not
// safe for concurrent use; the UI drives it from a single event loop.
type Engine struct {
	test     *model.Test
	scorer   Scorer
	statuses *progress.StatusStore

	state   State
	current int
	answers map[uint][]uint
	result  *Result
}

// New starts an attempt over an already-fetched test.
func New(test *model.Test, scorer Scorer, statuses *progress.StatusStore) (*Engine, error) {
	if test == nil || len(test.Questions) == 0 {
		return nil, fmt.Errorf("test has no questions, attempt is not possible")
	}
	return &Engine{
		test:     test,
		scorer:   scorer,
		statuses: statuses,
		state:    StateInProgress,
		answers:  make(map[uint][]uint),
	}, nil
}

// Load fetches the test and starts an attempt. A fetch failure is terminal
// for the attempt: the returned engine is in StateError and only a fresh
// Load retries it.
func Load(ctx context.Context, loader TestLoader, scorer Scorer, statuses *progress.StatusStore, testID uint) (*Engine, error) {
	test, err := loader.GetTestWithQuestions(ctx, testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to fetch test")
		return &Engine{state: StateError}, fmt.Errorf("fetching test %d: %w", testID, err)
	}
	eng, err := New(test, scorer, statuses)
	if err != nil {
		return &Engine{state: StateError}, err
	}
	return eng, nil
}

func (e *Engine) State() State { return e.state }

func (e *Engine) Test() *model.Test { return e.test }

func (e *Engine) CurrentIndex() int { return e.current }

// CurrentQuestion returns nil unless the attempt is in progress.
func (e *Engine) CurrentQuestion() *model.Question {
	if e.state != StateInProgress {
		return nil
	}
	return &e.test.Questions[e.current]
}

// Selected returns a copy of the selection set for a question.
func (e *Engine) Selected(questionID uint) []uint {
	sel := e.answers[questionID]
	out := make([]uint, len(sel))
	copy(out, sel)
	return out
}

// AnsweredCount reports how many questions have a non-empty selection.
func (e *Engine) AnsweredCount() int {
	n := 0
	for _, sel := range e.answers {
		if len(sel) > 0 {
			n++
		}
	}
	return n
}

// SelectAnswer records a selection. Single-choice questions replace the
// selection set with {optionID}; multiple-choice questions toggle the
// option's membership.
func (e *Engine) SelectAnswer(questionID, optionID uint) error {
	if e.state != StateInProgress {
		return ErrNotInProgress
	}
	q := e.findQuestion(questionID)
	if q == nil {
		return ErrUnknownQuestion
	}

	switch q.QuestionType {
	case model.QuestionSingleChoice:
		e.answers[questionID] = []uint{optionID}
	case model.QuestionMultipleChoice:
		current := e.answers[questionID]
		for i, id := range current {
			if id == optionID {
				e.answers[questionID] = append(current[:i:i], current[i+1:]...)
				return nil
			}
		}
		e.answers[questionID] = append(current, optionID)
	default:
		return ErrTextQuestion
	}
	return nil
}

// Advance moves to the next question; on the last question it finishes the
// attempt instead and returns the result.
func (e *Engine) Advance(ctx context.Context) (*Result, error) {
	if e.state != StateInProgress {
		return nil, ErrNotInProgress
	}
	if e.current < len(e.test.Questions)-1 {
		e.current++
		return nil, nil
	}
	return e.Finish(ctx)
}

// Retreat moves back one question; it is a no-op at the first question and
// never triggers submission.
func (e *Engine) Retreat() {
	if e.state == StateInProgress && e.current > 0 {
		e.current--
	}
}

// Finish submits the attempt. The remote scorer is authoritative when
// reachable; on any submission error the attempt is scored locally with the
// identical rule, so the student always reaches a result. Either way the
// persisted test status is updated and the engine transitions to Finished.
func (e *Engine) Finish(ctx context.Context) (*Result, error) {
	if e.state != StateInProgress {
		return nil, ErrNotInProgress
	}
	e.state = StateSubmitting

	submission := dto.TestSubmissionDTO{Answers: make([]dto.AnswerSubmissionDTO, 0, len(e.test.Questions))}
	for _, q := range e.test.Questions {
		sel := e.answers[q.ID]
		if sel == nil {
			sel = []uint{}
		}
		submission.Answers = append(submission.Answers, dto.AnswerSubmissionDTO{
			QuestionID:        q.ID,
			SelectedOptionIDs: sel,
		})
	}

	result := &Result{}
	remote, err := e.scorer.SubmitAttempt(ctx, e.test.ID, submission)
	if err != nil {
		log.Warn().Err(err).Uint("testID", e.test.ID).Msg("Remote scoring failed, scoring attempt locally")
		score, total := ScoreAttempt(e.test, e.answers)
		result.Score = score
		result.TotalPoints = total
		result.PassingScore = e.test.PassingScore
		result.Fallback = true
	} else {
		result.Score = remote.Score
		result.TotalPoints = remote.TotalPoints
		result.PassingScore = remote.PassingScore
	}

	// The server's passed flag is never trusted; recompute from raw numbers
	// so rounding cannot diverge between backends.
	result.Percentage = Percentage(result.Score, result.TotalPoints)
	result.Passed = Passed(result.Percentage, result.PassingScore)

	if e.statuses != nil {
		if _, err := e.statuses.Record(e.test.ID, result.Percentage, result.Score, result.Passed); err != nil {
			log.Error().Err(err).Uint("testID", e.test.ID).Msg("Failed to persist test status")
		}
	}

	e.result = result
	e.state = StateFinished
	return result, nil
}

// Result returns the finished attempt's result, nil before Finish.
func (e *Engine) Result() *Result { return e.result }

func (e *Engine) findQuestion(questionID uint) *model.Question {
	for i := range e.test.Questions {
		if e.test.Questions[i].ID == questionID {
			return &e.test.Questions[i]
		}
	}
	return nil
}
