package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hntran/Corella/internal/dto"
	"github.com/hntran/Corella/internal/model"
)

func (c *Client) ListTests(ctx context.Context) ([]dto.TestSummaryDTO, error) {
	var tests []dto.TestSummaryDTO
	if err := c.do(ctx, http.MethodGet, "/tests", nil, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

func (c *Client) GetTest(ctx context.Context, testID uint) (*model.Test, error) {
	var test model.Test
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tests/%d", testID), nil, &test); err != nil {
		return nil, err
	}
	return &test, nil
}

// GetTestWithQuestions returns the test with its full question and option
// bodies, the shape an attempt is played from.
func (c *Client) GetTestWithQuestions(ctx context.Context, testID uint) (*model.Test, error) {
	var test model.Test
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tests/%d/with-questions", testID), nil, &test); err != nil {
		return nil, err
	}
	return &test, nil
}

// SubmitAttempt sends a finished attempt to the remote scorer.
func (c *Client) SubmitAttempt(ctx context.Context, testID uint, submission dto.TestSubmissionDTO) (*dto.TestResultDTO, error) {
	var result dto.TestResultDTO
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tests/%d/submit", testID), submission, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListAttempts returns the stored attempt history for a test.
func (c *Client) ListAttempts(ctx context.Context, testID uint) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tests/%d/attempts", testID), nil, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}
