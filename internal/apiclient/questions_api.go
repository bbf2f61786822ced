package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hntran/Corella/internal/dto"
	"github.com/hntran/Corella/internal/model"
)

// Question and option authoring, used by the admin test editor.

func (c *Client) CreateQuestion(ctx context.Context, payload dto.QuestionCreateDTO) (*model.Question, error) {
	var question model.Question
	if err := c.do(ctx, http.MethodPost, "/questions", payload, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (c *Client) UpdateQuestion(ctx context.Context, questionID uint, payload dto.QuestionUpdateDTO) (*model.Question, error) {
	var question model.Question
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/questions/%d", questionID), payload, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (c *Client) DeleteQuestion(ctx context.Context, questionID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/questions/%d", questionID), nil, nil)
}

func (c *Client) CreateOption(ctx context.Context, payload dto.OptionCreateDTO) (*model.Option, error) {
	var option model.Option
	if err := c.do(ctx, http.MethodPost, "/options", payload, &option); err != nil {
		return nil, err
	}
	return &option, nil
}

func (c *Client) UpdateOption(ctx context.Context, optionID uint, payload dto.OptionUpdateDTO) (*model.Option, error) {
	var option model.Option
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/options/%d", optionID), payload, &option); err != nil {
		return nil, err
	}
	return &option, nil
}

func (c *Client) DeleteOption(ctx context.Context, optionID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/options/%d", optionID), nil, nil)
}
