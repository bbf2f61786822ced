package stubserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hntran/Corella/internal/dto"
	"github.com/hntran/Corella/internal/model"
)

func (s *Server) createQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.tests[req.TestID]; !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
		return
	}
	q := &model.Question{
		ID:           s.store.allocID(),
		TestID:       req.TestID,
		QuestionText: req.QuestionText,
		Description:  req.Description,
		QuestionType: model.QuestionType(req.QuestionType),
		Points:       req.Points,
		OrderIndex:   req.OrderIndex,
	}
	s.store.questions[q.ID] = q
	ctx.JSON(http.StatusCreated, q)
}

func (s *Server) updateQuestion(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	q, ok := s.store.questions[id]
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
		return
	}
	if req.QuestionText != nil {
		q.QuestionText = *req.QuestionText
	}
	if req.Description != nil {
		q.Description = *req.Description
	}
	if req.QuestionType != nil {
		q.QuestionType = model.QuestionType(*req.QuestionType)
	}
	if req.Points != nil {
		q.Points = *req.Points
	}
	if req.OrderIndex != nil {
		q.OrderIndex = *req.OrderIndex
	}
	ctx.JSON(http.StatusOK, q)
}

func (s *Server) deleteQuestion(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.questions[id]; !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
		return
	}
	for oid, o := range s.store.options {
		if o.QuestionID == id {
			delete(s.store.options, oid)
		}
	}
	delete(s.store.questions, id)
	ctx.Status(http.StatusNoContent)
}

func (s *Server) createOption(ctx *gin.Context) {
	var req dto.OptionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.questions[req.QuestionID]; !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
		return
	}
	o := &model.Option{
		ID:          s.store.allocID(),
		QuestionID:  req.QuestionID,
		OptionText:  req.OptionText,
		Description: req.Description,
		IsCorrect:   req.IsCorrect,
	}
	s.store.options[o.ID] = o
	ctx.JSON(http.StatusCreated, o)
}

func (s *Server) updateOption(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.OptionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	o, ok := s.store.options[id]
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Option not found"})
		return
	}
	if req.OptionText != nil {
		o.OptionText = *req.OptionText
	}
	if req.Description != nil {
		o.Description = *req.Description
	}
	if req.IsCorrect != nil {
		o.IsCorrect = *req.IsCorrect
	}
	ctx.JSON(http.StatusOK, o)
}

func (s *Server) deleteOption(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.options[id]; !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Option not found"})
		return
	}
	delete(s.store.options, id)
	ctx.Status(http.StatusNoContent)
}
