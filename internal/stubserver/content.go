package stubserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hntran/Corella/internal/dto"
	"github.com/hntran/Corella/internal/model"
)

func (s *Server) getCourse(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	c, ok := s.store.courses[id]
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Course not found"})
		return
	}
	ctx.JSON(http.StatusOK, c)
}

func (s *Server) getCourseWithModules(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	if _, ok := s.store.courses[id]; !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Course not found"})
		return
	}
	ctx.JSON(http.StatusOK, s.store.assembleCourseLocked(id))
}

func (s *Server) createCourse(ctx *gin.Context) {
	var req dto.CourseCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, exists := s.store.courses[req.ID]; exists {
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Course id already in use"})
		return
	}
	status := model.CourseStatus(req.Status)
	if req.Status == "" {
		status = model.CourseDraft
	}
	now := time.Now()
	c := &model.Course{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    req.AuthorID,
		Status:      status,
		Price:       req.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.store.courses[c.ID] = c
	ctx.JSON(http.StatusCreated, c)
}

func (s *Server) updateCourse(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CourseUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	c, ok := s.store.courses[id]
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Course not found"})
		return
	}
	c.Title = req.Title
	c.Description = req.Description
	c.AuthorID = req.AuthorID
	if req.Status != "" {
		c.Status = model.CourseStatus(req.Status)
	}
	c.Price = req.Price
	c.UpdatedAt = time.Now()
	ctx.JSON(http.StatusOK, c)
}

// deleteCourse cascades through modules, lessons and media.
func (s *Server) deleteCourse(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.courses[id]; !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Course not found"})
		return
	}
	for _, m := range s.store.modulesByCourseLocked(id) {
		s.store.deleteModuleLocked(m.ID)
	}
	delete(s.store.courses, id)
	ctx.Status(http.StatusNoContent)
}

func (s *Server) getModuleWithLessons(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	m, ok := s.store.modules[id]
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Module not found"})
		return
	}
	full := *m
	full.Lessons = s.store.lessonsByModuleLocked(id)
	ctx.JSON(http.StatusOK, full)
}

func (s *Server) listModulesByCourse(ctx *gin.Context) {
	courseID, ok := parseID(ctx, "courseID")
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	modules := s.store.modulesByCourseLocked(courseID)
	if modules == nil {
		modules = []model.Module{}
	}
	ctx.JSON(http.StatusOK, modules)
}

func (s *Server) createModule(ctx *gin.Context) {
	var req dto.ModuleCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.courses[req.CourseID]; !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Course not found"})
		return
	}
	m := &model.Module{
		ID:         s.store.allocID(),
		CourseID:   req.CourseID,
		Title:      req.Title,
		OrderIndex: req.OrderIndex,
	}
	s.store.modules[m.ID] = m
	ctx.JSON(http.StatusCreated, m)
}

func (s *Server) updateModule(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.ModuleUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	m, ok := s.store.modules[id]
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Module not found"})
		return
	}
	m.Title = req.Title
	m.OrderIndex = req.OrderIndex
	ctx.JSON(http.StatusOK, m)
}

func (s *Server) deleteModule(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.modules[id]; !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Module not found"})
		return
	}
	s.store.deleteModuleLocked(id)
	ctx.Status(http.StatusNoContent)
}

func (s *Server) getLessonWithMedia(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	l, ok := s.store.lessons[id]
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Lesson not found"})
		return
	}
	full := *l
	full.Media = s.store.mediaByLessonLocked(id)
	ctx.JSON(http.StatusOK, full)
}

func (s *Server) createLesson(ctx *gin.Context) {
	var req dto.LessonCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.modules[req.ModuleID]; !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Module not found"})
		return
	}
	l := &model.Lesson{
		ID:         s.store.allocID(),
		ModuleID:   req.ModuleID,
		Title:      req.Title,
		Content:    req.Content,
		LessonType: model.LessonType(req.LessonType),
		OrderIndex: req.OrderIndex,
	}
	s.store.lessons[l.ID] = l
	ctx.JSON(http.StatusCreated, l)
}

func (s *Server) updateLesson(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.LessonUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	l, ok := s.store.lessons[id]
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Lesson not found"})
		return
	}
	l.Title = req.Title
	l.Content = req.Content
	l.LessonType = model.LessonType(req.LessonType)
	l.OrderIndex = req.OrderIndex
	ctx.JSON(http.StatusOK, l)
}

func (s *Server) deleteLesson(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.lessons[id]; !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Lesson not found"})
		return
	}
	s.store.deleteLessonLocked(id)
	ctx.Status(http.StatusNoContent)
}

func (s *Server) listMediaByLesson(ctx *gin.Context) {
	lessonID, ok := parseID(ctx, "lessonID")
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	media := s.store.mediaByLessonLocked(lessonID)
	if media == nil {
		media = []model.Media{}
	}
	ctx.JSON(http.StatusOK, media)
}

func (s *Server) createMedia(ctx *gin.Context) {
	var req dto.MediaCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.lessons[req.LessonID]; !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Lesson not found"})
		return
	}
	x := &model.Media{
		ID:         s.store.allocID(),
		LessonID:   req.LessonID,
		MediaURL:   req.MediaURL,
		MediaType:  model.MediaType(req.MediaType),
		OrderIndex: req.OrderIndex,
	}
	s.store.media[x.ID] = x
	ctx.JSON(http.StatusCreated, x)
}

func (s *Server) updateMedia(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.MediaUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	x, ok := s.store.media[id]
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Media not found"})
		return
	}
	x.MediaURL = req.MediaURL
	x.MediaType = model.MediaType(req.MediaType)
	x.OrderIndex = req.OrderIndex
	ctx.JSON(http.StatusOK, x)
}

func (s *Server) deleteMedia(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.media[id]; !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Media not found"})
		return
	}
	delete(s.store.media, id)
	ctx.Status(http.StatusNoContent)
}
