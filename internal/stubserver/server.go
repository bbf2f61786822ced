package stubserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hntran/Corella/internal/dto"
	"github.com/hntran/Corella/internal/engine"
	"github.com/hntran/Corella/internal/model"
)

// Server is an in-memory double of the remote LMS API, used by the package
// test suites and as a local development backend. Scoring goes through the
// engine package so the stub and the client fallback share one rule.
type Server struct {
	store *Store

	// FailSubmissions makes POST /tests/:id/submit return 500, for
	// exercising the client's local-scoring fallback.
	FailSubmissions bool
}

func New(store *Store) *Server {
	return &Server{store: store}
}

// Router builds the gin engine with every route the client consumes,
// mounted under /api/v1.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api/v1")
	{
		api.GET("/tests", s.listTests)
		api.GET("/tests/:id", s.getTest)
		api.GET("/tests/:id/with-questions", s.getTestWithQuestions)
		api.POST("/tests/:id/submit", s.submitAttempt)
		api.GET("/tests/:id/attempts", s.listAttempts)

		api.POST("/questions", s.createQuestion)
		api.PUT("/questions/:id", s.updateQuestion)
		api.DELETE("/questions/:id", s.deleteQuestion)
		api.POST("/options", s.createOption)
		api.PUT("/options/:id", s.updateOption)
		api.DELETE("/options/:id", s.deleteOption)

		api.GET("/courses/:id", s.getCourse)
		api.GET("/courses/:id/with-modules", s.getCourseWithModules)
		api.POST("/courses", s.createCourse)
		api.PUT("/courses/:id", s.updateCourse)
		api.DELETE("/courses/:id", s.deleteCourse)

		api.GET("/modules/:id/with-lessons", s.getModuleWithLessons)
		api.GET("/modules/course/:courseID", s.listModulesByCourse)
		api.POST("/modules", s.createModule)
		api.PUT("/modules/:id", s.updateModule)
		api.DELETE("/modules/:id", s.deleteModule)

		api.GET("/lessons/:id/with-media", s.getLessonWithMedia)
		api.POST("/lessons", s.createLesson)
		api.PUT("/lessons/:id", s.updateLesson)
		api.DELETE("/lessons/:id", s.deleteLesson)

		api.GET("/media/lesson/:lessonID", s.listMediaByLesson)
		api.POST("/media", s.createMedia)
		api.PUT("/media/:id", s.updateMedia)
		api.DELETE("/media/:id", s.deleteMedia)
	}
	return r
}

func parseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid id format"})
		return 0, false
	}
	return uint(id), true
}

func (s *Server) listTests(ctx *gin.Context) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	summaries := make([]dto.TestSummaryDTO, 0, len(s.store.tests))
	for id, t := range s.store.tests {
		count := 0
		for _, q := range s.store.questions {
			if q.TestID == id {
				count++
			}
		}
		summaries = append(summaries, dto.TestSummaryDTO{
			ID:            t.ID,
			Title:         t.Title,
			Description:   t.Description,
			TestType:      string(t.TestType),
			PassingScore:  t.PassingScore,
			QuestionCount: count,
		})
	}
	ctx.JSON(http.StatusOK, summaries)
}

func (s *Server) getTest(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	t, ok := s.store.tests[id]
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
		return
	}
	ctx.JSON(http.StatusOK, t)
}

func (s *Server) getTestWithQuestions(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	if _, ok := s.store.tests[id]; !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
		return
	}
	ctx.JSON(http.StatusOK, s.store.assembleTestLocked(id))
}

func (s *Server) submitAttempt(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if s.FailSubmissions {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Scoring unavailable"})
		return
	}

	var req dto.TestSubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.tests[id]; !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
		return
	}
	test := s.store.assembleTestLocked(id)

	answers := make(map[uint][]uint, len(req.Answers))
	for _, a := range req.Answers {
		answers[a.QuestionID] = a.SelectedOptionIDs
	}
	score, totalPoints := engine.ScoreAttempt(&test, answers)

	now := time.Now()
	attempt := model.TestAttempt{
		ID:          s.store.allocID(),
		TestID:      id,
		Score:       score,
		TotalPoints: totalPoints,
		StartedAt:   now,
		CompletedAt: &now,
	}
	s.store.attempts[id] = append(s.store.attempts[id], attempt)

	pct := engine.Percentage(score, totalPoints)
	log.Debug().Uint("testID", id).Int("score", score).Int("total", totalPoints).Msg("Attempt scored")
	ctx.JSON(http.StatusOK, dto.TestResultDTO{
		AttemptID:    attempt.ID,
		TestID:       id,
		TestTitle:    test.Title,
		Score:        score,
		TotalPoints:  totalPoints,
		PassingScore: test.PassingScore,
		Passed:       engine.Passed(pct, test.PassingScore),
	})
}

func (s *Server) listAttempts(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	attempts := s.store.attempts[id]
	if attempts == nil {
		attempts = []model.TestAttempt{}
	}
	ctx.JSON(http.StatusOK, attempts)
}
