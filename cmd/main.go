package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/hntran/Corella/config"
	"github.com/hntran/Corella/internal/logger"
	"github.com/hntran/Corella/internal/model"
	"github.com/hntran/Corella/internal/stubserver"
)

// Runs the local stub LMS API. The client packages (apiclient, engine,
// editor) are the product; this binary gives them a backend to talk to
// during development without a real LMS deployment.
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			stubserver.NewStore,
			stubserver.New,
		),
		fx.Invoke(SeedDemoData),
		fx.Invoke(StartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// StartServer binds the stub API router to the configured port and ties the
// HTTP server to the fx lifecycle.
func StartServer(lc fx.Lifecycle, srv *stubserver.Server, cfg *config.Config) {
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Router(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Stub LMS API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// SeedDemoData loads a small test and course so the stub answers something
// useful out of the box.
func SeedDemoData(store *stubserver.Store) {
	test := store.SeedTest(model.Test{
		Title:        "Go Basics Weekly Quiz",
		Description:  "Covers variables, slices and error handling",
		PassingScore: 60,
		TestType:     model.TestTypeWeekly,
		Questions: []model.Question{
			{
				QuestionText: "Which keyword declares a variable with inferred type?",
				QuestionType: model.QuestionSingleChoice,
				Points:       5,
				OrderIndex:   0,
				Options: []model.Option{
					{OptionText: "var x = 1", IsCorrect: true},
					{OptionText: "let x = 1"},
					{OptionText: "def x = 1"},
				},
			},
			{
				QuestionText: "Which of these are built-in Go types?",
				QuestionType: model.QuestionMultipleChoice,
				Points:       10,
				OrderIndex:   1,
				Options: []model.Option{
					{OptionText: "int", IsCorrect: true},
					{OptionText: "string", IsCorrect: true},
					{OptionText: "tuple"},
				},
			},
		},
	})

	course := store.SeedCourse(model.Course{
		ID:     1,
		Title:  "Practical Go",
		Status: model.CoursePublished,
		Price:  49.99,
		Modules: []model.Module{
			{
				Title:      "Getting Started",
				OrderIndex: 0,
				Lessons: []model.Lesson{
					{
						Title:      "Installing the toolchain",
						LessonType: model.LessonTheory,
						OrderIndex: 0,
						Media: []model.Media{
							{MediaURL: "https://cdn.example.com/go-install.mp4", MediaType: model.MediaVideo, OrderIndex: 0},
						},
					},
					{Title: "First program", LessonType: model.LessonPractice, OrderIndex: 1},
				},
			},
		},
	})

	log.Info().
		Uint("testID", test.ID).
		Uint("courseID", course.ID).
		Msg("Demo data seeded")
}
