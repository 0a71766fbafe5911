package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/innerlens/innerlens/internal/store"
)

// NewRouter builds the HTTP API for the assessment engine.
func NewRouter(reg *Registry, repo store.ResultRepo, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/respondents/{respondentID}/sessions", StartSessionHandler(reg, repo))
	r.Get("/respondents/{respondentID}/results", ListResultsHandler(repo))

	r.Route("/sessions/{sessionID}", func(sr chi.Router) {
		sr.Get("/page", CurrentPageHandler(reg))
		sr.Post("/answers", SubmitAnswerHandler(reg))
		sr.Post("/advance", AdvanceHandler(reg, repo))
	})

	return r
}
