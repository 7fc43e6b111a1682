package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/quillnote/quillnote-api/internal/analytics"
	"github.com/quillnote/quillnote-api/internal/auth"
	"github.com/quillnote/quillnote-api/internal/config"
	"github.com/quillnote/quillnote-api/internal/insight"
	"github.com/quillnote/quillnote-api/internal/middlewares"
	"github.com/quillnote/quillnote-api/internal/note"
	"github.com/quillnote/quillnote-api/internal/quiz"
	"github.com/quillnote/quillnote-api/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	NoteHandler      *note.Handler
	InsightHandler   *insight.Handler
	QuizHandler      *quiz.Handler
	AnalyticsHandler *analytics.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/notes", note.Routes(cfg.NoteHandler))
		r.Mount("/ai", insight.Routes(cfg.InsightHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
		r.Mount("/analytics", analytics.Routes(cfg.AnalyticsHandler))
	})
	return r
}
