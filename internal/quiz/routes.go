package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quillnote/quillnote-api/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/generate", h.CreateQuiz)
	r.Get("/history", h.History)
	r.Post("/hint", h.Hint)
	r.Get("/{id}", h.GetQuiz)
	r.Post("/{id}/submit", h.SubmitQuiz)
	return r
}
