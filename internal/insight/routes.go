package insight

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quillnote/quillnote-api/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/glossary", h.Glossary)
	r.Post("/summary", h.Summary)
	r.Post("/tags", h.Tags)
	r.Post("/grammar", h.Grammar)
	r.Post("/actions", h.Actions)
	r.Post("/sentiment", h.Sentiment)
	r.Post("/chat", h.Chat)
	return r
}
