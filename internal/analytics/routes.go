package analytics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quillnote/quillnote-api/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Get("/", h.Dashboard)
	return r
}
