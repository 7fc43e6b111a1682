package note

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quillnote/quillnote-api/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.CreateNote)
	r.Get("/", h.ListNotes)
	r.Get("/{id}", h.GetNote)
	r.Put("/{id}", h.UpdateNote)
	r.Delete("/{id}", h.DeleteNote)
	return r
}
