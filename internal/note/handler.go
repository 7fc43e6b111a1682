package note

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/quillnote/quillnote-api/internal/auth"
	"github.com/quillnote/quillnote-api/internal/config"
)

type Handler struct {
	service NoteService
}

func NewHandler(s NoteService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var n Note
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		log.WithError(err).Error("Invalid request body for note creation")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateNote(r.Context(), claims.UserID, &n)
	if err != nil {
		writeNoteError(w, log, err)
		return
	}

	config.JSON(w, http.StatusCreated, created)
}

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	keyword := r.URL.Query().Get("q")

	result, err := h.service.ListNotes(r.Context(), claims.UserID, page, keyword)
	if err != nil {
		log.WithError(err).Error("Failed to list notes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	noteID := chi.URLParam(r, "id")
	n, err := h.service.GetNote(r.Context(), claims.UserID, noteID)
	if err != nil {
		writeNoteError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, n)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var update Note
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.WithError(err).Error("Invalid request body for note update")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	noteID := chi.URLParam(r, "id")
	updated, err := h.service.UpdateNote(r.Context(), claims.UserID, noteID, &update)
	if err != nil {
		writeNoteError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	noteID := chi.URLParam(r, "id")
	if err := h.service.DeleteNote(r.Context(), claims.UserID, noteID); err != nil {
		writeNoteError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "note deleted successfully",
	})
}

func writeNoteError(w http.ResponseWriter, log interface{ Errorf(string, ...interface{}) }, err error) {
	switch {
	case errors.Is(err, ErrNoteNotFound):
		http.Error(w, "note not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrTitleRequired):
		http.Error(w, "title is required", http.StatusBadRequest)
	default:
		log.Errorf("Note operation failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
