package insight

import (
	"encoding/json"
	"net/http"

	"github.com/quillnote/quillnote-api/internal/config"
)

type Handler struct {
	service InsightService
}

func NewHandler(s InsightService) *Handler {
	return &Handler{service: s}
}

type contentRequest struct {
	Content string `json:"content"`
}

type chatRequest struct {
	Content string `json:"content"`
	Query   string `json:"query"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) Glossary(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	config.JSON(w, http.StatusOK, h.service.Glossary(r.Context(), req.Content))
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"summary": h.service.Summary(r.Context(), req.Content),
	})
}

func (h *Handler) Tags(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	config.JSON(w, http.StatusOK, h.service.Tags(r.Context(), req.Content))
}

func (h *Handler) Grammar(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	config.JSON(w, http.StatusOK, h.service.Grammar(r.Context(), req.Content))
}

func (h *Handler) Actions(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	config.JSON(w, http.StatusOK, h.service.Actions(r.Context(), req.Content))
}

func (h *Handler) Sentiment(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"sentiment": h.service.Sentiment(r.Context(), req.Content),
	})
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"response": h.service.Chat(r.Context(), req.Content, req.Query),
	})
}
