package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quillnote/quillnote-api/internal/auth"
	"github.com/quillnote/quillnote-api/internal/config"
	util "github.com/quillnote/quillnote-api/internal/utils"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for quiz generation")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Subject == "" || req.Topic == "" {
		http.Error(w, "subject and topic are required", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.CreateQuiz(r.Context(), claims.UserID, req)
	if err != nil {
		log.WithError(err).Error("Failed to create quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, quiz)
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizID := chi.URLParam(r, "id")

	var req SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for quiz submission")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.SubmitQuiz(r.Context(), claims.UserID, quizID, req.Answers)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to grade quiz submission")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quiz, err := h.service.GetQuiz(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	filters, err := historyFiltersFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.service.History(r.Context(), claims.UserID, filters)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, entries)
}

func (h *Handler) Hint(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if _, err := auth.GetUserClaimsFromContext(r.Context()); err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req HintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for hint")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Question == "" {
		http.Error(w, "question is required", http.StatusBadRequest)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"hint": h.service.Hint(r.Context(), req.Question, req.Subject),
	})
}

func historyFiltersFromQuery(r *http.Request) (HistoryFilters, error) {
	q := r.URL.Query()

	minScore, err := util.ParseFloat(q.Get("minScore"))
	if err != nil {
		return HistoryFilters{}, err
	}
	maxScore, err := util.ParseFloat(q.Get("maxScore"))
	if err != nil {
		return HistoryFilters{}, err
	}
	fromDate, err := util.ParseDate(q.Get("fromDate"))
	if err != nil {
		return HistoryFilters{}, err
	}
	toDate, err := util.ParseDateRangeEnd(q.Get("toDate"))
	if err != nil {
		return HistoryFilters{}, err
	}

	return HistoryFilters{
		Subject:    q.Get("subject"),
		GradeLevel: q.Get("gradeLevel"),
		MinScore:   minScore,
		MaxScore:   maxScore,
		FromDate:   fromDate,
		ToDate:     toDate,
	}, nil
}
