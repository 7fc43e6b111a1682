package analytics

import (
	"github.com/quillnote/quillnote-api/internal/note"
	"github.com/quillnote/quillnote-api/internal/quiz"
)

type AnalyticsContainer struct {
	Service AnalyticsService
	Handler *Handler
}

func NewAnalyticsContainer(notes note.NoteRepository, quizzes quiz.QuizRepository) *AnalyticsContainer {
	service := NewService(notes, quizzes)
	handler := NewHandler(service)

	return &AnalyticsContainer{
		Service: service,
		Handler: handler,
	}
}
