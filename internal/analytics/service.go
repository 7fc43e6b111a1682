package analytics

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strings"

	"github.com/quillnote/quillnote-api/internal/config"
	"github.com/quillnote/quillnote-api/internal/note"
	"github.com/quillnote/quillnote-api/internal/quiz"
)

const historyLimit = 50

// Metrics is the dashboard summary for one user.
type Metrics struct {
	TotalNotes     int64   `json:"totalNotes"`
	TotalQuizzes   int     `json:"totalQuizzes"`
	GlobalAccuracy float64 `json:"globalAccuracy"`
	ActiveSubject  string  `json:"activeSubject"`
	StudyDays      int     `json:"studyDays"`
}

// Dashboard bundles the metrics with the raw activity used by charts.
type Dashboard struct {
	Metrics       Metrics              `json:"metrics"`
	History       []*quiz.HistoryEntry `json:"history"`
	NotesActivity []*note.Note         `json:"notesActivity"`
}

type AnalyticsService interface {
	Dashboard(ctx context.Context, userID string) (*Dashboard, error)
}

type analyticsService struct {
	notes   note.NoteRepository
	quizzes quiz.QuizRepository
}

func NewService(notes note.NoteRepository, quizzes quiz.QuizRepository) AnalyticsService {
	return &analyticsService{notes: notes, quizzes: quizzes}
}

func (s *analyticsService) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	log := config.WithContext(ctx)

	totalNotes, err := s.notes.CountByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to count notes")
		return nil, err
	}

	notesMeta, err := s.notes.ListMeta(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load note activity")
		return nil, err
	}

	history, err := s.quizzes.History(userID, quiz.HistoryFilters{})
	if err != nil {
		log.WithError(err).Error("Failed to load quiz history")
		return nil, err
	}

	metrics := Metrics{
		TotalNotes:     totalNotes,
		TotalQuizzes:   len(history),
		GlobalAccuracy: globalAccuracy(history),
		ActiveSubject:  activeSubject(notesMeta, history),
		StudyDays:      studyDays(notesMeta, history),
	}

	if len(history) > historyLimit {
		history = history[:historyLimit]
	}

	return &Dashboard{
		Metrics:       metrics,
		History:       history,
		NotesActivity: notesMeta,
	}, nil
}

// globalAccuracy is correct answers over total questions across all
// submissions, as a percentage with one decimal. Zero when no questions
// were ever answered.
func globalAccuracy(history []*quiz.HistoryEntry) float64 {
	totalQuestions, totalCorrect := 0, 0
	for _, h := range history {
		totalQuestions += h.TotalQuestions
		totalCorrect += h.Score
	}
	if totalQuestions == 0 {
		return 0
	}
	return math.Round(float64(totalCorrect)/float64(totalQuestions)*100*10) / 10
}

// activeSubject is the most frequent subject across note tags and quiz
// subjects, uppercased. Ties resolve alphabetically so the result is
// stable; "N/A" when there is no activity at all.
func activeSubject(notes []*note.Note, history []*quiz.HistoryEntry) string {
	counts := make(map[string]int)

	for _, n := range notes {
		if len(n.Tags) == 0 {
			continue
		}
		var tags []string
		if err := json.Unmarshal(n.Tags, &tags); err != nil {
			continue
		}
		for _, t := range tags {
			counts[strings.ToUpper(t)]++
		}
	}

	for _, h := range history {
		subject := h.Subject
		if subject == "" {
			subject = "General"
		}
		counts[strings.ToUpper(subject)]++
	}

	if len(counts) == 0 {
		return "N/A"
	}

	subjects := make([]string, 0, len(counts))
	for s := range counts {
		subjects = append(subjects, s)
	}
	sort.Slice(subjects, func(i, j int) bool {
		if counts[subjects[i]] != counts[subjects[j]] {
			return counts[subjects[i]] > counts[subjects[j]]
		}
		return subjects[i] < subjects[j]
	})
	return subjects[0]
}

// studyDays counts distinct calendar days (UTC) with any note or quiz
// activity.
func studyDays(notes []*note.Note, history []*quiz.HistoryEntry) int {
	days := make(map[string]struct{})
	for _, n := range notes {
		days[n.CreatedAt.UTC().Format("2006-01-02")] = struct{}{}
	}
	for _, h := range history {
		days[h.CompletedAt.UTC().Format("2006-01-02")] = struct{}{}
	}
	return len(days)
}
