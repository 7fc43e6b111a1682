package analytics

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillnote/quillnote-api/internal/note"
	"github.com/quillnote/quillnote-api/internal/quiz"
)

type stubNoteRepo struct {
	notes []*note.Note
}

func (s *stubNoteRepo) Create(*note.Note) error               { return nil }
func (s *stubNoteRepo) GetByID(string) (*note.Note, error)    { return nil, nil }
func (s *stubNoteRepo) Update(*note.Note) error               { return nil }
func (s *stubNoteRepo) Delete(string) error                   { return nil }
func (s *stubNoteRepo) CountByUser(string) (int64, error)     { return int64(len(s.notes)), nil }
func (s *stubNoteRepo) ListMeta(string) ([]*note.Note, error) { return s.notes, nil }
func (s *stubNoteRepo) ListByUser(string, int, string) ([]*note.Note, int64, error) {
	return s.notes, int64(len(s.notes)), nil
}

type stubQuizRepo struct {
	history []*quiz.HistoryEntry
}

func (s *stubQuizRepo) CreateQuiz(*quiz.Quiz) error             { return nil }
func (s *stubQuizRepo) GetQuizByID(string) (*quiz.Quiz, error)  { return nil, nil }
func (s *stubQuizRepo) SetQuizStatus(string, string) error      { return nil }
func (s *stubQuizRepo) CreateSubmission(*quiz.Submission) error { return nil }
func (s *stubQuizRepo) GetPerformance(string, string, string) (*quiz.PerformanceRecord, error) {
	return nil, nil
}
func (s *stubQuizRepo) UpsertPerformance(string, string, string, float64) error { return nil }
func (s *stubQuizRepo) History(string, quiz.HistoryFilters) ([]*quiz.HistoryEntry, error) {
	return s.history, nil
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func noteWithTags(created time.Time, tags ...string) *note.Note {
	raw, _ := json.Marshal(tags)
	return &note.Note{
		ID:        uuid.New(),
		Tags:      raw,
		CreatedAt: created,
	}
}

func historyEntry(subject string, score, total int, completed time.Time) *quiz.HistoryEntry {
	return &quiz.HistoryEntry{
		Submission: quiz.Submission{
			ID:             uuid.New(),
			Score:          score,
			TotalQuestions: total,
			CompletedAt:    completed,
		},
		Subject: subject,
	}
}

func TestDashboard_Metrics(t *testing.T) {
	notes := &stubNoteRepo{notes: []*note.Note{
		noteWithTags(day("2026-08-01"), "math", "algebra"),
		noteWithTags(day("2026-08-02"), "math"),
	}}
	quizzes := &stubQuizRepo{history: []*quiz.HistoryEntry{
		historyEntry("Science", 7, 10, day("2026-08-02")),
		historyEntry("Math", 9, 10, day("2026-08-03")),
	}}

	svc := NewService(notes, quizzes)
	dashboard, err := svc.Dashboard(context.Background(), uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, int64(2), dashboard.Metrics.TotalNotes)
	assert.Equal(t, 2, dashboard.Metrics.TotalQuizzes)
	// 16 of 20 questions correct
	assert.Equal(t, 80.0, dashboard.Metrics.GlobalAccuracy)
	// "math" appears three times across tags and quiz subjects
	assert.Equal(t, "MATH", dashboard.Metrics.ActiveSubject)
	// activity on Aug 1, 2 and 3
	assert.Equal(t, 3, dashboard.Metrics.StudyDays)
}

func TestDashboard_EmptyUser(t *testing.T) {
	svc := NewService(&stubNoteRepo{}, &stubQuizRepo{})

	dashboard, err := svc.Dashboard(context.Background(), uuid.NewString())
	require.NoError(t, err)

	assert.Zero(t, dashboard.Metrics.TotalNotes)
	assert.Zero(t, dashboard.Metrics.TotalQuizzes)
	assert.Equal(t, 0.0, dashboard.Metrics.GlobalAccuracy)
	assert.Equal(t, "N/A", dashboard.Metrics.ActiveSubject)
	assert.Zero(t, dashboard.Metrics.StudyDays)
}

func TestGlobalAccuracy_OneDecimal(t *testing.T) {
	history := []*quiz.HistoryEntry{
		historyEntry("Math", 1, 3, day("2026-08-01")),
	}
	assert.Equal(t, 33.3, globalAccuracy(history))
}

func TestActiveSubject_DefaultsAndTies(t *testing.T) {
	history := []*quiz.HistoryEntry{
		historyEntry("", 1, 1, day("2026-08-01")),
	}
	assert.Equal(t, "GENERAL", activeSubject(nil, history))

	tied := []*quiz.HistoryEntry{
		historyEntry("Art", 1, 1, day("2026-08-01")),
		historyEntry("Biology", 1, 1, day("2026-08-01")),
	}
	assert.Equal(t, "ART", activeSubject(nil, tied))
}
