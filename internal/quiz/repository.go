package quiz

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HistoryFilters narrows the submission history query. Zero values mean
// "no filter" for every field.
type HistoryFilters struct {
	Subject    string
	GradeLevel string
	MinScore   *float64
	MaxScore   *float64
	FromDate   *time.Time
	ToDate     *time.Time
}

// HistoryEntry is a submission joined with its quiz metadata.
type HistoryEntry struct {
	Submission
	Title      string `json:"title"`
	Subject    string `json:"subject"`
	GradeLevel string `json:"grade_level"`
}

type QuizRepository interface {
	CreateQuiz(q *Quiz) error
	GetQuizByID(id string) (*Quiz, error)
	SetQuizStatus(id, status string) error

	CreateSubmission(s *Submission) error
	History(userID string, filters HistoryFilters) ([]*HistoryEntry, error)

	GetPerformance(userID, subject, gradeLevel string) (*PerformanceRecord, error)
	UpsertPerformance(userID, subject, gradeLevel string, percentageScore float64) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) CreateQuiz(q *Quiz) error {
	return r.db.Create(q).Error
}

func (r *quizRepository) GetQuizByID(id string) (*Quiz, error) {
	var q Quiz
	if err := r.db.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) SetQuizStatus(id, status string) error {
	return r.db.Model(&Quiz{}).Where("id = ?", id).Update("status", status).Error
}

func (r *quizRepository) CreateSubmission(s *Submission) error {
	return r.db.Create(s).Error
}

func (r *quizRepository) History(userID string, filters HistoryFilters) ([]*HistoryEntry, error) {
	q := r.db.Model(&Submission{}).
		Select("submissions.*, quizzes.title, quizzes.subject, quizzes.grade_level").
		Joins("JOIN quizzes ON quizzes.id = submissions.quiz_id").
		Where("submissions.user_id = ?", userID)

	if filters.Subject != "" {
		q = q.Where("quizzes.subject = ?", filters.Subject)
	}
	if filters.GradeLevel != "" {
		q = q.Where("quizzes.grade_level = ?", filters.GradeLevel)
	}
	if filters.MinScore != nil {
		q = q.Where("submissions.percentage_score >= ?", *filters.MinScore)
	}
	if filters.MaxScore != nil {
		q = q.Where("submissions.percentage_score <= ?", *filters.MaxScore)
	}
	if filters.FromDate != nil {
		q = q.Where("submissions.completed_at >= ?", *filters.FromDate)
	}
	if filters.ToDate != nil {
		q = q.Where("submissions.completed_at <= ?", *filters.ToDate)
	}

	var entries []*HistoryEntry
	if err := q.Order("submissions.completed_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *quizRepository) GetPerformance(userID, subject, gradeLevel string) (*PerformanceRecord, error) {
	var rec PerformanceRecord
	err := r.db.First(&rec, "user_id = ? AND subject = ? AND grade_level = ?", userID, subject, gradeLevel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// UpsertPerformance folds one percentage score into the keyed aggregate.
// The running mean is recomputed inside the database so concurrent
// submissions for the same key serialize on the row instead of racing a
// read-then-write in application code.
func (r *quizRepository) UpsertPerformance(userID, subject, gradeLevel string, percentageScore float64) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	rec := PerformanceRecord{
		UserID:       uid,
		Subject:      subject,
		GradeLevel:   gradeLevel,
		TotalQuizzes: 1,
		AverageScore: percentageScore,
		LastQuizDate: time.Now(),
	}

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "subject"}, {Name: "grade_level"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"average_score": gorm.Expr(
				"(performance_records.average_score * performance_records.total_quizzes + ?) / (performance_records.total_quizzes + 1)",
				percentageScore,
			),
			"total_quizzes":  gorm.Expr("performance_records.total_quizzes + 1"),
			"last_quiz_date": time.Now(),
		}),
	}).Create(&rec).Error
}
