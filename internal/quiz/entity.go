package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Quiz lifecycle states. A quiz never leaves StatusGraded.
const (
	StatusGenerated = "generated"
	StatusGraded    = "graded"
	StatusAbandoned = "abandoned"
)

// Question is one multiple-choice question. Questions are stored inline on
// the quiz as JSONB; the quiz is the unit of persistence.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
	Explanation   string   `json:"explanation,omitempty"`
}

type Quiz struct {
	ID                     uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                 uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title                  string         `gorm:"type:text;not null" json:"title"`
	Subject                string         `gorm:"type:text;not null;index" json:"subject"`
	GradeLevel             string         `gorm:"type:text;not null" json:"grade_level"`
	Topic                  string         `gorm:"type:text;not null" json:"topic"`
	Questions              datatypes.JSON `gorm:"type:jsonb;not null" json:"questions"`
	DifficultyDistribution datatypes.JSON `gorm:"type:jsonb;not null" json:"difficulty_distribution"`
	Status                 string         `gorm:"type:text;not null;default:'generated'" json:"status"`
	Fallback               bool           `gorm:"not null;default:false" json:"fallback"`
	CreatedAt              time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// Mistake records one incorrectly answered question for tip generation.
type Mistake struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation,omitempty"`
}

type Submission struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"quiz_id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Answers         datatypes.JSON `gorm:"type:jsonb;not null" json:"answers"`
	Score           int            `gorm:"not null" json:"score"`
	TotalQuestions  int            `gorm:"not null" json:"total_questions"`
	PercentageScore float64        `gorm:"not null" json:"percentage_score"`
	Mistakes        datatypes.JSON `gorm:"type:jsonb" json:"mistakes,omitempty"`
	ImprovementTips datatypes.JSON `gorm:"type:jsonb" json:"improvement_tips,omitempty"`
	CompletedAt     time.Time      `gorm:"autoCreateTime;index" json:"completed_at"`
}

// PerformanceRecord is the rolling per-user-per-subject-per-grade aggregate
// that drives adaptive difficulty. Updates go through the repository's
// atomic upsert, never a plain read-then-write.
type PerformanceRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_performance_key" json:"user_id"`
	Subject      string    `gorm:"type:text;not null;uniqueIndex:idx_performance_key" json:"subject"`
	GradeLevel   string    `gorm:"type:text;not null;uniqueIndex:idx_performance_key" json:"grade_level"`
	TotalQuizzes int       `gorm:"not null;default:0" json:"total_quizzes"`
	AverageScore float64   `gorm:"not null;default:0" json:"average_score"`
	LastQuizDate time.Time `json:"last_quiz_date"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
