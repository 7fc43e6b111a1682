package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/quillnote/quillnote-api/internal/config"
	"github.com/quillnote/quillnote-api/internal/llm"
)

var ErrQuizNotFound = errors.New("quiz not found")

const defaultNumQuestions = 10

type QuizService interface {
	CreateQuiz(ctx context.Context, userID string, req CreateQuizRequest) (*QuizView, error)
	SubmitQuiz(ctx context.Context, userID, quizID string, answers []*int) (*SubmissionResult, error)
	GetQuiz(ctx context.Context, userID, quizID string) (*QuizView, error)
	History(ctx context.Context, userID string, filters HistoryFilters) ([]*HistoryEntry, error)
	Hint(ctx context.Context, question, subject string) string
}

type quizService struct {
	repo   QuizRepository
	cache  *QuizCache
	client *llm.Client
}

func NewService(repo QuizRepository, cache *QuizCache, client *llm.Client) QuizService {
	return &quizService{
		repo:   repo,
		cache:  cache,
		client: client,
	}
}

// CreateQuiz generates an adaptive quiz for the user. Generation failures
// degrade to a deterministic fallback quiz; only storage failures propagate.
func (s *quizService) CreateQuiz(ctx context.Context, userID string, req CreateQuizRequest) (*QuizView, error) {
	log := config.WithContext(ctx)

	numQuestions := req.NumQuestions
	if numQuestions <= 0 {
		numQuestions = defaultNumQuestions
	}

	averageScore, totalQuizzes := 0.0, 0
	perf, err := s.repo.GetPerformance(userID, req.Subject, req.GradeLevel)
	if err != nil {
		log.WithError(err).Error("Failed to read performance record")
		return nil, err
	}
	if perf != nil {
		averageScore, totalQuizzes = perf.AverageScore, perf.TotalQuizzes
	}

	dist := DistributionFor(averageScore, totalQuizzes).ScaleTo(numQuestions)

	title, questions, fallback := s.generateQuestions(ctx, req.Subject, req.GradeLevel, req.Topic, numQuestions, dist)

	// Generation and persistence are one unit of work: an abandoned
	// request must not leave a half-created quiz behind.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	questionsJSON, err := json.Marshal(questions)
	if err != nil {
		return nil, err
	}
	distJSON, err := json.Marshal(dist)
	if err != nil {
		return nil, err
	}

	q := &Quiz{
		ID:                     uuid.New(),
		UserID:                 uuid.MustParse(userID),
		Title:                  title,
		Subject:                req.Subject,
		GradeLevel:             req.GradeLevel,
		Topic:                  req.Topic,
		Questions:              questionsJSON,
		DifficultyDistribution: distJSON,
		Status:                 StatusGenerated,
		Fallback:               fallback,
	}

	if err := s.repo.CreateQuiz(q); err != nil {
		log.WithError(err).Error("Failed to persist quiz")
		return nil, err
	}

	log.WithField("quiz_id", q.ID.String()).Info("Quiz created")

	return &QuizView{
		ID:                     q.ID.String(),
		Title:                  title,
		Subject:                req.Subject,
		GradeLevel:             req.GradeLevel,
		Topic:                  req.Topic,
		Questions:              questions,
		DifficultyDistribution: dist,
		Fallback:               fallback,
	}, nil
}

// generateQuestions asks the backend for a question set and validates it.
// Any generation or validation failure yields the fallback set.
func (s *quizService) generateQuestions(ctx context.Context, subject, gradeLevel, topic string, numQuestions int, dist Distribution) (title string, questions []Question, fallback bool) {
	log := config.WithContext(ctx)

	text, err := s.client.Generate(ctx, quizSystemPrompt, quizPrompt(subject, gradeLevel, topic, numQuestions, dist), llm.Options{
		Temperature: 0.7,
		MaxTokens:   4096,
		JSONMode:    true,
	})
	if err != nil {
		log.WithError(err).Warn("Quiz generation failed, synthesizing fallback quiz")
		return fallbackTitle(subject, topic), fallbackQuestions(topic, numQuestions), true
	}

	payload, err := llm.ExtractJSON(text)
	if err != nil {
		log.WithError(err).Warn("Quiz response contained no JSON, synthesizing fallback quiz")
		return fallbackTitle(subject, topic), fallbackQuestions(topic, numQuestions), true
	}

	var parsed any
	if err := json.Unmarshal([]byte(payload), &parsed); err == nil {
		if err := llm.ValidateJSON("generated_quiz", quizSchema, parsed); err != nil {
			log.WithError(err).Warn("Quiz response failed schema validation, synthesizing fallback quiz")
			return fallbackTitle(subject, topic), fallbackQuestions(topic, numQuestions), true
		}
	}

	var generated generatedQuiz
	if err := json.Unmarshal([]byte(payload), &generated); err != nil {
		log.WithError(err).Warn("Quiz response was not parseable, synthesizing fallback quiz")
		return fallbackTitle(subject, topic), fallbackQuestions(topic, numQuestions), true
	}

	valid := make([]Question, 0, len(generated.Questions))
	for _, q := range generated.Questions {
		if len(q.Options) != 4 || q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			continue
		}
		valid = append(valid, q)
	}
	if len(valid) == 0 {
		log.Warn("Quiz response contained no valid questions, synthesizing fallback quiz")
		return fallbackTitle(subject, topic), fallbackQuestions(topic, numQuestions), true
	}

	title = generated.Title
	if title == "" {
		title = fallbackTitle(subject, topic)
	}
	return title, valid, false
}

func (s *quizService) SubmitQuiz(ctx context.Context, userID, quizID string, answers []*int) (*SubmissionResult, error) {
	log := config.WithContext(ctx)

	q, err := s.loadOwnedQuiz(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal(q.Questions, &questions); err != nil {
		log.WithError(err).Error("Failed to decode stored quiz questions")
		return nil, err
	}

	score, mistakes := grade(questions, answers)
	pct := percentage(score, len(questions))

	tips := []string{}
	if len(mistakes) > 0 {
		tips = s.improvementTips(ctx, mistakes, q.Subject)
	}

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	mistakesJSON, err := json.Marshal(mistakes)
	if err != nil {
		return nil, err
	}
	tipsJSON, err := json.Marshal(tips)
	if err != nil {
		return nil, err
	}

	submission := &Submission{
		ID:              uuid.New(),
		QuizID:          q.ID,
		UserID:          uuid.MustParse(userID),
		Answers:         answersJSON,
		Score:           score,
		TotalQuestions:  len(questions),
		PercentageScore: pct,
		Mistakes:        mistakesJSON,
		ImprovementTips: tipsJSON,
	}

	if err := s.repo.CreateSubmission(submission); err != nil {
		log.WithError(err).Error("Failed to persist submission")
		return nil, err
	}

	// The aggregate update runs after the submission is durable. A crash
	// between the two leaves stale stats, which the next submission heals.
	if err := s.repo.UpsertPerformance(userID, q.Subject, q.GradeLevel, pct); err != nil {
		log.WithError(err).Error("Failed to update performance record")
		return nil, err
	}

	if err := s.repo.SetQuizStatus(quizID, StatusGraded); err != nil {
		log.WithError(err).Warn("Failed to mark quiz as graded")
	}

	log.WithField("submission_id", submission.ID.String()).Info("Quiz graded")

	return &SubmissionResult{
		ID:              submission.ID.String(),
		Score:           score,
		TotalQuestions:  len(questions),
		PercentageScore: pct,
		ImprovementTips: tips,
		Mistakes:        mistakes,
	}, nil
}

func (s *quizService) improvementTips(ctx context.Context, mistakes []Mistake, subject string) []string {
	if subject == "" {
		subject = "General"
	}

	text, err := s.client.Generate(ctx, tipsSystemPrompt, tipsPrompt(mistakes, subject), llm.Options{
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Tip generation failed, serving fallback tips")
		return fallbackTips
	}

	tips := []string{}
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			tips = append(tips, trimmed)
		}
		if len(tips) == 2 {
			break
		}
	}
	if len(tips) == 0 {
		return fallbackTips
	}
	return tips
}

func (s *quizService) GetQuiz(ctx context.Context, userID, quizID string) (*QuizView, error) {
	q, err := s.loadOwnedQuiz(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal(q.Questions, &questions); err != nil {
		return nil, err
	}
	var dist Distribution
	if err := json.Unmarshal(q.DifficultyDistribution, &dist); err != nil {
		return nil, err
	}

	return &QuizView{
		ID:                     q.ID.String(),
		Title:                  q.Title,
		Subject:                q.Subject,
		GradeLevel:             q.GradeLevel,
		Topic:                  q.Topic,
		Questions:              questions,
		DifficultyDistribution: dist,
		Fallback:               q.Fallback,
	}, nil
}

func (s *quizService) History(ctx context.Context, userID string, filters HistoryFilters) ([]*HistoryEntry, error) {
	entries, err := s.repo.History(userID, filters)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load quiz history")
		return nil, err
	}
	return entries, nil
}

func (s *quizService) Hint(ctx context.Context, question, subject string) string {
	text, err := s.client.Generate(ctx, hintSystemPrompt, hintPrompt(question, subject), llm.Options{
		Temperature: 0.7,
		MaxTokens:   200,
	})
	if err != nil || strings.TrimSpace(text) == "" {
		return fallbackHint
	}
	return strings.TrimSpace(text)
}

// loadOwnedQuiz resolves a quiz through the cache and enforces ownership.
// Quizzes belonging to other users are reported as not found.
func (s *quizService) loadOwnedQuiz(ctx context.Context, userID, quizID string) (*Quiz, error) {
	var (
		q   *Quiz
		err error
	)
	if s.cache != nil {
		q, err = s.cache.GetQuiz(ctx, quizID)
	} else {
		q, err = s.repo.GetQuizByID(quizID)
	}
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load quiz")
		return nil, err
	}
	if q == nil || q.UserID.String() != userID {
		return nil, ErrQuizNotFound
	}
	return q, nil
}
