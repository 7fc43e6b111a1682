package quiz

// CreateQuizRequest is the payload for quiz generation.
type CreateQuizRequest struct {
	Subject      string `json:"subject"`
	GradeLevel   string `json:"gradeLevel"`
	Topic        string `json:"topic"`
	NumQuestions int    `json:"numQuestions"`
}

// SubmitQuizRequest carries the ordered answer sequence. A null entry
// means the question was left unanswered.
type SubmitQuizRequest struct {
	Answers []*int `json:"answers"`
}

// HintRequest asks for a hint on one question.
type HintRequest struct {
	Question string `json:"question"`
	Subject  string `json:"subject"`
}

// QuizView is the caller-facing quiz shape with parsed questions.
type QuizView struct {
	ID                     string       `json:"id"`
	Title                  string       `json:"title"`
	Subject                string       `json:"subject"`
	GradeLevel             string       `json:"gradeLevel"`
	Topic                  string       `json:"topic"`
	Questions              []Question   `json:"questions"`
	DifficultyDistribution Distribution `json:"difficultyDistribution"`
	Fallback               bool         `json:"fallback"`
}

// SubmissionResult is the grading outcome returned to the caller.
type SubmissionResult struct {
	ID              string    `json:"id"`
	Score           int       `json:"score"`
	TotalQuestions  int       `json:"totalQuestions"`
	PercentageScore float64   `json:"percentageScore"`
	ImprovementTips []string  `json:"improvementTips"`
	Mistakes        []Mistake `json:"mistakes"`
}

// generatedQuiz is the shape the generation backend is asked to return.
type generatedQuiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// quizSchema validates the parsed backend response before it is trusted.
var quizSchema = map[string]any{
	"type":     "object",
	"required": []any{"questions"},
	"properties": map[string]any{
		"title": map[string]any{"type": "string"},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"question", "options", "correctAnswer"},
				"properties": map[string]any{
					"question": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"correctAnswer": map[string]any{"type": "integer"},
					"difficulty":    map[string]any{"type": "string"},
					"explanation":   map[string]any{"type": "string"},
				},
			},
		},
	},
}
