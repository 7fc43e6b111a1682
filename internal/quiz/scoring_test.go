package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intp(v int) *int { return &v }

func sampleQuestions() []Question {
	return []Question{
		{
			Question:      "What is 2+2?",
			Options:       []string{"3", "4", "5", "6"},
			CorrectAnswer: 1,
			Difficulty:    "easy",
			Explanation:   "Basic addition.",
		},
		{
			Question:      "What is 3*3?",
			Options:       []string{"6", "7", "8", "9"},
			CorrectAnswer: 3,
			Difficulty:    "medium",
		},
		{
			Question:      "What is 2^10?",
			Options:       []string{"512", "1024", "2048", "4096"},
			CorrectAnswer: 1,
			Difficulty:    "hard",
		},
	}
}

func TestGrade_AllCorrect(t *testing.T) {
	score, mistakes := grade(sampleQuestions(), []*int{intp(1), intp(3), intp(1)})
	assert.Equal(t, 3, score)
	assert.Empty(t, mistakes)
}

func TestGrade_RecordsMistakes(t *testing.T) {
	score, mistakes := grade(sampleQuestions(), []*int{intp(0), intp(3), intp(2)})
	assert.Equal(t, 1, score)
	assert.Len(t, mistakes, 2)

	assert.Equal(t, "What is 2+2?", mistakes[0].Question)
	assert.Equal(t, "3", mistakes[0].UserAnswer)
	assert.Equal(t, "4", mistakes[0].CorrectAnswer)
	assert.Equal(t, "Basic addition.", mistakes[0].Explanation)

	assert.Equal(t, "2048", mistakes[1].UserAnswer)
	assert.Equal(t, "1024", mistakes[1].CorrectAnswer)
}

func TestGrade_MissingAnswerUsesSentinel(t *testing.T) {
	score, mistakes := grade(sampleQuestions(), []*int{nil, intp(3)})
	assert.Equal(t, 1, score)
	assert.Len(t, mistakes, 2)

	// nil entry and absent trailing entry both count as unanswered
	assert.Equal(t, "No answer", mistakes[0].UserAnswer)
	assert.Equal(t, "No answer", mistakes[1].UserAnswer)
}

func TestGrade_OutOfRangeAnswerUsesSentinel(t *testing.T) {
	_, mistakes := grade(sampleQuestions(), []*int{intp(7), intp(3), intp(1)})
	assert.Len(t, mistakes, 1)
	assert.Equal(t, "No answer", mistakes[0].UserAnswer)
}

func TestPercentage_RoundsToTwoDecimals(t *testing.T) {
	assert.Equal(t, 33.33, percentage(1, 3))
	assert.Equal(t, 66.67, percentage(2, 3))
	assert.Equal(t, 100.0, percentage(10, 10))
	assert.Equal(t, 0.0, percentage(0, 5))
	assert.Equal(t, 0.0, percentage(0, 0))
}
