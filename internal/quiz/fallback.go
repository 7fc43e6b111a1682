package quiz

import "fmt"

const fallbackHint = "Think carefully about the concepts involved."

var fallbackTips = []string{
	"Review the concepts you got wrong and practice similar problems.",
	"Take time to understand why the correct answer is correct, not just memorize it.",
}

// fallbackQuestions synthesizes a deterministic placeholder question set,
// cycling difficulty tiers round-robin. Served when the generation backend
// is unavailable or returns unusable output.
func fallbackQuestions(topic string, numQuestions int) []Question {
	tiers := []string{"easy", "medium", "hard"}
	questions := make([]Question, numQuestions)
	for i := range questions {
		questions[i] = Question{
			Question:      fmt.Sprintf("Sample question %d on %s", i+1, topic),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: 0,
			Difficulty:    tiers[i%3],
			Explanation:   "This is a mock explanation.",
		}
	}
	return questions
}

func fallbackTitle(subject, topic string) string {
	return fmt.Sprintf("%s Quiz - %s", subject, topic)
}
