package quiz

import "math"

const noAnswerSentinel = "No answer"

// grade scores an ordered answer sequence against the quiz questions.
// answers is index-aligned with questions; a nil or out-of-range entry
// counts as unanswered and is recorded with the "No answer" sentinel.
func grade(questions []Question, answers []*int) (score int, mistakes []Mistake) {
	mistakes = []Mistake{}

	for i, q := range questions {
		var answer *int
		if i < len(answers) {
			answer = answers[i]
		}

		if answer != nil && *answer == q.CorrectAnswer {
			score++
			continue
		}

		userAnswer := noAnswerSentinel
		if answer != nil && *answer >= 0 && *answer < len(q.Options) {
			userAnswer = q.Options[*answer]
		}

		correctAnswer := ""
		if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
			correctAnswer = q.Options[q.CorrectAnswer]
		}

		mistakes = append(mistakes, Mistake{
			Question:      q.Question,
			UserAnswer:    userAnswer,
			CorrectAnswer: correctAnswer,
			Explanation:   q.Explanation,
		})
	}
	return score, mistakes
}

// percentage converts a raw score into a percentage rounded to 2 decimals.
func percentage(score, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(score)/float64(total)*100*100) / 100
}
