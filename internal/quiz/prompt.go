package quiz

import (
	"fmt"
	"strings"
)

const quizSystemPrompt = `You are a quiz generator. Always return valid JSON only, no markdown formatting.`

const hintSystemPrompt = `You are a helpful tutor. Provide hints that guide students to think about the problem without revealing the answer.`

const tipsSystemPrompt = `You are an educational advisor. Provide specific, actionable improvement tips based on student mistakes.`

func quizPrompt(subject, gradeLevel, topic string, numQuestions int, dist Distribution) string {
	return fmt.Sprintf(`Generate a %d-question quiz on %s for %s grade level in the subject of %s.

Requirements:
1. Each question should have 4 multiple-choice options
2. Indicate the correct answer (0-indexed)
3. Mark difficulty as easy, medium, or hard
4. Provide a brief explanation for each question
5. Questions should be appropriate for %s grade level

Difficulty distribution: %d easy, %d medium, %d hard questions.

Return the response as a JSON object with this structure:
{
  "title": "Quiz title",
  "questions": [
    {
      "question": "Question text",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": 0,
      "difficulty": "easy",
      "explanation": "Brief explanation"
    }
  ]
}`, numQuestions, topic, gradeLevel, subject, gradeLevel, dist.Easy, dist.Medium, dist.Hard)
}

func hintPrompt(question, subject string) string {
	return fmt.Sprintf(`Given this question: "%s" in the subject of %s, provide a helpful hint that guides the student without giving away the answer. Keep it concise (1-2 sentences).`, question, subject)
}

func tipsPrompt(mistakes []Mistake, subject string) string {
	var b strings.Builder
	for i, m := range mistakes {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%d. Question: %s\n   Your answer: %s\n   Correct answer: %s", i+1, m.Question, m.UserAnswer, m.CorrectAnswer)
		if m.Explanation != "" {
			fmt.Fprintf(&b, "\n   Explanation: %s", m.Explanation)
		}
	}

	return fmt.Sprintf(`Based on these mistakes in %s, provide 2 specific and actionable improvement tips. Focus on learning strategies and concepts that need reinforcement.

Mistakes:
%s

Provide exactly 2 tips, each on a new line, without numbering.`, subject, b.String())
}
