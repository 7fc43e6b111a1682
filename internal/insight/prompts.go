package insight

import "fmt"

const glossarySystemPrompt = `You are a helper that extracts specific glossary terms from text.
Task: Identify key technical terms, concepts, or entities in the text.
Output: A JSON array of objects, each having "term" (<string>) and "definition" (<string>).
Constraint: Definitions must be brief (under 15 words) and contextual to the text.
Limit: Max 8 terms.`

const summarySystemPrompt = `Summarize this text in 2 sentences. Return plain text.`

const tagsSystemPrompt = `Generate 5 relevant tags for the text. JSON Array of strings only.`

const grammarSystemPrompt = `Identify significant grammar/spelling errors. Return JSON array of objects { "text": "wrong text", "suggestion": "correction" }. Return empty array if valid.`

const actionsSystemPrompt = `Extract actionable tasks from the text. Return JSON array of strings.`

func glossaryUserPrompt(content string) string {
	return fmt.Sprintf("Extract glossary terms from this text:\n\n%s", content)
}

func tagsUserPrompt(content string) string {
	return fmt.Sprintf("Context:\n%s", content)
}

func grammarUserPrompt(content string) string {
	return fmt.Sprintf("Text to check:\n%s", content)
}

func actionsUserPrompt(content string) string {
	return fmt.Sprintf("Text:\n%s", content)
}

func sentimentPrompt(content string) string {
	return fmt.Sprintf("Analyze sentiment of this text. Return ONLY one word: Positive, Negative, or Neutral.\n\n%s", content)
}

func chatPrompt(content, query string) string {
	return fmt.Sprintf("Context: %s\n\nUser Question: %s\n\nAnswer:", content, query)
}
