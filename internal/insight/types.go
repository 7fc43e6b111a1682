package insight

// GlossaryEntry is one extracted term with its contextual definition.
type GlossaryEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// GrammarIssue pairs a problematic fragment with its suggested correction.
type GrammarIssue struct {
	Text       string `json:"text"`
	Suggestion string `json:"suggestion"`
}

// Fallback payloads served when the generation backend is out of quota.
// They keep every insight endpoint returning 200 with usable data.
var (
	fallbackGlossary = []GlossaryEntry{
		{Term: "Rate Limit Hit", Definition: "The AI service is currently busy. Please try again in 1-2 minutes."},
	}
	fallbackSummary   = "⚠️ AI Service is currently experiencing high traffic (Rate Limit Reached). Please wait a moment and try again."
	fallbackSentiment = "Neutral"
	fallbackChat      = "I cannot respond right now due to high traffic."
)
