package llm

import "context"

// Options tune a single generation call.
type Options struct {
	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64

	// MaxTokens caps the response length. Zero means provider default.
	MaxTokens int

	// JSONMode asks the provider for a JSON response where the backend
	// supports it. The response may still arrive fenced or with prose
	// around it; use ParseJSON to extract the payload.
	JSONMode bool
}

// Provider is the low-level abstraction over a text-generation backend.
// It sends the system and user prompts as separate conversational turns
// and returns the raw response text.
type Provider interface {
	Generate(ctx context.Context, system, user string, opts Options) (string, error)

	// Name identifies the backend ("gemini", "groq", "mock").
	Name() string
}
