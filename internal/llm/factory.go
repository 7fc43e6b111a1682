package llm

import (
	"context"
	"fmt"
	"os"
)

// NewFromEnv builds a Client from environment configuration.
//
// LLM_PROVIDER selects the backend (gemini, groq or mock). When unset, the
// backend is inferred from which API key is present, preferring Gemini.
func NewFromEnv(ctx context.Context) (*Client, error) {
	provider, err := providerFromEnv(ctx)
	if err != nil {
		return nil, err
	}
	return NewClient(provider), nil
}

func providerFromEnv(ctx context.Context) (Provider, error) {
	name := os.Getenv("LLM_PROVIDER")
	if name == "" {
		switch {
		case os.Getenv("GEMINI_API_KEY") != "":
			name = "gemini"
		case os.Getenv("GROQ_API_KEY") != "":
			name = "groq"
		default:
			return nil, fmt.Errorf("no LLM provider configured: set LLM_PROVIDER or an API key")
		}
	}

	switch name {
	case "gemini":
		return NewGeminiProvider(ctx, os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	case "groq":
		return NewGroqProvider(os.Getenv("GROQ_API_KEY"), os.Getenv("GROQ_MODEL"))
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", name)
	}
}
