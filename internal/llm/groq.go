package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	groqBaseURL      = "https://api.groq.com/openai/v1"
	defaultGroqModel = "llama-3.1-8b-instant"
)

// groqProvider talks to Groq through its OpenAI-compatible API.
type groqProvider struct {
	client *openai.Client
	model  string
}

// NewGroqProvider creates a Provider backed by Groq.
func NewGroqProvider(apiKey, model string) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("groq API key is required")
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL

	if model == "" {
		model = defaultGroqModel
	}

	return &groqProvider{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

func (p *groqProvider) Generate(ctx context.Context, system, user string, opts Options) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: float32(opts.Temperature),
	}
	if opts.MaxTokens > 0 {
		req.MaxTokens = opts.MaxTokens
	}
	if opts.JSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", mapGroqError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *groqProvider) Name() string { return "groq" }

func mapGroqError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 429:
			return &ErrRateLimited{RetryAfter: parseRetryAfter(apiErr.Message), Err: err}
		case apiErr.HTTPStatusCode >= 500:
			return &ErrUnavailable{Err: err}
		}
	}
	return err
}
