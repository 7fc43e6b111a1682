package insight

import (
	"context"
	"strings"

	"github.com/quillnote/quillnote-api/internal/config"
	"github.com/quillnote/quillnote-api/internal/llm"
)

// InsightService runs the note analysis prompts. Every method degrades to a
// fallback payload instead of surfacing a backend failure, so the endpoints
// keep answering while the provider is rate limited.
type InsightService interface {
	Glossary(ctx context.Context, content string) []GlossaryEntry
	Summary(ctx context.Context, content string) string
	Tags(ctx context.Context, content string) []string
	Grammar(ctx context.Context, content string) []GrammarIssue
	Actions(ctx context.Context, content string) []string
	Sentiment(ctx context.Context, content string) string
	Chat(ctx context.Context, content, query string) string
}

type insightService struct {
	client *llm.Client
}

func NewService(client *llm.Client) InsightService {
	return &insightService{client: client}
}

func (s *insightService) Glossary(ctx context.Context, content string) []GlossaryEntry {
	if strings.TrimSpace(content) == "" {
		return []GlossaryEntry{}
	}

	log := config.WithContext(ctx)

	text, err := s.client.Generate(ctx, glossarySystemPrompt, glossaryUserPrompt(content), llm.Options{
		Temperature: 0.1,
		MaxTokens:   800,
		JSONMode:    true,
	})
	if err != nil {
		log.WithError(err).Warn("Glossary generation failed, serving fallback")
		return fallbackGlossary
	}

	var entries []GlossaryEntry
	if err := llm.ParseJSON(text, &entries); err != nil {
		log.WithError(err).Warn("Glossary response was not valid JSON")
		return []GlossaryEntry{}
	}

	valid := make([]GlossaryEntry, 0, len(entries))
	for _, e := range entries {
		if e.Term != "" && e.Definition != "" {
			valid = append(valid, e)
		}
	}
	return valid
}

func (s *insightService) Summary(ctx context.Context, content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	text, err := s.client.Generate(ctx, summarySystemPrompt, content, llm.Options{
		Temperature: 0.2,
		MaxTokens:   400,
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Summary generation failed, serving fallback")
		return fallbackSummary
	}
	return strings.TrimSpace(text)
}

func (s *insightService) Tags(ctx context.Context, content string) []string {
	if strings.TrimSpace(content) == "" {
		return []string{}
	}

	text, err := s.client.Generate(ctx, tagsSystemPrompt, tagsUserPrompt(content), llm.Options{
		Temperature: 0.2,
		MaxTokens:   200,
		JSONMode:    true,
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Tag generation failed, serving fallback")
		return []string{}
	}

	var tags []string
	if err := llm.ParseJSON(text, &tags); err != nil {
		return []string{}
	}
	return tags
}

func (s *insightService) Grammar(ctx context.Context, content string) []GrammarIssue {
	if strings.TrimSpace(content) == "" {
		return []GrammarIssue{}
	}

	text, err := s.client.Generate(ctx, grammarSystemPrompt, grammarUserPrompt(content), llm.Options{
		Temperature: 0.1,
		JSONMode:    true,
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Grammar check failed, serving fallback")
		return []GrammarIssue{}
	}

	var issues []GrammarIssue
	if err := llm.ParseJSON(text, &issues); err != nil {
		return []GrammarIssue{}
	}
	return issues
}

func (s *insightService) Actions(ctx context.Context, content string) []string {
	if strings.TrimSpace(content) == "" {
		return []string{}
	}

	text, err := s.client.Generate(ctx, actionsSystemPrompt, actionsUserPrompt(content), llm.Options{
		Temperature: 0.1,
		JSONMode:    true,
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Action extraction failed, serving fallback")
		return []string{}
	}

	var actions []string
	if err := llm.ParseJSON(text, &actions); err != nil {
		return []string{}
	}
	return actions
}

func (s *insightService) Sentiment(ctx context.Context, content string) string {
	text, err := s.client.Generate(ctx, "", sentimentPrompt(content), llm.Options{})
	if err != nil {
		return fallbackSentiment
	}

	sentiment := strings.TrimSpace(text)
	switch sentiment {
	case "Positive", "Negative", "Neutral":
		return sentiment
	default:
		return fallbackSentiment
	}
}

func (s *insightService) Chat(ctx context.Context, content, query string) string {
	text, err := s.client.Generate(ctx, "", chatPrompt(content, query), llm.Options{})
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Note chat failed, serving fallback")
		return fallbackChat
	}
	return text
}
