package insight

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillnote/quillnote-api/internal/llm"
)

func TestGlossary_ParsesAndFiltersEntries(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: `Here you go:
[{"term":"ATP","definition":"The cell's energy currency"},{"term":"","definition":"dropped"},{"term":"Osmosis","definition":"Water movement across a membrane"}]`,
	})
	svc := NewService(llm.NewClient(mock))

	entries := svc.Glossary(context.Background(), "Cells use ATP. Osmosis moves water.")
	assert.Equal(t, []GlossaryEntry{
		{Term: "ATP", Definition: "The cell's energy currency"},
		{Term: "Osmosis", Definition: "Water movement across a membrane"},
	}, entries)
}

func TestGlossary_EmptyContentSkipsBackend(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(llm.NewClient(mock))

	entries := svc.Glossary(context.Background(), "   ")
	assert.Empty(t, entries)
	assert.Zero(t, mock.CallCount())
}

func TestGlossary_FallsBackOnBackendFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: fmt.Errorf("bad request")})
	svc := NewService(llm.NewClient(mock))

	entries := svc.Glossary(context.Background(), "some content")
	assert.Equal(t, fallbackGlossary, entries)
}

func TestSummary_TrimsResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "  A short summary.  \n"})
	svc := NewService(llm.NewClient(mock))

	assert.Equal(t, "A short summary.", svc.Summary(context.Background(), "long text"))
}

func TestSummary_FallsBackOnFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: fmt.Errorf("boom")})
	svc := NewService(llm.NewClient(mock))

	assert.Equal(t, fallbackSummary, svc.Summary(context.Background(), "long text"))
}

func TestSentiment_NormalizesUnexpectedOutput(t *testing.T) {
	cases := map[string]string{
		"Positive":                 "Positive",
		"  Negative \n":            "Negative",
		"The sentiment is happy!!": "Neutral",
	}
	for raw, want := range cases {
		mock := llm.NewMockProvider(llm.MockResponse{Text: raw})
		svc := NewService(llm.NewClient(mock))
		assert.Equal(t, want, svc.Sentiment(context.Background(), "text"), "raw %q", raw)
	}
}

func TestChat_UsesContextAndQuery(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Mitochondria."})
	svc := NewService(llm.NewClient(mock))

	answer := svc.Chat(context.Background(), "Biology notes", "What produces ATP?")
	assert.Equal(t, "Mitochondria.", answer)

	calls := mock.Calls()
	assert.Len(t, calls, 1)
	assert.Contains(t, calls[0].User, "Biology notes")
	assert.Contains(t, calls[0].User, "What produces ATP?")
}

func TestTags_InvalidJSONYieldsEmpty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "no json here"})
	svc := NewService(llm.NewClient(mock))

	assert.Empty(t, svc.Tags(context.Background(), "text"))
}
