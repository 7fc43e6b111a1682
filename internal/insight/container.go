package insight

import "github.com/quillnote/quillnote-api/internal/llm"

type InsightContainer struct {
	Service InsightService
	Handler *Handler
}

func NewInsightContainer(client *llm.Client) *InsightContainer {
	service := NewService(client)
	handler := NewHandler(service)

	return &InsightContainer{
		Service: service,
		Handler: handler,
	}
}
