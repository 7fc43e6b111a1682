package quiz

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/quillnote/quillnote-api/internal/llm"
)

const quizCacheTTL = 30 * time.Minute

type QuizContainer struct {
	Repo    QuizRepository
	Cache   *QuizCache
	Service QuizService
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB, redisClient *redis.Client, client *llm.Client) *QuizContainer {
	repo := NewRepository(db)

	var cache *QuizCache
	if redisClient != nil {
		cache = NewQuizCache(redisClient, repo, quizCacheTTL)
	}

	service := NewService(repo, cache, client)
	handler := NewHandler(service)

	return &QuizContainer{
		Repo:    repo,
		Cache:   cache,
		Service: service,
		Handler: handler,
	}
}
