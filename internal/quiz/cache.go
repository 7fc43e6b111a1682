package quiz

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/quillnote/quillnote-api/internal/config"
)

// QuizCache fronts quiz-by-id lookups with Redis. Quizzes are immutable
// after creation, so cached entries never need invalidation, only expiry.
// A nil client falls straight through to the repository, which keeps the
// cache optional in local setups without Redis.
type QuizCache struct {
	client *redis.Client
	repo   QuizRepository
	ttl    time.Duration
	sf     singleflight.Group
}

func NewQuizCache(client *redis.Client, repo QuizRepository, ttl time.Duration) *QuizCache {
	return &QuizCache{
		client: client,
		repo:   repo,
		ttl:    ttl,
	}
}

func (c *QuizCache) GetQuiz(ctx context.Context, quizID string) (*Quiz, error) {
	if c.client == nil {
		return c.repo.GetQuizByID(quizID)
	}

	key := c.quizKey(quizID)
	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var q Quiz
		if err := json.Unmarshal(raw, &q); err == nil {
			return &q, nil
		}
	}

	// Collapse concurrent misses for the same quiz into one DB read.
	result, err, _ := c.sf.Do(quizID, func() (interface{}, error) {
		if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
			var q Quiz
			if err := json.Unmarshal(raw, &q); err == nil {
				return &q, nil
			}
		}

		q, err := c.repo.GetQuizByID(quizID)
		if err != nil {
			return nil, err
		}
		if q == nil {
			return (*Quiz)(nil), nil
		}

		if raw, err := json.Marshal(q); err == nil {
			if err := c.client.Set(ctx, key, raw, c.ttlWithJitter()).Err(); err != nil {
				config.WithContext(ctx).WithError(err).Warn("Failed to cache quiz")
			}
		}
		return q, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Quiz), nil
}

func (c *QuizCache) quizKey(quizID string) string {
	return "quiz:" + quizID
}

// ttlWithJitter spreads expirations by up to 10% to avoid a thundering
// herd when many quizzes were cached together. It runs on concurrent
// request goroutines, so it draws from the locked top-level source.
func (c *QuizCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(rand.Int63n(jitterMax+1))
}
