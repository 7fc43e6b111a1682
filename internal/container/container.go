package container

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/quillnote/quillnote-api/internal/analytics"
	"github.com/quillnote/quillnote-api/internal/auth"
	"github.com/quillnote/quillnote-api/internal/config"
	"github.com/quillnote/quillnote-api/internal/insight"
	"github.com/quillnote/quillnote-api/internal/llm"
	"github.com/quillnote/quillnote-api/internal/note"
	"github.com/quillnote/quillnote-api/internal/quiz"
	"github.com/quillnote/quillnote-api/internal/user"
)

type Container struct {
	UserContainer      *user.UserContainer
	NoteContainer      *note.NoteContainer
	InsightContainer   *insight.InsightContainer
	QuizContainer      *quiz.QuizContainer
	AnalyticsContainer *analytics.AnalyticsContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&note.Note{},
		&quiz.Quiz{},
		&quiz.Submission{},
		&quiz.PerformanceRecord{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	llmClient, err := llm.NewFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to configure LLM client: %v", err)
	}

	var redisClient *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
	}

	userContainer := user.NewUserContainer(config.DB)
	noteContainer := note.NewNoteContainer(config.DB)
	insightContainer := insight.NewInsightContainer(llmClient)
	quizContainer := quiz.NewQuizContainer(config.DB, redisClient, llmClient)
	analyticsContainer := analytics.NewAnalyticsContainer(noteContainer.Repo, quizContainer.Repo)

	return &Container{
		UserContainer:      userContainer,
		NoteContainer:      noteContainer,
		InsightContainer:   insightContainer,
		QuizContainer:      quizContainer,
		AnalyticsContainer: analyticsContainer,
	}
}
