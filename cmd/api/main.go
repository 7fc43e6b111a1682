package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/joho/godotenv"

	"github.com/quillnote/quillnote-api/internal/config"
	"github.com/quillnote/quillnote-api/internal/container"
	"github.com/quillnote/quillnote-api/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()

	mux := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		NoteHandler:      c.NoteContainer.Handler,
		InsightHandler:   c.InsightContainer.Handler,
		QuizHandler:      c.QuizContainer.Handler,
		AnalyticsHandler: c.AnalyticsContainer.Handler,
	})

	log := config.Logger()

	// Running inside Lambda behind API Gateway: proxy events into chi.
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.NewV2(mux)
		lambda.Start(adapter.ProxyWithContextV2)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Infof("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
