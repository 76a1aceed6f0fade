package main

import (
	"log"
	"log/slog"
	"os"

	"technews/db"
	"technews/internal/config"
	"technews/internal/handler"
	"technews/internal/pipeline"
	"technews/internal/repository"
	"technews/internal/staging"
	"technews/pkg/extract"
	"technews/pkg/llm"
	"technews/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	pg, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer pg.Close()

	rdb, err := db.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer rdb.Close()

	rewriter, generator, articleGenerator := newLLMClients(cfg)

	feed := news.NewNewsAPIClient(cfg.NewsAPIKey)
	orchestrator := pipeline.NewOrchestrator(feed, extract.NewExtractor(nil), rewriter)
	cache := staging.NewCache(staging.NewRedisBackend(rdb))

	articleRepo := repository.NewArticleRepository(pg)
	newsHandler := handler.NewNewsHandler(orchestrator, cache, articleRepo)

	quizRepo := repository.NewQuizRepository(pg)
	quizHandler := handler.NewQuizHandler(generator, quizRepo)

	generationHandler := handler.NewGenerationHandler(articleGenerator, articleRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/news", newsHandler.FetchNews)
	r.GET("/api/news/pending", newsHandler.GetPending)
	r.DELETE("/api/news/:id", newsHandler.DeletePending)
	r.GET("/api/articles", newsHandler.GetArticles)
	r.POST("/api/quizzes/generate", quizHandler.GenerateQuiz)
	r.GET("/api/quizzes", quizHandler.GetQuizzes)
	r.GET("/api/quizzes/:id", quizHandler.GetQuiz)
	r.PUT("/api/quizzes/:id", quizHandler.UpdateQuiz)
	r.DELETE("/api/quizzes/:id", quizHandler.DeleteQuiz)
	r.GET("/api/quizzes/article/:article_id", quizHandler.GetQuizByArticle)
	r.POST("/api/quizzes/:id/submit", quizHandler.SubmitQuiz)
	r.GET("/api/results", quizHandler.GetResults)
	r.POST("/api/article-generation/generate", generationHandler.GenerateArticle)
	r.POST("/api/article-generation/suggestions", generationHandler.GetSuggestions)
	r.GET("/api/article-generation/config", generationHandler.GetConfig)
	r.GET("/health", newsHandler.Health)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newLLMClients(cfg config.Config) (llm.Rewriter, llm.QuizGenerator, llm.ArticleGenerator) {
	if cfg.LLMProvider == "anthropic" {
		client := llm.NewAnthropicClient(cfg.AnthropicAPIKey)
		return client, client, client
	}
	client := llm.NewOpenAIClient(cfg.OpenAIAPIKey)
	return client, client, client
}
